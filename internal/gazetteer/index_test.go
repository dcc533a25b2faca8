package gazetteer

import (
	"errors"
	"testing"

	"github.com/neighborhood-resolver/app/models"
)

func fixtureProvinces() []models.Province {
	return []models.Province{
		{ID: 1, Name: "Adana", CanonicalName: "Adana", Code: "TR-01"},
		{ID: 31, Name: "Hatay", CanonicalName: "Hatay", Code: "TR-31"},
	}
}

func fixtureDistricts() []models.District {
	return []models.District{
		{ID: 1104, Name: "Çukurova", CanonicalName: "Cukurova", ProvinceID: 1},
		{ID: 1219, Name: "Seyhan", CanonicalName: "Seyhan", ProvinceID: 1},
		{ID: 1303, Name: "İskenderun", CanonicalName: "Iskenderun", ProvinceID: 31},
	}
}

func fixtureNeighborhoods() []models.Neighborhood {
	return []models.Neighborhood{
		{ID: 225001, Name: "Bota Mh.", CanonicalName: "BOTA MH.", DistrictID: 1104, ProvinceID: 1},
		{ID: 225002, Name: "Yeşilyurt Mh.", CanonicalName: "YESILYURT MH.", DistrictID: 1104, ProvinceID: 1},
		{ID: 226001, Name: "Yeşilyurt Mh.", CanonicalName: "YESILYURT MH.", DistrictID: 1219, ProvinceID: 1},
		{ID: 310001, Name: "Numune Mh.", CanonicalName: "NUMUNE MH.", DistrictID: 1303, ProvinceID: 31},
	}
}

func TestBuild_GroupsByParent(t *testing.T) {
	ix, err := Build(fixtureProvinces(), fixtureDistricts(), fixtureNeighborhoods())
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	adana := ix.DistrictsIn(1)
	if len(adana) != 2 {
		t.Fatalf("expected 2 districts in Adana, got %d", len(adana))
	}
	// Stored order is input order.
	if adana[0].ID != 1104 || adana[1].ID != 1219 {
		t.Errorf("district order not preserved: %v", adana)
	}

	cukurova := ix.NeighborhoodsIn(1104)
	if len(cukurova) != 2 {
		t.Fatalf("expected 2 neighborhoods in Cukurova, got %d", len(cukurova))
	}
	if cukurova[0].ID != 225001 {
		t.Errorf("neighborhood order not preserved: %v", cukurova)
	}

	if got := ix.NeighborhoodsIn(9999); len(got) != 0 {
		t.Errorf("unknown district should yield no candidates, got %v", got)
	}
}

func TestBuild_ProvinceLookupIsExact(t *testing.T) {
	ix, err := Build(fixtureProvinces(), fixtureDistricts(), fixtureNeighborhoods())
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	if _, ok := ix.ProvinceByCanonicalName("Adana"); !ok {
		t.Error("expected exact match for Adana")
	}
	// Case-sensitive after normalization.
	if _, ok := ix.ProvinceByCanonicalName("ADANA"); ok {
		t.Error("province lookup should be case-sensitive on canonical names")
	}
	if _, ok := ix.ProvinceByCanonicalName("Adanaa"); ok {
		t.Error("expected no match for misspelled province")
	}
}

func TestBuild_FailsFast(t *testing.T) {
	testCases := []struct {
		name          string
		provinces     []models.Province
		districts     []models.District
		neighborhoods []models.Neighborhood
	}{
		{name: "EmptyProvinces", provinces: nil, districts: fixtureDistricts(), neighborhoods: fixtureNeighborhoods()},
		{name: "EmptyDistricts", provinces: fixtureProvinces(), districts: nil, neighborhoods: fixtureNeighborhoods()},
		{name: "EmptyNeighborhoods", provinces: fixtureProvinces(), districts: fixtureDistricts(), neighborhoods: nil},
		{
			name:      "DistrictWithUnknownProvince",
			provinces: fixtureProvinces(),
			districts: []models.District{{ID: 1, Name: "Merkez", CanonicalName: "Merkez", ProvinceID: 99}},
			neighborhoods: fixtureNeighborhoods(),
		},
		{
			name:      "NeighborhoodWithUnknownDistrict",
			provinces: fixtureProvinces(),
			districts: fixtureDistricts(),
			neighborhoods: []models.Neighborhood{{ID: 1, Name: "X Mh.", CanonicalName: "X MH.", DistrictID: 9999, ProvinceID: 1}},
		},
		{
			name:      "ProvinceMissingCanonicalName",
			provinces: []models.Province{{ID: 1, Name: "Adana"}},
			districts: fixtureDistricts(),
			neighborhoods: fixtureNeighborhoods(),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Build(tc.provinces, tc.districts, tc.neighborhoods)
			if err == nil {
				t.Fatal("expected a reference data error")
			}
			if !errors.Is(err, models.ErrReferenceData) {
				t.Errorf("expected ErrReferenceData, got %v", err)
			}
		})
	}
}
