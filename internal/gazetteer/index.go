// Package gazetteer holds the in-memory hierarchical reference index the
// matcher scores against. Reference entities are grouped by parent id once at
// build time so each record's candidate set is a direct lookup, and input
// order is preserved within each group.
package gazetteer

import (
	"fmt"

	"github.com/neighborhood-resolver/app/models"
)

// Index is built once from the full reference dataset and never mutated.
type Index struct {
	provincesByCanonical map[string]models.Province
	provincesByID        map[int]models.Province
	districtsByID        map[int]models.District
	neighborhoodsByID    map[int]models.Neighborhood

	districtsByProvince     map[int][]models.District
	neighborhoodsByDistrict map[int][]models.Neighborhood

	provinceCount     int
	districtCount     int
	neighborhoodCount int
}

// Build constructs the index, failing fast on an empty or inconsistent
// reference dataset.
func Build(provinces []models.Province, districts []models.District, neighborhoods []models.Neighborhood) (*Index, error) {
	if len(provinces) == 0 {
		return nil, fmt.Errorf("%w: province table is empty", models.ErrReferenceData)
	}
	if len(districts) == 0 {
		return nil, fmt.Errorf("%w: district table is empty", models.ErrReferenceData)
	}
	if len(neighborhoods) == 0 {
		return nil, fmt.Errorf("%w: neighborhood table is empty", models.ErrReferenceData)
	}

	ix := &Index{
		provincesByCanonical:    make(map[string]models.Province, len(provinces)),
		provincesByID:           make(map[int]models.Province, len(provinces)),
		districtsByID:           make(map[int]models.District, len(districts)),
		neighborhoodsByID:       make(map[int]models.Neighborhood, len(neighborhoods)),
		districtsByProvince:     make(map[int][]models.District),
		neighborhoodsByDistrict: make(map[int][]models.Neighborhood),
		provinceCount:           len(provinces),
		districtCount:           len(districts),
		neighborhoodCount:       len(neighborhoods),
	}

	for _, p := range provinces {
		if p.ID == 0 || p.CanonicalName == "" {
			return nil, fmt.Errorf("%w: province %q missing id or canonical name", models.ErrReferenceData, p.Name)
		}
		ix.provincesByCanonical[p.CanonicalName] = p
		ix.provincesByID[p.ID] = p
	}

	for _, d := range districts {
		if d.ID == 0 || d.CanonicalName == "" {
			return nil, fmt.Errorf("%w: district %q missing id or canonical name", models.ErrReferenceData, d.Name)
		}
		if _, ok := ix.provincesByID[d.ProvinceID]; !ok {
			return nil, fmt.Errorf("%w: district %d references unknown province %d", models.ErrReferenceData, d.ID, d.ProvinceID)
		}
		ix.districtsByID[d.ID] = d
		ix.districtsByProvince[d.ProvinceID] = append(ix.districtsByProvince[d.ProvinceID], d)
	}

	for _, n := range neighborhoods {
		if n.ID == 0 || n.CanonicalName == "" {
			return nil, fmt.Errorf("%w: neighborhood %q missing id or canonical name", models.ErrReferenceData, n.Name)
		}
		if _, ok := ix.districtsByID[n.DistrictID]; !ok {
			return nil, fmt.Errorf("%w: neighborhood %d references unknown district %d", models.ErrReferenceData, n.ID, n.DistrictID)
		}
		ix.neighborhoodsByID[n.ID] = n
		ix.neighborhoodsByDistrict[n.DistrictID] = append(ix.neighborhoodsByDistrict[n.DistrictID], n)
	}

	return ix, nil
}

// ProvinceByCanonicalName is an exact lookup of the canonicalized province
// name. Province names are assumed authoritative, no fuzzy scoring here.
func (ix *Index) ProvinceByCanonicalName(name string) (models.Province, bool) {
	p, ok := ix.provincesByCanonical[name]
	return p, ok
}

// DistrictsIn returns the districts owned by a province, in stored order.
func (ix *Index) DistrictsIn(provinceID int) []models.District {
	return ix.districtsByProvince[provinceID]
}

// NeighborhoodsIn returns the neighborhoods owned by a district, in stored order.
func (ix *Index) NeighborhoodsIn(districtID int) []models.Neighborhood {
	return ix.neighborhoodsByDistrict[districtID]
}

func (ix *Index) ProvinceByID(id int) (models.Province, bool) {
	p, ok := ix.provincesByID[id]
	return p, ok
}

func (ix *Index) DistrictByID(id int) (models.District, bool) {
	d, ok := ix.districtsByID[id]
	return d, ok
}

func (ix *Index) NeighborhoodByID(id int) (models.Neighborhood, bool) {
	n, ok := ix.neighborhoodsByID[id]
	return n, ok
}

// Counts returns the table sizes for startup logging.
func (ix *Index) Counts() (provinces, districts, neighborhoods int) {
	return ix.provinceCount, ix.districtCount, ix.neighborhoodCount
}
