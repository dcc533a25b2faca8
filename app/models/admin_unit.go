package models

// Admin levels in the reference dataset.
const (
	LevelProvince     = 1
	LevelDistrict     = 2
	LevelNeighborhood = 3
)

// Province is a top-level administrative region (il). Reference entity,
// loaded once and never mutated.
type Province struct {
	ID            int    `json:"id"`
	Name          string `json:"name"`
	CanonicalName string `json:"canonical_name"`
	Code          string `json:"code"` // ISO 3166-2 style region code, e.g. "TR-01"
}

// District is a subprovincial subdivision (ilce) owned by exactly one province.
type District struct {
	ID            int    `json:"id"`
	Name          string `json:"name"`
	CanonicalName string `json:"canonical_name"`
	ProvinceID    int    `json:"province_id"`
}

// Neighborhood (mahalle) is the leaf of the hierarchy. ProvinceID is
// denormalized for fast filtering.
type Neighborhood struct {
	ID            int    `json:"id"`
	Name          string `json:"name"`
	CanonicalName string `json:"canonical_name"`
	DistrictID    int    `json:"district_id"`
	ProvinceID    int    `json:"province_id"`
}
