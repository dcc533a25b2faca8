package models

// OutputRow is one row of the final identifier-annotated record set. The ids
// select polygons from the downstream geospatial dataset.
type OutputRow struct {
	ProvinceCode         string `json:"province_code"`
	DistrictID           int    `json:"district_id"`
	ProvinceDistrict     string `json:"province_district"`
	DistrictNeighborhood string `json:"district_neighborhood"`
	NeighborhoodID       int    `json:"neighborhood_id"`
	Subdivision          string `json:"subdivision"`
}
