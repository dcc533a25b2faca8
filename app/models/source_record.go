package models

import "strings"

// DropReason explains why a record was excluded from the final output.
type DropReason string

const (
	DropNone                DropReason = ""
	DropNoProvinceMatch     DropReason = "NO_PROVINCE_MATCH"
	DropNoDistrictMatch     DropReason = "NO_DISTRICT_MATCH"
	DropNoNeighborhoodMatch DropReason = "NO_NEIGHBORHOOD_MATCH"
)

// SourceRecord is one row of the affected-neighborhoods listing. The raw
// fields are free text; the id fields are populated progressively as each
// hierarchy level resolves.
type SourceRecord struct {
	RawProvince     string `json:"raw_province"`
	RawDistrict     string `json:"raw_district"`
	RawNeighborhood string `json:"raw_neighborhood"`
	Subdivision     string `json:"subdivision"` // comma-delimited suffix split off the neighborhood text

	ProvinceID     *int `json:"province_id,omitempty"`
	DistrictID     *int `json:"district_id,omitempty"`
	NeighborhoodID *int `json:"neighborhood_id,omitempty"`

	DropReason DropReason `json:"drop_reason,omitempty"`
}

// NewSourceRecord builds a record from the raw listing columns. The district
// column may carry a "/"-delimited sub-entity which is discarded; the
// neighborhood column may carry a comma-delimited subdivision suffix which is
// extracted into its own field.
func NewSourceRecord(province, district, neighborhood string) SourceRecord {
	if i := strings.Index(district, "/"); i >= 0 {
		district = district[:i]
	}

	var subdivision string
	if i := strings.Index(neighborhood, ","); i >= 0 {
		subdivision = strings.TrimSpace(neighborhood[i+1:])
		neighborhood = neighborhood[:i]
	}

	return SourceRecord{
		RawProvince:     strings.TrimSpace(province),
		RawDistrict:     strings.TrimSpace(district),
		RawNeighborhood: strings.TrimSpace(neighborhood),
		Subdivision:     subdivision,
	}
}

// Resolved reports whether the record reached a neighborhood id.
func (sr *SourceRecord) Resolved() bool {
	return sr.NeighborhoodID != nil
}
