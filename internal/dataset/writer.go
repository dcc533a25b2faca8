package dataset

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/neighborhood-resolver/app/models"
)

// WriteOutput writes the final identifier-annotated record set. The ids are
// what the downstream geospatial export selects polygons with.
func WriteOutput(path string, rows []models.OutputRow) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	header := []string{
		"province_code",
		"district_id",
		"province_district",
		"district_neighborhood",
		"neighborhood_id",
		"subdivision",
	}
	if err := w.Write(header); err != nil {
		return fmt.Errorf("write output header: %w", err)
	}

	for _, row := range rows {
		record := []string{
			row.ProvinceCode,
			strconv.Itoa(row.DistrictID),
			row.ProvinceDistrict,
			row.DistrictNeighborhood,
			strconv.Itoa(row.NeighborhoodID),
			row.Subdivision,
		}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("write output row: %w", err)
		}
	}

	w.Flush()
	return w.Error()
}
