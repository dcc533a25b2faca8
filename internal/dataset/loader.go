// Package dataset reads the already-parsed tabular inputs and writes the
// final record set. Thin plumbing around encoding/csv; all algorithmic work
// lives in the matcher packages.
package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/neighborhood-resolver/app/models"
	"github.com/neighborhood-resolver/internal/normalizer"
)

// LoadProvinces reads the province-code table:
// province_id, province_name, code.
func LoadProvinces(path string) ([]models.Province, error) {
	rows, err := readTable(path, 3)
	if err != nil {
		return nil, err
	}

	provinces := make([]models.Province, 0, len(rows))
	for i, row := range rows {
		id, err := strconv.Atoi(row[0])
		if err != nil {
			return nil, fmt.Errorf("%w: %s row %d: bad province id %q", models.ErrReferenceData, path, i+2, row[0])
		}
		name := strings.TrimSpace(row[1])
		provinces = append(provinces, models.Province{
			ID:            id,
			Name:          name,
			CanonicalName: normalizer.NormalizeName(name),
			Code:          strings.TrimSpace(row[2]),
		})
	}
	return provinces, nil
}

// LoadDistricts reads the reference province/district table:
// province_id, district_id, district_name.
func LoadDistricts(path string) ([]models.District, error) {
	rows, err := readTable(path, 3)
	if err != nil {
		return nil, err
	}

	districts := make([]models.District, 0, len(rows))
	for i, row := range rows {
		provinceID, err := strconv.Atoi(row[0])
		if err != nil {
			return nil, fmt.Errorf("%w: %s row %d: bad province id %q", models.ErrReferenceData, path, i+2, row[0])
		}
		id, err := strconv.Atoi(row[1])
		if err != nil {
			return nil, fmt.Errorf("%w: %s row %d: bad district id %q", models.ErrReferenceData, path, i+2, row[1])
		}
		name := strings.TrimSpace(row[2])
		districts = append(districts, models.District{
			ID:            id,
			Name:          name,
			CanonicalName: normalizer.NormalizeName(name),
			ProvinceID:    provinceID,
		})
	}
	return districts, nil
}

// LoadNeighborhoods reads the reference neighborhood table:
// province_id, district_id, neighborhood_id, neighborhood_name.
func LoadNeighborhoods(path string) ([]models.Neighborhood, error) {
	rows, err := readTable(path, 4)
	if err != nil {
		return nil, err
	}

	neighborhoods := make([]models.Neighborhood, 0, len(rows))
	for i, row := range rows {
		provinceID, err := strconv.Atoi(row[0])
		if err != nil {
			return nil, fmt.Errorf("%w: %s row %d: bad province id %q", models.ErrReferenceData, path, i+2, row[0])
		}
		districtID, err := strconv.Atoi(row[1])
		if err != nil {
			return nil, fmt.Errorf("%w: %s row %d: bad district id %q", models.ErrReferenceData, path, i+2, row[1])
		}
		id, err := strconv.Atoi(row[2])
		if err != nil {
			return nil, fmt.Errorf("%w: %s row %d: bad neighborhood id %q", models.ErrReferenceData, path, i+2, row[2])
		}
		name := strings.TrimSpace(row[3])
		neighborhoods = append(neighborhoods, models.Neighborhood{
			ID:            id,
			Name:          name,
			CanonicalName: normalizer.NormalizeNeighborhood(name),
			DistrictID:    districtID,
			ProvinceID:    provinceID,
		})
	}
	return neighborhoods, nil
}

// LoadSourceListing reads the affected-neighborhoods listing:
// province, district, neighborhood. Byte-identical rows collapse to one,
// preserving the source's own distinct semantics; first occurrence order is
// kept.
func LoadSourceListing(path string) ([]models.SourceRecord, error) {
	rows, err := readTable(path, 3)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, len(rows))
	records := make([]models.SourceRecord, 0, len(rows))
	for _, row := range rows {
		key := row[0] + "\x1f" + row[1] + "\x1f" + row[2]
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		records = append(records, models.NewSourceRecord(row[0], row[1], row[2]))
	}
	return records, nil
}

// readTable reads a headered CSV and validates the column count.
func readTable(path string, columns int) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrReferenceData, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = columns
	r.TrimLeadingSpace = true

	// Skip the header row.
	if _, err := r.Read(); err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("%w: %s is empty", models.ErrReferenceData, path)
		}
		return nil, fmt.Errorf("%w: %s: %v", models.ErrReferenceData, path, err)
	}

	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", models.ErrReferenceData, path, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: %s has a header but no rows", models.ErrReferenceData, path)
	}
	return rows, nil
}
