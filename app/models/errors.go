package models

import "errors"

var (
	// ErrReferenceData aborts the whole run: there is nothing to match against.
	ErrReferenceData = errors.New("reference dataset missing or malformed")

	// ErrNoProvinceMatch is fatal for a single record; lower levels cannot be
	// scoped without a province.
	ErrNoProvinceMatch = errors.New("no exact province match")

	ErrNoDistrictMatch     = errors.New("no district candidate above threshold")
	ErrNoNeighborhoodMatch = errors.New("no neighborhood candidate above threshold")
)
