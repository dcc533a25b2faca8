// Package reconcile applies the manual override table for known data-quality
// exceptions and filters records the pipeline could not resolve.
package reconcile

import (
	"go.uber.org/zap"

	"github.com/neighborhood-resolver/app/models"
	"github.com/neighborhood-resolver/internal/normalizer"
)

// Reconciler is the last pipeline stage before output.
type Reconciler struct {
	overrides map[OverrideKey]int
	logger    *zap.Logger
}

// New creates a Reconciler over the built-in override table.
func New(logger *zap.Logger) *Reconciler {
	return NewWithOverrides(Overrides(), logger)
}

// NewWithOverrides creates a Reconciler over an explicit table.
func NewWithOverrides(table map[OverrideKey]int, logger *zap.Logger) *Reconciler {
	return &Reconciler{overrides: table, logger: logger}
}

// Apply looks the record up in the override table and, on a hit, assigns the
// hard-coded identifier regardless of any fuzzy result. Returns true on a hit.
func (r *Reconciler) Apply(rec *models.SourceRecord) bool {
	if rec.DistrictID == nil {
		return false
	}

	key := OverrideKey{
		DistrictID:   *rec.DistrictID,
		Neighborhood: normalizer.NormalizeNeighborhood(rec.RawNeighborhood),
	}
	id, ok := r.overrides[key]
	if !ok {
		return false
	}

	if rec.NeighborhoodID != nil && *rec.NeighborhoodID == id {
		// Already reconciled; keep Apply idempotent for repeated runs.
		return false
	}

	rec.NeighborhoodID = &id
	rec.DropReason = models.DropNone
	r.logger.Info("override applied",
		zap.Int("district_id", key.DistrictID),
		zap.String("neighborhood", key.Neighborhood),
		zap.Int("neighborhood_id", id))
	return true
}

// Reconcile applies overrides and drops records whose neighborhood id is
// still nil, which the reference set cannot represent at all. Every emitted
// record has a non-nil neighborhood id. Distinct source rows converging on
// one neighborhood id all remain; identical rows were collapsed upstream.
func (r *Reconciler) Reconcile(records []models.SourceRecord) ([]models.SourceRecord, int) {
	out := make([]models.SourceRecord, 0, len(records))
	applied := 0

	for _, rec := range records {
		if r.Apply(&rec) {
			applied++
		}
		if !rec.Resolved() {
			r.logger.Debug("record dropped",
				zap.String("province", rec.RawProvince),
				zap.String("district", rec.RawDistrict),
				zap.String("neighborhood", rec.RawNeighborhood),
				zap.String("reason", string(rec.DropReason)))
			continue
		}
		out = append(out, rec)
	}

	return out, applied
}
