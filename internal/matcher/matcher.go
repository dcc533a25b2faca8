// Package matcher resolves source records against the reference index one
// hierarchy level at a time: exact province lookup, then fuzzy district and
// neighborhood resolution scoped by the already-resolved parent.
package matcher

import (
	"fmt"
	"math"
	"sync/atomic"

	"github.com/agnivade/levenshtein"
	"github.com/xrash/smetrics"
	"go.uber.org/zap"

	"github.com/neighborhood-resolver/app/models"
	"github.com/neighborhood-resolver/internal/gazetteer"
	"github.com/neighborhood-resolver/internal/normalizer"
)

// Thresholds are the minimum similarity scores accepted per level. The
// neighborhood level runs twice: a high-precision first pass and a
// higher-recall second pass over the remainder.
type Thresholds struct {
	District           float64
	NeighborhoodFirst  float64
	NeighborhoodSecond float64
}

// DefaultThresholds returns the tuned production values.
func DefaultThresholds() Thresholds {
	return Thresholds{
		District:           0.90,
		NeighborhoodFirst:  0.93,
		NeighborhoodSecond: 0.85,
	}
}

// Matcher scores source names against reference candidates scoped by parent id.
type Matcher struct {
	index      *gazetteer.Index
	logger     *zap.Logger
	thresholds Thresholds

	// ties counts equal-maximum-score resolutions for audit. They are broken
	// deterministically (lowest reference id wins), not surfaced as errors.
	// Atomic: one Matcher is shared across concurrent lookup handlers.
	ties atomic.Int64
}

// New creates a Matcher over a built reference index.
func New(index *gazetteer.Index, thresholds Thresholds, logger *zap.Logger) *Matcher {
	return &Matcher{
		index:      index,
		logger:     logger,
		thresholds: thresholds,
	}
}

// Thresholds returns the configured acceptance thresholds.
func (m *Matcher) Thresholds() Thresholds {
	return m.thresholds
}

// Ties returns the number of equal-score tie-breaks performed so far.
func (m *Matcher) Ties() int {
	return int(m.ties.Load())
}

// Similarity scores two canonicalized names in [0,1]. Jaro-Winkler is the
// primary metric; the length-normalized Levenshtein ratio wins when whole-chunk
// edits beat character transpositions.
func Similarity(a, b string) float64 {
	score := smetrics.JaroWinkler(a, b, 0.7, 4)

	dist := levenshtein.ComputeDistance(a, b)
	maxLen := math.Max(float64(len(a)), float64(len(b)))
	if maxLen > 0 {
		if lev := 1.0 - float64(dist)/maxLen; lev > score {
			score = lev
		}
	}

	return score
}

// ResolveProvince resolves the record's province by exact canonical lookup.
// Failure is fatal for the record: lower levels cannot be scoped.
func (m *Matcher) ResolveProvince(rec *models.SourceRecord) error {
	name := normalizer.NormalizeName(rec.RawProvince)
	p, ok := m.index.ProvinceByCanonicalName(name)
	if !ok {
		rec.DropReason = models.DropNoProvinceMatch
		return fmt.Errorf("%w: %q", models.ErrNoProvinceMatch, rec.RawProvince)
	}

	id := p.ID
	rec.ProvinceID = &id
	return nil
}

// ResolveDistrict scores the record's district name against every district of
// the resolved province and accepts the best candidate at or above the
// district threshold. Single pass.
func (m *Matcher) ResolveDistrict(rec *models.SourceRecord) error {
	if rec.ProvinceID == nil {
		rec.DropReason = models.DropNoDistrictMatch
		return fmt.Errorf("%w: province unresolved for %q", models.ErrNoDistrictMatch, rec.RawDistrict)
	}

	name := normalizer.NormalizeName(rec.RawDistrict)
	bestID, bestScore := m.bestDistrict(name, *rec.ProvinceID)
	if bestScore < m.thresholds.District {
		rec.DropReason = models.DropNoDistrictMatch
		return fmt.Errorf("%w: %q (best %.3f)", models.ErrNoDistrictMatch, rec.RawDistrict, bestScore)
	}

	rec.DistrictID = &bestID
	rec.DropReason = models.DropNone
	return nil
}

// ResolveNeighborhood scores the record's neighborhood name against every
// neighborhood of the resolved district and accepts the best candidate at or
// above the given threshold. The service calls this once per pass.
func (m *Matcher) ResolveNeighborhood(rec *models.SourceRecord, threshold float64) error {
	if rec.DistrictID == nil {
		rec.DropReason = models.DropNoNeighborhoodMatch
		return fmt.Errorf("%w: district unresolved for %q", models.ErrNoNeighborhoodMatch, rec.RawNeighborhood)
	}

	name := normalizer.NormalizeNeighborhood(rec.RawNeighborhood)
	bestID, bestScore := m.bestNeighborhood(name, *rec.DistrictID)
	if bestScore < threshold {
		rec.DropReason = models.DropNoNeighborhoodMatch
		return fmt.Errorf("%w: %q (best %.3f)", models.ErrNoNeighborhoodMatch, rec.RawNeighborhood, bestScore)
	}

	rec.NeighborhoodID = &bestID
	rec.DropReason = models.DropNone
	return nil
}

// ResolveNeighborhoodFirstPass runs the high-precision neighborhood pass.
func (m *Matcher) ResolveNeighborhoodFirstPass(rec *models.SourceRecord) error {
	return m.ResolveNeighborhood(rec, m.thresholds.NeighborhoodFirst)
}

// ResolveNeighborhoodSecondPass runs the higher-recall pass over records the
// first pass left unmatched.
func (m *Matcher) ResolveNeighborhoodSecondPass(rec *models.SourceRecord) error {
	return m.ResolveNeighborhood(rec, m.thresholds.NeighborhoodSecond)
}

func (m *Matcher) bestDistrict(name string, provinceID int) (int, float64) {
	bestID, bestScore := 0, -1.0
	for _, d := range m.index.DistrictsIn(provinceID) {
		score := Similarity(name, d.CanonicalName)
		switch {
		case score > bestScore:
			bestID, bestScore = d.ID, score
		case score == bestScore:
			// Tie at maximum score: lowest reference id wins.
			m.ties.Add(1)
			m.logger.Debug("district tie at maximum score",
				zap.String("query", name),
				zap.Int("kept", min(bestID, d.ID)),
				zap.Int("discarded", max(bestID, d.ID)),
				zap.Float64("score", score))
			if d.ID < bestID {
				bestID = d.ID
			}
		}
	}
	return bestID, bestScore
}

func (m *Matcher) bestNeighborhood(name string, districtID int) (int, float64) {
	bestID, bestScore := 0, -1.0
	for _, n := range m.index.NeighborhoodsIn(districtID) {
		score := Similarity(name, n.CanonicalName)
		switch {
		case score > bestScore:
			bestID, bestScore = n.ID, score
		case score == bestScore:
			m.ties.Add(1)
			m.logger.Debug("neighborhood tie at maximum score",
				zap.String("query", name),
				zap.Int("kept", min(bestID, n.ID)),
				zap.Int("discarded", max(bestID, n.ID)),
				zap.Float64("score", score))
			if n.ID < bestID {
				bestID = n.ID
			}
		}
	}
	return bestID, bestScore
}
