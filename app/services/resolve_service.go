package services

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/neighborhood-resolver/app/models"
	"github.com/neighborhood-resolver/internal/gazetteer"
	"github.com/neighborhood-resolver/internal/matcher"
	"github.com/neighborhood-resolver/internal/reconcile"
)

// ResolveStats is the operator-facing summary: the final count is checked
// against the externally published total of affected neighborhoods.
type ResolveStats struct {
	Total             int `json:"total"`
	Resolved          int `json:"resolved"`
	NoProvince        int `json:"no_province"`
	NoDistrict        int `json:"no_district"`
	NoNeighborhood    int `json:"no_neighborhood"`
	Unrepresentable   int `json:"unrepresentable"`
	SecondPassRescues int `json:"second_pass_rescues"`
	Overridden        int `json:"overridden"`
	Ties              int `json:"ties"`
}

// ResolveService threads source records through the pipeline stages:
// normalize → match level by level → reconcile → output rows.
type ResolveService struct {
	index      *gazetteer.Index
	matcher    *matcher.Matcher
	reconciler *reconcile.Reconciler
	logger     *zap.Logger
}

// NewResolveService creates a ResolveService.
func NewResolveService(index *gazetteer.Index, m *matcher.Matcher, r *reconcile.Reconciler, logger *zap.Logger) *ResolveService {
	return &ResolveService{
		index:      index,
		matcher:    m,
		reconciler: r,
		logger:     logger,
	}
}

// ResolveAll runs the whole batch. Per-record failures are recovered locally;
// partial success is expected and normal given source/reference drift.
func (s *ResolveService) ResolveAll(records []models.SourceRecord) ([]models.OutputRow, ResolveStats) {
	start := time.Now()
	stats := ResolveStats{Total: len(records)}

	// Province and district, then the high-precision neighborhood pass.
	for i := range records {
		rec := &records[i]
		if err := s.matcher.ResolveProvince(rec); err != nil {
			stats.NoProvince++
			continue
		}
		if err := s.matcher.ResolveDistrict(rec); err != nil {
			stats.NoDistrict++
			continue
		}
		_ = s.matcher.ResolveNeighborhoodFirstPass(rec)
	}

	// Higher-recall pass over the remainder only.
	for i := range records {
		rec := &records[i]
		if rec.DistrictID == nil || rec.Resolved() {
			continue
		}
		if err := s.matcher.ResolveNeighborhoodSecondPass(rec); err == nil {
			stats.SecondPassRescues++
		}
	}

	reconciled, overridden := s.reconciler.Reconcile(records)
	stats.Overridden = overridden
	stats.Ties = s.matcher.Ties()

	rows, skipped := s.buildRows(reconciled)
	stats.Resolved = len(rows)
	stats.Unrepresentable = skipped
	stats.NoNeighborhood = stats.Total - stats.NoProvince - stats.NoDistrict - stats.Resolved - skipped

	s.logger.Info("batch resolution finished",
		zap.Int("total", stats.Total),
		zap.Int("resolved", stats.Resolved),
		zap.Int("no_province", stats.NoProvince),
		zap.Int("no_district", stats.NoDistrict),
		zap.Int("no_neighborhood", stats.NoNeighborhood),
		zap.Int("unrepresentable", stats.Unrepresentable),
		zap.Int("second_pass_rescues", stats.SecondPassRescues),
		zap.Int("overridden", stats.Overridden),
		zap.Int("ties", stats.Ties),
		zap.Duration("duration", time.Since(start)))

	return rows, stats
}

// ResolveOne resolves a single record through every stage, overrides included.
func (s *ResolveService) ResolveOne(province, district, neighborhood string) (*models.OutputRow, error) {
	rec := models.NewSourceRecord(province, district, neighborhood)

	if err := s.matcher.ResolveProvince(&rec); err != nil {
		return nil, err
	}
	if err := s.matcher.ResolveDistrict(&rec); err != nil {
		return nil, err
	}
	if err := s.matcher.ResolveNeighborhoodFirstPass(&rec); err != nil {
		if err := s.matcher.ResolveNeighborhoodSecondPass(&rec); err != nil {
			if !s.reconciler.Apply(&rec) {
				return nil, err
			}
		}
	}

	row, err := s.buildRow(&rec)
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// IndexCounts reports the reference table sizes.
func (s *ResolveService) IndexCounts() (provinces, districts, neighborhoods int) {
	return s.index.Counts()
}

// buildRows assembles output rows for the reconciled records and counts the
// ones that cannot be represented. Those cannot come from the matcher; the
// count guards against override entries pointing outside the reference set
// and must stay distinct from neighborhood-match failures in the summary.
func (s *ResolveService) buildRows(records []models.SourceRecord) ([]models.OutputRow, int) {
	rows := make([]models.OutputRow, 0, len(records))
	skipped := 0
	for i := range records {
		row, err := s.buildRow(&records[i])
		if err != nil {
			s.logger.Warn("skipping unrepresentable record", zap.Error(err))
			skipped++
			continue
		}
		rows = append(rows, row)
	}
	return rows, skipped
}

// buildRow assembles the output row from the resolved ids.
func (s *ResolveService) buildRow(rec *models.SourceRecord) (models.OutputRow, error) {
	if !rec.Resolved() || rec.DistrictID == nil || rec.ProvinceID == nil {
		return models.OutputRow{}, fmt.Errorf("record not fully resolved: %q/%q/%q",
			rec.RawProvince, rec.RawDistrict, rec.RawNeighborhood)
	}

	province, ok := s.index.ProvinceByID(*rec.ProvinceID)
	if !ok {
		return models.OutputRow{}, fmt.Errorf("province %d not in reference set", *rec.ProvinceID)
	}
	district, ok := s.index.DistrictByID(*rec.DistrictID)
	if !ok {
		return models.OutputRow{}, fmt.Errorf("district %d not in reference set", *rec.DistrictID)
	}

	// Overridden ids may postdate the reference snapshot; fall back to the
	// source spelling for the label.
	neighborhoodName := rec.RawNeighborhood
	if n, ok := s.index.NeighborhoodByID(*rec.NeighborhoodID); ok {
		neighborhoodName = n.Name
	}

	return models.OutputRow{
		ProvinceCode:         province.Code,
		DistrictID:           district.ID,
		ProvinceDistrict:     fmt.Sprintf("%s-%s", province.Name, district.Name),
		DistrictNeighborhood: fmt.Sprintf("%s-%s", district.Name, neighborhoodName),
		NeighborhoodID:       *rec.NeighborhoodID,
		Subdivision:          rec.Subdivision,
	}, nil
}
