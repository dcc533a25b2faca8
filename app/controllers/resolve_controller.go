package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/neighborhood-resolver/app/models"
	"github.com/neighborhood-resolver/app/requests"
	"github.com/neighborhood-resolver/app/responses"
	"github.com/neighborhood-resolver/app/services"
)

// ResolveController handles single-record resolution requests.
type ResolveController struct {
	resolveService *services.ResolveService
	cacheService   *services.CacheService
	logger         *zap.Logger
}

// NewResolveController creates a ResolveController.
func NewResolveController(resolveService *services.ResolveService, cacheService *services.CacheService, logger *zap.Logger) *ResolveController {
	return &ResolveController{
		resolveService: resolveService,
		cacheService:   cacheService,
		logger:         logger,
	}
}

// Resolve resolves one raw province/district/neighborhood triple.
func (rc *ResolveController) Resolve(c *gin.Context) {
	var req requests.ResolveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, responses.ErrorResponse{
			Error:   "INVALID_REQUEST",
			Message: err.Error(),
		})
		return
	}

	start := time.Now()

	key := rc.cacheService.Key(req.Province, req.District, req.Neighborhood)
	if cached, found := rc.cacheService.Get(key); found {
		c.JSON(http.StatusOK, responses.ResolveResponse{
			Result:           cached,
			CacheHit:         true,
			ProcessingTimeMs: time.Since(start).Milliseconds(),
		})
		return
	}

	row, err := rc.resolveService.ResolveOne(req.Province, req.District, req.Neighborhood)
	if err != nil {
		status, code := http.StatusUnprocessableEntity, "NO_MATCH"
		switch {
		case errors.Is(err, models.ErrNoProvinceMatch):
			code = "NO_PROVINCE_MATCH"
		case errors.Is(err, models.ErrNoDistrictMatch):
			code = "NO_DISTRICT_MATCH"
		case errors.Is(err, models.ErrNoNeighborhoodMatch):
			code = "NO_NEIGHBORHOOD_MATCH"
		default:
			status = http.StatusInternalServerError
			code = "RESOLVE_ERROR"
		}
		c.JSON(status, responses.ErrorResponse{Error: code, Message: err.Error()})
		return
	}

	rc.cacheService.Set(key, row)

	c.JSON(http.StatusOK, responses.ResolveResponse{
		Result:           row,
		CacheHit:         false,
		ProcessingTimeMs: time.Since(start).Milliseconds(),
	})
}

// Stats reports reference index sizes and cache occupancy.
func (rc *ResolveController) Stats(c *gin.Context) {
	provinces, districts, neighborhoods := rc.resolveService.IndexCounts()
	c.JSON(http.StatusOK, responses.StatsResponse{
		Provinces:     provinces,
		Districts:     districts,
		Neighborhoods: neighborhoods,
		CachedResults: rc.cacheService.Len(),
	})
}

// HealthCheck reports liveness.
func (rc *ResolveController) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
