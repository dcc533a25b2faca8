package responses

import "github.com/neighborhood-resolver/app/models"

// ResolveResponse wraps a resolved output row.
type ResolveResponse struct {
	Result           *models.OutputRow `json:"result"`
	CacheHit         bool              `json:"cache_hit"`
	ProcessingTimeMs int64             `json:"processing_time_ms"`
}

// ErrorResponse is the uniform error envelope.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// StatsResponse reports reference index sizes and cache occupancy.
type StatsResponse struct {
	Provinces     int `json:"provinces"`
	Districts     int `json:"districts"`
	Neighborhoods int `json:"neighborhoods"`
	CachedResults int `json:"cached_results"`
}
