package requests

// ResolveRequest carries one raw source record to resolve.
type ResolveRequest struct {
	Province     string `json:"province" binding:"required"`
	District     string `json:"district" binding:"required"`
	Neighborhood string `json:"neighborhood" binding:"required"`
}
