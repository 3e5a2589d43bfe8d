package dto

// HealthDTO는 /health 응답이다. 블로그 API 에 닿지 못하면 Status 는 "degraded" 다.
type HealthDTO struct {
	Status  string `json:"status"`
	BlogAPI string `json:"blog_api"`
	Error   string `json:"error,omitempty"`
}
