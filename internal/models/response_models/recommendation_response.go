package response_models

type RecommendationResponse struct {
	Recommendation string `json:"recommendation"`
}
