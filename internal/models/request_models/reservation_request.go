package request_models

type ReservationRequest struct {
	Occasion string `json:"occasion"`
	People   int    `json:"people"`
	Cuisine  string `json:"cuisine"`
	Drink    string `json:"drink"`
	Budget   string `json:"budget"`
}
