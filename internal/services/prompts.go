package services

import (
	"fmt"
	"time"

	"dinewise/internal/models/request_models"
	"dinewise/pkg/utils"
)

// Choices rendered into the reservation form selectors. The selected value is
// passed through to the prompt verbatim.
var (
	CuisineOptions = []string{"Veg", "Non-Veg", "Vegan"}
	DrinkOptions   = []string{"Soft Drinks", "Mocktails", "Cocktails", "Beer"}
)

// Fixed user-facing strings, displayed exactly as written here.
const (
	MissingFieldsMessage = "⚠️ Please fill in all fields before generating a recommendation."
	FallbackMessage      = "⚠️ AI response unavailable. Please try again later."
)

const eventPromptTemplate = `Today is %s. Identify any special occasion (e.g., Valentine's Day, Christmas, Thanksgiving) and recommend:
- A restaurant theme
- Ideal cuisine (Veg, Non-Veg, Vegan)
- Drinks (Soft Drinks, Mocktails, Cocktails, Beer)
- A dessert pairing
- A discount strategy based on demand trends
- A short marketing slogan
- AI-generated Instagram caption and trending hashtags
- AI-optimized lighting and music
- AI-driven sustainability strategies
- AI-suggested seating arrangement
- AI-predicted customer sentiment & demand
- AI-enhanced pricing strategy for discounts
- AI-recommended event entertainment options
- AI-suggested staff dress code for the theme
- AI-driven social media engagement tips
- AI-generated promotional email template`

const reservationPromptTemplate = `A restaurant reservation has been made with:
- Occasion: %s
- Guests: %d
- Cuisine: %s
- Drinks: %s
- Budget: %s

Recommend:
- A suitable event theme
- Decoration style
- Custom menu (Dishes, Drinks, Dessert Combo)
- Discount offer
- A unique marketing slogan
- Instagram caption & trending hashtags
- AI-powered seating optimization
- Allergy-friendly & diet-specific recommendations
- Sustainable dining strategies
- AI-generated personalized thank-you message
- AI-recommended music playlist
- AI-optimized table arrangements for group dynamics
- AI-driven guest experience enhancements
- AI-generated exclusive loyalty program offers`

// BuildEventPrompt writes the daily instruction for the given date, e.g.
// "Today is February 14. ...".
func BuildEventPrompt(date time.Time) string {
	return fmt.Sprintf(eventPromptTemplate, utils.FormatPromptDate(date))
}

// BuildReservationPrompt embeds the five reservation fields into the custom
// instruction. Callers check field presence first.
func BuildReservationPrompt(req request_models.ReservationRequest) string {
	return fmt.Sprintf(reservationPromptTemplate,
		req.Occasion, req.People, req.Cuisine, req.Drink, req.Budget)
}
