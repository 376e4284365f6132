package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"dinewise/internal/models/request_models"
	"dinewise/pkg/utils"
)

type RecommendationServiceInterface interface {
	GetEventRecommendation(ctx context.Context) string
	GetReservationRecommendation(ctx context.Context, req request_models.ReservationRequest) string
}

type RecommendationService struct {
	textGen utils.TextGeneratorInterface
}

func NewRecommendationService(textGen utils.TextGeneratorInterface) RecommendationServiceInterface {
	return &RecommendationService{
		textGen: textGen,
	}
}

// GetEventRecommendation asks the model for a themed recommendation keyed to
// today's date.
func (r *RecommendationService) GetEventRecommendation(ctx context.Context) string {
	prompt := BuildEventPrompt(time.Now())
	return r.fetchWithFallback(ctx, prompt)
}

// GetReservationRecommendation asks the model for a recommendation tailored
// to the reservation details. When any of the five fields is missing the
// instruction message comes back instead and no model call is made.
func (r *RecommendationService) GetReservationRecommendation(ctx context.Context, req request_models.ReservationRequest) string {
	if req.Occasion == "" || req.People == 0 || req.Cuisine == "" || req.Drink == "" || req.Budget == "" {
		return MissingFieldsMessage
	}

	prompt := BuildReservationPrompt(req)
	return r.fetchWithFallback(ctx, prompt)
}

// fetchWithFallback makes exactly one generation attempt and always returns a
// displayable string: the trimmed response, the fallback when the model had
// nothing to say, or the error description stacked on top of the fallback.
func (r *RecommendationService) fetchWithFallback(ctx context.Context, prompt string) string {
	text, err := r.textGen.GenerateText(ctx, prompt)
	if err != nil {
		if errors.Is(err, utils.ErrEmptyAIResponse) {
			return FallbackMessage
		}
		log.Printf("AI generation error: %v", err)
		return fmt.Sprintf("⚠️ AI Error: %v\n%s", err, FallbackMessage)
	}

	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return FallbackMessage
	}
	return trimmed
}
