package dto

import (
	"github.com/ramadhanf/slot-portal/internal/domain/entity"
)

// GameResponse represents a catalog entry on the wire
type GameResponse struct {
	ID       uint64 `json:"id"`
	Title    string `json:"title"`
	Provider string `json:"provider"`
	ImageURL string `json:"imageUrl"`
	Slug     string `json:"slug"`
	Category string `json:"category"`
}

// NewGameResponses builds a response slice from catalog entities.
// The play URL is deliberately absent; it is only handed out through the
// play endpoint after the access gate passes.
func NewGameResponses(games []*entity.Game) []GameResponse {
	responses := make([]GameResponse, 0, len(games))
	for _, g := range games {
		responses = append(responses, GameResponse{
			ID:       g.ID,
			Title:    g.Title,
			Provider: g.Provider,
			ImageURL: g.ImageURL,
			Slug:     g.Slug,
			Category: g.Category,
		})
	}
	return responses
}

// PlayResponse carries the launch URL returned by the play endpoint
type PlayResponse struct {
	URL string `json:"url"`
}
