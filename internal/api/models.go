package api

import (
	"time"

	"github.com/moruhq/moru-api/internal/domain"
)

// Common request/response structures

// SignupRequest defines the payload for the user registration endpoint.
// Length bounds are enforced by the domain layer after trimming, so the
// tags only require presence.
type SignupRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginRequest defines the payload for the user login endpoint.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// AuthResponse defines the successful response for authentication endpoints.
// The session token itself travels only in the HTTP-only cookie, never in
// the body.
type AuthResponse struct {
	UserID   int64  `json:"user_id"`
	Username string `json:"username"`
}

// MeResponse defines the response for the current-user endpoint.
type MeResponse struct {
	LoggedIn bool   `json:"logged_in"`
	UserID   int64  `json:"user_id"`
	Username string `json:"username"`
}

// CreateMemoRequest represents the request body for creating a new memo.
type CreateMemoRequest struct {
	Content string `json:"content" validate:"required"`
}

// MemoResponse represents the response data for a memo.
type MemoResponse struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// memoToResponse converts a domain.Memo to a MemoResponse.
func memoToResponse(memo *domain.Memo) MemoResponse {
	return MemoResponse{
		ID:        memo.ID.String(),
		Content:   memo.Content,
		CreatedAt: memo.CreatedAt,
	}
}

// memosToResponse converts a slice of domain memos, preserving order.
func memosToResponse(memos []*domain.Memo) []MemoResponse {
	out := make([]MemoResponse, 0, len(memos))
	for _, memo := range memos {
		out = append(out, memoToResponse(memo))
	}
	return out
}
