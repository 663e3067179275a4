package api

import (
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/moruhq/moru-api/internal/api/middleware"
	"github.com/moruhq/moru-api/internal/api/shared"
	"github.com/moruhq/moru-api/internal/service"
)

// MemoHandler handles memo-related HTTP requests. All of its routes are
// mounted behind the session middleware; the owner ID always comes from the
// authenticated session in the request context, never from the payload.
type MemoHandler struct {
	memoService service.MemoService
	validator   *validator.Validate
}

// NewMemoHandler creates a new MemoHandler.
func NewMemoHandler(memoService service.MemoService) *MemoHandler {
	return &MemoHandler{
		memoService: memoService,
		validator:   validator.New(),
	}
}

// CreateMemo handles POST /api/memos requests.
func (h *MemoHandler) CreateMemo(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "User ID not found or invalid")
		return
	}

	// Parse request body
	var req CreateMemoRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	// Validate request
	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Content is required")
		return
	}

	// HandleAPIError sorts the failure modes: 400 for validation
	// failures, 500 for everything else.
	memo, err := h.memoService.CreateMemo(r.Context(), userID, req.Content)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, memoToResponse(memo))
}

// ListMemos handles GET /api/memos requests.
// It returns only the authenticated user's memos, newest first.
func (h *MemoHandler) ListMemos(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "User ID not found or invalid")
		return
	}

	memos, err := h.memoService.ListMemos(r.Context(), userID)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list memos")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, memosToResponse(memos))
}
