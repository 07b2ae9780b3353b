package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/quiethours/momentswap/internal/middleware"
	"github.com/quiethours/momentswap/internal/models"
	"github.com/quiethours/momentswap/internal/repo"
)

// DefaultGalleryLimit is the page size when the client omits ?limit=.
const DefaultGalleryLimit = 9

// MaxGalleryLimit caps ?limit= so a client cannot pull the whole table at once.
const MaxGalleryLimit = 100

// ==========================
// API Handler
// ==========================
type APIHandler struct {
	Moments *repo.MomentRepo
	Swaps   *repo.SwapRepo
}

// ==========================
// List Received Moments (gallery feed, newest swap first)
// ==========================
func (h *APIHandler) ListMoments(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		JSONError(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	limit := DefaultGalleryLimit
	offset := 0
	if l := r.URL.Query().Get("limit"); l != "" {
		if val, err := strconv.Atoi(l); err == nil && val > 0 {
			limit = val
		}
	}
	if limit > MaxGalleryLimit {
		limit = MaxGalleryLimit
	}
	if o := r.URL.Query().Get("offset"); o != "" {
		if val, err := strconv.Atoi(o); err == nil && val >= 0 {
			offset = val
		}
	}

	received, err := h.Swaps.ListReceived(r.Context(), userID, limit, offset)
	if err != nil {
		slog.Error("list received moments failed", "user_id", userID, "error", err)
		JSONError(w, ErrMessageInternal, http.StatusInternalServerError)
		return
	}
	if received == nil {
		received = []models.ReceivedMoment{}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(received)
}

// ==========================
// Stats (authored, received, store total, distinct active days)
// ==========================
func (h *APIHandler) Stats(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		JSONError(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	ctx := r.Context()
	stats := models.Stats{}
	var err error

	if stats.UserMoments, err = h.Moments.CountByUser(ctx, userID); err == nil {
		if stats.UserReceived, err = h.Swaps.CountByUser(ctx, userID); err == nil {
			if stats.TotalMoments, err = h.Moments.CountAll(ctx); err == nil {
				stats.Streak, err = h.Moments.CountDistinctDays(ctx, userID)
			}
		}
	}
	if err != nil {
		slog.Error("stats failed", "user_id", userID, "error", err)
		JSONError(w, ErrMessageInternal, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(stats)
}
