package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/quiethours/momentswap/internal/exchange"
	"github.com/quiethours/momentswap/internal/middleware"
)

// ==========================
// Exchange Handler
// ==========================
type ExchangeHandler struct {
	Service *exchange.Service
}

// ==========================
// Exchange Form
// ==========================
func (h *ExchangeHandler) Form(w http.ResponseWriter, r *http.Request) {
	render(w, "exchange.html", nil)
}

// ==========================
// Submit (runs the exchange workflow, renders the received moment)
// ==========================
func (h *ExchangeHandler) Submit(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		http.Redirect(w, r, "/signin", http.StatusFound)
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}

	received, err := h.Service.Submit(
		r.Context(),
		userID,
		r.FormValue("time_value"),
		r.FormValue("mood"),
		r.FormValue("text"),
	)
	if errors.Is(err, exchange.ErrEmptyText) {
		// Empty submissions go silently back to the form.
		http.Redirect(w, r, "/exchange", http.StatusFound)
		return
	}
	if err != nil {
		slog.Error("exchange failed", "user_id", userID, "error", err)
		http.Error(w, ErrMessageInternal, http.StatusInternalServerError)
		return
	}

	render(w, "result.html", received)
}
