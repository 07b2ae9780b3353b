package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/quiethours/momentswap/internal/repo"
	"github.com/quiethours/momentswap/internal/session"
	"golang.org/x/crypto/bcrypt"
)

// ==========================
// Auth Handler
// ==========================
type AuthHandler struct {
	Users    *repo.UserRepo
	Sessions *session.Manager
}

// ==========================
// Signup Form
// ==========================
func (h *AuthHandler) SignupForm(w http.ResponseWriter, r *http.Request) {
	render(w, "signup.html", nil)
}

// ==========================
// Signup (all fields required; duplicate email rejected; logs in on success)
// ==========================
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}

	username := strings.TrimSpace(r.FormValue("username"))
	email := strings.TrimSpace(r.FormValue("email"))
	password := r.FormValue("password")

	if username == "" || email == "" || password == "" {
		render(w, "signup.html", map[string]string{"Error": "All fields required"})
		return
	}

	exists, err := h.Users.EmailExists(r.Context(), email)
	if err != nil {
		slog.Error("signup: email lookup failed", "error", err)
		http.Error(w, ErrMessageInternal, http.StatusInternalServerError)
		return
	}
	if exists {
		render(w, "signup.html", map[string]string{"Error": "Email already registered"})
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		http.Error(w, ErrMessageInternal, http.StatusInternalServerError)
		return
	}

	user, err := h.Users.Create(r.Context(), username, email, string(hash))
	if err != nil {
		// Lost a race with a concurrent signup for the same email or username.
		if repo.IsUniqueViolation(err) {
			render(w, "signup.html", map[string]string{"Error": "Email already registered"})
			return
		}
		slog.Error("signup: create user failed", "error", err)
		http.Error(w, ErrMessageInternal, http.StatusInternalServerError)
		return
	}

	if err := h.Sessions.Login(r.Context(), w, user.ID); err != nil {
		slog.Error("signup: login failed", "error", err)
		http.Error(w, ErrMessageInternal, http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/exchange", http.StatusFound)
}

// ==========================
// Signin Form
// ==========================
func (h *AuthHandler) SigninForm(w http.ResponseWriter, r *http.Request) {
	render(w, "signin.html", nil)
}

// ==========================
// Signin (generic error for unknown email and wrong password alike)
// ==========================
func (h *AuthHandler) Signin(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}

	email := strings.TrimSpace(r.FormValue("email"))
	password := r.FormValue("password")

	user, err := h.Users.GetByEmail(r.Context(), email)
	if err != nil || bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		render(w, "signin.html", map[string]string{"Error": "Invalid email or password"})
		return
	}

	if err := h.Sessions.Login(r.Context(), w, user.ID); err != nil {
		slog.Error("signin: login failed", "error", err)
		http.Error(w, ErrMessageInternal, http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/exchange", http.StatusFound)
}

// ==========================
// Signout
// ==========================
func (h *AuthHandler) Signout(w http.ResponseWriter, r *http.Request) {
	if err := h.Sessions.Logout(r.Context(), w, r); err != nil {
		slog.Error("signout failed", "error", err)
	}
	http.Redirect(w, r, "/", http.StatusFound)
}
