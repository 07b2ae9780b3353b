package session

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/quiethours/momentswap/internal/repo"
)

// CookieName is the session cookie set on login.
const CookieName = "momentswap_session"

// ErrNoSession is returned by CurrentUser when the request carries no
// usable session: missing cookie, bad signature, or an expired/deleted row.
var ErrNoSession = errors.New("no active session")

// Manager maps requests to user identities. The authoritative session
// record lives in the sessions table; the cookie only carries the session
// id inside a signed token so it cannot be forged or enumerated.
type Manager struct {
	Sessions *repo.SessionRepo
	Secret   []byte
	TTL      time.Duration
	// Secure marks the cookie Secure; set when serving HTTPS.
	Secure bool
}

func NewManager(sessions *repo.SessionRepo, secret []byte, ttl time.Duration, secure bool) *Manager {
	return &Manager{Sessions: sessions, Secret: secret, TTL: ttl, Secure: secure}
}

// Login creates a server-side session for userID and sets the cookie.
func (m *Manager) Login(ctx context.Context, w http.ResponseWriter, userID int) error {
	id := uuid.NewString()
	expires := time.Now().Add(m.TTL)

	if err := m.Sessions.Create(ctx, id, userID, expires); err != nil {
		return err
	}

	claims := jwt.MapClaims{
		"sid": id,
		"exp": expires.Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.Secret)
	if err != nil {
		return err
	}

	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    signed,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   m.Secure,
		Expires:  expires,
	})
	return nil
}

// Logout deletes the session row if one is present and clears the cookie.
func (m *Manager) Logout(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	if id, err := m.sessionID(r); err == nil {
		if err := m.Sessions.Delete(ctx, id); err != nil {
			return err
		}
	}

	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   m.Secure,
		MaxAge:   -1,
	})
	return nil
}

// CurrentUser resolves the request's session to a user id, or ErrNoSession.
func (m *Manager) CurrentUser(ctx context.Context, r *http.Request) (int, error) {
	id, err := m.sessionID(r)
	if err != nil {
		return 0, err
	}

	sess, err := m.Sessions.Get(ctx, id)
	if err != nil {
		return 0, ErrNoSession
	}
	if time.Now().After(sess.ExpiresAt) {
		return 0, ErrNoSession
	}

	return sess.UserID, nil
}

// sessionID extracts and verifies the session id from the cookie token.
func (m *Manager) sessionID(r *http.Request) (string, error) {
	cookie, err := r.Cookie(CookieName)
	if err != nil || cookie.Value == "" {
		return "", ErrNoSession
	}

	token, err := jwt.Parse(cookie.Value, func(t *jwt.Token) (interface{}, error) {
		return m.Secret, nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil || !token.Valid {
		return "", ErrNoSession
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", ErrNoSession
	}
	id, ok := claims["sid"].(string)
	if !ok || id == "" {
		return "", ErrNoSession
	}
	return id, nil
}
