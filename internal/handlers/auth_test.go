package handlers

import (
	"database/sql"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/quiethours/momentswap/internal/repo"
	"github.com/quiethours/momentswap/internal/session"
	"golang.org/x/crypto/bcrypt"
)

func newAuthHandler(t *testing.T) (*AuthHandler, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	sessions := session.NewManager(repo.NewSessionRepo(db), []byte("test-secret"), time.Hour, false)
	return &AuthHandler{Users: repo.NewUserRepo(db), Sessions: sessions}, mock
}

func postForm(path string, form url.Values) *http.Request {
	req := httptest.NewRequest("POST", path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func TestSignup_MissingFields(t *testing.T) {
	h, mock := newAuthHandler(t)

	rr := httptest.NewRecorder()
	h.Signup(rr, postForm("/signup", url.Values{"username": {"alice"}}))

	if rr.Code != http.StatusOK {
		t.Errorf("status: got %d, want 200", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), "All fields required") {
		t.Error("expected inline validation error")
	}
	// Nothing may touch the store for an incomplete form.
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("expectations: %v", err)
	}
}

func TestSignup_DuplicateEmail(t *testing.T) {
	h, mock := newAuthHandler(t)

	mock.ExpectQuery(`SELECT EXISTS`).
		WithArgs("alice@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	form := url.Values{
		"username": {"alice"},
		"email":    {"alice@example.com"},
		"password": {"hunter2"},
	}
	rr := httptest.NewRecorder()
	h.Signup(rr, postForm("/signup", form))

	if rr.Code != http.StatusOK {
		t.Errorf("status: got %d, want 200", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), "Email already registered") {
		t.Error("expected duplicate email error")
	}
	// No INSERT was expected, so a user row cannot have been created.
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("expectations: %v", err)
	}
}

func TestSignup_Success(t *testing.T) {
	h, mock := newAuthHandler(t)

	mock.ExpectQuery(`SELECT EXISTS`).
		WithArgs("alice@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
	mock.ExpectQuery(`INSERT INTO users`).
		WithArgs("alice", "alice@example.com", sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "email", "created_at"}).
			AddRow(1, "alice", "alice@example.com", time.Now()))
	mock.ExpectExec(`INSERT INTO sessions`).
		WithArgs(sqlmock.AnyArg(), 1, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	form := url.Values{
		"username": {"alice"},
		"email":    {"alice@example.com"},
		"password": {"hunter2"},
	}
	rr := httptest.NewRecorder()
	h.Signup(rr, postForm("/signup", form))

	if rr.Code != http.StatusFound {
		t.Fatalf("status: got %d, want 302", rr.Code)
	}
	if loc := rr.Header().Get("Location"); loc != "/exchange" {
		t.Errorf("redirect: got %q, want /exchange", loc)
	}
	var hasCookie bool
	for _, c := range rr.Result().Cookies() {
		if c.Name == session.CookieName && c.Value != "" {
			hasCookie = true
		}
	}
	if !hasCookie {
		t.Error("expected session cookie after signup")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("expectations: %v", err)
	}
}

func TestSignin_WrongPassword(t *testing.T) {
	h, mock := newAuthHandler(t)

	hash, _ := bcrypt.GenerateFromPassword([]byte("correct"), bcrypt.MinCost)
	mock.ExpectQuery(`SELECT id, username, email, password_hash, created_at`).
		WithArgs("alice@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "email", "password_hash", "created_at"}).
			AddRow(1, "alice", "alice@example.com", string(hash), time.Now()))

	form := url.Values{"email": {"alice@example.com"}, "password": {"wrong"}}
	rr := httptest.NewRecorder()
	h.Signin(rr, postForm("/signin", form))

	if rr.Code != http.StatusOK {
		t.Errorf("status: got %d, want 200", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), "Invalid email or password") {
		t.Error("expected generic credentials error")
	}
	if len(rr.Result().Cookies()) != 0 {
		t.Error("no session may be established on failed signin")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("expectations: %v", err)
	}
}

func TestSignin_UnknownEmail_SameMessage(t *testing.T) {
	h, mock := newAuthHandler(t)

	mock.ExpectQuery(`SELECT id, username, email, password_hash, created_at`).
		WithArgs("nobody@example.com").
		WillReturnError(sql.ErrNoRows)

	form := url.Values{"email": {"nobody@example.com"}, "password": {"whatever"}}
	rr := httptest.NewRecorder()
	h.Signin(rr, postForm("/signin", form))

	// Unknown email and wrong password are indistinguishable to the client.
	if !strings.Contains(rr.Body.String(), "Invalid email or password") {
		t.Error("expected generic credentials error")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("expectations: %v", err)
	}
}
