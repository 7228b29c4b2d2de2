package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/msomdec/supportlog/internal/handler"
)

func newTestMux(t *testing.T) *http.ServeMux {
	t.Helper()
	auth, logs := newTestServices(t)
	mux := http.NewServeMux()
	handler.RegisterRoutes(mux, auth, logs, false, "")
	return mux
}

func postJSON(mux *http.ServeMux, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)
	return w
}

func TestHandleSignup_Success(t *testing.T) {
	mux := newTestMux(t)

	w := postJSON(mux, "/api/signup", `{"email":"new@example.com","full_name":"New User","password":"longpassword1"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	var body map[string]string
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body["message"] == "" {
		t.Fatal("expected a confirmation message")
	}

	// Signup must not authenticate the caller.
	if len(w.Result().Cookies()) != 0 {
		t.Fatal("signup must not set a session cookie")
	}
}

func TestHandleSignup_InvalidBody(t *testing.T) {
	mux := newTestMux(t)

	w := postJSON(mux, "/api/signup", `{not json`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for malformed JSON, got %d", w.Code)
	}
}

func TestHandleSignup_Validation(t *testing.T) {
	mux := newTestMux(t)

	tests := []struct {
		name string
		body string
	}{
		{"missing email", `{"full_name":"A","password":"longpassword1"}`},
		{"missing full name", `{"email":"a@x.com","password":"longpassword1"}`},
		{"short password", `{"email":"a@x.com","full_name":"A","password":"ninechars"}`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := postJSON(mux, "/api/signup", tc.body)
			if w.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d", w.Code)
			}
		})
	}
}

func TestHandleSignup_DuplicateEmail(t *testing.T) {
	mux := newTestMux(t)

	w := postJSON(mux, "/api/signup", `{"email":"dup@example.com","full_name":"User 1","password":"longpassword1"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("first signup: expected 201, got %d", w.Code)
	}

	// Case-differing email still collides.
	w = postJSON(mux, "/api/signup", `{"email":"DUP@example.com","full_name":"User 2","password":"longpassword2"}`)
	if w.Code != http.StatusConflict {
		t.Fatalf("second signup: expected 409, got %d", w.Code)
	}
}

func TestHandleLogin_SetsSessionCookie(t *testing.T) {
	mux := newTestMux(t)

	postJSON(mux, "/api/signup", `{"email":"login@example.com","full_name":"Login User","password":"longpassword1"}`)

	w := postJSON(mux, "/api/login", `{"email":"login@example.com","password":"longpassword1"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var cookie *http.Cookie
	for _, c := range w.Result().Cookies() {
		if c.Name == "session_token" {
			cookie = c
		}
	}
	if cookie == nil {
		t.Fatal("expected session_token cookie to be set")
	}
	if cookie.Value == "" {
		t.Fatal("expected a non-empty token")
	}
	if !cookie.HttpOnly {
		t.Fatal("session cookie must be HttpOnly")
	}
	if cookie.SameSite != http.SameSiteStrictMode {
		t.Fatalf("expected SameSite=Strict, got %v", cookie.SameSite)
	}

	var body struct {
		User struct {
			ID       int64  `json:"id"`
			Email    string `json:"email"`
			FullName string `json:"full_name"`
		} `json:"user"`
	}
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.User.Email != "login@example.com" {
		t.Fatalf("expected profile email login@example.com, got %s", body.User.Email)
	}
}

func TestHandleLogin_MissingFields(t *testing.T) {
	mux := newTestMux(t)

	w := postJSON(mux, "/api/login", `{"email":"","password":""}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestHandleLogin_NoAccountEnumeration(t *testing.T) {
	mux := newTestMux(t)

	postJSON(mux, "/api/signup", `{"email":"known@example.com","full_name":"Known","password":"longpassword1"}`)

	wrongPw := postJSON(mux, "/api/login", `{"email":"known@example.com","password":"wrongpassword"}`)
	unknown := postJSON(mux, "/api/login", `{"email":"nobody@example.com","password":"longpassword1"}`)

	if wrongPw.Code != http.StatusUnauthorized {
		t.Fatalf("wrong password: expected 401, got %d", wrongPw.Code)
	}
	if unknown.Code != wrongPw.Code {
		t.Fatalf("status codes differ: %d vs %d", wrongPw.Code, unknown.Code)
	}
	// The bodies must be bit-identical so the two cases cannot be told
	// apart.
	if wrongPw.Body.String() != unknown.Body.String() {
		t.Fatalf("bodies differ: %q vs %q", wrongPw.Body.String(), unknown.Body.String())
	}
}

func TestHandleLogin_ResponseNeverLeaksSecrets(t *testing.T) {
	mux := newTestMux(t)

	postJSON(mux, "/api/signup", `{"email":"leak@example.com","full_name":"Leak Check","password":"longpassword1"}`)
	w := postJSON(mux, "/api/login", `{"email":"leak@example.com","password":"longpassword1"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	body := w.Body.String()
	for _, field := range []string{"password", "salt", "hash"} {
		if strings.Contains(body, field) {
			t.Fatalf("response body mentions %q: %s", field, body)
		}
	}
}

func TestHandleLogout_WithoutSession(t *testing.T) {
	mux := newTestMux(t)

	w := postJSON(mux, "/api/logout", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 for logout with no session, got %d", w.Code)
	}

	var cleared *http.Cookie
	for _, c := range w.Result().Cookies() {
		if c.Name == "session_token" {
			cleared = c
		}
	}
	if cleared == nil || cleared.MaxAge != -1 {
		t.Fatal("expected the session cookie to be cleared")
	}
}

func TestHandleMe_Unauthorized(t *testing.T) {
	mux := newTestMux(t)

	req := httptest.NewRequest(http.MethodGet, "/api/me", nil)
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestUnknownAPIRoute(t *testing.T) {
	mux := newTestMux(t)

	req := httptest.NewRequest(http.MethodGet, "/api/nope", nil)
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}
