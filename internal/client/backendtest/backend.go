// Package backendtest runs an in-process fake of the WellbeingHub backend
// for tests. It implements the user, marketplace and group endpoints over
// in-memory state and issues short-lived HS256 JWTs on login.
package backendtest

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/dmitrijs2005/wellbeinghub/internal/client/models"
)

var secret = []byte("backendtest-secret")

// Recorded is one request as the backend saw it.
type Recorded struct {
	Method        string
	Path          string
	Authorization string
	HasAuth       bool
}

type account struct {
	user     models.User
	password string
}

type Backend struct {
	Server   *httptest.Server
	TokenTTL time.Duration

	mu       sync.Mutex
	accounts map[string]*account
	tokens   map[string]int64
	listings []models.Listing
	groups   []models.Group
	requests []Recorded
	nextID   int64
}

// New starts a backend that is shut down when the test ends.
func New(t testing.TB) *Backend {
	t.Helper()
	b := &Backend{
		TokenTTL: time.Hour,
		accounts: make(map[string]*account),
		tokens:   make(map[string]int64),
	}
	b.Server = httptest.NewServer(b.routes())
	t.Cleanup(b.Server.Close)
	return b
}

func (b *Backend) URL() string {
	return b.Server.URL
}

// Requests returns a copy of every request received so far.
func (b *Backend) Requests() []Recorded {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]Recorded(nil), b.requests...)
}

// LastRequest returns the most recent request; zero value if none.
func (b *Backend) LastRequest() Recorded {
	b.mu.Lock()
	defer b.mu.Unlock()
	if len(b.requests) == 0 {
		return Recorded{}
	}
	return b.requests[len(b.requests)-1]
}

// AddUser registers an account directly, bypassing HTTP.
func (b *Backend) AddUser(r models.Registration) models.User {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.addUserLocked(r)
}

// SeedListings replaces the marketplace contents.
func (b *Backend) SeedListings(ls ...models.Listing) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.listings = append([]models.Listing(nil), ls...)
}

// Listings returns what has been stored so far.
func (b *Backend) Listings() []models.Listing {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]models.Listing(nil), b.listings...)
}

// Groups returns what has been stored so far.
func (b *Backend) Groups() []models.Group {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]models.Group(nil), b.groups...)
}

// RevokeAll invalidates every issued token.
func (b *Backend) RevokeAll() {
	b.mu.Lock()
	defer b.mu.Unlock()
	clear(b.tokens)
}

func (b *Backend) addUserLocked(r models.Registration) models.User {
	b.nextID++
	u := models.User{NumericID: b.nextID, Name: r.Name, Email: r.Email, Role: r.Role, Location: r.Location}
	b.accounts[strings.ToLower(r.Email)] = &account{user: u, password: r.Password}
	return u
}

func (b *Backend) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(b.record)

	r.Post("/api/User/register", b.register)
	r.Post("/api/User/login", b.login)

	r.Group(func(r chi.Router) {
		r.Use(b.requireAuth)
		r.Get("/api/User/me", b.me)
		r.Post("/api/Marketplace/create", b.createListing)
		r.Get("/api/Marketplace", b.listListings)
		r.Post("/api/Group/create", b.createGroup)
		r.Get("/api/Group/by-location/{location}", b.groupsByLocation)
	})
	return r
}

func (b *Backend) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, has := r.Header["Authorization"]
		b.mu.Lock()
		b.requests = append(b.requests, Recorded{
			Method:        r.Method,
			Path:          r.URL.EscapedPath(),
			Authorization: r.Header.Get("Authorization"),
			HasAuth:       has,
		})
		b.mu.Unlock()
		next.ServeHTTP(w, r)
	})
}

type ctxUserKey struct{}

func (b *Backend) requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
		if !ok {
			http.Error(w, "missing bearer token", http.StatusUnauthorized)
			return
		}

		b.mu.Lock()
		_, known := b.tokens[token]
		b.mu.Unlock()
		if !known {
			http.Error(w, "invalid token", http.StatusUnauthorized)
			return
		}

		claims := &jwt.RegisteredClaims{}
		if _, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) { return secret, nil }); err != nil {
			http.Error(w, "invalid token", http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), ctxUserKey{}, claims.Subject)))
	})
}

func (b *Backend) issueToken(email string, id int64) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		ID:        uuid.NewString(),
		Subject:   email,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(b.TokenTTL)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	if err != nil {
		return "", err
	}
	b.tokens[token] = id
	return token, nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func (b *Backend) register(w http.ResponseWriter, r *http.Request) {
	var reg models.Registration
	if err := json.NewDecoder(r.Body).Decode(&reg); err != nil || reg.Email == "" {
		http.Error(w, "invalid registration", http.StatusBadRequest)
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	if _, exists := b.accounts[strings.ToLower(reg.Email)]; exists {
		http.Error(w, "email already registered", http.StatusConflict)
		return
	}
	b.addUserLocked(reg)
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("Registered"))
}

func (b *Backend) login(w http.ResponseWriter, r *http.Request) {
	var creds models.Credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		http.Error(w, "invalid body", http.StatusBadRequest)
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	acc, ok := b.accounts[strings.ToLower(creds.Email)]
	if !ok || acc.password != creds.Password {
		http.Error(w, "invalid credentials", http.StatusUnauthorized)
		return
	}

	token, err := b.issueToken(acc.user.Email, acc.user.NumericID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	user := acc.user
	writeJSON(w, http.StatusOK, models.LoginResponse{Token: token, User: &user})
}

func (b *Backend) me(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	email, _ := r.Context().Value(ctxUserKey{}).(string)
	acc, ok := b.accounts[strings.ToLower(email)]
	b.mu.Unlock()
	if !ok {
		http.Error(w, "user not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, acc.user)
}

func (b *Backend) createListing(w http.ResponseWriter, r *http.Request) {
	var l models.Listing
	if err := json.NewDecoder(r.Body).Decode(&l); err != nil || l.Title == "" {
		http.Error(w, "invalid listing", http.StatusBadRequest)
		return
	}

	b.mu.Lock()
	b.nextID++
	l.ID = b.nextID
	b.listings = append(b.listings, l)
	b.mu.Unlock()

	writeJSON(w, http.StatusCreated, l)
}

func (b *Backend) listListings(w http.ResponseWriter, _ *http.Request) {
	b.mu.Lock()
	out := append([]models.Listing{}, b.listings...)
	b.mu.Unlock()
	writeJSON(w, http.StatusOK, out)
}

func (b *Backend) createGroup(w http.ResponseWriter, r *http.Request) {
	var g models.Group
	if err := json.NewDecoder(r.Body).Decode(&g); err != nil || g.Name == "" {
		http.Error(w, "invalid group", http.StatusBadRequest)
		return
	}

	b.mu.Lock()
	b.nextID++
	g.ID = b.nextID
	b.groups = append(b.groups, g)
	b.mu.Unlock()

	writeJSON(w, http.StatusCreated, g)
}

func (b *Backend) groupsByLocation(w http.ResponseWriter, r *http.Request) {
	// chi matches on RawPath when the path carries escapes such as %2F, so
	// the parameter may still be escaped.
	location := chi.URLParam(r, "location")
	if unescaped, err := url.PathUnescape(location); err == nil {
		location = unescaped
	}

	b.mu.Lock()
	out := []models.Group{}
	for _, g := range b.groups {
		if strings.EqualFold(g.Location, location) {
			out = append(out, g)
		}
	}
	b.mu.Unlock()
	writeJSON(w, http.StatusOK, out)
}
