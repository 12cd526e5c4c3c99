// Package polartest is an in-memory twin of the Polar platform endpoints the
// application touches: the OAuth2 authorize/token pair (with real S256 PKCE
// validation and single-use codes), userinfo, organization lookup, and the
// paginated order listing. Tests point the application at an httptest server
// wrapping a *Server.
package polartest

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/world1dan/customers-map/internal/orders"
	"github.com/world1dan/customers-map/internal/pkce"
	"github.com/world1dan/customers-map/internal/polar"
)

// Server simulates the platform. Fixture fields may be set before serving
// traffic; the zero value works for pure OAuth tests.
type Server struct {
	mu sync.Mutex

	// Org is the organization behind every issued token.
	Org polar.Organization
	// Orders is the full order history served page by page.
	Orders []orders.Order

	// OrderPageRequests counts /v1/orders hits, for asserting how many
	// pages a fetch loop issued.
	OrderPageRequests int
	// FailOrdersAfter, when > 0, makes every /v1/orders request past the
	// n-th fail with a 500 so mid-fetch failure paths can be exercised.
	FailOrdersAfter int

	challenges map[string]string // authorization code -> code challenge
	usedCodes  map[string]bool
	jwtSecret  []byte
	router     chi.Router
}

// New creates a twin with the given organization fixture.
func New(org polar.Organization) *Server {
	s := &Server{
		Org:        org,
		challenges: make(map[string]string),
		usedCodes:  make(map[string]bool),
		jwtSecret:  []byte("polartest-" + uuid.NewString()),
	}

	r := chi.NewRouter()
	r.Get("/oauth2/authorize", s.authorize)
	r.Post("/v1/oauth2/token", s.token)
	r.Group(func(r chi.Router) {
		r.Use(s.bearerAuth)
		r.Get("/v1/oauth2/userinfo", s.userinfo)
		r.Get("/v1/organizations/{id}", s.organization)
		r.Get("/v1/orders", s.listOrders)
	})
	s.router = r
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// SeedOrders generates n orders for the given customer countries, cycling
// through them. Order i gets a 100*(i+1) cent amount so fixtures stay
// distinguishable.
func (s *Server) SeedOrders(n int, countries ...string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Orders = s.Orders[:0]
	for i := 0; i < n; i++ {
		o := orders.Order{
			ID:        fmt.Sprintf("order_%06d", i+1),
			NetAmount: int64(100 * (i + 1)),
		}
		if len(countries) > 0 {
			o.Customer = &orders.Customer{
				ID: fmt.Sprintf("cust_%06d", i+1),
				BillingAddress: &orders.Address{
					Country: countries[i%len(countries)],
				},
			}
		}
		s.Orders = append(s.Orders, o)
	}
}

// IssueToken mints a valid access token directly, letting API-client tests
// skip the browser dance.
func (s *Server) IssueToken() string {
	claims := jwt.MapClaims{
		"iss": "https://polartest.local",
		"sub": s.Org.ID,
		"iat": time.Now().Unix(),
		"exp": time.Now().Add(time.Hour).Unix(),
	}
	signed, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.jwtSecret)
	return signed
}

// authorize records the code challenge and bounces straight back to the
// redirect URI with a fresh single-use code, standing in for the consent UI.
func (s *Server) authorize(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	if q.Get("response_type") != "code" || q.Get("client_id") == "" {
		http.Error(w, "invalid authorization request", http.StatusBadRequest)
		return
	}
	if q.Get("code_challenge_method") != "S256" || q.Get("code_challenge") == "" {
		http.Error(w, "PKCE S256 challenge required", http.StatusBadRequest)
		return
	}
	redirect, err := url.Parse(q.Get("redirect_uri"))
	if err != nil || redirect.Scheme == "" {
		http.Error(w, "invalid redirect_uri", http.StatusBadRequest)
		return
	}

	code := uuid.NewString()
	s.mu.Lock()
	s.challenges[code] = q.Get("code_challenge")
	s.mu.Unlock()

	rq := redirect.Query()
	rq.Set("code", code)
	redirect.RawQuery = rq.Encode()
	http.Redirect(w, r, redirect.String(), http.StatusFound)
}

func (s *Server) token(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		oauthError(w, http.StatusBadRequest, "invalid_request")
		return
	}
	if r.PostForm.Get("grant_type") != "authorization_code" {
		oauthError(w, http.StatusBadRequest, "unsupported_grant_type")
		return
	}
	code := r.PostForm.Get("code")
	verifier := r.PostForm.Get("code_verifier")

	s.mu.Lock()
	challenge, known := s.challenges[code]
	used := s.usedCodes[code]
	if known && !used {
		s.usedCodes[code] = true
	}
	s.mu.Unlock()

	if !known || used {
		oauthError(w, http.StatusBadRequest, "invalid_grant")
		return
	}
	if pkce.Challenge(verifier) != challenge {
		oauthError(w, http.StatusBadRequest, "invalid_grant")
		return
	}

	claims := jwt.MapClaims{
		"iss": "https://polartest.local",
		"sub": s.Org.ID,
		"iat": time.Now().Unix(),
		"exp": time.Now().Add(time.Hour).Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.jwtSecret)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"access_token":  signed,
		"token_type":    "Bearer",
		"expires_in":    3600,
		"refresh_token": uuid.NewString(),
		"scope":         pkce.Scope,
	})
}

// bearerAuth verifies the Bearer token this twin issued.
func (s *Server) bearerAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth := r.Header.Get("Authorization")
		raw := strings.TrimPrefix(auth, "Bearer ")
		if raw == auth || raw == "" {
			oauthError(w, http.StatusUnauthorized, "invalid_token")
			return
		}
		_, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
			}
			return s.jwtSecret, nil
		})
		if err != nil {
			oauthError(w, http.StatusUnauthorized, "invalid_token")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) userinfo(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, polar.Userinfo{Sub: s.Org.ID})
}

func (s *Server) organization(w http.ResponseWriter, r *http.Request) {
	if chi.URLParam(r, "id") != s.Org.ID {
		writeJSON(w, http.StatusNotFound, map[string]string{"detail": "organization not found"})
		return
	}
	writeJSON(w, http.StatusOK, s.Org)
}

func (s *Server) listOrders(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	s.OrderPageRequests++
	n := s.OrderPageRequests
	failAfter := s.FailOrdersAfter
	all := s.Orders
	s.mu.Unlock()

	if failAfter > 0 && n > failAfter {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"detail": "injected failure"})
		return
	}

	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	start := (page - 1) * limit
	end := start + limit
	if start > len(all) {
		start = len(all)
	}
	if end > len(all) {
		end = len(all)
	}

	maxPage := (len(all) + limit - 1) / limit
	writeJSON(w, http.StatusOK, polar.OrdersPage{
		Items: all[start:end],
		Pagination: polar.Pagination{
			TotalCount: len(all),
			MaxPage:    maxPage,
		},
	})
}

func oauthError(w http.ResponseWriter, status int, code string) {
	writeJSON(w, status, map[string]string{"error": code})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		json.NewEncoder(w).Encode(v)
	}
}
