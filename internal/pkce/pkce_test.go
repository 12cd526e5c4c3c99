package pkce

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"

	"github.com/world1dan/customers-map/internal/cache"
)

func TestNewVerifierLengthAndAlphabet(t *testing.T) {
	v, err := NewVerifier()
	if err != nil {
		t.Fatalf("NewVerifier() error: %v", err)
	}
	if len(v) != VerifierLength {
		t.Fatalf("expected %d chars, got %d", VerifierLength, len(v))
	}
	for _, c := range v {
		if !strings.ContainsRune(verifierAlphabet, c) {
			t.Fatalf("verifier contains %q, outside the unreserved alphabet", c)
		}
	}
}

func TestNewVerifierIsRandom(t *testing.T) {
	a, _ := NewVerifier()
	b, _ := NewVerifier()
	if a == b {
		t.Fatal("two verifiers came out identical")
	}
}

func TestChallengeRFC7636Vector(t *testing.T) {
	// Appendix B of RFC 7636.
	verifier := "dBjftJeZ4CVP-mB92K27uhbUJU1p1r_wW1gFWFOEjXk"
	want := "E9Melhoa2OwvFrEMTJguCHaoeK1t8URWbuGJSstw-cM"
	if got := Challenge(verifier); got != want {
		t.Fatalf("Challenge() = %q, want %q", got, want)
	}
}

func TestChallengeIsDeterministic(t *testing.T) {
	v, _ := NewVerifier()
	if Challenge(v) != Challenge(v) {
		t.Fatal("challenge not deterministic for a fixed verifier")
	}
}

func TestAuthorizeURL(t *testing.T) {
	ep := Endpoints{
		AuthorizeURL: "https://polar.sh/oauth2/authorize",
		ClientID:     "client123",
		RedirectURI:  "http://127.0.0.1:8787/auth/callback",
	}
	raw := AuthorizeURL(ep, "chal")

	u, err := url.Parse(raw)
	if err != nil {
		t.Fatalf("unparseable authorize URL: %v", err)
	}
	q := u.Query()
	for key, want := range map[string]string{
		"response_type":         "code",
		"client_id":             "client123",
		"redirect_uri":          "http://127.0.0.1:8787/auth/callback",
		"scope":                 Scope,
		"code_challenge":        "chal",
		"code_challenge_method": "S256",
	} {
		if got := q.Get(key); got != want {
			t.Errorf("param %s = %q, want %q", key, got, want)
		}
	}
}

func newSession(t *testing.T) *Session {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	store := cache.Open(filepath.Join(t.TempDir(), "state.json"), logger)
	return NewSession(store)
}

func TestSessionBeginStoresVerifier(t *testing.T) {
	s := newSession(t)

	verifier, challenge, err := s.Begin()
	if err != nil {
		t.Fatalf("Begin() error: %v", err)
	}
	if challenge != Challenge(verifier) {
		t.Fatal("challenge does not match stored verifier")
	}

	stored, ok := s.Verifier()
	if !ok || stored != verifier {
		t.Fatalf("slot = %q ok=%v, want the begun verifier", stored, ok)
	}
}

func TestSessionBeginOverwritesSlot(t *testing.T) {
	s := newSession(t)

	first, _, _ := s.Begin()
	second, _, _ := s.Begin()
	if first == second {
		t.Fatal("expected a fresh verifier per Begin")
	}

	stored, ok := s.Verifier()
	if !ok || stored != second {
		t.Fatal("expected the later handshake to win the slot")
	}
}

func TestSessionClear(t *testing.T) {
	s := newSession(t)
	s.Begin()
	s.Clear()
	if _, ok := s.Verifier(); ok {
		t.Fatal("expected empty slot after Clear")
	}
}

func TestExchangeSuccess(t *testing.T) {
	var gotForm url.Values
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			t.Fatal(err)
		}
		gotForm = r.PostForm
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"access_token":"tok","token_type":"Bearer","expires_in":3600,"refresh_token":"ref","scope":"openid"}`))
	}))
	defer srv.Close()

	ep := Endpoints{TokenURL: srv.URL, ClientID: "cid", RedirectURI: "http://localhost/cb"}
	cred, err := Exchange(context.Background(), srv.Client(), ep, "authcode", "verif")
	if err != nil {
		t.Fatalf("Exchange() error: %v", err)
	}
	if cred.AccessToken != "tok" || cred.TokenType != "Bearer" || cred.ExpiresIn != 3600 {
		t.Fatalf("unexpected credential: %+v", cred)
	}

	for key, want := range map[string]string{
		"grant_type":    "authorization_code",
		"code":          "authcode",
		"client_id":     "cid",
		"redirect_uri":  "http://localhost/cb",
		"code_verifier": "verif",
	} {
		if got := gotForm.Get(key); got != want {
			t.Errorf("form %s = %q, want %q", key, got, want)
		}
	}
}

func TestExchangeNonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"invalid_grant"}`, http.StatusBadRequest)
	}))
	defer srv.Close()

	ep := Endpoints{TokenURL: srv.URL}
	_, err := Exchange(context.Background(), srv.Client(), ep, "code", "verif")
	if err == nil {
		t.Fatal("expected error for 400 response")
	}
	if !errors.Is(err, ErrTokenExchange) {
		t.Fatalf("expected ErrTokenExchange, got %v", err)
	}
}
