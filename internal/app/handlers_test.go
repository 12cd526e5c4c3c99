package app_test

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"

	"github.com/world1dan/customers-map/internal/app"
	"github.com/world1dan/customers-map/internal/cache"
	"github.com/world1dan/customers-map/internal/config"
	"github.com/world1dan/customers-map/internal/orders"
	"github.com/world1dan/customers-map/internal/polar"
	"github.com/world1dan/customers-map/internal/polartest"
)

var testOrg = polar.Organization{
	ID:      "org_000001",
	Name:    "Acme Widgets",
	Slug:    "acme-widgets",
	Website: "https://acme.example",
}

type fixture struct {
	t     *testing.T
	twin  *polartest.Server
	store *cache.Store
	cfg   *config.Config
	srv   *httptest.Server
	// client never follows redirects: the test walks the browser's
	// navigation hops explicitly.
	client *http.Client
}

func setup(t *testing.T) *fixture {
	t.Helper()

	twin := polartest.New(testOrg)
	twinSrv := httptest.NewServer(twin)
	t.Cleanup(twinSrv.Close)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	store := cache.Open(filepath.Join(t.TempDir(), "state.json"), logger)

	cfg := &config.Config{
		ClientID:          "client_test",
		AuthBase:          twinSrv.URL,
		APIBase:           twinSrv.URL,
		ProxyAllowedHosts: []string{"polar-public-files.s3.amazonaws.com"},
	}

	a := app.New(cfg, store, logger)
	srv := httptest.NewServer(a)
	t.Cleanup(srv.Close)
	cfg.PublicURL = srv.URL

	return &fixture{
		t:     t,
		twin:  twin,
		store: store,
		cfg:   cfg,
		srv:   srv,
		client: &http.Client{
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
	}
}

func (f *fixture) get(rawURL string) *http.Response {
	f.t.Helper()
	if strings.HasPrefix(rawURL, "/") {
		rawURL = f.srv.URL + rawURL
	}
	resp, err := f.client.Get(rawURL)
	if err != nil {
		f.t.Fatalf("GET %s: %v", rawURL, err)
	}
	return resp
}

func (f *fixture) readBody(resp *http.Response) string {
	f.t.Helper()
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		f.t.Fatal(err)
	}
	return string(body)
}

// connect walks the whole browser dance: start -> authorization endpoint ->
// callback, asserting each hop redirects where it should.
func (f *fixture) connect() {
	f.t.Helper()

	resp := f.get("/auth/start")
	f.readBody(resp)
	if resp.StatusCode != http.StatusFound {
		f.t.Fatalf("start: status %d, want 302", resp.StatusCode)
	}
	authorize := resp.Header.Get("Location")

	resp = f.get(authorize)
	f.readBody(resp)
	if resp.StatusCode != http.StatusFound {
		f.t.Fatalf("authorize: status %d, want 302", resp.StatusCode)
	}
	callback := resp.Header.Get("Location")
	if !strings.HasPrefix(callback, f.srv.URL+"/auth/callback?") {
		f.t.Fatalf("authorize redirected to %q", callback)
	}

	resp = f.get(callback)
	f.readBody(resp)
	if resp.StatusCode != http.StatusSeeOther {
		f.t.Fatalf("callback: status %d, want 303", resp.StatusCode)
	}
	if loc := resp.Header.Get("Location"); loc != "/" {
		f.t.Fatalf("callback redirected to %q, want / (code stripped)", loc)
	}
}

func (f *fixture) countries() []orders.CountryInfo {
	f.t.Helper()
	resp := f.get("/api/countries")
	body := f.readBody(resp)
	if resp.StatusCode != http.StatusOK {
		f.t.Fatalf("countries: status %d: %s", resp.StatusCode, body)
	}
	var out []orders.CountryInfo
	if err := json.Unmarshal([]byte(body), &out); err != nil {
		f.t.Fatalf("countries: %v\nbody: %s", err, body)
	}
	return out
}

func TestAuthStartRedirectsWithPKCEParams(t *testing.T) {
	f := setup(t)

	resp := f.get("/auth/start")
	f.readBody(resp)
	if resp.StatusCode != http.StatusFound {
		t.Fatalf("status %d, want 302", resp.StatusCode)
	}

	loc, err := url.Parse(resp.Header.Get("Location"))
	if err != nil {
		t.Fatal(err)
	}
	if loc.Path != "/oauth2/authorize" {
		t.Errorf("authorize path = %q", loc.Path)
	}
	q := loc.Query()
	if q.Get("response_type") != "code" {
		t.Errorf("response_type = %q", q.Get("response_type"))
	}
	if q.Get("client_id") != "client_test" {
		t.Errorf("client_id = %q", q.Get("client_id"))
	}
	if q.Get("redirect_uri") != f.srv.URL+"/auth/callback" {
		t.Errorf("redirect_uri = %q", q.Get("redirect_uri"))
	}
	if q.Get("code_challenge_method") != "S256" {
		t.Errorf("code_challenge_method = %q", q.Get("code_challenge_method"))
	}
	if len(q.Get("code_challenge")) < 40 {
		t.Errorf("suspicious code_challenge %q", q.Get("code_challenge"))
	}

	// The verifier slot is now armed.
	var verifier string
	if !f.store.Get(cache.KeyVerifier, &verifier) || len(verifier) != 128 {
		t.Errorf("verifier slot = %q", verifier)
	}
}

func TestFullHandshakeFetchesAndAggregates(t *testing.T) {
	f := setup(t)
	f.twin.SeedOrders(201, "US", "DE")

	f.connect()

	if f.twin.OrderPageRequests != 3 {
		t.Errorf("fetch issued %d page requests, want 3", f.twin.OrderPageRequests)
	}

	// Verifier is single-use: the slot must be empty after completion.
	var verifier string
	if f.store.Get(cache.KeyVerifier, &verifier) {
		t.Error("verifier slot not cleared after successful exchange")
	}

	var cached []orders.Order
	if !f.store.Get(cache.KeyOrders, &cached) || len(cached) != 201 {
		t.Fatalf("cached %d orders, want 201", len(cached))
	}
	var org polar.Organization
	if !f.store.Get(cache.KeyOrganization, &org) || org != testOrg {
		t.Fatalf("cached org = %+v", org)
	}

	countries := f.countries()
	if len(countries) != 2 {
		t.Fatalf("got %d countries: %+v", len(countries), countries)
	}
	for _, c := range countries {
		if c.Code != "US" && c.Code != "DE" {
			t.Errorf("unexpected country %q", c.Code)
		}
	}
}

func TestIndexShowsOrganizationAfterConnect(t *testing.T) {
	f := setup(t)
	f.twin.SeedOrders(5, "US")
	f.connect()

	body := f.readBody(f.get("/"))
	if !strings.Contains(body, "Acme Widgets") {
		t.Error("expected organization name on the page")
	}
	if !strings.Contains(body, "<svg") {
		t.Error("expected inline map SVG")
	}
	if !strings.Contains(body, "United States") {
		t.Error("expected ranked country list")
	}
}

func TestCallbackWithoutVerifierShowsAlert(t *testing.T) {
	f := setup(t)

	resp := f.get("/auth/callback?code=whatever")
	f.readBody(resp)
	if resp.StatusCode != http.StatusSeeOther {
		t.Fatalf("status %d, want 303", resp.StatusCode)
	}
	loc := resp.Header.Get("Location")
	if loc != "/?error=missing_verifier" {
		t.Fatalf("redirected to %q", loc)
	}

	body := f.readBody(f.get(loc))
	if !strings.Contains(body, "Missing PKCE code verifier") {
		t.Error("expected the missing-verifier alert on the page")
	}
}

func TestCallbackExchangeFailureDegradesSilently(t *testing.T) {
	f := setup(t)

	// Arm the slot, then come back with a code the platform never issued.
	f.readBody(f.get("/auth/start"))
	resp := f.get("/auth/callback?code=bogus")
	f.readBody(resp)

	if resp.StatusCode != http.StatusSeeOther {
		t.Fatalf("status %d, want 303", resp.StatusCode)
	}
	if loc := resp.Header.Get("Location"); loc != "/" {
		t.Fatalf("redirected to %q, want silent return to idle", loc)
	}

	// The slot is cleared even on failure; a refresh cannot replay.
	var verifier string
	if f.store.Get(cache.KeyVerifier, &verifier) {
		t.Error("verifier slot not cleared after failed exchange")
	}
	if len(f.countries()) != 0 {
		t.Error("expected no cached breakdown after failed exchange")
	}
}

func TestMidFetchFailureDiscardsPartialResults(t *testing.T) {
	f := setup(t)
	f.twin.SeedOrders(250, "US")
	f.twin.FailOrdersAfter = 2

	resp := f.get("/auth/start")
	f.readBody(resp)
	resp = f.get(resp.Header.Get("Location"))
	f.readBody(resp)
	resp = f.get(resp.Header.Get("Location"))
	f.readBody(resp)

	if loc := resp.Header.Get("Location"); loc != "/" {
		t.Fatalf("redirected to %q, want silent return to idle", loc)
	}
	var cached []orders.Order
	if f.store.Get(cache.KeyOrders, &cached) {
		t.Fatalf("expected no cached orders, got %d", len(cached))
	}
	var org polar.Organization
	if f.store.Get(cache.KeyOrganization, &org) {
		t.Error("expected no cached organization after aborted fetch")
	}
}

func TestResetClearsState(t *testing.T) {
	f := setup(t)
	f.twin.SeedOrders(5, "US")
	f.connect()

	resp, err := f.client.Post(f.srv.URL+"/reset", "", nil)
	if err != nil {
		t.Fatal(err)
	}
	f.readBody(resp)

	if len(f.countries()) != 0 {
		t.Error("expected empty breakdown after reset")
	}
	body := f.readBody(f.get("/"))
	if !strings.Contains(body, "Authenticate with Polar") {
		t.Error("expected the idle connect page after reset")
	}
}

func TestExport(t *testing.T) {
	f := setup(t)
	f.twin.SeedOrders(5, "US")
	f.connect()

	resp := f.get("/export")
	body := f.readBody(resp)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status %d", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "image/svg+xml" {
		t.Errorf("Content-Type = %q", ct)
	}
	cd := resp.Header.Get("Content-Disposition")
	if !strings.Contains(cd, `filename="polar-customers-map-acme-widgets.svg"`) {
		t.Errorf("Content-Disposition = %q", cd)
	}
	if !strings.HasPrefix(body, "<svg") {
		t.Error("expected SVG payload")
	}
}

func TestExportWithoutConnectionFails(t *testing.T) {
	f := setup(t)

	resp := f.get("/export")
	f.readBody(resp)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("status %d, want 404", resp.StatusCode)
	}
}
