// Package pkce implements the OAuth authorization-code handshake with Proof
// Key for Code Exchange (RFC 7636, S256 only).
//
// The handshake is a fixed three-step dance split across a full-page
// navigation: begin (generate verifier, redirect to the authorization
// endpoint with the derived challenge), return (the browser comes back with a
// ?code=), exchange (trade code plus verifier for a credential). Because the
// navigation discards all in-memory state, the verifier lives in a durable
// single-slot store between the two phases. Only one handshake is in flight
// at a time: beginning a new one overwrites the slot.
package pkce

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

// Verifier alphabet per RFC 7636 §4.1 (unreserved characters).
const verifierAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789-._~"

// VerifierLength is the number of characters in a generated verifier.
const VerifierLength = 128

// Scope is the fixed access requested from the platform: identity, orders,
// and organization profile, all read-only.
const Scope = "openid orders:read organizations:read"

var (
	// ErrMissingVerifier means the browser returned with an authorization
	// code but the durable verifier slot was empty. This is the one failure
	// the application surfaces to the user directly.
	ErrMissingVerifier = errors.New("missing PKCE code verifier")

	// ErrTokenExchange means the token endpoint answered with a non-success
	// status. The handshake is aborted; there is no retry.
	ErrTokenExchange = errors.New("token exchange failed")
)

// Credential is the token material handed back by a completed handshake. It
// is consumed immediately by the order fetch and never persisted.
type Credential struct {
	AccessToken  string `json:"access_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int64  `json:"expires_in"`
	RefreshToken string `json:"refresh_token"`
	Scope        string `json:"scope"`
}

// Endpoints locates the two OAuth endpoints and identifies this client.
type Endpoints struct {
	AuthorizeURL string
	TokenURL     string
	ClientID     string
	RedirectURI  string
}

// NewVerifier generates a high-entropy code verifier from the unreserved
// alphabet using crypto/rand.
func NewVerifier() (string, error) {
	buf := make([]byte, VerifierLength)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generating verifier: %w", err)
	}
	var b strings.Builder
	b.Grow(VerifierLength)
	for _, c := range buf {
		b.WriteByte(verifierAlphabet[int(c)%len(verifierAlphabet)])
	}
	return b.String(), nil
}

// Challenge derives the S256 code challenge: SHA-256 of the verifier,
// base64url-encoded without padding.
func Challenge(verifier string) string {
	sum := sha256.Sum256([]byte(verifier))
	return base64.RawURLEncoding.EncodeToString(sum[:])
}

// AuthorizeURL builds the full-navigation authorization URL for the given
// challenge.
func AuthorizeURL(ep Endpoints, challenge string) string {
	params := url.Values{
		"response_type":         {"code"},
		"client_id":             {ep.ClientID},
		"redirect_uri":          {ep.RedirectURI},
		"scope":                 {Scope},
		"code_challenge":        {challenge},
		"code_challenge_method": {"S256"},
	}
	return ep.AuthorizeURL + "?" + params.Encode()
}

// Exchange trades an authorization code and its verifier for a credential.
// Any non-2xx response aborts the handshake with ErrTokenExchange.
func Exchange(ctx context.Context, client *http.Client, ep Endpoints, code, verifier string) (Credential, error) {
	form := url.Values{
		"grant_type":    {"authorization_code"},
		"code":          {code},
		"client_id":     {ep.ClientID},
		"redirect_uri":  {ep.RedirectURI},
		"code_verifier": {verifier},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, ep.TokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return Credential{}, fmt.Errorf("%w: %v", ErrTokenExchange, err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := client.Do(req)
	if err != nil {
		return Credential{}, fmt.Errorf("%w: %v", ErrTokenExchange, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return Credential{}, fmt.Errorf("%w: status %d", ErrTokenExchange, resp.StatusCode)
	}

	var cred Credential
	if err := json.NewDecoder(resp.Body).Decode(&cred); err != nil {
		return Credential{}, fmt.Errorf("%w: %v", ErrTokenExchange, err)
	}
	return cred, nil
}
