package pkce

import "github.com/world1dan/customers-map/internal/cache"

// Session is the explicit single-slot handshake state. The durable store is
// only its persistence boundary: the verifier has to survive the full-page
// redirect to the authorization server.
type Session struct {
	store *cache.Store
}

// NewSession creates a session over the given store.
func NewSession(store *cache.Store) *Session {
	return &Session{store: store}
}

// Begin generates a fresh verifier, stores it in the slot (overwriting any
// earlier in-flight handshake), and returns the verifier with its challenge.
func (s *Session) Begin() (verifier, challenge string, err error) {
	verifier, err = NewVerifier()
	if err != nil {
		return "", "", err
	}
	s.store.Put(cache.KeyVerifier, verifier)
	return verifier, Challenge(verifier), nil
}

// Verifier retrieves the stored verifier. ok is false when the slot is empty,
// which on a return navigation means ErrMissingVerifier territory.
func (s *Session) Verifier() (verifier string, ok bool) {
	if !s.store.Get(cache.KeyVerifier, &verifier) || verifier == "" {
		return "", false
	}
	return verifier, true
}

// Clear erases the verifier slot. Called on both exchange success and
// failure: authorization codes are single-use, so a stale verifier can never
// complete a later handshake.
func (s *Session) Clear() {
	s.store.Delete(cache.KeyVerifier)
}
