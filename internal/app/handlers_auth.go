package app

import (
	"net/http"

	"github.com/world1dan/customers-map/internal/cache"
	"github.com/world1dan/customers-map/internal/pkce"
	"github.com/world1dan/customers-map/internal/polar"
)

// AuthStart begins a handshake: the view state is cleared (a new connection
// always regenerates from scratch), a fresh verifier lands in the durable
// slot, and the browser is sent off to the authorization endpoint with the
// derived challenge. This is a full navigation; everything in memory is gone
// by the time the browser comes back.
func (a *App) AuthStart(w http.ResponseWriter, r *http.Request) {
	if a.fetching.Load() {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	a.store.Delete(cache.KeyOrders)
	a.store.Delete(cache.KeyOrganization)

	_, challenge, err := a.session.Begin()
	if err != nil {
		a.logger.Error("starting handshake", "err", err)
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	http.Redirect(w, r, pkce.AuthorizeURL(a.endpoints(), challenge), http.StatusFound)
}

// AuthCallback is the return side of the navigation. With a code and a
// stored verifier it completes the exchange and runs the whole pipeline:
// identity, organization profile, the paginated order fetch, aggregation,
// and the cache write. The final redirect to "/" drops the code parameter
// from the visible URL.
//
// Failure behavior follows the application's one rule: a missing verifier is
// the only error surfaced to the user; every other failure logs and degrades
// to the idle page.
func (a *App) AuthCallback(w http.ResponseWriter, r *http.Request) {
	code := r.URL.Query().Get("code")
	if code == "" {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	verifier, ok := a.session.Verifier()
	if !ok {
		a.logger.Warn("authorization code arrived with an empty verifier slot")
		http.Redirect(w, r, "/?error=missing_verifier", http.StatusSeeOther)
		return
	}

	if !a.fetching.CompareAndSwap(false, true) {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	defer a.fetching.Store(false)

	ctx := r.Context()

	cred, err := pkce.Exchange(ctx, a.client, a.endpoints(), code, verifier)
	// Authorization codes are single-use: clear the slot whether the
	// exchange worked or not, so a page refresh can never replay it.
	a.session.Clear()
	if err != nil {
		a.logger.Error("token exchange", "err", err)
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	// The credential lives only for the duration of this pipeline; what
	// gets cached is its consumer's output.
	client := polar.New(a.cfg.APIBase, cred.AccessToken, a.client)

	info, err := client.Userinfo(ctx)
	if err != nil {
		a.logger.Error("fetching userinfo", "err", err)
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	org, err := client.Organization(ctx, info.Sub)
	if err != nil {
		a.logger.Error("fetching organization", "org_id", info.Sub, "err", err)
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	all, err := client.FetchAllOrders(ctx, a.onPage)
	if err != nil {
		// Partial results are discarded; nothing is cached.
		a.logger.Error("fetching orders", "err", err)
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	a.store.Put(cache.KeyOrganization, org)
	a.store.Put(cache.KeyOrders, all)
	a.logger.Info("connected", "org", org.Slug, "orders", len(all))

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// Reset clears all cached view state.
func (a *App) Reset(w http.ResponseWriter, r *http.Request) {
	a.store.Reset()
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
