package app

import (
	"html/template"
	"net/http"

	"github.com/world1dan/customers-map/internal/cache"
	"github.com/world1dan/customers-map/internal/mapimg"
	"github.com/world1dan/customers-map/internal/orders"
	"github.com/world1dan/customers-map/internal/polar"
)

// loadState reads the cached organization and order list, falling back to
// "not connected" defaults on any storage miss.
func (a *App) loadState() (polar.Organization, []orders.Order, bool) {
	var org polar.Organization
	connected := a.store.Get(cache.KeyOrganization, &org) && org.ID != ""

	var all []orders.Order
	a.store.Get(cache.KeyOrders, &all)
	return org, all, connected
}

// analyze aggregates cached orders, degrading to an empty breakdown if the
// cached data turns out to be inconsistent.
func (a *App) analyze(all []orders.Order) []orders.CountryInfo {
	countries, err := orders.Analyze(all)
	if err != nil {
		a.logger.Error("analyzing cached orders", "err", err)
		return nil
	}
	return countries
}

// Index renders the map page from cached state.
func (a *App) Index(w http.ResponseWriter, r *http.Request) {
	org, all, connected := a.loadState()
	countries := a.analyze(all)

	data := pageData{
		Connected: connected,
		Countries: countries,
	}
	if connected {
		data.Org = &org
		data.MapSVG = template.HTML(mapimg.Render(org, countries))
	}
	if r.URL.Query().Get("error") == "missing_verifier" {
		data.Alert = "Missing PKCE code verifier. Please try again."
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := indexTemplate.Execute(w, data); err != nil {
		a.logger.Error("rendering page", "err", err)
	}
}

// Countries returns the ranked country breakdown as JSON.
func (a *App) Countries(w http.ResponseWriter, r *http.Request) {
	_, all, _ := a.loadState()
	countries := a.analyze(all)
	if countries == nil {
		countries = []orders.CountryInfo{}
	}
	writeJSON(w, http.StatusOK, countries)
}

// Export downloads the rendered card as an SVG named after the
// organization's slug.
func (a *App) Export(w http.ResponseWriter, r *http.Request) {
	org, all, connected := a.loadState()
	if !connected {
		writeError(w, http.StatusNotFound, "no organization connected")
		return
	}

	svg := mapimg.Render(org, a.analyze(all))
	w.Header().Set("Content-Type", "image/svg+xml")
	w.Header().Set("Content-Disposition", `attachment; filename="`+mapimg.Filename(org.Slug)+`"`)
	w.Write(svg)
}
