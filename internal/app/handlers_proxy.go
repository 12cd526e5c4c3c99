package app

import (
	"io"
	"net/http"
	"net/url"
	"slices"
)

// ProxyImage is a same-origin passthrough for the organization avatar so the
// exported card can embed it without tripping cross-origin rules. Only
// allow-listed remote hosts are forwarded; Range requests pass through and
// responses get long-lived cache headers.
func (a *App) ProxyImage(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("url")
	if raw == "" {
		writeError(w, http.StatusBadRequest, `Missing "url" query parameter.`)
		return
	}

	parsed, err := url.Parse(raw)
	if err != nil || parsed.Hostname() == "" {
		writeError(w, http.StatusBadRequest, `Invalid "url" query parameter.`)
		return
	}
	if !slices.Contains(a.cfg.ProxyAllowedHosts, parsed.Hostname()) {
		writeError(w, http.StatusForbidden, "Invalid domain.")
		return
	}

	req, err := http.NewRequestWithContext(r.Context(), http.MethodGet, parsed.String(), nil)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Internal server error.")
		return
	}
	if rng := r.Header.Get("Range"); rng != "" {
		req.Header.Set("Range", rng)
	}

	resp, err := a.client.Do(req)
	if err != nil {
		a.logger.Error("proxying image", "url", raw, "err", err)
		writeError(w, http.StatusBadGateway, "Failed to fetch the media.")
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusPartialContent {
		writeError(w, resp.StatusCode, "Failed to fetch the media.")
		return
	}

	for _, h := range []string{"Content-Type", "Content-Length", "Content-Range", "Accept-Ranges"} {
		if v := resp.Header.Get(h); v != "" {
			w.Header().Set(h, v)
		}
	}
	w.Header().Set("Cache-Control", "public, max-age=31536000, immutable")
	w.Header().Set("Access-Control-Allow-Origin", r.Header.Get("Origin"))
	w.Header().Set("Vary", "Origin")

	w.WriteHeader(resp.StatusCode)
	if _, err := io.Copy(w, resp.Body); err != nil {
		a.logger.Debug("proxy stream interrupted", "err", err)
	}
}
