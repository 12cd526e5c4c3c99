package app

import (
	"html/template"

	"github.com/world1dan/customers-map/internal/orders"
	"github.com/world1dan/customers-map/internal/polar"
)

type pageData struct {
	Connected bool
	Org       *polar.Organization
	Countries []orders.CountryInfo
	MapSVG    template.HTML
	Alert     string
}

var indexTemplate = template.Must(template.New("index").Parse(`<!doctype html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>Customers Map</title>
<style>
  body { font-family: ui-sans-serif, system-ui, sans-serif; max-width: 760px;
         margin: 2rem auto; padding: 0 1rem; color: #18181b; background: #fafafa; }
  .card { border: 1px solid #e4e4e7; border-radius: 16px; overflow: hidden;
          box-shadow: 0 10px 30px rgba(0,0,0,.08); background: #fff; }
  .toolbar { display: flex; gap: .75rem; justify-content: flex-end; margin-bottom: 1rem; }
  .btn { display: inline-block; padding: .5rem 1.1rem; border-radius: 999px;
         border: 1px solid #d4d4d8; background: #18181b; color: #fff;
         text-decoration: none; font-size: .875rem; cursor: pointer; }
  .btn.secondary { background: #fff; color: #18181b; }
  .alert { background: #fef2f2; border: 1px solid #fecaca; color: #991b1b;
           padding: .75rem 1rem; border-radius: 8px; margin-bottom: 1rem; }
  .muted { color: #71717a; font-size: .875rem; }
  .connect { display: grid; place-content: center; height: 20rem; }
  svg { display: block; width: 100%; height: auto; }
</style>
</head>
<body>
{{if .Alert}}<div class="alert">{{.Alert}}</div>{{end}}
<div class="toolbar">
  {{if .Connected}}
  <a class="btn secondary" href="/auth/start">Regenerate</a>
  <a class="btn" href="/export">Export Image</a>
  <form method="post" action="/reset"><button class="btn secondary" type="submit">Reset</button></form>
  {{end}}
</div>
<div class="card">
  {{if .Connected}}
  {{.MapSVG}}
  {{else}}
  <div class="connect">
    <a class="btn" href="/auth/start">Authenticate with Polar</a>
  </div>
  {{end}}
</div>
<p class="muted">Visualize your customers around the world!</p>
<p class="muted">Fetches orders from your Polar organization and highlights every
country where you&#39;ve ever had paying customers.</p>
<p class="muted">100% private &mdash; all data is fetched locally, and your
authentication token is never stored.</p>
</body>
</html>
`))
