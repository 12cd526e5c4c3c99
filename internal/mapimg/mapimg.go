// Package mapimg renders the shareable "customers map" card as an SVG: a
// stylized dotted world layer, highlight clusters for countries with paying
// customers, the organization header, and the ranked country list.
//
// This package is the rendering boundary for the alpha-3 whitelist: the
// dotted-map geometry only knows a fixed set of regions, so ranked countries
// outside that set are dropped from the highlight layer here and nowhere
// else.
package mapimg

import (
	"fmt"
	"html"
	"math"
	"strings"

	"github.com/world1dan/customers-map/internal/country"
	"github.com/world1dan/customers-map/internal/orders"
	"github.com/world1dan/customers-map/internal/polar"
)

// Visible world region, trimming the empty poles.
const (
	latMin = -56.0
	latMax = 71.0
	lngMin = -176.0
	lngMax = 179.0
)

// Card geometry in user units. ExportScale is the fixed pixel-density
// multiplier applied to the rendered output size.
const (
	cardWidth   = 710
	mapHeight   = 320
	headerH     = 56
	listColumns = 4
	rowH        = 22
	footerH     = 44
	ExportScale = 3
)

// HighlightRegions converts ranked alpha-2 codes to alpha-3 and keeps only
// the regions the map geometry supports, preserving rank order.
func HighlightRegions(codes []string) []string {
	var out []string
	for _, code := range codes {
		a3 := country.Alpha3(code)
		if a3 == "" {
			continue
		}
		if _, ok := supportedRegions[a3]; ok {
			out = append(out, a3)
		}
	}
	return out
}

// Filename names an exported card after the organization's slug.
func Filename(slug string) string {
	return "polar-customers-map-" + slug + ".svg"
}

// Render draws the full card for an organization and its ranked country
// breakdown.
func Render(org polar.Organization, countries []orders.CountryInfo) []byte {
	listRows := (len(countries) + listColumns - 1) / listColumns
	if listRows < 1 {
		listRows = 1
	}
	listH := listRows*rowH + 24
	cardH := headerH + mapHeight + listH + footerH

	var b strings.Builder
	fmt.Fprintf(&b,
		`<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d" font-family="ui-sans-serif, system-ui, sans-serif">`,
		cardWidth*ExportScale, cardH*ExportScale, cardWidth, cardH)
	fmt.Fprintf(&b, `<rect width="%d" height="%d" fill="#fafafa"/>`, cardWidth, cardH)

	renderHeader(&b, org)
	renderMap(&b, headerH, countries)
	renderList(&b, headerH+mapHeight, countries)
	renderFooter(&b, cardH-footerH)

	b.WriteString(`</svg>`)
	return []byte(b.String())
}

func renderHeader(b *strings.Builder, org polar.Organization) {
	fmt.Fprintf(b, `<text x="24" y="34" font-size="16" font-weight="600" fill="#18181b">%s</text>`,
		html.EscapeString(org.Name))
	if org.Website != "" {
		display := strings.TrimSuffix(org.Website, "/")
		display = strings.TrimPrefix(display, "https://")
		display = strings.TrimPrefix(display, "http://")
		fmt.Fprintf(b, `<text x="24" y="50" font-size="11" fill="#71717a" text-decoration="underline">%s</text>`,
			html.EscapeString(display))
	}
	fmt.Fprintf(b, `<text x="%d" y="34" font-size="14" fill="#18181b" text-anchor="end">Paying Customers</text>`,
		cardWidth-24)
	fmt.Fprintf(b, `<line x1="0" y1="%d" x2="%d" y2="%d" stroke="#e4e4e7"/>`, headerH, cardWidth, headerH)
}

// renderMap draws the faint base dot grid over the visible world region,
// then a brighter cluster at each supported country, sized by its share of
// total revenue.
func renderMap(b *strings.Builder, top int, countries []orders.CountryInfo) {
	const step = 9.0
	fmt.Fprintf(b, `<g fill="#d4d4d8">`)
	for y := step; y < mapHeight-step/2; y += step {
		for x := step; x < cardWidth-step/2; x += step {
			fmt.Fprintf(b, `<circle cx="%.0f" cy="%.0f" r="1.1"/>`, x, float64(top)+y)
		}
	}
	b.WriteString(`</g>`)

	var total int64
	for _, c := range countries {
		total += c.TotalRevenue
	}

	b.WriteString(`<g fill="#2563eb">`)
	for _, c := range countries {
		a3 := country.Alpha3(c.Code)
		pos, ok := supportedRegions[a3]
		if !ok {
			continue
		}
		x, y := project(pos)
		r := 4.0
		if total > 0 {
			r = 4 + 8*math.Sqrt(float64(c.TotalRevenue)/float64(total))
		}
		fmt.Fprintf(b, `<circle cx="%.1f" cy="%.1f" r="%.1f" fill-opacity="0.25"/>`, x, float64(top)+y, r)
		fmt.Fprintf(b, `<circle cx="%.1f" cy="%.1f" r="2.4"/>`, x, float64(top)+y)
	}
	b.WriteString(`</g>`)
}

func renderList(b *strings.Builder, top int, countries []orders.CountryInfo) {
	fmt.Fprintf(b, `<line x1="0" y1="%d" x2="%d" y2="%d" stroke="#e4e4e7"/>`, top, cardWidth, top)

	rows := (len(countries) + listColumns - 1) / listColumns
	colW := (cardWidth - 48) / listColumns
	for i, c := range countries {
		col := 0
		row := i
		if rows > 0 {
			col = i / rows
			row = i % rows
		}
		x := 24 + col*colW
		y := top + 20 + (row+1)*rowH
		fmt.Fprintf(b, `<text x="%d" y="%d" font-size="12" fill="#3f3f46">%d. %s %s</text>`,
			x, y, i+1, c.Flag, html.EscapeString(c.Name))
	}
}

func renderFooter(b *strings.Builder, top int) {
	fmt.Fprintf(b, `<line x1="0" y1="%d" x2="%d" y2="%d" stroke="#e4e4e7"/>`, top, cardWidth, top)
	fmt.Fprintf(b, `<text x="24" y="%d" font-size="11" fill="#71717a">Data from Polar</text>`, top+28)
	fmt.Fprintf(b, `<text x="%d" y="%d" font-size="11" fill="#71717a" text-anchor="end" text-decoration="underline">customers-map.vercel.app</text>`,
		cardWidth-24, top+28)
}

// project maps a lat/lng into map coordinates with a plain equirectangular
// projection. Visual approximation only.
func project(p latLng) (x, y float64) {
	x = (p.Lng - lngMin) / (lngMax - lngMin) * cardWidth
	y = (latMax - p.Lat) / (latMax - latMin) * mapHeight
	return x, y
}
