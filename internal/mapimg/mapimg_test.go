package mapimg

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/world1dan/customers-map/internal/orders"
	"github.com/world1dan/customers-map/internal/polar"
)

func TestHighlightRegionsFiltersUnsupported(t *testing.T) {
	// HK converts to HKG, which the map geometry does not ship; it must be
	// dropped from the highlight layer without touching its neighbors.
	got := HighlightRegions([]string{"US", "HK", "DE"})
	assert.Equal(t, []string{"USA", "DEU"}, got)
}

func TestHighlightRegionsPreservesRankOrder(t *testing.T) {
	got := HighlightRegions([]string{"DE", "US", "FR"})
	assert.Equal(t, []string{"DEU", "USA", "FRA"}, got)
}

func TestHighlightRegionsDropsUnknownCodes(t *testing.T) {
	assert.Empty(t, HighlightRegions([]string{"ZZ", ""}))
}

func TestSupportedRegionsAreWithinViewport(t *testing.T) {
	for code, pos := range supportedRegions {
		if code == "ATA" || code == "GRL" {
			continue // polar outliers sit at the clipped edges
		}
		assert.True(t, pos.Lat >= latMin && pos.Lat <= latMax, "%s lat %v", code, pos.Lat)
		assert.True(t, pos.Lng >= lngMin && pos.Lng <= lngMax, "%s lng %v", code, pos.Lng)
	}
}

func TestRenderCard(t *testing.T) {
	org := polar.Organization{Name: "Acme <Widgets>", Slug: "acme", Website: "https://acme.example/"}
	countries := []orders.CountryInfo{
		{Code: "US", Name: "United States", Flag: "\U0001F1FA\U0001F1F8", TotalRevenue: 1500},
		{Code: "DE", Name: "Germany", Flag: "\U0001F1E9\U0001F1EA", TotalRevenue: 500},
	}

	svg := string(Render(org, countries))

	require.True(t, strings.HasPrefix(svg, "<svg"))
	require.True(t, strings.HasSuffix(svg, "</svg>"))
	assert.Contains(t, svg, "Acme &lt;Widgets&gt;")
	assert.Contains(t, svg, "acme.example")
	assert.Contains(t, svg, "United States")
	assert.Contains(t, svg, "Germany")
	assert.NotContains(t, svg, "https://") // website shown without scheme
}

func TestRenderEmptyBreakdown(t *testing.T) {
	svg := string(Render(polar.Organization{Name: "Acme"}, nil))
	require.True(t, strings.HasPrefix(svg, "<svg"))
	assert.Contains(t, svg, "Acme")
}

func TestFilename(t *testing.T) {
	assert.Equal(t, "polar-customers-map-acme.svg", Filename("acme"))
}
