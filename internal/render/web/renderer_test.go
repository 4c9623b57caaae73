package web

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sawpanic/defiboard/internal/dashboard"
	"github.com/sawpanic/defiboard/internal/data/sample"
	"github.com/sawpanic/defiboard/internal/domain/portfolio"
)

func renderSample(t *testing.T, opts dashboard.Options) string {
	t.Helper()
	r, err := NewRenderer()
	require.NoError(t, err)

	page := dashboard.Build(sample.NewDataset(sample.Options{Seed: 1}), opts)
	var buf bytes.Buffer
	require.NoError(t, r.Render(&buf, page))
	return buf.String()
}

func TestRender_Sections(t *testing.T) {
	out := renderSample(t, dashboard.Options{})

	assert.Contains(t, out, "<title>DeFi Guardian</title>")

	var last int
	for _, heading := range []string{"Risk Assessment", "Lending Markets", "Portfolio Overview",
		"Portfolio Allocation", "Yield Optimization", "Yield Opportunities"} {
		at := strings.Index(out, heading)
		require.True(t, at > last, "%q missing or out of order", heading)
		last = at
	}

	risk := strings.Index(out, `id="risk"`)
	lending := strings.Index(out, `id="lending"`)
	allocation := strings.Index(out, `id="allocation"`)
	yield := strings.Index(out, `id="yield"`)
	require.True(t, risk > 0 && lending > 0 && allocation > 0 && yield > 0)
	assert.True(t, risk < lending && lending < allocation && allocation < yield, "sections stack in order")
}

func TestRender_Content(t *testing.T) {
	out := renderSample(t, dashboard.Options{})

	assert.Contains(t, out, `class="badge badge-yellow">MEDIUM<`)
	assert.Contains(t, out, `class="badge badge-green">LOW<`)
	assert.Contains(t, out, "15.0%")
	assert.Contains(t, out, "/ 20.0% threshold")
	assert.Contains(t, out, `data-icon="dollar-sign"`)
	assert.Contains(t, out, `<span>65%</span>`)
	assert.Contains(t, out, `style="width: 65%"`)
	assert.Contains(t, out, "$2.50M TVL")
	assert.Contains(t, out, "on Trader Joe")
	assert.Contains(t, out, ">Lend BTC.b<")
	assert.Contains(t, out, "background: linear-gradient(135deg, #a855f7, #ec4899)")
	assert.Contains(t, out, "$400,000 (40%)")
	assert.Contains(t, out, "Risk Score: 12.0%")
	assert.Contains(t, out, "$800k")
	assert.Contains(t, out, "$1,000,000")
	assert.Contains(t, out, dashboard.GlyphRecommended)
	assert.Contains(t, out, dashboard.GlyphNotRecommended)
	assert.NotContains(t, out, "ZgotmplZ")
}

func TestRender_RankingSubtitle(t *testing.T) {
	assert.NotContains(t, renderSample(t, dashboard.Options{}), "ranked by risk-adjusted returns")
	assert.Contains(t, renderSample(t, dashboard.Options{Ranking: dashboard.RankingRiskAdjusted}), "ranked by risk-adjusted returns")
}

func TestRender_EscapesAndDegrades(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)

	page := dashboard.Page{
		Title: "<script>x</script>",
		Risk: dashboard.RiskCards([]portfolio.RiskMetric{
			{Name: "Unmapped", Status: "unknown"},
		}),
		Lending: dashboard.LendingTiles([]portfolio.LendingOpportunity{
			{Protocol: "P", Asset: "A", Color: "no-such-token"},
		}),
		GeneratedAt: time.Now(),
	}

	var buf bytes.Buffer
	require.NoError(t, r.Render(&buf, page))
	out := buf.String()

	assert.NotContains(t, out, "<script>x</script>")
	assert.Contains(t, out, "badge-gray")
	assert.Contains(t, out, `data-gradient="neutral"`)
	assert.Contains(t, out, "linear-gradient(135deg, #6b7280, #374151)")
	assert.NotContains(t, out, `class="icon"`)
}

func TestBackground_RejectsNonHexStops(t *testing.T) {
	got := background(dashboard.Gradient{Token: "x", From: "red;}", To: "#fff"})
	assert.Equal(t, "background: linear-gradient(135deg, #6b7280, #374151)", string(got))
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("closed") }

func TestRender_WriteError(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)
	assert.Error(t, r.Render(failingWriter{}, dashboard.Page{}))
}
