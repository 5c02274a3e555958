package export

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmoralesv/sombra/internal/engine"
	"github.com/jmoralesv/sombra/internal/model"
)

// buildTestSite creates a small site with one southern building and runs
// the analysis on it.
func buildTestSite(t *testing.T) (model.Site, engine.Result) {
	t.Helper()
	site := model.Site{
		Name:      "Test facade",
		Observer:  model.Point3D{Z: 1.5},
		Latitude:  40.4168,
		Longitude: -3.7038,
		Buildings: []model.Building{
			{
				ID:           "b1",
				GroupID:      "g1",
				CadastralRef: "9872023VH5797S",
				HeightCode:   "IV",
				Footprint: model.Ring{
					{X: 2, Y: -8}, {X: 8, Y: -8}, {X: 8, Y: -4}, {X: 2, Y: -4},
				},
			},
		},
		Settings: model.DefaultSettings(),
	}
	result := engine.New(site.Settings).Analyze(site)
	require.NotEmpty(t, result.Shadows)
	return site, result
}

func assertNonEmptyFile(t *testing.T, path string) {
	t.Helper()
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestExportPDF(t *testing.T) {
	site, result := buildTestSite(t)
	path := filepath.Join(t.TempDir(), "report.pdf")
	require.NoError(t, ExportPDF(path, site, result))
	assertNonEmptyFile(t, path)
}

func TestExportPDF_EmptyResult(t *testing.T) {
	site := model.DefaultSite()
	path := filepath.Join(t.TempDir(), "empty.pdf")
	require.NoError(t, ExportPDF(path, site, engine.Result{}))
	assertNonEmptyFile(t, path)
}

func TestExportXLSX(t *testing.T) {
	site, result := buildTestSite(t)
	path := filepath.Join(t.TempDir(), "shadows.xlsx")
	require.NoError(t, ExportXLSX(path, site, result.Shadows))
	assertNonEmptyFile(t, path)
}

func TestShadowChart(t *testing.T) {
	site, result := buildTestSite(t)
	path := filepath.Join(t.TempDir(), "shadows.png")
	require.NoError(t, ShadowChart(path, site, result.Shadows))
	assertNonEmptyFile(t, path)
}

func TestShadowChart_NoLocation(t *testing.T) {
	site, result := buildTestSite(t)
	site.Latitude, site.Longitude = 0, 0
	path := filepath.Join(t.TempDir(), "shadows.png")
	require.NoError(t, ShadowChart(path, site, result.Shadows))
	assertNonEmptyFile(t, path)
}
