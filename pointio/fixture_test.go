package pointio

import (
	"embed"
	"testing"

	"github.com/stretchr/testify/require"
)

// Fixtures are available by name in the fixtures/ directory, sans extension.

//go:embed fixtures
var fixtures embed.FS

func LoadFixture(t *testing.T, name string) []Polygon {
	t.Helper()
	fixture, err := fixtures.Open("fixtures/" + name + ".svg")
	require.NoError(t, err, "could not load fixture %q", name)
	defer fixture.Close()

	polygons, err := ReadSVGPolygons(fixture)
	require.NoError(t, err, "failed to parse fixture %q", name)
	return polygons
}
