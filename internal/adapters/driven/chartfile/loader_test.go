package chartfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jyotish-labs/hora-cli/internal/core/domain"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "positions.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestLoad_FullChart(t *testing.T) {
	path := writeFile(t, `
[ascendant]
sign = "aries"
degree = 12.5

[[planets]]
name = "sun"
sign = "leo"
degree = 3.0

[[planets]]
name = "Chandra"
sign = "Karka"
degree = 20
`)

	asc, planets, err := Load(path)

	require.NoError(t, err)
	require.NotNil(t, asc)
	assert.Equal(t, domain.AscendantLabel, asc.Label)
	assert.Equal(t, domain.SignAries, asc.Sign)
	assert.InDelta(t, 12.5, asc.Degree, 0.0001)

	require.Len(t, planets, 2)
	assert.Equal(t, "Sun", planets[0].Label)
	assert.Equal(t, domain.SignLeo, planets[0].Sign)
	assert.Equal(t, "Moon", planets[1].Label) // Sanskrit name resolved
	assert.Equal(t, domain.SignCancer, planets[1].Sign)
	assert.InDelta(t, 20, planets[1].Degree, 0.0001)
}

func TestLoad_NoAscendant(t *testing.T) {
	path := writeFile(t, `
[[planets]]
name = "saturn"
sign = "capricorn"
degree = 5
`)

	asc, planets, err := Load(path)

	require.NoError(t, err)
	assert.Nil(t, asc)
	require.Len(t, planets, 1)
}

func TestLoad_PermissiveDegrees(t *testing.T) {
	path := writeFile(t, `
[[planets]]
name = "sun"
sign = "leo"
degree = "7,5"

[[planets]]
name = "moon"
sign = "cancer"
`)

	_, planets, err := Load(path)

	require.NoError(t, err)
	require.Len(t, planets, 2)
	assert.InDelta(t, 7.5, planets[0].Degree, 0.0001)
	assert.InDelta(t, 0, planets[1].Degree, 0.0001) // missing degree falls back to 0
}

func TestLoad_UnknownSignKeptButUnclassifiable(t *testing.T) {
	path := writeFile(t, `
[[planets]]
name = "sun"
sign = "ophiuchus"
degree = 1
`)

	_, planets, err := Load(path)

	require.NoError(t, err)
	require.Len(t, planets, 1)
	assert.False(t, planets[0].IsComplete())
	assert.Empty(t, domain.BuildChart(nil, planets))
}

func TestLoad_MissingFile(t *testing.T) {
	_, _, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	assert.Error(t, err)
}

func TestLoad_MalformedTOML(t *testing.T) {
	path := writeFile(t, "[[planets\nname=")
	_, _, err := Load(path)
	assert.Error(t, err)
}
