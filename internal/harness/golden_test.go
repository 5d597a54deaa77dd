package harness

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/rovers/internal/ir"
)

func TestRunWithGolden_Fixtures(t *testing.T) {
	paths, err := filepath.Glob("testdata/scenarios/*.yaml")
	require.NoError(t, err)

	for _, path := range paths {
		name := strings.TrimSuffix(filepath.Base(path), ".yaml")
		t.Run(name, func(t *testing.T) {
			s, err := LoadScenario(path)
			require.NoError(t, err)
			require.Equal(t, name, s.Name, "scenario name must match its file")

			result, err := RunWithGolden(t, s)
			require.NoError(t, err)
			assert.True(t, result.Pass, "errors: %v", result.Errors)
		})
	}
}

func TestSnapshot_DigestMatchesRunDigest(t *testing.T) {
	result, err := Run(loadFixture(t, "sample"))
	require.NoError(t, err)

	digest, err := ir.RunDigest([]string{"1 1 E", "3 3 N LOST", "2 3 S"}, []ir.Coordinate{{X: 3, Y: 3}})
	require.NoError(t, err)
	assert.Equal(t, digest, result.Digest)
}

func TestSnapshot_MarshalCanonical(t *testing.T) {
	data, err := Snapshot{Scenario: "empty"}.MarshalCanonical()
	require.NoError(t, err)
	assert.Equal(t, `{"digest":"","lost":0,"outputs":[],"rejected":[],"scenario":"empty","scents":[]}`, string(data))
}

func TestGoldenFiles_HaveScenarios(t *testing.T) {
	goldens, err := filepath.Glob("testdata/golden/*.golden")
	require.NoError(t, err)

	for _, g := range goldens {
		name := strings.TrimSuffix(filepath.Base(g), ".golden")
		_, err := os.Stat(filepath.Join("testdata", "scenarios", name+".yaml"))
		assert.NoError(t, err, "golden %s has no scenario", name)
	}
}
