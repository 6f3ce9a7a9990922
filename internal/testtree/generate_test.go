package testtree

import (
	"io/fs"
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/svalverde/dupscan/internal/engine"
)

func TestGenerate_RequiresRand(t *testing.T) {
	err := Generate(Config{BaseDir: t.TempDir(), Depth: 1, MaxDirs: 2, MaxFiles: 2})
	require.Error(t, err)
}

func TestGenerate_ValidatesBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	err := Generate(Config{BaseDir: t.TempDir(), Depth: 1, MaxDirs: 0, MaxFiles: 2, Rand: rng})
	require.Error(t, err)
}

func TestGenerate_DepthZeroCreatesNothing(t *testing.T) {
	base := t.TempDir()
	rng := rand.New(rand.NewSource(1))
	require.NoError(t, Generate(Config{BaseDir: base, Depth: 0, MaxDirs: 3, MaxFiles: 3, Rand: rng}))

	entries, err := os.ReadDir(base)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestGenerate_DoesNotTouchWorkingDirectory(t *testing.T) {
	before, err := os.Getwd()
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(7))
	require.NoError(t, Generate(Config{
		BaseDir: t.TempDir(), Depth: 2, DuplicatePercent: 25,
		MaxDirs: 3, MaxFiles: 5, Rand: rng,
	}))

	after, err := os.Getwd()
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestGenerate_GroupsMatchActualContent(t *testing.T) {
	base := t.TempDir()
	rng := rand.New(rand.NewSource(42))
	require.NoError(t, Generate(Config{
		BaseDir: base, Depth: 3, DuplicatePercent: 50,
		MaxDirs: 3, MaxFiles: 8, Rand: rng,
	}))

	// Ground truth: group every generated file by its literal content.
	byContent := make(map[string]int)
	err := filepath.WalkDir(base, func(path string, d fs.DirEntry, err error) error {
		require.NoError(t, err)
		if d.Type().IsRegular() {
			data, err := os.ReadFile(path)
			require.NoError(t, err)
			byContent[string(data)]++
		}
		return nil
	})
	require.NoError(t, err)

	wantGroups := 0
	for _, n := range byContent {
		if n >= 2 {
			wantGroups++
		}
	}

	groups, err := engine.GetDuplicates(base, nil)
	require.NoError(t, err)
	assert.Len(t, groups, wantGroups)

	// Group sizes agree with the content census.
	gotSizes := make(map[int]int)
	for _, paths := range groups {
		gotSizes[len(paths)]++
	}
	wantSizes := make(map[int]int)
	for _, n := range byContent {
		if n >= 2 {
			wantSizes[n]++
		}
	}
	assert.Equal(t, wantSizes, gotSizes)
}

func TestGenerate_SeededTreesAreReproducible(t *testing.T) {
	baseA := t.TempDir()
	baseB := t.TempDir()

	for _, base := range []string{baseA, baseB} {
		rng := rand.New(rand.NewSource(99))
		require.NoError(t, Generate(Config{
			BaseDir: base, Depth: 2, DuplicatePercent: 25,
			MaxDirs: 2, MaxFiles: 4, Rand: rng,
		}))
	}

	layout := func(base string) []string {
		var rel []string
		err := filepath.WalkDir(base, func(path string, d fs.DirEntry, err error) error {
			require.NoError(t, err)
			r, err := filepath.Rel(base, path)
			require.NoError(t, err)
			rel = append(rel, r)
			return nil
		})
		require.NoError(t, err)
		return rel
	}
	assert.Equal(t, layout(baseA), layout(baseB))
}
