package engine

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/svalverde/dupscan/internal/entities"
	"github.com/svalverde/dupscan/internal/hasher"
)

func mustPath(t *testing.T, raw string) entities.Path {
	t.Helper()
	p, err := entities.NewPath(raw)
	require.NoError(t, err)
	return p
}

func writeFile(t *testing.T, path string, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func digestOf(t *testing.T, p entities.Path) entities.Digest {
	t.Helper()
	d, _, err := hasher.HashFile(p)
	require.NoError(t, err)
	return d
}

func TestGetDuplicates_HelloHelloWorld(t *testing.T) {
	root := mustPath(t, t.TempDir())
	writeFile(t, filepath.Join(root.String(), "a.txt"), "hello")
	writeFile(t, filepath.Join(root.String(), "b.txt"), "hello")
	writeFile(t, filepath.Join(root.String(), "c.txt"), "world")

	groups, err := GetDuplicates(root.String(), nil)
	require.NoError(t, err)

	require.Len(t, groups, 1)
	helloDigest := digestOf(t, root.Join("a.txt"))
	require.Contains(t, groups, helloDigest)
	assert.Equal(t, []entities.Path{root.Join("a.txt"), root.Join("b.txt")}, groups[helloDigest])

	// c.txt appears in no group.
	for _, paths := range groups {
		assert.NotContains(t, paths, root.Join("c.txt"))
	}
}

func TestGetDuplicates_NeverReturnsGroupSmallerThanTwo(t *testing.T) {
	root := mustPath(t, t.TempDir())
	writeFile(t, filepath.Join(root.String(), "u1.txt"), "unique one")
	writeFile(t, filepath.Join(root.String(), "u2.txt"), "unique two")
	writeFile(t, filepath.Join(root.String(), "d1.txt"), "dup")
	writeFile(t, filepath.Join(root.String(), "d2.txt"), "dup")
	writeFile(t, filepath.Join(root.String(), "d3.txt"), "dup")

	groups, err := GetDuplicates(root, nil)
	require.NoError(t, err)

	require.Len(t, groups, 1)
	for _, paths := range groups {
		assert.GreaterOrEqual(t, len(paths), 2)
	}
}

func TestGetDuplicates_AcrossRoots(t *testing.T) {
	rootA := mustPath(t, t.TempDir())
	rootB := mustPath(t, t.TempDir())
	writeFile(t, filepath.Join(rootA.String(), "x.txt"), "shared content")
	writeFile(t, filepath.Join(rootB.String(), "deep", "y.txt"), "shared content")

	groups, err := GetDuplicates([]string{rootA.String(), rootB.String()}, nil)
	require.NoError(t, err)

	require.Len(t, groups, 1)
	digest := digestOf(t, rootA.Join("x.txt"))
	assert.Equal(t,
		[]entities.Path{rootA.Join("x.txt"), rootB.Join("deep").Join("y.txt")},
		groups[digest])
}

func TestGetDuplicates_ExcludeSubtree(t *testing.T) {
	root := mustPath(t, t.TempDir())
	writeFile(t, filepath.Join(root.String(), "a.txt"), "same")
	writeFile(t, filepath.Join(root.String(), "c.txt"), "same")
	writeFile(t, filepath.Join(root.String(), "sub", "b.txt"), "same")

	groups, err := GetDuplicates(root, filepath.Join(root.String(), "sub"))
	require.NoError(t, err)

	require.Len(t, groups, 1)
	digest := digestOf(t, root.Join("a.txt"))
	assert.Equal(t, []entities.Path{root.Join("a.txt"), root.Join("c.txt")}, groups[digest])
}

func TestGetDuplicates_ExcludeRemovesDuplicatesEntirely(t *testing.T) {
	// Both copies of a pair live under the excluded subtree: no group
	// may surface even though the pair exists on disk.
	root := mustPath(t, t.TempDir())
	writeFile(t, filepath.Join(root.String(), "solo.txt"), "alone")
	writeFile(t, filepath.Join(root.String(), "sub", "p1.txt"), "pair")
	writeFile(t, filepath.Join(root.String(), "sub", "p2.txt"), "pair")

	groups, err := GetDuplicates(root, root.Join("sub"))
	require.NoError(t, err)
	assert.Empty(t, groups)
}

func TestGetDuplicates_ExcludeCancelsOncePerOccurrence(t *testing.T) {
	// The same root listed twice yields every candidate twice; one
	// exclusion pass cancels exactly one occurrence of each.
	root := mustPath(t, t.TempDir())
	writeFile(t, filepath.Join(root.String(), "a.txt"), "pair")
	writeFile(t, filepath.Join(root.String(), "b.txt"), "pair")

	groups, err := GetDuplicates([]entities.Path{root, root}, root)
	require.NoError(t, err)

	require.Len(t, groups, 1)
	digest := digestOf(t, root.Join("a.txt"))
	assert.Equal(t, []entities.Path{root.Join("a.txt"), root.Join("b.txt")}, groups[digest])
}

func TestGetDuplicates_ExcludedPathAbsentFromCandidatesIsIgnored(t *testing.T) {
	root := mustPath(t, t.TempDir())
	other := mustPath(t, t.TempDir())
	writeFile(t, filepath.Join(root.String(), "a.txt"), "pair")
	writeFile(t, filepath.Join(root.String(), "b.txt"), "pair")
	writeFile(t, filepath.Join(other.String(), "unrelated.txt"), "elsewhere")

	groups, err := GetDuplicates(root, other)
	require.NoError(t, err)
	require.Len(t, groups, 1)
}

func TestGetDuplicates_EmptyDirectory(t *testing.T) {
	groups, err := GetDuplicates(t.TempDir(), nil)
	require.NoError(t, err)
	assert.Empty(t, groups)
}

func TestGetDuplicates_UnsupportedShapes(t *testing.T) {
	_, err := GetDuplicates(42, nil)
	assert.ErrorIs(t, err, entities.ErrUnsupportedType)

	_, err = GetDuplicates(t.TempDir(), 42)
	assert.ErrorIs(t, err, entities.ErrUnsupportedType)
}

func TestGetDuplicates_NonDirectoryRootFails(t *testing.T) {
	root := t.TempDir()
	file := filepath.Join(root, "plain.txt")
	writeFile(t, file, "content")

	_, err := GetDuplicates(file, nil)
	require.Error(t, err)
}

func TestGetDuplicates_MissingRootFails(t *testing.T) {
	_, err := GetDuplicates(filepath.Join(t.TempDir(), "absent"), nil)
	require.Error(t, err)
}

func TestRunner_RunStats(t *testing.T) {
	root := mustPath(t, t.TempDir())
	writeFile(t, filepath.Join(root.String(), "a.txt"), "12345")
	writeFile(t, filepath.Join(root.String(), "b.txt"), "12345")
	writeFile(t, filepath.Join(root.String(), "c.txt"), "other")

	runner := New(Options{Strategy: KeepFirst})
	stats, err := runner.Run(root, nil)
	require.NoError(t, err)

	assert.Equal(t, int64(3), stats.TotalFilesScanned)
	assert.Equal(t, int64(1), stats.DuplicatesCount)
	assert.Equal(t, int64(5), stats.WastedBytes)
	assert.Len(t, stats.FilesByDigest, 1)
	assert.GreaterOrEqual(t, stats.Duration.Nanoseconds(), int64(0))
}

func TestRunner_RebuildsStateBetweenRuns(t *testing.T) {
	root := mustPath(t, t.TempDir())
	writeFile(t, filepath.Join(root.String(), "a.txt"), "pair")
	writeFile(t, filepath.Join(root.String(), "b.txt"), "pair")

	runner := New(Options{})
	first, err := runner.Run(root, nil)
	require.NoError(t, err)
	require.Len(t, first.FilesByDigest, 1)

	require.NoError(t, os.Remove(filepath.Join(root.String(), "b.txt")))

	second, err := runner.Run(root, nil)
	require.NoError(t, err)
	assert.Empty(t, second.FilesByDigest)
	assert.Equal(t, int64(1), second.TotalFilesScanned)
}
