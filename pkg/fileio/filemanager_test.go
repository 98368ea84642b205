package fileio

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestManager(t *testing.T) *FileManager {
	t.Helper()

	base := t.TempDir()
	fm := New(
		filepath.Join(base, "input"),
		filepath.Join(base, "output"),
		filepath.Join(base, "archive"),
		filepath.Join(base, "reports"),
	)
	require.NoError(t, fm.EnsureDirectories())
	return fm
}

func TestEnsureDirectories(t *testing.T) {
	fm := newTestManager(t)

	for _, dir := range []string{fm.InputDir, fm.OutputDir, fm.ArchiveDir, fm.ReportsDir} {
		info, err := os.Stat(dir)
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	}
}

func TestDiscoverInputFiles(t *testing.T) {
	fm := newTestManager(t)

	for _, name := range []string{"b.klv", "a.klv", "skip.txt"} {
		require.NoError(t, os.WriteFile(filepath.Join(fm.InputDir, name), []byte("00200"), 0644))
	}

	files, err := fm.DiscoverInputFiles("*.klv")
	require.NoError(t, err)

	require.Len(t, files, 2)
	assert.Equal(t, "a.klv", filepath.Base(files[0]), "discovery order is sorted")
	assert.Equal(t, "b.klv", filepath.Base(files[1]))
}

func TestArchiveInputFile(t *testing.T) {
	fm := newTestManager(t)

	source := filepath.Join(fm.InputDir, "done.klv")
	require.NoError(t, os.WriteFile(source, []byte("00200"), 0644))

	require.NoError(t, fm.ArchiveInputFile(source))

	_, err := os.Stat(source)
	assert.True(t, os.IsNotExist(err), "input file should have moved")

	_, err = os.Stat(filepath.Join(fm.ArchiveDir, "done.klv"))
	assert.NoError(t, err)
}

func TestWriteOutput(t *testing.T) {
	fm := newTestManager(t)

	path, err := fm.WriteOutput("result.json", []byte("[]"))
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))
}

func TestOutputFileName(t *testing.T) {
	t.Run("stem placeholder", func(t *testing.T) {
		name := OutputFileName("{stem}_out", "/data/in/payload.klv", ".json")
		assert.Equal(t, "payload_out.json", name)
	})

	t.Run("uuid placeholder", func(t *testing.T) {
		name := OutputFileName("{uuid}", "x.klv", ".csv")

		assert.True(t, strings.HasSuffix(name, ".csv"))
		assert.Len(t, name, 36+len(".csv"))
	})

	t.Run("timestamp placeholder", func(t *testing.T) {
		name := OutputFileName("{stem}_{timestamp}", "x.klv", ".txt")

		assert.True(t, strings.HasPrefix(name, "x_"))
		assert.True(t, strings.HasSuffix(name, ".txt"))
		assert.Len(t, name, len("x_20060102_150405.txt"))
	})

	t.Run("distinct names per call", func(t *testing.T) {
		a := OutputFileName("{uuid}", "x.klv", ".txt")
		b := OutputFileName("{uuid}", "x.klv", ".txt")
		assert.NotEqual(t, a, b)
	})

	t.Run("extension not doubled", func(t *testing.T) {
		name := OutputFileName("{stem}.json", "x.klv", ".json")
		assert.Equal(t, "x.json", name)
	})
}
