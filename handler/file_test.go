package handler

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func TestNewFileHandler_CreatesParents(t *testing.T) {
	dir := t.TempDir()
	filename := filepath.Join(dir, "a", "b", "debug.log")

	h, err := NewFileHandler(filename)
	require.NoError(t, err)
	assert.Equal(t, filename, h.Path())

	info, err := os.Stat(filepath.Join(dir, "a", "b"))
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	// The file itself is only created by Reset or a write
	_, err = os.Stat(filename)
	assert.True(t, os.IsNotExist(err))
}

func TestNewFileHandler_RelativePath(t *testing.T) {
	chdir(t, t.TempDir())

	h, err := NewFileHandler("logs/debug.log")
	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(h.Path()))
	assert.True(t, strings.HasSuffix(h.Path(), filepath.Join("logs", "debug.log")))
}

func TestNewFileHandler_HomeExpansion(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	h, err := NewFileHandler("~/debug/trace.log")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "debug", "trace.log"), h.Path())
}

func TestNewFileHandler_EmptyPath(t *testing.T) {
	_, err := NewFileHandler("")
	assert.Error(t, err)
}

func TestNewFileHandler_ParentIsFile(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0644))

	_, err := NewFileHandler(filepath.Join(blocker, "debug.log"))
	assert.Error(t, err)
}

func TestFileHandler_Reset(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "debug.log")
	require.NoError(t, os.WriteFile(filename, []byte("old content\n"), 0644))

	h, err := NewFileHandler(filename)
	require.NoError(t, err)
	require.NoError(t, h.Reset())

	assert.Equal(t, "", readFile(t, filename))
}

func TestFileHandler_ResetCreates(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "debug.log")
	h, err := NewFileHandler(filename)
	require.NoError(t, err)
	require.NoError(t, h.Reset())

	_, err = os.Stat(filename)
	assert.NoError(t, err)
}

func TestFileHandler_Pad(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "debug.log")
	h, err := NewFileHandler(filename)
	require.NoError(t, err)

	require.NoError(t, h.Pad(DefaultPadding))
	assert.Equal(t, strings.Repeat("\n", 100), readFile(t, filename))

	require.NoError(t, h.Pad(0))
	assert.Len(t, readFile(t, filename), 100)
}

func TestFileHandler_Append(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "debug.log")
	h, err := NewFileHandler(filename)
	require.NoError(t, err)

	require.NoError(t, h.Append("first"))
	require.NoError(t, h.Append("second\nline"))
	assert.Equal(t, "first\nsecond\nline\n", readFile(t, filename))
}

func TestFileHandler_AppendEmptyIsNoop(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "debug.log")
	h, err := NewFileHandler(filename)
	require.NoError(t, err)

	require.NoError(t, h.Append(""))
	_, err = os.Stat(filename)
	assert.True(t, os.IsNotExist(err), "empty append should not create the file")
}

func TestFileHandler_AppendFailure(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "debug.log")
	h, err := NewFileHandler(target)
	require.NoError(t, err)

	// A directory at the target path makes every open fail
	require.NoError(t, os.Mkdir(target, 0755))

	err = h.Append("text")
	require.Error(t, err)
	assert.Contains(t, err.Error(), target)
	assert.Error(t, h.Reset())
}

func TestFileHandler_ImplementsWriter(t *testing.T) {
	var _ Writer = (*FileHandler)(nil)
}

// chdir changes the working directory for the duration of the test,
// equivalent to testing.T.Chdir (Go 1.24+).
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatal(err)
		}
	})
}
