package latex

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderReturnsOutputBytes(t *testing.T) {
	// Stand in for a LaTeX compiler: copy the source to the output name.
	out, err := Render(
		[]string{"/bin/sh", "-c", "cp doc.tex doc.pdf"},
		"doc.tex", "hello world", "doc.pdf", "",
	)
	require.NoError(t, err)
	assert.Equal(t, []byte("hello world"), out)
}

func TestRenderCompilerFailure(t *testing.T) {
	out, err := Render(
		[]string{"/bin/sh", "-c", "exit 1"},
		"doc.tex", "hello", "doc.pdf", "",
	)
	require.Error(t, err)
	assert.Nil(t, out)
	assert.Contains(t, err.Error(), "compilation failed")
}

func TestRenderMissingOutput(t *testing.T) {
	out, err := Render(
		[]string{"/bin/sh", "-c", "true"},
		"doc.tex", "hello", "doc.pdf", "",
	)
	require.Error(t, err)
	assert.Nil(t, out)
}

func TestRenderEmptyOutput(t *testing.T) {
	out, err := Render(
		[]string{"/bin/sh", "-c", ": > doc.pdf"},
		"doc.tex", "hello", "doc.pdf", "",
	)
	require.Error(t, err)
	assert.Nil(t, out)
}

func TestRenderEmptyCommand(t *testing.T) {
	_, err := Render(nil, "doc.tex", "hello", "doc.pdf", "")
	require.Error(t, err)
}

func TestRenderCopiesSupportFiles(t *testing.T) {
	supportDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(supportDir, "style.cls"), []byte("cls"), 0644))

	out, err := Render(
		[]string{"/bin/sh", "-c", "cp style.cls doc.pdf"},
		"doc.tex", "hello", "doc.pdf", supportDir,
	)
	require.NoError(t, err)
	assert.Equal(t, []byte("cls"), out)
}

func TestRenderCleansWorkDir(t *testing.T) {
	dirFile := filepath.Join(t.TempDir(), "workdir")
	_, err := Render(
		[]string{"/bin/sh", "-c", "pwd > " + dirFile + "; cp doc.tex doc.pdf"},
		"doc.tex", "hello", "doc.pdf", "",
	)
	require.NoError(t, err)

	recorded, err := os.ReadFile(dirFile)
	require.NoError(t, err)
	workDir := string(recorded[:len(recorded)-1])

	_, err = os.Stat(workDir)
	assert.True(t, os.IsNotExist(err))
}
