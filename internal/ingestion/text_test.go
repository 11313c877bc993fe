package ingestion

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanText_NormalizesLineEndings(t *testing.T) {
	assert.Equal(t, "line one\nline two", CleanText("line one\r\nline two"))
	assert.Equal(t, "line one\nline two", CleanText("line one\rline two"))
}

func TestCleanText_TrimsTrailingWhitespace(t *testing.T) {
	assert.Equal(t, "hello\nworld", CleanText("hello   \nworld\t"))
}

func TestCleanText_CollapsesExcessBlankLines(t *testing.T) {
	assert.Equal(t, "a\n\nb", CleanText("a\n\n\n\n\nb"))
}

func TestCleanText_CollapsesSpaceRuns(t *testing.T) {
	assert.Equal(t, "must know react and sql", CleanText("must know  react and  sql"))
	assert.Equal(t, "must know react", CleanText("must   know \t react"))
}

func TestCleanText_PreservesIndentation(t *testing.T) {
	assert.Equal(t, "Requirements:\n  - React\n  - SQL", CleanText("Requirements:\n  - React\n  - SQL"))
}

func TestCleanText_EmptyInput(t *testing.T) {
	assert.Equal(t, "", CleanText(""))
	assert.Equal(t, "", CleanText("   \n\t\n  "))
}

func TestFromFile_ReadsAndCleans(t *testing.T) {
	path := filepath.Join(t.TempDir(), "jd.txt")
	require.NoError(t, os.WriteFile(path, []byte("React developer\r\n\r\n\r\nwith SQL   \n"), 0o644))

	text, err := FromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "React developer\n\nwith SQL", text)
}

func TestFromFile_MissingFile(t *testing.T) {
	_, err := FromFile(filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)
}
