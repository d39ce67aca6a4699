package lcs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lu-zero/argenum/internal/lcs"
)

func TestSplitWords(t *testing.T) {
	assert.Equal(t, []string{"get", "ID"}, lcs.SplitWords("getID"))
	assert.Equal(t, []string{"HTTP", "Server"}, lcs.SplitWords("HTTPServer"))
	assert.Equal(t, []string{"send", "_", "nowait"}, lcs.SplitWords("send_nowait"))
	assert.Equal(t, []string{"file", "2", "name"}, lcs.SplitWords("file2name"))
	assert.Equal(t, []string{"Kind", "Invalid"}, lcs.SplitWords("KindInvalid"))
	assert.Equal(t, []string{"word"}, lcs.SplitWords("word"))
	assert.Empty(t, lcs.SplitWords(""))
}

func TestCommonWordPrefix(t *testing.T) {
	assert.Equal(t, "Kind", lcs.CommonWordPrefix([]string{"KindInvalid", "KindFile", "KindIdent"}))
	assert.Equal(t, "", lcs.CommonWordPrefix([]string{"Apple", "Banana"}))
	assert.Equal(t, "", lcs.CommonWordPrefix(nil))
}

func TestCommonWordPrefixNeverSplitsWord(t *testing.T) {
	// "KindFile" and "KindFloat" share the bytes "KindF" but the prefix
	// must stop at the word boundary.
	assert.Equal(t, "Kind", lcs.CommonWordPrefix([]string{"KindFile", "KindFloat"}))
}

func TestCommonWordPrefixSingle(t *testing.T) {
	assert.Equal(t, "KindFile", lcs.CommonWordPrefix([]string{"KindFile"}))
}

func TestCommonWordPrefixUnderscore(t *testing.T) {
	assert.Equal(t, "STATUS_", lcs.CommonWordPrefix([]string{"STATUS_TODO", "STATUS_DONE"}))
}
