package mime

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAliasesGet(t *testing.T) {
	a := NewAliasesFile()
	require.NoError(t, a.Parse(strings.NewReader("text/x-foo text/foo\napplication/x-pdf application/pdf\n")))

	canonical, ok := a.Get("text/x-foo")
	require.True(t, ok)
	assert.Equal(t, "text/foo", canonical)

	_, ok = a.Get("text/unknown")
	assert.False(t, ok)
}

func TestAliasesLaterParseOverwrites(t *testing.T) {
	a := NewAliasesFile()
	require.NoError(t, a.Parse(strings.NewReader("text/x-foo text/foo\n")))
	require.NoError(t, a.Parse(strings.NewReader("text/x-foo text/bar\n")))

	canonical, ok := a.Get("text/x-foo")
	require.True(t, ok)
	assert.Equal(t, "text/bar", canonical)
}

func TestAliasesMalformedLines(t *testing.T) {
	malformed := []string{
		"text/x-foo\n",                   // missing separator
		"text/x-foo text/foo extra\n",    // more than one pair
		" text/foo\n",                    // empty alias
		"text/x-foo \n",                  // empty canonical
	}
	for _, line := range malformed {
		err := NewAliasesFile().Parse(strings.NewReader(line))
		assert.Error(t, err, "line %q should fail to parse", line)
	}
}
