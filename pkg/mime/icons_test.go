package mime

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIconsGet(t *testing.T) {
	i := NewIconsFile()
	require.NoError(t, i.Parse(strings.NewReader("text/x-log:text-x-generic\n")))

	icon, ok := i.Get("text/x-log")
	require.True(t, ok)
	assert.Equal(t, "text-x-generic", icon)

	_, ok = i.Get("image/png")
	assert.False(t, ok)
}

func TestIconsLaterParseOverwrites(t *testing.T) {
	i := NewIconsFile()
	require.NoError(t, i.Parse(strings.NewReader("text/x-log:text-x-generic\n")))
	require.NoError(t, i.Parse(strings.NewReader("text/x-log:text-x-script\n")))

	icon, ok := i.Get("text/x-log")
	require.True(t, ok)
	assert.Equal(t, "text-x-script", icon)
}

func TestIconsMalformedLines(t *testing.T) {
	malformed := []string{
		"text/x-log\n",                     // missing separator
		":icon\n",                          // empty type
		"text/x-log:\n",                    // empty icon
		"text/x-log:text-x-generic:extra\n", // more than one pair
	}
	for _, line := range malformed {
		err := NewIconsFile().Parse(strings.NewReader(line))
		assert.Error(t, err, "line %q should fail to parse", line)
	}
}
