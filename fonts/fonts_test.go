package fonts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	require.NoError(t, LoadDefaults())

	for _, name := range []FontName{Bold, Title, Small, Score} {
		assert.NotNil(t, name.Get(), name)
	}
	assert.Greater(t, Score.Get().Metrics().Height, Small.Get().Metrics().Height)
}

func TestLoadFontWithSizeRejectsGarbage(t *testing.T) {
	err := LoadFontWithSize("broken", []byte("not a font"), 12)
	assert.ErrorContains(t, err, "broken")
}

func TestMissingFontPanics(t *testing.T) {
	assert.Panics(t, func() { FontName("missing").Get() })
}
