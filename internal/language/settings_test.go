package language

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFeaturesFollowVersion(t *testing.T) {
	old := NewSettings(Version1_0)
	assert.False(t, old.Supports(LocalVariableSmartCasts))
	assert.False(t, old.Supports(CapturedVariableSmartCasts))

	mid := NewSettings(Version1_1)
	assert.True(t, mid.Supports(LocalVariableSmartCasts))
	assert.False(t, mid.Supports(CapturedVariableSmartCasts))

	latest := Settings{}
	assert.True(t, latest.Supports(LocalVariableSmartCasts))
	assert.True(t, latest.Supports(CapturedVariableSmartCasts))
}

func TestOverridesWinAndDoNotLeak(t *testing.T) {
	base := NewSettings(Version1_0)
	enabled := base.With(LocalVariableSmartCasts, true)

	assert.True(t, enabled.Supports(LocalVariableSmartCasts))
	assert.False(t, base.Supports(LocalVariableSmartCasts))

	disabled := NewSettings(Version2_0).With(CapturedVariableSmartCasts, false)
	assert.False(t, disabled.Supports(CapturedVariableSmartCasts))
	assert.True(t, disabled.Supports(LocalVariableSmartCasts))
}

func TestParseVersion(t *testing.T) {
	v, err := ParseVersion("1.1")
	require.NoError(t, err)
	assert.Equal(t, Version1_1, v)

	_, err = ParseVersion("3.7")
	assert.Error(t, err)
}

func TestFeatureByName(t *testing.T) {
	f, ok := FeatureByName("CapturedVariableSmartCasts")
	require.True(t, ok)
	assert.Equal(t, CapturedVariableSmartCasts, f)
	assert.Equal(t, Version2_0, f.SinceVersion())

	_, ok = FeatureByName("Nope")
	assert.False(t, ok)
	assert.Equal(t, []string{"CapturedVariableSmartCasts", "LocalVariableSmartCasts"}, FeatureNames())
}
