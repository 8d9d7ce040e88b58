package descriptor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStyleStages_WithoutPreprocessor(t *testing.T) {
	stages := StyleStages("")

	require.Len(t, stages, 3)
	assert.Equal(t, []string{StageExtract, StageCSS, StagePostCSS}, Loaders(stages))
	for _, s := range stages {
		assert.NotEmpty(t, s.Loader, "no placeholder stages")
	}
}

func TestStyleStages_WithPreprocessor(t *testing.T) {
	stages := StyleStages("sass")

	require.Len(t, stages, 4)
	assert.Equal(t, []string{StageExtract, StageCSS, StagePostCSS, "sass"}, Loaders(stages))
}

func TestStyleStages_PostCSSOptions(t *testing.T) {
	stages := StyleStages("")

	postcss := stages[2]
	require.NotNil(t, postcss.Options)
	require.NotNil(t, postcss.Options.PostCSS)
	assert.Equal(t, []string{"postcss-preset-env"}, postcss.Options.PostCSS.Plugins)
	assert.Nil(t, stages[0].Options)
	assert.Nil(t, stages[1].Options)

	// Callers mutating the returned plugins must not leak into later calls.
	postcss.Options.PostCSS.Plugins[0] = "mutated"
	assert.Equal(t, []string{"postcss-preset-env"}, StyleStages("")[2].Options.PostCSS.Plugins)
}
