package descriptor

// Style stage loaders, in declared order. The bundler runs them right to
// left, so each stage consumes the output of the one after it.
const (
	StageExtract = "mini-css-extract-plugin/loader"
	StageCSS     = "css-loader"
	StagePostCSS = "postcss-loader"
)

var baseStyleLoaders = []string{StageExtract, StageCSS, StagePostCSS}

// DefaultPostCSSPlugins is the plugin list of the postcss stage.
var DefaultPostCSSPlugins = []string{"postcss-preset-env"}

// StyleStages returns the style loader chain: extraction, css, postcss and,
// when preprocessor is non-empty, the preprocessor last. An empty
// preprocessor is left out entirely.
func StyleStages(preprocessor string) []Stage {
	return styleStages(preprocessor, DefaultPostCSSPlugins)
}

func styleStages(preprocessor string, plugins []string) []Stage {
	stages := make([]Stage, 0, len(baseStyleLoaders)+1)
	stages = append(stages,
		Stage{Loader: StageExtract},
		Stage{Loader: StageCSS},
		Stage{
			Loader: StagePostCSS,
			Options: &StageOptions{
				PostCSS: &PostCSSOptions{Plugins: append([]string(nil), plugins...)},
			},
		},
	)
	if preprocessor != "" {
		stages = append(stages, Stage{Loader: preprocessor})
	}
	return stages
}

// Loaders returns the loader names of stages.
func Loaders(stages []Stage) []string {
	out := make([]string, len(stages))
	for i, s := range stages {
		out[i] = s.Loader
	}
	return out
}
