package descriptor

import (
	"path/filepath"
	"strings"

	"github.com/specialistvlad/pagegrid/internal/config"
)

// Defaults applied by Assemble when the model leaves a setting out.
const (
	DefaultMode           = "development"
	DefaultDevtool        = "cheap-module-source-map"
	DefaultOutputFilename = "static/js/[name].js"
	DefaultCSSFilename    = "static/css/[name].css"
	DefaultAssetFilename  = "static/imgs/[hash:8][ext][query]"
	DefaultScriptLoader   = "babel-loader"
	DefaultDevServerHost  = "localhost"
	DefaultDevServerPort  = 12016
)

// DefaultRules returns the rules used when a model declares none: plain css,
// sass, images and scripts from the entry directory and its sibling js
// directory.
func DefaultRules(entryDir string) []*config.Rule {
	yes, no := true, false
	var include []string
	if strings.TrimSpace(entryDir) != "" {
		include = []string{filepath.Join(filepath.Dir(entryDir), "js"), entryDir}
	}
	return []*config.Rule{
		{Kind: config.RuleStyle, Name: "css", Test: `\.css$`},
		{Kind: config.RuleStyle, Name: "sass", Test: `\.s[ac]ss$`, Preprocessor: "sass-loader"},
		{Kind: config.RuleAsset, Name: "images", Test: `\.(png|jpe?g|gif|webp)$`, Filename: DefaultAssetFilename},
		{
			Kind:             config.RuleScript,
			Name:             "js",
			Test:             `\.js$`,
			Include:          include,
			Loader:           DefaultScriptLoader,
			CacheDirectory:   &yes,
			CacheCompression: &no,
		},
	}
}

var validModes = map[string]bool{"development": true, "production": true, "none": true}

func boolOr(v *bool, def bool) bool {
	if v == nil {
		return def
	}
	return *v
}

func stringOr(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
