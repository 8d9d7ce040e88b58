package config

// Rule kinds understood by the descriptor builder.
const (
	RuleStyle  = "style"
	RuleAsset  = "asset"
	RuleScript = "script"
)

// Model is the unified, format-agnostic representation of one build
// configuration. Directory fields are expected to be resolved by the loader;
// the descriptor builder never touches the filesystem.
type Model struct {
	Name    string
	Modules []string

	EntryDir    string
	TemplateDir string
	OutputDir   string
	ScriptExt   string
	CommonChunk string

	Mode    string
	Devtool string

	Output    *Output
	Rules     []*Rule
	Copy      []*CopyPattern
	CSS       *CSS
	DevServer *DevServer
}

// Output describes where bundled scripts are written.
type Output struct {
	Filename string
	Clean    *bool
}

// Rule is the format-agnostic representation of a `rule` block. Which fields
// are meaningful depends on Kind.
type Rule struct {
	Kind string
	Name string
	Test string

	// style
	Preprocessor string

	// asset
	Filename string

	// script
	Include          []string
	Loader           string
	CacheDirectory   *bool
	CacheCompression *bool
}

// CopyPattern copies a directory verbatim into the output directory.
type CopyPattern struct {
	From string
	To   string
}

// CSS configures style extraction, minification and postcss.
type CSS struct {
	Filename       string
	Minimize       *bool
	PostCSSPlugins []string
}

// DevServer holds the settings handed to the bundler's development server.
type DevServer struct {
	Host string
	Port int
	Open *bool
	Hot  *bool
}
