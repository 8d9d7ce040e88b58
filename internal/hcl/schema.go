package hcl

import "github.com/hashicorp/hcl/v2"

// fileRoot is used to decode the top level of every configuration file.
type fileRoot struct {
	Builds []*Build  `hcl:"build,block"`
	Remain hcl.Body `hcl:",remain"`
}

// Build is the HCL schema of a `build` block.
type Build struct {
	Name    string   `hcl:"name,label"`
	Modules []string `hcl:"modules"`

	EntryDir    string `hcl:"entry_dir,optional"`
	TemplateDir string `hcl:"template_dir,optional"`
	OutputDir   string `hcl:"output_dir,optional"`
	ScriptExt   string `hcl:"script_ext,optional"`
	CommonChunk string `hcl:"common_chunk,optional"`
	Mode        string `hcl:"mode,optional"`
	Devtool     string `hcl:"devtool,optional"`

	Output    *Output        `hcl:"output,block"`
	Rules     []*Rule        `hcl:"rule,block"`
	Copy      []*CopyPattern `hcl:"copy,block"`
	CSS       *CSS           `hcl:"css,block"`
	DevServer *DevServer     `hcl:"dev_server,block"`

	DeclRange hcl.Range `hcl:",def_range"`
}

// Output is the HCL schema of an `output` block.
type Output struct {
	Filename string `hcl:"filename,optional"`
	Clean    *bool  `hcl:"clean,optional"`
}

// Rule is the HCL schema of a `rule "<kind>" "<name>"` block.
type Rule struct {
	Kind string `hcl:"kind,label"`
	Name string `hcl:"name,label"`
	Test string `hcl:"test"`

	Preprocessor string `hcl:"preprocessor,optional"`
	Filename     string `hcl:"filename,optional"`

	Include          []string `hcl:"include,optional"`
	Loader           string   `hcl:"loader,optional"`
	CacheDirectory   *bool    `hcl:"cache_directory,optional"`
	CacheCompression *bool    `hcl:"cache_compression,optional"`
}

// CopyPattern is the HCL schema of a `copy` block.
type CopyPattern struct {
	From string `hcl:"from"`
	To   string `hcl:"to"`
}

// CSS is the HCL schema of a `css` block.
type CSS struct {
	Filename       string   `hcl:"filename,optional"`
	Minimize       *bool    `hcl:"minimize,optional"`
	PostCSSPlugins []string `hcl:"postcss_plugins,optional"`
}

// DevServer is the HCL schema of a `dev_server` block.
type DevServer struct {
	Host string `hcl:"host,optional"`
	Port int    `hcl:"port,optional"`
	Open *bool  `hcl:"open,optional"`
	Hot  *bool  `hcl:"hot,optional"`
}
