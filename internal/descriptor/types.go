package descriptor

import (
	"bytes"
	"encoding/json"
)

// Entry is one named entry point.
type Entry struct {
	Name string
	Path string
}

// EntryMap maps chunk names to entry scripts. Unlike a Go map it keeps
// insertion order, which the bundler observes when emitting chunks.
type EntryMap []Entry

// Names returns the entry names in order.
func (m EntryMap) Names() []string {
	names := make([]string, len(m))
	for i, e := range m {
		names[i] = e.Name
	}
	return names
}

// Lookup returns the entry path registered for name.
func (m EntryMap) Lookup(name string) (string, bool) {
	for _, e := range m {
		if e.Name == name {
			return e.Path, true
		}
	}
	return "", false
}

// MarshalJSON encodes the map as a JSON object whose keys keep their order.
func (m EntryMap) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, e := range m {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(e.Name)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(e.Path)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Page describes one generated HTML page.
type Page struct {
	Module   string   `json:"-"`
	Filename string   `json:"filename"`
	Template string   `json:"template"`
	Chunks   []string `json:"chunks"`
	Inject   bool     `json:"inject"`
	Hash     bool     `json:"hash"`
}

// Stage is one style-processing loader.
type Stage struct {
	Loader  string        `json:"loader"`
	Options *StageOptions `json:"options,omitempty"`
}

// StageOptions holds loader specific options. Only postcss has any.
type StageOptions struct {
	PostCSS *PostCSSOptions `json:"postcssOptions,omitempty"`
}

// PostCSSOptions lists the postcss plugins to run.
type PostCSSOptions struct {
	Plugins []string `json:"plugins"`
}

// RuleKind selects how files matching a rule are processed.
type RuleKind string

const (
	KindStyle  RuleKind = "style"
	KindAsset  RuleKind = "asset"
	KindScript RuleKind = "script"
)

// Rule is one entry of the bundler's module.rules list.
type Rule struct {
	Name string   `json:"-"`
	Kind RuleKind `json:"-"`
	Test string   `json:"test"`

	Use []Stage `json:"use,omitempty"`

	Type      string     `json:"type,omitempty"`
	Generator *Generator `json:"generator,omitempty"`

	Include []string       `json:"include,omitempty"`
	Loader  string         `json:"loader,omitempty"`
	Options *ScriptOptions `json:"options,omitempty"`
}

// Preprocessor returns the language-specific style stage of a style rule, if
// it has one.
func (r Rule) Preprocessor() string {
	if r.Kind != KindStyle || len(r.Use) <= len(baseStyleLoaders) {
		return ""
	}
	return r.Use[len(r.Use)-1].Loader
}

// Generator controls the emitted file name of asset modules.
type Generator struct {
	Filename string `json:"filename"`
}

// ScriptOptions are the transpiler cache options of a script rule.
type ScriptOptions struct {
	CacheDirectory   bool `json:"cacheDirectory"`
	CacheCompression bool `json:"cacheCompression"`
}

// Module wraps the rule list the way the bundler expects it.
type Module struct {
	Rules []Rule `json:"rules"`
}

// Output describes where and how bundled scripts are written.
type Output struct {
	Path     string `json:"path,omitempty"`
	Filename string `json:"filename"`
	Clean    bool   `json:"clean"`
}

// CopyPattern copies From into To inside the output directory.
type CopyPattern struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// CSSExtract configures extraction of styles into standalone files.
type CSSExtract struct {
	Filename string `json:"filename"`
}

// Plugins lists the bundler plugins in the order they are instantiated.
type Plugins struct {
	Copy        []CopyPattern `json:"copy,omitempty"`
	CSSExtract  CSSExtract    `json:"cssExtract"`
	CSSMinimize bool          `json:"cssMinimize"`
	Pages       []Page        `json:"html"`
}

// DevServer holds development server settings. They are passed through; no
// server is started here.
type DevServer struct {
	Host string `json:"host"`
	Port int    `json:"port"`
	Open bool   `json:"open"`
	Hot  bool   `json:"hot"`
}

// Descriptor is the complete build descriptor.
type Descriptor struct {
	Name      string    `json:"name,omitempty"`
	Mode      string    `json:"mode"`
	Devtool   string    `json:"devtool,omitempty"`
	Entry     EntryMap  `json:"entry"`
	Output    Output    `json:"output"`
	Module    Module    `json:"module"`
	Plugins   Plugins   `json:"plugins"`
	DevServer DevServer `json:"devServer"`
}
