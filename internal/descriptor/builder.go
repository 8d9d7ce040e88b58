package descriptor

import (
	"path/filepath"
	"strings"
)

// CommonChunk is the reserved chunk shared by every page.
const CommonChunk = "common"

// DefaultScriptExt is the entry script extension used when a Layout has none.
const DefaultScriptExt = "js"

// Layout holds the directory conventions a Builder derives paths from.
type Layout struct {
	// EntryDir contains one entry script per module plus the common one.
	EntryDir string
	// TemplateDir contains one HTML template per module.
	TemplateDir string
	// ScriptExt is the entry script extension, with or without the dot.
	ScriptExt string
	// CommonChunk overrides the name of the shared chunk.
	CommonChunk string
}

// Builder expands module names into entry points and page descriptors.
type Builder struct {
	entryDir    string
	templateDir string
	scriptExt   string
	common      string
}

// NewBuilder validates layout and returns a Builder for it. An unset entry or
// template directory is a ConfigurationError.
func NewBuilder(layout Layout) (*Builder, error) {
	var p problems
	if strings.TrimSpace(layout.EntryDir) == "" {
		p.addf("entry directory is not set")
	}
	if strings.TrimSpace(layout.TemplateDir) == "" {
		p.addf("template directory is not set")
	}
	if err := p.err(); err != nil {
		return nil, err
	}

	ext := strings.TrimPrefix(layout.ScriptExt, ".")
	if ext == "" {
		ext = DefaultScriptExt
	}
	common := layout.CommonChunk
	if common == "" {
		common = CommonChunk
	}

	return &Builder{
		entryDir:    layout.EntryDir,
		templateDir: layout.TemplateDir,
		scriptExt:   ext,
		common:      common,
	}, nil
}

// EntryPath returns the entry script of a module. It is a plain path join;
// whether the file exists is for the bundler to find out.
func (b *Builder) EntryPath(module string) string {
	return filepath.Join(b.entryDir, module+"."+b.scriptExt)
}

// Page returns the page descriptor of a module.
func (b *Builder) Page(module string) Page {
	return Page{
		Module:   module,
		Filename: "html/" + module + ".html",
		Template: filepath.Join(b.templateDir, module+".html"),
		Chunks:   []string{b.common, module},
		Inject:   true,
		Hash:     true,
	}
}

// BuildAll returns the entry map, common chunk first, and one page per module
// in input order. The module list must be non-empty and free of duplicates,
// blank names and the common chunk name.
func (b *Builder) BuildAll(modules []string) (EntryMap, []Page, error) {
	if err := validateModules(modules, b.common); err != nil {
		return nil, nil, err
	}

	entries := make(EntryMap, 0, len(modules)+1)
	entries = append(entries, Entry{Name: b.common, Path: b.EntryPath(b.common)})

	pages := make([]Page, 0, len(modules))
	for _, m := range modules {
		entries = append(entries, Entry{Name: m, Path: b.EntryPath(m)})
		pages = append(pages, b.Page(m))
	}
	return entries, pages, nil
}

// validateModules checks a module list against the shared chunk name common.
func validateModules(modules []string, common string) error {
	var p problems
	if len(modules) == 0 {
		p.addf("module list is empty")
		return p.err()
	}

	seen := make(map[string]int, len(modules))
	for i, m := range modules {
		switch {
		case strings.TrimSpace(m) == "":
			p.addf("module #%d has a blank name", i+1)
			continue
		case m == common:
			p.addf("module %q collides with the common chunk", m)
		}
		if first, ok := seen[m]; ok {
			p.addf("module %q is listed twice (#%d and #%d)", m, first+1, i+1)
			continue
		}
		seen[m] = i
	}
	return p.err()
}
