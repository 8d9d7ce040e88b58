package esbuild

import (
	"fmt"
	"path"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/evanw/esbuild/pkg/api"

	"github.com/specialistvlad/pagegrid/internal/descriptor"
)

// Plan is a descriptor translated into esbuild options.
type Plan struct {
	Options api.BuildOptions
	// Clean empties the output directory before building.
	Clean bool
	// Skipped lists descriptor features esbuild cannot carry out.
	Skipped []string
}

var (
	styleExts  = []string{".css", ".scss", ".sass", ".less", ".styl"}
	assetExts  = []string{".png", ".jpg", ".jpeg", ".gif", ".webp", ".avif", ".svg", ".ico", ".woff", ".woff2", ".ttf", ".eot"}
	scriptExts = map[string]api.Loader{
		".js":  api.LoaderJS,
		".mjs": api.LoaderJS,
		".cjs": api.LoaderJS,
		".jsx": api.LoaderJSX,
		".ts":  api.LoaderTS,
		".tsx": api.LoaderTSX,
	}

	hashPlaceholder = regexp.MustCompile(`\[(content)?hash(:\d+)?\]`)
)

// NewPlan translates d. The output directory must be set.
func NewPlan(d *descriptor.Descriptor) (*Plan, error) {
	if d.Output.Path == "" {
		return nil, &descriptor.ConfigurationError{Problems: []string{"output directory is not set"}}
	}

	if err := checkOutdir(d); err != nil {
		return nil, err
	}

	p := &Plan{Clean: d.Output.Clean}
	opts := api.BuildOptions{
		Bundle:     true,
		Write:      true,
		Metafile:   true,
		Outdir:     d.Output.Path,
		EntryNames: namePattern(d.Output.Filename),
		Platform:   api.PlatformBrowser,
		LogLevel:   api.LogLevelSilent,
		Sourcemap:  sourceMap(d.Devtool),
		Loader:     map[string]api.Loader{},
	}

	for _, e := range d.Entry {
		opts.EntryPointsAdvanced = append(opts.EntryPointsAdvanced, api.EntryPoint{
			InputPath:  e.Path,
			OutputPath: e.Name,
		})
	}

	for _, r := range d.Module.Rules {
		re, err := regexp.Compile(r.Test)
		if err != nil {
			return nil, &descriptor.ConfigurationError{Problems: []string{fmt.Sprintf("rule %s.%s: %v", r.Kind, r.Name, err)}}
		}
		id := string(r.Kind) + "." + r.Name

		switch r.Kind {
		case descriptor.KindStyle:
			if pre := r.Preprocessor(); pre != "" {
				p.Skipped = append(p.Skipped, fmt.Sprintf("rule %s: no esbuild equivalent for %s", id, pre))
				continue
			}
			for _, ext := range matching(re, styleExts) {
				opts.Loader[ext] = api.LoaderCSS
			}
		case descriptor.KindAsset:
			for _, ext := range matching(re, assetExts) {
				opts.Loader[ext] = api.LoaderFile
			}
			if r.Generator != nil && opts.AssetNames == "" {
				opts.AssetNames = namePattern(r.Generator.Filename)
			}
		case descriptor.KindScript:
			for _, ext := range matching(re, sortedKeys(scriptExts)) {
				opts.Loader[ext] = scriptExts[ext]
			}
		}
	}

	if len(d.Plugins.Copy) > 0 {
		p.Skipped = append(p.Skipped, fmt.Sprintf("%d copy pattern(s)", len(d.Plugins.Copy)))
	}
	if len(d.Plugins.Pages) > 0 {
		p.Skipped = append(p.Skipped, fmt.Sprintf("%d html page(s)", len(d.Plugins.Pages)))
	}

	if d.Mode == "production" {
		opts.MinifyWhitespace = true
		opts.MinifyIdentifiers = true
		opts.MinifySyntax = true
	}

	p.Options = opts
	return p, nil
}

// checkOutdir rejects an output directory that holds any source the build
// reads, since Run empties it before building.
func checkOutdir(d *descriptor.Descriptor) error {
	outdir, err := filepath.Abs(d.Output.Path)
	if err != nil {
		return fmt.Errorf("failed to resolve output directory %s: %w", d.Output.Path, err)
	}

	sources := make([]string, 0, len(d.Entry)+len(d.Plugins.Pages)+len(d.Plugins.Copy))
	for _, e := range d.Entry {
		sources = append(sources, e.Path)
	}
	for _, pg := range d.Plugins.Pages {
		sources = append(sources, pg.Template)
	}
	for _, c := range d.Plugins.Copy {
		sources = append(sources, c.From)
	}

	var problems []string
	for _, src := range sources {
		abs, err := filepath.Abs(src)
		if err != nil {
			continue
		}
		if within(outdir, abs) {
			problems = append(problems, fmt.Sprintf("output directory %s contains source %s", outdir, abs))
		}
	}
	if len(problems) > 0 {
		return &descriptor.ConfigurationError{Problems: problems}
	}
	return nil
}

// within reports whether path is dir or lies below it.
func within(dir, path string) bool {
	rel, err := filepath.Rel(dir, path)
	if err != nil {
		return false
	}
	return rel == "." || (rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)))
}

// matching returns the extensions of exts that re accepts for a file name.
func matching(re *regexp.Regexp, exts []string) []string {
	var out []string
	for _, ext := range exts {
		if re.MatchString("file" + ext) {
			out = append(out, ext)
		}
	}
	return out
}

// namePattern converts a bundler file name template into an esbuild name
// template: hashes become [hash], and extension and query placeholders are
// dropped because esbuild appends the extension itself.
func namePattern(filename string) string {
	s := hashPlaceholder.ReplaceAllString(filename, "[hash]")
	s = strings.ReplaceAll(s, "[ext]", "")
	s = strings.ReplaceAll(s, "[query]", "")
	if ext := path.Ext(s); ext != "" && !strings.Contains(ext, "]") {
		s = strings.TrimSuffix(s, ext)
	}
	return s
}

func sourceMap(devtool string) api.SourceMap {
	switch {
	case devtool == "" || devtool == "false":
		return api.SourceMapNone
	case strings.Contains(devtool, "inline"), strings.Contains(devtool, "eval"):
		return api.SourceMapInline
	case strings.HasPrefix(devtool, "hidden"):
		return api.SourceMapExternal
	default:
		return api.SourceMapLinked
	}
}

func sortedKeys(m map[string]api.Loader) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
