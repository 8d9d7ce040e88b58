package descriptor

import (
	"fmt"
	"regexp"

	"github.com/specialistvlad/pagegrid/internal/config"
)

// Assemble builds the complete descriptor for model. Every problem found is
// reported in a single ConfigurationError and no descriptor is returned.
func Assemble(model *config.Model) (*Descriptor, error) {
	if model == nil {
		return nil, &ConfigurationError{Problems: []string{"no build configuration"}}
	}

	var (
		p       problems
		entries EntryMap
		pages   []Page
	)
	b, err := NewBuilder(Layout{
		EntryDir:    model.EntryDir,
		TemplateDir: model.TemplateDir,
		ScriptExt:   model.ScriptExt,
		CommonChunk: model.CommonChunk,
	})
	if err == nil {
		entries, pages, err = b.BuildAll(model.Modules)
	} else {
		p.merge(err)
		err = validateModules(model.Modules, stringOr(model.CommonChunk, CommonChunk))
	}
	p.merge(err)

	mode := stringOr(model.Mode, DefaultMode)
	if !validModes[mode] {
		p.addf("mode %q is not one of development, production, none", mode)
	}

	css := model.CSS
	if css == nil {
		css = &config.CSS{}
	}
	plugins := css.PostCSSPlugins
	if plugins == nil {
		plugins = DefaultPostCSSPlugins
	}

	modelRules := model.Rules
	if len(modelRules) == 0 {
		modelRules = DefaultRules(model.EntryDir)
	}
	rules := make([]Rule, 0, len(modelRules))
	names := make(map[string]bool, len(modelRules))
	for _, r := range modelRules {
		id := r.Kind + "." + r.Name
		if names[id] {
			p.addf("rule %s is declared twice", id)
		}
		names[id] = true

		rule, err := buildRule(r, plugins)
		if err != nil {
			p.addf("rule %s: %v", id, err)
			continue
		}
		rules = append(rules, rule)
	}

	out := Output{Filename: DefaultOutputFilename, Clean: true, Path: model.OutputDir}
	if model.Output != nil {
		out.Filename = stringOr(model.Output.Filename, DefaultOutputFilename)
		out.Clean = boolOr(model.Output.Clean, true)
	}

	copies := make([]CopyPattern, 0, len(model.Copy))
	for i, c := range model.Copy {
		if c.From == "" || c.To == "" {
			p.addf("copy #%d needs both from and to", i+1)
			continue
		}
		copies = append(copies, CopyPattern{From: c.From, To: c.To})
	}

	dev := DevServer{Host: DefaultDevServerHost, Port: DefaultDevServerPort, Hot: true}
	if ds := model.DevServer; ds != nil {
		dev.Host = stringOr(ds.Host, DefaultDevServerHost)
		if ds.Port != 0 {
			dev.Port = ds.Port
		}
		dev.Open = boolOr(ds.Open, false)
		dev.Hot = boolOr(ds.Hot, true)
	}
	if dev.Port < 1 || dev.Port > 65535 {
		p.addf("dev server port %d is out of range", dev.Port)
	}

	if err := p.err(); err != nil {
		return nil, err
	}

	return &Descriptor{
		Name:    model.Name,
		Mode:    mode,
		Devtool: stringOr(model.Devtool, DefaultDevtool),
		Entry:   entries,
		Output:  out,
		Module:  Module{Rules: rules},
		Plugins: Plugins{
			Copy:        copies,
			CSSExtract:  CSSExtract{Filename: stringOr(css.Filename, DefaultCSSFilename)},
			CSSMinimize: boolOr(css.Minimize, true),
			Pages:       pages,
		},
		DevServer: dev,
	}, nil
}

func buildRule(r *config.Rule, postcssPlugins []string) (Rule, error) {
	if r.Test == "" {
		return Rule{}, fmt.Errorf("test pattern is empty")
	}
	if _, err := regexp.Compile(r.Test); err != nil {
		return Rule{}, fmt.Errorf("test pattern %q does not compile: %w", r.Test, err)
	}

	rule := Rule{Name: r.Name, Kind: RuleKind(r.Kind), Test: r.Test}
	switch rule.Kind {
	case KindStyle:
		rule.Use = styleStages(r.Preprocessor, postcssPlugins)
	case KindAsset:
		rule.Type = "asset"
		rule.Generator = &Generator{Filename: stringOr(r.Filename, DefaultAssetFilename)}
	case KindScript:
		rule.Include = append([]string(nil), r.Include...)
		rule.Loader = stringOr(r.Loader, DefaultScriptLoader)
		rule.Options = &ScriptOptions{
			CacheDirectory:   boolOr(r.CacheDirectory, true),
			CacheCompression: boolOr(r.CacheCompression, false),
		}
	default:
		return Rule{}, fmt.Errorf("unknown kind %q, want style, asset or script", r.Kind)
	}
	return rule, nil
}
