package hcl

import (
	"path/filepath"
	"strings"

	"github.com/specialistvlad/pagegrid/internal/config"
)

// translateBuild converts a decoded build block into the agnostic model.
// Relative directories are resolved against dir, the directory of the file
// that declared the block.
func translateBuild(b *Build, dir string) *config.Model {
	m := &config.Model{
		Name:        b.Name,
		Modules:     b.Modules,
		EntryDir:    resolve(dir, b.EntryDir),
		TemplateDir: resolve(dir, b.TemplateDir),
		OutputDir:   resolve(dir, b.OutputDir),
		ScriptExt:   b.ScriptExt,
		CommonChunk: b.CommonChunk,
		Mode:        b.Mode,
		Devtool:     b.Devtool,
	}

	if b.Output != nil {
		m.Output = &config.Output{Filename: b.Output.Filename, Clean: b.Output.Clean}
	}

	for _, r := range b.Rules {
		rule := &config.Rule{
			Kind:             r.Kind,
			Name:             r.Name,
			Test:             r.Test,
			Preprocessor:     r.Preprocessor,
			Filename:         r.Filename,
			Loader:           r.Loader,
			CacheDirectory:   r.CacheDirectory,
			CacheCompression: r.CacheCompression,
		}
		for _, inc := range r.Include {
			rule.Include = append(rule.Include, resolve(dir, inc))
		}
		m.Rules = append(m.Rules, rule)
	}

	for _, c := range b.Copy {
		m.Copy = append(m.Copy, &config.CopyPattern{From: resolve(dir, c.From), To: c.To})
	}

	if b.CSS != nil {
		m.CSS = &config.CSS{
			Filename:       b.CSS.Filename,
			Minimize:       b.CSS.Minimize,
			PostCSSPlugins: b.CSS.PostCSSPlugins,
		}
	}

	if b.DevServer != nil {
		m.DevServer = &config.DevServer{
			Host: b.DevServer.Host,
			Port: b.DevServer.Port,
			Open: b.DevServer.Open,
			Hot:  b.DevServer.Hot,
		}
	}

	return m
}

// resolve makes p absolute relative to dir. Blank stays empty so that the
// descriptor builder can report it as unset.
func resolve(dir, p string) string {
	p = strings.TrimSpace(p)
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(dir, p)
}
