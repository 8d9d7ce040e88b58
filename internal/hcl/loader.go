package hcl

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/specialistvlad/pagegrid/internal/config"
	"github.com/specialistvlad/pagegrid/internal/ctxlog"
	"github.com/specialistvlad/pagegrid/internal/fsutil"
)

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct {
	lookupEnv func(string) (string, bool)
}

// NewLoader creates a new HCL configuration loader reading env() values
// from the process environment.
func NewLoader() *Loader {
	return &Loader{lookupEnv: os.LookupEnv}
}

// Extension implements config.Loader.
func (l *Loader) Extension() string {
	return ".hcl"
}

// decodedBuild is a build block together with the directory of its file.
type decodedBuild struct {
	build *Build
	dir   string
}

// Load parses every .hcl file found under paths and translates the single
// `build` block they declare into the agnostic model.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path_count", len(paths))

	files, err := fsutil.FindFilesByExtension(paths, l.Extension())
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no %s files found in %v", l.Extension(), paths)
	}
	logger.Debug("Discovered HCL files.", "count", len(files))

	parser := hclparse.NewParser()
	var builds []decodedBuild

	for _, file := range files {
		fileLogger := ctxlog.FromContext(ctxlog.With(ctx, "file", file))
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse HCL file %s: %w", file, diags)
		}

		dir, err := filepath.Abs(filepath.Dir(file))
		if err != nil {
			return nil, fmt.Errorf("failed to resolve directory of %s: %w", file, err)
		}

		var root fileRoot
		diags = gohcl.DecodeBody(hclFile.Body, newEvalContext(dir, l.lookupEnv), &root)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode HCL file %s: %w", file, diags)
		}
		for _, b := range root.Builds {
			builds = append(builds, decodedBuild{build: b, dir: dir})
		}
		fileLogger.Debug("Decoded HCL file.", "builds", len(root.Builds))
	}

	switch len(builds) {
	case 0:
		return nil, fmt.Errorf("no build block found in %v", files)
	case 1:
	default:
		return nil, fmt.Errorf("expected exactly one build block, found %d (first at %s, second at %s)",
			len(builds), rangeString(builds[0].build.DeclRange), rangeString(builds[1].build.DeclRange))
	}

	model := translateBuild(builds[0].build, builds[0].dir)
	logger.Debug("HCL loading complete.", "build", model.Name, "modules", len(model.Modules), "rules", len(model.Rules))
	return model, nil
}

func rangeString(r hcl.Range) string {
	return fmt.Sprintf("%s:%d", r.Filename, r.Start.Line)
}
