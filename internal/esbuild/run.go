package esbuild

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/evanw/esbuild/pkg/api"

	"github.com/specialistvlad/pagegrid/internal/ctxlog"
)

// Result summarizes a finished build.
type Result struct {
	// Outputs lists the written files, as reported by the esbuild metafile.
	Outputs  []string
	Warnings []string
}

// metafile is the subset of esbuild's metafile JSON read back after a build.
type metafile struct {
	Outputs map[string]struct {
		Bytes      int    `json:"bytes"`
		EntryPoint string `json:"entryPoint,omitempty"`
	} `json:"outputs"`
}

// Run executes the plan. Cancelling ctx cancels the running build.
func (p *Plan) Run(ctx context.Context) (*Result, error) {
	logger := ctxlog.FromContext(ctx)

	for _, s := range p.Skipped {
		logger.Warn("Descriptor feature not handled by esbuild.", "feature", s)
	}

	if p.Clean {
		if err := cleanDir(p.Options.Outdir); err != nil {
			return nil, err
		}
		logger.Debug("Output directory cleaned.", "dir", p.Options.Outdir)
	}

	bctx, ctxErr := api.Context(p.Options)
	if ctxErr != nil {
		return nil, fmt.Errorf("failed to prepare esbuild: %s", formatMessages(ctxErr.Errors, api.ErrorMessage))
	}
	defer bctx.Dispose()

	stop := context.AfterFunc(ctx, bctx.Cancel)
	defer stop()

	logger.Info("Running esbuild.", "entries", len(p.Options.EntryPointsAdvanced), "outdir", p.Options.Outdir)
	res := bctx.Rebuild()
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(res.Errors) > 0 {
		return nil, fmt.Errorf("esbuild failed with %d error(s):\n%s", len(res.Errors), formatMessages(res.Errors, api.ErrorMessage))
	}

	result := &Result{}
	for _, w := range res.Warnings {
		result.Warnings = append(result.Warnings, w.Text)
	}

	var meta metafile
	if err := json.Unmarshal([]byte(res.Metafile), &meta); err != nil {
		return nil, fmt.Errorf("failed to read esbuild metafile: %w", err)
	}
	for out := range meta.Outputs {
		result.Outputs = append(result.Outputs, out)
	}
	sort.Strings(result.Outputs)

	logger.Info("esbuild finished.", "outputs", len(result.Outputs), "warnings", len(result.Warnings))
	return result, nil
}

func cleanDir(dir string) error {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return fmt.Errorf("failed to resolve output directory %s: %w", dir, err)
	}
	if abs == filepath.Dir(abs) {
		return fmt.Errorf("refusing to clean filesystem root %s", abs)
	}
	if err := os.RemoveAll(abs); err != nil {
		return fmt.Errorf("failed to clean output directory %s: %w", abs, err)
	}
	return nil
}

func formatMessages(msgs []api.Message, kind api.MessageKind) string {
	return strings.TrimSpace(strings.Join(api.FormatMessages(msgs, api.FormatMessagesOptions{Kind: kind}), ""))
}
