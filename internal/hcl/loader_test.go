package hcl

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/specialistvlad/pagegrid/internal/config"
	"github.com/specialistvlad/pagegrid/internal/ctxlog"
)

const siteHCL = `
build "site" {
  modules      = ["index", "article"]
  entry_dir    = "src/build"
  template_dir = "src/html"
  output_dir   = env("PAGEGRID_TEST_OUTPUT", "")
  mode         = "development"
  devtool      = "cheap-module-source-map"

  output {
    filename = "static/js/[name].js"
    clean    = true
  }

  rule "style" "css" {
    test = "\\.css$"
  }

  rule "style" "sass" {
    test         = "\\.s[ac]ss$"
    preprocessor = "sass-loader"
  }

  rule "asset" "images" {
    test     = "\\.(png|jpe?g|gif|webp)$"
    filename = "static/imgs/[hash:8][ext][query]"
  }

  rule "script" "js" {
    test              = "\\.js$"
    include           = ["src/js", "src/build"]
    loader            = "babel-loader"
    cache_directory   = true
    cache_compression = false
  }

  copy {
    from = "./src/libs"
    to   = "libs"
  }

  copy {
    from = "./src/images"
    to   = "images"
  }

  css {
    filename = "static/css/[name].css"
    minimize = true
  }

  dev_server {
    host = "localhost"
    port = 12016
    open = false
    hot  = true
  }
}
`

func writeConfig(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func testLoader(env map[string]string) *Loader {
	return &Loader{lookupEnv: func(name string) (string, bool) {
		v, ok := env[name]
		return v, ok
	}}
}

func TestLoad_FullBuild(t *testing.T) {
	// --- Arrange ---
	dir := t.TempDir()
	path := writeConfig(t, dir, "site.hcl", siteHCL)
	loader := testLoader(map[string]string{"PAGEGRID_TEST_OUTPUT": "/tmp/dist"})

	// --- Act ---
	m, err := loader.Load(context.Background(), path)

	// --- Assert ---
	require.NoError(t, err)
	assert.Equal(t, "site", m.Name)
	assert.Equal(t, []string{"index", "article"}, m.Modules)
	assert.Equal(t, filepath.Join(dir, "src", "build"), m.EntryDir)
	assert.Equal(t, filepath.Join(dir, "src", "html"), m.TemplateDir)
	assert.Equal(t, "/tmp/dist", m.OutputDir)
	assert.Equal(t, "development", m.Mode)

	require.NotNil(t, m.Output)
	assert.Equal(t, "static/js/[name].js", m.Output.Filename)
	require.NotNil(t, m.Output.Clean)
	assert.True(t, *m.Output.Clean)

	require.Len(t, m.Rules, 4)
	assert.Equal(t, config.RuleStyle, m.Rules[0].Kind)
	assert.Equal(t, `\.css$`, m.Rules[0].Test)
	assert.Equal(t, "sass-loader", m.Rules[1].Preprocessor)
	assert.Equal(t, config.RuleAsset, m.Rules[2].Kind)
	assert.Equal(t, "static/imgs/[hash:8][ext][query]", m.Rules[2].Filename)
	assert.Equal(t, []string{filepath.Join(dir, "src", "js"), filepath.Join(dir, "src", "build")}, m.Rules[3].Include)
	require.NotNil(t, m.Rules[3].CacheCompression)
	assert.False(t, *m.Rules[3].CacheCompression)

	require.Len(t, m.Copy, 2)
	assert.Equal(t, &config.CopyPattern{From: filepath.Join(dir, "src", "libs"), To: "libs"}, m.Copy[0])

	require.NotNil(t, m.DevServer)
	assert.Equal(t, 12016, m.DevServer.Port)
	require.NotNil(t, m.DevServer.Open)
	assert.False(t, *m.DevServer.Open)
}

func TestLoad_DirectoryWithFunctions(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "conf/site.hcl", `
build "blog" {
  modules      = concat(["index"], split(",", env("EXTRA_PAGES")))
  entry_dir    = format("%s/entries", config_dir)
  template_dir = "/abs/templates"
}
`)
	writeConfig(t, dir, "conf/README.md", "not configuration")

	m, err := testLoader(map[string]string{"EXTRA_PAGES": "about,contact"}).Load(context.Background(), dir)
	require.NoError(t, err)

	assert.Equal(t, []string{"index", "about", "contact"}, m.Modules)
	assert.Equal(t, filepath.Join(dir, "conf", "entries"), m.EntryDir)
	assert.Equal(t, "/abs/templates", m.TemplateDir)
	assert.Empty(t, m.OutputDir)
	assert.Nil(t, m.Rules)
}

func TestLoad_BlankDirectoriesStayUnset(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, "site.hcl", `
build "site" {
  modules      = ["index"]
  entry_dir    = " "
  template_dir = "  src/html "
}
`)

	m, err := testLoader(nil).Load(context.Background(), path)
	require.NoError(t, err)
	assert.Empty(t, m.EntryDir)
	assert.Equal(t, filepath.Join(dir, "src", "html"), m.TemplateDir)
}

func TestLoad_LogsDecodedFiles(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, "site.hcl", siteHCL)
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))
	ctx := ctxlog.WithLogger(context.Background(), logger)

	_, err := testLoader(nil).Load(ctx, path)
	require.NoError(t, err)
	assert.Contains(t, logs.String(), `msg="Decoded HCL file." file=`+path+" builds=1")
}

func TestLoad_EnvWithoutDefaultMustBeSet(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, "site.hcl", `
build "site" {
  modules    = ["index"]
  output_dir = env("PAGEGRID_UNSET")
}
`)

	_, err := testLoader(nil).Load(context.Background(), path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to decode HCL file")
	assert.Contains(t, err.Error(), `environment variable "PAGEGRID_UNSET" is not set`)
}

func TestLoad_Errors(t *testing.T) {
	testCases := []struct {
		name    string
		files   map[string]string
		wantErr string
	}{
		{
			name:    "syntax error",
			files:   map[string]string{"a.hcl": `build "x" {`},
			wantErr: "failed to parse HCL file",
		},
		{
			name:    "missing modules",
			files:   map[string]string{"a.hcl": `build "x" {}`},
			wantErr: "failed to decode HCL file",
		},
		{
			name:    "no build block",
			files:   map[string]string{"a.hcl": `unrelated = true`},
			wantErr: "no build block found",
		},
		{
			name: "two build blocks",
			files: map[string]string{
				"a.hcl": `build "x" { modules = ["a"] }`,
				"b.hcl": `build "y" { modules = ["b"] }`,
			},
			wantErr: "expected exactly one build block, found 2",
		},
		{
			name:    "no hcl files",
			files:   map[string]string{"a.txt": `build "x" {}`},
			wantErr: "no .hcl files found",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			dir := t.TempDir()
			for name, content := range tc.files {
				writeConfig(t, dir, name, content)
			}

			m, err := testLoader(nil).Load(context.Background(), dir)
			require.Error(t, err)
			assert.Nil(t, m)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

func TestLoad_MissingPath(t *testing.T) {
	_, err := NewLoader().Load(context.Background(), filepath.Join(t.TempDir(), "nope.hcl"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
