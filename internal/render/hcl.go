package render

import (
	"fmt"
	"io"

	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/zclconf/go-cty/cty"

	"github.com/specialistvlad/pagegrid/internal/descriptor"
)

// HCL writes d as a `descriptor` block.
func HCL(w io.Writer, d *descriptor.Descriptor) error {
	f := hclwrite.NewEmptyFile()
	var labels []string
	if d.Name != "" {
		labels = []string{d.Name}
	}
	body := f.Body().AppendNewBlock("descriptor", labels).Body()

	body.SetAttributeValue("mode", cty.StringVal(d.Mode))
	if d.Devtool != "" {
		body.SetAttributeValue("devtool", cty.StringVal(d.Devtool))
	}

	for _, e := range d.Entry {
		body.AppendNewline()
		entry := body.AppendNewBlock("entry", []string{e.Name}).Body()
		entry.SetAttributeValue("path", cty.StringVal(e.Path))
	}

	body.AppendNewline()
	out := body.AppendNewBlock("output", nil).Body()
	if d.Output.Path != "" {
		out.SetAttributeValue("path", cty.StringVal(d.Output.Path))
	}
	out.SetAttributeValue("filename", cty.StringVal(d.Output.Filename))
	out.SetAttributeValue("clean", cty.BoolVal(d.Output.Clean))

	for _, r := range d.Module.Rules {
		body.AppendNewline()
		writeRule(body.AppendNewBlock("rule", []string{string(r.Kind), r.Name}).Body(), r)
	}

	for _, c := range d.Plugins.Copy {
		body.AppendNewline()
		cp := body.AppendNewBlock("copy", nil).Body()
		cp.SetAttributeValue("from", cty.StringVal(c.From))
		cp.SetAttributeValue("to", cty.StringVal(c.To))
	}

	body.AppendNewline()
	css := body.AppendNewBlock("css", nil).Body()
	css.SetAttributeValue("filename", cty.StringVal(d.Plugins.CSSExtract.Filename))
	css.SetAttributeValue("minimize", cty.BoolVal(d.Plugins.CSSMinimize))

	for _, p := range d.Plugins.Pages {
		body.AppendNewline()
		page := body.AppendNewBlock("page", []string{p.Module}).Body()
		page.SetAttributeValue("filename", cty.StringVal(p.Filename))
		page.SetAttributeValue("template", cty.StringVal(p.Template))
		page.SetAttributeValue("chunks", stringList(p.Chunks))
		page.SetAttributeValue("inject", cty.BoolVal(p.Inject))
		page.SetAttributeValue("hash", cty.BoolVal(p.Hash))
	}

	body.AppendNewline()
	dev := body.AppendNewBlock("dev_server", nil).Body()
	dev.SetAttributeValue("host", cty.StringVal(d.DevServer.Host))
	dev.SetAttributeValue("port", cty.NumberIntVal(int64(d.DevServer.Port)))
	dev.SetAttributeValue("open", cty.BoolVal(d.DevServer.Open))
	dev.SetAttributeValue("hot", cty.BoolVal(d.DevServer.Hot))

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write descriptor as HCL: %w", err)
	}
	return nil
}

func writeRule(body *hclwrite.Body, r descriptor.Rule) {
	body.SetAttributeValue("test", cty.StringVal(r.Test))
	switch r.Kind {
	case descriptor.KindStyle:
		body.SetAttributeValue("use", stringList(descriptor.Loaders(r.Use)))
		for _, s := range r.Use {
			if s.Options != nil && s.Options.PostCSS != nil {
				body.SetAttributeValue("postcss_plugins", stringList(s.Options.PostCSS.Plugins))
			}
		}
	case descriptor.KindAsset:
		body.SetAttributeValue("type", cty.StringVal(r.Type))
		if r.Generator != nil {
			body.SetAttributeValue("filename", cty.StringVal(r.Generator.Filename))
		}
	case descriptor.KindScript:
		body.SetAttributeValue("include", stringList(r.Include))
		body.SetAttributeValue("loader", cty.StringVal(r.Loader))
		if r.Options != nil {
			body.SetAttributeValue("cache_directory", cty.BoolVal(r.Options.CacheDirectory))
			body.SetAttributeValue("cache_compression", cty.BoolVal(r.Options.CacheCompression))
		}
	}
}

func stringList(ss []string) cty.Value {
	if len(ss) == 0 {
		return cty.ListValEmpty(cty.String)
	}
	vals := make([]cty.Value, len(ss))
	for i, s := range ss {
		vals[i] = cty.StringVal(s)
	}
	return cty.ListVal(vals)
}
