// Package render encodes a build descriptor for the bundler: as JSON with the
// bundler's own field names, or as HCL for review and diffing.
package render

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/specialistvlad/pagegrid/internal/descriptor"
)

// Formats supported by Write.
const (
	FormatJSON = "json"
	FormatHCL  = "hcl"
)

// Write encodes d to w in format.
func Write(w io.Writer, format string, d *descriptor.Descriptor) error {
	switch format {
	case FormatJSON:
		return JSON(w, d)
	case FormatHCL:
		return HCL(w, d)
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

// JSON writes d as indented JSON followed by a newline.
func JSON(w io.Writer, d *descriptor.Descriptor) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(d); err != nil {
		return fmt.Errorf("failed to encode descriptor as JSON: %w", err)
	}
	return nil
}
