package output

import (
	"encoding/json"
	"io"
)

// JSONFormatter renders indented JSON
type JSONFormatter struct {
	Indent string
}

// NewJSONFormatter creates a JSON formatter with two-space indentation
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{Indent: "  "}
}

// Format returns FormatJSON
func (f *JSONFormatter) Format() Format {
	return FormatJSON
}

// Render encodes the result
func (f *JSONFormatter) Render(w io.Writer, result *EstimationResult) error {
	return f.encode(w, result)
}

// RenderCatalog encodes the listing
func (f *JSONFormatter) RenderCatalog(w io.Writer, listing *CatalogListing) error {
	return f.encode(w, listing)
}

func (f *JSONFormatter) encode(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", f.Indent)
	return enc.Encode(v)
}
