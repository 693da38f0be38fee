// Package presentation renders registry data for the CLI.
package presentation

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/born-ml/opref/internal/config"
)

// Formatter handles output formatting
type Formatter struct {
	writer io.Writer
	format string
}

// NewFormatter creates a new formatter for one of the config.Format* values.
func NewFormatter(writer io.Writer, format string) *Formatter {
	return &Formatter{
		writer: writer,
		format: format,
	}
}

// FormatKeys writes the keys one per line in text mode.
func (f *Formatter) FormatKeys(keys []KeyDTO) error {
	if f.format != config.FormatText {
		return f.encode(keys)
	}
	for _, k := range keys {
		if _, err := fmt.Fprintln(f.writer, k.Key); err != nil {
			return err
		}
	}
	return nil
}

// FormatMembership writes "KEY<TAB>true|false" lines in text mode.
func (f *Formatter) FormatMembership(results []MembershipDTO) error {
	if f.format != config.FormatText {
		return f.encode(results)
	}
	for _, r := range results {
		if _, err := fmt.Fprintf(f.writer, "%s\t%t\n", r.Key, r.Verified); err != nil {
			return err
		}
	}
	return nil
}

// FormatAudit writes a registry audit.
func (f *Formatter) FormatAudit(audit AuditDTO) error {
	if f.format != config.FormatText {
		return f.encode(audit)
	}
	var b strings.Builder
	fmt.Fprintf(&b, "source:  %s\n", audit.Source)
	fmt.Fprintf(&b, "keys:    %d\n", audit.Keys)
	fmt.Fprintf(&b, "digest:  %s\n", audit.Digest)
	fmt.Fprintf(&b, "repairs: %d\n", len(audit.Repairs))
	for _, r := range audit.Repairs {
		fmt.Fprintf(&b, "  %-9s entry %d: %q -> %s\n", r.Kind, r.Index, r.Entry, strings.Join(r.Keys, ", "))
	}
	_, err := io.WriteString(f.writer, b.String())
	return err
}

func (f *Formatter) encode(v any) error {
	switch f.format {
	case config.FormatYAML:
		enc := yaml.NewEncoder(f.writer)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		encoder := json.NewEncoder(f.writer)
		encoder.SetIndent("", "  ")
		return encoder.Encode(v)
	}
}
