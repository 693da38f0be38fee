package opref

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// Limits for reading registry files.
const (
	MaxLineLength = 4096    // Maximum length of one line in bytes
	MaxEntries    = 100_000 // Maximum number of entries in a file
)

// WriteTo writes one identifier per line, '\n' terminated, with no header or
// trailer. It implements io.WriterTo.
func (r *Registry) WriteTo(w io.Writer) (int64, error) {
	bw := bufio.NewWriter(w)
	var n int64
	for key := range r.All() {
		m, err := bw.WriteString(key + "\n")
		n += int64(m)
		if err != nil {
			return n, fmt.Errorf("failed to write %q: %w", key, err)
		}
	}
	if err := bw.Flush(); err != nil {
		return n, fmt.Errorf("failed to flush: %w", err)
	}
	return n, nil
}

// Read parses a registry written by [Registry.WriteTo].
//
// Blank lines and lines starting with '#' are skipped. Every other line is
// one raw entry and goes through the same normalization as [New]; a malformed
// line fails the read and the error carries its line number.
func Read(r io.Reader) (*Registry, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 256), MaxLineLength)

	var entries []string
	lines := make([]int, 0, 128) // line number of each entry
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if len(entries) == MaxEntries {
			return nil, &ValidationError{
				Type:    "too_many_entries",
				Line:    lineNo,
				Details: fmt.Sprintf("max %d", MaxEntries),
				Err:     ErrTooManyEntries,
			}
		}
		entries = append(entries, line)
		lines = append(lines, lineNo)
	}
	if err := sc.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			return nil, &ValidationError{
				Type:    "line_too_long",
				Line:    lineNo + 1,
				Details: fmt.Sprintf("max %d bytes", MaxLineLength),
				Err:     ErrLineTooLong,
			}
		}
		return nil, fmt.Errorf("failed to read registry: %w", err)
	}

	keys, report, err := Normalize(entries)
	if err != nil {
		return nil, attachLine(err, entries, lines)
	}
	return fromKeys(keys, report), nil
}

// attachLine maps a Normalize error back to the offending file line.
func attachLine(err error, entries []string, lines []int) error {
	var verr *ValidationError
	if !errors.As(err, &verr) || verr.Entry == "" {
		return err
	}
	// Exact match first; a key split out of a run only appears as a substring.
	for _, match := range []func(string) bool{
		func(e string) bool { return e == verr.Entry },
		func(e string) bool { return strings.Contains(e, verr.Entry) },
	} {
		for i, e := range entries {
			if match(e) {
				verr.Line = lines[i]
				return err
			}
		}
	}
	return err
}

// LoadFile reads a registry from a file.
func LoadFile(path string) (*Registry, error) {
	//nolint:gosec // G304: path comes from the caller, reading it is the point
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open registry: %w", err)
	}
	defer func() { _ = f.Close() }()

	r, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return r, nil
}

// SaveFile writes the registry to path, replacing any existing file.
func (r *Registry) SaveFile(path string) error {
	//nolint:gosec // G304: path comes from the caller
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	if _, err := r.WriteTo(f); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close file: %w", err)
	}
	return nil
}
