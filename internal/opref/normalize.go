package opref

import (
	"fmt"
	"strings"
)

// RepairKind classifies a correction applied while normalizing raw entries.
type RepairKind int

const (
	// RepairSplit means an entry held several keys with no separator and was split.
	RepairSplit RepairKind = iota
	// RepairDuplicate means a key appeared more than once and was collapsed.
	RepairDuplicate
)

// String returns the kind name.
func (k RepairKind) String() string {
	switch k {
	case RepairSplit:
		return "split"
	case RepairDuplicate:
		return "duplicate"
	default:
		return fmt.Sprintf("RepairKind(%d)", int(k))
	}
}

// Repair records one correction made to the raw entry list.
type Repair struct {
	Kind  RepairKind
	Index int      // Position of the raw entry
	Entry string   // Raw entry as given
	Keys  []string // Resulting keys (split) or the collapsed key (duplicate)
}

// String describes the repair.
func (r Repair) String() string {
	switch r.Kind {
	case RepairSplit:
		return fmt.Sprintf("entry %d: split %q into %s", r.Index, r.Entry, strings.Join(r.Keys, ", "))
	default:
		return fmt.Sprintf("entry %d: dropped duplicate %q", r.Index, r.Entry)
	}
}

// Report lists the repairs applied while building a registry.
type Report struct {
	Repairs []Repair
}

// Clean reports whether the raw entries needed no correction.
func (r Report) Clean() bool {
	return len(r.Repairs) == 0
}

// Count returns the number of repairs of the given kind.
func (r Report) Count(kind RepairKind) int {
	n := 0
	for _, rep := range r.Repairs {
		if rep.Kind == kind {
			n++
		}
	}
	return n
}

// Normalize turns raw entries into a deduplicated key list.
//
// Entries are trimmed. An entry made of several keys written back to back is
// split; repeated keys are dropped. Keys keep first-occurrence order. Any
// entry that is empty or is not a run of keys fails the whole call.
func Normalize(entries []string) ([]Key, Report, error) {
	var report Report
	keys := make([]Key, 0, len(entries))
	seen := make(map[Key]struct{}, len(entries))

	add := func(i int, k Key) {
		if _, dup := seen[k]; dup {
			report.Repairs = append(report.Repairs, Repair{
				Kind:  RepairDuplicate,
				Index: i,
				Entry: k.String(),
				Keys:  []string{k.String()},
			})
			return
		}
		seen[k] = struct{}{}
		keys = append(keys, k)
	}

	for i, raw := range entries {
		s := strings.TrimSpace(raw)
		if s == "" {
			return nil, Report{}, &ValidationError{
				Type:    "empty_entry",
				Details: fmt.Sprintf("entry %d is empty", i),
				Err:     ErrEmptyEntry,
			}
		}

		if k, err := ParseKey(s); err == nil {
			add(i, k)
			continue
		}

		parts := splitRun(s)
		if len(parts) < 2 {
			return nil, Report{}, malformed(s, fmt.Sprintf("entry %d: want Name-IntegerVersion", i))
		}
		report.Repairs = append(report.Repairs, Repair{
			Kind:  RepairSplit,
			Index: i,
			Entry: s,
			Keys:  parts,
		})
		for _, p := range parts {
			k, err := ParseKey(p)
			if err != nil {
				return nil, Report{}, fmt.Errorf("entry %d: %w", i, err)
			}
			add(i, k)
		}
	}

	return keys, report, nil
}
