package opref

import (
	"slices"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestNewRegistry(t *testing.T) {
	r, err := New([]string{"Relu-1", "Softmax-1", "TopK-1", "TopK-3"})
	require.NoError(t, err)

	for _, key := range []string{"Relu-1", "Softmax-1", "TopK-1", "TopK-3"} {
		assert.True(t, r.Contains(key), "expected %s to be registered", key)
	}
	assert.Equal(t, 4, r.Len())
	assert.True(t, r.Report().Clean())
}

func TestRegistryContainsUnknown(t *testing.T) {
	r := MustNew([]string{"Relu-1"})

	assert.False(t, r.Contains("Relu-2"), "wrong version")
	assert.False(t, r.Contains("relu-1"), "case-sensitive")
	assert.False(t, r.Contains(" Relu-1"), "no trimming")
	assert.False(t, r.Contains(""))
	assert.False(t, r.Contains("UnknownOp-1"))
}

func TestRegistryContainsKey(t *testing.T) {
	r := MustNew([]string{"Proposal-4"})

	assert.True(t, r.ContainsKey(Key{Name: "Proposal", Version: 4}))
	assert.False(t, r.ContainsKey(Key{Name: "Proposal", Version: 1}))
}

func TestNewRegistry_Malformed(t *testing.T) {
	r, err := New([]string{"Relu-1", "Softmax"})
	require.ErrorIs(t, err, ErrMalformedKey)
	assert.Nil(t, r)

	assert.Panics(t, func() { MustNew([]string{"Softmax"}) })
}

func TestRegistryAll_Restartable(t *testing.T) {
	r := MustNew([]string{"TopK-3", "Abs-1", "TopK-1", "Abs-1"})

	first := slices.Collect(r.All())
	second := slices.Collect(r.All())

	assert.Equal(t, first, second)
	assert.ElementsMatch(t, []string{"Abs-1", "TopK-1", "TopK-3"}, first)
}

func TestRegistryAll_EarlyBreak(t *testing.T) {
	r := MustNew([]string{"A-1", "B-1", "C-1"})

	n := 0
	for range r.All() {
		n++
		if n == 2 {
			break
		}
	}
	assert.Equal(t, 2, n)
}

func TestRegistryKeys(t *testing.T) {
	r := MustNew([]string{"Range-4", "Range-1"})

	keys := slices.Collect(r.Keys())
	assert.ElementsMatch(t, []Key{{Name: "Range", Version: 1}, {Name: "Range", Version: 4}}, keys)
}

func TestRegistryReport_Isolated(t *testing.T) {
	r := MustNew([]string{"A-1", "A-1"})

	rep := r.Report()
	require.Len(t, rep.Repairs, 1)
	rep.Repairs[0].Entry = "changed"

	assert.Equal(t, "A-1", r.Report().Repairs[0].Entry)
}

func TestRegistry_ConcurrentReads(t *testing.T) {
	r := Verified()

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for key := range r.All() {
				if !r.Contains(key) {
					t.Errorf("Contains(%q) = false for enumerated key", key)
				}
			}
		}()
	}
	wg.Wait()
}

// TestRegistry_Membership is a property-based test: inserted keys are
// members, and an arbitrary string is a member only if it was inserted.
func TestRegistry_Membership(t *testing.T) {
	keyGen := rapid.StringMatching(`[A-Za-z][A-Za-z0-9]{0,10}-[1-9][0-9]{0,2}`)

	rapid.Check(t, func(rt *rapid.T) {
		entries := rapid.SliceOfN(keyGen, 0, 40).Draw(rt, "entries")
		r, err := New(entries)
		if err != nil {
			rt.Fatalf("New(%v) failed: %v", entries, err)
		}

		for _, e := range entries {
			if !r.Contains(e) {
				rt.Fatalf("Contains(%q) = false after insert", e)
			}
		}

		probe := rapid.OneOf(keyGen, rapid.String()).Draw(rt, "probe")
		if got, want := r.Contains(probe), slices.Contains(entries, probe); got != want {
			rt.Fatalf("Contains(%q) = %v, want %v", probe, got, want)
		}

		all := slices.Collect(r.All())
		seen := make(map[string]bool, len(all))
		for _, k := range all {
			if seen[k] {
				rt.Fatalf("All() yielded %q twice", k)
			}
			seen[k] = true
			if !keyRe.MatchString(k) {
				rt.Fatalf("All() yielded malformed %q", k)
			}
		}
		if len(all) != r.Len() {
			rt.Fatalf("len(All()) = %d, Len() = %d", len(all), r.Len())
		}
	})
}
