package opref

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteTo_Format(t *testing.T) {
	r := MustNew([]string{"Softmax-1", "Abs-1", "Abs-1"})

	var buf bytes.Buffer
	n, err := r.WriteTo(&buf)
	require.NoError(t, err)

	assert.Equal(t, int64(buf.Len()), n)
	assert.Equal(t, "Abs-1\nSoftmax-1\n", buf.String())
}

func TestWriteTo_Empty(t *testing.T) {
	r := MustNew(nil)

	var buf bytes.Buffer
	n, err := r.WriteTo(&buf)
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.Empty(t, buf.String())
}

func TestRead_RoundTrip(t *testing.T) {
	var buf bytes.Buffer
	_, err := Verified().WriteTo(&buf)
	require.NoError(t, err)

	r, err := Read(&buf)
	require.NoError(t, err)

	assert.Equal(t, slices.Collect(Verified().All()), slices.Collect(r.All()))
	assert.True(t, r.Report().Clean())
}

func TestRead_CommentsAndBlankLines(t *testing.T) {
	input := "# verified references\n\nRelu-1\r\n  Sigmoid-1  \n# trailing\n"

	r, err := Read(strings.NewReader(input))
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{"Relu-1", "Sigmoid-1"}, slices.Collect(r.All()))
}

func TestRead_RepairsConcatenation(t *testing.T) {
	r, err := Read(strings.NewReader("FloorMod-1GRUSequence-5\nGRUSequence-5\n"))
	require.NoError(t, err)

	assert.Equal(t, 2, r.Len())
	assert.Equal(t, 1, r.Report().Count(RepairSplit))
	assert.Equal(t, 1, r.Report().Count(RepairDuplicate))
}

func TestRead_MalformedLine(t *testing.T) {
	input := "Relu-1\n# comment\n\nRelu\n"

	_, err := Read(strings.NewReader(input))
	require.Error(t, err)

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, 4, verr.Line)
	assert.ErrorIs(t, err, ErrMalformedKey)
	assert.Contains(t, err.Error(), "line 4")
}

func TestRead_LineTooLong(t *testing.T) {
	input := "Relu-1\n" + strings.Repeat("A", MaxLineLength+10) + "-1\n"

	_, err := Read(strings.NewReader(input))
	require.ErrorIs(t, err, ErrLineTooLong)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, 2, verr.Line)
}

func TestRead_TooManyEntries(t *testing.T) {
	var sb strings.Builder
	for i := range MaxEntries + 1 {
		sb.WriteString("Op-" + strconv.Itoa(i+1) + "\n")
	}

	_, err := Read(strings.NewReader(sb.String()))
	require.ErrorIs(t, err, ErrTooManyEntries)
}

func TestSaveLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "verified.txt")

	require.NoError(t, Verified().SaveFile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(string(data), "\n"))

	r, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, Verified().Digest(), r.Digest())
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.txt"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestLoadFile_MalformedNamesPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.txt")
	require.NoError(t, os.WriteFile(path, []byte("Relu-1\nRelu-01\n"), 0o600))

	_, err := LoadFile(path)
	require.ErrorIs(t, err, ErrMalformedKey)
	assert.Contains(t, err.Error(), path)
	assert.Contains(t, err.Error(), "line 2")
}
