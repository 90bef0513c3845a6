package dataset_test

import (
	"bytes"
	"encoding/binary"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mzanella-labs/silva/internal/dataset"
)

func TestLoadCSV(t *testing.T) {
	src := "# 0 2 2\n" +
		"a,0.1,0.2\n" +
		"b,1.1,1.2\n"

	ds, err := dataset.Load(strings.NewReader(src))
	require.NoError(t, err)
	assert.Equal(t, 2, ds.Size())
	assert.Equal(t, []string{"a", "b"}, ds.Labels)
	assert.Equal(t, []float64{0.1, 0.2}, ds.Rows[0])
	assert.Equal(t, []float64{1.1, 1.2}, ds.Rows[1])
}

func TestLoadCSVRejectsTruncatedRow(t *testing.T) {
	src := "# 0 1 3\n" +
		"a,0.1,0.2\n"

	_, err := dataset.Load(strings.NewReader(src))
	require.ErrorIs(t, err, dataset.ErrInvalidDataset)
}

func TestLoadCSVRejectsOversizedLabel(t *testing.T) {
	longLabel := strings.Repeat("x", 33)
	src := "# 0 1 1\n" + longLabel + ",0.1\n"

	_, err := dataset.Load(strings.NewReader(src))
	require.ErrorIs(t, err, dataset.ErrInvalidDataset)
}

func TestLoadBinary(t *testing.T) {
	var buf bytes.Buffer
	buf.WriteString("# 1 1 2\n")

	label := make([]byte, 32)
	copy(label, "a")
	buf.Write(label)
	for _, v := range []float64{0.5, -0.5} {
		_ = binary.Write(&buf, binary.LittleEndian, math.Float64bits(v))
	}

	ds, err := dataset.Load(&buf)
	require.NoError(t, err)
	assert.Equal(t, 1, ds.Size())
	assert.Equal(t, "a", ds.Labels[0])
	assert.Equal(t, []float64{0.5, -0.5}, ds.Rows[0])
}

func TestLoadRejectsMalformedHeader(t *testing.T) {
	_, err := dataset.Load(strings.NewReader("not a header\n"))
	require.ErrorIs(t, err, dataset.ErrInvalidDataset)
}
