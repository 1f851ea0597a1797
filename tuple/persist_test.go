package tuple

import (
	"bytes"
	"encoding/binary"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWriteTables(t *testing.T) {
	tables := []Table{{1, 2, 3}, {-0.5}}
	var buf bytes.Buffer

	require.NoError(t, WriteTables(&buf, tables))

	raw := buf.Bytes()
	require.Equal(t, uint32(2), binary.LittleEndian.Uint32(raw[0:4]), "Should lead with the table count")
	require.Equal(t, uint64(3), binary.LittleEndian.Uint64(raw[4:12]), "Each table should lead with its size")
	require.Len(t, raw, 4+8+3*4+8+4)

	got, err := ReadTables(&buf)
	require.NoError(t, err)
	require.Equal(t, tables, got)
}

func TestReadTables(t *testing.T) {
	t.Run("rejecting a truncated file", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, WriteTables(&buf, []Table{{1, 2, 3}}))
		truncated := bytes.NewReader(buf.Bytes()[:buf.Len()-2])

		_, err := ReadTables(truncated)

		require.ErrorIs(t, err, ErrCorruptWeights)
	})

	t.Run("rejecting an oversized table count", func(t *testing.T) {
		header := binary.LittleEndian.AppendUint32(nil, 0xFFFFFFFF)

		_, err := ReadTables(bytes.NewReader(header))

		require.ErrorIs(t, err, ErrCorruptWeights)
	})

	t.Run("rejecting an empty file", func(t *testing.T) {
		_, err := ReadTables(bytes.NewReader(nil))
		require.ErrorIs(t, err, ErrCorruptWeights)
	})
}

func TestWeightFiles(t *testing.T) {
	t.Run("saving and loading", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "weights.bin")
		tables := NewTables([]int{256, 16})
		tables[0][17] = 3.25
		tables[1][15] = -1

		require.NoError(t, SaveFile(path, tables))
		got, err := LoadFile(path)

		require.NoError(t, err)
		require.Equal(t, tables, got)
	})

	t.Run("failing on a missing file", func(t *testing.T) {
		_, err := LoadFile(filepath.Join(t.TempDir(), "missing.bin"))
		require.Error(t, err)
	})
}
