package tuple

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
)

var ErrCorruptWeights = errors.New("corrupt weight file")

// maxTableSize bounds a single table record read from disk.
const maxTableSize = 1 << 30

// maxTables bounds the table count read from disk.
const maxTables = 1 << 16

// WriteTables encodes tables as a uint32 table count followed by one record
// per table: a uint64 entry count and that many float32 values, all
// little-endian.
func WriteTables(w io.Writer, tables []Table) error {
	if err := binary.Write(w, binary.LittleEndian, uint32(len(tables))); err != nil {
		return fmt.Errorf("failed to write table count: %w", err)
	}
	for i, table := range tables {
		if err := binary.Write(w, binary.LittleEndian, uint64(len(table))); err != nil {
			return fmt.Errorf("failed to write size of table %d: %w", i, err)
		}
		if err := binary.Write(w, binary.LittleEndian, []float32(table)); err != nil {
			return fmt.Errorf("failed to write table %d: %w", i, err)
		}
	}
	return nil
}

// ReadTables decodes the format written by WriteTables.
func ReadTables(r io.Reader) ([]Table, error) {
	var count uint32
	if err := binary.Read(r, binary.LittleEndian, &count); err != nil {
		return nil, fmt.Errorf("%w: table count: %v", ErrCorruptWeights, err)
	}

	if count > maxTables {
		return nil, fmt.Errorf("%w: file claims %d tables", ErrCorruptWeights, count)
	}

	var tables []Table
	for i := 0; i < int(count); i++ {
		var size uint64
		if err := binary.Read(r, binary.LittleEndian, &size); err != nil {
			return nil, fmt.Errorf("%w: size of table %d: %v", ErrCorruptWeights, i, err)
		}
		if size > maxTableSize {
			return nil, fmt.Errorf("%w: table %d claims %d entries", ErrCorruptWeights, i, size)
		}
		table := make(Table, size)
		if err := binary.Read(r, binary.LittleEndian, []float32(table)); err != nil {
			return nil, fmt.Errorf("%w: table %d: %v", ErrCorruptWeights, i, err)
		}
		tables = append(tables, table)
	}
	return tables, nil
}

func LoadFile(path string) ([]Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open weights: %w", err)
	}
	defer f.Close()

	return ReadTables(bufio.NewReader(f))
}

func SaveFile(path string, tables []Table) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create weights: %w", err)
	}

	w := bufio.NewWriter(f)
	if err := WriteTables(w, tables); err != nil {
		f.Close()
		return err
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("failed to flush weights: %w", err)
	}
	return f.Close()
}
