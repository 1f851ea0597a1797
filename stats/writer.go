package stats

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/parquet-go/parquet-go"
	"github.com/parquet-go/parquet-go/compress/zstd"
)

const (
	FormatCSV     = "csv"
	FormatParquet = "parquet"
)

type Writer interface {
	WriteGameRecords(records []GameRecord) error
	WriteMoveRecords(records []MoveRecord) error
	Dir() string
}

// NewWriter creates dir/run and returns a writer for format.
func NewWriter(dir, run, format string) (Writer, error) {
	baseDir := filepath.Join(dir, run)
	switch format {
	case FormatCSV, FormatParquet:
	default:
		return nil, fmt.Errorf("unknown output format %q", format)
	}
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}
	if format == FormatParquet {
		return &ParquetWriter{baseDir: baseDir}, nil
	}
	return &CSVWriter{baseDir: baseDir}, nil
}

type CSVWriter struct {
	baseDir string
}

func (w *CSVWriter) Dir() string {
	return w.baseDir
}

func (w *CSVWriter) WriteGameRecords(records []GameRecord) error {
	header := []string{"run", "episode", "game", "start_time", "end_time", "duration", "steps", "score", "max_tile", "winner", "loser"}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			record.Run,
			strconv.Itoa(record.Episode),
			record.Game,
			record.StartTime.Format(time.RFC3339Nano),
			record.EndTime.Format(time.RFC3339Nano),
			record.Duration.String(),
			strconv.Itoa(record.Steps),
			strconv.Itoa(record.Score),
			strconv.Itoa(record.MaxTile),
			record.Winner,
			record.Loser,
		})
	}
	return w.write("game_records.csv", header, rows)
}

func (w *CSVWriter) WriteMoveRecords(records []MoveRecord) error {
	header := []string{"run", "episode", "step", "player", "duration", "iterations", "full_playouts", "tree_size"}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			record.Run,
			strconv.Itoa(record.Episode),
			strconv.Itoa(record.Step),
			record.Player,
			record.Duration.String(),
			strconv.Itoa(record.Iterations),
			strconv.Itoa(record.FullPlayouts),
			strconv.Itoa(record.TreeSize),
		})
	}
	return w.write("move_records.csv", header, rows)
}

func (w *CSVWriter) write(name string, header []string, rows [][]string) error {
	path := filepath.Join(w.baseDir, name)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", name, err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write %s header: %w", name, err)
	}
	if err := writer.WriteAll(rows); err != nil {
		return fmt.Errorf("failed to write %s rows: %w", name, err)
	}
	return nil
}

// GameRow is the parquet layout of a GameRecord.
type GameRow struct {
	Run        string `parquet:"run,dict"`
	Episode    int32  `parquet:"episode"`
	Game       string `parquet:"game,dict"`
	StartUnix  int64  `parquet:"start_unix_ms"`
	EndUnix    int64  `parquet:"end_unix_ms"`
	DurationNs int64  `parquet:"duration_ns"`
	Steps      int32  `parquet:"steps"`
	Score      int64  `parquet:"score"`
	MaxTile    int32  `parquet:"max_tile"`
	Winner     string `parquet:"winner,dict"`
	Loser      string `parquet:"loser,dict"`
}

// MoveRow is the parquet layout of a MoveRecord.
type MoveRow struct {
	Run          string `parquet:"run,dict"`
	Episode      int32  `parquet:"episode"`
	Step         int32  `parquet:"step"`
	Player       string `parquet:"player,dict"`
	DurationNs   int64  `parquet:"duration_ns"`
	Iterations   int32  `parquet:"iterations"`
	FullPlayouts int32  `parquet:"full_playouts"`
	TreeSize     int32  `parquet:"tree_size"`
}

type ParquetWriter struct {
	baseDir string
}

func (w *ParquetWriter) Dir() string {
	return w.baseDir
}

func (w *ParquetWriter) WriteGameRecords(records []GameRecord) error {
	rows := make([]GameRow, 0, len(records))
	for _, r := range records {
		rows = append(rows, GameRow{
			Run:        r.Run,
			Episode:    int32(r.Episode),
			Game:       r.Game,
			StartUnix:  r.StartTime.UnixMilli(),
			EndUnix:    r.EndTime.UnixMilli(),
			DurationNs: int64(r.Duration),
			Steps:      int32(r.Steps),
			Score:      int64(r.Score),
			MaxTile:    int32(r.MaxTile),
			Winner:     r.Winner,
			Loser:      r.Loser,
		})
	}
	return writeParquet(filepath.Join(w.baseDir, "game_records.parquet"), rows, "game_records_v1")
}

func (w *ParquetWriter) WriteMoveRecords(records []MoveRecord) error {
	rows := make([]MoveRow, 0, len(records))
	for _, r := range records {
		rows = append(rows, MoveRow{
			Run:          r.Run,
			Episode:      int32(r.Episode),
			Step:         int32(r.Step),
			Player:       r.Player,
			DurationNs:   int64(r.Duration),
			Iterations:   int32(r.Iterations),
			FullPlayouts: int32(r.FullPlayouts),
			TreeSize:     int32(r.TreeSize),
		})
	}
	return writeParquet(filepath.Join(w.baseDir, "move_records.parquet"), rows, "move_records_v1")
}

// writeParquet writes to a temp file and renames it into place.
func writeParquet[T any](path string, rows []T, schema string) error {
	tmpPath := path + ".tmp"
	_ = os.Remove(tmpPath)

	if err := parquet.WriteFile(tmpPath, rows,
		parquet.Compression(&zstd.Codec{Level: zstd.SpeedBetterCompression}),
		parquet.KeyValueMetadata("schema", schema),
	); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("write parquet: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("rename parquet: %w", err)
	}
	return nil
}
