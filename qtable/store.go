package qtable

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"strconv"

	"quixo/game"

	"github.com/cespare/xxhash"
	"github.com/parquet-go/parquet-go"
	"github.com/parquet-go/parquet-go/compress/zstd"
	"github.com/rs/zerolog/log"
)

// ErrCorruptTable is returned when a persisted table cannot be reconstructed.
var ErrCorruptTable = errors.New("corrupt q-table")

const (
	schemaKey     = "schema"
	schemaVersion = "qtable_v1"
	rowsKey       = "rows"
	checksumKey   = "checksum"
)

// Row is one persisted (state, action, value) entry. States without any
// action are kept as a single row with NoAction set.
type Row struct {
	Board    string  `parquet:"board,dict"`
	Player   int32   `parquet:"player"`
	X        int32   `parquet:"x"`
	Y        int32   `parquet:"y"`
	Slide    int32   `parquet:"slide"`
	Value    float64 `parquet:"value"`
	NoAction bool    `parquet:"no_action"`
}

func (t *Table) rows() []Row {
	var rows []Row
	for _, key := range t.keys {
		v := t.states[key]
		if v.Len() == 0 {
			rows = append(rows, Row{Board: key.Board, Player: int32(key.Player), NoAction: true})
			continue
		}
		for i, action := range v.actions {
			rows = append(rows, Row{
				Board:  key.Board,
				Player: int32(key.Player),
				X:      int32(action.From.X),
				Y:      int32(action.From.Y),
				Slide:  int32(action.Slide),
				Value:  v.values[i],
			})
		}
	}
	return rows
}

func checksum(rows []Row) uint64 {
	d := xxhash.New()
	for _, r := range rows {
		fmt.Fprintf(d, "%s|%d|%d|%d|%d|%x|%t\n", r.Board, r.Player, r.X, r.Y, r.Slide, math.Float64bits(r.Value), r.NoAction)
	}
	return d.Sum64()
}

// Exists reports whether a table was saved at path.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return !errors.Is(err, fs.ErrNotExist)
}

// Save writes the table to path as a parquet file. The file is written next
// to path first and renamed over it, so an interrupted save leaves the
// previous file intact.
func Save(path string, t *Table) error {
	rows := t.rows()

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create table dir: %w", err)
	}
	f, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create tmp table: %w", err)
	}
	tmpPath := f.Name()
	defer os.Remove(tmpPath) // no-op once renamed

	w := parquet.NewGenericWriter[Row](
		f,
		parquet.Compression(&zstd.Codec{Level: zstd.SpeedBetterCompression}),
	)
	w.SetKeyValueMetadata(schemaKey, schemaVersion)
	w.SetKeyValueMetadata(rowsKey, strconv.Itoa(len(rows)))
	w.SetKeyValueMetadata(checksumKey, strconv.FormatUint(checksum(rows), 16))

	if len(rows) > 0 {
		if _, err := w.Write(rows); err != nil {
			f.Close()
			return fmt.Errorf("write table rows: %w", err)
		}
	}
	if err := w.Close(); err != nil {
		f.Close()
		return fmt.Errorf("close parquet writer: %w", err)
	}
	if err := f.Sync(); err != nil {
		f.Close()
		return fmt.Errorf("sync table: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close table file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("rename table: %w", err)
	}

	log.Debug().Str("path", path).Int("states", t.Len()).Int("rows", len(rows)).Msg("saved q-table")
	return nil
}

// Load reads a table written by Save, restoring states and actions in their
// original insertion order.
func Load(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	stat, err := f.Stat()
	if err != nil {
		return nil, err
	}

	pf, err := parquet.OpenFile(f, stat.Size())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorruptTable, err)
	}
	if schema, ok := pf.Lookup(schemaKey); !ok || schema != schemaVersion {
		return nil, fmt.Errorf("%w: unknown schema %q", ErrCorruptTable, schema)
	}
	wantRows, err := strconv.Atoi(lookup(pf, rowsKey))
	if err != nil {
		return nil, fmt.Errorf("%w: row count: %w", ErrCorruptTable, err)
	}
	wantSum, err := strconv.ParseUint(lookup(pf, checksumKey), 16, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: checksum: %w", ErrCorruptTable, err)
	}

	reader := parquet.NewGenericReader[Row](pf)
	defer reader.Close()

	rows := make([]Row, 0, int(reader.NumRows()))
	buf := make([]Row, 256)
	for {
		n, err := reader.Read(buf)
		if n > 0 {
			rows = append(rows, buf[:n]...)
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: read rows: %w", ErrCorruptTable, err)
		}
	}

	if len(rows) != wantRows {
		return nil, fmt.Errorf("%w: read %d rows, want %d", ErrCorruptTable, len(rows), wantRows)
	}
	if sum := checksum(rows); sum != wantSum {
		return nil, fmt.Errorf("%w: checksum %x, want %x", ErrCorruptTable, sum, wantSum)
	}

	t, err := fromRows(rows)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorruptTable, err)
	}
	log.Debug().Str("path", path).Int("states", t.Len()).Msg("loaded q-table")
	return t, nil
}

func lookup(pf *parquet.File, key string) string {
	value, _ := pf.Lookup(key)
	return value
}

func fromRows(rows []Row) (*Table, error) {
	t := New()
	for i, r := range rows {
		key := Key{Board: r.Board, Player: game.Player(r.Player)}
		if _, known := t.states[key]; !known {
			if _, err := game.BoardFromKey(r.Board); err != nil {
				return nil, fmt.Errorf("row %d: %w", i, err)
			}
			if !key.Player.Valid() {
				return nil, fmt.Errorf("row %d: unknown player %d", i, r.Player)
			}
		}
		v := t.Ensure(key)
		if r.NoAction {
			continue
		}
		if r.Slide < int32(game.Top) || r.Slide > int32(game.Right) {
			return nil, fmt.Errorf("row %d: unknown slide %d", i, r.Slide)
		}
		action := game.Action{
			From:  game.Coord{X: int(r.X), Y: int(r.Y)},
			Slide: game.Direction(r.Slide),
		}
		if _, dup := v.Get(action); dup {
			return nil, fmt.Errorf("row %d: duplicate action %v", i, action)
		}
		v.Set(action, r.Value)
	}
	return t, nil
}
