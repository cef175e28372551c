package files

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pluqqy/gridedit/internal/logger"
	"github.com/pluqqy/gridedit/pkg/grid"
)

// Load reads a comma-delimited file without a header row. Each record
// becomes one grid row and records may have different field counts.
func Load(path string) (*grid.Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &Error{Op: "load", Kind: KindOpen, Path: path, Err: err}
	}
	defer f.Close()

	rows, err := ReadRecords(f)
	if err != nil {
		kind := KindParse
		var perr *csv.ParseError
		if !errors.As(err, &perr) {
			kind = KindOpen
		}
		return nil, &Error{Op: "load", Kind: kind, Path: path, Err: err}
	}

	g := grid.New(rows)
	logger.Info("loaded", "path", path, "rows", g.Height(), "cols", g.Width())
	return g, nil
}

// ReadRecords tokenizes all records from r.
func ReadRecords(r io.Reader) ([][]string, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	rows := [][]string{}
	for {
		record, err := cr.Read()
		if err == io.EOF {
			return rows, nil
		}
		if err != nil {
			return nil, err
		}
		rows = append(rows, record)
	}
}

// WriteRecords encodes rows to w in order and flushes. Rows are written as
// they are, without padding. A row with no cells or a single empty cell is
// written as a quoted empty field so it still reads back as a record.
func WriteRecords(w io.Writer, rows [][]string) error {
	bw := bufio.NewWriter(w)
	cw := csv.NewWriter(bw)

	for _, row := range rows {
		if len(row) == 0 || (len(row) == 1 && row[0] == "") {
			cw.Flush()
			if err := cw.Error(); err != nil {
				return err
			}
			if _, err := bw.WriteString("\"\"\n"); err != nil {
				return err
			}
			continue
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return err
	}
	return bw.Flush()
}

// Save encodes the whole grid in memory, writes it to a temporary file next
// to path and renames it into place, so path is never left half written.
// The existing file mode is kept; new files are created 0644.
func Save(path string, g *grid.Grid) error {
	var buf bytes.Buffer
	if err := WriteRecords(&buf, g.Rows()); err != nil {
		return &Error{Op: "save", Kind: KindSave, Path: path, Err: err}
	}

	perm := fs.FileMode(0644)
	if info, err := os.Stat(path); err == nil {
		perm = info.Mode().Perm()
	}

	if err := replaceFile(path, buf.Bytes(), perm); err != nil {
		return &Error{Op: "save", Kind: KindSave, Path: path, Err: err}
	}
	return nil
}

func replaceFile(path string, data []byte, perm fs.FileMode) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return err
	}
	if err := tmp.Chmod(perm); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return err
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return err
	}
	return nil
}
