package export

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"

	"advisorseed/internal/domain/dataset"
	"advisorseed/internal/errs"
)

// WriteCSVDir writes one CSV file per table into dir, header row first,
// columns in the fixed table order. Each file is staged as <name>.tmp
// and renamed into place so a failed run never leaves a committed
// partial file.
func WriteCSVDir(dir string, ds dataset.Dataset) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errs.Wrapf(err, "create export directory %q", dir)
	}

	for _, table := range Tables(ds) {
		path := filepath.Join(dir, table.Name+".csv")
		payload, err := encodeCSV(table)
		if err != nil {
			return errs.Wrapf(err, "encode table %q", table.Name)
		}
		if err := writeFileAtomic(path, payload); err != nil {
			return errs.Wrapf(err, "write %q", path)
		}
	}
	return nil
}

func encodeCSV(table Table) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(table.Columns); err != nil {
		return nil, err
	}
	record := make([]string, len(table.Columns))
	for _, row := range table.Rows {
		for i, cell := range row {
			record[i] = cell.Text
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// writeFileAtomic stages payload next to path and renames it into
// place, removing the stage file on any failure.
func writeFileAtomic(path string, payload []byte) error {
	tmp := path + ".tmp"

	if err := os.WriteFile(tmp, payload, 0o644); err != nil {
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	return nil
}
