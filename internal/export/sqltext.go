package export

import (
	"strings"

	"advisorseed/internal/domain/dataset"
	"advisorseed/internal/errs"
)

// SQLStatements renders one batch INSERT per table: quoted columns in
// the fixed order, rows comma-separated, a single trailing semicolon.
// Strings and dates are single-quoted with '' escaping; numerics are
// raw digits; nil optional fields become NULL. Empty tables emit no
// statement.
func SQLStatements(ds dataset.Dataset) string {
	var b strings.Builder

	first := true
	for _, table := range Tables(ds) {
		if len(table.Rows) == 0 {
			continue
		}
		if !first {
			b.WriteString("\n")
		}
		first = false
		writeInsert(&b, table)
	}

	return b.String()
}

// WriteSQLFile writes the batch-insert statements atomically to path.
func WriteSQLFile(path string, ds dataset.Dataset) error {
	if err := writeFileAtomic(path, []byte(SQLStatements(ds))); err != nil {
		return errs.Wrapf(err, "write %q", path)
	}
	return nil
}

func writeInsert(b *strings.Builder, table Table) {
	b.WriteString("INSERT INTO ")
	b.WriteString(table.Name)
	b.WriteString(" (")
	b.WriteString(strings.Join(table.Columns, ", "))
	b.WriteString(") VALUES\n")

	for i, row := range table.Rows {
		b.WriteString("  (")
		for j, cell := range row {
			if j > 0 {
				b.WriteString(", ")
			}
			b.WriteString(sqlLiteral(cell))
		}
		b.WriteString(")")
		if i < len(table.Rows)-1 {
			b.WriteString(",")
		}
		b.WriteString("\n")
	}

	b.WriteString(";\n")
}

func sqlLiteral(cell value) string {
	if cell.Quoted {
		return "'" + strings.ReplaceAll(cell.Text, "'", "''") + "'"
	}
	if cell.Text == "" {
		return "NULL"
	}
	return cell.Text
}
