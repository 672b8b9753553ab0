package export

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestWriteCSVDirFiles(t *testing.T) {
	dir := t.TempDir()
	ds := fixtureDataset()

	if err := WriteCSVDir(dir, ds); err != nil {
		t.Fatalf("WriteCSVDir: %v", err)
	}

	for _, name := range []string{"member_profiles.csv", "citation_registry.csv", "governance.csv"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Fatalf("expected %s: %v", name, err)
		}
		if _, err := os.Stat(filepath.Join(dir, name+".tmp")); !os.IsNotExist(err) {
			t.Fatalf("stage file for %s left behind", name)
		}
	}
}

func TestWriteCSVDirHeaderAndRows(t *testing.T) {
	dir := t.TempDir()
	ds := fixtureDataset()

	if err := WriteCSVDir(dir, ds); err != nil {
		t.Fatalf("WriteCSVDir: %v", err)
	}

	payload, err := os.ReadFile(filepath.Join(dir, "member_profiles.csv"))
	if err != nil {
		t.Fatalf("read members csv: %v", err)
	}
	records, err := csv.NewReader(bytes.NewReader(payload)).ReadAll()
	if err != nil {
		t.Fatalf("parse members csv: %v", err)
	}

	if len(records) != 1+len(ds.Members) {
		t.Fatalf("expected %d records, got %d", 1+len(ds.Members), len(records))
	}
	if got, want := strings.Join(records[0], ","), strings.Join(memberColumns, ","); got != want {
		t.Fatalf("header = %q, want %q", got, want)
	}
	if records[1][0] != "AU001" || records[1][2] != "Liam O'Brien" {
		t.Fatalf("unexpected first row: %v", records[1])
	}
	if records[2][3] != "41" {
		t.Fatalf("age cell = %q, want 41", records[2][3])
	}
}

func TestWriteCSVDirNullableAndTimestamps(t *testing.T) {
	dir := t.TempDir()
	ds := fixtureDataset()

	if err := WriteCSVDir(dir, ds); err != nil {
		t.Fatalf("WriteCSVDir: %v", err)
	}

	payload, err := os.ReadFile(filepath.Join(dir, "governance.csv"))
	if err != nil {
		t.Fatalf("read governance csv: %v", err)
	}
	records, err := csv.NewReader(bytes.NewReader(payload)).ReadAll()
	if err != nil {
		t.Fatalf("parse governance csv: %v", err)
	}

	toolIdx := columnIndex(t, governanceColumns, "tool_used")
	tsIdx := columnIndex(t, governanceColumns, "timestamp")
	costIdx := columnIndex(t, governanceColumns, "cost")
	citIdx := columnIndex(t, governanceColumns, "citations")

	if records[1][toolIdx] != "estimate_pension" {
		t.Fatalf("tool cell = %q", records[1][toolIdx])
	}
	if records[2][toolIdx] != "" {
		t.Fatalf("nil tool should be empty, got %q", records[2][toolIdx])
	}
	if records[1][tsIdx] != "2026-08-10 14:30:00" {
		t.Fatalf("timestamp cell = %q", records[1][tsIdx])
	}
	if records[1][costIdx] != "0.012345" {
		t.Fatalf("cost cell = %q", records[1][costIdx])
	}
	if records[1][citIdx] != "CIT-AU-001,CIT-AU-002" {
		t.Fatalf("citations cell = %q", records[1][citIdx])
	}
}

func TestWriteCSVDirRepeatable(t *testing.T) {
	ds := fixtureDataset()

	first := t.TempDir()
	second := t.TempDir()
	if err := WriteCSVDir(first, ds); err != nil {
		t.Fatalf("first write: %v", err)
	}
	if err := WriteCSVDir(second, ds); err != nil {
		t.Fatalf("second write: %v", err)
	}

	for _, name := range []string{"member_profiles.csv", "citation_registry.csv", "governance.csv"} {
		a, err := os.ReadFile(filepath.Join(first, name))
		if err != nil {
			t.Fatalf("read first %s: %v", name, err)
		}
		b, err := os.ReadFile(filepath.Join(second, name))
		if err != nil {
			t.Fatalf("read second %s: %v", name, err)
		}
		if !bytes.Equal(a, b) {
			t.Fatalf("%s differs between identical runs", name)
		}
	}
}

func columnIndex(t *testing.T, columns []string, name string) int {
	t.Helper()
	for i, c := range columns {
		if c == name {
			return i
		}
	}
	t.Fatalf("column %q not found", name)
	return -1
}
