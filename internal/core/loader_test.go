package core

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/xuri/excelize/v2"
)

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func writeWorkbook(t *testing.T, sheet string, rows [][]any) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	if sheet != "Sheet1" {
		if _, err := f.NewSheet(sheet); err != nil {
			t.Fatalf("new sheet: %v", err)
		}
		if err := f.DeleteSheet("Sheet1"); err != nil {
			t.Fatalf("delete default sheet: %v", err)
		}
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			t.Fatalf("cell name: %v", err)
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			t.Fatalf("set row %d: %v", i, err)
		}
	}

	path := filepath.Join(t.TempDir(), "collection.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("save workbook: %v", err)
	}
	return path
}

func TestLoad_Workbook(t *testing.T) {
	path := writeWorkbook(t, "Sheet1", [][]any{
		{" Artist", "Title ", "Format", "Genre", "Released", "Label", "Rating"},
		{"Prince", "1999", "LP", "Funk", 1982, "Warner Bros.", 5},
		{"ABC", "The Lexicon of Love", "LP", "Pop", 1982, "Neutron", nil},
	})

	c, err := Load(context.Background(), path, LoadOptions{})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	wantCols := []string{"Artist", "Title", "Format", "Genre", "Released", "Label", "Rating"}
	if !reflect.DeepEqual(c.Columns(), wantCols) {
		t.Errorf("Columns() = %q, want %q", c.Columns(), wantCols)
	}
	if c.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", c.Len())
	}
	if got := c.At(0).Text(ColReleased); got != "1982" {
		t.Errorf("Released = %q, want %q", got, "1982")
	}
	if f := c.At(1).Get(ColRating); f.Valid {
		t.Errorf("empty Rating cell should be null, got %+v", f)
	}
}

func TestLoad_WorkbookNamedSheet(t *testing.T) {
	path := writeWorkbook(t, "Vinyl", [][]any{
		{"Artist", "Title"},
		{"Yazoo", "Upstairs at Eric's"},
	})

	c, err := Load(context.Background(), path, LoadOptions{Sheet: "Vinyl"})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if c.Len() != 1 {
		t.Errorf("Len() = %d, want 1", c.Len())
	}

	_, err = Load(context.Background(), path, LoadOptions{Sheet: "Tapes"})
	if !errors.Is(err, ErrSourceUnreadable) {
		t.Fatalf("missing sheet error = %v, want SourceUnreadable", err)
	}
	if got := MapError(err).Code; got != "SRC005" {
		t.Errorf("MapError code = %q, want SRC005", got)
	}
}

func TestLoad_CSV(t *testing.T) {
	data := append([]byte{0xEF, 0xBB, 0xBF}, []byte("Artist , Title,Released\n"+
		"Prince,1999,1982\n"+
		"\"Benson, George\",In Your Eyes,1983\n"+
		",,\n"+
		"Yazoo,Nobody's Diary\n")...)
	path := writeFile(t, "records.csv", data)

	c, err := Load(context.Background(), path, LoadOptions{})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if !reflect.DeepEqual(c.Columns(), []string{"Artist", "Title", "Released"}) {
		t.Errorf("Columns() = %q (BOM and whitespace must be stripped)", c.Columns())
	}
	if c.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", c.Len())
	}
	if got := c.At(1).Text(ColArtist); got != "Benson, George" {
		t.Errorf("quoted cell = %q", got)
	}
	if f := c.At(2).Get(ColReleased); f.Valid {
		t.Errorf("short row should pad with null, got %+v", f)
	}
}

func TestLoad_TSVInvalidUTF8(t *testing.T) {
	path := writeFile(t, "records.tsv", []byte("Artist\tTitle\nMot\xf6rhead\tAce of Spades\n"))

	c, err := Load(context.Background(), path, LoadOptions{})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got := c.At(0).Text(ColArtist); got != "Mot?rhead" {
		t.Errorf("Artist = %q, want invalid byte replaced", got)
	}
}

func TestLoad_Errors(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name     string
		source   string
		wantKind error
		wantCode string
	}{
		{
			name:     "missing file",
			source:   filepath.Join(dir, "missing.xlsx"),
			wantKind: ErrSourceUnavailable,
			wantCode: "SRC001",
		},
		{
			name:     "directory",
			source:   dir,
			wantKind: ErrSourceUnavailable,
			wantCode: "SRC001",
		},
		{
			name:     "corrupt workbook",
			source:   writeFile(t, "broken.xlsx", []byte("this is not a zip archive")),
			wantKind: ErrSourceUnreadable,
			wantCode: "SRC002",
		},
		{
			name:     "unsupported extension",
			source:   writeFile(t, "records.ods", []byte("whatever")),
			wantKind: ErrSourceUnreadable,
			wantCode: "SRC003",
		},
		{
			name:     "empty csv",
			source:   writeFile(t, "empty.csv", nil),
			wantKind: ErrSourceUnreadable,
			wantCode: "SRC004",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := Load(context.Background(), tt.source, LoadOptions{})
			if err == nil {
				t.Fatal("Load() expected error")
			}
			if c != nil {
				t.Error("Load() must not return a collection with an error")
			}
			if !errors.Is(err, tt.wantKind) {
				t.Errorf("errors.Is(%v, %v) = false", err, tt.wantKind)
			}
			var le *LoadError
			if !errors.As(err, &le) {
				t.Fatalf("error %T is not a *LoadError", err)
			}
			if le.Source != tt.source {
				t.Errorf("LoadError.Source = %q, want %q", le.Source, tt.source)
			}
			if got := MapError(err).Code; got != tt.wantCode {
				t.Errorf("MapError code = %q, want %q", got, tt.wantCode)
			}
		})
	}
}

func TestLoad_HeaderOnlyIsEmptyCollection(t *testing.T) {
	path := writeFile(t, "header.csv", []byte("Artist,Title\n"))

	c, err := Load(context.Background(), path, LoadOptions{})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if c.Len() != 0 {
		t.Errorf("Len() = %d, want 0", c.Len())
	}
	if !c.HasColumn(ColTitle) {
		t.Error("header-only collection should keep its columns")
	}
}

func TestSplitPostgresSource(t *testing.T) {
	tests := []struct {
		source    string
		wantDSN   string
		wantTable string
	}{
		{"postgres://u:p@localhost:5432/vinyl#catalog.records", "postgres://u:p@localhost:5432/vinyl", `"catalog"."records"`},
		{"postgresql://localhost/vinyl", "postgresql://localhost/vinyl", `"records"`},
	}

	for _, tt := range tests {
		dsn, table, err := splitPostgresSource(tt.source)
		if err != nil {
			t.Fatalf("splitPostgresSource(%q) error = %v", tt.source, err)
		}
		if dsn != tt.wantDSN {
			t.Errorf("dsn = %q, want %q", dsn, tt.wantDSN)
		}
		if got := table.Sanitize(); got != tt.wantTable {
			t.Errorf("table = %s, want %s", got, tt.wantTable)
		}
	}
}

func TestIsPostgresSource(t *testing.T) {
	if !isPostgresSource("POSTGRES://host/db") {
		t.Error("scheme match should be case-insensitive")
	}
	if isPostgresSource("data/postgres.csv") {
		t.Error("file path misdetected as postgres source")
	}
}

func TestFormatCell(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want string
	}{
		{"nil", nil, ""},
		{"string", "Prince", "Prince"},
		{"int year", int32(1983), "1983"},
		{"float rating", 4.5, "4.5"},
		{"bool", true, "true"},
		{"bytes", []byte("LP"), "LP"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatCell(tt.in); got != tt.want {
				t.Errorf("formatCell(%v) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
