package core

// delimited.go reads .csv and .tsv collections.
//
// Spreadsheet exports carry the usual artifacts, handled before parsing:
//   - A UTF-8 BOM (0xEF 0xBB 0xBF) from Windows programs is dropped
//   - Invalid UTF-8 sequences are replaced with '?'
//
// Rows may be ragged; NewCollection pads or truncates them to the header.

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"unicode/utf8"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

func loadDelimited(source string, comma rune) (*Collection, error) {
	data, err := os.ReadFile(source)
	if err != nil {
		return nil, unavailable(source, err)
	}

	rows, err := parseDelimited(data, comma)
	if err != nil {
		return nil, unreadable(source, err)
	}
	return fromRows(source, rows)
}

// parseDelimited parses cleaned delimited text into raw rows.
func parseDelimited(data []byte, comma rune) ([][]string, error) {
	r := csv.NewReader(bytes.NewReader(cleanText(data)))
	r.Comma = comma
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("invalid csv: %w", err)
	}
	return rows, nil
}

// cleanText strips a leading BOM and sanitizes invalid UTF-8.
func cleanText(data []byte) []byte {
	data = bytes.TrimPrefix(data, utf8BOM)
	if utf8.Valid(data) {
		return data
	}
	return bytes.ToValidUTF8(data, []byte("?"))
}
