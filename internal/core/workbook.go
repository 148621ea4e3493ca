package core

import (
	"fmt"
	"slices"

	"github.com/xuri/excelize/v2"
)

// loadWorkbook reads one worksheet of an Excel workbook. Cell values come
// back formatted as Excel displays them, so a year stored as a number reads
// as "1983".
func loadWorkbook(source, sheet string) (*Collection, error) {
	f, err := excelize.OpenFile(source)
	if err != nil {
		return nil, unreadable(source, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if sheet == "" {
		if len(sheets) == 0 {
			return nil, unreadable(source, errNoHeader)
		}
		sheet = sheets[0]
	} else if !slices.Contains(sheets, sheet) {
		return nil, unreadable(source, fmt.Errorf("%w: %q", errSheetNotFound, sheet))
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, unreadable(source, fmt.Errorf("read sheet %q: %w", sheet, err))
	}
	return fromRows(source, rows)
}
