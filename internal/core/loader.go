package core

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/JonMunkholm/vinyl/internal/logging"
)

// LoadOptions tunes how a source is read.
type LoadOptions struct {
	// Sheet selects a worksheet by name for spreadsheet sources.
	// Empty means the first sheet.
	Sheet string
}

// Load reads the collection at source. Spreadsheet and delimited files are
// chosen by extension; postgres:// and postgresql:// URLs are read with pgx.
//
// Every failure is a *LoadError. A nil error always comes with a non-nil
// collection, which may have no records.
func Load(ctx context.Context, source string, opts LoadOptions) (*Collection, error) {
	start := time.Now()
	logger := logging.WithFields(ctx, "source", maskedSource(source))

	c, err := load(ctx, source, opts)
	if err != nil {
		logger.Warn("collection load failed", "error", err)
		return nil, err
	}

	logger.Info("collection loaded",
		"collection_id", c.ID(),
		"rows", c.Len(),
		"columns", len(c.schema.columns),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return c, nil
}

func load(ctx context.Context, source string, opts LoadOptions) (*Collection, error) {
	if isPostgresSource(source) {
		return loadPostgres(ctx, source)
	}

	info, err := os.Stat(source)
	if err != nil {
		return nil, unavailable(source, err)
	}
	if info.IsDir() {
		return nil, unavailable(source, fmt.Errorf("%s is a directory", source))
	}

	switch ext := strings.ToLower(filepath.Ext(source)); ext {
	case ".xlsx", ".xlsm", ".xltx", ".xltm":
		return loadWorkbook(source, opts.Sheet)
	case ".csv":
		return loadDelimited(source, ',')
	case ".tsv", ".tab":
		return loadDelimited(source, '\t')
	default:
		return nil, unreadable(source, fmt.Errorf("%w: %q", errUnsupportedFormat, ext))
	}
}

// fromRows splits raw rows into header and body and builds the collection.
func fromRows(source string, rows [][]string) (*Collection, error) {
	for len(rows) > 0 && isBlankRow(rows[0]) {
		rows = rows[1:]
	}
	if len(rows) == 0 {
		return nil, unreadable(source, errNoHeader)
	}
	return NewCollection(source, rows[0], rows[1:]), nil
}
