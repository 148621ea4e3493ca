// Package core provides the catalog's domain logic: loading a record
// collection and narrowing it with facet filters and keyword search.
//
// The package has no UI dependencies. The web server and the CLI both drive
// it the same way, with a fresh [Params] value per interaction.
//
// # Collections
//
// A [Collection] is an ordered, read-only set of [Record] values sharing one
// column list. Column names come from the source header row, trimmed and
// made unique. Every cell is a nullable [Field]; nulls coerce to "" wherever
// text is needed, so filtering and searching never fail on missing values.
//
// Filtering never mutates a collection. [FilterByFacets], [Search] and
// [Apply] return views that share column metadata with their input.
//
// # Loading
//
// [Load] reads spreadsheets (.xlsx via excelize), delimited text (.csv, .tsv)
// and Postgres tables (postgres:// URLs via pgx). Failures are reported as a
// [*LoadError] tagged [SourceUnavailable] or [SourceUnreadable]; no partial
// collection is ever returned with an error.
//
// # Search
//
// Search uses keyword/AND matching: the query is lower-cased, split on
// whitespace, stripped of stopwords (see [IsStopword]), and every remaining keyword must occur
// somewhere in the row's concatenated text. Results keep source order.
//
// # Error Handling
//
// Technical errors are mapped to user-facing messages using [MapError]:
//
//   - SRC001-SRC005: Source errors (missing, unreadable, unsupported, empty, sheet)
//   - REQ001-REQ003: Request errors (cancelled, timeout, invalid parameters)
//   - RATE001: Rate limiting
package core
