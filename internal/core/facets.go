package core

import (
	"slices"
	"sort"
	"strconv"
	"strings"
)

// Facet describes one filter control for a collection.
type Facet struct {
	Column    string
	Multi     bool     // multi-choice (Released) vs single-choice
	Available bool     // false when the collection lacks the column
	Values    []string // distinct non-null values
}

// FacetColumns lists the facet dimensions in display order.
var FacetColumns = []string{ColArtist, ColFormat, ColGenre, ColReleased}

// Facets returns the filter controls the collection supports. Text facets
// are sorted case-insensitively; Released is sorted newest first, numeric
// years ahead of anything unparseable.
func Facets(c *Collection) []Facet {
	out := make([]Facet, 0, len(FacetColumns))
	for _, col := range FacetColumns {
		f := Facet{Column: col, Multi: col == ColReleased}
		if c.HasColumn(col) {
			f.Available = true
			f.Values = Distinct(c, col)
			if f.Multi {
				sortYears(f.Values)
			}
		}
		out = append(out, f)
	}
	return out
}

// Distinct returns the distinct non-null values of a column, sorted
// case-insensitively. An absent column yields nil.
func Distinct(c *Collection, column string) []string {
	if !c.HasColumn(column) {
		return nil
	}
	seen := make(map[string]bool)
	var values []string
	for _, r := range c.records {
		f := r.Get(column)
		if !f.Valid || seen[f.Value] {
			continue
		}
		seen[f.Value] = true
		values = append(values, f.Value)
	}
	sort.SliceStable(values, func(i, j int) bool {
		li, lj := strings.ToLower(values[i]), strings.ToLower(values[j])
		if li == lj {
			return values[i] < values[j]
		}
		return li < lj
	})
	return values
}

func sortYears(values []string) {
	sort.SliceStable(values, func(i, j int) bool {
		yi, erri := strconv.ParseFloat(values[i], 64)
		yj, errj := strconv.ParseFloat(values[j], 64)
		switch {
		case erri == nil && errj == nil:
			return yi > yj
		case erri == nil:
			return true
		case errj == nil:
			return false
		default:
			return values[i] < values[j]
		}
	})
}

// FilterByFacets keeps the records matching every active constraint of sel.
//
// Artist, Format and Genre match by exact, case-sensitive equality; a null
// cell never matches a concrete selection. Released keeps records whose value
// is in the selected set. A constraint on a column the collection lacks is
// ignored. The constraints are independent, so their order does not matter.
func FilterByFacets(c *Collection, sel Selection) *Collection {
	type constraint struct {
		column string
		accept func(Field) bool
	}

	var active []constraint
	for _, exact := range []struct{ column, value string }{
		{ColArtist, sel.Artist},
		{ColFormat, sel.Format},
		{ColGenre, sel.Genre},
	} {
		if exact.value == "" || !c.HasColumn(exact.column) {
			continue
		}
		want := exact.value
		active = append(active, constraint{exact.column, func(f Field) bool {
			return f.Valid && f.Value == want
		}})
	}
	if len(sel.Released) > 0 && c.HasColumn(ColReleased) {
		years := slices.Clone(sel.Released)
		active = append(active, constraint{ColReleased, func(f Field) bool {
			return f.Valid && slices.Contains(years, f.Value)
		}})
	}

	if len(active) == 0 {
		return c
	}
	return c.where(func(r Record) bool {
		for _, k := range active {
			if !k.accept(r.Get(k.column)) {
				return false
			}
		}
		return true
	})
}
