// Package templates holds the HTML components of the catalog browser.
//
// Components are written in the .templ files and compiled to *_templ.go
// with `templ generate`. Record text is escaped by the generated code and
// cover URLs pass through templ.URL.
package templates

import (
	"github.com/JonMunkholm/vinyl/internal/core"
	"github.com/JonMunkholm/vinyl/internal/render"
)

// PageParams is everything the full page needs.
type PageParams struct {
	Title   string
	Query   string
	View    core.View
	Facets  []FacetControl
	Results ResultsParams
}

// FacetControl is one selector in the filter form.
type FacetControl struct {
	Param   string // query parameter name
	Label   string
	Multi   bool
	Options []Option
}

// Option is one selectable facet value.
type Option struct {
	Value    string
	Selected bool
}

// ResultsParams drives the results fragment that HTMX swaps in.
type ResultsParams struct {
	Output render.Output
	Error  *ErrorParams
}

// ErrorParams describes a failure shown in place of results.
type ErrorParams struct {
	Message string
	Action  string
	Code    string
	Detail  string // technical cause, shown verbatim
}
