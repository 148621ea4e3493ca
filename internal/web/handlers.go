package web

import (
	"net/http"
	"strings"

	"github.com/JonMunkholm/vinyl/internal/core"
	"github.com/JonMunkholm/vinyl/internal/logging"
	"github.com/JonMunkholm/vinyl/internal/render"
	"github.com/JonMunkholm/vinyl/internal/web/templates"
)

// Query parameter names shared by the page and the JSON API.
const (
	paramQuery    = "q"
	paramArtist   = "artist"
	paramFormat   = "format"
	paramGenre    = "genre"
	paramReleased = "released"
	paramView     = "view"
)

// facetParams maps facet columns to their query parameters.
var facetParams = map[string]string{
	core.ColArtist:   paramArtist,
	core.ColFormat:   paramFormat,
	core.ColGenre:    paramGenre,
	core.ColReleased: paramReleased,
}

func (s *Server) defaultView() core.View {
	return core.ParseView(s.cfg.View.DefaultView, core.ViewTable)
}

// parseParams rebuilds the pipeline input from the request. Nothing from
// earlier requests carries over.
func (s *Server) parseParams(r *http.Request) core.Params {
	q := r.URL.Query()

	var released []string
	for _, v := range q[paramReleased] {
		if v = strings.TrimSpace(v); v != "" {
			released = append(released, v)
		}
	}

	return core.Params{
		Selection: core.Selection{
			Artist:   q.Get(paramArtist),
			Format:   q.Get(paramFormat),
			Genre:    q.Get(paramGenre),
			Released: released,
		},
		Query: q.Get(paramQuery),
		View:  core.ParseView(q.Get(paramView), s.defaultView()),
	}
}

// run applies params to the session's collection and renders the result.
func (s *Server) run(r *http.Request, p core.Params) (*core.Collection, render.Output, error) {
	c, err := s.collection(r.Context())
	if err != nil {
		return nil, render.Output{}, err
	}

	result := core.Apply(c, p)
	out := render.Render(result, c.Len(), render.Options{
		View:        p.View,
		CardsPerRow: s.cfg.View.CardsPerRow,
		Covers:      s.covers,
	})

	logging.FromContext(r.Context()).Debug("search",
		"keywords", core.ExtractKeywords(p.Query),
		"selection", p.Selection,
		"view", out.View,
		"matched", out.Matched,
		"total", out.Total,
	)
	return c, out, nil
}

// handleIndex renders the browser page, or only the results fragment for
// HTMX requests.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	p := s.parseParams(r)

	c, out, err := s.run(r, p)
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	results := templates.ResultsParams{Output: out}
	if isHTMX(r) {
		renderComponent(w, r, templates.Results(results), http.StatusOK)
		return
	}

	renderComponent(w, r, templates.Page(templates.PageParams{
		Query:   p.Query,
		View:    out.View,
		Facets:  facetControls(core.Facets(c), p.Selection),
		Results: results,
	}), http.StatusOK)
}

// facetControls builds the filter selectors, marking current selections.
// Facets the collection cannot support get no control.
func facetControls(facets []core.Facet, sel core.Selection) []templates.FacetControl {
	selected := map[string]map[string]bool{
		core.ColArtist:   {sel.Artist: sel.Artist != ""},
		core.ColFormat:   {sel.Format: sel.Format != ""},
		core.ColGenre:    {sel.Genre: sel.Genre != ""},
		core.ColReleased: {},
	}
	for _, y := range sel.Released {
		selected[core.ColReleased][y] = true
	}

	controls := make([]templates.FacetControl, 0, len(facets))
	for _, f := range facets {
		if !f.Available {
			continue
		}
		fc := templates.FacetControl{
			Param:   facetParams[f.Column],
			Label:   f.Column,
			Multi:   f.Multi,
			Options: make([]templates.Option, len(f.Values)),
		}
		for i, v := range f.Values {
			fc.Options[i] = templates.Option{Value: v, Selected: selected[f.Column][v]}
		}
		controls = append(controls, fc)
	}
	return controls
}

// RecordsResponse is the JSON form of a search result.
type RecordsResponse struct {
	Columns []string   `json:"columns"`
	Rows    [][]string `json:"rows"`
	Total   int        `json:"total"`
	Matched int        `json:"matched"`
	Summary string     `json:"summary"`
}

// handleRecords returns the filtered records as JSON, always in table form.
func (s *Server) handleRecords(w http.ResponseWriter, r *http.Request) {
	p := s.parseParams(r)
	p.View = core.ViewTable

	_, out, err := s.run(r, p)
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	rows := out.Rows
	if rows == nil {
		rows = [][]string{}
	}
	writeJSON(w, r, RecordsResponse{
		Columns: out.Columns,
		Rows:    rows,
		Total:   out.Total,
		Matched: out.Matched,
		Summary: out.Summary(),
	})
}

// FacetResponse is the JSON form of one facet.
type FacetResponse struct {
	Column    string   `json:"column"`
	Param     string   `json:"param"`
	Multi     bool     `json:"multi"`
	Available bool     `json:"available"`
	Values    []string `json:"values"`
}

// handleFacets returns the filter options for the session's collection.
func (s *Server) handleFacets(w http.ResponseWriter, r *http.Request) {
	c, err := s.collection(r.Context())
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	facets := core.Facets(c)
	resp := make([]FacetResponse, len(facets))
	for i, f := range facets {
		values := f.Values
		if values == nil {
			values = []string{}
		}
		resp[i] = FacetResponse{
			Column:    f.Column,
			Param:     facetParams[f.Column],
			Multi:     f.Multi,
			Available: f.Available,
			Values:    values,
		}
	}
	writeJSON(w, r, resp)
}

// CoverResponse is the JSON form of a cover lookup.
type CoverResponse struct {
	ID        string `json:"id"`
	Reference string `json:"reference"`
}

// handleCover resolves the cover identifier and reference for an artist
// and title. It does not check that the image exists.
func (s *Server) handleCover(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	id := s.covers.ID(q.Get("artist"), q.Get("title"))
	if id == "" {
		writeError(w, r, http.StatusBadRequest, "invalid request: artist or title required")
		return
	}

	writeJSON(w, r, CoverResponse{
		ID:        id,
		Reference: s.covers.ReferenceFor(id),
	})
}

// handleReload discards the session's collection so the next request reads
// the source again.
func (s *Server) handleReload(w http.ResponseWriter, r *http.Request) {
	id := logging.SessionFromContext(r.Context())
	s.sessions.drop(id)
	logging.FromContext(r.Context()).Info("collection reload requested")

	if isHTMX(r) {
		w.Header().Set("HX-Redirect", "/")
		w.WriteHeader(http.StatusNoContent)
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// handleHealth reports liveness. It does not load the collection.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok"))
}
