package render

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// DefaultCoverExt is appended to cover identifiers when no extension is configured.
const DefaultCoverExt = "jpg"

var nonAlnum = regexp.MustCompile(`[^a-z0-9]+`)

// NormalizeCoverID derives the cover identifier for a record:
//
//	("A Flock Of Seagulls", "Telecommunication") -> "a_flock_of_seagulls_telecommunication"
//
// The result only contains [a-z0-9_], never starts or ends with '_' and
// never contains "__", so it is safe as a file name and URL path segment.
// Letters outside a-z count as separators: "Motörhead" becomes "mot_rhead".
// CoverResolver.FoldDiacritics opts into "motorhead" instead.
func NormalizeCoverID(artist, title string) string {
	return normalizeID(artist + " " + title)
}

func normalizeID(s string) string {
	s = strings.ToLower(s)
	s = strings.Join(strings.Fields(s), " ")
	s = nonAlnum.ReplaceAllString(s, "_")
	return strings.Trim(s, "_")
}

// foldDiacritics strips nonspacing marks after canonical decomposition.
// Transformers keep state, so one is built per call.
func foldDiacritics(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

// ValidCoverID reports whether id is a well-formed, non-empty identifier.
func ValidCoverID(id string) bool {
	return id != "" && normalizeID(id) == id
}

// CoverResolver turns cover identifiers into image references.
type CoverResolver struct {
	// BaseURL is a remote asset base. When set it wins over LocalBase.
	BaseURL string
	// LocalBase prefixes references when BaseURL is empty: a URL path such
	// as "/covers" for the web UI, or a directory for the CLI.
	LocalBase string
	// Dir is the local cover store checked by Locate.
	Dir string
	// Ext is the preferred extension, without the dot.
	Ext string
	// Fallbacks are tried by Locate after Ext.
	Fallbacks []string
	// FoldDiacritics strips accents before normalizing, for cover stores
	// whose files were named that way. Off by default.
	FoldDiacritics bool
}

// ID returns the cover identifier for a record under this resolver's
// naming rule.
func (r CoverResolver) ID(artist, title string) string {
	s := artist + " " + title
	if r.FoldDiacritics {
		s = foldDiacritics(s)
	}
	return normalizeID(s)
}

func (r CoverResolver) ext() string {
	if r.Ext == "" {
		return DefaultCoverExt
	}
	return strings.TrimPrefix(r.Ext, ".")
}

// Reference returns the image reference for a record's cover. It performs
// no I/O; a missing asset surfaces as a broken image, not an error.
// Records with neither artist nor title text have no reference.
func (r CoverResolver) Reference(artist, title string) string {
	return r.ReferenceFor(r.ID(artist, title))
}

// ReferenceFor builds the reference for an already normalized identifier.
func (r CoverResolver) ReferenceFor(id string) string {
	if id == "" {
		return ""
	}
	file := id + "." + r.ext()
	switch {
	case r.BaseURL != "":
		return strings.TrimRight(r.BaseURL, "/") + "/" + file
	case r.LocalBase != "":
		return strings.TrimRight(r.LocalBase, "/") + "/" + file
	default:
		return file
	}
}

// Extensions lists the extensions Locate tries, preferred first, without
// duplicates.
func (r CoverResolver) Extensions() []string {
	exts := []string{r.ext()}
	for _, e := range r.Fallbacks {
		e = strings.ToLower(strings.TrimPrefix(strings.TrimSpace(e), "."))
		if e == "" || containsFold(exts, e) {
			continue
		}
		exts = append(exts, e)
	}
	return exts
}

// Locate looks for the cover in the local store and returns the path of the
// first regular file found. Rendering never calls it; the cover file handler
// and the cover command do. Malformed identifiers are never looked up.
func (r CoverResolver) Locate(id string) (string, bool) {
	if r.Dir == "" || !ValidCoverID(id) {
		return "", false
	}
	for _, ext := range r.Extensions() {
		p := filepath.Join(r.Dir, id+"."+ext)
		info, err := os.Stat(p)
		if err == nil && info.Mode().IsRegular() {
			return p, true
		}
	}
	return "", false
}

func containsFold(list []string, s string) bool {
	for _, v := range list {
		if strings.EqualFold(v, s) {
			return true
		}
	}
	return false
}
