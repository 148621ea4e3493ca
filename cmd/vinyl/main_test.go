package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/JonMunkholm/vinyl/internal/core"
)

const sampleCSV = `Artist,Title,Format,Genre,Released,Label,Rating
Prince,1999,LP,Funk,1982,Warner Bros.,5
ABC,The Lexicon of Love,LP,Pop,1982,Neutron,
New Order,"Power, Corruption & Lies",LP,Electronic,1983,Factory,5
George Benson,In Your Eyes,LP,Jazz,1983,Warner Bros.,4
Prince,Purple Rain,LP,Pop,1984,Warner Bros.,nan
Yazoo,Nobody's Diary,"12"" Single",Electronic,1983,Mute,
`

type cliEnv struct {
	source    string
	coversDir string
}

func setupCLIEnv(t *testing.T) *cliEnv {
	t.Helper()
	dir := t.TempDir()
	source := filepath.Join(dir, "records.csv")
	if err := os.WriteFile(source, []byte(sampleCSV), 0o644); err != nil {
		t.Fatalf("write source: %v", err)
	}
	covers := filepath.Join(dir, "covers")
	if err := os.MkdirAll(covers, 0o755); err != nil {
		t.Fatalf("mkdir covers: %v", err)
	}
	for _, key := range []string{"CATALOG_SHEET", "COVERS_BASE_URL", "COVERS_FOLD_DIACRITICS", "DEFAULT_VIEW", "CARDS_PER_ROW", "COVERS_EXT", "COVERS_FALLBACK_EXTS"} {
		t.Setenv(key, "")
	}
	return &cliEnv{source: source, coversDir: covers}
}

// run executes the CLI against the environment's source and covers.
func (e *cliEnv) run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	full := append([]string{"--source", e.source, "--covers-dir", e.coversDir}, args...)
	return runCLI(t, full)
}

func runCLI(t *testing.T, args []string) (string, error) {
	t.Helper()
	cmd := newRootCommand()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func requireContains(t *testing.T, out, want string) {
	t.Helper()
	if !strings.Contains(out, want) {
		t.Fatalf("output missing %q:\n%s", want, out)
	}
}

func requireNotContains(t *testing.T, out, unwanted string) {
	t.Helper()
	if strings.Contains(out, unwanted) {
		t.Fatalf("output unexpectedly contains %q:\n%s", unwanted, out)
	}
}

func TestSearchTable(t *testing.T) {
	env := setupCLIEnv(t)

	out, err := env.run(t, "search", "show", "me", "all", "Prince", "albums")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	requireContains(t, out, "Artist")
	requireContains(t, out, "Purple Rain")
	requireContains(t, out, "1999")
	requireNotContains(t, out, "Yazoo")
	requireContains(t, out, "2 of 6 records")
	// Piped output uses the ASCII style.
	requireContains(t, out, "+-")
}

func TestSearchFacets(t *testing.T) {
	env := setupCLIEnv(t)

	out, err := env.run(t, "search", "--genre", "Electronic", "--released", "1983", "--released", "1984")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	requireContains(t, out, "Power, Corruption & Lies")
	requireContains(t, out, "Nobody's Diary")
	requireNotContains(t, out, "Purple Rain")
	requireContains(t, out, "2 of 6 records")
}

func TestSearchNoMatches(t *testing.T) {
	env := setupCLIEnv(t)

	out, err := env.run(t, "search", "--artist", "Prince", "telecommunication")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if strings.TrimSpace(out) != "No records match" {
		t.Fatalf("output = %q", out)
	}
}

func TestSearchCards(t *testing.T) {
	env := setupCLIEnv(t)

	out, err := env.run(t, "search", "--view", "cards", "--per-row", "2", "--released", "1983")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	requireContains(t, out, "In Your Eyes")
	requireContains(t, out, "George Benson")
	requireContains(t, out, "Rating: 4")
	requireContains(t, out, "╭")
	requireContains(t, out, "3 of 6 records")
	requireNotContains(t, out, "Rating: \n")
}

func TestSearchCardsOmitNullRating(t *testing.T) {
	env := setupCLIEnv(t)

	out, err := env.run(t, "search", "--view", "cards", "purple")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	requireContains(t, out, "Purple Rain")
	requireNotContains(t, out, "Rating:")
}

func TestSearchJSON(t *testing.T) {
	env := setupCLIEnv(t)

	out, err := env.run(t, "search", "--json", "--view", "cards", "lexicon")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	requireContains(t, out, `"matched": 1`)
	requireContains(t, out, `"total": 6`)
	requireContains(t, out, `"The Lexicon of Love"`)

	out, err = env.run(t, "search", "--json", "nothing-here")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	requireContains(t, out, `"rows": []`)
	requireContains(t, out, `"summary": "No records match"`)
}

func TestFacets(t *testing.T) {
	env := setupCLIEnv(t)

	out, err := env.run(t, "facets")
	if err != nil {
		t.Fatalf("facets: %v", err)
	}
	requireContains(t, out, "Artist (--artist): 5 values")
	requireContains(t, out, "Released (--released): 3 values")
	// Newest year first.
	if strings.Index(out, "  1984") > strings.Index(out, "  1982") {
		t.Fatalf("released years not newest first:\n%s", out)
	}
}

func TestFacetsMissingColumn(t *testing.T) {
	dir := t.TempDir()
	source := filepath.Join(dir, "minimal.csv")
	if err := os.WriteFile(source, []byte("Artist,Title\nPrince,1999\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	out, err := runCLI(t, []string{"--source", source, "facets", "--json"})
	if err != nil {
		t.Fatalf("facets: %v", err)
	}
	requireContains(t, out, `"column": "Genre"`)
	requireContains(t, out, `"available": false`)
	requireContains(t, out, `"values": []`)
}

func TestCover(t *testing.T) {
	env := setupCLIEnv(t)
	if err := os.WriteFile(filepath.Join(env.coversDir, "a_flock_of_seagulls_telecommunication.png"), []byte("png"), 0o644); err != nil {
		t.Fatalf("write cover: %v", err)
	}

	out, err := env.run(t, "cover", "A Flock of Seagulls", "Telecommunication")
	if err != nil {
		t.Fatalf("cover: %v", err)
	}
	requireContains(t, out, "id:        a_flock_of_seagulls_telecommunication")
	requireContains(t, out, "a_flock_of_seagulls_telecommunication.jpg")
	requireContains(t, out, filepath.Join(env.coversDir, "a_flock_of_seagulls_telecommunication.png"))
}

func TestCoverRemote(t *testing.T) {
	env := setupCLIEnv(t)
	t.Setenv("COVERS_BASE_URL", "https://img.example.com/covers/")

	out, err := env.run(t, "cover", "Prince", "Purple Rain")
	if err != nil {
		t.Fatalf("cover: %v", err)
	}
	requireContains(t, out, "reference: https://img.example.com/covers/prince_purple_rain.jpg")
	requireNotContains(t, out, "file:")
}

func TestCoverDiacritics(t *testing.T) {
	env := setupCLIEnv(t)

	out, err := env.run(t, "cover", "Motörhead", "Ace of Spades")
	if err != nil {
		t.Fatalf("cover: %v", err)
	}
	requireContains(t, out, "id:        mot_rhead_ace_of_spades")

	t.Setenv("COVERS_FOLD_DIACRITICS", "true")
	out, err = env.run(t, "cover", "Motörhead", "Ace of Spades")
	if err != nil {
		t.Fatalf("cover: %v", err)
	}
	requireContains(t, out, "id:        motorhead_ace_of_spades")
}

func TestCoverRequiresText(t *testing.T) {
	env := setupCLIEnv(t)

	_, err := env.run(t, "cover", "  ", "!!!")
	if err == nil {
		t.Fatal("expected error for empty identifier")
	}
	requireContains(t, err.Error(), "REQ003")
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name   string
		source string
		code   string
		kind   error
	}{
		{"missing file", filepath.Join(dir, "missing.xlsx"), "SRC001", core.ErrSourceUnavailable},
		{"unsupported format", writeTemp(t, dir, "records.ods", "x"), "SRC003", core.ErrSourceUnreadable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := runCLI(t, []string{"--source", tt.source, "search"})
			if err == nil {
				t.Fatal("expected error")
			}
			if !errors.Is(err, tt.kind) {
				t.Errorf("errors.Is(%v, %v) = false", err, tt.kind)
			}
			requireContains(t, err.Error(), tt.code)
			requireContains(t, err.Error(), "cause:")
		})
	}
}

func writeTemp(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}
