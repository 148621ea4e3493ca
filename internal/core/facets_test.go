package core

import (
	"reflect"
	"testing"
)

func TestFilterByFacets(t *testing.T) {
	c := sampleCollection()

	tests := []struct {
		name string
		sel  Selection
		want []string
	}{
		{
			name: "no constraint passes everything through",
			sel:  Selection{},
			want: titles(c),
		},
		{
			name: "exact artist",
			sel:  Selection{Artist: "Prince"},
			want: []string{"1999", "Purple Rain"},
		},
		{
			name: "artist match is case sensitive",
			sel:  Selection{Artist: "prince"},
			want: nil,
		},
		{
			name: "artist match is exact, not substring",
			sel:  Selection{Artist: "Prin"},
			want: nil,
		},
		{
			name: "format and genre combine with AND",
			sel:  Selection{Format: "LP", Genre: "Electronic"},
			want: []string{"Power, Corruption & Lies"},
		},
		{
			name: "released set membership",
			sel:  Selection{Released: []string{"1981", "1984"}},
			want: []string{"Purple Rain", "Telecommunication"},
		},
		{
			name: "released with genre",
			sel:  Selection{Genre: "Electronic", Released: []string{"1983"}},
			want: []string{"Power, Corruption & Lies", "Nobody's Diary"},
		},
		{
			name: "unknown artist empties the result",
			sel:  Selection{Artist: "NonexistentArtist"},
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertTitles(t, FilterByFacets(c, tt.sel), tt.want)
		})
	}
}

func TestFilterByFacets_NullNeverMatches(t *testing.T) {
	c := NewCollection("x", []string{"Artist", "Title", "Genre"}, [][]string{
		{"A", "one", ""},
		{"B", "two", "Pop"},
	})
	assertTitles(t, FilterByFacets(c, Selection{Genre: "Pop"}), []string{"two"})
}

func TestFilterByFacets_Commutative(t *testing.T) {
	c := sampleCollection()
	selections := []Selection{
		{Artist: "Prince"},
		{Genre: "Pop"},
		{Format: "LP"},
		{Released: []string{"1982", "1984"}},
	}

	for i, a := range selections {
		for j, b := range selections {
			ab := FilterByFacets(FilterByFacets(c, a), b)
			ba := FilterByFacets(FilterByFacets(c, b), a)
			if !reflect.DeepEqual(titles(ab), titles(ba)) {
				t.Errorf("selections %d and %d do not commute: %q vs %q", i, j, titles(ab), titles(ba))
			}
		}
	}
}

func TestFilterByFacets_SubsetInOrder(t *testing.T) {
	c := sampleCollection()
	all := titles(c)
	got := titles(FilterByFacets(c, Selection{Format: "LP"}))

	pos := 0
	for _, title := range got {
		for pos < len(all) && all[pos] != title {
			pos++
		}
		if pos == len(all) {
			t.Fatalf("result %q is not an ordered subset of %q", got, all)
		}
		pos++
	}
}

func TestFilterByFacets_MissingColumnIgnored(t *testing.T) {
	c := NewCollection("x", []string{"Artist", "Title"}, [][]string{
		{"Prince", "1999"},
		{"ABC", "Lexicon"},
	})

	got := FilterByFacets(c, Selection{Genre: "Pop", Released: []string{"1982"}})
	if got.Len() != 2 {
		t.Errorf("constraints on absent columns should pass through, got %d rows", got.Len())
	}
}

func TestFacets(t *testing.T) {
	c := sampleCollection()
	facets := Facets(c)

	if len(facets) != len(FacetColumns) {
		t.Fatalf("Facets() returned %d facets, want %d", len(facets), len(FacetColumns))
	}

	byColumn := make(map[string]Facet)
	for _, f := range facets {
		byColumn[f.Column] = f
	}

	if got := byColumn[ColArtist].Values; !reflect.DeepEqual(got, []string{
		"A Flock Of Seagulls", "ABC", "George Benson", "New Order", "Prince", "Yazoo",
	}) {
		t.Errorf("Artist values = %q", got)
	}
	if got := byColumn[ColGenre].Values; !reflect.DeepEqual(got, []string{
		"Electronic", "Funk", "Jazz", "Pop",
	}) {
		t.Errorf("Genre values = %q (null must be excluded)", got)
	}
	released := byColumn[ColReleased]
	if !released.Multi {
		t.Error("Released should be multi-choice")
	}
	if !reflect.DeepEqual(released.Values, []string{"1984", "1983", "1982", "1981"}) {
		t.Errorf("Released values = %q, want newest first", released.Values)
	}
}

func TestFacets_UnavailableColumn(t *testing.T) {
	c := NewCollection("x", []string{"Artist", "Title"}, [][]string{{"Prince", "1999"}})
	for _, f := range Facets(c) {
		switch f.Column {
		case ColArtist:
			if !f.Available {
				t.Error("Artist should be available")
			}
		default:
			if f.Available || len(f.Values) != 0 {
				t.Errorf("%s should be unavailable with no values, got %+v", f.Column, f)
			}
		}
	}
}
