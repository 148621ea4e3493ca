package core

import (
	"reflect"
	"testing"
)

var sampleHeader = []string{" Artist ", "Title", "Format", "Genre", "Released", "Label", "Rating"}

var sampleRows = [][]string{
	{"Prince", "1999", "LP", "Funk", "1982", "Warner Bros.", "5"},
	{"ABC", "The Lexicon of Love", "LP", "Pop", "1982", "Neutron", ""},
	{"New Order", "Power, Corruption & Lies", "LP", "Electronic", "1983", "Factory", "5"},
	{"George Benson", "In Your Eyes", "LP", "Jazz", "1983", "Warner Bros.", "4"},
	{"Prince", "Purple Rain", "LP", "Pop", "1984", "Warner Bros.", "4"},
	{"Yazoo", "Nobody's Diary", "12\" Single", "Electronic", "1983", "Mute", ""},
	{"A Flock Of Seagulls", "Telecommunication", "7\" Single", "", "1981", "Jive", "3"},
}

func sampleCollection() *Collection {
	return NewCollection("sample.csv", sampleHeader, sampleRows)
}

// titles extracts the Title column for order-sensitive comparisons.
func titles(c *Collection) []string {
	out := make([]string, 0, c.Len())
	for _, r := range c.Records() {
		out = append(out, r.Text(ColTitle))
	}
	return out
}

func assertTitles(t *testing.T, c *Collection, want []string) {
	t.Helper()
	got := titles(c)
	if len(got) == 0 && len(want) == 0 {
		return
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("titles = %q, want %q", got, want)
	}
}
