package main

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/JonMunkholm/vinyl/internal/render"
)

const cardWidth = 36

var (
	cardAccent = lipgloss.AdaptiveColor{Light: "#874BFD", Dark: "#7D56F4"}
	cardSubtle = lipgloss.AdaptiveColor{Light: "#9B9B9B", Dark: "#5C5C5C"}
)

type cardStyles struct {
	box    lipgloss.Style
	title  lipgloss.Style
	artist lipgloss.Style
	meta   lipgloss.Style
	rating lipgloss.Style
}

// newCardStyles binds the styles to w so colors are dropped when w is not
// a color terminal.
func newCardStyles(w io.Writer) cardStyles {
	r := lipgloss.NewRenderer(w)
	return cardStyles{
		box: r.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(cardAccent).
			Padding(0, 1).
			Width(cardWidth),
		title:  r.NewStyle().Bold(true),
		artist: r.NewStyle().Foreground(cardAccent),
		meta:   r.NewStyle().Foreground(cardSubtle),
		rating: r.NewStyle().Bold(true).Foreground(cardAccent),
	}
}

// renderCards lays out each group as one row of boxes.
func renderCards(w io.Writer, groups [][]render.Card) string {
	st := newCardStyles(w)

	rows := make([]string, 0, len(groups))
	for _, group := range groups {
		boxes := make([]string, len(group))
		for i, c := range group {
			boxes[i] = st.box.Render(cardBody(st, c))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, boxes...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func cardBody(st cardStyles, c render.Card) string {
	lines := []string{st.title.Render(c.Title), st.artist.Render(c.Artist)}

	var details []string
	for _, v := range []string{c.Format, c.Genre, c.Released} {
		if v != "" {
			details = append(details, v)
		}
	}
	if len(details) > 0 {
		lines = append(lines, strings.Join(details, " · "))
	}
	if c.Label != "" {
		lines = append(lines, st.meta.Render(c.Label))
	}
	if c.HasRating {
		lines = append(lines, st.rating.Render("Rating: "+c.Rating))
	}
	if c.Cover != "" {
		lines = append(lines, st.meta.Render(c.Cover))
	}
	return strings.Join(lines, "\n")
}
