package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/pranavpatil70/Registeration-hub-admin/internal/engine"
	"github.com/pranavpatil70/Registeration-hub-admin/internal/tui/themes"
)

// StatCards renders the counter row shown at the top of the dashboard. The
// counters always describe the full collection, never the filtered view.
func StatCards(theme themes.Theme, counts engine.Counts) string {
	cards := []struct {
		label string
		value int
	}{
		{"Total", counts.All},
		{"Today", counts.Today},
		{"Last 7 days", counts.Last7Days},
	}

	rendered := make([]string, 0, len(cards))
	for _, c := range cards {
		body := lipgloss.JoinVertical(lipgloss.Left,
			theme.CardLabel.Render(c.label),
			theme.CardValue.Render(fmt.Sprintf("%d", c.value)),
		)
		rendered = append(rendered, theme.Card.Render(body))
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

// CategoryBadges renders the category filter bar. The active category is
// highlighted; "all" is always first.
func CategoryBadges(theme themes.Theme, categories []string, counts engine.Counts, active string) string {
	badges := make([]string, 0, len(categories)+1)

	allLabel := fmt.Sprintf("all (%d)", counts.All)
	if active == engine.FilterAll {
		badges = append(badges, theme.BadgeActive.Render(allLabel))
	} else {
		badges = append(badges, theme.Badge.Render(allLabel))
	}

	for _, category := range categories {
		label := fmt.Sprintf("%s (%d)", category, counts.ByCategory[category])
		if category == active {
			badges = append(badges, theme.BadgeActive.Render(label))
		} else {
			badges = append(badges, theme.Badge.Render(label))
		}
	}

	return strings.Join(badges, " ")
}
