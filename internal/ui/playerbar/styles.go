package playerbar

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/chapters/internal/ui/styles"
)

func barStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(styles.T().Border)
}

func titleStyle() lipgloss.Style {
	return styles.T().S().Title
}

func artistStyle() lipgloss.Style {
	return styles.T().S().Muted
}

func chapterStyle() lipgloss.Style {
	return styles.T().S().Playing
}

func markerStyle() lipgloss.Style {
	return styles.T().S().Marker
}

func progressFilledStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(styles.T().Primary)
}

func progressEmptyStyle() lipgloss.Style {
	return styles.T().S().Subtle
}
