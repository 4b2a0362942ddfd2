package macros

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	colorHeader = lipgloss.Color("#89b4fa")
	colorDate   = lipgloss.Color("#7f849c")
	colorCals   = lipgloss.Color("#fab387")
	colorMacro  = lipgloss.Color("#cdd6f4")
	colorSubtle = lipgloss.Color("#6c7086")
)

// Render formats every meal for the console, one block per meal.
func Render(db *Database) string {
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Foreground(colorHeader).Bold(true).Render(fmt.Sprintf("Meals (%d)", db.Len())))
	b.WriteByte('\n')
	if db.Len() == 0 {
		b.WriteString(lipgloss.NewStyle().Foreground(colorSubtle).Render("  no meals logged"))
		b.WriteByte('\n')
		return b.String()
	}
	for _, m := range db.meals {
		b.WriteString(renderMeal(m))
		b.WriteByte('\n')
	}
	return b.String()
}

func renderMeal(m Meal) string {
	date := lipgloss.NewStyle().Foreground(colorDate).Render("Meal (" + m.Date.String() + ")")
	cals := lipgloss.NewStyle().Foreground(colorCals).Render(fmt.Sprintf("cals: %d", m.Macro.Calories))
	rest := lipgloss.NewStyle().Foreground(colorMacro).Render(
		fmt.Sprintf("protein: %d, fat: %d, carbs: %d", m.Macro.Protein, m.Macro.Fat, m.Macro.Carbs))
	return date + "\n" + cals + ", " + rest
}
