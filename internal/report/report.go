// Package report renders checksum and perimeter results for the terminal.
package report

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/rail44/drills/internal/config"
)

// LuhnResult is the outcome of checking one number
type LuhnResult struct {
	Input      string
	Normalized string
	Valid      bool
}

// PerimeterResult is the perimeter of one named shape
type PerimeterResult struct {
	Source    string
	Name      string
	Kind      string
	Perimeter float64
}

var (
	validStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	invalidStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// Renderer formats results as plain or styled text
type Renderer struct {
	Styled    bool
	Precision int
}

// Luhn renders one line per checked number
func (r Renderer) Luhn(results []LuhnResult) string {
	var s strings.Builder
	for _, res := range results {
		mark, verdict, style := "✓", "valid", validStyle
		if !res.Valid {
			mark, verdict, style = "✗", "invalid", invalidStyle
		}
		s.WriteString(r.render(style, mark+" "+verdict))
		s.WriteString("  ")
		s.WriteString(res.Input)
		if res.Normalized != "" && res.Normalized != res.Input {
			s.WriteString(" ")
			s.WriteString(r.render(dimStyle, "("+res.Normalized+")"))
		}
		s.WriteString("\n")
	}
	return s.String()
}

// Perimeters renders each run of results from one source as a section
// closed by that run's total
func (r Renderer) Perimeters(results []PerimeterResult) string {
	var s strings.Builder

	nameWidth := 0
	for _, res := range results {
		nameWidth = max(nameWidth, lipgloss.Width(res.Name))
	}

	for i, group := range Groups(results) {
		if i > 0 {
			s.WriteString("\n")
		}
		s.WriteString(r.render(headerStyle, group[0].Source))
		s.WriteString("\n")

		for _, res := range group {
			fmt.Fprintf(&s, "  %-*s  %s  %s\n",
				nameWidth, res.Name,
				r.render(dimStyle, fmt.Sprintf("%-7s", res.Kind)),
				r.Format(res.Perimeter))
		}

		fmt.Fprintf(&s, "  %-*s  %s  %s\n",
			nameWidth, "",
			r.render(dimStyle, "total  "),
			r.render(headerStyle, r.Format(Total(group))))
	}
	return s.String()
}

// Format prints a perimeter with the configured number of decimals
func (r Renderer) Format(v float64) string {
	return strconv.FormatFloat(v, 'f', r.Precision, 64)
}

func (r Renderer) render(style lipgloss.Style, s string) string {
	if !r.Styled {
		return s
	}
	return style.Render(s)
}

// Groups splits results into runs of consecutive entries sharing a source.
// A file given twice on the command line yields two groups.
func Groups(results []PerimeterResult) [][]PerimeterResult {
	var groups [][]PerimeterResult
	start := 0
	for i := 1; i <= len(results); i++ {
		if i == len(results) || results[i].Source != results[start].Source {
			groups = append(groups, results[start:i])
			start = i
		}
	}
	return groups
}

// Total sums the perimeters of results
func Total(results []PerimeterResult) float64 {
	var sum float64
	for _, res := range results {
		sum += res.Perimeter
	}
	return sum
}

// ColorEnabled resolves a color mode against the file output goes to
func ColorEnabled(mode string, f *os.File) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	default:
		return f != nil && term.IsTerminal(int(f.Fd()))
	}
}
