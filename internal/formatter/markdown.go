package formatter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rail44/drills/internal/report"
)

// LuhnMarkdown renders checked numbers as a Markdown table
func LuhnMarkdown(results []report.LuhnResult) string {
	var formatted strings.Builder

	formatted.WriteString("| Number | Digits | Valid |\n")
	formatted.WriteString("|---|---|---|\n")
	for _, res := range results {
		valid := "no"
		if res.Valid {
			valid = "yes"
		}
		formatted.WriteString(fmt.Sprintf("| `%s` | `%s` | %s |\n", escape(res.Input), escape(res.Normalized), valid))
	}

	return formatted.String()
}

// PerimetersMarkdown renders one section per run of results from a source
func PerimetersMarkdown(results []report.PerimeterResult, precision int) string {
	var formatted strings.Builder

	for i, group := range report.Groups(results) {
		if i > 0 {
			formatted.WriteString("\n")
		}
		formatted.WriteString(fmt.Sprintf("### %s\n\n", group[0].Source))
		formatted.WriteString("| Shape | Kind | Perimeter |\n")
		formatted.WriteString("|---|---|---:|\n")

		for _, res := range group {
			formatted.WriteString(fmt.Sprintf("| %s | %s | %s |\n",
				escape(res.Name), res.Kind, strconv.FormatFloat(res.Perimeter, 'f', precision, 64)))
		}

		total := report.Total(group)
		formatted.WriteString(fmt.Sprintf("| **total** | | **%s** |\n", strconv.FormatFloat(total, 'f', precision, 64)))
	}

	return formatted.String()
}

// escape keeps user text from breaking the table layout
func escape(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
