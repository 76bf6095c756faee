package excel

import (
	"fmt"
	"sort"
	"strings"
)

// summaryMaxRows bounds how many rows of a sheet reach the model context:
// the header row plus up to four data rows.
const summaryMaxRows = 5

// Summarize renders a bounded textual digest of the read sheets, suitable
// for appending to the conversation context instead of the full file. Sheet
// names are sorted so the digest is stable.
func Summarize(sheets Sheets) string {
	names := make([]string, 0, len(sheets))
	for name := range sheets {
		names = append(names, name)
	}
	sort.Strings(names)

	var sb strings.Builder
	for _, name := range names {
		rows := sheets[name]
		fmt.Fprintf(&sb, "Hoja: %s (%d filas)\n", name, len(rows))

		if len(rows) > 0 {
			sb.WriteString("Encabezados: ")
			sb.WriteString(strings.Join(rows[0], ", "))
			sb.WriteString("\n")
		}

		maxRows := len(rows)
		if maxRows > summaryMaxRows {
			maxRows = summaryMaxRows
		}
		if maxRows > 1 {
			sb.WriteString("Primeras filas de datos:\n")
			for i := 1; i < maxRows; i++ {
				fmt.Fprintf(&sb, "  %s\n", strings.Join(rows[i], ", "))
			}
		}
	}
	return sb.String()
}
