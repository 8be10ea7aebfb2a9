package fileio

import (
	"fmt"
	"regexp"
	"strings"
)

// namesColumn is the required column/field in uploaded files.
const namesColumn = "names"

var headerJunk = regexp.MustCompile(`[^\p{L}\p{N}]+`)

// normHeaderKey makes header comparison tolerant of case, NBSP and
// punctuation noise ("Names ", "NAMES", "names:" all match).
func normHeaderKey(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.NewReplacer("\u00A0", " ", "\u202F", " ").Replace(s) // NBSP/NNBSP
	s = headerJunk.ReplaceAllString(s, " ")
	return strings.Join(strings.Fields(s), " ")
}

// extractNames pulls the "names" column out of the parsed records,
// preserving row order and dropping blank cells.
func extractNames(rows []map[string]string) ([]string, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("file has no data rows")
	}

	key := ""
	for k := range rows[0] {
		if normHeaderKey(k) == namesColumn {
			key = k
			break
		}
	}
	if key == "" {
		return nil, fmt.Errorf("file must contain a %q column", namesColumn)
	}

	var names []string
	for _, rec := range rows {
		if v := strings.TrimSpace(rec[key]); v != "" {
			names = append(names, v)
		}
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("no names found in %q column", namesColumn)
	}
	return names, nil
}
