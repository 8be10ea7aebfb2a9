package fileio

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// readJSON accepts either {"names": ["...", ...]} or a list of objects
// carrying a "names" field, and returns the names in document order.
func readJSON(r io.Reader) ([]string, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	var obj struct {
		Names []string `json:"names"`
	}
	if err := json.Unmarshal(b, &obj); err == nil && obj.Names != nil {
		return cleanNames(obj.Names)
	}

	var list []map[string]any
	if err := json.Unmarshal(b, &list); err == nil {
		var names []string
		for _, rec := range list {
			if v, ok := rec[namesColumn].(string); ok {
				names = append(names, v)
			}
		}
		if names != nil {
			return cleanNames(names)
		}
	}

	return nil, fmt.Errorf("invalid JSON: expected a %q field with a list of names", namesColumn)
}

func cleanNames(in []string) ([]string, error) {
	var out []string
	for _, n := range in {
		if n = strings.TrimSpace(n); n != "" {
			out = append(out, n)
		}
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no names found in %q field", namesColumn)
	}
	return out, nil
}
