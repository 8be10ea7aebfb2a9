package fileio

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
)

// ReadNames picks a parser by extension and returns the ordered list of
// raw names from the file's "names" column/field.
func ReadNames(r io.Reader, filename string) ([]string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".json":
		return readJSON(r)
	case ".csv", ".xlsx", ".xls":
		rows, err := readTable(r, ext)
		if err != nil {
			return nil, err
		}
		return extractNames(rows)
	default:
		return nil, fmt.Errorf("unsupported file type %q: use CSV, JSON, XLSX or XLS with a %q column", ext, namesColumn)
	}
}

func readTable(r io.Reader, ext string) ([]map[string]string, error) {
	switch ext {
	case ".xlsx":
		return readXLSX(r)
	case ".xls":
		return readXLS(r)
	default:
		return readCSV(r)
	}
}

// pickHeader takes the first row as headers, substituting Column N for
// blanks.
func pickHeader(rows [][]string) []string {
	h := rows[0]
	out := make([]string, len(h))
	for i, v := range h {
		v = strings.TrimSpace(v)
		if v == "" {
			v = fmt.Sprintf("Column %d", i+1)
		}
		out[i] = v
	}
	return out
}

// rowsToMaps converts the AoA into header-keyed records, skipping fully
// empty rows.
func rowsToMaps(rows [][]string, headers []string) []map[string]string {
	var out []map[string]string
	for r := 1; r < len(rows); r++ {
		rec := rows[r]
		m := map[string]string{}
		for c := 0; c < len(headers); c++ {
			var v string
			if c < len(rec) {
				v = rec[c]
			}
			m[headers[c]] = v
		}
		empty := true
		for _, v := range m {
			if strings.TrimSpace(v) != "" {
				empty = false
				break
			}
		}
		if !empty {
			out = append(out, m)
		}
	}
	return out
}
