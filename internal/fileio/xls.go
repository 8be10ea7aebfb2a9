// Legacy .xls reader: the library's Row.LastCol() is unreliable, so the
// table width is fixed up-front and every cell up to it is read.
package fileio

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	xls "github.com/extrame/xls"
)

func cell(v string) string { return strings.TrimSpace(v) }

// computeMaxCols probes a bounded number of columns per row for the
// widest non-empty span.
func computeMaxCols(sheet *xls.WorkSheet) int {
	const probeMax = 512
	maxCols := 0
	for i := 0; i <= int(sheet.MaxRow); i++ {
		r := sheet.Row(i)
		if r == nil {
			continue
		}
		for j := 0; j < probeMax; j++ {
			if cell(r.Col(j)) != "" && j+1 > maxCols {
				maxCols = j + 1
			}
		}
	}
	if maxCols == 0 {
		maxCols = 1
	}
	return maxCols
}

func readXLS(r io.Reader) ([]map[string]string, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	// legacy exports vary: try cp1251, UTF-8, KOI8-R
	var wb *xls.WorkBook
	var lastErr error
	for _, ch := range []string{"windows-1251", "utf-8", "koi8-r"} {
		wb, err = xls.OpenReader(bytes.NewReader(b), ch)
		if err == nil && wb != nil {
			lastErr = nil
			break
		}
		lastErr = err
	}
	if wb == nil {
		if lastErr == nil {
			lastErr = errors.New("failed to open workbook")
		}
		return nil, fmt.Errorf("invalid XLS: %w", lastErr)
	}

	sheet := wb.GetSheet(0)
	if sheet == nil {
		return nil, fmt.Errorf("XLS file has no sheets")
	}

	maxCols := computeMaxCols(sheet)
	rows := make([][]string, 0, int(sheet.MaxRow)+1)
	for i := 0; i <= int(sheet.MaxRow); i++ {
		row := sheet.Row(i)
		cols := make([]string, maxCols)
		if row != nil {
			for j := 0; j < maxCols; j++ {
				cols[j] = cell(row.Col(j))
			}
		}
		rows = append(rows, cols)
	}

	h := pickHeader(rows)
	return rowsToMaps(rows, h), nil
}
