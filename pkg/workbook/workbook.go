package workbook

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/extrame/xls"
	"github.com/xuri/excelize/v2"

	"github.com/grupobu/tabelao/pkg/models"
)

// The first sheet row is a grouping band (Negócio/CRM/Mídia) and is
// discarded; headers live on the second row.
const headerRowIndex = 1

// ReadSheet loads one named sheet from an .xlsx or legacy .xls workbook
// into a raw table. Rows are padded to the header width so downstream
// code can index columns positionally.
func ReadSheet(path, sheet string) (*models.Table, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".xlsx", ".xlsm":
		return readXLSX(path, sheet)
	case ".xls":
		return readXLS(path, sheet)
	default:
		return nil, fmt.Errorf("unsupported spreadsheet format %q", ext)
	}
}

func readXLSX(path, sheet string) (*models.Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening workbook: %w", err)
	}
	defer f.Close()

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("reading sheet %q: %w", sheet, err)
	}
	return tableFromRows(sheet, rows)
}

func readXLS(path, sheet string) (*models.Table, error) {
	wb, err := xls.Open(path, "cp1252")
	if err != nil {
		return nil, fmt.Errorf("opening workbook: %w", err)
	}

	for i := 0; i < wb.NumSheets(); i++ {
		s := wb.GetSheet(i)
		if s == nil || s.Name != sheet {
			continue
		}
		rows := make([][]string, 0, int(s.MaxRow)+1)
		for r := 0; r <= int(s.MaxRow); r++ {
			row := s.Row(r)
			if row == nil {
				rows = append(rows, nil)
				continue
			}
			cells := make([]string, row.LastCol())
			for c := 0; c < row.LastCol(); c++ {
				cells[c] = row.Col(c)
			}
			rows = append(rows, cells)
		}
		return tableFromRows(sheet, rows)
	}
	return nil, fmt.Errorf("sheet %q not found in workbook", sheet)
}

func tableFromRows(sheet string, rows [][]string) (*models.Table, error) {
	if len(rows) <= headerRowIndex {
		return nil, fmt.Errorf("sheet %q has no header row", sheet)
	}

	columns := rows[headerRowIndex]
	table := &models.Table{Columns: columns}
	for _, raw := range rows[headerRowIndex+1:] {
		row := make([]string, len(columns))
		copy(row, raw)
		table.Rows = append(table.Rows, row)
	}
	return table, nil
}
