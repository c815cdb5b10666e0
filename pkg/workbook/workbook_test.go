package workbook

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func writeFixture(t *testing.T, sheet string, rows [][]any) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	_, err := f.NewSheet(sheet)
	require.NoError(t, err)
	require.NoError(t, f.DeleteSheet("Sheet1"))
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}

	path := filepath.Join(t.TempDir(), "fixture.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func TestReadSheetSkipsGroupingRow(t *testing.T) {
	path := writeFixture(t, "Imoveis", [][]any{
		{"Negócio", "", "CRM"},
		{"Data", "Corretor", "Faturamento"},
		{"05/01/2026", "Ana", "1500"},
		{"15/02/2026", "Bruno", "2000"},
	})

	table, err := ReadSheet(path, "Imoveis")
	require.NoError(t, err)

	assert.Equal(t, []string{"Data", "Corretor", "Faturamento"}, table.Columns)
	require.Len(t, table.Rows, 2)
	assert.Equal(t, []string{"05/01/2026", "Ana", "1500"}, table.Rows[0])
}

func TestReadSheetPadsShortRows(t *testing.T) {
	path := writeFixture(t, "Veiculos", [][]any{
		{"grupo"},
		{"Data", "Placa", "Valor R$"},
		{"05/01/2026"},
	})

	table, err := ReadSheet(path, "Veiculos")
	require.NoError(t, err)
	require.Len(t, table.Rows, 1)
	assert.Equal(t, []string{"05/01/2026", "", ""}, table.Rows[0])
}

func TestReadSheetMissingSheet(t *testing.T) {
	path := writeFixture(t, "Imoveis", [][]any{
		{"grupo"},
		{"Data"},
	})

	_, err := ReadSheet(path, "Carbuy")
	assert.Error(t, err)
}

func TestReadSheetUnsupportedFormat(t *testing.T) {
	_, err := ReadSheet("planilha.ods", "Imoveis")
	assert.ErrorContains(t, err, "unsupported spreadsheet format")
}
