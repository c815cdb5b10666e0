package models

// Table is one BU sheet as read from the workbook: ordered column
// headers plus rows of raw cell text. It is the immutable input of the
// transform pipeline; cells keep whatever text the workbook reader
// produced.
type Table struct {
	Columns []string
	Rows    [][]string
}

// Row is a cleaned row: original column name → JSON-safe value (string,
// json.Number, or "" for missing).
type Row map[string]any

// MonthNone is the partition key for rows of a BU that has no
// detectable date column. It never appears in the manifest months list.
const MonthNone = "sem-data"
