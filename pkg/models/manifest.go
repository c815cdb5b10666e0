package models

// ChunkRef points at one persisted chunk file and its row count.
type ChunkRef struct {
	File string `json:"file"`
	Rows int    `json:"rows"`
}

// Manifest indexes every chunk a JSON-mode run produced. The front end
// fetches it first and uses it to resolve which files cover a given
// (BU, month) selection.
type Manifest struct {
	GeneratedAt string                           `json:"generated_at"`
	Source      string                           `json:"source"`
	Months      []string                         `json:"months"`
	Files       map[string]map[string][]ChunkRef `json:"files"`
	DroppedRows map[string]int                   `json:"dropped_rows"`
}

// TotalRows sums the manifest row counts for one BU and month.
func (m *Manifest) TotalRows(bu, month string) int {
	total := 0
	for _, ref := range m.Files[bu][month] {
		total += ref.Rows
	}
	return total
}
