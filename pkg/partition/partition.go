package partition

import (
	"fmt"
	"sort"
	"time"

	"github.com/grupobu/tabelao/pkg/models"
)

// Chunk is a bounded slice of one BU's one-month rows, destined for a
// single output file.
type Chunk struct {
	BU    string
	Month string
	Index int // 1-based
	File  string
	Rows  []models.Row
}

// ChunkFile names a chunk deterministically so reruns overwrite in
// place.
func ChunkFile(bu, month string, index int) string {
	return fmt.Sprintf("%s_%s_part%d.json", bu, month, index)
}

// Split groups rows by month key, preserving original row order inside
// each group, and slices every group into chunks of at most maxRows.
// monthKeys must be parallel to rows. Months are emitted in order of
// first appearance, which keeps output deterministic for a given sheet.
func Split(bu string, rows []models.Row, monthKeys []string, maxRows int) []Chunk {
	groups := make(map[string][]models.Row)
	var order []string
	for i, row := range rows {
		key := monthKeys[i]
		if _, seen := groups[key]; !seen {
			order = append(order, key)
		}
		groups[key] = append(groups[key], row)
	}

	var chunks []Chunk
	for _, month := range order {
		group := groups[month]
		for start, index := 0, 1; start < len(group); start, index = start+maxRows, index+1 {
			end := start + maxRows
			if end > len(group) {
				end = len(group)
			}
			chunks = append(chunks, Chunk{
				BU:    bu,
				Month: month,
				Index: index,
				File:  ChunkFile(bu, month, index),
				Rows:  group[start:end],
			})
		}
	}
	return chunks
}

// ManifestBuilder accumulates chunk metadata across BUs and produces
// the run manifest.
type ManifestBuilder struct {
	source  string
	months  map[string]bool
	files   map[string]map[string][]models.ChunkRef
	dropped map[string]int
	now     func() time.Time
}

func NewManifestBuilder(source string) *ManifestBuilder {
	return &ManifestBuilder{
		source:  source,
		months:  make(map[string]bool),
		files:   make(map[string]map[string][]models.ChunkRef),
		dropped: make(map[string]int),
		now:     time.Now,
	}
}

// AddChunks records one BU's chunks. The no-month sentinel gets file
// entries but never joins the months list: it must not show up in the
// month selector.
func (b *ManifestBuilder) AddChunks(chunks []Chunk) {
	for _, c := range chunks {
		if c.Month != models.MonthNone {
			b.months[c.Month] = true
		}
		if b.files[c.BU] == nil {
			b.files[c.BU] = make(map[string][]models.ChunkRef)
		}
		b.files[c.BU][c.Month] = append(b.files[c.BU][c.Month], models.ChunkRef{
			File: c.File,
			Rows: len(c.Rows),
		})
	}
}

// AddDropped records how many rows a BU lost to the unparseable-date
// gate.
func (b *ManifestBuilder) AddDropped(bu string, n int) {
	b.dropped[bu] = n
}

// Build assembles the manifest. The months list is the union across
// BUs, sorted ascending; YYYY-MM keys sort correctly as strings.
func (b *ManifestBuilder) Build() *models.Manifest {
	months := make([]string, 0, len(b.months))
	for m := range b.months {
		months = append(months, m)
	}
	sort.Strings(months)

	return &models.Manifest{
		GeneratedAt: b.now().Format(time.RFC3339),
		Source:      b.source,
		Months:      months,
		Files:       b.files,
		DroppedRows: b.dropped,
	}
}
