package transform

import (
	"encoding/json"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/grupobu/tabelao/pkg/models"
	"github.com/grupobu/tabelao/pkg/parser"
	"github.com/grupobu/tabelao/pkg/textutil"
)

// Date-column sampling fallback: a column qualifies when at least
// sampleFraction of its first sampleSize values parse as dates, with an
// absolute floor of sampleMinHits.
const (
	sampleSize     = 50
	sampleFraction = 0.30
	sampleMinHits  = 5
)

// Result is a cleaned, JSON-safe table plus the per-row month keys that
// drive partitioning.
type Result struct {
	Columns    []string
	Kinds      map[string]parser.Kind
	Rows       []models.Row
	MonthKeys  []string
	DateColumn string
	Dropped    int
}

// Transformer applies column classification and value parsing to raw
// tables.
type Transformer struct {
	classifier  *parser.Classifier
	defaultYear int
	maxRows     int
	logger      *log.Logger
}

func New(defaultYear, maxRows int, moneyAliases []string, logger *log.Logger) *Transformer {
	return &Transformer{
		classifier:  parser.NewClassifier(moneyAliases...),
		defaultYear: defaultYear,
		maxRows:     maxRows,
		logger:      logger,
	}
}

// Transform cleans one BU table. Rows whose date fails to parse while a
// date column exists are dropped and counted: bad dates would otherwise
// leak rows into every month view, so the gate is strict, and the count
// is surfaced in the manifest.
func (t *Transformer) Transform(table *models.Table) *Result {
	keep := keptColumns(table)

	res := &Result{
		Kinds: make(map[string]parser.Kind, len(keep)),
	}
	for _, c := range keep {
		name := table.Columns[c]
		res.Columns = append(res.Columns, name)
		res.Kinds[name] = t.classifier.Classify(name)
	}

	dateCol := t.findDateColumn(table, keep, res.Kinds)
	if dateCol >= 0 {
		res.DateColumn = table.Columns[dateCol]
		res.Kinds[res.DateColumn] = parser.KindDate
	}

	for i, raw := range table.Rows {
		if t.maxRows > 0 && len(res.Rows) >= t.maxRows {
			break
		}

		month := models.MonthNone
		var display string
		if dateCol >= 0 {
			d, ok := parser.ParseDate(cell(raw, dateCol), t.defaultYear)
			if !ok {
				res.Dropped++
				t.logger.Debug("row dropped, unparseable date", "row", i, "value", cell(raw, dateCol))
				continue
			}
			// Display and partition key come from the same parse.
			display = parser.DisplayDate(d)
			month = parser.MonthKey(d)
		}

		row := make(models.Row, len(keep))
		for _, c := range keep {
			name := table.Columns[c]
			if c == dateCol {
				row[name] = display
				continue
			}
			row[name] = cleanValue(cell(raw, c), res.Kinds[name], t.defaultYear)
		}
		res.Rows = append(res.Rows, row)
		res.MonthKeys = append(res.MonthKeys, month)
	}

	return res
}

// keptColumns drops auto-generated placeholder headers (pandas-style
// "Unnamed: N" artifacts and blank names) and columns with no data.
func keptColumns(table *models.Table) []int {
	var keep []int
	for c, name := range table.Columns {
		n := textutil.Normalize(name)
		if n == "" || strings.HasPrefix(n, "unnamed") {
			continue
		}
		if columnEmpty(table, c) {
			continue
		}
		keep = append(keep, c)
	}
	return keep
}

func columnEmpty(table *models.Table, c int) bool {
	for _, row := range table.Rows {
		if strings.TrimSpace(cell(row, c)) != "" {
			return false
		}
	}
	return true
}

// findDateColumn tries the known header aliases in priority order, then
// falls back to sampling values of every kept column.
func (t *Transformer) findDateColumn(table *models.Table, keep []int, kinds map[string]parser.Kind) int {
	for _, alias := range parser.DateAliases {
		for _, c := range keep {
			if textutil.Normalize(table.Columns[c]) == alias {
				return c
			}
		}
	}

	for _, c := range keep {
		if kinds[table.Columns[c]] != parser.KindPlain {
			continue
		}
		sampled, hits := 0, 0
		for _, row := range table.Rows {
			if sampled == sampleSize {
				break
			}
			v := cell(row, c)
			if strings.TrimSpace(v) == "" {
				continue
			}
			sampled++
			if _, ok := parser.ParseDate(v, t.defaultYear); ok {
				hits++
			}
		}
		if hits >= sampleMinHits && float64(hits) >= sampleFraction*float64(sampled) {
			t.logger.Info("date column detected by sampling", "column", table.Columns[c], "hits", hits, "sampled", sampled)
			return c
		}
	}
	return -1
}

// cleanValue coerces one cell to its JSON-safe form. Money becomes a
// json.Number carrying exactly the rounded decimal text, ratios become
// their formatted percent string, everything else stays a trimmed
// string. Unparseable non-blank values pass through untouched rather
// than being zeroed.
func cleanValue(raw string, kind parser.Kind, defaultYear int) any {
	s := strings.TrimSpace(raw)
	switch kind {
	case parser.KindMoney:
		if parser.IsAbsent(s) {
			return ""
		}
		if d, ok := parser.ParseMoney(s); ok {
			return json.Number(d.StringFixed(2))
		}
		return s
	case parser.KindPercentage, parser.KindEfficiency:
		if parser.IsAbsent(s) {
			return ""
		}
		if d, ok := parser.ParseRatio(s); ok {
			return parser.FormatRatio(d)
		}
		return s
	case parser.KindDate:
		if d, ok := parser.ParseDate(s, defaultYear); ok {
			return parser.DisplayDate(d)
		}
		return s
	default:
		return s
	}
}

func cell(row []string, c int) string {
	if c < 0 || c >= len(row) {
		return ""
	}
	return row[c]
}
