package render

import (
	"embed"
	"encoding/json"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/grupobu/tabelao/pkg/models"
	"github.com/grupobu/tabelao/pkg/parser"
)

//go:embed templates/dashboard.html.tmpl
var templateFS embed.FS

var pageTemplate = template.Must(template.ParseFS(templateFS, "templates/dashboard.html.tmpl"))

// BUTable is one business unit ready for rendering: cleaned rows plus
// the column kinds needed to format cells for display.
type BUTable struct {
	Key       string
	Label     string
	Columns   []string
	Kinds     map[string]parser.Kind
	Rows      []models.Row
	MonthKeys []string
}

type monthOption struct {
	Value string
	Label string
}

type rowView struct {
	Month string
	Cells []string
}

type buView struct {
	Label   string
	TabID   string
	Columns []string
	Rows    []rowView
}

type pageData struct {
	Source  string
	Updated string
	Months  []monthOption
	BUs     []buView
}

// HTML writes the single self-contained dashboard page as index.html.
// months is the sorted union of month keys across all BUs.
func HTML(outDir, source string, tables []BUTable, months []string) error {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	data := pageData{
		Source:  source,
		Updated: time.Now().Format("02/01/2006 15:04"),
	}
	for _, m := range months {
		data.Months = append(data.Months, monthOption{Value: m, Label: MonthLabel(m)})
	}
	for _, t := range tables {
		data.BUs = append(data.BUs, buViewFrom(t))
	}

	out, err := os.Create(filepath.Join(outDir, "index.html"))
	if err != nil {
		return fmt.Errorf("creating index.html: %w", err)
	}
	defer out.Close()

	if err := pageTemplate.Execute(out, data); err != nil {
		return fmt.Errorf("rendering page: %w", err)
	}
	return nil
}

func buViewFrom(t BUTable) buView {
	view := buView{
		Label:   t.Label,
		TabID:   "tab-" + t.Key,
		Columns: t.Columns,
	}
	for i, row := range t.Rows {
		month := t.MonthKeys[i]
		if month == models.MonthNone {
			month = ""
		}
		rv := rowView{Month: month, Cells: make([]string, len(t.Columns))}
		for c, name := range t.Columns {
			rv.Cells[c] = displayCell(row[name], t.Kinds[name])
		}
		view.Rows = append(view.Rows, rv)
	}
	return view
}

// displayCell renders one cleaned value for the HTML table. Empty money
// cells show R$ 0,00 and empty ratio cells show "-", matching the
// dashboard the report replaces.
func displayCell(v any, kind parser.Kind) string {
	switch kind {
	case parser.KindMoney:
		if n, ok := v.(json.Number); ok {
			return formatMoneyBR(n)
		}
		if s, _ := v.(string); s == "" {
			return "R$ 0,00"
		}
		return fmt.Sprint(v)
	case parser.KindPercentage, parser.KindEfficiency:
		if s, _ := v.(string); s == "" {
			return "-"
		}
		return fmt.Sprint(v)
	default:
		return fmt.Sprint(v)
	}
}

// formatMoneyBR renders a rounded decimal as "R$ 1.234.567,89". The
// json.Number text is exact, so the grouping is pure string work.
func formatMoneyBR(n json.Number) string {
	d, err := decimal.NewFromString(n.String())
	if err != nil {
		return n.String()
	}

	text := d.StringFixed(2)
	negative := strings.HasPrefix(text, "-")
	text = strings.TrimPrefix(text, "-")
	intPart, fracPart, _ := strings.Cut(text, ".")

	var groups []string
	for len(intPart) > 3 {
		groups = append([]string{intPart[len(intPart)-3:]}, groups...)
		intPart = intPart[:len(intPart)-3]
	}
	groups = append([]string{intPart}, groups...)

	sign := ""
	if negative {
		sign = "-"
	}
	return fmt.Sprintf("R$ %s%s,%s", sign, strings.Join(groups, "."), fracPart)
}

// MonthLabel turns a YYYY-MM key into the MM/YYYY label the month
// selector shows.
func MonthLabel(ym string) string {
	if len(ym) != 7 || ym[4] != '-' {
		return ym
	}
	return ym[5:] + "/" + ym[:4]
}
