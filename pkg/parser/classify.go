package parser

import (
	"strings"

	"github.com/grupobu/tabelao/pkg/textutil"
)

// Kind is the semantic kind of a column, derived from its header.
type Kind int

const (
	KindPlain Kind = iota
	KindDate
	KindMoney
	KindPercentage
	KindEfficiency
)

func (k Kind) String() string {
	switch k {
	case KindDate:
		return "date"
	case KindMoney:
		return "money"
	case KindPercentage:
		return "percentage"
	case KindEfficiency:
		return "efficiency"
	default:
		return "plain"
	}
}

// DateAliases are the header names, in priority order, that name the
// date column outright. The transformer falls back to value sampling
// when none of them appears.
var DateAliases = []string{"data", "data venda", "data compra", "data cotacao", "cotacao", "dt"}

// Rule maps a predicate over the normalized header to a kind. Rules are
// evaluated in order and the first match wins, so precedence lives in
// the slice layout rather than in nested conditionals.
type Rule struct {
	Name  string
	Match func(normalized string) bool
	Kind  Kind
}

// Classifier resolves column headers to semantic kinds.
type Classifier struct {
	rules []Rule
}

// NewClassifier builds the default rule table. The efficiency rule must
// stay ahead of the money rule: a header like "Eficiência R$/lead"
// matches both and is an efficiency column. moneyAliases extends the
// exact-name money matches ("faturamento" is always included).
func NewClassifier(moneyAliases ...string) *Classifier {
	exactMoney := map[string]bool{"faturamento": true}
	for _, a := range moneyAliases {
		exactMoney[textutil.Normalize(a)] = true
	}
	dateAlias := map[string]bool{}
	for _, a := range DateAliases {
		dateAlias[a] = true
	}

	return &Classifier{rules: []Rule{
		{
			Name:  "date-alias",
			Match: func(h string) bool { return dateAlias[h] },
			Kind:  KindDate,
		},
		{
			Name:  "efficiency-token",
			Match: func(h string) bool { return strings.Contains(h, "eficiencia") },
			Kind:  KindEfficiency,
		},
		{
			Name:  "ratio-token",
			Match: func(h string) bool { return strings.Contains(h, "%") || h == "roi" },
			Kind:  KindPercentage,
		},
		{
			Name:  "currency-token",
			Match: func(h string) bool { return strings.Contains(h, "r$") || exactMoney[h] },
			Kind:  KindMoney,
		},
	}}
}

// Classify normalizes the header and runs the rule table.
func (c *Classifier) Classify(header string) Kind {
	h := textutil.Normalize(header)
	for _, r := range c.rules {
		if r.Match(h) {
			return r.Kind
		}
	}
	return KindPlain
}
