// Package report renders statistics snapshots for people and programs.
package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/fjacquet/fincontroller/internal/currencyutils"
	"github.com/fjacquet/fincontroller/internal/dateutils"
	"github.com/fjacquet/fincontroller/internal/logging"
	"github.com/fjacquet/fincontroller/internal/models"
	"github.com/fjacquet/fincontroller/internal/statistics"
	"gopkg.in/yaml.v3"
)

// Report formats
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// topCategories is how many categories the kind overview lists.
const topCategories = 3

// Period is the date span covered by a report.
type Period struct {
	Start time.Time
	End   time.Time
}

// Generator renders snapshots in the supported formats.
type Generator struct {
	logger logging.Logger
}

// NewGenerator creates a Generator.
func NewGenerator(logger logging.Logger) *Generator {
	return &Generator{
		logger: logging.OrDiscard(logger).WithField(logging.FieldComponent, "ReportGenerator"),
	}
}

// Generate renders snap. A nil period means the list was empty.
func (g *Generator) Generate(snap statistics.Snapshot, period *Period, format string) ([]byte, error) {
	switch format {
	case FormatText, "":
		return g.generateTextReport(snap, period), nil
	case FormatJSON:
		return g.generateJSONReport(newDocument(snap, period))
	case FormatYAML:
		return g.generateYAMLReport(newDocument(snap, period))
	default:
		return nil, fmt.Errorf("unsupported report format: %s", format)
	}
}

func (g *Generator) generateJSONReport(doc Document) ([]byte, error) {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		g.logger.WithError(err).Error("Failed to marshal JSON report")
		return nil, fmt.Errorf("failed to marshal JSON report: %w", err)
	}
	return append(data, '\n'), nil
}

func (g *Generator) generateYAMLReport(doc Document) ([]byte, error) {
	data, err := yaml.Marshal(doc)
	if err != nil {
		g.logger.WithError(err).Error("Failed to marshal YAML report")
		return nil, fmt.Errorf("failed to marshal YAML report: %w", err)
	}
	return data, nil
}

func (g *Generator) generateTextReport(snap statistics.Snapshot, period *Period) []byte {
	var buf bytes.Buffer

	buf.WriteString("Relatório financeiro\n")
	if period != nil {
		fmt.Fprintf(&buf, "Período: %s a %s\n",
			dateutils.FormatDate(period.Start, dateutils.LayoutBR),
			dateutils.FormatDate(period.End, dateutils.LayoutBR))
	} else {
		buf.WriteString("Período: -\n")
	}
	fmt.Fprintf(&buf, "Transações: %d\n", snap.TransactionCount)
	fmt.Fprintf(&buf, "Saldo: %s\n", currencyutils.FormatAmount(snap.Balance))

	writeKindSection(&buf, "Receitas", "Nenhuma receita encontrada", snap.Income)
	writeKindSection(&buf, "Despesas", "Nenhuma despesa encontrada", snap.Expense)

	return buf.Bytes()
}

func writeKindSection(buf *bytes.Buffer, title, emptyMessage string, s statistics.KindSummary) {
	fmt.Fprintf(buf, "\n%s\n%s\n", title, strings.Repeat("-", len([]rune(title))))
	if s.Count == 0 {
		fmt.Fprintf(buf, "%s\n", emptyMessage)
		return
	}

	fmt.Fprintf(buf, "Quantidade: %d\n", s.Count)
	fmt.Fprintf(buf, "Total: %s\n", currencyutils.FormatAmount(s.Total))
	fmt.Fprintf(buf, "Média: %s\n", currencyutils.FormatAmount(s.Average))
	fmt.Fprintf(buf, "Mediana: %s\n", currencyutils.FormatAmount(s.Median))
	fmt.Fprintf(buf, "Maior valor: %s (%s)\n", currencyutils.FormatAmount(s.Highest), s.HighestCategory)
	fmt.Fprintf(buf, "Categoria mais frequente: %s\n", s.MostFrequentCategory)

	top := make([]string, 0, topCategories)
	for _, c := range s.TopCategories(topCategories) {
		top = append(top, c.String())
	}
	fmt.Fprintf(buf, "Principais categorias: %s\n\n", strings.Join(top, ", "))

	w := tabwriter.NewWriter(buf, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "Categoria\tQtd\t% Valor\t% Qtd\tTotal")
	for _, c := range s.Categories {
		fmt.Fprintf(w, "%s\t%d\t%s\t%s\t%s\n",
			c,
			s.CountPerCategory[c],
			currencyutils.FormatPercent(s.AmountShare[c]),
			currencyutils.FormatPercent(s.CountShare[c]),
			currencyutils.FormatAmount(s.TotalPerCategory[c]))
	}
	_ = w.Flush()
}

// Document is the machine-readable report shape.
type Document struct {
	Period           *PeriodDocument `json:"period,omitempty" yaml:"period,omitempty"`
	TransactionCount int             `json:"transaction_count" yaml:"transaction_count"`
	Balance          string          `json:"balance" yaml:"balance"`
	Income           KindDocument    `json:"income" yaml:"income"`
	Expense          KindDocument    `json:"expense" yaml:"expense"`
}

// PeriodDocument holds DD/MM/YYYY bounds.
type PeriodDocument struct {
	Start string `json:"start" yaml:"start"`
	End   string `json:"end" yaml:"end"`
}

// KindDocument summarises one kind.
type KindDocument struct {
	Count                int                `json:"count" yaml:"count"`
	Total                string             `json:"total" yaml:"total"`
	Average              string             `json:"average" yaml:"average"`
	Median               string             `json:"median" yaml:"median"`
	Highest              string             `json:"highest" yaml:"highest"`
	HighestCategory      string             `json:"highest_category,omitempty" yaml:"highest_category,omitempty"`
	MostFrequentCategory string             `json:"most_frequent_category,omitempty" yaml:"most_frequent_category,omitempty"`
	Categories           []CategoryDocument `json:"categories" yaml:"categories"`
}

// CategoryDocument is one row of a kind's category breakdown.
type CategoryDocument struct {
	Category    string  `json:"category" yaml:"category"`
	Count       int     `json:"count" yaml:"count"`
	Total       string  `json:"total" yaml:"total"`
	AmountShare float64 `json:"amount_share" yaml:"amount_share"`
	CountShare  float64 `json:"count_share" yaml:"count_share"`
}

func newDocument(snap statistics.Snapshot, period *Period) Document {
	doc := Document{
		TransactionCount: snap.TransactionCount,
		Balance:          snap.Balance.StringFixed(2),
		Income:           newKindDocument(snap.Income),
		Expense:          newKindDocument(snap.Expense),
	}
	if period != nil {
		doc.Period = &PeriodDocument{
			Start: dateutils.FormatDate(period.Start, dateutils.LayoutBR),
			End:   dateutils.FormatDate(period.End, dateutils.LayoutBR),
		}
	}
	return doc
}

func newKindDocument(s statistics.KindSummary) KindDocument {
	doc := KindDocument{
		Count:                s.Count,
		Total:                s.Total.StringFixed(2),
		Average:              s.Average.StringFixed(2),
		Median:               s.Median.StringFixed(2),
		Highest:              s.Highest.StringFixed(2),
		HighestCategory:      label(s.HighestCategory),
		MostFrequentCategory: label(s.MostFrequentCategory),
		Categories:           make([]CategoryDocument, 0, len(s.Categories)),
	}
	for _, c := range s.Categories {
		doc.Categories = append(doc.Categories, CategoryDocument{
			Category:    c.String(),
			Count:       s.CountPerCategory[c],
			Total:       s.TotalPerCategory[c].StringFixed(2),
			AmountShare: s.AmountShare[c],
			CountShare:  s.CountShare[c],
		})
	}
	return doc
}

func label(c models.Category) string {
	if c.IsZero() {
		return ""
	}
	return c.String()
}
