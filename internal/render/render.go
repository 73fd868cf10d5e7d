// Package render formats rodcut and printqueue results for the CLI as
// text tables, JSON or YAML.
package render

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/rodcut/printqueue"
	"github.com/katalvlaran/rodcut/rodcut"
)

// ErrUnknownFormat is returned for formats other than text, json and yaml.
var ErrUnknownFormat = errors.New("render: unknown format")

const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

// Renderer writes reports to w in a fixed format.
type Renderer struct {
	w      io.Writer
	format string
	color  bool
}

// New creates a Renderer. useColor only affects the text format; even when
// true, fatih/color still disables escapes on non-terminals.
func New(w io.Writer, format string, useColor bool) (*Renderer, error) {
	switch format {
	case formatText, formatJSON, formatYAML:
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}

	return &Renderer{w: w, format: format, color: useColor}, nil
}

// StrategyResult is one solver run in a SolveReport.
type StrategyResult struct {
	Strategy     string  `json:"strategy" yaml:"strategy"`
	Order        string  `json:"order" yaml:"order"`
	MaxProfit    float64 `json:"max_profit" yaml:"max_profit"`
	Cuts         []int   `json:"cuts" yaml:"cuts"`
	NumberOfCuts int     `json:"number_of_cuts" yaml:"number_of_cuts"`
	Revenue      float64 `json:"verified_revenue" yaml:"verified_revenue"`
}

// TableRow is one row of the bottom-up DP table.
type TableRow struct {
	Length int     `json:"length" yaml:"length"`
	Profit float64 `json:"profit" yaml:"profit"`
	Choice int     `json:"choice" yaml:"choice"`
}

// SolveReport is the output of the solve command.
type SolveReport struct {
	Length  int              `json:"length" yaml:"length"`
	Prices  []float64        `json:"prices" yaml:"prices"`
	Results []StrategyResult `json:"results" yaml:"results"`
	Table   []TableRow       `json:"table,omitempty" yaml:"table,omitempty"`
}

// NewStrategyResult converts a solver result for rendering.
func NewStrategyResult(opts rodcut.Options, sol rodcut.Solution, revenue float64) StrategyResult {
	return StrategyResult{
		Strategy:     opts.Strategy.String(),
		Order:        opts.Order.String(),
		MaxProfit:    sol.MaxProfit,
		Cuts:         sol.Cuts,
		NumberOfCuts: sol.NumberOfCuts,
		Revenue:      revenue,
	}
}

// TableRows flattens a DP table.
func TableRows(t *rodcut.Table) []TableRow {
	rows := make([]TableRow, 0, t.Len()+1)
	for j := 0; j <= t.Len(); j++ {
		rows = append(rows, TableRow{Length: j, Profit: t.Profit[j], Choice: t.Choice[j]})
	}

	return rows
}

// Solve writes a SolveReport.
func (r *Renderer) Solve(rep SolveReport) error {
	switch r.format {
	case formatJSON:
		return r.writeJSON(rep)
	case formatYAML:
		return r.writeYAML(rep)
	}

	header := r.paint(color.FgCyan, color.Bold)
	fmt.Fprintf(r.w, "%s length=%d prices=%s\n", header("Rod"), rep.Length, formatPrices(rep.Prices))

	tbl := table.NewWriter()
	tbl.SetOutputMirror(r.w)
	tbl.SetStyle(table.StyleLight)
	tbl.AppendHeader(table.Row{"Strategy", "Order", "Max profit", "Cuts", "Boundaries"})

	profit := r.paint(color.FgGreen)
	for _, res := range rep.Results {
		tbl.AppendRow(table.Row{
			res.Strategy,
			res.Order,
			profit(humanize.Commaf(res.MaxProfit)),
			formatCuts(res.Cuts),
			res.NumberOfCuts,
		})
	}
	tbl.Render()

	if len(rep.Table) == 0 {
		return nil
	}

	dp := table.NewWriter()
	dp.SetOutputMirror(r.w)
	dp.SetStyle(table.StyleLight)
	dp.SetTitle("DP table")
	dp.AppendHeader(table.Row{"Length", "Profit", "First piece"})
	for _, row := range rep.Table {
		dp.AppendRow(table.Row{row.Length, humanize.Commaf(row.Profit), row.Choice})
	}
	dp.Render()

	return nil
}

// Plan writes a print-queue plan.
func (r *Renderer) Plan(plan printqueue.Plan) error {
	switch r.format {
	case formatJSON:
		return r.writeJSON(plan)
	case formatYAML:
		return r.writeYAML(plan)
	}

	tbl := table.NewWriter()
	tbl.SetOutputMirror(r.w)
	tbl.SetStyle(table.StyleLight)
	tbl.AppendHeader(table.Row{"Run", "Jobs", "Volume", "Duration (min)"})
	for i, b := range plan.Batches {
		tbl.AppendRow(table.Row{i + 1, strings.Join(b.JobIDs, ", "), humanize.Commaf(b.Volume), humanize.Commaf(b.Duration)})
	}
	tbl.AppendFooter(table.Row{"", "", "Total", humanize.Commaf(plan.TotalTime)})
	tbl.Render()

	order := r.paint(color.FgCyan, color.Bold)
	fmt.Fprintf(r.w, "%s %s\n", order("Print order:"), strings.Join(plan.PrintOrder, " → "))

	return nil
}

func (r *Renderer) writeJSON(v any) error {
	enc := json.NewEncoder(r.w)
	enc.SetIndent("", "  ")

	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("render json: %w", err)
	}

	return nil
}

func (r *Renderer) writeYAML(v any) error {
	enc := yaml.NewEncoder(r.w)
	enc.SetIndent(2)

	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("render yaml: %w", err)
	}

	return enc.Close()
}

// paint returns a sprint func for attrs, plain when color is off.
func (r *Renderer) paint(attrs ...color.Attribute) func(a ...any) string {
	c := color.New(attrs...)
	if !r.color {
		c.DisableColor()
	}

	return c.SprintFunc()
}

func formatCuts(cuts []int) string {
	if len(cuts) == 0 {
		return "-"
	}
	parts := make([]string, len(cuts))
	for i, c := range cuts {
		parts[i] = strconv.Itoa(c)
	}

	return strings.Join(parts, " + ")
}

func formatPrices(prices []float64) string {
	parts := make([]string, len(prices))
	for i, p := range prices {
		parts[i] = strconv.FormatFloat(p, 'f', -1, 64)
	}

	return "[" + strings.Join(parts, " ") + "]"
}
