// Package output provides utilities for formatting and displaying projection charts.
package output

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/iwvelando/price-projection/internal/chart"
	"github.com/iwvelando/price-projection/pkg/constants"
	"github.com/olekukonko/tablewriter"
)

// Renderer draws chart specs as text on a writer.
type Renderer struct {
	w      io.Writer
	format string
}

// NewRenderer returns a Renderer for one of the output format constants.
func NewRenderer(w io.Writer, outputFormat string) *Renderer {
	return &Renderer{w: w, format: outputFormat}
}

// Draw implements chart.Renderer. Text output cannot be withdrawn, so
// destroying the returned handle does nothing.
func (r *Renderer) Draw(spec chart.Spec) (chart.Handle, error) {
	var err error
	switch r.format {
	case constants.OutputFormatCSV:
		err = CsvFormat(r.w, spec)
	case constants.OutputFormatJSON:
		err = JSONFormat(r.w, spec)
	default:
		err = PrettyFormat(r.w, spec)
	}
	if err != nil {
		return nil, err
	}
	return &textHandle{id: spec.ID}, nil
}

type textHandle struct {
	id string
}

func (h *textHandle) ID() string     { return h.id }
func (h *textHandle) Destroy() error { return nil }

// PrettyFormat outputs a human-readable rather than machine-readable table.
// PrettyFormat prints one table row per year, values formatted as the
// chart's axis ticks.
func PrettyFormat(w io.Writer, spec chart.Spec) error {
	if _, err := fmt.Fprintf(w, "--- %s ---\n", spec.Title); err != nil {
		return err
	}

	header := []string{"Year"}
	for _, ds := range spec.Datasets {
		header = append(header, ds.Label)
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader(header)
	alignment := []int{tablewriter.ALIGN_LEFT}
	for range spec.Datasets {
		alignment = append(alignment, tablewriter.ALIGN_RIGHT)
	}
	table.SetColumnAlignment(alignment)

	for i, label := range spec.Labels {
		row := []string{label}
		for _, ds := range spec.Datasets {
			row = append(row, cell(ds, i, spec.Options.FormatTick))
		}
		table.Append(row)
	}
	table.Render()
	return nil
}

// CsvFormat outputs in comma-separated value format.
func CsvFormat(w io.Writer, spec chart.Spec) error {
	writer := csv.NewWriter(w)

	header := []string{"year"}
	for _, ds := range spec.Datasets {
		header = append(header, ds.Label)
	}
	if err := writer.Write(header); err != nil {
		return err
	}

	plain := func(v float64) string { return strconv.FormatFloat(v, 'f', constants.DecimalPlaces, 64) }
	for i, label := range spec.Labels {
		row := []string{label}
		for _, ds := range spec.Datasets {
			row = append(row, cell(ds, i, plain))
		}
		if err := writer.Write(row); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}

// JSONFormat outputs the chart description as indented JSON.
func JSONFormat(w io.Writer, spec chart.Spec) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(spec)
}

func cell(ds chart.Dataset, i int, render func(float64) string) string {
	if i >= len(ds.Data) || ds.Data[i] == nil {
		return ""
	}
	return render(*ds.Data[i])
}
