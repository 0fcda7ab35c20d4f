// Package report turns classification results into human-readable text.
package report

import (
	"fmt"
	"io"

	"ca-survey/internal/batch"
	"ca-survey/internal/classify"
	"ca-survey/internal/core"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
)

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	resultStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	graphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("49"))
)

// Printer writes reports to an output stream.
type Printer struct {
	w     io.Writer
	plain bool
}

// NewPrinter returns a Printer writing to w. Plain printers emit no styling.
func NewPrinter(w io.Writer, plain bool) *Printer {
	return &Printer{w: w, plain: plain}
}

func (p *Printer) style(s lipgloss.Style, text string) string {
	if p.plain {
		return text
	}
	return s.Render(text)
}

// Result reports the behavior of a single run.
func (p *Printer) Result(info RunInfo, res classify.Result) error {
	_, err := fmt.Fprintf(p.w, "%s\n%s\n",
		p.style(headerStyle, fmt.Sprintf(
			"The code %s with %d colours and a range of %d exhibits the following behaviour with initial conditions %s:",
			info.Code, info.States, info.Radius, info.Condition)),
		p.style(resultStyle, res.Category.Description()))
	return err
}

// Summary reports the behaviors of an elementary rule over all simple initial
// conditions, least frequent first.
func (p *Printer) Summary(s batch.Summary) error {
	if cat, ok := s.Uniform(); ok {
		_, err := fmt.Fprintf(p.w, "%s\n%s\n",
			p.style(headerStyle, fmt.Sprintf(
				"The code %s with %d colours and a range of %d always produces the same result from simple initial conditions.",
				s.Code, batch.States, batch.Radius)),
			p.style(resultStyle, cat.Description()))
		return err
	}
	if _, err := fmt.Fprintln(p.w, p.style(headerStyle, fmt.Sprintf(
		"The code %s with %d colours and a range of %d exhibits different behaviour depending on its initial conditions.",
		s.Code, batch.States, batch.Radius))); err != nil {
		return err
	}
	for _, f := range s.Frequencies() {
		if _, err := fmt.Fprintf(p.w, "%s This occurred %d times.\n",
			p.style(resultStyle, f.Category.Description()), f.Count); err != nil {
			return err
		}
	}
	return nil
}

// Parameters lists every group of a snapshot as label/value lines.
func (p *Printer) Parameters(s core.ParameterSnapshot) error {
	for _, g := range s.Groups {
		if _, err := fmt.Fprintln(p.w, p.style(headerStyle, g.Name)); err != nil {
			return err
		}
		for _, param := range g.Params {
			if _, err := fmt.Fprintf(p.w, "  %s %s\n",
				p.style(labelStyle, fmt.Sprintf("%-18s", param.Label+":")),
				p.style(valueStyle, param.Value)); err != nil {
				return err
			}
		}
	}
	return nil
}

// Chart plots the width of the active region over time.
func (p *Printer) Chart(activity []int) error {
	if len(activity) == 0 {
		return nil
	}
	data := make([]float64, len(activity))
	for i, v := range activity {
		data[i] = float64(v)
	}
	chart := asciigraph.Plot(data,
		asciigraph.Height(10),
		asciigraph.Width(60),
		asciigraph.Caption("active width per step"))
	_, err := fmt.Fprintln(p.w, p.style(graphStyle, chart))
	return err
}
