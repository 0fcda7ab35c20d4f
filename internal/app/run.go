package app

import (
	"context"
	"errors"
	"fmt"
	"io"

	"ca-survey/internal/automaton"
	"ca-survey/internal/batch"
	"ca-survey/internal/classify"
	"ca-survey/internal/core"
	"ca-survey/internal/report"
	"ca-survey/internal/rule"
	"ca-survey/internal/spacetime"
	pcore "ca-survey/pkg/core"
)

var (
	// ErrNotElementary indicates -all-ics was requested for a non-elementary rule.
	ErrNotElementary = errors.New("app: all initial conditions are only analysed for k=2, r=1")
	// ErrNoGUI is returned by Show in builds without the ebiten tag.
	ErrNoGUI = errors.New("app: the viewer requires building with -tags ebiten")
)

// Outcome is what a run hands to the viewer.
type Outcome struct {
	Grid   *spacetime.Grid
	Info   report.RunInfo
	Result classify.Result

	// Summary is set when every simple initial condition was analysed.
	Summary *batch.Summary
}

// Parameters merges the run and batch descriptions for display.
func (o Outcome) Parameters() core.ParameterSnapshot {
	snap := o.Info.Parameters(&o.Result)
	if o.Summary != nil {
		snap.Groups = append(snap.Groups, report.SummaryParameters(*o.Summary).Groups...)
	}
	return snap
}

// IsInputError reports whether err was caused by invalid user input rather
// than a failure of the analysis itself.
func IsInputError(err error) bool {
	for _, target := range []error{
		rule.ErrInvalidCode,
		rule.ErrInvalidParams,
		automaton.ErrInvalidDigit,
		automaton.ErrEmptyCondition,
		automaton.ErrInvalidSteps,
		spacetime.ErrOutOfRangeSlice,
		ErrNotElementary,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// InputHint returns a one-line explanation for an input error.
func InputHint(cfg *Config, err error) string {
	switch {
	case errors.Is(err, rule.ErrInvalidCode) && !errors.Is(err, rule.ErrInvalidParams):
		if cfg.States >= 2 && cfg.States <= rule.MaxStates && cfg.Radius >= 0 {
			return fmt.Sprintf("The maximum allowed code for these values is %v.", rule.MaxCode(cfg.States, cfg.Radius))
		}
	case errors.Is(err, automaton.ErrInvalidDigit):
		return fmt.Sprintf("Initial conditions must be digits below %d.", cfg.States)
	case errors.Is(err, spacetime.ErrOutOfRangeSlice):
		return fmt.Sprintf("At least %d steps are needed to estimate the background.", 2*cfg.States-1)
	}
	return ""
}

// Run analyses the configured automaton, writes the report to out, and
// returns the run to display. With AllConditions set, every simple initial
// condition is classified first and the displayed run starts from "1".
func Run(ctx context.Context, cfg *Config, out io.Writer) (Outcome, error) {
	p := report.NewPrinter(out, cfg.Plain)
	ac := cfg.Automaton()
	var summary *batch.Summary

	if cfg.AllConditions {
		if cfg.States != batch.States || cfg.Radius != batch.Radius {
			return Outcome{}, ErrNotElementary
		}
		code, err := rule.ParseCode(cfg.Code)
		if err != nil {
			return Outcome{}, err
		}
		s, err := batch.New(cfg.Batch()).Analyze(ctx, code)
		if err != nil {
			return Outcome{}, err
		}
		if err := p.Summary(s); err != nil {
			return Outcome{}, err
		}
		summary = &s
		ac.Condition = "1"
	} else if cfg.RandomLength > 0 {
		if cfg.States < 2 || cfg.States > rule.MaxStates {
			return Outcome{}, fmt.Errorf("%w: k=%d", rule.ErrInvalidParams, cfg.States)
		}
		ac.Condition = automaton.FormatCondition(pcore.NewRNG(cfg.Seed).Condition(uint8(cfg.States), cfg.RandomLength))
	}

	e, err := automaton.New(ac)
	if err != nil {
		return Outcome{}, err
	}
	e.Run()
	grid := e.Grid()
	res, err := classify.Classify(grid)
	if err != nil {
		return Outcome{}, err
	}

	info := report.RunInfo{
		States:    ac.States,
		Radius:    ac.Radius,
		Code:      ac.Code,
		Condition: ac.Condition,
		MaxSteps:  ac.MaxSteps,
	}
	if !cfg.AllConditions {
		if err := p.Result(info, res); err != nil {
			return Outcome{}, err
		}
	}
	o := Outcome{Grid: grid, Info: info, Result: res, Summary: summary}
	if cfg.Details {
		if err := p.Parameters(o.Parameters()); err != nil {
			return Outcome{}, err
		}
	}
	if cfg.Chart {
		if err := p.Chart(res.Activity); err != nil {
			return Outcome{}, err
		}
	}
	return o, nil
}
