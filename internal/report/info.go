package report

import (
	"ca-survey/internal/batch"
	"ca-survey/internal/classify"
	"ca-survey/internal/core"
)

// RunInfo identifies the automaton and initial condition of a single run.
type RunInfo struct {
	States    int
	Radius    int
	Code      string
	Condition string
	MaxSteps  int
}

// Parameters describes the run, and its result when res is non-nil, for
// display.
func (i RunInfo) Parameters(res *classify.Result) core.ParameterSnapshot {
	groups := []core.ParameterGroup{
		{
			Name: "Automaton",
			Params: []core.Parameter{
				core.IntParam("k", "States", i.States),
				core.IntParam("r", "Radius", i.Radius),
				core.StringParam("code", "Code", i.Code),
			},
		},
		{
			Name: "Run",
			Params: []core.Parameter{
				core.StringParam("ic", "Initial condition", i.Condition),
				core.IntParam("steps", "Steps", i.MaxSteps),
			},
		},
	}
	if res != nil {
		groups = append(groups, core.ParameterGroup{
			Name:    "Behavior",
			Summary: res.Category.Description(),
			Params: []core.Parameter{
				core.StringParam("category", "Category", res.Category.String()),
				core.FloatParam("growth_left", "Left growth", res.Growth.Left),
				core.FloatParam("growth_right", "Right growth", res.Growth.Right),
			},
		})
	}
	return core.ParameterSnapshot{Groups: groups}
}

// SummaryParameters describes a batch summary for display.
func SummaryParameters(s batch.Summary) core.ParameterSnapshot {
	var params []core.Parameter
	for _, f := range s.Frequencies() {
		params = append(params, core.IntParam(f.Category.String(), f.Category.String(), f.Count))
	}
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{{
		Name:   "Simple initial conditions",
		Params: params,
	}}}
}
