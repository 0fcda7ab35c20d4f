// Package batch classifies one elementary rule across every simple initial
// condition and tallies how often each behavior occurs.
package batch

import (
	"context"
	"fmt"
	"math/big"
	"runtime"
	"sort"

	"ca-survey/internal/automaton"
	"ca-survey/internal/classify"
	"ca-survey/internal/rule"

	"golang.org/x/sync/errgroup"
)

// Elementary automata have two states and radius one.
const (
	States = 2
	Radius = 1
)

// Config controls a batch run.
type Config struct {
	MaxSteps  int
	MaxLength int
	Workers   int
	Classify  classify.Config
}

// DefaultConfig returns the standard batch settings.
func DefaultConfig() Config {
	return Config{
		MaxSteps:  300,
		MaxLength: 5,
		Workers:   runtime.NumCPU(),
		Classify:  classify.DefaultConfig(),
	}
}

// Outcome is the classification of one initial condition.
type Outcome struct {
	Condition []uint8
	Result    classify.Result
}

// Frequency is how many conditions produced a category.
type Frequency struct {
	Category classify.Category
	Count    int
}

// Summary collects the outcomes for one code, in condition order.
type Summary struct {
	Code     *big.Int
	Outcomes []Outcome
}

// Analyzer runs batches with a fixed configuration.
type Analyzer struct {
	cfg        Config
	classifier *classify.Classifier
}

// New returns an Analyzer for cfg.
func New(cfg Config) *Analyzer {
	if cfg.Workers <= 0 {
		cfg.Workers = 1
	}
	return &Analyzer{cfg: cfg, classifier: classify.New(cfg.Classify)}
}

// Analyze classifies code from every condition produced by Conditions. Runs
// are independent, so they are spread over the configured workers; outcomes
// are stored by condition index and do not depend on scheduling. The context
// is only consulted between runs.
func (a *Analyzer) Analyze(ctx context.Context, code *big.Int) (Summary, error) {
	table, err := rule.Build(States, Radius, code)
	if err != nil {
		return Summary{}, err
	}
	conditions := Conditions(States, a.cfg.MaxLength)
	outcomes := make([]Outcome, len(conditions))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(a.cfg.Workers)
	for i, ic := range conditions {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			e, err := automaton.NewWithTable(table, ic, a.cfg.MaxSteps)
			if err != nil {
				return err
			}
			e.Run()
			res, err := a.classifier.Classify(e.Grid())
			if err != nil {
				return fmt.Errorf("batch: condition %s: %w", automaton.FormatCondition(ic), err)
			}
			outcomes[i] = Outcome{Condition: ic, Result: res}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Summary{}, err
	}
	return Summary{Code: new(big.Int).Set(code), Outcomes: outcomes}, nil
}

// Counts tallies outcomes per category.
func (s Summary) Counts() map[classify.Category]int {
	counts := make(map[classify.Category]int)
	for _, o := range s.Outcomes {
		counts[o.Result.Category]++
	}
	return counts
}

// Uniform reports the single category every condition produced, if any.
func (s Summary) Uniform() (classify.Category, bool) {
	if len(s.Outcomes) == 0 {
		return 0, false
	}
	first := s.Outcomes[0].Result.Category
	for _, o := range s.Outcomes[1:] {
		if o.Result.Category != first {
			return 0, false
		}
	}
	return first, true
}

// Frequencies returns the categories that occurred, least frequent first.
// Ties keep the order in which the categories first appeared.
func (s Summary) Frequencies() []Frequency {
	counts := s.Counts()
	var out []Frequency
	for _, o := range s.Outcomes {
		c := o.Result.Category
		if n, ok := counts[c]; ok {
			out = append(out, Frequency{Category: c, Count: n})
			delete(counts, c)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Count < out[j].Count })
	return out
}
