package suite

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/DjordjeVuckovic/expr-pda/internal/checker"
	"github.com/DjordjeVuckovic/expr-pda/internal/domain"
	"github.com/DjordjeVuckovic/expr-pda/internal/storage"
)

type CaseResult struct {
	ID         string           `json:"id"`
	Kind       domain.CheckKind `json:"kind"`
	Expression string           `json:"expression"`
	Postfix    string           `json:"postfix,omitempty"`
	Accepted   bool             `json:"accepted"`
	Reason     string           `json:"reason"`
	Error      string           `json:"error,omitempty"`
	Passed     bool             `json:"passed"`
	Failures   []string         `json:"failures,omitempty"`
	Duration   time.Duration    `json:"duration"`
}

type Summary struct {
	Total   int          `json:"total"`
	Passed  int          `json:"passed"`
	Failed  int          `json:"failed"`
	Latency LatencyStats `json:"latency"`
}

type Result struct {
	Suite   string       `json:"suite"`
	Cases   []CaseResult `json:"cases"`
	Summary Summary      `json:"summary"`
}

func (r *Result) AllPassed() bool {
	return r.Summary.Failed == 0
}

type Runner struct {
	checker  *checker.Checker
	recorder storage.Recorder
}

type Option func(*Runner)

// WithRecorder saves every executed case as a domain.Check.
func WithRecorder(rec storage.Recorder) Option {
	return func(r *Runner) {
		r.recorder = rec
	}
}

func NewRunner(c *checker.Checker, opts ...Option) *Runner {
	r := &Runner{checker: c}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *Runner) Run(ctx context.Context, s *Suite) (*Result, error) {
	res := &Result{Suite: s.Name, Cases: make([]CaseResult, 0, len(s.Cases))}
	checks := make([]domain.Check, 0, len(s.Cases))
	durations := make([]time.Duration, 0, len(s.Cases))

	for _, c := range s.Cases {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		start := time.Now()
		report := r.execute(c)
		elapsed := time.Since(start)

		cr := evaluate(c, report)
		cr.Duration = elapsed
		durations = append(durations, elapsed)

		if cr.Passed {
			res.Summary.Passed++
		} else {
			res.Summary.Failed++
			slog.Debug("case failed", "id", c.ID, "failures", cr.Failures)
		}
		res.Cases = append(res.Cases, cr)
		checks = append(checks, domain.NewCheck(c.Kind, report))
	}

	res.Summary.Total = len(res.Cases)
	res.Summary.Latency = ComputeLatencyStats(durations)

	if r.recorder != nil {
		if err := r.recorder.SaveBulk(ctx, checks); err != nil {
			return res, fmt.Errorf("record suite %q: %w", s.Name, err)
		}
	}

	slog.Info("Suite finished", "suite", s.Name, "total", res.Summary.Total, "passed", res.Summary.Passed, "failed", res.Summary.Failed)
	return res, nil
}

func (r *Runner) execute(c Case) checker.Report {
	if c.Kind == domain.KindPostfix {
		return r.checker.CheckPostfix(c.Expression)
	}
	return r.checker.CheckInfix(c.Expression)
}

func evaluate(c Case, report checker.Report) CaseResult {
	check := domain.NewCheck(c.Kind, report)
	cr := CaseResult{
		ID:         c.ID,
		Kind:       c.Kind,
		Expression: c.Expression,
		Postfix:    report.Postfix,
		Accepted:   check.Accepted,
		Reason:     check.Reason,
		Error:      check.Error,
	}

	exp := c.Expect
	if exp.Accepted != nil && *exp.Accepted != check.Accepted {
		cr.Failures = append(cr.Failures, fmt.Sprintf("accepted: want %t, got %t (%s)", *exp.Accepted, check.Accepted, check.Reason))
	}
	if exp.Postfix != nil && *exp.Postfix != report.Postfix {
		cr.Failures = append(cr.Failures, fmt.Sprintf("postfix: want %q, got %q", *exp.Postfix, report.Postfix))
	}
	switch {
	case exp.Error != "" && report.Err == nil:
		cr.Failures = append(cr.Failures, fmt.Sprintf("error: want %q, got none", exp.Error))
	case exp.Error != "" && !strings.Contains(report.Err.Error(), exp.Error):
		cr.Failures = append(cr.Failures, fmt.Sprintf("error: want %q, got %q", exp.Error, report.Err.Error()))
	case exp.Error == "" && report.Err != nil && c.Kind == domain.KindConvert:
		cr.Failures = append(cr.Failures, fmt.Sprintf("error: unexpected %q", report.Err.Error()))
	}

	cr.Passed = len(cr.Failures) == 0
	return cr
}
