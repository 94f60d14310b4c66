// SPDX-License-Identifier: MIT
// Package scenario: acceptance checks.

package scenario

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/hashicorp/go-multierror"

	"github.com/katalvlaran/lvnum/internal/config"
	"github.com/katalvlaran/lvnum/internal/log"
)

// Tolerance bounds every floating-point comparison in Check.
const Tolerance = 1e-12

// ErrCheckFailed marks a demonstration whose result disagrees with the
// closed form or with its alternative computation.
var ErrCheckFailed = errors.New("scenario: check failed")

// Check names.
const (
	CheckBernoulli = "bernoulli"
	CheckZip       = "zip"
	CheckTranspose = "transpose"
)

// CheckReport collects the three results and the verdict per check.
// A result is nil when its check could not run.
type CheckReport struct {
	Bernoulli *BernoulliResult `json:"bernoulli" yaml:"bernoulli"`
	Zip       *ZipResult       `json:"zip"       yaml:"zip"`
	Transpose *TransposeResult `json:"transpose" yaml:"transpose"`
	Passed    []string         `json:"passed"    yaml:"passed,flow"`
	Failed    []string         `json:"failed"    yaml:"failed,flow"`
}

// OK reports whether every check passed.
func (r *CheckReport) OK() bool { return len(r.Failed) == 0 }

// Check runs the three demonstrations with cfg's inputs (config.Default()
// when cfg is nil) and verifies:
//
//   - bernoulli: PMF(at) equals p at 1, 1-p at 0 and 0 elsewhere; mean p,
//     variance p(1-p), SD its square root.
//   - zip: ZipWith(+) and Add agree and equal a[i]+b[i].
//   - transpose: T(input) equals the alternate-layout matrix over the same
//     buffer.
//
// All checks run even after a failure; the returned error aggregates every
// failure. A cancelled ctx stops before the next check.
func Check(ctx context.Context, cfg *config.Config) (*CheckReport, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	report := &CheckReport{Passed: []string{}, Failed: []string{}}
	var errs *multierror.Error

	steps := []struct {
		name string
		run  func() error
	}{
		{CheckBernoulli, func() error { return checkBernoulli(cfg, report) }},
		{CheckZip, func() error { return checkZip(cfg, report) }},
		{CheckTranspose, func() error { return checkTranspose(cfg, report) }},
	}
	for _, step := range steps {
		if err := ctx.Err(); err != nil {
			errs = multierror.Append(errs, err)
			break
		}
		if err := step.run(); err != nil {
			log.Warn(ctx).Str("check", step.name).Err(err).Msg("check failed")
			report.Failed = append(report.Failed, step.name)
			errs = multierror.Append(errs, fmt.Errorf("%s: %w", step.name, err))
			continue
		}
		log.Debug(ctx).Str("check", step.name).Msg("check passed")
		report.Passed = append(report.Passed, step.name)
	}

	return report, errs.ErrorOrNil()
}

func checkBernoulli(cfg *config.Config, report *CheckReport) error {
	p, at := cfg.Bernoulli.P, cfg.Bernoulli.At
	res, err := BernoulliReport(p, at)
	if err != nil {
		return err
	}
	report.Bernoulli = res

	var want float64
	switch at {
	case 1:
		want = p
	case 0:
		want = 1 - p
	}
	variance := p * (1 - p)

	var errs *multierror.Error
	errs = appendMismatch(errs, "pmf", res.PMF, want)
	errs = appendMismatch(errs, "mean", res.Mean, p)
	errs = appendMismatch(errs, "var", res.Var, variance)
	errs = appendMismatch(errs, "sd", res.SD, math.Sqrt(variance))

	return errs.ErrorOrNil()
}

func checkZip(cfg *config.Config, report *CheckReport) error {
	res, err := ZipReport(cfg.Zip.A, cfg.Zip.B)
	if err != nil {
		return err
	}
	report.Zip = res

	if !res.Match {
		return fmt.Errorf("zip_with %v != add %v: %w", res.ZipWith, res.Add, ErrCheckFailed)
	}
	var errs *multierror.Error
	for i := range res.Add {
		errs = appendMismatch(errs, fmt.Sprintf("sum[%d]", i), res.Add[i], cfg.Zip.A[i]+cfg.Zip.B[i])
	}

	return errs.ErrorOrNil()
}

func checkTranspose(cfg *config.Config, report *CheckReport) error {
	layout, err := config.ParseLayout(cfg.Transpose.Layout)
	if err != nil {
		return err
	}
	res, err := TransposeReport(cfg.Transpose.Data, cfg.Transpose.Rows, cfg.Transpose.Cols, layout)
	if err != nil {
		return err
	}
	report.Transpose = res

	if !res.Match {
		return fmt.Errorf("transposed %+v != expected %+v: %w", res.Transposed, res.Expected, ErrCheckFailed)
	}

	return nil
}

// appendMismatch records got != want (beyond Tolerance) as a failure.
func appendMismatch(errs *multierror.Error, what string, got, want float64) *multierror.Error {
	if math.Abs(got-want) <= Tolerance {
		return errs
	}

	return multierror.Append(errs, fmt.Errorf("%s = %v, want %v: %w", what, got, want, ErrCheckFailed))
}
