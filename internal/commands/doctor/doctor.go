// Package doctor runs health checks on the mintup setup: configuration,
// terminal capabilities and dashboard rendering.
package doctor

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Status represents the result status of a check item.
type Status int

const (
	StatusPass Status = iota
	StatusWarn
	StatusFail
)

func (s Status) String() string {
	switch s {
	case StatusPass:
		return "pass"
	case StatusWarn:
		return "warn"
	case StatusFail:
		return "fail"
	default:
		return "unknown"
	}
}

// CheckItem represents a single line item within a check result.
type CheckItem struct {
	Label  string `json:"label"`
	Status Status `json:"-"`
	Detail string `json:"detail,omitempty"`

	// For JSON output
	StatusStr string `json:"status"`
}

// Result represents the outcome of a check containing multiple items.
type Result struct {
	Name  string      `json:"name"`
	Items []CheckItem `json:"items"`
}

func (r *Result) add(status Status, label, detail string) {
	r.Items = append(r.Items, CheckItem{Label: label, Status: status, Detail: detail})
}

// Check defines the interface for a doctor check.
type Check interface {
	Name() string
	Run(ctx context.Context) Result
}

// RunAll executes all checks concurrently and returns their results in the
// order the checks were given.
func RunAll(ctx context.Context, checks []Check) []Result {
	results := make([]Result, len(checks))

	g, ctx := errgroup.WithContext(ctx)
	for i, check := range checks {
		g.Go(func() error {
			result := check.Run(ctx)
			for j := range result.Items {
				result.Items[j].StatusStr = result.Items[j].Status.String()
			}
			results[i] = result
			return nil
		})
	}
	_ = g.Wait()

	return results
}

// Summary returns counts of passed, warned, and failed items across all results.
func Summary(results []Result) (passed, warned, failed int) {
	for _, r := range results {
		for _, item := range r.Items {
			switch item.Status {
			case StatusPass:
				passed++
			case StatusWarn:
				warned++
			case StatusFail:
				failed++
			}
		}
	}
	return
}
