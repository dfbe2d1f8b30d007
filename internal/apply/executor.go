package apply

import (
	"context"

	"github.com/lite-lake/cf-empty-email/internal/domain/entity"
	"github.com/lite-lake/cf-empty-email/internal/domain/valueobject"
	"github.com/lite-lake/cf-empty-email/internal/infrastructure/logger"
)

// RecordWriter is the mutating subset of the provider the executor needs.
type RecordWriter interface {
	CreateRecord(ctx context.Context, zoneID string, record *entity.DNSRecord) error
	UpdateRecord(ctx context.Context, zoneID, recordID string, record *entity.DNSRecord) error
}

type Outcome int

const (
	OutcomeSkipped Outcome = iota
	OutcomeCreated
	OutcomeOverwritten
	OutcomeFailed
)

func (o Outcome) String() string {
	switch o {
	case OutcomeSkipped:
		return "skipped"
	case OutcomeCreated:
		return "created"
	case OutcomeOverwritten:
		return "overwritten"
	case OutcomeFailed:
		return "failed"
	default:
		return "unknown"
	}
}

type Result struct {
	Action  *valueobject.ReconcileAction
	Outcome Outcome
	Err     error
}

type Executor struct {
	writer RecordWriter
}

func NewExecutor(writer RecordWriter) *Executor {
	return &Executor{writer: writer}
}

// Apply folds the plan into per-record results. A failure on one record does
// not stop the rest; partial completion is an expected, reportable outcome.
// Retries are the transport's business, not the executor's.
func (e *Executor) Apply(ctx context.Context, plan *valueobject.Plan) []*Result {
	results := make([]*Result, 0, len(plan.Actions))
	for _, action := range plan.Actions {
		results = append(results, e.apply(ctx, plan.Zone.ID, action))
	}
	return results
}

func (e *Executor) apply(ctx context.Context, zoneID string, action *valueobject.ReconcileAction) *Result {
	switch action.Decision {
	case valueobject.DecisionCreate:
		if err := e.writer.CreateRecord(ctx, zoneID, &action.Record); err != nil {
			logger.Error("record create failed", "name", action.Record.Name, "type", action.Record.Type, "error", err)
			return &Result{Action: action, Outcome: OutcomeFailed, Err: err}
		}
		return &Result{Action: action, Outcome: OutcomeCreated}

	case valueobject.DecisionOverwrite:
		if err := e.writer.UpdateRecord(ctx, zoneID, action.ExistingID, &action.Record); err != nil {
			logger.Error("record overwrite failed", "name", action.Record.Name, "type", action.Record.Type, "error", err)
			return &Result{Action: action, Outcome: OutcomeFailed, Err: err}
		}
		return &Result{Action: action, Outcome: OutcomeOverwritten}

	default:
		return &Result{Action: action, Outcome: OutcomeSkipped}
	}
}

// Failed counts the results that did not apply cleanly.
func Failed(results []*Result) int {
	n := 0
	for _, r := range results {
		if r.Outcome == OutcomeFailed {
			n++
		}
	}
	return n
}
