package valueobject

import (
	"github.com/lite-lake/cf-empty-email/internal/domain/entity"
)

type Decision int

const (
	DecisionCreate Decision = iota
	DecisionSkipExists
	DecisionOverwrite
)

func (d Decision) String() string {
	switch d {
	case DecisionCreate:
		return "CREATE"
	case DecisionSkipExists:
		return "SKIP"
	case DecisionOverwrite:
		return "OVERWRITE"
	default:
		return "UNKNOWN"
	}
}

// ReconcileAction is one planned step: a desired record together with the
// decision taken against the zone's current state. ExistingID is set whenever
// a matching record was found, so overwrites can target it and skips can
// report it.
type ReconcileAction struct {
	Record     entity.DNSRecord
	Decision   Decision
	ExistingID string
}
