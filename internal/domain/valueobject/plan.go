package valueobject

import (
	"github.com/lite-lake/cf-empty-email/internal/domain/entity"
)

// Plan holds the ordered reconciliation actions for a single zone. Action
// order follows the desired record set, which is an observable contract for
// reporting.
type Plan struct {
	Zone    entity.Zone
	Actions []*ReconcileAction
}

func NewPlan(zone entity.Zone) *Plan {
	return &Plan{
		Zone:    zone,
		Actions: make([]*ReconcileAction, 0),
	}
}

func (p *Plan) AddAction(a *ReconcileAction) {
	p.Actions = append(p.Actions, a)
}

func (p *Plan) Count(d Decision) int {
	n := 0
	for _, a := range p.Actions {
		if a.Decision == d {
			n++
		}
	}
	return n
}

func (p *Plan) Creates() int    { return p.Count(DecisionCreate) }
func (p *Plan) Skips() int      { return p.Count(DecisionSkipExists) }
func (p *Plan) Overwrites() int { return p.Count(DecisionOverwrite) }

// HasChanges reports whether applying the plan would mutate the zone.
func (p *Plan) HasChanges() bool {
	for _, a := range p.Actions {
		if a.Decision != DecisionSkipExists {
			return true
		}
	}
	return false
}
