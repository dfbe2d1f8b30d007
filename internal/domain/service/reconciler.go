package service

import (
	"github.com/lite-lake/cf-empty-email/internal/domain/entity"
	"github.com/lite-lake/cf-empty-email/internal/domain/valueobject"
)

// Reconcile compares the desired record set against the zone's current
// records and produces the action plan. Records already present are skipped
// unless force is set, in which case the existing record is targeted for an
// overwrite. Existing records outside the desired set are never touched;
// the reconciler emits no deletes.
func Reconcile(zone *entity.Zone, desired, existing []entity.DNSRecord, force bool) *valueobject.Plan {
	existingByKey := make(map[string]*entity.DNSRecord, len(existing))
	for i := range existing {
		key := entity.RecordKey(zone.Name, &existing[i])
		if _, ok := existingByKey[key]; !ok {
			existingByKey[key] = &existing[i]
		}
	}

	plan := valueobject.NewPlan(*zone)
	for _, record := range desired {
		current, ok := existingByKey[entity.RecordKey(zone.Name, &record)]
		switch {
		case !ok:
			plan.AddAction(&valueobject.ReconcileAction{
				Record:   record,
				Decision: valueobject.DecisionCreate,
			})
		case force:
			plan.AddAction(&valueobject.ReconcileAction{
				Record:     record,
				Decision:   valueobject.DecisionOverwrite,
				ExistingID: current.ID,
			})
		default:
			plan.AddAction(&valueobject.ReconcileAction{
				Record:     record,
				Decision:   valueobject.DecisionSkipExists,
				ExistingID: current.ID,
			})
		}
	}
	return plan
}
