package apply

import (
	"context"
	"errors"
	"testing"

	"github.com/lite-lake/cf-empty-email/internal/domain/entity"
	"github.com/lite-lake/cf-empty-email/internal/domain/service"
)

type call struct {
	op       string
	zoneID   string
	recordID string
	name     string
	content  string
}

type fakeWriter struct {
	calls  []call
	failOn map[string]error // record name -> error
}

func (f *fakeWriter) CreateRecord(ctx context.Context, zoneID string, record *entity.DNSRecord) error {
	f.calls = append(f.calls, call{op: "create", zoneID: zoneID, name: record.Name, content: record.Content})
	return f.failOn[record.Name]
}

func (f *fakeWriter) UpdateRecord(ctx context.Context, zoneID, recordID string, record *entity.DNSRecord) error {
	f.calls = append(f.calls, call{op: "update", zoneID: zoneID, recordID: recordID, name: record.Name, content: record.Content})
	return f.failOn[record.Name]
}

var execZone = entity.Zone{ID: "z1", Name: "example.com"}

func TestExecutor_CreatesAll(t *testing.T) {
	plan := service.Reconcile(&execZone, service.EmptyEmailTemplate(execZone.Name), nil, false)
	writer := &fakeWriter{}

	results := NewExecutor(writer).Apply(context.Background(), plan)

	if len(results) != 5 {
		t.Fatalf("expected 5 results, got %d", len(results))
	}
	for i, r := range results {
		if r.Outcome != OutcomeCreated {
			t.Errorf("result %d: outcome = %s, want created", i, r.Outcome)
		}
	}
	if len(writer.calls) != 5 {
		t.Errorf("expected 5 provider calls, got %d", len(writer.calls))
	}
	for _, c := range writer.calls {
		if c.op != "create" || c.zoneID != "z1" {
			t.Errorf("unexpected call %+v", c)
		}
	}
}

func TestExecutor_SkipMakesNoCall(t *testing.T) {
	existing := []entity.DNSRecord{
		{ID: "spf-1", Type: entity.DNSRecordTypeTXT, Name: "example.com", Content: "v=spf1 ~all"},
	}
	plan := service.Reconcile(&execZone, service.EmptyEmailTemplate(execZone.Name), existing, false)
	writer := &fakeWriter{}

	results := NewExecutor(writer).Apply(context.Background(), plan)

	if results[0].Outcome != OutcomeSkipped {
		t.Errorf("SPF outcome = %s, want skipped", results[0].Outcome)
	}
	if len(writer.calls) != 4 {
		t.Errorf("expected 4 provider calls, got %d", len(writer.calls))
	}
}

func TestExecutor_OverwriteTargetsExistingID(t *testing.T) {
	existing := []entity.DNSRecord{
		{ID: "spf-1", Type: entity.DNSRecordTypeTXT, Name: "example.com", Content: "v=spf1 ~all"},
	}
	plan := service.Reconcile(&execZone, service.EmptyEmailTemplate(execZone.Name), existing, true)
	writer := &fakeWriter{}

	results := NewExecutor(writer).Apply(context.Background(), plan)

	if results[0].Outcome != OutcomeOverwritten {
		t.Fatalf("SPF outcome = %s, want overwritten", results[0].Outcome)
	}
	update := writer.calls[0]
	if update.op != "update" || update.recordID != "spf-1" {
		t.Errorf("expected an update targeting spf-1, got %+v", update)
	}
	if update.content != "v=spf1 -all" {
		t.Errorf("update content = %q, want the desired template content", update.content)
	}
}

func TestExecutor_FailureDoesNotAbort(t *testing.T) {
	plan := service.Reconcile(&execZone, service.EmptyEmailTemplate(execZone.Name), nil, false)
	boom := errors.New("internal server error")
	writer := &fakeWriter{failOn: map[string]error{"_dmarc.example.com": boom}}

	results := NewExecutor(writer).Apply(context.Background(), plan)

	if len(results) != 5 {
		t.Fatalf("expected 5 results, got %d", len(results))
	}
	if results[2].Outcome != OutcomeFailed {
		t.Errorf("DMARC outcome = %s, want failed", results[2].Outcome)
	}
	if !errors.Is(results[2].Err, boom) {
		t.Errorf("DMARC error = %v, want %v", results[2].Err, boom)
	}
	for _, i := range []int{0, 1, 3, 4} {
		if results[i].Outcome != OutcomeCreated {
			t.Errorf("result %d: outcome = %s, want created after a sibling failure", i, results[i].Outcome)
		}
	}
	if Failed(results) != 1 {
		t.Errorf("Failed() = %d, want 1", Failed(results))
	}
}
