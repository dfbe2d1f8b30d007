package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"gopkg.in/yaml.v3"

	"github.com/lite-lake/cf-empty-email/internal/apply"
	"github.com/lite-lake/cf-empty-email/internal/domain/entity"
	"github.com/lite-lake/cf-empty-email/internal/domain/valueobject"
)

const (
	ColorSuccess   = "#10B981"
	ColorWarning   = "#F59E0B"
	ColorError     = "#EF4444"
	ColorSecondary = "#6B7280"
)

var (
	createStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSuccess))
	overwriteStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorWarning))
	failStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorError))
	skipStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSecondary))
	headerStyle    = lipgloss.NewStyle().Bold(true)
)

func printZoneListing(w io.Writer, zones []entity.Zone, email string) {
	if email != "" {
		fmt.Fprintf(w, "Available zones for Cloudflare user %s:\n", email)
	} else {
		fmt.Fprintln(w, "Available zones:")
	}
	if len(zones) == 0 {
		fmt.Fprintln(w, "  (none)")
		return
	}
	for _, z := range zones {
		fmt.Fprintf(w, "  - %s\n", z.Name)
	}
}

func actionLine(zone string, a *valueobject.ReconcileAction) string {
	label := entity.NormalizeName(a.Record.Name, zone)
	line := fmt.Sprintf("%s %s -> %q", a.Record.Type, label, a.Record.Content)
	switch a.Decision {
	case valueobject.DecisionCreate:
		return createStyle.Render("+ " + line)
	case valueobject.DecisionOverwrite:
		return overwriteStyle.Render(fmt.Sprintf("~ %s (overwrites %s)", line, a.ExistingID))
	default:
		return skipStyle.Render(fmt.Sprintf("- %s (exists, id %s)", line, a.ExistingID))
	}
}

func renderPlan(w io.Writer, format string, plan *valueobject.Plan, existing []entity.DNSRecord) error {
	if format == "yaml" {
		return renderYAML(w, newReport(plan, nil))
	}

	fmt.Fprintln(w, headerStyle.Render(fmt.Sprintf("Plan for zone %s:", plan.Zone.Name)))
	for _, a := range plan.Actions {
		fmt.Fprintln(w, actionLine(plan.Zone.Name, a))
	}
	fmt.Fprintf(w, "\n%d to create, %d to overwrite, %d already present.\n",
		plan.Creates(), plan.Overwrites(), plan.Skips())

	if len(existing) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, headerStyle.Render("Existing records:"))
		fmt.Fprintln(w, recordTable(plan.Zone.Name, existing))
	}
	return nil
}

func renderResults(w io.Writer, format string, plan *valueobject.Plan, results []*apply.Result) error {
	if format == "yaml" {
		return renderYAML(w, newReport(plan, results))
	}

	fmt.Fprintln(w, headerStyle.Render(fmt.Sprintf("Zone %s:", plan.Zone.Name)))
	created, overwritten, skipped, failed := 0, 0, 0, 0
	for _, r := range results {
		label := entity.NormalizeName(r.Action.Record.Name, plan.Zone.Name)
		line := fmt.Sprintf("%s %s %s", r.Outcome, r.Action.Record.Type, label)
		switch r.Outcome {
		case apply.OutcomeCreated:
			created++
			fmt.Fprintln(w, createStyle.Render("+ "+line))
		case apply.OutcomeOverwritten:
			overwritten++
			fmt.Fprintln(w, overwriteStyle.Render("~ "+line))
		case apply.OutcomeFailed:
			failed++
			fmt.Fprintln(w, failStyle.Render(fmt.Sprintf("! %s: %v", line, r.Err)))
		default:
			skipped++
			fmt.Fprintln(w, skipStyle.Render("- "+line))
		}
	}
	fmt.Fprintf(w, "\n%d created, %d overwritten, %d skipped, %d failed.\n",
		created, overwritten, skipped, failed)
	return nil
}

func recordTable(zone string, records []entity.DNSRecord) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return lipgloss.NewStyle()
		}).
		Headers("Host", "Type", "Content", "TTL")
	for _, r := range records {
		t.Row(entity.NormalizeName(r.Name, zone), string(r.Type), r.Content, fmt.Sprintf("%d", r.TTL))
	}
	return t.Render()
}

type reportRecord struct {
	Name     string `yaml:"name"`
	Type     string `yaml:"type"`
	Content  string `yaml:"content"`
	Priority int    `yaml:"priority,omitempty"`
}

type reportEntry struct {
	Record     reportRecord `yaml:"record"`
	Decision   string       `yaml:"decision"`
	ExistingID string       `yaml:"existing_id,omitempty"`
	Outcome    string       `yaml:"outcome,omitempty"`
	Error      string       `yaml:"error,omitempty"`
}

type report struct {
	Zone    string        `yaml:"zone"`
	Entries []reportEntry `yaml:"records"`
}

func newReport(plan *valueobject.Plan, results []*apply.Result) *report {
	rep := &report{Zone: plan.Zone.Name}
	for _, a := range plan.Actions {
		rep.Entries = append(rep.Entries, reportEntry{
			Record: reportRecord{
				Name:     entity.NormalizeName(a.Record.Name, plan.Zone.Name),
				Type:     string(a.Record.Type),
				Content:  a.Record.Content,
				Priority: a.Record.Priority,
			},
			Decision:   a.Decision.String(),
			ExistingID: a.ExistingID,
		})
	}
	for i, r := range results {
		if i >= len(rep.Entries) {
			break
		}
		rep.Entries[i].Outcome = r.Outcome.String()
		if r.Err != nil {
			rep.Entries[i].Error = r.Err.Error()
		}
	}
	return rep
}

func renderYAML(w io.Writer, rep *report) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(rep); err != nil {
		return err
	}
	return enc.Close()
}
