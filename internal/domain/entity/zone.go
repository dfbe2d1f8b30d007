package entity

import (
	"fmt"
	"strings"

	"github.com/lite-lake/cf-empty-email/internal/domain"
)

// Zone is a provider-managed DNS zone. Resolved once per invocation and
// read-only afterwards.
type Zone struct {
	ID   string
	Name string
}

func (z *Zone) Validate() error {
	if z.ID == "" {
		return domain.RequiredField("id")
	}
	if z.Name == "" {
		return fmt.Errorf("%w: zone name is required", domain.ErrRequired)
	}
	return nil
}

// Matches reports whether the zone serves the given domain name, ignoring
// case and an optional trailing dot.
func (z *Zone) Matches(name string) bool {
	return strings.EqualFold(
		strings.TrimSuffix(z.Name, "."),
		strings.TrimSuffix(name, "."),
	)
}
