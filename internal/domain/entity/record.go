package entity

import (
	"fmt"
	"strings"

	"github.com/lite-lake/cf-empty-email/internal/domain"
)

type DNSRecordType string

const (
	DNSRecordTypeTXT DNSRecordType = "TXT"
	DNSRecordTypeMX  DNSRecordType = "MX"
)

// DNSRecord is a single record as seen by the provider. ID is empty for
// records that only exist as desired state.
type DNSRecord struct {
	ID       string
	Name     string
	Type     DNSRecordType
	Content  string
	Priority int
	TTL      int
	Comment  string
}

func (r *DNSRecord) Validate() error {
	switch r.Type {
	case DNSRecordTypeTXT, DNSRecordTypeMX:
	default:
		return fmt.Errorf("%w: dns record type %s", domain.ErrInvalidType, r.Type)
	}
	if r.Name == "" {
		return domain.RequiredField("name")
	}
	if r.Content == "" {
		return domain.RequiredField("content")
	}
	if r.TTL < 0 {
		return fmt.Errorf("%w: ttl must be non-negative", domain.ErrInvalidTTL)
	}
	return nil
}

// NormalizeName maps a record name to its label relative to the zone apex:
// lower-cased, trailing dot stripped, the apex itself rendered as "@".
// Provider APIs return FQDNs while desired records may use relative labels,
// so both forms normalize to the same value.
func NormalizeName(name, zone string) string {
	name = strings.ToLower(strings.TrimSuffix(name, "."))
	zone = strings.ToLower(strings.TrimSuffix(zone, "."))
	if name == "" || name == "@" || name == zone {
		return "@"
	}
	return strings.TrimSuffix(name, "."+zone)
}

// FullName is the inverse rendering: a relative label as FQDN under the zone.
func FullName(label, zone string) string {
	if label == "@" || label == "" {
		return zone
	}
	return label + "." + zone
}

// RecordKey extracts the identity of a record within a zone. Two records are
// the "same" record when their keys match; content is deliberately not part
// of the key, since a content difference is what an overwrite resolves.
func RecordKey(zone string, r *DNSRecord) string {
	return string(r.Type) + ":" + NormalizeName(r.Name, zone)
}
