package dns

import (
	"context"

	"github.com/lite-lake/cf-empty-email/internal/domain"
	"github.com/lite-lake/cf-empty-email/internal/domain/entity"
)

var (
	ErrZoneNotFound    = domain.ErrZoneNotFound
	ErrRecordNotFound  = domain.ErrDNSRecordNotFound
	ErrInvalidResponse = domain.ErrDNSError
)

// Provider is the zone/record surface the pipeline depends on. Transient
// transport failures are retried inside implementations; callers see only the
// final outcome.
type Provider interface {
	ListZones(ctx context.Context) ([]entity.Zone, error)
	ListRecords(ctx context.Context, zoneID string) ([]entity.DNSRecord, error)
	CreateRecord(ctx context.Context, zoneID string, record *entity.DNSRecord) error
	UpdateRecord(ctx context.Context, zoneID, recordID string, record *entity.DNSRecord) error
}
