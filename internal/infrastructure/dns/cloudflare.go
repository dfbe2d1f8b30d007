package dns

import (
	"context"

	"github.com/cloudflare/cloudflare-go/v2"
	cfdns "github.com/cloudflare/cloudflare-go/v2/dns"
	"github.com/cloudflare/cloudflare-go/v2/option"
	"github.com/cloudflare/cloudflare-go/v2/zones"

	domainerr "github.com/lite-lake/cf-empty-email/internal/domain"
	"github.com/lite-lake/cf-empty-email/internal/domain/entity"
	"github.com/lite-lake/cf-empty-email/internal/domain/retry"
	"github.com/lite-lake/cf-empty-email/internal/infrastructure/logger"
)

type CloudflareProvider struct {
	client *cloudflare.Client
}

// NewCloudflareProvider builds a provider authenticated either with an API
// token or with the legacy global key plus account email.
func NewCloudflareProvider(apiToken, apiKey, apiEmail string) *CloudflareProvider {
	var opts []option.RequestOption
	if apiToken != "" {
		opts = append(opts, option.WithAPIToken(apiToken))
	} else {
		opts = append(opts,
			option.WithAPIKey(apiKey),
			option.WithAPIEmail(apiEmail),
		)
	}
	return &CloudflareProvider{client: cloudflare.NewClient(opts...)}
}

func (p *CloudflareProvider) Name() string {
	return "cloudflare"
}

func (p *CloudflareProvider) ListZones(ctx context.Context) ([]entity.Zone, error) {
	logger.Debug("listing zones", "provider", "cloudflare")

	result, err := retry.DoWithResult(ctx, func() ([]entity.Zone, error) {
		var out []entity.Zone
		pager := p.client.Zones.ListAutoPaging(ctx, zones.ZoneListParams{})
		for pager.Next() {
			zone := pager.Current()
			out = append(out, entity.Zone{ID: zone.ID, Name: zone.Name})
		}
		if err := pager.Err(); err != nil {
			return nil, domainerr.WrapOp("list zones", err)
		}
		return out, nil
	}, retry.WithIsRetryable(IsRetryableDNSError))
	if err != nil {
		logger.Error("failed to list zones", "error", err)
		return nil, err
	}

	logger.Debug("listed zones", "provider", "cloudflare", "count", len(result))
	return result, nil
}

func (p *CloudflareProvider) ListRecords(ctx context.Context, zoneID string) ([]entity.DNSRecord, error) {
	logger.Debug("listing DNS records", "provider", "cloudflare", "zone_id", zoneID)

	result, err := retry.DoWithResult(ctx, func() ([]entity.DNSRecord, error) {
		var out []entity.DNSRecord
		pager := p.client.DNS.Records.ListAutoPaging(ctx, cfdns.RecordListParams{
			ZoneID: cloudflare.F(zoneID),
		})
		for pager.Next() {
			record := pager.Current()
			content := ""
			if str, ok := record.Content.(string); ok {
				content = str
			}
			out = append(out, entity.DNSRecord{
				ID:       record.ID,
				Name:     record.Name,
				Type:     entity.DNSRecordType(record.Type),
				Content:  content,
				Priority: int(record.Priority),
				TTL:      int(record.TTL),
				Comment:  record.Comment,
			})
		}
		if err := pager.Err(); err != nil {
			return nil, domainerr.WrapOp("list records", err)
		}
		return out, nil
	}, retry.WithIsRetryable(IsRetryableDNSError))
	if err != nil {
		logger.Error("failed to list records", "zone_id", zoneID, "error", err)
		return nil, err
	}

	logger.Debug("listed DNS records", "provider", "cloudflare", "zone_id", zoneID, "count", len(result))
	return result, nil
}

func (p *CloudflareProvider) CreateRecord(ctx context.Context, zoneID string, record *entity.DNSRecord) error {
	logger.Debug("creating DNS record", "provider", "cloudflare", "zone_id", zoneID, "name", record.Name, "type", record.Type)

	params := cfdns.RecordNewParams{
		ZoneID: cloudflare.F(zoneID),
		Record: buildRecordParam(record),
	}

	err := retry.Do(ctx, func() error {
		_, err := p.client.DNS.Records.New(ctx, params)
		return err
	}, retry.WithIsRetryable(IsRetryableDNSError))
	if err != nil {
		logger.Error("failed to create DNS record", "zone_id", zoneID, "name", record.Name, "error", err)
		return domainerr.WrapOp("create record", err)
	}

	logger.Info("DNS record created", "provider", "cloudflare", "zone_id", zoneID, "name", record.Name, "type", record.Type)
	return nil
}

func (p *CloudflareProvider) UpdateRecord(ctx context.Context, zoneID, recordID string, record *entity.DNSRecord) error {
	logger.Debug("updating DNS record", "provider", "cloudflare", "zone_id", zoneID, "record_id", recordID, "name", record.Name)

	params := cfdns.RecordEditParams{
		ZoneID: cloudflare.F(zoneID),
		Record: buildRecordParam(record),
	}

	err := retry.Do(ctx, func() error {
		_, err := p.client.DNS.Records.Edit(ctx, recordID, params)
		return err
	}, retry.WithIsRetryable(IsRetryableDNSError))
	if err != nil {
		logger.Error("failed to update DNS record", "zone_id", zoneID, "record_id", recordID, "error", err)
		return domainerr.WrapOp("update record", err)
	}

	logger.Info("DNS record updated", "provider", "cloudflare", "zone_id", zoneID, "record_id", recordID, "name", record.Name)
	return nil
}

func buildRecordParam(record *entity.DNSRecord) cfdns.RecordUnionParam {
	ttl := record.TTL
	if ttl == 0 {
		ttl = 1
	}

	switch record.Type {
	case entity.DNSRecordTypeMX:
		param := cfdns.MXRecordParam{
			Name:     cloudflare.F(record.Name),
			Type:     cloudflare.F(cfdns.MXRecordTypeMX),
			Content:  cloudflare.F(record.Content),
			TTL:      cloudflare.F(cfdns.TTL(ttl)),
			Priority: cloudflare.F(float64(record.Priority)),
		}
		if record.Comment != "" {
			param.Comment = cloudflare.F(record.Comment)
		}
		return param
	default:
		param := cfdns.TXTRecordParam{
			Name:    cloudflare.F(record.Name),
			Type:    cloudflare.F(cfdns.TXTRecordTypeTXT),
			Content: cloudflare.F(record.Content),
			TTL:     cloudflare.F(cfdns.TTL(ttl)),
		}
		if record.Comment != "" {
			param.Comment = cloudflare.F(record.Comment)
		}
		return param
	}
}
