package service

import (
	"github.com/lite-lake/cf-empty-email/internal/domain/entity"
)

// The canonical "this domain sends no email" record set, in reporting order.
// SPF rejects all senders, the wildcard DKIM key is published empty, DMARC
// rejects on any failure, and the null MX records (RFC 7505) announce that
// neither the apex nor any subdomain accepts mail. TTL 1 is Cloudflare's
// "automatic".
var emptyEmailRecords = []entity.DNSRecord{
	{
		Type:    entity.DNSRecordTypeTXT,
		Name:    "@",
		Content: "v=spf1 -all",
		TTL:     1,
		Comment: "Reject all senders SPF record",
	},
	{
		Type:    entity.DNSRecordTypeTXT,
		Name:    "*._domainkey",
		Content: "v=DKIM1; p=",
		TTL:     1,
		Comment: "Reject all DKIM record",
	},
	{
		Type:    entity.DNSRecordTypeTXT,
		Name:    "_dmarc",
		Content: "v=DMARC1;p=reject;sp=reject;adkim=s;aspf=s",
		TTL:     1,
		Comment: "DMARC reject all record",
	},
	{
		Type:     entity.DNSRecordTypeMX,
		Name:     "@",
		Content:  ".",
		Priority: 0,
		TTL:      1,
		Comment:  "Null mail server for root domain",
	},
	{
		Type:     entity.DNSRecordTypeMX,
		Name:     "*",
		Content:  ".",
		Priority: 0,
		TTL:      1,
		Comment:  "Null mail server for all subdomains",
	},
}

// EmptyEmailTemplate renders the record set for a zone, with the relative
// labels expanded to FQDNs under the zone apex. The returned slice is a fresh
// copy on every call.
func EmptyEmailTemplate(zone string) []entity.DNSRecord {
	records := make([]entity.DNSRecord, len(emptyEmailRecords))
	copy(records, emptyEmailRecords)
	for i := range records {
		records[i].Name = entity.FullName(records[i].Name, zone)
	}
	return records
}
