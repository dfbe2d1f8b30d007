package service

import (
	"context"
	"fmt"

	"github.com/lite-lake/cf-empty-email/internal/domain"
	"github.com/lite-lake/cf-empty-email/internal/domain/entity"
)

type ZoneLister interface {
	ListZones(ctx context.Context) ([]entity.Zone, error)
}

// ZoneNotFoundError carries the zone listing that was fetched during the
// failed lookup, so the caller can show the user what is actually available.
type ZoneNotFoundError struct {
	Name      string
	Available []entity.Zone
}

func (e *ZoneNotFoundError) Error() string {
	return fmt.Sprintf("zone not found: %s", e.Name)
}

func (e *ZoneNotFoundError) Unwrap() error {
	return domain.ErrZoneNotFound
}

type ZoneResolver struct {
	lister ZoneLister
}

func NewZoneResolver(lister ZoneLister) *ZoneResolver {
	return &ZoneResolver{lister: lister}
}

// Resolve looks the named zone up among the zones visible to the credentials.
// An empty name returns ErrNoZoneSpecified without touching the network; the
// caller is expected to list the available zones and stop.
func (r *ZoneResolver) Resolve(ctx context.Context, name string) (*entity.Zone, error) {
	if name == "" {
		return nil, domain.ErrNoZoneSpecified
	}

	zones, err := r.lister.ListZones(ctx)
	if err != nil {
		return nil, domain.WrapOp("list zones", err)
	}

	for i := range zones {
		if zones[i].Matches(name) {
			return &zones[i], nil
		}
	}
	return nil, &ZoneNotFoundError{Name: name, Available: zones}
}

// Available returns the zone listing for the no-argument invocation.
func (r *ZoneResolver) Available(ctx context.Context) ([]entity.Zone, error) {
	zones, err := r.lister.ListZones(ctx)
	if err != nil {
		return nil, domain.WrapOp("list zones", err)
	}
	return zones, nil
}
