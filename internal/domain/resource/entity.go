package resource

import (
	"errors"
	"strings"
	"time"

	"court-slot-engine/internal/domain/booking"

	"github.com/google/uuid"
)

var (
	ErrEmptyResourceName   = errors.New("resource name cannot be empty")
	ErrResourceNameTooLong = errors.New("resource name is too long (max 255 characters)")
	ErrInvalidTimezone     = errors.New("invalid IANA timezone")
	ErrResourceNotFound    = errors.New("resource not found")
)

const (
	MaxResourceNameLength = 255
)

// Resource is a bookable court or coach that belongs to a venue.
type Resource struct {
	id        uuid.UUID
	venueID   uuid.UUID
	ownerID   uuid.UUID
	name      string
	timezone  string
	location  *time.Location
	policy    booking.Policy
	createdAt time.Time
	updatedAt time.Time
}

func NewResource(
	id, venueID, ownerID uuid.UUID,
	name, timezone string,
	policy booking.Policy,
	now time.Time,
) (*Resource, error) {
	if err := validateResourceName(name); err != nil {
		return nil, err
	}
	loc, err := loadLocation(timezone)
	if err != nil {
		return nil, err
	}
	if id == uuid.Nil {
		id = uuid.New()
	}

	return &Resource{
		id:        id,
		venueID:   venueID,
		ownerID:   ownerID,
		name:      strings.TrimSpace(name),
		timezone:  timezone,
		location:  loc,
		policy:    policy,
		createdAt: now,
		updatedAt: now,
	}, nil
}

// ReconstructResource rebuilds a persisted resource. An unknown zone falls back to UTC.
func ReconstructResource(
	id, venueID, ownerID uuid.UUID,
	name, timezone string,
	policy booking.Policy,
	createdAt, updatedAt time.Time,
) *Resource {
	loc, err := loadLocation(timezone)
	if err != nil {
		loc = time.UTC
	}
	return &Resource{
		id:        id,
		venueID:   venueID,
		ownerID:   ownerID,
		name:      name,
		timezone:  timezone,
		location:  loc,
		policy:    policy,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (r *Resource) IsOwnedBy(userID uuid.UUID) bool {
	return r.ownerID == userID
}

func (r *Resource) ChangePolicy(p booking.Policy, now time.Time) {
	r.policy = p
	r.updatedAt = now
}

// Scopes lists the promotion scopes that apply to this resource.
func (r *Resource) Scopes() []uuid.UUID {
	return []uuid.UUID{r.id, r.venueID}
}

func validateResourceName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyResourceName
	}
	if len(name) > MaxResourceNameLength {
		return ErrResourceNameTooLong
	}
	return nil
}

func loadLocation(tz string) (*time.Location, error) {
	if strings.TrimSpace(tz) == "" {
		return nil, ErrInvalidTimezone
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, ErrInvalidTimezone
	}
	return loc, nil
}

func (r *Resource) ID() uuid.UUID            { return r.id }
func (r *Resource) VenueID() uuid.UUID       { return r.venueID }
func (r *Resource) OwnerID() uuid.UUID       { return r.ownerID }
func (r *Resource) Name() string             { return r.name }
func (r *Resource) Timezone() string         { return r.timezone }
func (r *Resource) Location() *time.Location { return r.location }
func (r *Resource) Policy() booking.Policy   { return r.policy }
func (r *Resource) CreatedAt() time.Time     { return r.createdAt }
func (r *Resource) UpdatedAt() time.Time     { return r.updatedAt }
