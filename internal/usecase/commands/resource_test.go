//go:build unit

package commands_test

import (
	"context"
	"testing"
	_ "time/tzdata"

	"court-slot-engine/internal/domain/booking"
	"court-slot-engine/internal/domain/resource"
	"court-slot-engine/internal/domain/user"
	"court-slot-engine/internal/pkg/errs"
	"court-slot-engine/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateResource(t *testing.T) {
	f := newFixture(t)
	uc := commands.NewResourceUseCase(f.store, f.clock, "Asia/Ho_Chi_Minh")
	refund := decimal.NewFromInt(80)

	res, err := uc.Create(context.Background(), commands.CreateResourceRequest{
		VenueID: uuid.New(),
		Name:    "  Court 7 ",
		Policy:  commands.PolicyPatch{RefundPercentage: &refund},
	}, f.owner)
	require.NoError(t, err)

	assert.Equal(t, "Court 7", res.Name())
	assert.Equal(t, "Asia/Ho_Chi_Minh", res.Timezone())
	assert.Equal(t, f.owner.ID, res.OwnerID())
	assert.True(t, res.Policy().DepositPercentage().Decimal().Equal(decimal.NewFromInt(30)))
	assert.True(t, res.Policy().RefundPercentage().Decimal().Equal(refund))
}

func TestCreateResource_Errors(t *testing.T) {
	tooHigh := decimal.NewFromInt(101)
	tests := []struct {
		name  string
		req   commands.CreateResourceRequest
		actor user.Actor
		errIs error
	}{
		{
			name:  "customer",
			req:   commands.CreateResourceRequest{VenueID: uuid.New(), Name: "Court"},
			actor: user.NewActor(uuid.New(), user.RoleCustomer),
			errIs: errs.ErrForbidden,
		},
		{
			name:  "empty name",
			req:   commands.CreateResourceRequest{VenueID: uuid.New(), Name: " "},
			actor: user.NewActor(uuid.New(), user.RoleOwner),
			errIs: resource.ErrEmptyResourceName,
		},
		{
			name:  "unknown zone",
			req:   commands.CreateResourceRequest{VenueID: uuid.New(), Name: "Court", Timezone: "Mars/Olympus"},
			actor: user.NewActor(uuid.New(), user.RoleOwner),
			errIs: resource.ErrInvalidTimezone,
		},
		{
			name: "deposit above 100",
			req: commands.CreateResourceRequest{
				VenueID: uuid.New(),
				Name:    "Court",
				Policy:  commands.PolicyPatch{DepositPercentage: &tooHigh},
			},
			actor: user.NewActor(uuid.New(), user.RoleAdmin),
			errIs: booking.ErrInvalidPolicy,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			uc := commands.NewResourceUseCase(f.store, f.clock, "UTC")

			_, err := uc.Create(context.Background(), tt.req, tt.actor)

			require.ErrorIs(t, err, tt.errIs)
		})
	}
}

func TestUpdatePolicy(t *testing.T) {
	f := newFixture(t)
	uc := commands.NewResourceUseCase(f.store, f.clock, "UTC")
	window := 48

	_, err := uc.UpdatePolicy(context.Background(), f.resource.ID(), commands.PolicyPatch{CancellationWindowHours: &window}, f.customer)
	require.ErrorIs(t, err, errs.ErrForbidden)

	updated, err := uc.UpdatePolicy(context.Background(), f.resource.ID(), commands.PolicyPatch{CancellationWindowHours: &window}, f.owner)
	require.NoError(t, err)
	assert.Equal(t, 48, updated.Policy().CancellationWindowHours())
	assert.True(t, updated.Policy().RefundPercentage().Decimal().Equal(decimal.NewFromInt(50)))

	// New bookings snapshot the new policy.
	b := f.bookAt(t, 10)
	assert.Equal(t, 48, b.Policy().CancellationWindowHours())

	negative := -1
	_, err = uc.UpdatePolicy(context.Background(), f.resource.ID(), commands.PolicyPatch{CancellationWindowHours: &negative}, f.owner)
	require.ErrorIs(t, err, booking.ErrInvalidPolicy)
}
