//go:build e2e

package booking_test

import (
	"context"
	"fmt"
	"net/http"
	nethttptest "net/http/httptest"
	"testing"
	"time"

	"court-slot-engine/internal/domain/calendar"
	"court-slot-engine/internal/domain/money"
	"court-slot-engine/internal/domain/user"
	"court-slot-engine/internal/handler/dto/response"
	"court-slot-engine/tests/common/builder"
	"court-slot-engine/tests/common/dbtest"
	"court-slot-engine/tests/common/httptest"
	"court-slot-engine/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"golang.org/x/sync/errgroup"
)

const (
	resourcesURL = "/api/resources"
	slotsURL     = "/api/resources/%s/slots?from=%s&to=%s"
	bookingsURL  = "/api/bookings"
	cancelURL    = "/api/bookings/%s/cancel"
)

type BookingSuite struct {
	e2e.SharedSuite
}

func TestBookingSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(BookingSuite))
}

// nextMonday is at least a week out so the cancellation window is still open.
func nextMonday() calendar.Date {
	d := calendar.DateOf(time.Now().UTC()).AddDays(8)
	for d.Weekday() != calendar.Monday {
		d = d.AddDays(1)
	}
	return d
}

// setupCourt creates a resource with a Monday 07:00-17:00 hourly schedule through the API.
func (s *BookingSuite) setupCourt(t *testing.T) (uuid.UUID, string) {
	t.Helper()
	_, ownerToken := s.JWT.NewActorToken(t, user.RoleOwner)

	w := httptest.PerformRequest(t, s.Router, http.MethodPost, resourcesURL,
		builder.NewResourceBuilder().BuildCreateRequestDTO(), ownerToken)
	var res response.ResourceResponse
	httptest.AssertSuccessResponse(t, w, http.StatusCreated, &res)

	w = httptest.PerformRequest(t, s.Router, http.MethodPost, resourcesURL+"/"+res.ID.String()+"/schedules",
		builder.NewScheduleBuilder().BuildCreateRequestDTO(), ownerToken)
	httptest.AssertSuccessResponse(t, w, http.StatusCreated, nil)
	return res.ID, ownerToken
}

func (s *BookingSuite) listSlots(t *testing.T, resourceID uuid.UUID, d calendar.Date) []response.SlotResponse {
	t.Helper()
	w := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(slotsURL, resourceID, d, d), nil, "")
	var list response.SlotListResponse
	httptest.AssertSuccessResponse(t, w, http.StatusOK, &list)
	return list.Slots
}

func (s *BookingSuite) book(t *testing.T, resourceID uuid.UUID, d calendar.Date, start, token string) *nethttptest.ResponseRecorder {
	t.Helper()
	body := map[string]any{"resource_id": resourceID, "date": d.String(), "start_time": start}
	return httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, body, token)
}

// =============================================================================
// TestBookingLifecycle
// =============================================================================

func (s *BookingSuite) TestBookingLifecycle() {
	monday := nextMonday()

	s.Run("book, see the slot taken, cancel with refund, see it free again", func() {
		t := s.T()
		resourceID, _ := s.setupCourt(t)

		slots := s.listSlots(t, resourceID, monday)
		require.Len(t, slots, 10)
		for _, sl := range slots {
			require.Equal(t, "available", sl.Status)
		}

		_, customerToken := s.JWT.NewActorToken(t, user.RoleCustomer)
		w := s.book(t, resourceID, monday, "10:00", customerToken)
		var created response.BookingResponse
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &created)

		want := response.BookingResponse{
			ResourceID: resourceID,
			Date:       monday.String(),
			StartTime:  "10:00",
			EndTime:    "11:00",
			BasePrice:  100000,
			Price:      100000,
			Deposit:    30000,
			Status:     "pending",
		}
		if diff := cmp.Diff(want, created, cmpopts.IgnoreFields(response.BookingResponse{},
			"ID", "CustomerID", "StartsAt", "EndsAt", "DepositPercentage", "CancellationWindowHours",
			"RefundPercentage", "CreatedAt", "UpdatedAt")); diff != "" {
			t.Errorf("booking mismatch (-want +got):\n%s", diff)
		}

		slots = s.listSlots(t, resourceID, monday)
		require.Equal(t, "booked", slots[3].Status)
		require.Equal(t, "10:00", slots[3].StartTime)

		_, rivalToken := s.JWT.NewActorToken(t, user.RoleCustomer)
		w = s.book(t, resourceID, monday, "10:00", rivalToken)
		httptest.AssertErrorReason(t, w, http.StatusConflict, "slot is not available")

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(cancelURL, created.ID), nil, customerToken)
		var cancelled response.BookingResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &cancelled)
		require.Equal(t, "cancelled", cancelled.Status)
		require.Equal(t, int64(50000), cancelled.RefundAmount)

		slots = s.listSlots(t, resourceID, monday)
		require.Equal(t, "available", slots[3].Status)
	})

	s.Run("another customer cannot cancel or read the booking", func() {
		t := s.T()
		resourceID, _ := s.setupCourt(t)
		_, customerToken := s.JWT.NewActorToken(t, user.RoleCustomer)
		_, strangerToken := s.JWT.NewActorToken(t, user.RoleCustomer)

		w := s.book(t, resourceID, monday, "08:00", customerToken)
		var created response.BookingResponse
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &created)

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(cancelURL, created.ID), nil, strangerToken)
		httptest.AssertErrorResponse(t, w, http.StatusForbidden, "Forbidden")

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, bookingsURL+"/"+created.ID.String(), nil, strangerToken)
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "Not found")
	})

	s.Run("owners cannot book; anonymous and expired callers are rejected", func() {
		t := s.T()
		resourceID, ownerToken := s.setupCourt(t)

		w := s.book(t, resourceID, monday, "09:00", ownerToken)
		httptest.AssertErrorResponse(t, w, http.StatusForbidden, "")

		w = s.book(t, resourceID, monday, "09:00", "")
		httptest.AssertErrorResponse(t, w, http.StatusUnauthorized, "Access token required")

		expired := s.JWT.CreateExpiredToken(t, uuid.New(), user.RoleCustomer)
		w = s.book(t, resourceID, monday, "09:00", expired)
		httptest.AssertErrorResponse(t, w, http.StatusUnauthorized, "Invalid or expired token")
	})

	s.Run("slot outside the schedule is not found", func() {
		t := s.T()
		resourceID, _ := s.setupCourt(t)
		_, customerToken := s.JWT.NewActorToken(t, user.RoleCustomer)

		w := s.book(t, resourceID, monday, "18:00", customerToken)
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "Not found")

		w = s.book(t, resourceID, monday.AddDays(1), "10:00", customerToken)
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "Not found")
	})
}

// =============================================================================
// TestConcurrentBooking
// =============================================================================

func (s *BookingSuite) TestConcurrentBooking() {
	s.Run("exactly one of many simultaneous attempts wins the slot", func() {
		t := s.T()
		resourceID, _ := s.setupCourt(t)
		monday := nextMonday()

		const attempts = 12
		codes := make([]int, attempts)
		tokens := make([]string, attempts)
		for i := range tokens {
			_, tokens[i] = s.JWT.NewActorToken(t, user.RoleCustomer)
		}

		var g errgroup.Group
		start := make(chan struct{})
		for i := range attempts {
			g.Go(func() error {
				<-start
				codes[i] = s.book(t, resourceID, monday, "12:00", tokens[i]).Code
				return nil
			})
		}
		close(start)
		require.NoError(t, g.Wait())

		var created, conflicts int
		for _, c := range codes {
			switch c {
			case http.StatusCreated:
				created++
			case http.StatusConflict:
				conflicts++
			}
		}
		require.Equal(t, 1, created, "codes: %v", codes)
		require.Equal(t, attempts-1, conflicts, "codes: %v", codes)
		require.Equal(t, 1, dbtest.CountBookings(t, s.DB, resourceID, "pending"))
	})
}

// =============================================================================
// TestPaymentAndOutbox
// =============================================================================

func (s *BookingSuite) TestPaymentAndOutbox() {
	s.Run("deposit payment confirms; events are dispatched once", func() {
		t := s.T()
		ctx := context.Background()
		resourceID := dbtest.CreateTestResource(t, s.DB, uuid.New(), "Seeded Court", "UTC")
		dbtest.CreateTestSchedule(t, s.DB, resourceID, []int16{1}, 7*60, 17*60, 60, 100000)
		_, customerToken := s.JWT.NewActorToken(t, user.RoleCustomer)

		w := s.book(t, resourceID, nextMonday(), "14:00", customerToken)
		var created response.BookingResponse
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &created)

		_, err := s.Bookings.ConfirmPayment(ctx, created.ID, money.MustNew(29999))
		require.Error(t, err)

		confirmed, err := s.Bookings.ConfirmPayment(ctx, created.ID, money.MustNew(30000))
		require.NoError(t, err)
		require.Equal(t, "confirmed", string(confirmed.Status()))

		queued := dbtest.CountOutbox(t, s.DB, "queued")
		require.Equal(t, 2, queued)

		sent, err := s.Outbox.DispatchDue(ctx, 100)
		require.NoError(t, err)
		require.Equal(t, queued, sent)
		require.Equal(t, 0, dbtest.CountOutbox(t, s.DB, "queued"))

		sent, err = s.Outbox.DispatchDue(ctx, 100)
		require.NoError(t, err)
		require.Zero(t, sent)
	})
}
