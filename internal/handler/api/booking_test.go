//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"court-slot-engine/internal/domain/booking"
	"court-slot-engine/internal/domain/user"
	"court-slot-engine/internal/handler/api"
	resdto "court-slot-engine/internal/handler/dto/response"
	"court-slot-engine/internal/pkg/errs"
	"court-slot-engine/internal/usecase/commands"
	"court-slot-engine/internal/usecase/queries"
	"court-slot-engine/tests/common/builder"
	"court-slot-engine/tests/common/httptest"
	"court-slot-engine/tests/common/testutil"
	commandsmock "court-slot-engine/tests/mock/commands"
	queriesmock "court-slot-engine/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockBookingCommands
	mockQueries  *queriesmock.MockBookingQueries
	customer     user.Actor
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockBookingQueries(s.mockCtrl)
	s.customer = user.NewActor(uuid.New(), user.RoleCustomer)

	h := api.NewBookingHandler(s.mockCommands, s.mockQueries)
	auth := fakeAuth(s.customer)

	s.router.POST("/bookings", auth, h.Create)
	s.router.GET("/bookings", auth, h.ListMine)
	s.router.GET("/bookings/:id", auth, h.Get)
	s.router.POST("/bookings/:id/cancel", auth, h.Cancel)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

// ================================================================================
// TestCreate
// ================================================================================

func (s *BookingHandlerTestSuite) TestCreate() {
	b := builder.NewBookingBuilder().WithCustomerID(s.customer.ID)
	reqBody := b.BuildCreateRequestDTO()
	created := b.MustBuild()

	s.Run("success: returns 201 with the pending booking", func() {
		s.mockCommands.EXPECT().
			Book(gomock.Any(), commands.BookRequest{ResourceID: b.ResourceID, Date: b.Date, Start: b.Start}, s.customer.ID).
			Return(created, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings", reqBody, "bearer-token")

		var body resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(created.ID(), body.ID)
		s.Equal("pending", body.Status)
		s.Equal(int64(30000), body.Deposit)
	})

	validation := []testCase{
		{name: "missing resource_id", mutate: testutil.Field("resource_id", nil), expectCode: http.StatusBadRequest},
		{name: "missing date", mutate: testutil.Field("date", nil), expectCode: http.StatusBadRequest},
		{name: "malformed date", mutate: testutil.Field("date", "02/06/2025"), expectCode: http.StatusBadRequest},
		{name: "malformed start", mutate: testutil.Field("start_time", "10h"), expectCode: http.StatusBadRequest},
		{name: "start past midnight", mutate: testutil.Field("start_time", "24:30"), expectCode: http.StatusBadRequest},
		{name: "missing date and start", mutate: testutil.Fields(testutil.Field("date", nil), testutil.Field("start_time", nil)), expectCode: http.StatusBadRequest},
	}
	for _, tc := range validation {
		s.Run("error: "+tc.name, func() {
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings",
				testutil.DtoMap(s.T(), reqBody, tc.mutate), "bearer-token")
			httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "Invalid request")
		})
	}

	usecaseErrors := []struct {
		name       string
		err        error
		expectCode int
	}{
		{name: "slot already booked", err: booking.ErrSlotUnavailable, expectCode: http.StatusConflict},
		{name: "slot not in schedule", err: errs.ErrSlotNotFound, expectCode: http.StatusNotFound},
		{name: "unknown resource", err: errs.Mark(errors.New("no rows"), errs.ErrResourceNotFound), expectCode: http.StatusNotFound},
		{name: "database failure", err: errs.Mark(errors.New("conn refused"), errs.ErrDatabaseOperationFailed), expectCode: http.StatusInternalServerError},
	}
	for _, tc := range usecaseErrors {
		s.Run("error: "+tc.name, func() {
			s.mockCommands.EXPECT().Book(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, tc.err)
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings", reqBody, "bearer-token")
			httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "")
		})
	}

	s.Run("error: 401 without token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings", reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})
}

// ================================================================================
// TestGet / TestListMine
// ================================================================================

func (s *BookingHandlerTestSuite) TestGet() {
	view := builder.NewBookingBuilder().WithCustomerID(s.customer.ID).BuildView()

	s.Run("success", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID, s.customer).Return(view, nil)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/"+view.ID.String(), nil, "bearer-token")

		var body resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(view.ID, body.ID)
		s.Equal(view.StartTime, body.StartTime)
	})

	s.Run("error: 404 for bookings of others", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errs.ErrBookingNotFound)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/"+uuid.NewString(), nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Not found")
	})

	s.Run("error: 400 for malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/not-a-uuid", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})
}

func (s *BookingHandlerTestSuite) TestListMine() {
	item := &queries.BookingListItem{ID: uuid.New(), ResourceID: uuid.New(), Date: "2025-06-02", StartTime: "10:00", EndTime: "11:00", Price: 100000, Status: "pending"}
	next := &queries.Cursor{After: "djE6MTIzXzQ1Ng"}

	s.Run("success: clamps limit and forwards cursor", func() {
		s.mockQueries.EXPECT().
			ListMine(gomock.Any(), s.customer.ID, &queries.Cursor{After: "abc"}, queries.MaxListLimit).
			Return([]*queries.BookingListItem{item}, next, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings?limit=5000&after=abc", nil, "bearer-token")

		var body resdto.BookingListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body.Bookings, 1)
		s.Equal(item.ID, body.Bookings[0].ID)
		s.Equal(next.After, body.NextCursor)
	})

	s.Run("error: 400 for a bad cursor", func() {
		s.mockQueries.EXPECT().ListMine(gomock.Any(), gomock.Any(), gomock.Any(), queries.DefaultListLimit).
			Return(nil, nil, queries.ErrInvalidCursor)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings?after=zzz", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})
}

// ================================================================================
// TestCancel
// ================================================================================

func (s *BookingHandlerTestSuite) TestCancel() {
	b := builder.NewBookingBuilder().WithCustomerID(s.customer.ID)
	cancelled := b.BuildWithStatus(booking.StatusCancelled)
	url := "/bookings/" + cancelled.ID().String() + "/cancel"

	s.Run("success: returns refund", func() {
		s.mockCommands.EXPECT().Cancel(gomock.Any(), cancelled.ID(), s.customer).Return(cancelled, nil)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")

		var body resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("cancelled", body.Status)
		s.Equal(cancelled.RefundAmount().Amount(), body.RefundAmount)
	})

	for _, tc := range []struct {
		name       string
		err        error
		expectCode int
	}{
		{name: "not the customer", err: errs.ErrForbidden, expectCode: http.StatusForbidden},
		{name: "already cancelled", err: booking.ErrInvalidState, expectCode: http.StatusConflict},
		{name: "unknown booking", err: errs.ErrBookingNotFound, expectCode: http.StatusNotFound},
	} {
		s.Run("error: "+tc.name, func() {
			s.mockCommands.EXPECT().Cancel(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, tc.err)
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
			httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "")
		})
	}
}
