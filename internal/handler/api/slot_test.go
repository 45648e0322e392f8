//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"court-slot-engine/internal/domain/booking"
	"court-slot-engine/internal/domain/calendar"
	"court-slot-engine/internal/domain/user"
	"court-slot-engine/internal/handler/api"
	resdto "court-slot-engine/internal/handler/dto/response"
	"court-slot-engine/internal/pkg/errs"
	"court-slot-engine/internal/usecase/commands"
	"court-slot-engine/internal/usecase/queries"
	"court-slot-engine/tests/common/httptest"
	commandsmock "court-slot-engine/tests/mock/commands"
	queriesmock "court-slot-engine/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type SlotHandlerTestSuite struct {
	suite.Suite
	router     *gin.Engine
	mockCtrl   *gomock.Controller
	mockSlots  *queriesmock.MockSlotQueries
	mockPrices *queriesmock.MockPriceQueries
	mockCmds   *commandsmock.MockSlotCommands
	owner      user.Actor
	resourceID uuid.UUID
}

func (s *SlotHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.mockCtrl = gomock.NewController(s.T())
	s.mockSlots = queriesmock.NewMockSlotQueries(s.mockCtrl)
	s.mockPrices = queriesmock.NewMockPriceQueries(s.mockCtrl)
	s.mockCmds = commandsmock.NewMockSlotCommands(s.mockCtrl)
	s.owner = user.NewActor(uuid.New(), user.RoleOwner)
	s.resourceID = uuid.New()

	h := api.NewSlotHandler(s.mockSlots, s.mockPrices, s.mockCmds)
	s.router.GET("/resources/:id/slots", h.List)
	s.router.GET("/resources/:id/price", h.Quote)
	s.router.PUT("/resources/:id/slots/:date/:start/maintenance", fakeAuth(s.owner), h.SetMaintenance)
}

func (s *SlotHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestSlotHandlerSuite(t *testing.T) {
	suite.Run(t, new(SlotHandlerTestSuite))
}

func (s *SlotHandlerTestSuite) TestList() {
	from := calendar.NewDate(2025, 6, 2)
	to := calendar.NewDate(2025, 6, 3)
	base := "/resources/" + s.resourceID.String() + "/slots"

	s.Run("success: wraps the slots with the range", func() {
		views := []queries.SlotView{
			{ResourceID: s.resourceID, ScheduleID: uuid.New(), Date: "2025-06-02", StartTime: "07:00", EndTime: "08:00", Price: 100000, Status: "available"},
			{ResourceID: s.resourceID, ScheduleID: uuid.New(), Date: "2025-06-02", StartTime: "08:00", EndTime: "09:00", Price: 100000, Status: "booked"},
		}
		s.mockSlots.EXPECT().ListSlots(gomock.Any(), s.resourceID, from, to).Return(views, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, base+"?from=2025-06-02&to=2025-06-03", nil, "")

		var body resdto.SlotListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(s.resourceID, body.ResourceID)
		s.Equal("2025-06-02", body.From)
		s.Require().Len(body.Slots, 2)
		s.Equal("booked", body.Slots[1].Status)
	})

	s.Run("success: empty range renders an empty list", func() {
		s.mockSlots.EXPECT().ListSlots(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, base+"?from=2025-06-02&to=2025-06-03", nil, "")

		var body resdto.SlotListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.NotNil(body.Slots)
		s.Empty(body.Slots)
	})

	s.Run("error: missing to", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, base+"?from=2025-06-02", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid date range")
	})

	s.Run("error: inverted range", func() {
		s.mockSlots.EXPECT().ListSlots(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errs.ErrInvalidRange)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, base+"?from=2025-06-03&to=2025-06-02", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})
}

func (s *SlotHandlerTestSuite) TestQuote() {
	url := "/resources/" + s.resourceID.String() + "/price?date=2025-06-02&start=10:00"

	s.Run("success", func() {
		promo := uuid.New()
		s.mockPrices.EXPECT().
			Quote(gomock.Any(), s.resourceID, calendar.NewDate(2025, 6, 2), calendar.MustTimeOfDay(10, 0)).
			Return(&queries.PriceQuoteView{
				ResourceID: s.resourceID, Date: "2025-06-02", StartTime: "10:00", EndTime: "11:00",
				Status: "available", BasePrice: 100000, FinalPrice: 80000, Deposit: 24000, PromotionID: &promo,
			}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var body resdto.PriceQuoteResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(int64(80000), body.FinalPrice)
		s.Equal(&promo, body.PromotionID)
	})

	s.Run("error: slot outside schedule", func() {
		s.mockPrices.EXPECT().Quote(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errs.ErrSlotNotFound)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Not found")
	})

	s.Run("error: malformed start", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/resources/"+s.resourceID.String()+"/price?date=2025-06-02&start=ten", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid start")
	})
}

func (s *SlotHandlerTestSuite) TestSetMaintenance() {
	url := "/resources/" + s.resourceID.String() + "/slots/2025-06-02/10:00/maintenance"

	s.Run("success", func() {
		s.mockCmds.EXPECT().SetMaintenance(gomock.Any(), commands.MaintenanceRequest{
			ResourceID: s.resourceID,
			Date:       calendar.NewDate(2025, 6, 2),
			Start:      calendar.MustTimeOfDay(10, 0),
			Enabled:    true,
		}, s.owner).Return(nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{"enabled": true}, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: enabled is required", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: booked slot", func() {
		s.mockCmds.EXPECT().SetMaintenance(gomock.Any(), gomock.Any(), gomock.Any()).Return(booking.ErrSlotUnavailable)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{"enabled": true}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Conflict")
	})

	s.Run("error: 401 without token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{"enabled": true}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})
}
