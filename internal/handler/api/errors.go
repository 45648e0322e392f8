package api

import (
	"errors"
	"net/http"

	"court-slot-engine/internal/domain/booking"
	"court-slot-engine/internal/domain/calendar"
	"court-slot-engine/internal/domain/money"
	"court-slot-engine/internal/domain/promotion"
	"court-slot-engine/internal/domain/resource"
	"court-slot-engine/internal/domain/revenue"
	"court-slot-engine/internal/domain/schedule"
	"court-slot-engine/internal/domain/user"
	reqdto "court-slot-engine/internal/handler/dto/request"
	"court-slot-engine/internal/handler/httperr"
	"court-slot-engine/internal/handler/middleware"
	"court-slot-engine/internal/pkg/errs"
	"court-slot-engine/internal/usecase/commands"
	"court-slot-engine/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type errorMapping struct {
	targets []error
	status  int
	message string
}

// First match wins, so conflicts are checked before the broad validation mark.
var errorMappings = []errorMapping{
	{
		targets: []error{errs.ErrForbidden},
		status:  http.StatusForbidden,
		message: "Forbidden",
	},
	{
		targets: []error{errs.ErrResourceNotFound, errs.ErrScheduleNotFound, errs.ErrSlotNotFound, errs.ErrBookingNotFound},
		status:  http.StatusNotFound,
		message: "Not found",
	},
	{
		targets: []error{schedule.ErrScheduleOverlap, booking.ErrSlotUnavailable, booking.ErrInvalidState, commands.ErrDuplicateResource},
		status:  http.StatusConflict,
		message: "Conflict",
	},
	{
		targets: []error{
			errs.ErrDomainValidation, errs.ErrInvalidRange, queries.ErrInvalidCursor, reqdto.ErrPromotionScope,
			calendar.ErrInvalidDate, calendar.ErrInvalidTimeOfDay, calendar.ErrInvalidWeekday, calendar.ErrEmptyWeekdays,
			money.ErrNegativeAmount, money.ErrInvalidPercentage, booking.ErrInvalidPolicy,
			resource.ErrEmptyResourceName, resource.ErrResourceNameTooLong, resource.ErrInvalidTimezone,
			promotion.ErrInvalidDiscountType, promotion.ErrInvalidDiscountAmount, promotion.ErrInvalidDiscountPercent, promotion.ErrDiscountTooLarge,
			promotion.ErrInvalidValidity, revenue.ErrInvalidGranularity,
		},
		status:  http.StatusBadRequest,
		message: "Invalid request",
	},
}

// abortWithUsecaseError maps err onto an HTTP status. Unmapped errors become a 500 with fallback.
func abortWithUsecaseError(c *gin.Context, err error, fallback string) {
	for _, m := range errorMappings {
		for _, target := range m.targets {
			if errors.Is(err, target) {
				var detail any
				if m.status != http.StatusForbidden {
					detail = gin.H{"reason": err.Error()}
				}
				httperr.AbortWithError(c, m.status, err, m.message, detail)
				return
			}
		}
	}
	httperr.AbortWithError(c, http.StatusInternalServerError, err, fallback, nil)
}

func abortBadRequest(c *gin.Context, err error, msg string) {
	httperr.AbortWithError(c, http.StatusBadRequest, err, msg, gin.H{"reason": err.Error()})
}

func uuidParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		abortBadRequest(c, err, "Invalid "+name)
		return uuid.Nil, false
	}
	return id, true
}

// actorOf fails with 401 when the route is missing RequireAuth.
func actorOf(c *gin.Context) (user.Actor, bool) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthenticated, "Unauthorized", nil)
		return user.Actor{}, false
	}
	return actor, true
}

var errUnauthenticated = errs.New("no authenticated user in context")
