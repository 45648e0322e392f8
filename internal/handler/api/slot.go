package api

import (
	"net/http"

	"court-slot-engine/internal/domain/calendar"
	reqdto "court-slot-engine/internal/handler/dto/request"
	resdto "court-slot-engine/internal/handler/dto/response"
	"court-slot-engine/internal/usecase/commands"
	"court-slot-engine/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type SlotHandler struct {
	slots  queries.SlotQueries
	prices queries.PriceQueries
	cmds   commands.SlotCommands
}

func NewSlotHandler(slots queries.SlotQueries, prices queries.PriceQueries, cmds commands.SlotCommands) *SlotHandler {
	return &SlotHandler{slots: slots, prices: prices, cmds: cmds}
}

// @Summary List slots
// @Description Materialize the slots of a resource for an inclusive date range in the resource's timezone
// @Tags slots
// @Produce json
// @Param id path string true "Resource ID"
// @Param from query string true "First date (YYYY-MM-DD)"
// @Param to query string true "Last date (YYYY-MM-DD)"
// @Success 200 {object} resdto.SlotListResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /resources/{id}/slots [get]
func (h *SlotHandler) List(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	rng, err := reqdto.ParseDateRange(c.Query("from"), c.Query("to"))
	if err != nil {
		abortBadRequest(c, err, "Invalid date range")
		return
	}

	views, err := h.slots.ListSlots(c.Request.Context(), id, rng.From, rng.To)
	if err != nil {
		abortWithUsecaseError(c, err, "Failed to list slots")
		return
	}
	resp, err := resdto.FromSlotViews(id, rng.From.String(), rng.To.String(), views)
	if err != nil {
		abortWithUsecaseError(c, err, "Failed to list slots")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Quote slot price
// @Description Resolve the price a booking of the slot would be charged now, promotions included
// @Tags slots
// @Produce json
// @Param id path string true "Resource ID"
// @Param date query string true "Slot date (YYYY-MM-DD)"
// @Param start query string true "Slot start (HH:MM)"
// @Success 200 {object} resdto.PriceQuoteResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /resources/{id}/price [get]
func (h *SlotHandler) Quote(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	date, err := calendar.ParseDate(c.Query("date"))
	if err != nil {
		abortBadRequest(c, err, "Invalid date")
		return
	}
	start, err := calendar.ParseTimeOfDay(c.Query("start"))
	if err != nil {
		abortBadRequest(c, err, "Invalid start")
		return
	}

	view, err := h.prices.Quote(c.Request.Context(), id, date, start)
	if err != nil {
		abortWithUsecaseError(c, err, "Failed to quote price")
		return
	}
	resp, err := resdto.FromPriceQuoteView(view)
	if err != nil {
		abortWithUsecaseError(c, err, "Failed to quote price")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Set slot maintenance
// @Description Block or unblock a scheduled, unbooked future slot
// @Tags slots
// @Accept json
// @Security BearerAuth
// @Param id path string true "Resource ID"
// @Param date path string true "Slot date (YYYY-MM-DD)"
// @Param start path string true "Slot start (HH:MM)"
// @Param request body reqdto.MaintenanceRequest true "Maintenance flag"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /resources/{id}/slots/{date}/{start}/maintenance [put]
func (h *SlotHandler) SetMaintenance(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	actor, ok := actorOf(c)
	if !ok {
		return
	}
	var req reqdto.MaintenanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err, "Invalid request")
		return
	}
	cmd, err := req.ToCommand(id, c.Param("date"), c.Param("start"))
	if err != nil {
		abortBadRequest(c, err, "Invalid slot")
		return
	}

	if err := h.cmds.SetMaintenance(c.Request.Context(), cmd, actor); err != nil {
		abortWithUsecaseError(c, err, "Failed to update slot")
		return
	}
	c.Status(http.StatusNoContent)
}
