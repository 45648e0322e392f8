package api

import (
	"net/http"
	"strconv"

	reqdto "court-slot-engine/internal/handler/dto/request"
	resdto "court-slot-engine/internal/handler/dto/response"
	"court-slot-engine/internal/usecase/commands"
	"court-slot-engine/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	cmds commands.BookingCommands
	q    queries.BookingQueries
}

func NewBookingHandler(cmds commands.BookingCommands, q queries.BookingQueries) *BookingHandler {
	return &BookingHandler{cmds: cmds, q: q}
}

// @Summary Book a slot
// @Description Create a pending booking. Concurrent attempts on one slot produce exactly one booking; the rest get 409.
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateBookingRequest true "Slot to book"
// @Success 201 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /bookings [post]
func (h *BookingHandler) Create(c *gin.Context) {
	actor, ok := actorOf(c)
	if !ok {
		return
	}
	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err, "Invalid request")
		return
	}
	cmd, err := req.ToCommand()
	if err != nil {
		abortBadRequest(c, err, "Invalid request")
		return
	}

	b, err := h.cmds.Book(c.Request.Context(), cmd, actor.ID)
	if err != nil {
		abortWithUsecaseError(c, err, "Failed to create booking")
		return
	}
	h.respondBooking(c, http.StatusCreated, queries.NewBookingView(b))
}

// @Summary Get booking
// @Description Visible to the customer, the resource owner and admins
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /bookings/{id} [get]
func (h *BookingHandler) Get(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	actor, ok := actorOf(c)
	if !ok {
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id, actor)
	if err != nil {
		abortWithUsecaseError(c, err, "Failed to load booking")
		return
	}
	h.respondBooking(c, http.StatusOK, view)
}

// @Summary List my bookings
// @Description Newest first, keyset paginated
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Max items (default 20)"
// @Param after query string false "Cursor for keyset pagination"
// @Success 200 {object} resdto.BookingListResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /bookings [get]
func (h *BookingHandler) ListMine(c *gin.Context) {
	actor, ok := actorOf(c)
	if !ok {
		return
	}
	limit := queries.DefaultListLimit
	if v := c.Query("limit"); v != "" {
		if iv, e := strconv.Atoi(v); e == nil {
			limit = queries.ValidateLimit(iv)
		}
	}
	var cursor *queries.Cursor
	if after := c.Query("after"); after != "" {
		cursor = &queries.Cursor{After: after}
	}

	items, next, err := h.q.ListMine(c.Request.Context(), actor.ID, cursor, limit)
	if err != nil {
		abortWithUsecaseError(c, err, "Failed to list bookings")
		return
	}
	resp, err := resdto.FromBookingList(items, next)
	if err != nil {
		abortWithUsecaseError(c, err, "Failed to list bookings")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Cancel booking
// @Description Cancel a pending or confirmed booking. The refund follows the resource's cancellation window.
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /bookings/{id}/cancel [post]
func (h *BookingHandler) Cancel(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	actor, ok := actorOf(c)
	if !ok {
		return
	}
	b, err := h.cmds.Cancel(c.Request.Context(), id, actor)
	if err != nil {
		abortWithUsecaseError(c, err, "Failed to cancel booking")
		return
	}
	h.respondBooking(c, http.StatusOK, queries.NewBookingView(b))
}

func (h *BookingHandler) respondBooking(c *gin.Context, status int, view *queries.BookingView) {
	resp, err := resdto.FromBookingView(view)
	if err != nil {
		abortWithUsecaseError(c, err, "Failed to render booking")
		return
	}
	c.JSON(status, resp)
}
