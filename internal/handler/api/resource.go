package api

import (
	"net/http"

	reqdto "court-slot-engine/internal/handler/dto/request"
	resdto "court-slot-engine/internal/handler/dto/response"
	"court-slot-engine/internal/usecase/commands"
	"court-slot-engine/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ResourceHandler struct {
	resources     commands.ResourceCommands
	schedules     commands.ScheduleCommands
	resourceQuery queries.ResourceQueries
	scheduleQuery queries.ScheduleQueries
}

func NewResourceHandler(
	resources commands.ResourceCommands,
	schedules commands.ScheduleCommands,
	resourceQuery queries.ResourceQueries,
	scheduleQuery queries.ScheduleQueries,
) *ResourceHandler {
	return &ResourceHandler{
		resources:     resources,
		schedules:     schedules,
		resourceQuery: resourceQuery,
		scheduleQuery: scheduleQuery,
	}
}

// @Summary Create resource
// @Description Register a bookable resource owned by the caller
// @Tags resources
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateResourceRequest true "Create resource request"
// @Success 201 {object} resdto.ResourceResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /resources [post]
func (h *ResourceHandler) Create(c *gin.Context) {
	actor, ok := actorOf(c)
	if !ok {
		return
	}
	var req reqdto.CreateResourceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err, "Invalid request")
		return
	}

	res, err := h.resources.Create(c.Request.Context(), req.ToCommand(), actor)
	if err != nil {
		abortWithUsecaseError(c, err, "Failed to create resource")
		return
	}
	h.respondResource(c, http.StatusCreated, queries.NewResourceView(res))
}

// @Summary Get resource
// @Tags resources
// @Produce json
// @Param id path string true "Resource ID"
// @Success 200 {object} resdto.ResourceResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /resources/{id} [get]
func (h *ResourceHandler) Get(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	view, err := h.resourceQuery.GetByID(c.Request.Context(), id)
	if err != nil {
		abortWithUsecaseError(c, err, "Failed to load resource")
		return
	}
	h.respondResource(c, http.StatusOK, view)
}

// @Summary Update booking policy
// @Description Partially update the deposit, cancellation window and refund of a resource
// @Tags resources
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Resource ID"
// @Param request body reqdto.UpdatePolicyRequest true "Policy fields to change"
// @Success 200 {object} resdto.ResourceResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /resources/{id}/policy [patch]
func (h *ResourceHandler) UpdatePolicy(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	actor, ok := actorOf(c)
	if !ok {
		return
	}
	var req reqdto.UpdatePolicyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err, "Invalid request")
		return
	}

	res, err := h.resources.UpdatePolicy(c.Request.Context(), id, req.ToPatch(), actor)
	if err != nil {
		abortWithUsecaseError(c, err, "Failed to update policy")
		return
	}
	h.respondResource(c, http.StatusOK, queries.NewResourceView(res))
}

// @Summary List schedules
// @Tags schedules
// @Produce json
// @Param id path string true "Resource ID"
// @Success 200 {array} resdto.ScheduleResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /resources/{id}/schedules [get]
func (h *ResourceHandler) ListSchedules(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	views, err := h.scheduleQuery.ListByResource(c.Request.Context(), id)
	if err != nil {
		abortWithUsecaseError(c, err, "Failed to list schedules")
		return
	}
	resp, err := resdto.FromScheduleViews(views)
	if err != nil {
		abortWithUsecaseError(c, err, "Failed to list schedules")
		return
	}
	c.JSON(http.StatusOK, gin.H{"schedules": resp})
}

// @Summary Add schedule
// @Description Add a recurring weekly window. Rejected with 409 when it overlaps an existing one.
// @Tags schedules
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Resource ID"
// @Param request body reqdto.CreateScheduleRequest true "Schedule definition"
// @Success 201 {object} resdto.ScheduleResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /resources/{id}/schedules [post]
func (h *ResourceHandler) AddSchedule(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	actor, ok := actorOf(c)
	if !ok {
		return
	}
	var req reqdto.CreateScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err, "Invalid request")
		return
	}
	cmd, err := req.ToCommand(id)
	if err != nil {
		abortBadRequest(c, err, "Invalid request")
		return
	}

	def, err := h.schedules.AddSchedule(c.Request.Context(), cmd, actor)
	if err != nil {
		abortWithUsecaseError(c, err, "Failed to add schedule")
		return
	}
	resp, err := resdto.FromScheduleView(queries.NewScheduleView(def))
	if err != nil {
		abortWithUsecaseError(c, err, "Failed to add schedule")
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// @Summary Remove schedule
// @Tags schedules
// @Security BearerAuth
// @Param id path string true "Resource ID"
// @Param scheduleId path string true "Schedule ID"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /resources/{id}/schedules/{scheduleId} [delete]
func (h *ResourceHandler) RemoveSchedule(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	scheduleID, ok := uuidParam(c, "scheduleId")
	if !ok {
		return
	}
	actor, ok := actorOf(c)
	if !ok {
		return
	}
	if err := h.schedules.RemoveSchedule(c.Request.Context(), id, scheduleID, actor); err != nil {
		abortWithUsecaseError(c, err, "Failed to remove schedule")
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ResourceHandler) respondResource(c *gin.Context, status int, view *queries.ResourceView) {
	resp, err := resdto.FromResourceView(view)
	if err != nil {
		abortWithUsecaseError(c, err, "Failed to render resource")
		return
	}
	c.JSON(status, resp)
}
