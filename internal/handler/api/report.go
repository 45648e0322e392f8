package api

import (
	"net/http"

	reqdto "court-slot-engine/internal/handler/dto/request"
	resdto "court-slot-engine/internal/handler/dto/response"
	"court-slot-engine/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ReportHandler struct {
	revenue queries.RevenueQueries
}

func NewReportHandler(revenue queries.RevenueQueries) *ReportHandler {
	return &ReportHandler{revenue: revenue}
}

// @Summary Revenue report
// @Description Completed-booking revenue per period for one resource (owner) or one venue (admin)
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Param resource_id query string false "Resource ID"
// @Param venue_id query string false "Venue ID"
// @Param from query string true "First date (YYYY-MM-DD)"
// @Param to query string true "Last date (YYYY-MM-DD)"
// @Param granularity query string false "month, quarter or year (default month)"
// @Success 200 {object} resdto.RevenueReportResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /reports/revenue [get]
func (h *ReportHandler) Revenue(c *gin.Context) {
	actor, ok := actorOf(c)
	if !ok {
		return
	}
	var q reqdto.RevenueQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		abortBadRequest(c, err, "Invalid query")
		return
	}
	filter, err := q.ToFilter()
	if err != nil {
		abortBadRequest(c, err, "Invalid query")
		return
	}

	report, err := h.revenue.Report(c.Request.Context(), filter, actor)
	if err != nil {
		abortWithUsecaseError(c, err, "Failed to build revenue report")
		return
	}
	resp, err := resdto.FromRevenueReport(report)
	if err != nil {
		abortWithUsecaseError(c, err, "Failed to build revenue report")
		return
	}
	c.JSON(http.StatusOK, resp)
}
