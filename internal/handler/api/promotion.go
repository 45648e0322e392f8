package api

import (
	"net/http"

	reqdto "court-slot-engine/internal/handler/dto/request"
	resdto "court-slot-engine/internal/handler/dto/response"
	"court-slot-engine/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type PromotionHandler struct {
	cmds commands.PromotionCommands
}

func NewPromotionHandler(cmds commands.PromotionCommands) *PromotionHandler {
	return &PromotionHandler{cmds: cmds}
}

// @Summary Create promotion
// @Description Resource promotions need the resource owner; venue promotions need an admin
// @Tags promotions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreatePromotionRequest true "Promotion"
// @Success 201 {object} resdto.PromotionResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /promotions [post]
func (h *PromotionHandler) Create(c *gin.Context) {
	actor, ok := actorOf(c)
	if !ok {
		return
	}
	var req reqdto.CreatePromotionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err, "Invalid request")
		return
	}
	cmd, err := req.ToCommand()
	if err != nil {
		abortBadRequest(c, err, "Invalid request")
		return
	}

	p, err := h.cmds.Create(c.Request.Context(), cmd, actor)
	if err != nil {
		abortWithUsecaseError(c, err, "Failed to create promotion")
		return
	}
	c.JSON(http.StatusCreated, resdto.FromPromotion(p))
}
