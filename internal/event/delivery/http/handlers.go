package http

import (
	"github.com/gin-gonic/gin"

	"escrow-marketplace/pkg/response"
)

// Recent godoc
// @Summary     Recent marketplace events
// @Description Returns the most recent events, oldest first.
// @Tags        Events
// @Produce     json
// @Param       limit query int false "Max events (default 50, max 500)"
// @Success     200 {object} recentResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/events [GET]
func (h *handler) Recent(c *gin.Context) {
	var req recentReq
	if err := c.ShouldBindQuery(&req); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, newRecentResp(h.recorder.Recent(req.limit())))
}
