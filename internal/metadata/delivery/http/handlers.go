package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"escrow-marketplace/pkg/response"
)

// Upload godoc
// @Summary     Upload item media
// @Description Stores an image (10 MB max by default) and returns the URL to pass as metadata_ref.
// @Tags        Metadata
// @Accept      multipart/form-data
// @Produce     json
// @Security    Bearer
// @Param       file formData file true "Image file"
// @Success     201 {object} uploadResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     413 {object} response.Resp "Request Entity Too Large"
// @Router      /api/v1/uploads [POST]
func (h *handler) Upload(c *gin.Context) {
	ctx := c.Request.Context()

	input, err := h.processUploadReq(c)
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	obj, err := h.store.Put(ctx, input)
	if err != nil {
		h.l.Warnf(ctx, "store.Put: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.Created(c, newUploadResp(obj))
}

// Serve returns a stored file as-is.
func (h *handler) Serve(c *gin.Context) {
	ctx := c.Request.Context()

	data, err := h.store.Get(ctx, c.Param("name"))
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}
	c.Data(http.StatusOK, http.DetectContentType(data), data)
}
