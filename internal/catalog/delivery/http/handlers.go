package http

import (
	"context"

	"github.com/gin-gonic/gin"

	"escrow-marketplace/internal/model"
	"escrow-marketplace/pkg/response"
	"escrow-marketplace/pkg/scope"
)

// List godoc
// @Summary     List an item for sale
// @Description Creates an AVAILABLE item sold by the caller.
// @Tags        Catalog
// @Accept      json
// @Produce     json
// @Security    Bearer
// @Param       body body listReq true "Listing"
// @Success     201 {object} listResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/items [POST]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()
	sc, _ := scope.GetScopeFromContext(ctx)

	req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.List(ctx, sc, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.List: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.Created(c, h.newListResp(output))
}

// GetAll godoc
// @Summary     All items
// @Description Every item in creation order, any status.
// @Tags        Catalog
// @Produce     json
// @Success     200 {object} itemsResp
// @Router      /api/v1/items [GET]
func (h *handler) GetAll(c *gin.Context) {
	h.respondItems(c, "uc.GetAllItems", h.uc.GetAllItems)
}

// GetAvailable godoc
// @Summary     Available items
// @Description Items that can currently be purchased.
// @Tags        Catalog
// @Produce     json
// @Success     200 {object} itemsResp
// @Router      /api/v1/items/available [GET]
func (h *handler) GetAvailable(c *gin.Context) {
	h.respondItems(c, "uc.GetAvailableItems", h.uc.GetAvailableItems)
}

// Detail godoc
// @Summary     Item detail
// @Tags        Catalog
// @Produce     json
// @Param       id path int true "Item ID"
// @Success     200 {object} itemResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/items/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := parseID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	item, err := h.uc.GetItem(ctx, id)
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}
	response.OK(c, newItemResp(item))
}

// MyListed godoc
// @Summary     Caller's listings
// @Tags        Catalog
// @Produce     json
// @Security    Bearer
// @Success     200 {object} itemsResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/v1/me/listed [GET]
func (h *handler) MyListed(c *gin.Context) {
	sc, _ := scope.GetScopeFromContext(c.Request.Context())
	h.respondItems(c, "uc.GetMyListedItems", func(ctx context.Context) ([]model.Item, error) {
		return h.uc.GetMyListedItems(ctx, sc)
	})
}

// MyPurchased godoc
// @Summary     Caller's purchases
// @Description SOLD items bought by the caller.
// @Tags        Catalog
// @Produce     json
// @Security    Bearer
// @Success     200 {object} itemsResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/v1/me/purchased [GET]
func (h *handler) MyPurchased(c *gin.Context) {
	sc, _ := scope.GetScopeFromContext(c.Request.Context())
	h.respondItems(c, "uc.GetMyPurchasedItems", func(ctx context.Context) ([]model.Item, error) {
		return h.uc.GetMyPurchasedItems(ctx, sc)
	})
}

func (h *handler) respondItems(c *gin.Context, method string, fetch func(ctx context.Context) ([]model.Item, error)) {
	ctx := c.Request.Context()

	items, err := fetch(ctx)
	if err != nil {
		h.l.Errorf(ctx, "%s: %v", method, err)
		response.Error(c, h.mapError(err))
		return
	}
	response.OK(c, newItemsResp(items))
}
