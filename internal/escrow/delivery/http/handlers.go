package http

import (
	"context"

	"github.com/gin-gonic/gin"

	"escrow-marketplace/internal/escrow"
	"escrow-marketplace/internal/model"
	"escrow-marketplace/pkg/address"
	"escrow-marketplace/pkg/response"
	"escrow-marketplace/pkg/scope"
)

// RequestPurchase godoc
// @Summary     Request a purchase
// @Description Pays for an AVAILABLE item. The price is held in custody and any excess is refunded immediately.
// @Tags        Escrow
// @Accept      json
// @Produce     json
// @Security    Bearer
// @Param       id   path int         true "Item ID"
// @Param       body body purchaseReq true "Payment"
// @Success     201 {object} purchaseResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     402 {object} response.Resp "Payment Required"
// @Failure     403 {object} response.Resp "Forbidden"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     409 {object} response.Resp "Conflict"
// @Router      /api/v1/items/{id}/purchase [POST]
func (h *handler) RequestPurchase(c *gin.Context) {
	ctx := c.Request.Context()
	sc, _ := scope.GetScopeFromContext(ctx)

	req, err := h.processPurchaseReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.RequestPurchase(ctx, sc, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.RequestPurchase: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.Created(c, newPurchaseResp(output))
}

// GetAllPending godoc
// @Summary     Open pending purchases
// @Tags        Escrow
// @Produce     json
// @Success     200 {object} pendingListResp
// @Router      /api/v1/pending-purchases [GET]
func (h *handler) GetAllPending(c *gin.Context) {
	ctx := c.Request.Context()

	pps, err := h.uc.GetAllPendingPurchases(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.GetAllPendingPurchases: %v", err)
		response.Error(c, h.mapError(err))
		return
	}
	response.OK(c, newPendingListResp(pps))
}

// Detail godoc
// @Summary     Pending purchase detail
// @Description Any status, with the item state and the amount still in custody.
// @Tags        Escrow
// @Produce     json
// @Param       id path int true "Pending purchase ID"
// @Success     200 {object} detailResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/pending-purchases/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := parseID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Detail(ctx, id)
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}
	response.OK(c, newDetailResp(output))
}

// Approve godoc
// @Summary     Approve a pending purchase
// @Description Owner only. Pays the seller and marks the item SOLD.
// @Tags        Escrow
// @Produce     json
// @Security    Bearer
// @Param       id path int true "Pending purchase ID"
// @Success     200 {object} resolveResp
// @Failure     403 {object} response.Resp "Forbidden"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     409 {object} response.Resp "Conflict"
// @Router      /api/v1/pending-purchases/{id}/approve [POST]
func (h *handler) Approve(c *gin.Context) {
	h.resolve(c, "uc.Approve", h.uc.Approve)
}

// Reject godoc
// @Summary     Reject a pending purchase
// @Description Owner only. Refunds the buyer and makes the item AVAILABLE again.
// @Tags        Escrow
// @Produce     json
// @Security    Bearer
// @Param       id path int true "Pending purchase ID"
// @Success     200 {object} resolveResp
// @Failure     403 {object} response.Resp "Forbidden"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     409 {object} response.Resp "Conflict"
// @Router      /api/v1/pending-purchases/{id}/reject [POST]
func (h *handler) Reject(c *gin.Context) {
	h.resolve(c, "uc.Reject", h.uc.Reject)
}

func (h *handler) resolve(c *gin.Context, method string, fn func(context.Context, model.Scope, int64) (escrow.ResolveOutput, error)) {
	ctx := c.Request.Context()
	sc, _ := scope.GetScopeFromContext(ctx)

	id, err := parseID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := fn(ctx, sc, id)
	if err != nil {
		h.l.Warnf(ctx, "%s: %v", method, err)
		response.Error(c, h.mapError(err))
		return
	}
	response.OK(c, newResolveResp(output))
}

// Owner godoc
// @Summary     Marketplace owner
// @Description The identity allowed to approve and reject pending purchases.
// @Tags        Escrow
// @Produce     json
// @Success     200 {object} ownerResp
// @Router      /api/v1/owner [GET]
func (h *handler) Owner(c *gin.Context) {
	response.OK(c, ownerResp{Owner: address.Checksum(h.uc.Owner())})
}
