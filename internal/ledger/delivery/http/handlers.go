package http

import (
	"github.com/gin-gonic/gin"

	"escrow-marketplace/pkg/response"
	"escrow-marketplace/pkg/scope"
)

// Balance godoc
// @Summary     Caller balance
// @Description Sum of payouts and refunds credited to the caller.
// @Tags        Ledger
// @Produce     json
// @Security    Bearer
// @Success     200 {object} balanceResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/v1/me/balance [GET]
func (h *handler) Balance(c *gin.Context) {
	ctx := c.Request.Context()
	sc, _ := scope.GetScopeFromContext(ctx)

	out, err := h.uc.Balance(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "uc.Balance: %v", err)
		response.Error(c, h.mapError(err))
		return
	}
	response.OK(c, newBalanceResp(out))
}

// Entries godoc
// @Summary     Caller ledger
// @Description Postings credited to the caller, oldest first.
// @Tags        Ledger
// @Produce     json
// @Security    Bearer
// @Success     200 {object} entriesResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/v1/me/ledger [GET]
func (h *handler) Entries(c *gin.Context) {
	ctx := c.Request.Context()
	sc, _ := scope.GetScopeFromContext(ctx)

	out, err := h.uc.Entries(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "uc.Entries: %v", err)
		response.Error(c, h.mapError(err))
		return
	}
	response.OK(c, newEntriesResp(out))
}

// Summary godoc
// @Summary     Escrow summary
// @Description Item count, open pending purchases and total funds in custody.
// @Tags        Ledger
// @Produce     json
// @Success     200 {object} summaryResp
// @Router      /api/v1/escrow/summary [GET]
func (h *handler) Summary(c *gin.Context) {
	ctx := c.Request.Context()

	out, err := h.uc.Summary(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.Summary: %v", err)
		response.Error(c, h.mapError(err))
		return
	}
	response.OK(c, summaryResp{
		ItemCount:        out.ItemCount,
		OpenPendingCount: out.OpenPendingCount,
		TotalHeld:        out.TotalHeld.String(),
	})
}
