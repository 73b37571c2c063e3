package http

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// processPurchaseReq reads the item id from the path and the payment from the body.
func (h *handler) processPurchaseReq(c *gin.Context) (purchaseReq, error) {
	var req purchaseReq
	id, err := parseID(c, "id")
	if err != nil {
		return req, err
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	paid, err := decimal.NewFromString(req.Paid)
	if err != nil {
		return req, errInvalidPaid
	}
	req.itemID = id
	req.paid = paid
	return req, nil
}

// parseID reads a positive integer path parameter.
func parseID(c *gin.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, errInvalidID
	}
	return id, nil
}
