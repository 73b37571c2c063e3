package http

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// processListReq binds the listing body and parses the price.
func (h *handler) processListReq(c *gin.Context) (listReq, error) {
	var req listReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	price, err := decimal.NewFromString(req.Price)
	if err != nil {
		return req, errInvalidPrice
	}
	req.price = price
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
