package api

import (
	"etfbuilder/internal/domain"
	"fmt"

	"github.com/gin-gonic/gin"
)

type calculatePortfolioRequest struct {
	AssetKeys []string  `json:"assetKeys"`
	Weights   []float64 `json:"weights"`
}

func (h ApiHandler) calculatePortfolio(c *gin.Context) {
	var requestBody calculatePortfolioRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(fmt.Errorf("failed to read request body: %w", err), c, 400)
		return
	}

	result, err := h.PortfolioService.Calculate(
		c.Request.Context(),
		requestBody.AssetKeys,
		requestBody.Weights,
	)
	if domain.IsInputError(err) {
		returnErrorJsonCode(err, c, 400)
		return
	} else if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, result)
}
