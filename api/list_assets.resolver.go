package api

import (
	"github.com/gin-gonic/gin"
)

type listAssetsResponse struct {
	Assets []assetResponse `json:"assets"`
}

type assetResponse struct {
	Key         string  `json:"key"`
	Name        string  `json:"name"`
	Color       string  `json:"color"`
	YearlyYield float64 `json:"yearlyYield"`
	NumPrices   int     `json:"numPrices"`
}

func (h ApiHandler) listAssets(c *gin.Context) {
	assets, err := h.PortfolioService.ListAssets(c.Request.Context())
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	out := listAssetsResponse{Assets: []assetResponse{}}
	for _, a := range assets {
		out.Assets = append(out.Assets, assetResponse{
			Key:         a.Key,
			Name:        a.DisplayName,
			Color:       a.Color,
			YearlyYield: a.YearlyYield,
			NumPrices:   a.NumPrices,
		})
	}

	c.JSON(200, out)
}
