package server

import (
	"bid-tracker/internal/metrics"
	handler "bid-tracker/services/bidding/handler"
	"net/http"

	"github.com/gin-gonic/gin"
)

// SetupRouter configures all Gin routes for the application
func SetupRouter(tracker handler.Tracker, m *metrics.Metrics) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery())             // recover from panics
	router.Use(RequestLoggerMiddleware(m)) // custom request logging

	biddingHandler := handler.NewBiddingHandler(tracker, m)

	bids := router.Group("/bids")
	{
		bids.POST("", biddingHandler.RecordBidHandler)
	}

	items := router.Group("/items")
	{
		items.GET("/:item_id/bids", biddingHandler.GetBidsByItemHandler)
		items.GET("/:item_id/winning", biddingHandler.GetWinningBidHandler)
	}

	users := router.Group("/users")
	{
		users.GET("/:user_id/items", biddingHandler.GetItemsByUserHandler)
	}

	router.GET("/healthz", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})
	router.GET("/metrics", gin.WrapH(m.Handler()))

	return router
}
