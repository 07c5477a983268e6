package handler

import (
	"net/http"

	"bid-tracker/internal/metrics"
	model "bid-tracker/internal/models"
	"bid-tracker/services/bidding/helpers"
	"bid-tracker/utils"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=bidding_handler.go -destination=mock_bidding_handler.go -package=handler

type Tracker interface {
	AddBid(itemID string, amount decimal.Decimal, userID string) (model.Bid, error)
	GetBids(itemID string) ([]model.Bid, error)
	GetWinningBid(itemID string) (model.Bid, bool, error)
	GetItemsBidOn(userID string) ([]model.Item, error)
}

type BiddingHandler struct {
	tracker Tracker
	metrics *metrics.Metrics
}

func NewBiddingHandler(tracker Tracker, m *metrics.Metrics) *BiddingHandler {
	return &BiddingHandler{tracker: tracker, metrics: m}
}

// RecordBidHandler handles POST /bids
func (h *BiddingHandler) RecordBidHandler(c *gin.Context) {
	var req helpers.PlaceBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "RecordBidHandler", err)
		return
	}

	bid, err := h.tracker.AddBid(req.ItemID, req.Amount, req.UserID)
	h.metrics.ObserveBid(err)
	if err != nil {
		helpers.HandleTrackerError(c, "RecordBidHandler", err, map[string]any{
			"item_id": req.ItemID,
			"user_id": req.UserID,
			"amount":  req.Amount.String(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, helpers.ToBidResponse(bid), "bid recorded successfully")
	helpers.LogSuccess("RecordBidHandler", "bid recorded successfully", map[string]any{
		"bid_id":  bid.BidID,
		"item_id": bid.ItemID,
		"user_id": bid.UserID,
		"amount":  bid.Amount.String(),
	})
}

// GetBidsByItemHandler handles GET /items/:item_id/bids
func (h *BiddingHandler) GetBidsByItemHandler(c *gin.Context) {
	itemID := c.Param("item_id")
	bids, err := h.tracker.GetBids(itemID)
	if err != nil {
		helpers.HandleTrackerError(c, "GetBidsByItemHandler", err, map[string]any{"item_id": itemID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.ToBidResponses(bids), "bids retrieved successfully")
	helpers.LogSuccess("GetBidsByItemHandler", "bids retrieved successfully", map[string]any{
		"item_id": itemID,
		"count":   len(bids),
	})
}

// GetWinningBidHandler handles GET /items/:item_id/winning
func (h *BiddingHandler) GetWinningBidHandler(c *gin.Context) {
	itemID := c.Param("item_id")
	bid, ok, err := h.tracker.GetWinningBid(itemID)
	if err != nil {
		helpers.HandleTrackerError(c, "GetWinningBidHandler", err, map[string]any{"item_id": itemID})
		return
	}

	if !ok {
		utils.JSONResponse(c, http.StatusNotFound, nil, "no winning bid found")
		utils.Info("GetWinningBidHandler: no winning bid found", map[string]any{"item_id": itemID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.ToBidResponse(bid), "winning bid retrieved successfully")
	helpers.LogSuccess("GetWinningBidHandler", "winning bid retrieved successfully", map[string]any{
		"bid_id":  bid.BidID,
		"item_id": bid.ItemID,
		"user_id": bid.UserID,
		"amount":  bid.Amount.String(),
	})
}

// GetItemsByUserHandler handles GET /users/:user_id/items
func (h *BiddingHandler) GetItemsByUserHandler(c *gin.Context) {
	userID := c.Param("user_id")
	items, err := h.tracker.GetItemsBidOn(userID)
	if err != nil {
		helpers.HandleTrackerError(c, "GetItemsByUserHandler", err, map[string]any{"user_id": userID})
		return
	}

	if items == nil {
		items = []model.Item{}
	}

	utils.JSONResponse(c, http.StatusOK, items, "items retrieved successfully")
	helpers.LogSuccess("GetItemsByUserHandler", "items retrieved successfully", map[string]any{
		"user_id":     userID,
		"items_count": len(items),
	})
}
