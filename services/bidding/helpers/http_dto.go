package helpers

import (
	model "bid-tracker/internal/models"

	"github.com/shopspring/decimal"
)

// Request/Response DTOs

// PlaceBidRequest accepts the amount as a JSON number or a numeric string.
// Field presence is checked by the tracker, not by binding tags, so that
// clients receive the tracker's own messages.
type PlaceBidRequest struct {
	ItemID string          `json:"item_id"`
	UserID string          `json:"user_id"`
	Amount decimal.Decimal `json:"amount"`
}

type BidResponse struct {
	BidID  string          `json:"bid_id"`
	ItemID string          `json:"item_id"`
	UserID string          `json:"user_id"`
	Amount decimal.Decimal `json:"amount"`
}

// ToBidResponse converts a bid into its wire form
func ToBidResponse(bid model.Bid) BidResponse {
	return BidResponse{
		BidID:  bid.BidID,
		ItemID: bid.ItemID,
		UserID: bid.UserID,
		Amount: bid.Amount,
	}
}

// ToBidResponses converts bids, never returning nil
func ToBidResponses(bids []model.Bid) []BidResponse {
	resp := make([]BidResponse, 0, len(bids))
	for _, b := range bids {
		resp = append(resp, ToBidResponse(b))
	}
	return resp
}
