package models

import "github.com/shopspring/decimal"

// Item represents an auction item
type Item struct {
	ItemID string `json:"item_id" mapstructure:"id"`
	Name   string `json:"name" mapstructure:"name"`
}

// Bid represents a user's bid on an item
type Bid struct {
	BidID  string          `json:"bid_id"`
	ItemID string          `json:"item_id"`
	UserID string          `json:"user_id"`
	Amount decimal.Decimal `json:"amount"`
}
