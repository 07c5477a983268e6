package repository

import (
	"bid-tracker/internal/biddingerrors"
	model "bid-tracker/internal/models"
	"fmt"
	"sync"
)

//go:generate mockgen -source=repository.go -destination=mock_repository.go -package=repository

// Store exposes the item and bid collections the tracker works against
type Store interface {
	Items() []model.Item
	Bids() []model.Bid
	AppendBid(bid model.Bid) error
}

// MemoryRepo is a concurrency-safe in-memory implementation of Store.
// Items and bids are kept in insertion order.
type MemoryRepo struct {
	mu        sync.RWMutex
	items     []model.Item
	itemIndex map[string]int // key: itemID -> value: position in items
	bids      []model.Bid
	bidIDs    map[string]struct{}
}

// NewMemoryRepo creates a new in-memory repository instance
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		itemIndex: make(map[string]int),
		bidIDs:    make(map[string]struct{}),
	}
}

// Items returns a snapshot of all items
func (r *MemoryRepo) Items() []model.Item {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]model.Item(nil), r.items...)
}

// Bids returns a snapshot of all bids in insertion order
func (r *MemoryRepo) Bids() []model.Bid {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]model.Bid(nil), r.bids...)
}

// AppendBid appends a bid to the bid collection
func (r *MemoryRepo) AppendBid(bid model.Bid) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if bid.ItemID == "" {
		return fmt.Errorf("append bid %s: %w", bid.BidID, biddingerrors.ErrEmptyItemID)
	}
	if _, ok := r.bidIDs[bid.BidID]; ok {
		return fmt.Errorf("append bid %s: %w", bid.BidID, biddingerrors.ErrDuplicateBid)
	}

	r.bids = append(r.bids, bid)
	r.bidIDs[bid.BidID] = struct{}{}
	return nil
}

// AddItem adds an item to the repository, replacing any item with the same id
func (r *MemoryRepo) AddItem(item model.Item) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if i, ok := r.itemIndex[item.ItemID]; ok {
		r.items[i] = item
		return
	}
	r.itemIndex[item.ItemID] = len(r.items)
	r.items = append(r.items, item)
}

// RemoveItem removes an item. Bids already recorded against it are kept.
func (r *MemoryRepo) RemoveItem(itemID string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	i, ok := r.itemIndex[itemID]
	if !ok {
		return false
	}

	r.items = append(r.items[:i], r.items[i+1:]...)
	delete(r.itemIndex, itemID)
	for j := i; j < len(r.items); j++ {
		r.itemIndex[r.items[j].ItemID] = j
	}
	return true
}
