package bidtracker

import (
	"bid-tracker/internal/biddingerrors"
	"bid-tracker/internal/models"
	"bid-tracker/internal/repository"
	"bid-tracker/utils"
	"fmt"
	"sync"

	"github.com/shopspring/decimal"
)

const (
	msgMissingItemID = "An item id must be specified."
	msgMissingUserID = "A user id must be specified."
	msgInvalidAmount = "The bid amount must be greater than 0."
	msgMissingStore  = "A store must be specified."
)

// Tracker validates bids and answers bidding queries against a Store
type Tracker struct {
	store repository.Store

	mu        sync.Mutex
	itemLocks map[string]*sync.Mutex
}

// New creates a Tracker backed by store
func New(store repository.Store) (*Tracker, error) {
	if store == nil {
		return nil, biddingerrors.InvalidArgument("store", msgMissingStore)
	}

	return &Tracker{
		store:     store,
		itemLocks: make(map[string]*sync.Mutex),
	}, nil
}

// AddBid records a user's bid on an item. The bid must be strictly higher
// than every bid already recorded for the item.
func (t *Tracker) AddBid(itemID string, amount decimal.Decimal, userID string) (models.Bid, error) {
	if itemID == "" {
		return models.Bid{}, biddingerrors.MissingArgument("itemID", msgMissingItemID)
	}
	if !amount.IsPositive() {
		return models.Bid{}, biddingerrors.InvalidArgument("amount", msgInvalidAmount)
	}
	if userID == "" {
		return models.Bid{}, biddingerrors.MissingArgument("userID", msgMissingUserID)
	}

	// lock entries are only created for known items
	if !t.itemExists(itemID) {
		return models.Bid{}, biddingerrors.ItemNotFound(itemID)
	}

	// check-then-append must not interleave with another writer on the same item
	lock := t.lockFor(itemID)
	lock.Lock()
	defer lock.Unlock()

	// the item may have been removed while waiting for the lock
	if !t.itemExists(itemID) {
		return models.Bid{}, biddingerrors.ItemNotFound(itemID)
	}

	if highest, ok := t.highestBid(itemID); ok && highest.Amount.GreaterThanOrEqual(amount) {
		return models.Bid{}, biddingerrors.BidTooLow(highest.Amount)
	}

	bid := models.Bid{
		BidID:  utils.GenerateID(),
		ItemID: itemID,
		UserID: userID,
		Amount: amount,
	}

	if err := t.store.AppendBid(bid); err != nil {
		return models.Bid{}, fmt.Errorf("tracker: failed to record bid for item %s by user %s: %w", itemID, userID, err)
	}

	return bid, nil
}

// GetBids returns all bids recorded for an item in insertion order
func (t *Tracker) GetBids(itemID string) ([]models.Bid, error) {
	if itemID == "" {
		return nil, biddingerrors.MissingArgument("itemID", msgMissingItemID)
	}
	if !t.itemExists(itemID) {
		return nil, biddingerrors.ItemNotFound(itemID)
	}

	return t.bidsFor(itemID), nil
}

// GetItemsBidOn returns the items a user has placed at least one bid on
func (t *Tracker) GetItemsBidOn(userID string) ([]models.Item, error) {
	if userID == "" {
		return nil, biddingerrors.MissingArgument("userID", msgMissingUserID)
	}

	itemIDs := make(map[string]struct{})
	for _, b := range t.store.Bids() {
		if b.UserID == userID {
			itemIDs[b.ItemID] = struct{}{}
		}
	}

	items := []models.Item{}
	if len(itemIDs) == 0 {
		return items, nil
	}

	for _, item := range t.store.Items() {
		if _, ok := itemIDs[item.ItemID]; ok {
			items = append(items, item)
		}
	}
	return items, nil
}

// GetWinningBid returns the highest bid for an item. ok is false when the
// item has no bids. Among equal amounts the earliest recorded bid wins.
func (t *Tracker) GetWinningBid(itemID string) (bid models.Bid, ok bool, err error) {
	if itemID == "" {
		return models.Bid{}, false, biddingerrors.MissingArgument("itemID", msgMissingItemID)
	}
	if !t.itemExists(itemID) {
		return models.Bid{}, false, biddingerrors.ItemNotFound(itemID)
	}

	bid, ok = t.highestBid(itemID)
	return bid, ok, nil
}

func (t *Tracker) itemExists(itemID string) bool {
	for _, item := range t.store.Items() {
		if item.ItemID == itemID {
			return true
		}
	}
	return false
}

func (t *Tracker) bidsFor(itemID string) []models.Bid {
	bids := []models.Bid{}
	for _, b := range t.store.Bids() {
		if b.ItemID == itemID {
			bids = append(bids, b)
		}
	}
	return bids
}

// highestBid scans in store order and only replaces the leader on a strictly
// greater amount, so the first of several equal maxima is kept.
func (t *Tracker) highestBid(itemID string) (models.Bid, bool) {
	var (
		winning models.Bid
		found   bool
	)
	for _, b := range t.store.Bids() {
		if b.ItemID != itemID {
			continue
		}
		if !found || b.Amount.GreaterThan(winning.Amount) {
			winning = b
			found = true
		}
	}
	return winning, found
}

func (t *Tracker) lockFor(itemID string) *sync.Mutex {
	t.mu.Lock()
	defer t.mu.Unlock()

	l, ok := t.itemLocks[itemID]
	if !ok {
		l = &sync.Mutex{}
		t.itemLocks[itemID] = l
	}
	return l
}
