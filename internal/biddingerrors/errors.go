package biddingerrors

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Repository-level errors
var (
	ErrDuplicateBid = errors.New("bid id already recorded")
	ErrEmptyItemID  = errors.New("bid has no item id")
)

// Error kinds
var (
	ErrMissingArgument = errors.New("missing argument")
	ErrInvalidArgument = errors.New("invalid argument")
	ErrInvalidBid      = errors.New("invalid bid")
)

// InvalidBid reasons
var (
	ErrItemNotFound = errors.New("item not found")
	ErrBidTooLow    = errors.New("bid amount too low")
)

// Error is returned by the tracker for every rejected call. Its message is
// the exact human-readable text; Kind and Reason are matched with errors.Is.
type Error struct {
	Kind    error
	Reason  error
	Arg     string
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// Is reports whether target is the error's kind or reason
func (e *Error) Is(target error) bool {
	return target == e.Kind || (e.Reason != nil && target == e.Reason)
}

// MissingArgument builds an error for an empty required string argument
func MissingArgument(arg, message string) *Error {
	return &Error{Kind: ErrMissingArgument, Arg: arg, Message: message}
}

// InvalidArgument builds an error for an argument outside its domain
func InvalidArgument(arg, message string) *Error {
	return &Error{Kind: ErrInvalidArgument, Arg: arg, Message: message}
}

// ItemNotFound builds an InvalidBid error for an unknown item
func ItemNotFound(itemID string) *Error {
	return &Error{
		Kind:    ErrInvalidBid,
		Reason:  ErrItemNotFound,
		Arg:     "itemID",
		Message: fmt.Sprintf("An item with id '%s' does not exist.", itemID),
	}
}

// BidTooLow builds an InvalidBid error carrying the current highest amount
func BidTooLow(highest decimal.Decimal) *Error {
	return &Error{
		Kind:    ErrInvalidBid,
		Reason:  ErrBidTooLow,
		Arg:     "amount",
		Message: fmt.Sprintf("Bid too low. The current highest bid is %s.", formatAmount(highest)),
	}
}

// formatAmount keeps the scale the amount was given with, so 3.50 stays 3.50
func formatAmount(d decimal.Decimal) string {
	if exp := d.Exponent(); exp < 0 {
		return d.StringFixed(-exp)
	}
	return d.String()
}
