package types

import (
	proto "github.com/cosmos/gogoproto/proto"
)

func init() {
	proto.RegisterEnum("orderbook.v1.OrderDirection", OrderDirection_name, OrderDirection_value)
	proto.RegisterEnum("orderbook.v1.OrderStatus", OrderStatus_name, OrderStatus_value)
}

// OrderDirection is Buy or Sell (int32 for proto compatibility, matching the
// teacher's enum-registration convention in x/orderbook/types/types.go).
type OrderDirection int32

const (
	OrderDirectionUnspecified OrderDirection = iota
	OrderDirectionBuy
	OrderDirectionSell
)

var OrderDirection_name = map[int32]string{
	0: "ORDER_DIRECTION_UNSPECIFIED",
	1: "ORDER_DIRECTION_BUY",
	2: "ORDER_DIRECTION_SELL",
}

var OrderDirection_value = map[string]int32{
	"ORDER_DIRECTION_UNSPECIFIED": 0,
	"ORDER_DIRECTION_BUY":         1,
	"ORDER_DIRECTION_SELL":        2,
}

func (d OrderDirection) String() string {
	switch d {
	case OrderDirectionBuy:
		return "ORDER_DIRECTION_BUY"
	case OrderDirectionSell:
		return "ORDER_DIRECTION_SELL"
	default:
		return "ORDER_DIRECTION_UNSPECIFIED"
	}
}

// Opposite returns the other side of the book.
func (d OrderDirection) Opposite() OrderDirection {
	if d == OrderDirectionBuy {
		return OrderDirectionSell
	}
	return OrderDirectionBuy
}

// OrderStatus is the lifecycle state of an Order (spec.md §3.1). Open and
// PartialFilled are stored and indexed; Fulfilled and Cancel are terminal
// and cause removal from every index.
type OrderStatus int32

const (
	OrderStatusUnspecified OrderStatus = iota
	OrderStatusOpen
	OrderStatusPartialFilled
	OrderStatusFulfilled
	OrderStatusCancel
)

var OrderStatus_name = map[int32]string{
	0: "ORDER_STATUS_UNSPECIFIED",
	1: "ORDER_STATUS_OPEN",
	2: "ORDER_STATUS_PARTIAL_FILLED",
	3: "ORDER_STATUS_FULFILLED",
	4: "ORDER_STATUS_CANCEL",
}

var OrderStatus_value = map[string]int32{
	"ORDER_STATUS_UNSPECIFIED":    0,
	"ORDER_STATUS_OPEN":           1,
	"ORDER_STATUS_PARTIAL_FILLED": 2,
	"ORDER_STATUS_FULFILLED":      3,
	"ORDER_STATUS_CANCEL":         4,
}

func (s OrderStatus) String() string {
	switch s {
	case OrderStatusOpen:
		return "ORDER_STATUS_OPEN"
	case OrderStatusPartialFilled:
		return "ORDER_STATUS_PARTIAL_FILLED"
	case OrderStatusFulfilled:
		return "ORDER_STATUS_FULFILLED"
	case OrderStatusCancel:
		return "ORDER_STATUS_CANCEL"
	default:
		return "ORDER_STATUS_UNSPECIFIED"
	}
}

// IsTerminal reports whether the order has left all indexes for good.
func (s OrderStatus) IsTerminal() bool {
	return s == OrderStatusFulfilled || s == OrderStatusCancel
}

// Order is a single resting or filled limit order (spec.md §3.1).
type Order struct {
	OrderID            uint64
	Direction          OrderDirection
	BidderAddr         string
	OfferAmount        Amount
	AskAmount          Amount
	FilledOfferAmount  Amount
	FilledAskAmount    Amount
	Status             OrderStatus
}

// NewOrder constructs an Open order with zeroed fill progress.
func NewOrder(orderID uint64, direction OrderDirection, bidder string, offer, ask Amount) *Order {
	return &Order{
		OrderID:           orderID,
		Direction:         direction,
		BidderAddr:        bidder,
		OfferAmount:       offer,
		AskAmount:         ask,
		FilledOfferAmount: ZeroAmount(),
		FilledAskAmount:   ZeroAmount(),
		Status:            OrderStatusOpen,
	}
}

// Price returns the order's price: ask/offer for Buy, offer/ask for Sell,
// so that price is always expressed as quote-per-base (spec.md §3.1, §4.2).
func (o *Order) Price() (Price, error) {
	return NewPriceFromAmounts(o.Direction, o.OfferAmount, o.AskAmount)
}

// LeftOfferAmount returns offer_amount - filled_offer_amount.
func (o *Order) LeftOfferAmount() (Amount, error) {
	return o.OfferAmount.Sub(o.FilledOfferAmount)
}

// LeftAskAmount returns ask_amount - filled_ask_amount.
func (o *Order) LeftAskAmount() (Amount, error) {
	return o.AskAmount.Sub(o.FilledAskAmount)
}

// IsActive reports whether the order can still be matched or refunded.
func (o *Order) IsActive() bool {
	return o.Status == OrderStatusOpen || o.Status == OrderStatusPartialFilled
}

// IsStuck reports whether the order is already marked Fulfilled or has no
// offer amount left to fill — the index-drift condition the matcher
// sweeps lazily (spec.md §4.4.3, §7).
func (o *Order) IsStuck() (bool, error) {
	if o.Status == OrderStatusFulfilled {
		return true, nil
	}
	left, err := o.LeftOfferAmount()
	if err != nil {
		return false, err
	}
	return left.IsZero(), nil
}

// Fill advances the order's cumulative fill by the given offer/ask deltas
// and transitions its status. It never marks Fulfilled purely on the offer
// side equalling the original unless spec.md's terminal rule is met:
// "filled_offer = offer OR filled_ask = ask".
func (o *Order) Fill(offerDelta, askDelta Amount) error {
	o.FilledOfferAmount = o.FilledOfferAmount.Add(offerDelta)
	o.FilledAskAmount = o.FilledAskAmount.Add(askDelta)
	if o.FilledOfferAmount.GTE(o.OfferAmount) || o.FilledAskAmount.GTE(o.AskAmount) {
		o.Status = OrderStatusFulfilled
	} else if o.FilledOfferAmount.IsPositive() {
		o.Status = OrderStatusPartialFilled
	}
	return nil
}

// RefundAmount returns the unfilled offer amount returned on cancellation.
// The refund is paid in the offer asset (quote for Buy, base for Sell), which
// the caller selects (spec.md §4.3 "Refund asset selection").
func (o *Order) RefundAmount() (Amount, error) {
	return o.LeftOfferAmount()
}
