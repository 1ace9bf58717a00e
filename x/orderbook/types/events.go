package types

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Event and attribute names, per spec.md §6 "Emitted events".
const (
	EventTypeSubmitOrder   = "submit_order"
	EventTypeUpdateOrder   = "update_order"
	EventTypeCancelOrder   = "cancel_order"
	EventTypeMatchedOrder  = "matched_order"
	EventTypeExecuteMatch  = "execute_orderbook_pair"
	EventTypeRemoveOrderbook = "remove_orderbook_pair"
	EventTypeRemovePrice   = "remove_order_by_price"
	EventTypeRemoveStatus  = "remove_order_by_status"
	EventTypeRemoveStuck   = "remove_stuff_order"

	AttrKeyAction              = "action"
	AttrKeyPair                = "pair"
	AttrKeyOrderID             = "order_id"
	AttrKeyDirection           = "direction"
	AttrKeyStatus              = "status"
	AttrKeyBidderAddr          = "bidder_addr"
	AttrKeyOfferAmount         = "offer_amount"
	AttrKeyFilledOfferAmount   = "filled_offer_amount"
	AttrKeyAskAmount           = "ask_amount"
	AttrKeyFilledAskAmount     = "filled_ask_amount"
	AttrKeyFee                 = "fee"
	AttrKeyTotalMatchedOrders  = "total_matched_orders"
	AttrKeyPrice               = "price"
)

// MatchedOrderEvent builds the per-fill / per-sweep event attributes
// spec.md §6 requires (order_id, direction, status, bidder_addr, the four
// filled/offer/ask amounts, and a fee summary string).
func MatchedOrderEvent(order *Order, fee string) sdk.Event {
	return sdk.NewEvent(
		EventTypeMatchedOrder,
		sdk.NewAttribute(AttrKeyStatus, order.Status.String()),
		sdk.NewAttribute(AttrKeyBidderAddr, order.BidderAddr),
		sdk.NewAttribute(AttrKeyOrderID, formatUint64(order.OrderID)),
		sdk.NewAttribute(AttrKeyDirection, order.Direction.String()),
		sdk.NewAttribute(AttrKeyOfferAmount, order.OfferAmount.String()),
		sdk.NewAttribute(AttrKeyFilledOfferAmount, order.FilledOfferAmount.String()),
		sdk.NewAttribute(AttrKeyAskAmount, order.AskAmount.String()),
		sdk.NewAttribute(AttrKeyFilledAskAmount, order.FilledAskAmount.String()),
		sdk.NewAttribute(AttrKeyFee, fee),
	)
}

func formatUint64(v uint64) string {
	if v == 0 {
		return "0"
	}
	var buf [20]byte
	i := len(buf)
	for v > 0 {
		i--
		buf[i] = byte('0' + v%10)
		v /= 10
	}
	return string(buf[i:])
}
