package keeper

import (
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/oraichain/orderbook-engine/x/orderbook/types"
)

// SubmitOrder opens a new order against an existing pair (spec.md §4.3,
// C3). The caller is assumed to have already delivered `assets[0]` (the
// offer) to engine custody via the host's transfer primitive — this keeper
// never moves funds itself, matching the teacher's PlaceOrder, which also
// assumes escrow happened in the same message handler before it is called.
func (k *Keeper) SubmitOrder(ctx sdk.Context, pairKey types.PairKey, direction types.OrderDirection, bidder string, offer, ask types.Asset) (*types.Order, error) {
	ob, err := k.MustGetOrderBook(ctx, pairKey)
	if err != nil {
		return nil, err
	}
	if !offer.Info.Equal(ob.OfferAssetInfo(direction)) || !ask.Info.Equal(ob.AskAssetInfo(direction)) {
		return nil, types.ErrFundMismatch
	}
	if offer.Amount.IsZero() || ask.Amount.IsZero() {
		return nil, types.ErrAssetMustNotBeZero
	}

	orderID := k.NextOrderID(ctx)
	order := types.NewOrder(orderID, direction, bidder, offer.Amount, ask.Amount)

	if err := k.checkMinQuote(ob, order); err != nil {
		return nil, err
	}
	if err := k.SetOrder(ctx, pairKey, order); err != nil {
		return nil, err
	}
	if err := k.IndexOrder(ctx, pairKey.Bytes(), order); err != nil {
		return nil, err
	}
	k.metrics.ordersSubmitted.Inc()
	return order, nil
}

// checkMinQuote enforces spec.md §4.3's minimum-notional guard: an order
// whose quote-denominated size would fall below MinQuoteCoinAmount is
// rejected outright at submission, rather than silently dust-swept later.
func (k *Keeper) checkMinQuote(ob *types.OrderBook, order *types.Order) error {
	price, err := order.Price()
	if err != nil {
		return err
	}
	var quoteAmount types.Amount
	if order.Direction == types.OrderDirectionBuy {
		quoteAmount = order.OfferAmount
	} else {
		quoteAmount = price.MulAmount(order.OfferAmount)
	}
	if quoteAmount.LT(ob.MinQuoteCoinAmount) {
		return types.ErrBelowMinQuote
	}
	return nil
}

// UpdateOrder re-escrows an existing order with a new offer/ask pair.
// Per SPEC_FULL.md's Open Question decision this module implements full
// re-escrow: the caller delivers the entire new offer amount, the old
// order's unfilled remainder is refunded in the same call, and the order
// keeps its original id, bidder, and direction but starts a fresh fill
// history at the new price.
func (k *Keeper) UpdateOrder(ctx sdk.Context, pairKey types.PairKey, orderID uint64, sender string, newOffer, newAsk types.Asset) (refund types.Asset, _ error) {
	order, err := k.MustGetOrder(ctx, pairKey, orderID)
	if err != nil {
		return types.Asset{}, err
	}
	if order.BidderAddr != sender {
		return types.Asset{}, types.ErrUnauthorized
	}
	if !order.IsActive() {
		return types.Asset{}, types.ErrOrderNotActive
	}
	ob, err := k.MustGetOrderBook(ctx, pairKey)
	if err != nil {
		return types.Asset{}, err
	}
	if !newOffer.Info.Equal(ob.OfferAssetInfo(order.Direction)) || !newAsk.Info.Equal(ob.AskAssetInfo(order.Direction)) {
		return types.Asset{}, types.ErrFundMismatch
	}

	left, err := order.LeftOfferAmount()
	if err != nil {
		return types.Asset{}, err
	}
	refund = types.Asset{Info: newOffer.Info, Amount: left}

	if err := k.RemoveOrderIndexes(ctx, pairKey.Bytes(), order); err != nil {
		return types.Asset{}, err
	}

	updated := types.NewOrder(order.OrderID, order.Direction, order.BidderAddr, newOffer.Amount, newAsk.Amount)
	if err := k.checkMinQuote(ob, updated); err != nil {
		return types.Asset{}, err
	}
	if err := k.SetOrder(ctx, pairKey, updated); err != nil {
		return types.Asset{}, err
	}
	if err := k.IndexOrder(ctx, pairKey.Bytes(), updated); err != nil {
		return types.Asset{}, err
	}
	return refund, nil
}

// CancelOrder removes a resting order and reports the refund the caller
// must transfer back: quote for Buy, base for Sell (spec.md §4.3).
func (k *Keeper) CancelOrder(ctx sdk.Context, pairKey types.PairKey, orderID uint64, sender string) (*types.Order, types.Asset, error) {
	order, err := k.MustGetOrder(ctx, pairKey, orderID)
	if err != nil {
		return nil, types.Asset{}, err
	}
	if order.BidderAddr != sender {
		return nil, types.Asset{}, types.ErrUnauthorized
	}
	ob, err := k.MustGetOrderBook(ctx, pairKey)
	if err != nil {
		return nil, types.Asset{}, err
	}

	left, err := order.RefundAmount()
	if err != nil {
		return nil, types.Asset{}, err
	}
	refund := types.Asset{Info: ob.OfferAssetInfo(order.Direction), Amount: left}

	order.Status = types.OrderStatusCancel
	if err := k.RemoveOrderIndexes(ctx, pairKey.Bytes(), order); err != nil {
		return nil, types.Asset{}, err
	}
	k.DeleteOrder(ctx, pairKey, order.OrderID)
	k.metrics.ordersCancelled.Inc()
	return order, refund, nil
}
