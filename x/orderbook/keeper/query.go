package keeper

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/oraichain/orderbook-engine/x/orderbook/types"
)

// Order returns a single order, or ErrOrderNotFound if absent (order.rs
// query_order).
func (k *Keeper) Order(ctx sdk.Context, pairKey types.PairKey, orderID uint64) (*types.Order, error) {
	return k.MustGetOrder(ctx, pairKey, orderID)
}

// Orders dispatches on the filter kind to the matching index (order.rs
// query_orders / query_orders_by_price, spec.md §4.5): None walks a single
// direction ignoring price, Bidder walks the by-bidder index, Price walks
// one tick, and Tick is an alias for Price kept for callers that think in
// terms of "the resting orders at this tick" rather than "this price".
func (k *Keeper) Orders(ctx sdk.Context, pairKey types.PairKey, direction types.OrderDirection, filter types.OrderFilter, page types.PageRequest) ([]*types.Order, error) {
	switch filter.Kind {
	case types.OrderFilterBidder:
		return k.OrdersByBidder(ctx, pairKey, filter.Bidder, page)
	case types.OrderFilterPrice, types.OrderFilterTick:
		return k.OrdersByPrice(ctx, pairKey, direction, filter.Price, page)
	default:
		return k.OrdersByDirection(ctx, pairKey, direction, page)
	}
}

// Orderbook returns a pair's metadata row (order.rs query_orderbook).
func (k *Keeper) Orderbook(ctx sdk.Context, pairKey types.PairKey) (*types.OrderBook, error) {
	return k.MustGetOrderBook(ctx, pairKey)
}

// Orderbooks lists every registered pair, ascending by pair key, up to
// page.Limit entries starting strictly after page.StartAfter (order.rs
// query_orderbooks).
func (k *Keeper) Orderbooks(ctx sdk.Context, page types.OrderBooksPageRequest) []*types.OrderBook {
	limit := types.ClampLimit(page.Limit)
	obs := make([]*types.OrderBook, 0, limit)
	k.IterateOrderBooks(ctx, func(ob *types.OrderBook) bool {
		key := ob.PairKey.Bytes()
		if page.StartAfter != nil && string(key) <= string(page.StartAfter) {
			return true
		}
		obs = append(obs, ob)
		return uint32(len(obs)) < limit
	})
	return obs
}

// OrderbookIsMatchable reports whether a pair currently has at least one
// resting order on each side of the book (order.rs
// query_orderbook_is_matchable) — the cheap pre-check a relayer runs
// before spending gas on ExecuteOrderbookPair.
func (k *Keeper) OrderbookIsMatchable(ctx sdk.Context, pairKey types.PairKey) bool {
	buys, sells := k.BestPrices(ctx, pairKey.Bytes(), 1)
	return len(buys) > 0 && len(sells) > 0
}

// MatchPrice returns the best resting price on each side of the book, if
// any (order.rs query_match_price).
func (k *Keeper) MatchPrice(ctx sdk.Context, pairKey types.PairKey) types.MatchPriceResult {
	buys, sells := k.BestPrices(ctx, pairKey.Bytes(), 1)
	result := types.MatchPriceResult{}
	if len(buys) > 0 {
		result.BestBuyPrice = buys[0]
		result.HasBestBuy = true
	}
	if len(sells) > 0 {
		result.BestSellPrice = sells[0]
		result.HasBestSell = true
	}
	return result
}

// MatchPriceSummary renders MatchPrice as the human-readable line a CLI or
// relayer dashboard can print directly, supplementing the raw query with
// the kind of "is there anything to match, and at what price" answer
// query_match_price's callers actually want (order.rs query_match_price,
// read alongside query_orderbook_is_matchable).
func (k *Keeper) MatchPriceSummary(ctx sdk.Context, pairKey types.PairKey) string {
	result := k.MatchPrice(ctx, pairKey)
	switch {
	case !result.HasBestBuy && !result.HasBestSell:
		return "no resting orders on either side"
	case !result.HasBestBuy:
		return fmt.Sprintf("no resting buy orders; best sell %s", result.BestSellPrice.String())
	case !result.HasBestSell:
		return fmt.Sprintf("no resting sell orders; best buy %s", result.BestBuyPrice.String())
	case result.BestBuyPrice.LT(result.BestSellPrice):
		return fmt.Sprintf("not matchable: best buy %s < best sell %s", result.BestBuyPrice.String(), result.BestSellPrice.String())
	default:
		return fmt.Sprintf("matchable: best buy %s >= best sell %s", result.BestBuyPrice.String(), result.BestSellPrice.String())
	}
}
