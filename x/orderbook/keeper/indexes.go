package keeper

import (
	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/oraichain/orderbook-engine/x/orderbook/types"
)

// trueMarker is the membership-index value: the keys encode everything, the
// value just has to be non-nil/non-empty for the iterator to yield the row.
var trueMarker = []byte{0x01}

// getTickCount reads the resting-order count at a tick, 0 if absent.
func (k *Keeper) getTickCount(ctx sdk.Context, pairKey []byte, direction types.OrderDirection, price types.Price) uint64 {
	store := k.GetStore(ctx)
	bz := store.Get(types.TickKey(pairKey, direction, price))
	return decodeUint64(bz)
}

func (k *Keeper) setTickCount(ctx sdk.Context, pairKey []byte, direction types.OrderDirection, price types.Price, count uint64) {
	store := k.GetStore(ctx)
	key := types.TickKey(pairKey, direction, price)
	if count == 0 {
		store.Delete(key)
	} else {
		store.Set(key, encodeUint64(count))
	}
}

// IndexOrder adds every index row an Open/PartialFilled order must appear
// under (tick counter, order_by_price, order_by_bidder, order_by_direction),
// per spec.md §3.3. Called once, at submission time; UpdateOrder re-escrowing
// removes the old indexes first and calls this again with the new price.
func (k *Keeper) IndexOrder(ctx sdk.Context, pairKey []byte, order *types.Order) error {
	price, err := order.Price()
	if err != nil {
		return err
	}
	store := k.GetStore(ctx)
	store.Set(types.OrderByPriceKey(pairKey, order.Direction, price, order.OrderID), trueMarker)
	store.Set(types.OrderByBidderKey(pairKey, order.BidderAddr, order.OrderID), trueMarker)
	store.Set(types.OrderByDirectionKey(pairKey, order.Direction, order.OrderID), trueMarker)
	k.setTickCount(ctx, pairKey, order.Direction, price, k.getTickCount(ctx, pairKey, order.Direction, price)+1)
	return nil
}

// RemoveOrderIndexes removes every index row for an order leaving the book
// (filled, cancelled, or admin-removed) and decrements its tick counter,
// deleting the tick row outright once it reaches zero (spec.md §3.3).
func (k *Keeper) RemoveOrderIndexes(ctx sdk.Context, pairKey []byte, order *types.Order) error {
	price, err := order.Price()
	if err != nil {
		return err
	}
	store := k.GetStore(ctx)
	store.Delete(types.OrderByPriceKey(pairKey, order.Direction, price, order.OrderID))
	store.Delete(types.OrderByBidderKey(pairKey, order.BidderAddr, order.OrderID))
	store.Delete(types.OrderByDirectionKey(pairKey, order.Direction, order.OrderID))

	count := k.getTickCount(ctx, pairKey, order.Direction, price)
	if count > 0 {
		count--
	}
	k.setTickCount(ctx, pairKey, order.Direction, price, count)
	return nil
}

// OrdersByBidder enumerates a bidder's orders for a pair, ascending by id.
func (k *Keeper) OrdersByBidder(ctx sdk.Context, pairKey types.PairKey, bidder string, page types.PageRequest) ([]*types.Order, error) {
	store := k.GetStore(ctx)
	prefix := types.OrderByBidderKeyPrefixForBidder(pairKey.Bytes(), bidder)
	return k.scanOrderIDIndex(ctx, store, prefix, pairKey, page)
}

// OrdersByDirection enumerates every order of one direction for a pair,
// ascending by id, ignoring price — used by the "None" filter query.
func (k *Keeper) OrdersByDirection(ctx sdk.Context, pairKey types.PairKey, direction types.OrderDirection, page types.PageRequest) ([]*types.Order, error) {
	store := k.GetStore(ctx)
	prefix := types.OrderByDirectionKeyPrefixForDirection(pairKey.Bytes(), direction)
	return k.scanOrderIDIndex(ctx, store, prefix, pairKey, page)
}

// OrdersByPrice enumerates the orders resting at one tick, ascending by id.
func (k *Keeper) OrdersByPrice(ctx sdk.Context, pairKey types.PairKey, direction types.OrderDirection, price types.Price, page types.PageRequest) ([]*types.Order, error) {
	store := k.GetStore(ctx)
	prefix := types.OrderByPriceKeyPrefixForTick(pairKey.Bytes(), direction, price)
	return k.scanOrderIDIndex(ctx, store, prefix, pairKey, page)
}

func (k *Keeper) scanOrderIDIndex(ctx sdk.Context, store storetypes.KVStore, prefix []byte, pairKey types.PairKey, page types.PageRequest) ([]*types.Order, error) {
	limit := types.ClampLimit(page.Limit)
	var it storetypes.Iterator
	if page.Order == types.SortDescending {
		it = storetypes.KVStoreReversePrefixIterator(store, prefix)
	} else {
		it = storetypes.KVStorePrefixIterator(store, prefix)
	}
	defer it.Close()

	orders := make([]*types.Order, 0, limit)
	for ; it.Valid() && uint32(len(orders)) < limit; it.Next() {
		suffix := it.Key()[len(prefix):]
		orderID, err := types.OrderIDFromBytes(suffix)
		if err != nil {
			return nil, err
		}
		if page.StartAfter != nil {
			if page.Order == types.SortDescending {
				if orderID >= *page.StartAfter {
					continue
				}
			} else if orderID <= *page.StartAfter {
				continue
			}
		}
		order, err := k.GetOrder(ctx, pairKey, orderID)
		if err != nil {
			return nil, err
		}
		if order == nil {
			continue
		}
		orders = append(orders, order)
	}
	return orders, nil
}
