package keeper

import (
	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/oraichain/orderbook-engine/x/orderbook/types"
)

// RequireAdmin rejects any caller other than the package-level admin
// address (spec.md §9: admin/fee governance stays a hard-coded constant
// pending a future config layer).
func (k *Keeper) RequireAdmin(sender string) error {
	if sender != k.adminAddress {
		return types.ErrUnauthorized
	}
	return nil
}

// RemovePair deletes an orderbook's metadata row and, per SPEC_FULL.md's
// Open Question decision, every order/tick/index/reward row still living
// under its pair key — the original contract's `remove_pair` only dropped
// the metadata row and orphaned everything else, which we treat as a bug
// to fix rather than carry forward.
func (k *Keeper) RemovePair(ctx sdk.Context, pairKey types.PairKey) error {
	store := k.GetStore(ctx)
	pk := pairKey.Bytes()

	k.deleteByPrefix(store, append(append([]byte{}, types.OrderKeyPrefix...), pk...))
	k.deleteByPrefix(store, append(append([]byte{}, types.TickKeyPrefix...), pk...))
	k.deleteByPrefix(store, append(append([]byte{}, types.OrderByPriceKeyPrefix...), pk...))
	k.deleteByPrefix(store, append(append([]byte{}, types.OrderByBidderKeyPrefix...), pk...))
	k.deleteByPrefix(store, append(append([]byte{}, types.OrderByDirectionKeyPrefix...), pk...))
	k.deleteByPrefix(store, append(append([]byte{}, types.RewardKeyPrefix...), pk...))

	k.DeleteOrderBook(ctx, pairKey)
	return nil
}

func (k *Keeper) deleteByPrefix(store storetypes.KVStore, prefix []byte) {
	it := storetypes.KVStorePrefixIterator(store, prefix)
	defer it.Close()
	keys := make([][]byte, 0)
	for ; it.Valid(); it.Next() {
		keys = append(keys, append([]byte{}, it.Key()...))
	}
	for _, key := range keys {
		store.Delete(key)
	}
}

// RemoveOrderByPrice zeroes a tick's counter directly without touching the
// orders or other indexes resting there — an admin escape hatch for a tick
// counter that has drifted from the true membership count, per spec.md
// §4.6's "counter may be corrected independently of the rows it counts".
// Returns the previous count.
func (k *Keeper) RemoveOrderByPrice(ctx sdk.Context, pairKey types.PairKey, direction types.OrderDirection, price types.Price) uint64 {
	previous := k.getTickCount(ctx, pairKey.Bytes(), direction, price)
	k.setTickCount(ctx, pairKey.Bytes(), direction, price, 0)
	return previous
}

// RemoveOrderByStatus force-removes all three enumeration index rows
// (order_by_price, order_by_bidder, and order_by_direction) of one order
// without touching the order row itself or the tick counter; `status` is set
// on the loaded copy only and is not written back to the store — the other
// half of the admin maintenance surface alongside RemoveOrderByPrice
// (spec.md §4.6).
func (k *Keeper) RemoveOrderByStatus(ctx sdk.Context, pairKey types.PairKey, orderID uint64, status types.OrderStatus) error {
	order, err := k.GetOrder(ctx, pairKey, orderID)
	if err != nil {
		return err
	}
	if order == nil {
		return types.ErrOrderNotFound
	}
	order.Status = status
	store := k.GetStore(ctx)
	price, err := order.Price()
	if err != nil {
		return err
	}
	store.Delete(types.OrderByPriceKey(pairKey.Bytes(), order.Direction, price, order.OrderID))
	store.Delete(types.OrderByBidderKey(pairKey.Bytes(), order.BidderAddr, order.OrderID))
	store.Delete(types.OrderByDirectionKey(pairKey.Bytes(), order.Direction, order.OrderID))
	return nil
}

// RemoveStuckOrder rescues a single order whose indexes have drifted out
// of sync with its fill state (spec.md §4.4.3, §4.6) — the admin-invoked
// counterpart to the matcher's own lazy stuck-row sweep, for a stuck order
// that no pending ExecuteOrderbookPair call will otherwise visit.
func (k *Keeper) RemoveStuckOrder(ctx sdk.Context, pairKey types.PairKey, orderID uint64) error {
	order, err := k.MustGetOrder(ctx, pairKey, orderID)
	if err != nil {
		return err
	}
	if err := k.RemoveOrderIndexes(ctx, pairKey.Bytes(), order); err != nil {
		return err
	}
	k.DeleteOrder(ctx, pairKey, order.OrderID)
	ctx.EventManager().EmitEvent(types.MatchedOrderEvent(order, "remove stuff order"))
	return nil
}
