package keeper

import (
	"cosmossdk.io/math"
	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/oraichain/orderbook-engine/x/orderbook/types"
)

// BestPrices returns up to `limit` resting tick prices for each side of the
// book: buy prices descending (highest first), sell prices ascending
// (lowest first) — matching the original contract's `find_list_match_price`
// traversal order. Reads the tick rows straight off the context's own KV
// branch on every call rather than through a keeper-lived cache: spec.md §5
// requires all-or-nothing semantics and no in-memory state that could
// outlive a handler's rollback, and a cache keyed only by pair/direction has
// no notion of which store branch it reflects. `Price.IndexBytes`'s
// lexicographic-equals-numeric ordering (types/price.go) makes a plain
// prefix iterator sufficient — the same approach the teacher's own keepers
// use for ordered KV scans (x/orderbook/keeper/query.go,
// x/clearinghouse/keeper/adl.go) via KVStoreReversePrefixIterator, rather
// than maintaining a parallel in-memory ordered structure.
func (k *Keeper) BestPrices(ctx sdk.Context, pairKey []byte, limit uint32) (buys, sells []types.Price) {
	buys = k.scanTickPrices(ctx, pairKey, types.OrderDirectionBuy, limit, true)
	sells = k.scanTickPrices(ctx, pairKey, types.OrderDirectionSell, limit, false)
	return buys, sells
}

func (k *Keeper) scanTickPrices(ctx sdk.Context, pairKey []byte, direction types.OrderDirection, limit uint32, descending bool) []types.Price {
	store := k.GetStore(ctx)
	prefix := types.TickKeyPrefixForDirection(pairKey, direction)

	var it storetypes.Iterator
	if descending {
		it = storetypes.KVStoreReversePrefixIterator(store, prefix)
	} else {
		it = storetypes.KVStorePrefixIterator(store, prefix)
	}
	defer it.Close()

	out := make([]types.Price, 0, limit)
	for ; it.Valid() && uint32(len(out)) < limit; it.Next() {
		if decodeUint64(it.Value()) == 0 {
			continue
		}
		suffix := it.Key()[len(prefix):]
		out = append(out, types.NewPriceFromDec(parseIndexPrice(suffix)))
	}
	return out
}

// OrdersAtTick returns the orders resting at (pairKey, direction, price),
// ascending by order id (FIFO, spec.md §4.4.1), up to `limit` entries. The
// order_by_price key suffix is the order id itself, so a plain prefix
// iterator already yields FIFO order without any auxiliary structure.
func (k *Keeper) OrdersAtTick(ctx sdk.Context, pairKey []byte, direction types.OrderDirection, price types.Price, limit uint32) ([]*types.Order, error) {
	store := k.GetStore(ctx)
	prefix := types.OrderByPriceKeyPrefixForTick(pairKey, direction, price)
	it := storetypes.KVStorePrefixIterator(store, prefix)
	defer it.Close()

	orders := make([]*types.Order, 0, limit)
	for ; it.Valid() && uint32(len(orders)) < limit; it.Next() {
		suffix := it.Key()[len(prefix):]
		orderID, err := types.OrderIDFromBytes(suffix)
		if err != nil {
			return nil, err
		}
		order, err := k.GetOrder(ctx, types.PairKeyFromBytes(pairKey), orderID)
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

// parseIndexPrice recovers the decimal value encoded by Price.IndexBytes.
func parseIndexPrice(indexBytes []byte) math.LegacyDec {
	d, err := math.LegacyNewDecFromStr(string(indexBytes))
	if err != nil {
		return math.LegacyZeroDec()
	}
	return d
}

func decodeUint64(b []byte) uint64 {
	if len(b) != 8 {
		return 0
	}
	var v uint64
	for i := 0; i < 8; i++ {
		v |= uint64(b[i]) << (8 * i)
	}
	return v
}
