package keeper

import (
	"encoding/json"

	"cosmossdk.io/log"
	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/oraichain/orderbook-engine/x/orderbook/types"
)

// TransferKeeper is the host capability the engine depends on to move
// custodied assets, per spec.md §1 "the engine assumes ... a 'transfer
// asset X of amount N to address A' primitive provided by the host" and
// §9 "the engine never inspects asset internals beyond equality and a
// canonical byte key". Mirrors the shape of the teacher's PerpetualKeeper
// collaborator interface on Keeper.
type TransferKeeper interface {
	// AssertDelivered checks that `asset` was attached to the current
	// transaction by `sender` in the same call that is submitting or
	// updating an order (spec.md §4.3 FundMismatch precondition).
	AssertDelivered(ctx sdk.Context, sender string, asset types.Asset) error
	// Transfer moves `asset` out of engine custody to `recipient`.
	Transfer(ctx sdk.Context, recipient string, asset types.Asset) error
}

// Keeper owns every piece of persistent state named in spec.md §4.1 and
// exposes the storage-layer primitives (C1) the rest of the module is built
// on, following the teacher's Keeper shape: a store key, a collaborator
// interface, a logger, metrics, and the admin/reward addresses, with no
// store state held across calls
// (spec.md §5 "no in-memory cache across calls — every handler re-reads
// from storage"; ticks.go reads tick rows straight off the store on every
// call rather than keeping a keeper-lived accelerator, since nothing on
// Keeper can track which branch of the KV store a cached value belongs to).
type Keeper struct {
	storeKey       storetypes.StoreKey
	transferKeeper TransferKeeper
	logger         log.Logger
	metrics        *Metrics
	adminAddress   string
	rewardAddress  string
}

// NewKeeper constructs an orderbook Keeper.
func NewKeeper(
	storeKey storetypes.StoreKey,
	transferKeeper TransferKeeper,
	logger log.Logger,
) *Keeper {
	return &Keeper{
		storeKey:       storeKey,
		transferKeeper: transferKeeper,
		logger:         logger.With("module", "x/"+types.ModuleName),
		metrics:        NewMetrics(),
		adminAddress:   DefaultAdminAddress,
		rewardAddress:  DefaultRewardAddress,
	}
}

// Logger returns the module logger.
func (k *Keeper) Logger() log.Logger {
	return k.logger
}

// GetStore returns the prefixed KVStore for this module.
func (k *Keeper) GetStore(ctx sdk.Context) storetypes.KVStore {
	return ctx.KVStore(k.storeKey)
}

// -----------------------------------------------------------------------
// Orders
// -----------------------------------------------------------------------

// SetOrder persists an order row.
func (k *Keeper) SetOrder(ctx sdk.Context, pairKey types.PairKey, order *types.Order) error {
	store := k.GetStore(ctx)
	bz, err := json.Marshal(order)
	if err != nil {
		return types.ErrStorageError
	}
	store.Set(types.OrderKey(pairKey.Bytes(), order.OrderID), bz)
	return nil
}

// GetOrder loads an order row, or nil if it does not exist.
func (k *Keeper) GetOrder(ctx sdk.Context, pairKey types.PairKey, orderID uint64) (*types.Order, error) {
	store := k.GetStore(ctx)
	bz := store.Get(types.OrderKey(pairKey.Bytes(), orderID))
	if bz == nil {
		return nil, nil
	}
	var order types.Order
	if err := json.Unmarshal(bz, &order); err != nil {
		return nil, types.ErrCorruptedIndex
	}
	return &order, nil
}

// MustGetOrder loads an order, returning ErrOrderNotFound if absent.
func (k *Keeper) MustGetOrder(ctx sdk.Context, pairKey types.PairKey, orderID uint64) (*types.Order, error) {
	order, err := k.GetOrder(ctx, pairKey, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, types.ErrOrderNotFound
	}
	return order, nil
}

// DeleteOrder removes the order row itself (callers are responsible for
// removing the tick counter and the three enumeration indexes first via
// RemoveOrderIndexes — spec.md §3.3 "removing an Order MUST remove all
// four index entries and decrement the tick counter").
func (k *Keeper) DeleteOrder(ctx sdk.Context, pairKey types.PairKey, orderID uint64) {
	store := k.GetStore(ctx)
	store.Delete(types.OrderKey(pairKey.Bytes(), orderID))
}

// -----------------------------------------------------------------------
// OrderBook
// -----------------------------------------------------------------------

func (k *Keeper) SetOrderBook(ctx sdk.Context, ob *types.OrderBook) error {
	store := k.GetStore(ctx)
	bz, err := json.Marshal(ob)
	if err != nil {
		return types.ErrStorageError
	}
	store.Set(types.OrderBookKey(ob.PairKey.Bytes()), bz)
	return nil
}

func (k *Keeper) GetOrderBook(ctx sdk.Context, pairKey types.PairKey) (*types.OrderBook, error) {
	store := k.GetStore(ctx)
	bz := store.Get(types.OrderBookKey(pairKey.Bytes()))
	if bz == nil {
		return nil, nil
	}
	var ob types.OrderBook
	if err := json.Unmarshal(bz, &ob); err != nil {
		return nil, types.ErrCorruptedIndex
	}
	return &ob, nil
}

func (k *Keeper) MustGetOrderBook(ctx sdk.Context, pairKey types.PairKey) (*types.OrderBook, error) {
	ob, err := k.GetOrderBook(ctx, pairKey)
	if err != nil {
		return nil, err
	}
	if ob == nil {
		return nil, types.ErrPairNotFound
	}
	return ob, nil
}

func (k *Keeper) DeleteOrderBook(ctx sdk.Context, pairKey types.PairKey) {
	store := k.GetStore(ctx)
	store.Delete(types.OrderBookKey(pairKey.Bytes()))
}

// IterateOrderBooks walks every registered pair, in key order, calling fn
// for each until fn returns false.
func (k *Keeper) IterateOrderBooks(ctx sdk.Context, fn func(ob *types.OrderBook) bool) {
	store := k.GetStore(ctx)
	it := storetypes.KVStorePrefixIterator(store, types.OrderBookKeyPrefix)
	defer it.Close()
	for ; it.Valid(); it.Next() {
		var ob types.OrderBook
		if err := json.Unmarshal(it.Value(), &ob); err != nil {
			continue
		}
		if !fn(&ob) {
			return
		}
	}
}

// -----------------------------------------------------------------------
// Executors (reward accounts)
// -----------------------------------------------------------------------

func (k *Keeper) SetExecutor(ctx sdk.Context, pairKey types.PairKey, e *types.Executor) error {
	store := k.GetStore(ctx)
	bz, err := json.Marshal(e)
	if err != nil {
		return types.ErrStorageError
	}
	store.Set(types.RewardKey(pairKey.Bytes(), e.Address), bz)
	return nil
}

func (k *Keeper) GetExecutor(ctx sdk.Context, pairKey types.PairKey, address string) (*types.Executor, error) {
	store := k.GetStore(ctx)
	bz := store.Get(types.RewardKey(pairKey.Bytes(), address))
	if bz == nil {
		return nil, nil
	}
	var e types.Executor
	if err := json.Unmarshal(bz, &e); err != nil {
		return nil, types.ErrCorruptedIndex
	}
	return &e, nil
}

// GetOrCreateExecutor loads the reward account for (pair, address), lazily
// creating a zeroed one typed to the pair's base/quote assets if absent
// (spec.md §3.1 "created lazily, persists across calls").
func (k *Keeper) GetOrCreateExecutor(ctx sdk.Context, ob *types.OrderBook, address string) (*types.Executor, error) {
	e, err := k.GetExecutor(ctx, ob.PairKey, address)
	if err != nil {
		return nil, err
	}
	if e == nil {
		e = types.NewExecutor(address, ob.BaseCoinInfo, ob.QuoteCoinInfo)
	}
	return e, nil
}

// -----------------------------------------------------------------------
// Global counters
// -----------------------------------------------------------------------

// NextOrderID increments and returns the global, strictly-monotonic order
// id counter (spec.md §3.1).
func (k *Keeper) NextOrderID(ctx sdk.Context) uint64 {
	store := k.GetStore(ctx)
	bz := store.Get(types.LastOrderIDKey)
	var id uint64
	if bz != nil {
		id, _ = types.OrderIDFromBytes(bz)
	}
	id++
	store.Set(types.LastOrderIDKey, encodeUint64(id))
	return id
}

// LastOrderID returns the current counter value without incrementing it.
func (k *Keeper) LastOrderID(ctx sdk.Context) uint64 {
	store := k.GetStore(ctx)
	bz := store.Get(types.LastOrderIDKey)
	if bz == nil {
		return 0
	}
	id, _ := types.OrderIDFromBytes(bz)
	return id
}

func encodeUint64(v uint64) []byte {
	b := make([]byte, 8)
	for i := 0; i < 8; i++ {
		b[i] = byte(v >> (8 * i))
	}
	return b
}
