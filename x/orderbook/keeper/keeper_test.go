package keeper

import (
	"testing"

	"cosmossdk.io/log"
	"cosmossdk.io/store"
	"cosmossdk.io/store/metrics"
	storetypes "cosmossdk.io/store/types"
	cmtproto "github.com/cometbft/cometbft/proto/tendermint/types"
	dbm "github.com/cosmos/cosmos-db"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/oraichain/orderbook-engine/x/orderbook/types"
)

// mockTransferKeeper is an in-memory stand-in for the host's custody
// primitive: AssertDelivered always succeeds (the test harness doesn't
// model a separate bank balance) and Transfer just records payouts so
// tests can assert on them, following the teacher's benchmark_test.go
// mockBenchPerpetualKeeper pattern of a minimal fake collaborator.
type mockTransferKeeper struct {
	transfers []mockTransfer
}

type mockTransfer struct {
	Recipient string
	Asset     types.Asset
}

func (m *mockTransferKeeper) AssertDelivered(ctx sdk.Context, sender string, asset types.Asset) error {
	return nil
}

func (m *mockTransferKeeper) Transfer(ctx sdk.Context, recipient string, asset types.Asset) error {
	m.transfers = append(m.transfers, mockTransfer{Recipient: recipient, Asset: asset})
	return nil
}

// setupKeeper builds a Keeper over a fresh in-memory IAVL store, following
// the teacher's setupBenchKeeper helper.
func setupKeeper(tb testing.TB) (*Keeper, sdk.Context, *mockTransferKeeper) {
	tb.Helper()

	storeKey := storetypes.NewKVStoreKey(types.StoreKey)
	db := dbm.NewMemDB()
	stateStore := store.NewCommitMultiStore(db, log.NewNopLogger(), metrics.NewNoOpMetrics())
	stateStore.MountStoreWithDB(storeKey, storetypes.StoreTypeIAVL, db)
	if err := stateStore.LoadLatestVersion(); err != nil {
		tb.Fatalf("failed to load store: %v", err)
	}

	ctx := sdk.NewContext(stateStore, cmtproto.Header{}, false, log.NewNopLogger())

	transferKeeper := &mockTransferKeeper{}
	k := NewKeeper(storeKey, transferKeeper, log.NewNopLogger())
	return k, ctx, transferKeeper
}

var (
	testBase  = types.NewNativeTokenInfo("uorai")
	testQuote = types.NewNativeTokenInfo("uusdc")
)

// seedOrderbook registers a base/quote pair with the given minimum quote
// notional and returns its pair key.
func seedOrderbook(tb testing.TB, k *Keeper, ctx sdk.Context, minQuote types.Amount) types.PairKey {
	tb.Helper()
	ob, err := types.NewOrderBook(testBase, testQuote, nil, minQuote)
	if err != nil {
		tb.Fatalf("NewOrderBook: %v", err)
	}
	if err := k.SetOrderBook(ctx, ob); err != nil {
		tb.Fatalf("SetOrderBook: %v", err)
	}
	return ob.PairKey
}
