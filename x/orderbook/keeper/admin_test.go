package keeper

import (
	"testing"

	"github.com/oraichain/orderbook-engine/x/orderbook/types"
)

func TestRequireAdmin(t *testing.T) {
	k, _, _ := setupKeeper(t)

	if err := k.RequireAdmin(k.adminAddress); err != nil {
		t.Fatalf("expected the admin address to pass, got %v", err)
	}
	if err := k.RequireAdmin("mallory"); err == nil {
		t.Fatal("expected ErrUnauthorized for a non-admin sender")
	}
}

// TestRemovePair_SweepsEveryRow covers the Open Question decision to make
// pair removal a full sweep rather than leaving orphaned order/tick/index
// rows the way the original contract's remove_pair does.
func TestRemovePair_SweepsEveryRow(t *testing.T) {
	k, ctx, _ := setupKeeper(t)
	pairKey := seedOrderbook(t, k, ctx, types.ZeroAmount())

	order, err := k.SubmitOrder(ctx, pairKey, types.OrderDirectionBuy, "alice",
		types.Asset{Info: testQuote, Amount: mustAmount(100)},
		types.Asset{Info: testBase, Amount: mustAmount(100)})
	if err != nil {
		t.Fatalf("SubmitOrder: %v", err)
	}

	if err := k.RemovePair(ctx, pairKey); err != nil {
		t.Fatalf("RemovePair: %v", err)
	}

	if ob, _ := k.GetOrderBook(ctx, pairKey); ob != nil {
		t.Fatalf("expected the orderbook metadata row to be gone, got %+v", ob)
	}
	if got, _ := k.GetOrder(ctx, pairKey, order.OrderID); got != nil {
		t.Fatalf("expected the order row to be swept, got %+v", got)
	}
	remaining, err := k.OrdersByBidder(ctx, pairKey, "alice", types.PageRequest{Limit: 10})
	if err != nil {
		t.Fatalf("OrdersByBidder: %v", err)
	}
	if len(remaining) != 0 {
		t.Fatalf("expected the bidder index to be swept too, got %+v", remaining)
	}
	if count := k.getTickCount(ctx, pairKey.Bytes(), types.OrderDirectionBuy, mustPrice(t, order)); count != 0 {
		t.Fatalf("expected the tick counter to be cleared, got %d", count)
	}
}

func TestRemoveOrderByPrice_ZeroesTickCounter(t *testing.T) {
	k, ctx, _ := setupKeeper(t)
	pairKey := seedOrderbook(t, k, ctx, types.ZeroAmount())

	order, err := k.SubmitOrder(ctx, pairKey, types.OrderDirectionBuy, "alice",
		types.Asset{Info: testQuote, Amount: mustAmount(100)},
		types.Asset{Info: testBase, Amount: mustAmount(100)})
	if err != nil {
		t.Fatalf("SubmitOrder: %v", err)
	}
	price := mustPrice(t, order)

	previous := k.RemoveOrderByPrice(ctx, pairKey, types.OrderDirectionBuy, price)
	if previous != 1 {
		t.Fatalf("expected previous count 1, got %d", previous)
	}
	if count := k.getTickCount(ctx, pairKey.Bytes(), types.OrderDirectionBuy, price); count != 0 {
		t.Fatalf("expected the tick counter to now read 0, got %d", count)
	}
	// The order row itself is untouched by this admin op.
	if got, _ := k.GetOrder(ctx, pairKey, order.OrderID); got == nil {
		t.Fatal("expected the order row to still exist")
	}
}

func TestRemoveOrderByStatus_DropsIndexesOnly(t *testing.T) {
	k, ctx, _ := setupKeeper(t)
	pairKey := seedOrderbook(t, k, ctx, types.ZeroAmount())

	order, err := k.SubmitOrder(ctx, pairKey, types.OrderDirectionBuy, "alice",
		types.Asset{Info: testQuote, Amount: mustAmount(100)},
		types.Asset{Info: testBase, Amount: mustAmount(100)})
	if err != nil {
		t.Fatalf("SubmitOrder: %v", err)
	}

	if err := k.RemoveOrderByStatus(ctx, pairKey, order.OrderID, types.OrderStatusCancel); err != nil {
		t.Fatalf("RemoveOrderByStatus: %v", err)
	}

	remaining, err := k.OrdersByBidder(ctx, pairKey, "alice", types.PageRequest{Limit: 10})
	if err != nil {
		t.Fatalf("OrdersByBidder: %v", err)
	}
	if len(remaining) != 0 {
		t.Fatalf("expected the bidder index row to be dropped, got %+v", remaining)
	}
	// The order row itself still exists, just orphaned from its indexes.
	got, err := k.GetOrder(ctx, pairKey, order.OrderID)
	if err != nil || got == nil {
		t.Fatalf("expected the order row to still exist: %v", err)
	}
}

func TestRemoveStuckOrder_DeletesOrderAndIndexes(t *testing.T) {
	k, ctx, _ := setupKeeper(t)
	pairKey := seedOrderbook(t, k, ctx, types.ZeroAmount())

	order, err := k.SubmitOrder(ctx, pairKey, types.OrderDirectionBuy, "alice",
		types.Asset{Info: testQuote, Amount: mustAmount(100)},
		types.Asset{Info: testBase, Amount: mustAmount(100)})
	if err != nil {
		t.Fatalf("SubmitOrder: %v", err)
	}

	if err := k.RemoveStuckOrder(ctx, pairKey, order.OrderID); err != nil {
		t.Fatalf("RemoveStuckOrder: %v", err)
	}

	if got, _ := k.GetOrder(ctx, pairKey, order.OrderID); got != nil {
		t.Fatalf("expected the order row to be deleted, got %+v", got)
	}
	remaining, err := k.OrdersByBidder(ctx, pairKey, "alice", types.PageRequest{Limit: 10})
	if err != nil {
		t.Fatalf("OrdersByBidder: %v", err)
	}
	if len(remaining) != 0 {
		t.Fatalf("expected the bidder index row to be removed, got %+v", remaining)
	}
}

func TestRemoveStuckOrder_UnknownOrderErrors(t *testing.T) {
	k, ctx, _ := setupKeeper(t)
	pairKey := seedOrderbook(t, k, ctx, types.ZeroAmount())

	if err := k.RemoveStuckOrder(ctx, pairKey, 999); err == nil {
		t.Fatal("expected an error for a nonexistent order id")
	}
}
