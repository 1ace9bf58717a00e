package keeper

import (
	"testing"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/oraichain/orderbook-engine/x/orderbook/types"
)

func mustAmount(v int64) types.Amount {
	return types.NewAmountFromUint64(uint64(v))
}

func TestSubmitOrder_IndexesAndPersists(t *testing.T) {
	k, ctx, _ := setupKeeper(t)
	pairKey := seedOrderbook(t, k, ctx, types.ZeroAmount())

	order, err := k.SubmitOrder(ctx, pairKey, types.OrderDirectionBuy, "alice",
		types.Asset{Info: testQuote, Amount: mustAmount(150)},
		types.Asset{Info: testBase, Amount: mustAmount(150)})
	if err != nil {
		t.Fatalf("SubmitOrder: %v", err)
	}
	if order.OrderID != 1 {
		t.Fatalf("expected order id 1, got %d", order.OrderID)
	}
	if order.Status != types.OrderStatusOpen {
		t.Fatalf("expected Open status, got %s", order.Status)
	}

	stored, err := k.GetOrder(ctx, pairKey, order.OrderID)
	if err != nil || stored == nil {
		t.Fatalf("GetOrder: %v", err)
	}

	count := k.getTickCount(ctx, pairKey.Bytes(), types.OrderDirectionBuy, mustPrice(t, order))
	if count != 1 {
		t.Fatalf("expected tick count 1, got %d", count)
	}

	orders, err := k.OrdersByBidder(ctx, pairKey, "alice", types.PageRequest{Limit: 10})
	if err != nil {
		t.Fatalf("OrdersByBidder: %v", err)
	}
	if len(orders) != 1 || orders[0].OrderID != order.OrderID {
		t.Fatalf("expected one order for alice, got %+v", orders)
	}
}

func TestSubmitOrder_BelowMinQuoteRejected(t *testing.T) {
	k, ctx, _ := setupKeeper(t)
	pairKey := seedOrderbook(t, k, ctx, mustAmount(1000))

	_, err := k.SubmitOrder(ctx, pairKey, types.OrderDirectionBuy, "alice",
		types.Asset{Info: testQuote, Amount: mustAmount(10)},
		types.Asset{Info: testBase, Amount: mustAmount(10)})
	if err == nil {
		t.Fatal("expected ErrBelowMinQuote, got nil")
	}
}

func TestCancelOrder_RefundsAndRemovesIndexes(t *testing.T) {
	k, ctx, _ := setupKeeper(t)
	pairKey := seedOrderbook(t, k, ctx, types.ZeroAmount())

	order, err := k.SubmitOrder(ctx, pairKey, types.OrderDirectionSell, "bob",
		types.Asset{Info: testBase, Amount: mustAmount(400)},
		types.Asset{Info: testQuote, Amount: mustAmount(400)})
	if err != nil {
		t.Fatalf("SubmitOrder: %v", err)
	}

	cancelled, refund, err := k.CancelOrder(ctx, pairKey, order.OrderID, "bob")
	if err != nil {
		t.Fatalf("CancelOrder: %v", err)
	}
	if cancelled.Status != types.OrderStatusCancel {
		t.Fatalf("expected Cancel status, got %s", cancelled.Status)
	}
	if !refund.Amount.Equal(mustAmount(400)) {
		t.Fatalf("expected refund of 400, got %s", refund.Amount.String())
	}

	if stored, _ := k.GetOrder(ctx, pairKey, order.OrderID); stored != nil {
		t.Fatalf("expected order row to be deleted, found %+v", stored)
	}
	remaining, err := k.OrdersByBidder(ctx, pairKey, "bob", types.PageRequest{Limit: 10})
	if err != nil {
		t.Fatalf("OrdersByBidder: %v", err)
	}
	if len(remaining) != 0 {
		t.Fatalf("expected no remaining indexed orders, got %d", len(remaining))
	}
}

func TestCancelOrder_WrongSenderRejected(t *testing.T) {
	k, ctx, _ := setupKeeper(t)
	pairKey := seedOrderbook(t, k, ctx, types.ZeroAmount())

	order, err := k.SubmitOrder(ctx, pairKey, types.OrderDirectionBuy, "alice",
		types.Asset{Info: testQuote, Amount: mustAmount(100)},
		types.Asset{Info: testBase, Amount: mustAmount(100)})
	if err != nil {
		t.Fatalf("SubmitOrder: %v", err)
	}

	_, _, err = k.CancelOrder(ctx, pairKey, order.OrderID, "mallory")
	if err == nil {
		t.Fatal("expected ErrUnauthorized, got nil")
	}
}

func TestUpdateOrder_ReEscrowsAtNewPrice(t *testing.T) {
	k, ctx, _ := setupKeeper(t)
	pairKey := seedOrderbook(t, k, ctx, types.ZeroAmount())

	order, err := k.SubmitOrder(ctx, pairKey, types.OrderDirectionBuy, "alice",
		types.Asset{Info: testQuote, Amount: mustAmount(100)},
		types.Asset{Info: testBase, Amount: mustAmount(100)})
	if err != nil {
		t.Fatalf("SubmitOrder: %v", err)
	}

	refund, err := k.UpdateOrder(ctx, pairKey, order.OrderID, "alice",
		types.Asset{Info: testQuote, Amount: mustAmount(200)},
		types.Asset{Info: testBase, Amount: mustAmount(100)})
	if err != nil {
		t.Fatalf("UpdateOrder: %v", err)
	}
	if !refund.Amount.Equal(mustAmount(100)) {
		t.Fatalf("expected refund of the old unfilled offer (100), got %s", refund.Amount.String())
	}

	updated, err := k.GetOrder(ctx, pairKey, order.OrderID)
	if err != nil || updated == nil {
		t.Fatalf("GetOrder after update: %v", err)
	}
	if !updated.OfferAmount.Equal(mustAmount(200)) {
		t.Fatalf("expected new offer amount 200, got %s", updated.OfferAmount.String())
	}
}

func mustPrice(t *testing.T, order *types.Order) types.Price {
	t.Helper()
	price, err := order.Price()
	if err != nil {
		t.Fatalf("order.Price(): %v", err)
	}
	return price
}
