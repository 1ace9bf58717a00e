package keeper

import (
	"testing"

	"cosmossdk.io/math"

	"github.com/oraichain/orderbook-engine/x/orderbook/types"
)

// TestExecuteOrderbookPair_CrossAtSamePrice covers spec scenario 1: a buy
// and a sell crossing at an identical price both reach Fulfilled, and each
// leg's commission + relayer fee are deducted before the trader is paid.
func TestExecuteOrderbookPair_CrossAtSamePrice(t *testing.T) {
	k, ctx, transfers := setupKeeper(t)
	pairKey := seedOrderbook(t, k, ctx, types.ZeroAmount())

	const size = 150_000_000
	buy, err := k.SubmitOrder(ctx, pairKey, types.OrderDirectionBuy, "alice",
		types.Asset{Info: testQuote, Amount: mustAmount(size)},
		types.Asset{Info: testBase, Amount: mustAmount(size)})
	if err != nil {
		t.Fatalf("submit buy: %v", err)
	}
	sell, err := k.SubmitOrder(ctx, pairKey, types.OrderDirectionSell, "bob",
		types.Asset{Info: testBase, Amount: mustAmount(size)},
		types.Asset{Info: testQuote, Amount: mustAmount(size)})
	if err != nil {
		t.Fatalf("submit sell: %v", err)
	}

	total, err := k.ExecuteOrderbookPair(ctx, pairKey, "relayer", 10)
	if err != nil {
		t.Fatalf("ExecuteOrderbookPair: %v", err)
	}
	if total != 2 {
		t.Fatalf("expected 2 matched orders, got %d", total)
	}

	gotBuy, err := k.GetOrder(ctx, pairKey, buy.OrderID)
	if err != nil {
		t.Fatalf("GetOrder buy: %v", err)
	}
	gotSell, err := k.GetOrder(ctx, pairKey, sell.OrderID)
	if err != nil {
		t.Fatalf("GetOrder sell: %v", err)
	}
	if gotBuy != nil || gotSell != nil {
		t.Fatalf("expected both fulfilled orders to be removed from storage, got buy=%+v sell=%+v", gotBuy, gotSell)
	}

	commission := int64(size) / 1000 // 0.1%
	wantNet := int64(size) - commission - 300

	var sawAlice, sawBob bool
	for _, tr := range transfers.transfers {
		switch tr.Recipient {
		case "alice":
			sawAlice = true
			if tr.Asset.Amount.Int64() != wantNet {
				t.Fatalf("alice payout: want %d, got %s", wantNet, tr.Asset.Amount.String())
			}
		case "bob":
			sawBob = true
			if tr.Asset.Amount.Int64() != wantNet {
				t.Fatalf("bob payout: want %d, got %s", wantNet, tr.Asset.Amount.String())
			}
		}
	}
	if !sawAlice || !sawBob {
		t.Fatalf("expected payouts to both traders, got %+v", transfers.transfers)
	}
}

// TestExecuteOrderbookPair_PartialFill covers spec scenario 2: a larger buy
// is only partially filled by a smaller sell.
func TestExecuteOrderbookPair_PartialFill(t *testing.T) {
	k, ctx, _ := setupKeeper(t)
	pairKey := seedOrderbook(t, k, ctx, types.ZeroAmount())

	buy, err := k.SubmitOrder(ctx, pairKey, types.OrderDirectionBuy, "alice",
		types.Asset{Info: testQuote, Amount: mustAmount(1000)},
		types.Asset{Info: testBase, Amount: mustAmount(1000)})
	if err != nil {
		t.Fatalf("submit buy: %v", err)
	}
	_, err = k.SubmitOrder(ctx, pairKey, types.OrderDirectionSell, "bob",
		types.Asset{Info: testBase, Amount: mustAmount(400)},
		types.Asset{Info: testQuote, Amount: mustAmount(400)})
	if err != nil {
		t.Fatalf("submit sell: %v", err)
	}

	if _, err := k.ExecuteOrderbookPair(ctx, pairKey, "relayer", 10); err != nil {
		t.Fatalf("ExecuteOrderbookPair: %v", err)
	}

	gotBuy, err := k.GetOrder(ctx, pairKey, buy.OrderID)
	if err != nil || gotBuy == nil {
		t.Fatalf("GetOrder buy: %v", err)
	}
	if gotBuy.Status != types.OrderStatusPartialFilled {
		t.Fatalf("expected buy PartialFilled, got %s", gotBuy.Status)
	}
	if !gotBuy.FilledOfferAmount.Equal(mustAmount(400)) || !gotBuy.FilledAskAmount.Equal(mustAmount(400)) {
		t.Fatalf("expected buy filled 400/400, got %s/%s", gotBuy.FilledOfferAmount, gotBuy.FilledAskAmount)
	}
}

// TestExecuteOrderbookPair_PricePriority covers spec scenario 3: the
// higher-priced buy must match before the lower-priced one.
func TestExecuteOrderbookPair_PricePriority(t *testing.T) {
	k, ctx, _ := setupKeeper(t)
	pairKey := seedOrderbook(t, k, ctx, types.ZeroAmount())

	highBuy, err := k.SubmitOrder(ctx, pairKey, types.OrderDirectionBuy, "alice",
		types.Asset{Info: testQuote, Amount: mustAmount(100)},
		types.Asset{Info: testBase, Amount: mustAmount(100)}) // price 1.00
	if err != nil {
		t.Fatalf("submit high buy: %v", err)
	}
	lowBuy, err := k.SubmitOrder(ctx, pairKey, types.OrderDirectionBuy, "carol",
		types.Asset{Info: testQuote, Amount: mustAmount(95)},
		types.Asset{Info: testBase, Amount: mustAmount(100)}) // price 0.95
	if err != nil {
		t.Fatalf("submit low buy: %v", err)
	}
	_, err = k.SubmitOrder(ctx, pairKey, types.OrderDirectionSell, "bob",
		types.Asset{Info: testBase, Amount: mustAmount(100)},
		types.Asset{Info: testQuote, Amount: mustAmount(97)}) // price 0.97
	if err != nil {
		t.Fatalf("submit sell: %v", err)
	}

	if _, err := k.ExecuteOrderbookPair(ctx, pairKey, "relayer", 10); err != nil {
		t.Fatalf("ExecuteOrderbookPair: %v", err)
	}

	gotHigh, err := k.GetOrder(ctx, pairKey, highBuy.OrderID)
	if err != nil {
		t.Fatalf("GetOrder high buy: %v", err)
	}
	if gotHigh != nil {
		t.Fatalf("expected the 1.00 buy to be fully matched and removed, got %+v", gotHigh)
	}

	gotLow, err := k.GetOrder(ctx, pairKey, lowBuy.OrderID)
	if err != nil || gotLow == nil {
		t.Fatalf("expected the 0.95 buy to remain resting: %v", err)
	}
	if !gotLow.FilledOfferAmount.IsZero() {
		t.Fatalf("expected the 0.95 buy to be untouched, filled_offer=%s", gotLow.FilledOfferAmount)
	}
}

// TestExecuteOrderbookPair_OlderWinsTieBreak covers spec scenario 4: when
// two buys and one sell cross at different prices, the older order id's
// price is used as the match price.
func TestExecuteOrderbookPair_OlderWinsTieBreak(t *testing.T) {
	k, ctx, _ := setupKeeper(t)
	pairKey := seedOrderbook(t, k, ctx, types.ZeroAmount())

	// Sell submitted first (lower id) at price 0.98; buy submitted after at
	// price 1.00. sell_id < buy_id, so the match price must be the sell's.
	sell, err := k.SubmitOrder(ctx, pairKey, types.OrderDirectionSell, "bob",
		types.Asset{Info: testBase, Amount: mustAmount(100)},
		types.Asset{Info: testQuote, Amount: mustAmount(98)})
	if err != nil {
		t.Fatalf("submit sell: %v", err)
	}
	buy, err := k.SubmitOrder(ctx, pairKey, types.OrderDirectionBuy, "alice",
		types.Asset{Info: testQuote, Amount: mustAmount(100)},
		types.Asset{Info: testBase, Amount: mustAmount(100)})
	if err != nil {
		t.Fatalf("submit buy: %v", err)
	}
	if sell.OrderID >= buy.OrderID {
		t.Fatalf("expected sell id < buy id, got sell=%d buy=%d", sell.OrderID, buy.OrderID)
	}

	if _, err := k.ExecuteOrderbookPair(ctx, pairKey, "relayer", 10); err != nil {
		t.Fatalf("ExecuteOrderbookPair: %v", err)
	}

	gotBuy, err := k.GetOrder(ctx, pairKey, buy.OrderID)
	if err != nil {
		t.Fatalf("GetOrder buy: %v", err)
	}
	// At the sell's price (0.98) the full 100-base sell only needs 98 quote,
	// leaving 2 quote of the buy's 100 unfilled — so the buy cannot also be
	// Fulfilled, proving the match used the sell's price rather than 1.00.
	if gotBuy == nil {
		t.Fatal("expected the buy to remain resting with a small quote remainder")
	}
	if !gotBuy.FilledAskAmount.Equal(mustAmount(100)) {
		t.Fatalf("expected the buy's base ask to be fully filled at the sell's price, got %s", gotBuy.FilledAskAmount)
	}
}

// TestExecuteOrderbookPair_RewardThreshold covers spec scenario 7: reward
// accrual stays in the Executor row below the disbursement threshold, and
// crossing it in a later call produces exactly one transfer per asset slot.
func TestExecuteOrderbookPair_RewardThreshold(t *testing.T) {
	k, ctx, transfers := setupKeeper(t)
	pairKey := seedOrderbook(t, k, ctx, types.ZeroAmount())

	// Each round's commission is 0.1% of 600,000,000 = 600,000 on the base
	// leg and another 600,000 on the quote leg.
	runRound := func(buyer, seller string) {
		if _, err := k.SubmitOrder(ctx, pairKey, types.OrderDirectionBuy, buyer,
			types.Asset{Info: testQuote, Amount: mustAmount(600_000_000)},
			types.Asset{Info: testBase, Amount: mustAmount(600_000_000)}); err != nil {
			t.Fatalf("submit buy: %v", err)
		}
		if _, err := k.SubmitOrder(ctx, pairKey, types.OrderDirectionSell, seller,
			types.Asset{Info: testBase, Amount: mustAmount(600_000_000)},
			types.Asset{Info: testQuote, Amount: mustAmount(600_000_000)}); err != nil {
			t.Fatalf("submit sell: %v", err)
		}
		if _, err := k.ExecuteOrderbookPair(ctx, pairKey, "relayer", 10); err != nil {
			t.Fatalf("ExecuteOrderbookPair: %v", err)
		}
	}

	runRound("alice1", "bob1")
	countAfterFirst := countTransfersTo(transfers, k.rewardAddress)
	if countAfterFirst != 0 {
		t.Fatalf("expected no reward disbursement yet, got %d", countAfterFirst)
	}

	runRound("alice2", "bob2")
	countAfterSecond := countTransfersTo(transfers, k.rewardAddress)
	if countAfterSecond != 2 {
		t.Fatalf("expected one reward disbursement per asset slot (base and quote) once the threshold is crossed, got %d", countAfterSecond)
	}
}

func countTransfersTo(m *mockTransferKeeper, addr string) int {
	n := 0
	for _, tr := range m.transfers {
		if tr.Recipient == addr {
			n++
		}
	}
	return n
}

// TestExecuteOrderbookPair_CoalescedPayments covers spec scenario 8: one
// buy filled by three sells owned by the same address produces exactly one
// transfer to that address.
func TestExecuteOrderbookPair_CoalescedPayments(t *testing.T) {
	k, ctx, transfers := setupKeeper(t)
	pairKey := seedOrderbook(t, k, ctx, types.ZeroAmount())

	if _, err := k.SubmitOrder(ctx, pairKey, types.OrderDirectionBuy, "alice",
		types.Asset{Info: testQuote, Amount: mustAmount(300_000_000)},
		types.Asset{Info: testBase, Amount: mustAmount(300_000_000)}); err != nil {
		t.Fatalf("submit buy: %v", err)
	}
	for i := 0; i < 3; i++ {
		if _, err := k.SubmitOrder(ctx, pairKey, types.OrderDirectionSell, "carol",
			types.Asset{Info: testBase, Amount: mustAmount(100_000_000)},
			types.Asset{Info: testQuote, Amount: mustAmount(100_000_000)}); err != nil {
			t.Fatalf("submit sell %d: %v", i, err)
		}
	}

	if _, err := k.ExecuteOrderbookPair(ctx, pairKey, "relayer", 10); err != nil {
		t.Fatalf("ExecuteOrderbookPair: %v", err)
	}

	if n := countTransfersTo(transfers, "carol"); n != 1 {
		t.Fatalf("expected exactly one coalesced transfer to carol, got %d", n)
	}
}

// TestSweepDustIfAny covers spec scenario 5: a sub-minimum sell remainder
// is swept into the reward account instead of left resting.
func TestSweepDustIfAny(t *testing.T) {
	k, ctx, _ := setupKeeper(t)
	pairKey := seedOrderbook(t, k, ctx, mustAmount(10))
	ob, err := k.GetOrderBook(ctx, pairKey)
	if err != nil || ob == nil {
		t.Fatalf("GetOrderBook: %v", err)
	}

	// Submission itself must clear min_quote=10, so the 5-unit remainder is
	// produced by a 10-unit fill of a 15-unit sell.
	order, err := k.SubmitOrder(ctx, pairKey, types.OrderDirectionSell, "bob",
		types.Asset{Info: testBase, Amount: mustAmount(15)},
		types.Asset{Info: testQuote, Amount: mustAmount(15)})
	if err != nil {
		t.Fatalf("SubmitOrder: %v", err)
	}
	if err := order.Fill(mustAmount(10), mustAmount(10)); err != nil {
		t.Fatalf("Fill: %v", err)
	}
	reward := types.NewExecutor(k.rewardAddress, ob.BaseCoinInfo, ob.QuoteCoinInfo)
	matchPrice := types.NewPriceFromDec(math.LegacyOneDec())

	swept, err := k.sweepDustIfAny(ctx, pairKey, ob, reward, order, matchPrice, types.ExecutorBaseSlot)
	if err != nil {
		t.Fatalf("sweepDustIfAny: %v", err)
	}
	if !swept {
		t.Fatal("expected the 5-unit remainder under min_quote=10 to be swept")
	}
	if !reward.RewardAssets[types.ExecutorBaseSlot].Amount.Equal(mustAmount(5)) {
		t.Fatalf("expected reward base slot to hold 5, got %s", reward.RewardAssets[types.ExecutorBaseSlot].Amount)
	}
	if got, _ := k.GetOrder(ctx, pairKey, order.OrderID); got != nil {
		t.Fatalf("expected the swept order to be deleted, got %+v", got)
	}
}

// TestRemoveIfStuck covers spec scenario 6: an order snapshot that has
// already reached a terminal fill elsewhere is removed rather than
// re-matched, and the matcher does not abort.
func TestRemoveIfStuck(t *testing.T) {
	k, ctx, _ := setupKeeper(t)
	pairKey := seedOrderbook(t, k, ctx, types.ZeroAmount())

	order, err := k.SubmitOrder(ctx, pairKey, types.OrderDirectionBuy, "alice",
		types.Asset{Info: testQuote, Amount: mustAmount(100)},
		types.Asset{Info: testBase, Amount: mustAmount(100)})
	if err != nil {
		t.Fatalf("SubmitOrder: %v", err)
	}

	// Simulate the in-memory view the matcher still holds after this same
	// order was already fulfilled earlier in the same pass (e.g. matched
	// against a different tick), while the indexes on disk still list it.
	snapshot := *order
	snapshot.FilledOfferAmount = snapshot.OfferAmount
	snapshot.FilledAskAmount = snapshot.AskAmount
	snapshot.Status = types.OrderStatusFulfilled

	stuck, err := k.removeIfStuck(ctx, pairKey, &snapshot)
	if err != nil {
		t.Fatalf("removeIfStuck: %v", err)
	}
	if !stuck {
		t.Fatal("expected the order to be reported stuck")
	}
	if got, _ := k.GetOrder(ctx, pairKey, order.OrderID); got != nil {
		t.Fatalf("expected the stuck order to be removed, got %+v", got)
	}
}

