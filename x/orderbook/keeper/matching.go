package keeper

import (
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/oraichain/orderbook-engine/x/orderbook/types"
)

// ExecuteOrderbookPair runs one matching pass over a pair (spec.md §4.4,
// C4), grounded on the original contract's `order.rs::excecute_pair`: for
// every (buy tick, sell tick) combination with buy >= sell, FIFO-match the
// resting orders at those ticks, apportion commission then a flat relayer
// fee out of each fill, coalesce payments per trader, and lazily sweep any
// order whose remainder falls under the pair's minimum notional into the
// reward account. `sender` earns the relayer leg of every fee taken during
// this call.
func (k *Keeper) ExecuteOrderbookPair(ctx sdk.Context, pairKey types.PairKey, sender string, limit uint32) (uint64, error) {
	ob, err := k.MustGetOrderBook(ctx, pairKey)
	if err != nil {
		return 0, err
	}
	limit = types.ClampLimit(limit)

	reward, err := k.GetOrCreateExecutor(ctx, ob, k.rewardAddress)
	if err != nil {
		return 0, err
	}
	relayer, err := k.GetOrCreateExecutor(ctx, ob, sender)
	if err != nil {
		return 0, err
	}

	quotePayments := make(map[string]types.Amount) // to sellers
	basePayments := make(map[string]types.Amount)  // to buyers

	var totalMatched uint64

	buys, sells := k.BestPrices(ctx, pairKey.Bytes(), limit)

	for _, buyPrice := range buys {
		matchBuyOrders, err := k.OrdersAtTick(ctx, pairKey.Bytes(), types.OrderDirectionBuy, buyPrice, limit)
		if err != nil {
			return 0, err
		}

		for _, sellPrice := range sells {
			if buyPrice.LT(sellPrice) {
				break
			}
			matchOnePrice := buyPrice.Equal(sellPrice)

			matchSellOrders, err := k.OrdersAtTick(ctx, pairKey.Bytes(), types.OrderDirectionSell, sellPrice, limit)
			if err != nil {
				return 0, err
			}

			for _, buyOrder := range matchBuyOrders {
				stuck, err := k.removeIfStuck(ctx, pairKey, buyOrder)
				if err != nil {
					return 0, err
				}
				if stuck {
					continue
				}

				matchPrice, err := buyOrder.Price()
				if err != nil {
					return 0, err
				}

				for _, sellOrder := range matchSellOrders {
					stuck, err := k.removeIfStuck(ctx, pairKey, sellOrder)
					if err != nil {
						return 0, err
					}
					if stuck {
						continue
					}

					if !matchOnePrice {
						// Order ids are globally unique, so equal ids never reach the else branch.
						if sellOrder.OrderID < buyOrder.OrderID {
							matchPrice, err = buyOrder.Price()
						} else {
							matchPrice, err = sellOrder.Price()
						}
						if err != nil {
							return 0, err
						}
					}

					leftSellOffer, err := sellOrder.LeftOfferAmount()
					if err != nil {
						return 0, err
					}
					leftBuyOffer, err := buyOrder.LeftOfferAmount()
					if err != nil {
						return 0, err
					}

					sellAskRaw := matchPrice.MulAmount(leftSellOffer)
					sellAskAmount := leftBuyOffer.Min(sellAskRaw)
					sellOfferAmount := matchPrice.DivAmount(sellAskAmount).Min(leftSellOffer)

					if sellAskAmount.IsZero() || sellOfferAmount.IsZero() {
						continue
					}

					if err := sellOrder.Fill(sellOfferAmount, sellAskAmount); err != nil {
						return 0, err
					}
					if err := buyOrder.Fill(sellAskAmount, sellOfferAmount); err != nil {
						return 0, err
					}
					if err := k.SetOrder(ctx, pairKey, sellOrder); err != nil {
						return 0, err
					}
					if err := k.SetOrder(ctx, pairKey, buyOrder); err != nil {
						return 0, err
					}

					quoteFee, err := k.payQuoteLeg(ctx, ob, reward, relayer, sellOrder, matchPrice, sellAskAmount, quotePayments)
					if err != nil {
						return 0, err
					}
					ctx.EventManager().EmitEvent(types.MatchedOrderEvent(sellOrder, quoteFee))

					baseFee, err := k.payBaseLeg(ctx, ob, reward, relayer, buyOrder, sellOfferAmount, basePayments)
					if err != nil {
						return 0, err
					}
					ctx.EventManager().EmitEvent(types.MatchedOrderEvent(buyOrder, baseFee))

					if _, err := k.sweepDustIfAny(ctx, pairKey, ob, reward, sellOrder, matchPrice, types.ExecutorBaseSlot); err != nil {
						return 0, err
					}
					if _, err := k.sweepDustIfAny(ctx, pairKey, ob, reward, buyOrder, matchPrice, types.ExecutorQuoteSlot); err != nil {
						return 0, err
					}

					// A fill that reached Fulfilled takes the order off the book;
					// a dust sweep above may already have deleted it.
					for _, filled := range []*types.Order{sellOrder, buyOrder} {
						if filled.Status != types.OrderStatusFulfilled {
							continue
						}
						current, err := k.GetOrder(ctx, pairKey, filled.OrderID)
						if err != nil {
							return 0, err
						}
						if current != nil {
							if err := k.RemoveOrderIndexes(ctx, pairKey.Bytes(), filled); err != nil {
								return 0, err
							}
							k.DeleteOrder(ctx, pairKey, filled.OrderID)
						}
					}

					if sellOrder.Status == types.OrderStatusFulfilled || sellOrder.FilledOfferAmount.Equal(sellOrder.OfferAmount) {
						totalMatched++
					}
				}
				if buyOrder.Status == types.OrderStatusFulfilled || buyOrder.FilledOfferAmount.Equal(buyOrder.OfferAmount) {
					totalMatched++
				}
			}
		}
	}

	k.payCoalesced(ctx, ob.QuoteCoinInfo, quotePayments)
	k.payCoalesced(ctx, ob.BaseCoinInfo, basePayments)
	k.disburse(ctx, pairKey, reward)
	k.disburse(ctx, pairKey, relayer)

	if err := k.SetExecutor(ctx, pairKey, reward); err != nil {
		return 0, err
	}
	if err := k.SetExecutor(ctx, pairKey, relayer); err != nil {
		return 0, err
	}

	if totalMatched > 0 {
		k.metrics.matchesExecuted.WithLabelValues(pairLabel(ob)).Add(float64(totalMatched))
	}
	ctx.EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeExecuteMatch,
		sdk.NewAttribute(types.AttrKeyAction, types.EventTypeExecuteMatch),
		sdk.NewAttribute(types.AttrKeyPair, pairLabel(ob)),
		sdk.NewAttribute(types.AttrKeyTotalMatchedOrders, formatCount(totalMatched)),
	))
	return totalMatched, nil
}

// removeIfStuck mirrors the original's lazy stuck-row sweep: an order
// carried over in a stale in-memory snapshot may already have nothing left
// to fill, or already be marked Fulfilled, by the time it is revisited.
func (k *Keeper) removeIfStuck(ctx sdk.Context, pairKey types.PairKey, order *types.Order) (bool, error) {
	stuck, err := order.IsStuck()
	if err != nil {
		return false, err
	}
	if !stuck {
		return false, nil
	}
	current, err := k.GetOrder(ctx, pairKey, order.OrderID)
	if err != nil {
		return false, err
	}
	if current != nil {
		if err := k.RemoveOrderIndexes(ctx, pairKey.Bytes(), current); err != nil {
			return false, err
		}
		k.DeleteOrder(ctx, pairKey, current.OrderID)
		ctx.EventManager().EmitEvent(types.MatchedOrderEvent(current, "remove stuff order"))
		k.metrics.stuckRowSweeps.WithLabelValues(string(pairKey.Bytes())).Inc()
	}
	return true, nil
}

// payQuoteLeg apportions commission then the relayer fee out of a fill's
// quote-denominated proceeds (paid to the seller), coalescing whatever
// remains into quotePayments, and reports the fee for the event attribute.
func (k *Keeper) payQuoteLeg(ctx sdk.Context, ob *types.OrderBook, reward, relayer *types.Executor, sellOrder *types.Order, matchPrice types.Price, grossQuote types.Amount, quotePayments map[string]types.Amount) (string, error) {
	remaining := grossQuote
	commission := commissionOf(remaining)
	reward.Accrue(types.ExecutorQuoteSlot, commission)
	remaining, err := remaining.Sub(commission)
	if err != nil {
		return "", err
	}

	relayerFee := matchPrice.MulAmount(RelayFee).Min(remaining)
	relayer.Accrue(types.ExecutorQuoteSlot, relayerFee)
	remaining, err = remaining.Sub(relayerFee)
	if err != nil {
		return "", err
	}

	if remaining.IsPositive() {
		quotePayments[sellOrder.BidderAddr] = quotePayments[sellOrder.BidderAddr].Add(remaining)
	}
	fee := commission.Add(relayerFee)
	return fmt.Sprintf("%s %s", fee.String(), ob.QuoteCoinInfo.String()), nil
}

// payBaseLeg is payQuoteLeg's mirror for the base-denominated proceeds paid
// to the buyer; the relayer fee here is the flat RelayFee constant itself,
// already in base units.
func (k *Keeper) payBaseLeg(ctx sdk.Context, ob *types.OrderBook, reward, relayer *types.Executor, buyOrder *types.Order, grossBase types.Amount, basePayments map[string]types.Amount) (string, error) {
	remaining := grossBase
	commission := commissionOf(remaining)
	reward.Accrue(types.ExecutorBaseSlot, commission)
	remaining, err := remaining.Sub(commission)
	if err != nil {
		return "", err
	}

	relayerFee := RelayFee.Min(remaining)
	relayer.Accrue(types.ExecutorBaseSlot, relayerFee)
	remaining, err = remaining.Sub(relayerFee)
	if err != nil {
		return "", err
	}

	if remaining.IsPositive() {
		basePayments[buyOrder.BidderAddr] = basePayments[buyOrder.BidderAddr].Add(remaining)
	}
	fee := commission.Add(relayerFee)
	return fmt.Sprintf("%s %s", fee.String(), ob.BaseCoinInfo.String()), nil
}

// sweepDustIfAny removes `order` and sweeps its remainder into the reward
// account's `slot` when the remainder is non-zero but below the pair's
// minimum quote notional, or when the matching side of that remainder would
// round to zero (order.rs's dust-promotion rule).
func (k *Keeper) sweepDustIfAny(ctx sdk.Context, pairKey types.PairKey, ob *types.OrderBook, reward *types.Executor, order *types.Order, matchPrice types.Price, slot int) (bool, error) {
	leftOffer, err := order.LeftOfferAmount()
	if err != nil {
		return false, err
	}
	if leftOffer.IsZero() {
		return false, nil
	}

	// The original compares the *quote-denominated* remainder against the
	// minimum notional: for a sell order that is the converted equivalent
	// (leftOffer is in base units); for a buy order, leftOffer is already
	// quote-denominated, and the converted equivalent (in base units) is
	// instead checked for rounding to zero (order.rs's lef_sell_ask_amount /
	// lef_buy_ask_amount pair of conditions).
	var thresholdAmount, counterpart types.Amount
	if order.Direction == types.OrderDirectionSell {
		counterpart = matchPrice.MulAmount(leftOffer)
		thresholdAmount = counterpart
	} else {
		counterpart = matchPrice.DivAmount(leftOffer)
		thresholdAmount = leftOffer
	}
	if thresholdAmount.GTE(ob.MinQuoteCoinAmount) && !counterpart.IsZero() {
		return false, nil
	}

	reward.Accrue(slot, leftOffer)
	order.Status = types.OrderStatusFulfilled
	if err := k.RemoveOrderIndexes(ctx, pairKey.Bytes(), order); err != nil {
		return false, err
	}
	k.DeleteOrder(ctx, pairKey, order.OrderID)

	assetInfo := ob.BaseCoinInfo
	if slot == types.ExecutorQuoteSlot {
		assetInfo = ob.QuoteCoinInfo
	}
	ctx.EventManager().EmitEvent(types.MatchedOrderEvent(order, fmt.Sprintf("%s %s", leftOffer.String(), assetInfo.String())))
	k.metrics.dustSweeps.WithLabelValues(pairLabel(ob)).Inc()
	return true, nil
}

// payCoalesced transfers one coalesced payment per trader address.
func (k *Keeper) payCoalesced(ctx sdk.Context, info types.AssetInfo, payments map[string]types.Amount) {
	for addr, amount := range payments {
		if amount.IsZero() {
			continue
		}
		_ = k.transferKeeper.Transfer(ctx, addr, types.Asset{Info: info, Amount: amount})
	}
}

// disburse drains any reward-account slot that has crossed the
// disbursement threshold and transfers it out (spec.md §4.4.6).
func (k *Keeper) disburse(ctx sdk.Context, pairKey types.PairKey, executor *types.Executor) {
	for _, slot := range []int{types.ExecutorBaseSlot, types.ExecutorQuoteSlot} {
		asset, ok := executor.DrainIfAboveThreshold(slot)
		if !ok {
			continue
		}
		_ = k.transferKeeper.Transfer(ctx, executor.Address, asset)
		k.metrics.rewardDisbursements.WithLabelValues(string(pairKey.Bytes())).Inc()
	}
}

func commissionOf(amount types.Amount) types.Amount {
	fee := types.NewAmount(math.LegacyNewDecFromInt(amount.Int).Mul(CommissionRate).TruncateInt())
	return fee.Min(amount)
}

func pairLabel(ob *types.OrderBook) string {
	return fmt.Sprintf("%s-%s", ob.BaseCoinInfo.String(), ob.QuoteCoinInfo.String())
}

func formatCount(v uint64) string {
	if v == 0 {
		return "0"
	}
	var buf [20]byte
	i := len(buf)
	for v > 0 {
		i--
		buf[i] = byte('0' + v%10)
		v /= 10
	}
	return string(buf[i:])
}
