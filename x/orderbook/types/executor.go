package types

// Executor is a per-pair, per-address accrual account for commission,
// relayer fees, and dust-sweep residuals (spec.md §3.1, glossary). Index 0
// holds the base-asset slot, index 1 the quote-asset slot.
type Executor struct {
	Address      string
	RewardAssets [2]Asset
}

// NewExecutor creates a zeroed Executor for the given address, typed to the
// pair's base/quote asset identities.
func NewExecutor(address string, base, quote AssetInfo) *Executor {
	return &Executor{
		Address: address,
		RewardAssets: [2]Asset{
			{Info: base, Amount: ZeroAmount()},
			{Info: quote, Amount: ZeroAmount()},
		},
	}
}

const (
	// ExecutorBaseSlot and ExecutorQuoteSlot index Executor.RewardAssets.
	ExecutorBaseSlot  = 0
	ExecutorQuoteSlot = 1
)

// Accrue adds amount into the given slot (0=base, 1=quote).
func (e *Executor) Accrue(slot int, amount Amount) {
	e.RewardAssets[slot].Amount = e.RewardAssets[slot].Amount.Add(amount)
}

// RewardDisbursementThreshold is the raw-unit accrual level at which a
// reward slot is swept out as a transfer instead of carried over
// (spec.md §4.4.6, §6 constants).
var RewardDisbursementThreshold = NewAmountFromUint64(1_000_000)

// DrainIfAboveThreshold zeroes and returns the slot's amount if it has
// reached the disbursement threshold, or a zero Asset and false otherwise.
func (e *Executor) DrainIfAboveThreshold(slot int) (Asset, bool) {
	if e.RewardAssets[slot].Amount.GTE(RewardDisbursementThreshold) {
		out := e.RewardAssets[slot]
		e.RewardAssets[slot].Amount = ZeroAmount()
		return out, true
	}
	return Asset{}, false
}
