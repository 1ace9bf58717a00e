package keeper

import (
	"cosmossdk.io/math"

	"github.com/oraichain/orderbook-engine/x/orderbook/types"
)

// Package-level constants mirroring the original contract's hard-coded
// config (order.rs: COMMISSION_RATE, RELAY_FEE, REWARD_WALLET, ADMIN_WALLET).
// spec.md §9 notes fee/admin governance is out of scope pending a future
// config layer, so these stay literal rather than becoming a param store.
var (
	// CommissionRate is taken from each fill before the relayer fee, capped
	// at the fill amount (order.rs: `Decimal::from_str("0.001")`).
	CommissionRate = math.LegacyMustNewDecFromStr("0.001")

	// RelayFee is denominated in base-asset raw units; on the quote leg of
	// a fill it is converted through the match price before being deducted
	// (order.rs: `const RELAY_FEE: u128 = 300`).
	RelayFee = types.NewAmountFromUint64(300)
)

const (
	// DefaultRewardAddress receives the commission leg of every fill.
	DefaultRewardAddress = "orai16stq6f4pnrfpz75n9ujv6qg3czcfa4qyjux5en"
	// DefaultAdminAddress is authorized for RemovePair, RemoveOrderByPrice,
	// RemoveOrderByStatus, and RemoveStuckOrder.
	DefaultAdminAddress = "orai1tz8wg6kh5su6602h2tmrpnmjlx83xe388nxkn5"
)
