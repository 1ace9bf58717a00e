package types

const (
	// ModuleName is the name of the orderbook module.
	ModuleName = "orderbook"

	// StoreKey is the KVStore key used to fetch the module's store.
	StoreKey = ModuleName
)

// Key prefixes for the logical namespaces composed in the module's KVStore.
// Mirrors the `b"tag" ‖ ...` layout from the original CosmWasm contract:
// order, tick, order_by_price, order_by_bidder, order_by_direction,
// orderbook, reward, last_order_id.
var (
	OrderKeyPrefix            = []byte{0x01} // order ‖ pair_key ‖ order_id_le8 -> Order
	TickKeyPrefix             = []byte{0x02} // tick ‖ pair_key ‖ direction ‖ price_ascii -> uint64 count
	OrderByPriceKeyPrefix     = []byte{0x03} // order_by_price ‖ pair_key ‖ direction ‖ price_ascii ‖ order_id_le8 -> true
	OrderByBidderKeyPrefix    = []byte{0x04} // order_by_bidder ‖ pair_key ‖ bidder ‖ order_id_le8 -> true
	OrderByDirectionKeyPrefix = []byte{0x05} // order_by_direction ‖ pair_key ‖ direction ‖ order_id_le8 -> true
	OrderBookKeyPrefix        = []byte{0x06} // orderbook ‖ pair_key -> OrderBook
	RewardKeyPrefix           = []byte{0x07} // reward ‖ pair_key ‖ address -> Executor
	LastOrderIDKey            = []byte{0x08} // last_order_id -> uint64
)

// direction tag bytes used inside composite keys.
const (
	DirectionByteBuy  byte = 0x01
	DirectionByteSell byte = 0x02
)

func directionByte(d OrderDirection) byte {
	if d == OrderDirectionSell {
		return DirectionByteSell
	}
	return DirectionByteBuy
}

// OrderKey builds the `order` row key for a given pair and order id.
func OrderKey(pairKey []byte, orderID uint64) []byte {
	return appendAll(OrderKeyPrefix, pairKey, orderIDBytes(orderID))
}

// OrderKeyPrefixForPair returns the prefix enumerating every order row of a pair.
func OrderKeyPrefixForPair(pairKey []byte) []byte {
	return appendAll(OrderKeyPrefix, pairKey)
}

// TickKey builds the tick-counter key for (pair, direction, rounded price).
func TickKey(pairKey []byte, direction OrderDirection, price Price) []byte {
	return appendAll(TickKeyPrefix, pairKey, []byte{directionByte(direction)}, price.IndexBytes())
}

// TickKeyPrefixForDirection returns the prefix enumerating every tick of one side of a pair.
func TickKeyPrefixForDirection(pairKey []byte, direction OrderDirection) []byte {
	return appendAll(TickKeyPrefix, pairKey, []byte{directionByte(direction)})
}

// OrderByPriceKey builds the FIFO-enumeration key for an order at a tick.
func OrderByPriceKey(pairKey []byte, direction OrderDirection, price Price, orderID uint64) []byte {
	return appendAll(OrderByPriceKeyPrefix, pairKey, []byte{directionByte(direction)}, price.IndexBytes(), orderIDBytes(orderID))
}

// OrderByPriceKeyPrefixForTick returns the prefix enumerating orders at one tick, ascending by id.
func OrderByPriceKeyPrefixForTick(pairKey []byte, direction OrderDirection, price Price) []byte {
	return appendAll(OrderByPriceKeyPrefix, pairKey, []byte{directionByte(direction)}, price.IndexBytes())
}

// OrderByBidderKey builds the by-bidder index key.
func OrderByBidderKey(pairKey []byte, bidder string, orderID uint64) []byte {
	return appendAll(OrderByBidderKeyPrefix, pairKey, []byte(bidder), orderIDBytes(orderID))
}

func OrderByBidderKeyPrefixForBidder(pairKey []byte, bidder string) []byte {
	return appendAll(OrderByBidderKeyPrefix, pairKey, []byte(bidder))
}

// OrderByDirectionKey builds the by-direction index key.
func OrderByDirectionKey(pairKey []byte, direction OrderDirection, orderID uint64) []byte {
	return appendAll(OrderByDirectionKeyPrefix, pairKey, []byte{directionByte(direction)}, orderIDBytes(orderID))
}

func OrderByDirectionKeyPrefixForDirection(pairKey []byte, direction OrderDirection) []byte {
	return appendAll(OrderByDirectionKeyPrefix, pairKey, []byte{directionByte(direction)})
}

// OrderBookKey builds the orderbook metadata row key.
func OrderBookKey(pairKey []byte) []byte {
	return appendAll(OrderBookKeyPrefix, pairKey)
}

// RewardKey builds the executor (reward account) row key.
func RewardKey(pairKey []byte, address string) []byte {
	return appendAll(RewardKeyPrefix, pairKey, []byte(address))
}

func RewardKeyPrefixForPair(pairKey []byte) []byte {
	return appendAll(RewardKeyPrefix, pairKey)
}

func appendAll(parts ...[]byte) []byte {
	n := 0
	for _, p := range parts {
		n += len(p)
	}
	out := make([]byte, 0, n)
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

func orderIDBytes(orderID uint64) []byte {
	b := make([]byte, 8)
	for i := 0; i < 8; i++ {
		b[i] = byte(orderID >> (8 * i))
	}
	return b
}

// OrderIDFromBytes decodes the fixed-width 8-byte little-endian order id
// used as the suffix of every index key. Returns an error (surfaced by the
// caller as types.ErrCorruptedIndex) when the slice isn't exactly 8 bytes.
func OrderIDFromBytes(b []byte) (uint64, error) {
	if len(b) != 8 {
		return 0, ErrCorruptedIndex
	}
	var id uint64
	for i := 0; i < 8; i++ {
		id |= uint64(b[i]) << (8 * i)
	}
	return id, nil
}
