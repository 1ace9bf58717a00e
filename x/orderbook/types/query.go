package types

// Pagination defaults and bounds (spec.md §4.1, §6).
const (
	DefaultLimit uint32 = 10
	MaxLimit     uint32 = 30
)

// ClampLimit applies the default/max pagination bounds to a caller-supplied
// limit, per spec.md §4.1.
func ClampLimit(limit uint32) uint32 {
	if limit == 0 {
		return DefaultLimit
	}
	if limit > MaxLimit {
		return MaxLimit
	}
	return limit
}

// SortOrder selects ascending or descending iteration for a range scan.
type SortOrder int

const (
	SortAscending SortOrder = iota
	SortDescending
)

// OrderFilterKind selects which index the Orders query walks (spec.md §4.5).
type OrderFilterKind int

const (
	OrderFilterNone OrderFilterKind = iota
	OrderFilterBidder
	OrderFilterPrice
	OrderFilterTick
)

// OrderFilter parameterizes the Orders query.
type OrderFilter struct {
	Kind   OrderFilterKind
	Bidder string
	Price  Price
}

// PageRequest carries the cursor/limit/order parameters shared by every
// paginated query (spec.md §4.1). StartAfter is exclusive in both
// directions: ascending scans return ids above it, descending scans ids
// below it.
type PageRequest struct {
	StartAfter *uint64
	Limit      uint32
	Order      SortOrder
}

// OrderBooksPageRequest paginates by pair key bytes instead of an order id.
type OrderBooksPageRequest struct {
	StartAfter []byte
	Limit      uint32
	Order      SortOrder
}

// MatchPriceResult is the result of the match_price query (spec.md §4.5):
// the best buy and best sell prices, if any orders rest on either side.
type MatchPriceResult struct {
	BestBuyPrice  Price
	HasBestBuy    bool
	BestSellPrice Price
	HasBestSell   bool
}
