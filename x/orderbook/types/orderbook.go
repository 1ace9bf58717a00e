package types

// OrderBook is the per-pair metadata row (spec.md §3.1). The live orders,
// ticks, and indexes that belong to it are stored separately under the same
// PairKey prefix — the OrderBook row itself only carries identity and the
// pair's configuration.
type OrderBook struct {
	PairKey            PairKey
	BaseCoinInfo       AssetInfo
	QuoteCoinInfo      AssetInfo
	Precision          *int32 // nil means full decimal precision
	MinQuoteCoinAmount Amount
}

// NewOrderBook validates base != quote and builds the metadata row.
func NewOrderBook(base, quote AssetInfo, precision *int32, minQuote Amount) (*OrderBook, error) {
	if base.Equal(quote) {
		return nil, ErrInvalidPair
	}
	pairKey, err := NewPairKey(base, quote)
	if err != nil {
		return nil, err
	}
	return &OrderBook{
		PairKey:            pairKey,
		BaseCoinInfo:       base,
		QuoteCoinInfo:      quote,
		Precision:          precision,
		MinQuoteCoinAmount: minQuote,
	}, nil
}

// OfferAssetInfo returns the asset identity for the offer side of an order of
// the given direction: quote for Buy offers, base for Sell offers.
func (ob *OrderBook) OfferAssetInfo(direction OrderDirection) AssetInfo {
	if direction == OrderDirectionBuy {
		return ob.QuoteCoinInfo
	}
	return ob.BaseCoinInfo
}

// AskAssetInfo returns the asset identity for the ask side of an order of
// the given direction: base for Buy asks, quote for Sell asks.
func (ob *OrderBook) AskAssetInfo(direction OrderDirection) AssetInfo {
	if direction == OrderDirectionBuy {
		return ob.BaseCoinInfo
	}
	return ob.QuoteCoinInfo
}
