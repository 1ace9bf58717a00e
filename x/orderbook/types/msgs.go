package types

import "context"

// Message type names, per spec.md §6 "Command surface".
const (
	TypeMsgCreateOrderbookPair  = "create_orderbook_pair"
	TypeMsgSubmitOrder          = "submit_order"
	TypeMsgUpdateOrder          = "update_order"
	TypeMsgCancelOrder          = "cancel_order"
	TypeMsgExecuteOrderbookPair = "execute_orderbook_pair"
	TypeMsgRemoveOrderbook      = "remove_orderbook"
	TypeMsgRemoveOrderByPrice   = "remove_order_by_price"
	TypeMsgRemoveOrderByStatus  = "remove_order_by_status"
	TypeMsgRemoveStuckOrder     = "remove_stuff_order"
)

// MsgCreateOrderbookPair registers a new trading pair. Owner only.
type MsgCreateOrderbookPair struct {
	Owner              string
	BaseCoinInfo       AssetInfo
	QuoteCoinInfo      AssetInfo
	Precision          *int32
	MinQuoteCoinAmount Amount
}

func (msg *MsgCreateOrderbookPair) ValidateBasic() error {
	if msg.Owner == "" {
		return ErrUnauthorized
	}
	if msg.BaseCoinInfo.Equal(msg.QuoteCoinInfo) {
		return ErrInvalidPair
	}
	return nil
}

type MsgCreateOrderbookPairResponse struct {
	PairKey PairKey
}

// MsgSubmitOrder places a new order against a pair, with delivered funds
// asserted equal to Assets[0].Amount by the host before this handler runs
// (spec.md §1: "submitting an order transfers the offered amount to the
// engine's custody before the order is stored").
type MsgSubmitOrder struct {
	Sender    string
	Direction OrderDirection
	Assets    [2]Asset // Assets[0] = offer, Assets[1] = ask
}

func (msg *MsgSubmitOrder) ValidateBasic() error {
	if msg.Sender == "" {
		return ErrUnauthorized
	}
	if msg.Assets[0].Amount.IsZero() || msg.Assets[1].Amount.IsZero() {
		return ErrAssetMustNotBeZero
	}
	return nil
}

type MsgSubmitOrderResponse struct {
	OrderID uint64
}

// MsgUpdateOrder re-escrows an existing order with new offer/ask amounts.
// Per SPEC_FULL.md's Open Question decision, this module implements full
// re-escrow: the delivered funds must equal the new offer amount, and the
// prior offer's unfilled remainder is refunded within the same call.
type MsgUpdateOrder struct {
	Sender  string
	OrderID uint64
	Assets  [2]Asset
}

func (msg *MsgUpdateOrder) ValidateBasic() error {
	if msg.Sender == "" {
		return ErrUnauthorized
	}
	if msg.Assets[0].Amount.IsZero() || msg.Assets[1].Amount.IsZero() {
		return ErrAssetMustNotBeZero
	}
	return nil
}

type MsgUpdateOrderResponse struct{}

// MsgCancelOrder cancels a resting order and refunds its unfilled offer.
type MsgCancelOrder struct {
	Sender     string
	OrderID    uint64
	AssetInfos [2]AssetInfo
}

func (msg *MsgCancelOrder) ValidateBasic() error {
	if msg.Sender == "" {
		return ErrUnauthorized
	}
	return nil
}

type MsgCancelOrderResponse struct {
	RefundAsset Asset
}

// MsgExecuteOrderbookPair invokes the matcher for a pair (spec.md §4.4).
type MsgExecuteOrderbookPair struct {
	Sender     string
	AssetInfos [2]AssetInfo
	Limit      *uint32
}

func (msg *MsgExecuteOrderbookPair) ValidateBasic() error {
	if msg.Sender == "" {
		return ErrUnauthorized
	}
	return nil
}

type MsgExecuteOrderbookPairResponse struct {
	TotalMatchedOrders uint64
}

// MsgRemoveOrderbook deletes the orderbook metadata row and every order,
// tick, index and reward row stored under the pair. Admin only.
type MsgRemoveOrderbook struct {
	Sender     string
	AssetInfos [2]AssetInfo
}

func (msg *MsgRemoveOrderbook) ValidateBasic() error {
	if msg.Sender == "" {
		return ErrUnauthorized
	}
	return nil
}

type MsgRemoveOrderbookResponse struct{}

// MsgRemoveOrderByPrice zeroes a tick counter directly. Admin only.
type MsgRemoveOrderByPrice struct {
	Sender     string
	AssetInfos [2]AssetInfo
	Direction  OrderDirection
	Price      Price
}

func (msg *MsgRemoveOrderByPrice) ValidateBasic() error {
	if msg.Sender == "" {
		return ErrUnauthorized
	}
	return nil
}

type MsgRemoveOrderByPriceResponse struct {
	PreviousCount uint64
}

// MsgRemoveOrderByStatus force-removes the index rows of one order. Admin only.
type MsgRemoveOrderByStatus struct {
	Sender     string
	AssetInfos [2]AssetInfo
	OrderID    uint64
	Status     OrderStatus
}

func (msg *MsgRemoveOrderByStatus) ValidateBasic() error {
	if msg.Sender == "" {
		return ErrUnauthorized
	}
	return nil
}

type MsgRemoveOrderByStatusResponse struct{}

// MsgRemoveStuckOrder rescues a single stuck order row (spec.md §4.6). Admin only.
type MsgRemoveStuckOrder struct {
	Sender     string
	AssetInfos [2]AssetInfo
	OrderID    uint64
}

func (msg *MsgRemoveStuckOrder) ValidateBasic() error {
	if msg.Sender == "" {
		return ErrUnauthorized
	}
	return nil
}

type MsgRemoveStuckOrderResponse struct{}

// MsgServer is the command surface of the orderbook module (spec.md §6).
type MsgServer interface {
	CreateOrderbookPair(context.Context, *MsgCreateOrderbookPair) (*MsgCreateOrderbookPairResponse, error)
	SubmitOrder(context.Context, *MsgSubmitOrder) (*MsgSubmitOrderResponse, error)
	UpdateOrder(context.Context, *MsgUpdateOrder) (*MsgUpdateOrderResponse, error)
	CancelOrder(context.Context, *MsgCancelOrder) (*MsgCancelOrderResponse, error)
	ExecuteOrderbookPair(context.Context, *MsgExecuteOrderbookPair) (*MsgExecuteOrderbookPairResponse, error)
	RemoveOrderbook(context.Context, *MsgRemoveOrderbook) (*MsgRemoveOrderbookResponse, error)
	RemoveOrderByPrice(context.Context, *MsgRemoveOrderByPrice) (*MsgRemoveOrderByPriceResponse, error)
	RemoveOrderByStatus(context.Context, *MsgRemoveOrderByStatus) (*MsgRemoveOrderByStatusResponse, error)
	RemoveStuckOrder(context.Context, *MsgRemoveStuckOrder) (*MsgRemoveStuckOrderResponse, error)
}
