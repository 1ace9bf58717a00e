package keeper

import (
	"context"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/oraichain/orderbook-engine/x/orderbook/types"
)

// msgServer wires the module's command surface (spec.md §6) onto the
// keeper operations in lifecycle.go, matching.go, and admin.go, following
// the teacher's thin-msgServer-over-Keeper convention: validate, call the
// host's transfer collaborator where funds move, call the keeper op, emit
// the event.
type msgServer struct {
	*Keeper
}

// NewMsgServerImpl returns an implementation of types.MsgServer for the
// provided Keeper.
func NewMsgServerImpl(k *Keeper) types.MsgServer {
	return &msgServer{Keeper: k}
}

var _ types.MsgServer = msgServer{}

func (m msgServer) CreateOrderbookPair(goCtx context.Context, msg *types.MsgCreateOrderbookPair) (*types.MsgCreateOrderbookPairResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	ctx := sdk.UnwrapSDKContext(goCtx)
	if err := m.RequireAdmin(msg.Owner); err != nil {
		return nil, err
	}

	ob, err := types.NewOrderBook(msg.BaseCoinInfo, msg.QuoteCoinInfo, msg.Precision, msg.MinQuoteCoinAmount)
	if err != nil {
		return nil, err
	}
	if existing, _ := m.GetOrderBook(ctx, ob.PairKey); existing != nil {
		return nil, types.ErrPairAlreadyExists
	}
	if err := m.SetOrderBook(ctx, ob); err != nil {
		return nil, err
	}
	return &types.MsgCreateOrderbookPairResponse{PairKey: ob.PairKey}, nil
}

func (m msgServer) SubmitOrder(goCtx context.Context, msg *types.MsgSubmitOrder) (*types.MsgSubmitOrderResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	ctx := sdk.UnwrapSDKContext(goCtx)
	offer, ask := msg.Assets[0], msg.Assets[1]

	if err := m.transferKeeper.AssertDelivered(ctx, msg.Sender, offer); err != nil {
		return nil, err
	}
	pairKey, err := types.NewPairKey(offer.Info, ask.Info)
	if err != nil {
		return nil, err
	}
	if msg.Direction == types.OrderDirectionSell {
		pairKey, err = types.NewPairKey(ask.Info, offer.Info)
		if err != nil {
			return nil, err
		}
	}

	order, err := m.Keeper.SubmitOrder(ctx, pairKey, msg.Direction, msg.Sender, offer, ask)
	if err != nil {
		return nil, err
	}
	ctx.EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeSubmitOrder,
		sdk.NewAttribute(types.AttrKeyOrderID, math.NewInt(int64(order.OrderID)).String()),
		sdk.NewAttribute(types.AttrKeyDirection, order.Direction.String()),
		sdk.NewAttribute(types.AttrKeyBidderAddr, order.BidderAddr),
		sdk.NewAttribute(types.AttrKeyOfferAmount, offer.String()),
		sdk.NewAttribute(types.AttrKeyAskAmount, ask.String()),
	))
	return &types.MsgSubmitOrderResponse{OrderID: order.OrderID}, nil
}

func (m msgServer) UpdateOrder(goCtx context.Context, msg *types.MsgUpdateOrder) (*types.MsgUpdateOrderResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	ctx := sdk.UnwrapSDKContext(goCtx)
	newOffer, newAsk := msg.Assets[0], msg.Assets[1]

	if err := m.transferKeeper.AssertDelivered(ctx, msg.Sender, newOffer); err != nil {
		return nil, err
	}
	// NewPairKey is order-independent across its two arguments, so the new
	// offer/ask asset identities alone are enough to locate the pair the
	// order being updated already belongs to.
	pairKey, err := types.NewPairKey(newOffer.Info, newAsk.Info)
	if err != nil {
		return nil, err
	}

	refund, err := m.Keeper.UpdateOrder(ctx, pairKey, msg.OrderID, msg.Sender, newOffer, newAsk)
	if err != nil {
		return nil, err
	}
	if !refund.Amount.IsZero() {
		if err := m.transferKeeper.Transfer(ctx, msg.Sender, refund); err != nil {
			return nil, err
		}
	}
	ctx.EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeUpdateOrder,
		sdk.NewAttribute(types.AttrKeyOrderID, math.NewInt(int64(msg.OrderID)).String()),
		sdk.NewAttribute(types.AttrKeyBidderAddr, msg.Sender),
		sdk.NewAttribute(types.AttrKeyOfferAmount, newOffer.String()),
		sdk.NewAttribute(types.AttrKeyAskAmount, newAsk.String()),
	))
	return &types.MsgUpdateOrderResponse{}, nil
}

func (m msgServer) CancelOrder(goCtx context.Context, msg *types.MsgCancelOrder) (*types.MsgCancelOrderResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	ctx := sdk.UnwrapSDKContext(goCtx)
	pairKey, err := types.NewPairKey(msg.AssetInfos[0], msg.AssetInfos[1])
	if err != nil {
		return nil, err
	}

	order, refund, err := m.Keeper.CancelOrder(ctx, pairKey, msg.OrderID, msg.Sender)
	if err != nil {
		return nil, err
	}
	if !refund.Amount.IsZero() {
		if err := m.transferKeeper.Transfer(ctx, msg.Sender, refund); err != nil {
			return nil, err
		}
	}
	ctx.EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeCancelOrder,
		sdk.NewAttribute(types.AttrKeyOrderID, math.NewInt(int64(order.OrderID)).String()),
		sdk.NewAttribute(types.AttrKeyBidderAddr, order.BidderAddr),
		sdk.NewAttribute(types.AttrKeyStatus, order.Status.String()),
	))
	return &types.MsgCancelOrderResponse{RefundAsset: refund}, nil
}

func (m msgServer) ExecuteOrderbookPair(goCtx context.Context, msg *types.MsgExecuteOrderbookPair) (*types.MsgExecuteOrderbookPairResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	ctx := sdk.UnwrapSDKContext(goCtx)
	pairKey, err := types.NewPairKey(msg.AssetInfos[0], msg.AssetInfos[1])
	if err != nil {
		return nil, err
	}
	limit := types.DefaultLimit
	if msg.Limit != nil {
		limit = types.ClampLimit(*msg.Limit)
	}

	total, err := m.Keeper.ExecuteOrderbookPair(ctx, pairKey, msg.Sender, limit)
	if err != nil {
		return nil, err
	}
	ctx.EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeExecuteMatch,
		sdk.NewAttribute(types.AttrKeyTotalMatchedOrders, math.NewInt(int64(total)).String()),
	))
	return &types.MsgExecuteOrderbookPairResponse{TotalMatchedOrders: total}, nil
}

func (m msgServer) RemoveOrderbook(goCtx context.Context, msg *types.MsgRemoveOrderbook) (*types.MsgRemoveOrderbookResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	ctx := sdk.UnwrapSDKContext(goCtx)
	if err := m.RequireAdmin(msg.Sender); err != nil {
		return nil, err
	}
	pairKey, err := types.NewPairKey(msg.AssetInfos[0], msg.AssetInfos[1])
	if err != nil {
		return nil, err
	}
	if err := m.Keeper.RemovePair(ctx, pairKey); err != nil {
		return nil, err
	}
	ctx.EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeRemoveOrderbook,
		sdk.NewAttribute(types.AttrKeyAction, types.EventTypeRemoveOrderbook),
	))
	return &types.MsgRemoveOrderbookResponse{}, nil
}

func (m msgServer) RemoveOrderByPrice(goCtx context.Context, msg *types.MsgRemoveOrderByPrice) (*types.MsgRemoveOrderByPriceResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	ctx := sdk.UnwrapSDKContext(goCtx)
	if err := m.RequireAdmin(msg.Sender); err != nil {
		return nil, err
	}
	pairKey, err := types.NewPairKey(msg.AssetInfos[0], msg.AssetInfos[1])
	if err != nil {
		return nil, err
	}
	previous := m.Keeper.RemoveOrderByPrice(ctx, pairKey, msg.Direction, msg.Price)
	ctx.EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeRemovePrice,
		sdk.NewAttribute(types.AttrKeyPrice, msg.Price.String()),
		sdk.NewAttribute(types.AttrKeyDirection, msg.Direction.String()),
	))
	return &types.MsgRemoveOrderByPriceResponse{PreviousCount: previous}, nil
}

func (m msgServer) RemoveOrderByStatus(goCtx context.Context, msg *types.MsgRemoveOrderByStatus) (*types.MsgRemoveOrderByStatusResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	ctx := sdk.UnwrapSDKContext(goCtx)
	if err := m.RequireAdmin(msg.Sender); err != nil {
		return nil, err
	}
	pairKey, err := types.NewPairKey(msg.AssetInfos[0], msg.AssetInfos[1])
	if err != nil {
		return nil, err
	}
	if err := m.Keeper.RemoveOrderByStatus(ctx, pairKey, msg.OrderID, msg.Status); err != nil {
		return nil, err
	}
	ctx.EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeRemoveStatus,
		sdk.NewAttribute(types.AttrKeyOrderID, math.NewInt(int64(msg.OrderID)).String()),
		sdk.NewAttribute(types.AttrKeyStatus, msg.Status.String()),
	))
	return &types.MsgRemoveOrderByStatusResponse{}, nil
}

func (m msgServer) RemoveStuckOrder(goCtx context.Context, msg *types.MsgRemoveStuckOrder) (*types.MsgRemoveStuckOrderResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	ctx := sdk.UnwrapSDKContext(goCtx)
	if err := m.RequireAdmin(msg.Sender); err != nil {
		return nil, err
	}
	pairKey, err := types.NewPairKey(msg.AssetInfos[0], msg.AssetInfos[1])
	if err != nil {
		return nil, err
	}
	if err := m.Keeper.RemoveStuckOrder(ctx, pairKey, msg.OrderID); err != nil {
		return nil, err
	}
	return &types.MsgRemoveStuckOrderResponse{}, nil
}
