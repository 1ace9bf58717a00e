package orderbook

import (
	"encoding/json"

	"cosmossdk.io/core/appmodule"
	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/codec"
	cdctypes "github.com/cosmos/cosmos-sdk/codec/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/types/module"
	"github.com/grpc-ecosystem/grpc-gateway/runtime"

	"github.com/oraichain/orderbook-engine/x/orderbook/keeper"
	"github.com/oraichain/orderbook-engine/x/orderbook/types"
)

var (
	_ module.AppModuleBasic = AppModuleBasic{}
	_ appmodule.AppModule   = AppModule{}
)

// AppModuleBasic defines the basic application module for orderbook,
// following the teacher's perpetual.AppModuleBasic shape.
type AppModuleBasic struct{}

func (AppModuleBasic) Name() string { return types.ModuleName }

// RegisterLegacyAminoCodec registers the module's message types on the
// given LegacyAmino codec.
func (AppModuleBasic) RegisterLegacyAminoCodec(cdc *codec.LegacyAmino) {
	cdc.RegisterConcrete(&types.MsgCreateOrderbookPair{}, "orderbook/MsgCreateOrderbookPair", nil)
	cdc.RegisterConcrete(&types.MsgSubmitOrder{}, "orderbook/MsgSubmitOrder", nil)
	cdc.RegisterConcrete(&types.MsgUpdateOrder{}, "orderbook/MsgUpdateOrder", nil)
	cdc.RegisterConcrete(&types.MsgCancelOrder{}, "orderbook/MsgCancelOrder", nil)
	cdc.RegisterConcrete(&types.MsgExecuteOrderbookPair{}, "orderbook/MsgExecuteOrderbookPair", nil)
	cdc.RegisterConcrete(&types.MsgRemoveOrderbook{}, "orderbook/MsgRemoveOrderbook", nil)
	cdc.RegisterConcrete(&types.MsgRemoveOrderByPrice{}, "orderbook/MsgRemoveOrderByPrice", nil)
	cdc.RegisterConcrete(&types.MsgRemoveOrderByStatus{}, "orderbook/MsgRemoveOrderByStatus", nil)
	cdc.RegisterConcrete(&types.MsgRemoveStuckOrder{}, "orderbook/MsgRemoveStuckOrder", nil)
}

// RegisterInterfaces registers the module's interface types.
func (AppModuleBasic) RegisterInterfaces(registry cdctypes.InterfaceRegistry) {
	registry.RegisterImplementations((*sdk.Msg)(nil),
		&types.MsgCreateOrderbookPair{},
		&types.MsgSubmitOrder{},
		&types.MsgUpdateOrder{},
		&types.MsgCancelOrder{},
		&types.MsgExecuteOrderbookPair{},
		&types.MsgRemoveOrderbook{},
		&types.MsgRemoveOrderByPrice{},
		&types.MsgRemoveOrderByStatus{},
		&types.MsgRemoveStuckOrder{},
	)
}

func (AppModuleBasic) DefaultGenesis(cdc codec.JSONCodec) json.RawMessage { return nil }

func (AppModuleBasic) ValidateGenesis(cdc codec.JSONCodec, config client.TxEncodingConfig, bz json.RawMessage) error {
	return nil
}

// RegisterGRPCGatewayRoutes registers the gRPC Gateway routes for the
// module. No-op: the module exposes its read surface through the Keeper's
// query methods (see keeper/query.go) rather than a generated gRPC query
// service.
func (AppModuleBasic) RegisterGRPCGatewayRoutes(clientCtx client.Context, mux *runtime.ServeMux) {}

// AppModule implements an application module for the orderbook module.
type AppModule struct {
	AppModuleBasic
	keeper *keeper.Keeper
}

// NewAppModule creates a new AppModule object.
func NewAppModule(k *keeper.Keeper) AppModule {
	return AppModule{
		AppModuleBasic: AppModuleBasic{},
		keeper:         k,
	}
}

func (am AppModule) Name() string { return types.ModuleName }

// RegisterServices constructs the module's MsgServer implementation. The
// module has no proto-generated ServiceDesc (spec.md's scope stops at the
// matching engine and its command surface, not full chain wire codecs), so
// the implementation is not registered with cfg.MsgServer() or with any
// other router.
func (am AppModule) RegisterServices(cfg module.Configurator) {
	_ = keeper.NewMsgServerImpl(am.keeper)
}

// IsOnePerModuleType implements the depinject.OnePerModuleType interface.
func (am AppModule) IsOnePerModuleType() {}

// IsAppModule implements the appmodule.AppModule interface.
func (am AppModule) IsAppModule() {}
