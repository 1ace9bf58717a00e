package cli

import (
	"fmt"
	"strconv"
	"strings"

	"cosmossdk.io/math"
	"github.com/spf13/cobra"

	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/client/flags"
	"github.com/cosmos/cosmos-sdk/client/tx"

	"github.com/oraichain/orderbook-engine/x/orderbook/types"
)

// GetTxCmd returns the transaction commands for the orderbook module.
func GetTxCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:                        "orderbook",
		Short:                      "Orderbook module transaction commands",
		DisableFlagParsing:         true,
		SuggestionsMinimumDistance: 2,
		RunE:                       client.ValidateCmd,
	}

	cmd.AddCommand(
		CmdCreateOrderbookPair(),
		CmdSubmitOrder(),
		CmdUpdateOrder(),
		CmdCancelOrder(),
		CmdExecuteOrderbookPair(),
		CmdRemoveOrderbook(),
		CmdRemoveOrderByPrice(),
		CmdRemoveOrderByStatus(),
		CmdRemoveStuckOrder(),
	)

	return cmd
}

// parseAssetInfo accepts either a bare denom ("orai") or a "cw20:<addr>"
// contract-token reference, matching the two AssetInfoKind variants
// spec.md §1 names.
func parseAssetInfo(arg string) types.AssetInfo {
	if strings.HasPrefix(arg, "cw20:") {
		return types.NewTokenInfo(strings.TrimPrefix(arg, "cw20:"))
	}
	return types.NewNativeTokenInfo(arg)
}

func parseDirection(arg string) (types.OrderDirection, error) {
	switch strings.ToLower(arg) {
	case "buy":
		return types.OrderDirectionBuy, nil
	case "sell":
		return types.OrderDirectionSell, nil
	default:
		return types.OrderDirectionUnspecified, fmt.Errorf("invalid direction %q (use buy or sell)", arg)
	}
}

func parseAmount(arg string) (types.Amount, error) {
	i, ok := math.NewIntFromString(arg)
	if !ok {
		return types.Amount{}, fmt.Errorf("invalid integer amount %q", arg)
	}
	return types.NewAmount(i), nil
}

// CmdCreateOrderbookPair registers a new trading pair. Admin only.
func CmdCreateOrderbookPair() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create-pair [base-asset] [quote-asset] [min-quote-amount]",
		Short: "Register a new orderbook trading pair (admin only)",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}
			minQuote, err := parseAmount(args[2])
			if err != nil {
				return err
			}
			msg := &types.MsgCreateOrderbookPair{
				Owner:              clientCtx.GetFromAddress().String(),
				BaseCoinInfo:       parseAssetInfo(args[0]),
				QuoteCoinInfo:      parseAssetInfo(args[1]),
				MinQuoteCoinAmount: minQuote,
			}
			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}
	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdSubmitOrder places a new Buy or Sell order against a pair.
func CmdSubmitOrder() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "submit-order [direction] [offer-asset] [offer-amount] [ask-asset] [ask-amount]",
		Short: "Submit a new limit order",
		Long: `Submit a new limit order against an existing pair.

Examples:
  orderbookd tx orderbook submit-order buy orai 1000000 cw20:orai1token... 50000 --from alice
  orderbookd tx orderbook submit-order sell cw20:orai1token... 50000 orai 1000000 --from bob`,
		Args: cobra.ExactArgs(5),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}
			direction, err := parseDirection(args[0])
			if err != nil {
				return err
			}
			offerAmount, err := parseAmount(args[2])
			if err != nil {
				return err
			}
			askAmount, err := parseAmount(args[4])
			if err != nil {
				return err
			}
			msg := &types.MsgSubmitOrder{
				Sender:    clientCtx.GetFromAddress().String(),
				Direction: direction,
				Assets: [2]types.Asset{
					{Info: parseAssetInfo(args[1]), Amount: offerAmount},
					{Info: parseAssetInfo(args[3]), Amount: askAmount},
				},
			}
			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}
	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdUpdateOrder re-escrows an existing order at new offer/ask amounts.
func CmdUpdateOrder() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update-order [order-id] [offer-asset] [offer-amount] [ask-asset] [ask-amount]",
		Short: "Re-escrow an existing order with a new offer/ask amount",
		Args:  cobra.ExactArgs(5),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}
			orderID, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid order id: %w", err)
			}
			offerAmount, err := parseAmount(args[2])
			if err != nil {
				return err
			}
			askAmount, err := parseAmount(args[4])
			if err != nil {
				return err
			}
			msg := &types.MsgUpdateOrder{
				Sender:  clientCtx.GetFromAddress().String(),
				OrderID: orderID,
				Assets: [2]types.Asset{
					{Info: parseAssetInfo(args[1]), Amount: offerAmount},
					{Info: parseAssetInfo(args[3]), Amount: askAmount},
				},
			}
			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}
	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdCancelOrder cancels a resting order and refunds its unfilled offer.
func CmdCancelOrder() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cancel-order [order-id] [base-asset] [quote-asset]",
		Short: "Cancel an existing order",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}
			orderID, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid order id: %w", err)
			}
			msg := &types.MsgCancelOrder{
				Sender:     clientCtx.GetFromAddress().String(),
				OrderID:    orderID,
				AssetInfos: [2]types.AssetInfo{parseAssetInfo(args[1]), parseAssetInfo(args[2])},
			}
			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}
	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdExecuteOrderbookPair invokes the matcher for a pair.
func CmdExecuteOrderbookPair() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "execute-match [base-asset] [quote-asset] [limit]",
		Short: "Run the matching engine against one pair's resting orders",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}
			limit, err := strconv.ParseUint(args[2], 10, 32)
			if err != nil {
				return fmt.Errorf("invalid limit: %w", err)
			}
			limit32 := uint32(limit)
			msg := &types.MsgExecuteOrderbookPair{
				Sender:     clientCtx.GetFromAddress().String(),
				AssetInfos: [2]types.AssetInfo{parseAssetInfo(args[0]), parseAssetInfo(args[1])},
				Limit:      &limit32,
			}
			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}
	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdRemoveOrderbook deletes a pair and every order/index/tick row resting
// under it. Admin only.
func CmdRemoveOrderbook() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remove-pair [base-asset] [quote-asset]",
		Short: "Remove a trading pair and all of its resting state (admin only)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}
			msg := &types.MsgRemoveOrderbook{
				Sender:     clientCtx.GetFromAddress().String(),
				AssetInfos: [2]types.AssetInfo{parseAssetInfo(args[0]), parseAssetInfo(args[1])},
			}
			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}
	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdRemoveOrderByPrice zeroes a tick's counter directly. Admin only.
func CmdRemoveOrderByPrice() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remove-tick [base-asset] [quote-asset] [direction] [price]",
		Short: "Zero a tick's resting-order counter directly (admin only)",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}
			direction, err := parseDirection(args[2])
			if err != nil {
				return err
			}
			dec, err := math.LegacyNewDecFromStr(args[3])
			if err != nil {
				return fmt.Errorf("invalid price: %w", err)
			}
			msg := &types.MsgRemoveOrderByPrice{
				Sender:     clientCtx.GetFromAddress().String(),
				AssetInfos: [2]types.AssetInfo{parseAssetInfo(args[0]), parseAssetInfo(args[1])},
				Direction:  direction,
				Price:      types.NewPriceFromDec(dec),
			}
			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}
	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdRemoveOrderByStatus force-removes the index rows of one order. Admin only.
func CmdRemoveOrderByStatus() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remove-index [base-asset] [quote-asset] [order-id] [status]",
		Short: "Force-remove the index entries of one order (admin only)",
		Long:  "status is one of: open, partial_filled, fulfilled, cancel",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}
			orderID, err := strconv.ParseUint(args[2], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid order id: %w", err)
			}
			status, err := parseStatus(args[3])
			if err != nil {
				return err
			}
			msg := &types.MsgRemoveOrderByStatus{
				Sender:     clientCtx.GetFromAddress().String(),
				AssetInfos: [2]types.AssetInfo{parseAssetInfo(args[0]), parseAssetInfo(args[1])},
				OrderID:    orderID,
				Status:     status,
			}
			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}
	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdRemoveStuckOrder rescues one order whose indexes have drifted out of
// sync with its fill state. Admin only.
func CmdRemoveStuckOrder() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remove-stuck-order [base-asset] [quote-asset] [order-id]",
		Short: "Remove a single stuck order and its index rows (admin only)",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}
			orderID, err := strconv.ParseUint(args[2], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid order id: %w", err)
			}
			msg := &types.MsgRemoveStuckOrder{
				Sender:     clientCtx.GetFromAddress().String(),
				AssetInfos: [2]types.AssetInfo{parseAssetInfo(args[0]), parseAssetInfo(args[1])},
				OrderID:    orderID,
			}
			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}
	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

func parseStatus(arg string) (types.OrderStatus, error) {
	switch strings.ToLower(arg) {
	case "open":
		return types.OrderStatusOpen, nil
	case "partial_filled", "partial":
		return types.OrderStatusPartialFilled, nil
	case "fulfilled":
		return types.OrderStatusFulfilled, nil
	case "cancel", "cancelled", "canceled":
		return types.OrderStatusCancel, nil
	default:
		return types.OrderStatusUnspecified, fmt.Errorf("invalid status %q", arg)
	}
}
