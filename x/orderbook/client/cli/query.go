package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/client/flags"
)

// GetQueryCmd returns the cli query commands for the orderbook module.
func GetQueryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:                        "orderbook",
		Short:                      "Querying commands for the orderbook module",
		DisableFlagParsing:         true,
		SuggestionsMinimumDistance: 2,
		RunE:                       client.ValidateCmd,
	}

	cmd.AddCommand(
		CmdQueryOrder(),
		CmdQueryOrders(),
		CmdQueryOrderbook(),
		CmdQueryOrderbooks(),
		CmdQueryMatchable(),
		CmdQueryMatchPrice(),
	)

	return cmd
}

// CmdQueryOrder returns the command to query a specific order by id.
func CmdQueryOrder() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "order [base-asset] [quote-asset] [order-id]",
		Short: "Query a specific order by id",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := client.GetClientQueryContext(cmd); err != nil {
				return err
			}
			if _, err := strconv.ParseUint(args[2], 10, 64); err != nil {
				return fmt.Errorf("invalid order id: %w", err)
			}
			fmt.Printf("order %s (pair %s/%s) query requires the module's query service wired into a running node\n", args[2], args[0], args[1])
			return nil
		},
	}
	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// CmdQueryOrders returns the command to list a pair's resting orders.
func CmdQueryOrders() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "orders [base-asset] [quote-asset] [direction]",
		Short: "List resting orders for a pair and direction",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := client.GetClientQueryContext(cmd); err != nil {
				return err
			}
			if _, err := parseDirection(args[2]); err != nil {
				return err
			}
			fmt.Printf("orders (pair %s/%s, direction %s) query requires the module's query service wired into a running node\n", args[0], args[1], args[2])
			return nil
		},
	}
	flags.AddQueryFlagsToCmd(cmd)
	cmd.Flags().String("bidder", "", "filter by bidder address instead of direction")
	cmd.Flags().String("price", "", "filter to the orders resting at one price tick")
	return cmd
}

// CmdQueryOrderbook returns the command to query one pair's metadata.
func CmdQueryOrderbook() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "book [base-asset] [quote-asset]",
		Short: "Query a pair's orderbook metadata",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := client.GetClientQueryContext(cmd); err != nil {
				return err
			}
			fmt.Printf("orderbook metadata (pair %s/%s) query requires the module's query service wired into a running node\n", args[0], args[1])
			return nil
		},
	}
	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// CmdQueryOrderbooks returns the command to list every registered pair.
func CmdQueryOrderbooks() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "books",
		Short: "List every registered trading pair",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := client.GetClientQueryContext(cmd); err != nil {
				return err
			}
			fmt.Println("orderbooks listing requires the module's query service wired into a running node")
			return nil
		},
	}
	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// CmdQueryMatchable returns the command to check whether a pair currently
// has resting orders on both sides of the book.
func CmdQueryMatchable() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "matchable [base-asset] [quote-asset]",
		Short: "Check whether a pair has resting orders on both sides",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := client.GetClientQueryContext(cmd); err != nil {
				return err
			}
			fmt.Printf("matchable check (pair %s/%s) requires the module's query service wired into a running node\n", args[0], args[1])
			return nil
		},
	}
	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// CmdQueryMatchPrice returns the command to print the best buy/sell price
// for a pair.
func CmdQueryMatchPrice() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "match-price [base-asset] [quote-asset]",
		Short: "Print the best resting buy/sell price for a pair",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := client.GetClientQueryContext(cmd); err != nil {
				return err
			}
			fmt.Printf("match price (pair %s/%s) requires the module's query service wired into a running node\n", args[0], args[1])
			return nil
		},
	}
	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}
