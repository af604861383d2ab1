package main

import (
	"github.com/spf13/cobra"
)

func (a *app) cartCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cart",
		Short: "Manage the shopping cart",
	}

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "List the items in the cart",
		RunE: func(cmd *cobra.Command, args []string) error {
			items, err := a.client.ListCartItems(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(items)
		},
	}

	var quantity int

	addCmd := &cobra.Command{
		Use:   "add <product-id>",
		Short: "Add a product to the cart",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			item, err := a.client.AddCartItem(cmd.Context(), args[0], quantity)
			if err != nil {
				return err
			}
			return printJSON(item)
		},
	}
	addCmd.Flags().IntVarP(&quantity, "quantity", "q", 1, "quantity to add")

	updateCmd := &cobra.Command{
		Use:   "update <item-id>",
		Short: "Set the quantity of a cart item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			item, err := a.client.UpdateCartItem(cmd.Context(), args[0], quantity)
			if err != nil {
				return err
			}
			return printJSON(item)
		},
	}
	updateCmd.Flags().IntVarP(&quantity, "quantity", "q", 1, "new quantity")

	removeCmd := &cobra.Command{
		Use:   "remove <item-id>",
		Short: "Remove an item from the cart",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.client.RemoveCartItem(cmd.Context(), args[0])
		},
	}

	clearCmd := &cobra.Command{
		Use:   "clear",
		Short: "Remove every item from the cart",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.client.ClearCart(cmd.Context())
		},
	}

	summaryCmd := &cobra.Command{
		Use:   "summary",
		Short: "Show the checkout estimate for the cart",
		RunE: func(cmd *cobra.Command, args []string) error {
			summary, err := a.client.GetCartSummary(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(summary)
		},
	}

	cmd.AddCommand(showCmd, addCmd, updateCmd, removeCmd, clearCmd, summaryCmd)
	return cmd
}
