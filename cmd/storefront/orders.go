package main

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/commercekit/storefront/internal/client"
)

func (a *app) ordersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "orders",
		Short: "View and manage orders",
	}

	var userID string
	var skip, limit int

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List the order history for a user",
		RunE: func(cmd *cobra.Command, args []string) error {
			orders, err := a.client.ListUserOrders(cmd.Context(), userID, skip, limit)
			if err != nil {
				return err
			}
			return printJSON(orders)
		},
	}
	listCmd.Flags().StringVar(&userID, "user", "", "user id")
	listCmd.Flags().IntVar(&skip, "skip", 0, "number of orders to skip")
	listCmd.Flags().IntVar(&limit, "limit", 0, "maximum number of orders to return")
	_ = listCmd.MarkFlagRequired("user")

	showCmd := &cobra.Command{
		Use:   "show <order-id>",
		Short: "Show one order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return err
			}
			order, err := a.client.GetOrder(cmd.Context(), id)
			if err != nil {
				return err
			}
			return printJSON(order)
		},
	}

	statusCmd := &cobra.Command{
		Use:   "status <order-id>",
		Short: "Show the status of one order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return err
			}
			info, err := a.client.GetOrderStatus(cmd.Context(), id)
			if err != nil {
				return err
			}
			return printJSON(info)
		},
	}

	var newStatus string

	updateStatusCmd := &cobra.Command{
		Use:   "set-status <order-id>",
		Short: "Move an order to a new status",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return err
			}
			order, err := a.client.UpdateOrderStatus(cmd.Context(), id, client.OrderStatus(newStatus))
			if err != nil {
				return err
			}
			return printJSON(order)
		},
	}
	updateStatusCmd.Flags().StringVar(&newStatus, "status", "", "new status (pending, confirmed, processing, shipped, delivered, cancelled)")
	_ = updateStatusCmd.MarkFlagRequired("status")

	cancelCmd := &cobra.Command{
		Use:   "cancel <order-id>",
		Short: "Cancel an order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return err
			}
			return a.client.CancelOrder(cmd.Context(), id)
		},
	}

	cmd.AddCommand(listCmd, showCmd, statusCmd, updateStatusCmd, cancelCmd)
	return cmd
}
