package main

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/commercekit/storefront/internal/client"
)

func (a *app) notificationsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "notifications",
		Short: "Send and list notifications",
	}

	listCmd := &cobra.Command{
		Use:   "list <user-id>",
		Short: "List the notifications sent to a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			userID, err := strconv.Atoi(args[0])
			if err != nil {
				return err
			}
			notifications, err := a.client.ListNotifications(cmd.Context(), userID)
			if err != nil {
				return err
			}
			return printJSON(notifications)
		},
	}

	var notifType string

	sendCmd := &cobra.Command{
		Use:   "send <user-id> <message>",
		Short: "Send a notification to a user",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			userID, err := strconv.Atoi(args[0])
			if err != nil {
				return err
			}
			return a.client.SendNotification(cmd.Context(), client.Notification{
				UserID:  userID,
				Message: args[1],
				Type:    notifType,
			})
		},
	}
	sendCmd.Flags().StringVar(&notifType, "type", "email", "delivery channel (email, sms)")

	cmd.AddCommand(listCmd, sendCmd)
	return cmd
}

func (a *app) healthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check the health of every backend service",
		RunE: func(cmd *cobra.Command, args []string) error {
			services := []client.Service{
				client.ServiceUser,
				client.ServiceProduct,
				client.ServiceOrder,
				client.ServicePayment,
				client.ServiceCart,
				client.ServiceInventory,
				client.ServiceNotification,
			}

			statuses := make(map[client.Service]string, len(services))
			for _, service := range services {
				health, err := a.client.ServiceHealth(cmd.Context(), service)
				if err != nil {
					statuses[service] = err.Error()
					continue
				}
				statuses[service] = health.Status
			}

			return printJSON(statuses)
		},
	}
}
