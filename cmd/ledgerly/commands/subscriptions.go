package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/ledgerly-io/ledgerly-go/v2/pkg/ledgerly"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// NewSubscriptionsCommand creates the subscriptions command group.
func NewSubscriptionsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "subscriptions",
		Aliases: []string{"subscription", "subs"},
		Short:   "Manage subscriptions",
		Long:    "List, inspect, create, and cancel Ledgerly subscriptions",
	}

	cmd.AddCommand(newSubscriptionsListCommand())
	cmd.AddCommand(newSubscriptionsGetCommand())
	cmd.AddCommand(newSubscriptionsCreateCommand())
	cmd.AddCommand(newSubscriptionsCancelCommand())

	return cmd
}

func newSubscriptionsListCommand() *cobra.Command {
	var (
		limit      int
		offset     int
		status     string
		customerID string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List subscriptions",
		Long:  "List subscriptions, optionally filtered by customer or status",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			params := listParams(limit, offset, map[string]string{
				"status":     status,
				"customerId": customerID,
			})

			subscriptions, err := client.Subscriptions().List(context.Background(), params)
			if err != nil {
				return fmt.Errorf("listing subscriptions: %w", err)
			}

			handled, err := encodeOutput(subscriptions.Items)
			if handled {
				return err
			}

			if len(subscriptions.Items) == 0 {
				fmt.Println("No subscriptions found")

				return nil
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("ID", "Customer", "Plan", "Status", "Renewal")

			for _, item := range subscriptions.Items {
				subscription, ok := item.(*ledgerly.Subscription)
				if !ok {
					continue
				}

				_ = table.Append(
					subscription.ID,
					subscription.CustomerID,
					subscription.PlanID,
					subscription.Status,
					formatValue(subscription.RenewalTime),
				)
			}

			if err := table.Render(); err != nil {
				return fmt.Errorf("rendering table: %w", err)
			}

			pageFooter(subscriptions)

			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 0, "page size")
	cmd.Flags().IntVar(&offset, "offset", 0, "page offset")
	cmd.Flags().StringVar(&status, "status", "", "filter by status")
	cmd.Flags().StringVar(&customerID, "customer", "", "filter by customer ID")

	return cmd
}

func newSubscriptionsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get SUBSCRIPTION_ID",
		Short: "Get subscription details",
		Long:  "Display detailed information about a specific subscription",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			subscription, err := client.Subscriptions().Get(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("getting subscription: %w", err)
			}

			handled, err := encodeOutput(subscription)
			if handled {
				return err
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("Property", "Value")
			_ = table.Append("ID", subscription.ID)
			_ = table.Append("Customer", subscription.CustomerID)
			_ = table.Append("Plan", subscription.PlanID)
			_ = table.Append("Website", formatValue(subscription.WebsiteID))
			_ = table.Append("Status", subscription.Status)
			_ = table.Append("Renewal", formatValue(subscription.RenewalTime))
			_ = table.Append("Canceled", formatValue(subscription.CanceledTime))
			_ = table.Append("Created", formatTime(subscription.CreatedTime))

			if err := table.Render(); err != nil {
				return fmt.Errorf("rendering table: %w", err)
			}

			return nil
		},
	}
}

func newSubscriptionsCreateCommand() *cobra.Command {
	var (
		customerID string
		planID     string
		websiteID  string
		autoRenew  bool
		quantity   int
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a subscription",
		Long:  "Subscribe a customer to a billing plan",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			subscription, err := client.Subscriptions().Create(context.Background(), &ledgerly.SubscriptionRequest{
				CustomerID:      customerID,
				PlanID:          planID,
				WebsiteID:       websiteID,
				AutoRenew:       autoRenew,
				QuantityOfUnits: quantity,
			})
			if err != nil {
				return fmt.Errorf("creating subscription: %w", err)
			}

			handled, err := encodeOutput(subscription)
			if handled {
				return err
			}

			fmt.Printf("Created subscription %s (%s)\n", subscription.ID, subscription.Status)

			return nil
		},
	}

	cmd.Flags().StringVar(&customerID, "customer", "", "customer ID (required)")
	cmd.Flags().StringVar(&planID, "plan", "", "plan ID (required)")
	cmd.Flags().StringVar(&websiteID, "website", "", "website ID")
	cmd.Flags().BoolVar(&autoRenew, "auto-renew", true, "renew automatically at period end")
	cmd.Flags().IntVar(&quantity, "quantity", 1, "quantity of units")
	_ = cmd.MarkFlagRequired("customer")
	_ = cmd.MarkFlagRequired("plan")

	return cmd
}

func newSubscriptionsCancelCommand() *cobra.Command {
	var reason string

	cmd := &cobra.Command{
		Use:   "cancel SUBSCRIPTION_ID",
		Short: "Cancel a subscription",
		Long:  "Cancel an active subscription",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			subscription, err := client.Subscriptions().Cancel(context.Background(), args[0],
				&ledgerly.SubscriptionCancelRequest{Reason: reason})
			if err != nil {
				return fmt.Errorf("canceling subscription: %w", err)
			}

			fmt.Printf("Subscription %s is now %s\n", subscription.ID, subscription.Status)

			return nil
		},
	}

	cmd.Flags().StringVar(&reason, "reason", "requested-by-customer", "cancellation reason")

	return cmd
}
