package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/ledgerly-io/ledgerly-go/v2/pkg/ledgerly"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// NewInvoicesCommand creates the invoices command group.
func NewInvoicesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "invoices",
		Aliases: []string{"invoice"},
		Short:   "Manage invoices",
		Long:    "List, inspect, and issue Ledgerly invoices",
	}

	cmd.AddCommand(newInvoicesListCommand())
	cmd.AddCommand(newInvoicesGetCommand())
	cmd.AddCommand(newInvoicesIssueCommand())

	return cmd
}

func newInvoicesListCommand() *cobra.Command {
	var (
		limit      int
		offset     int
		status     string
		customerID string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List invoices",
		Long:  "List invoices, optionally filtered by customer or status",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			params := listParams(limit, offset, map[string]string{
				"status":     status,
				"customerId": customerID,
			})

			invoices, err := client.Invoices().List(context.Background(), params)
			if err != nil {
				return fmt.Errorf("listing invoices: %w", err)
			}

			handled, err := encodeOutput(invoices.Items)
			if handled {
				return err
			}

			if len(invoices.Items) == 0 {
				fmt.Println("No invoices found")

				return nil
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("ID", "Customer", "Status", "Amount", "Due", "Due Time")

			for _, item := range invoices.Items {
				invoice, ok := item.(*ledgerly.Invoice)
				if !ok {
					continue
				}

				_ = table.Append(
					invoice.ID,
					invoice.CustomerID,
					invoice.Status,
					formatAmount(invoice.Amount, invoice.Currency),
					formatAmount(invoice.AmountDue, invoice.Currency),
					formatValue(invoice.DueTime),
				)
			}

			if err := table.Render(); err != nil {
				return fmt.Errorf("rendering table: %w", err)
			}

			pageFooter(invoices)

			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 0, "page size")
	cmd.Flags().IntVar(&offset, "offset", 0, "page offset")
	cmd.Flags().StringVar(&status, "status", "", "filter by status")
	cmd.Flags().StringVar(&customerID, "customer", "", "filter by customer ID")

	return cmd
}

func newInvoicesGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get INVOICE_ID",
		Short: "Get invoice details",
		Long:  "Display detailed information about a specific invoice",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			invoice, err := client.Invoices().Get(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("getting invoice: %w", err)
			}

			handled, err := encodeOutput(invoice)
			if handled {
				return err
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("Property", "Value")
			_ = table.Append("ID", invoice.ID)
			_ = table.Append("Customer", invoice.CustomerID)
			_ = table.Append("Subscription", formatValue(invoice.SubscriptionID))
			_ = table.Append("Status", invoice.Status)
			_ = table.Append("Amount", formatAmount(invoice.Amount, invoice.Currency))
			_ = table.Append("Amount Due", formatAmount(invoice.AmountDue, invoice.Currency))
			_ = table.Append("Due Time", formatValue(invoice.DueTime))
			_ = table.Append("Issued Time", formatValue(invoice.IssuedTime))
			_ = table.Append("Created", formatTime(invoice.CreatedTime))

			if err := table.Render(); err != nil {
				return fmt.Errorf("rendering table: %w", err)
			}

			return nil
		},
	}
}

func newInvoicesIssueCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "issue INVOICE_ID",
		Short: "Issue an invoice",
		Long:  "Issue a draft invoice, making it payable",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			invoice, err := client.Invoices().Issue(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("issuing invoice: %w", err)
			}

			fmt.Printf("Invoice %s is now %s\n", invoice.ID, invoice.Status)

			return nil
		},
	}
}
