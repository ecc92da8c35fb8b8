package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/ledgerly-io/ledgerly-go/v2/pkg/ledgerly"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// NewTransactionsCommand creates the transactions command group.
func NewTransactionsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "transactions",
		Aliases: []string{"transaction", "txns"},
		Short:   "Browse transactions",
		Long:    "List and inspect Ledgerly payment transactions",
	}

	cmd.AddCommand(newTransactionsListCommand())
	cmd.AddCommand(newTransactionsGetCommand())

	return cmd
}

func newTransactionsListCommand() *cobra.Command {
	var (
		limit      int
		offset     int
		result     string
		customerID string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List transactions",
		Long:  "List transactions, optionally filtered by customer or result",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			params := listParams(limit, offset, map[string]string{
				"result":     result,
				"customerId": customerID,
			})

			transactions, err := client.Transactions().List(context.Background(), params)
			if err != nil {
				return fmt.Errorf("listing transactions: %w", err)
			}

			handled, err := encodeOutput(transactions.Items)
			if handled {
				return err
			}

			if len(transactions.Items) == 0 {
				fmt.Println("No transactions found")

				return nil
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("ID", "Customer", "Type", "Result", "Amount", "Gateway")

			for _, item := range transactions.Items {
				transaction, ok := item.(*ledgerly.Transaction)
				if !ok {
					continue
				}

				_ = table.Append(
					transaction.ID,
					transaction.CustomerID,
					transaction.Type,
					transaction.Result,
					formatAmount(transaction.Amount, transaction.Currency),
					formatValue(transaction.GatewayName),
				)
			}

			if err := table.Render(); err != nil {
				return fmt.Errorf("rendering table: %w", err)
			}

			pageFooter(transactions)

			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 0, "page size")
	cmd.Flags().IntVar(&offset, "offset", 0, "page offset")
	cmd.Flags().StringVar(&result, "result", "", "filter by result")
	cmd.Flags().StringVar(&customerID, "customer", "", "filter by customer ID")

	return cmd
}

func newTransactionsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get TRANSACTION_ID",
		Short: "Get transaction details",
		Long:  "Display detailed information about a specific transaction",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			transaction, err := client.Transactions().Get(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("getting transaction: %w", err)
			}

			handled, err := encodeOutput(transaction)
			if handled {
				return err
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("Property", "Value")
			_ = table.Append("ID", transaction.ID)
			_ = table.Append("Customer", transaction.CustomerID)
			_ = table.Append("Invoice", formatValue(transaction.InvoiceID))
			_ = table.Append("Type", transaction.Type)
			_ = table.Append("Status", transaction.Status)
			_ = table.Append("Result", transaction.Result)
			_ = table.Append("Amount", formatAmount(transaction.Amount, transaction.Currency))
			_ = table.Append("Instrument", formatValue(transaction.PaymentInstrument))
			_ = table.Append("Gateway", formatValue(transaction.GatewayName))
			_ = table.Append("Created", formatTime(transaction.CreatedTime))

			if err := table.Render(); err != nil {
				return fmt.Errorf("rendering table: %w", err)
			}

			return nil
		},
	}
}
