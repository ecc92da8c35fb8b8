package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/ledgerly-io/ledgerly-go/v2/pkg/ledgerly"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// NewCustomersCommand creates the customers command group.
func NewCustomersCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "customers",
		Aliases: []string{"customer"},
		Short:   "Manage customers",
		Long:    "List, inspect, create, and delete Ledgerly customers",
	}

	cmd.AddCommand(newCustomersListCommand())
	cmd.AddCommand(newCustomersGetCommand())
	cmd.AddCommand(newCustomersCreateCommand())
	cmd.AddCommand(newCustomersDeleteCommand())

	return cmd
}

func newCustomersListCommand() *cobra.Command {
	var (
		limit  int
		offset int
		status string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List customers",
		Long:  "List customers registered on the platform",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			params := listParams(limit, offset, map[string]string{"status": status})

			customers, err := client.Customers().List(context.Background(), params)
			if err != nil {
				return fmt.Errorf("listing customers: %w", err)
			}

			handled, err := encodeOutput(customers.Items)
			if handled {
				return err
			}

			if len(customers.Items) == 0 {
				fmt.Println("No customers found")

				return nil
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("ID", "Email", "Name", "Website", "Created")

			for _, item := range customers.Items {
				customer, ok := item.(*ledgerly.Customer)
				if !ok {
					continue
				}

				_ = table.Append(
					customer.ID,
					customer.Email,
					formatValue(customer.FirstName+" "+customer.LastName),
					formatValue(customer.WebsiteID),
					formatTime(customer.CreatedTime),
				)
			}

			if err := table.Render(); err != nil {
				return fmt.Errorf("rendering table: %w", err)
			}

			pageFooter(customers)

			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 0, "page size")
	cmd.Flags().IntVar(&offset, "offset", 0, "page offset")
	cmd.Flags().StringVar(&status, "status", "", "filter by status")

	return cmd
}

func newCustomersGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get CUSTOMER_ID",
		Short: "Get customer details",
		Long:  "Display detailed information about a specific customer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			customer, err := client.Customers().Get(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("getting customer: %w", err)
			}

			handled, err := encodeOutput(customer)
			if handled {
				return err
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("Property", "Value")
			_ = table.Append("ID", customer.ID)
			_ = table.Append("Email", customer.Email)
			_ = table.Append("First Name", formatValue(customer.FirstName))
			_ = table.Append("Last Name", formatValue(customer.LastName))
			_ = table.Append("Website", formatValue(customer.WebsiteID))
			_ = table.Append("Payment Instrument", formatValue(customer.DefaultPaymentInstrument))
			_ = table.Append("Created", formatTime(customer.CreatedTime))
			_ = table.Append("Updated", formatTime(customer.UpdatedTime))

			if err := table.Render(); err != nil {
				return fmt.Errorf("rendering table: %w", err)
			}

			return nil
		},
	}
}

func newCustomersCreateCommand() *cobra.Command {
	var (
		email     string
		firstName string
		lastName  string
		websiteID string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a customer",
		Long:  "Register a new customer on the platform",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			customer, err := client.Customers().Create(context.Background(), &ledgerly.CustomerRequest{
				Email:     email,
				FirstName: firstName,
				LastName:  lastName,
				WebsiteID: websiteID,
			})
			if err != nil {
				return fmt.Errorf("creating customer: %w", err)
			}

			handled, err := encodeOutput(customer)
			if handled {
				return err
			}

			fmt.Printf("Created customer %s\n", customer.ID)

			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "customer email (required)")
	cmd.Flags().StringVar(&firstName, "first-name", "", "first name")
	cmd.Flags().StringVar(&lastName, "last-name", "", "last name")
	cmd.Flags().StringVar(&websiteID, "website", "", "website ID")
	_ = cmd.MarkFlagRequired("email")

	return cmd
}

func newCustomersDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete CUSTOMER_ID",
		Short: "Delete a customer",
		Long:  "Permanently delete a customer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			if err := client.Customers().Delete(context.Background(), args[0]); err != nil {
				return fmt.Errorf("deleting customer: %w", err)
			}

			fmt.Printf("Deleted customer %s\n", args[0])

			return nil
		},
	}
}
