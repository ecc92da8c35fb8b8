package commands

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/ledgerly-io/ledgerly-go/v2/pkg/ledgerly"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// NewPlansCommand creates the plans command group.
func NewPlansCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "plans",
		Aliases: []string{"plan"},
		Short:   "Manage plans",
		Long:    "List, inspect, and create Ledgerly billing plans",
	}

	cmd.AddCommand(newPlansListCommand())
	cmd.AddCommand(newPlansGetCommand())
	cmd.AddCommand(newPlansCreateCommand())

	return cmd
}

func newPlansListCommand() *cobra.Command {
	var (
		limit  int
		offset int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List plans",
		Long:  "List billing plans",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			plans, err := client.Plans().List(context.Background(), listParams(limit, offset, nil))
			if err != nil {
				return fmt.Errorf("listing plans: %w", err)
			}

			handled, err := encodeOutput(plans.Items)
			if handled {
				return err
			}

			if len(plans.Items) == 0 {
				fmt.Println("No plans found")

				return nil
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("ID", "Name", "Price", "Interval", "Trial Days")

			for _, item := range plans.Items {
				plan, ok := item.(*ledgerly.Plan)
				if !ok {
					continue
				}

				interval := fmt.Sprintf("%d %s", plan.IntervalLength, plan.IntervalUnit)

				_ = table.Append(
					plan.ID,
					plan.Name,
					formatAmount(plan.Amount, plan.Currency),
					interval,
					strconv.Itoa(plan.TrialPeriodDays),
				)
			}

			if err := table.Render(); err != nil {
				return fmt.Errorf("rendering table: %w", err)
			}

			pageFooter(plans)

			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 0, "page size")
	cmd.Flags().IntVar(&offset, "offset", 0, "page offset")

	return cmd
}

func newPlansCreateCommand() *cobra.Command {
	var (
		name           string
		currency       string
		amount         int64
		intervalUnit   string
		intervalLength int
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a plan",
		Long:  "Create a new billing plan",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			plan, err := client.Plans().Create(context.Background(), &ledgerly.PlanRequest{
				Name:           name,
				Currency:       currency,
				Amount:         amount,
				IntervalUnit:   intervalUnit,
				IntervalLength: intervalLength,
			})
			if err != nil {
				return fmt.Errorf("creating plan: %w", err)
			}

			handled, err := encodeOutput(plan)
			if handled {
				return err
			}

			fmt.Printf("Created plan %s\n", plan.ID)

			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "plan name (required)")
	cmd.Flags().StringVar(&currency, "currency", "", "ISO currency code (required)")
	cmd.Flags().Int64Var(&amount, "amount", 0, "price in minor units (required)")
	cmd.Flags().StringVar(&intervalUnit, "interval-unit", "month", "billing interval unit")
	cmd.Flags().IntVar(&intervalLength, "interval-length", 1, "billing interval length")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("currency")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}

func newPlansGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get PLAN_ID",
		Short: "Get plan details",
		Long:  "Display detailed information about a specific plan",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			plan, err := client.Plans().Get(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("getting plan: %w", err)
			}

			handled, err := encodeOutput(plan)
			if handled {
				return err
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("Property", "Value")
			_ = table.Append("ID", plan.ID)
			_ = table.Append("Name", plan.Name)
			_ = table.Append("Price", formatAmount(plan.Amount, plan.Currency))
			_ = table.Append("Interval", fmt.Sprintf("%d %s", plan.IntervalLength, plan.IntervalUnit))
			_ = table.Append("Trial Days", strconv.Itoa(plan.TrialPeriodDays))
			_ = table.Append("Setup Fee", formatAmount(plan.SetupFee, plan.Currency))
			_ = table.Append("Created", formatTime(plan.CreatedTime))

			if err := table.Render(); err != nil {
				return fmt.Errorf("rendering table: %w", err)
			}

			return nil
		},
	}
}
