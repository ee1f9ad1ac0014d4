package cmd

import (
	"context"
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/table"
	"github.com/spf13/cobra"

	"github.com/vendalink/vendalink/internal/domain"
	"github.com/vendalink/vendalink/internal/errors"
)

// dealRows adapts deals for table output
type dealRows []domain.Deal

func (r dealRows) TableHeader() []string {
	return []string{"ID", "Title", "Value", "Stage", "Created", "Customer"}
}

func (r dealRows) TableRows() [][]string {
	rows := make([][]string, 0, len(r))
	for _, d := range r {
		rows = append(rows, []string{
			strconv.FormatInt(d.ID, 10),
			d.Title,
			formatMoney(d.Value),
			d.Stage.String(),
			d.CreatedAt.Format(dateLayout),
			strconv.FormatInt(d.CustomerID, 10),
		})
	}
	return rows
}

// formatMoney renders a deal value for table cells
func formatMoney(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

var dealsCmd = &cobra.Command{
	Use:     "deals",
	Aliases: []string{"deal"},
	Short:   "Manage deals",
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

var dealsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List deals",
	RunE: func(cmd *cobra.Command, args []string) error {
		interactive, _ := cmd.Flags().GetBool("interactive")

		if interactive {
			a, err := getApp()
			if err != nil {
				return err
			}
			columns := []table.Column{
				{Title: "ID", Width: 6},
				{Title: "Title", Width: 28},
				{Title: "Value", Width: 12},
				{Title: "Stage", Width: 14},
				{Title: "Created", Width: 12},
			}
			browser := newResourceBrowser(cmd.Context(), a, "Deals", columns, func(ctx context.Context) ([]table.Row, error) {
				deals, err := a.client.ListDeals(ctx)
				if err != nil {
					return nil, a.wrapAPIError(err)
				}
				rows := make([]table.Row, 0, len(deals))
				for _, d := range deals {
					rows = append(rows, table.Row{
						strconv.FormatInt(d.ID, 10), d.Title, formatMoney(d.Value), d.Stage.String(), d.CreatedAt.Format(dateLayout),
					})
				}
				return rows, nil
			})
			return browser.Run()
		}

		a, _, err := requireAuth(cmd.Context())
		if err != nil {
			return err
		}

		deals, err := a.client.ListDeals(cmd.Context())
		if err != nil {
			return a.wrapAPIError(err)
		}

		f, err := a.formatter()
		if err != nil {
			return err
		}
		return f.Format(dealRows(deals))
	},
}

var dealsGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show one deal",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		a, _, err := requireAuth(cmd.Context())
		if err != nil {
			return err
		}

		deal, err := a.client.GetDeal(cmd.Context(), id)
		if err != nil {
			return a.wrapAPIError(err)
		}

		f, err := a.formatter()
		if err != nil {
			return err
		}
		return f.Format(dealRows{*deal})
	},
}

var dealsCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a deal",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, user, err := requireAuth(cmd.Context())
		if err != nil {
			return err
		}
		if err := requireMutate(user, "create deal"); err != nil {
			return err
		}

		req, err := dealRequestFromFlags(cmd)
		if err != nil {
			return err
		}

		deal, err := a.client.CreateDeal(cmd.Context(), req)
		if err != nil {
			return a.wrapAPIError(err)
		}

		fmt.Printf("Created deal %d (%s)\n", deal.ID, deal.Title)
		return nil
	},
}

var dealsUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a deal",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		a, user, err := requireAuth(cmd.Context())
		if err != nil {
			return err
		}
		if err := requireMutate(user, "update deal"); err != nil {
			return err
		}

		req, err := dealRequestFromFlags(cmd)
		if err != nil {
			return err
		}

		deal, err := a.client.UpdateDeal(cmd.Context(), id, req)
		if err != nil {
			return a.wrapAPIError(err)
		}

		fmt.Printf("Updated deal %d (%s)\n", deal.ID, deal.Title)
		return nil
	},
}

var dealsDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a deal",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		a, user, err := requireAuth(cmd.Context())
		if err != nil {
			return err
		}
		if err := requireMutate(user, "delete deal"); err != nil {
			return err
		}

		if err := confirmDelete(cmd, fmt.Sprintf("Delete deal %d?", id)); err != nil {
			return err
		}

		if err := a.client.DeleteDeal(cmd.Context(), id); err != nil {
			return a.wrapAPIError(err)
		}

		fmt.Printf("Deleted deal %d\n", id)
		return nil
	},
}

func dealRequestFromFlags(cmd *cobra.Command) (domain.DealRequest, error) {
	title, _ := cmd.Flags().GetString("title")
	value, _ := cmd.Flags().GetFloat64("value")
	stage, _ := cmd.Flags().GetString("stage")
	customerID, _ := cmd.Flags().GetInt64("customer-id")
	leadID, _ := cmd.Flags().GetInt64("lead-id")

	if title == "" {
		return domain.DealRequest{}, errors.NewInputRequiredError("title")
	}
	if customerID == 0 {
		return domain.DealRequest{}, errors.NewInputRequiredError("customer-id")
	}

	dealStage := domain.DealStageNew
	if stage != "" {
		s, err := domain.NewDealStage(stage)
		if err != nil {
			return domain.DealRequest{}, errors.New(errors.ErrCodeInputInvalid, err.Error())
		}
		dealStage = s
	}

	return domain.DealRequest{
		Title:      title,
		Value:      value,
		Stage:      dealStage,
		CustomerID: customerID,
		LeadID:     leadID,
	}, nil
}

func init() {
	dealsCmd.AddCommand(dealsListCmd)
	dealsCmd.AddCommand(dealsGetCmd)
	dealsCmd.AddCommand(dealsCreateCmd)
	dealsCmd.AddCommand(dealsUpdateCmd)
	dealsCmd.AddCommand(dealsDeleteCmd)

	dealsListCmd.Flags().BoolP("interactive", "i", false, "Browse in an interactive table")

	for _, c := range []*cobra.Command{dealsCreateCmd, dealsUpdateCmd} {
		c.Flags().String("title", "", "Deal title (required)")
		c.Flags().Float64("value", 0, "Deal value")
		c.Flags().String("stage", "", "Stage: New, Negotiation, ProposalSent, ClosedWon, ClosedLost (default New)")
		c.Flags().Int64("customer-id", 0, "Customer ID (required)")
		c.Flags().Int64("lead-id", 0, "Originating lead ID")
	}

	dealsDeleteCmd.Flags().BoolP("yes", "y", false, "Skip the confirmation prompt")

	rootCmd.AddCommand(dealsCmd)
}
