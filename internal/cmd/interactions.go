package cmd

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/table"
	"github.com/spf13/cobra"

	"github.com/vendalink/vendalink/internal/domain"
	"github.com/vendalink/vendalink/internal/errors"
)

// interactionRows adapts interactions for table output
type interactionRows []domain.Interaction

func (r interactionRows) TableHeader() []string {
	return []string{"ID", "Type", "Date", "Lead", "Customer", "Notes"}
}

func (r interactionRows) TableRows() [][]string {
	rows := make([][]string, 0, len(r))
	for _, in := range r {
		rows = append(rows, []string{
			strconv.FormatInt(in.ID, 10),
			in.Type,
			in.Date.Format(dateLayout),
			interactionParty(in.LeadID, in.LeadName),
			interactionParty(in.CustomerID, in.CustomerName),
			in.Notes,
		})
	}
	return rows
}

// interactionParty renders a linked record as "name" falling back to its ID
func interactionParty(id int64, name string) string {
	if name != "" {
		return name
	}
	if id != 0 {
		return "#" + strconv.FormatInt(id, 10)
	}
	return ""
}

var interactionsCmd = &cobra.Command{
	Use:     "interactions",
	Aliases: []string{"interaction"},
	Short:   "Manage interactions",
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

var interactionsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List interactions",
	RunE: func(cmd *cobra.Command, args []string) error {
		interactive, _ := cmd.Flags().GetBool("interactive")

		if interactive {
			a, err := getApp()
			if err != nil {
				return err
			}
			columns := []table.Column{
				{Title: "ID", Width: 6},
				{Title: "Type", Width: 12},
				{Title: "Date", Width: 12},
				{Title: "Lead", Width: 20},
				{Title: "Customer", Width: 20},
			}
			browser := newResourceBrowser(cmd.Context(), a, "Interactions", columns, func(ctx context.Context) ([]table.Row, error) {
				interactions, err := a.client.ListInteractions(ctx)
				if err != nil {
					return nil, a.wrapAPIError(err)
				}
				rows := make([]table.Row, 0, len(interactions))
				for _, in := range interactions {
					rows = append(rows, table.Row{
						strconv.FormatInt(in.ID, 10),
						in.Type,
						in.Date.Format(dateLayout),
						interactionParty(in.LeadID, in.LeadName),
						interactionParty(in.CustomerID, in.CustomerName),
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

		interactions, err := a.client.ListInteractions(cmd.Context())
		if err != nil {
			return a.wrapAPIError(err)
		}

		f, err := a.formatter()
		if err != nil {
			return err
		}
		return f.Format(interactionRows(interactions))
	},
}

var interactionsGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show one interaction",
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

		interaction, err := a.client.GetInteraction(cmd.Context(), id)
		if err != nil {
			return a.wrapAPIError(err)
		}

		f, err := a.formatter()
		if err != nil {
			return err
		}
		return f.Format(interactionRows{*interaction})
	},
}

var interactionsCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Log an interaction",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, user, err := requireAuth(cmd.Context())
		if err != nil {
			return err
		}
		if err := requireMutate(user, "create interaction"); err != nil {
			return err
		}

		req, err := interactionRequestFromFlags(cmd)
		if err != nil {
			return err
		}

		interaction, err := a.client.CreateInteraction(cmd.Context(), req)
		if err != nil {
			return a.wrapAPIError(err)
		}

		fmt.Printf("Logged interaction %d (%s)\n", interaction.ID, interaction.Type)
		return nil
	},
}

var interactionsUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update an interaction",
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
		if err := requireMutate(user, "update interaction"); err != nil {
			return err
		}

		req, err := interactionRequestFromFlags(cmd)
		if err != nil {
			return err
		}

		interaction, err := a.client.UpdateInteraction(cmd.Context(), id, req)
		if err != nil {
			return a.wrapAPIError(err)
		}

		fmt.Printf("Updated interaction %d (%s)\n", interaction.ID, interaction.Type)
		return nil
	},
}

var interactionsDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete an interaction",
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
		if err := requireMutate(user, "delete interaction"); err != nil {
			return err
		}

		if err := confirmDelete(cmd, fmt.Sprintf("Delete interaction %d?", id)); err != nil {
			return err
		}

		if err := a.client.DeleteInteraction(cmd.Context(), id); err != nil {
			return a.wrapAPIError(err)
		}

		fmt.Printf("Deleted interaction %d\n", id)
		return nil
	},
}

func interactionRequestFromFlags(cmd *cobra.Command) (domain.InteractionRequest, error) {
	kind, _ := cmd.Flags().GetString("type")
	notes, _ := cmd.Flags().GetString("notes")
	date, _ := cmd.Flags().GetString("date")
	leadID, _ := cmd.Flags().GetInt64("lead-id")
	customerID, _ := cmd.Flags().GetInt64("customer-id")

	if kind == "" {
		return domain.InteractionRequest{}, errors.NewInputRequiredError("type")
	}
	if leadID == 0 && customerID == 0 {
		return domain.InteractionRequest{}, errors.New(errors.ErrCodeInputRequired,
			"an interaction needs --lead-id or --customer-id")
	}

	when := time.Now()
	if date != "" {
		t, err := time.Parse(dateLayout, date)
		if err != nil {
			return domain.InteractionRequest{}, errors.New(errors.ErrCodeInputInvalid,
				fmt.Sprintf("invalid --date %q: expected YYYY-MM-DD", date))
		}
		when = t
	}

	return domain.InteractionRequest{
		Type:       kind,
		Notes:      notes,
		Date:       when,
		LeadID:     leadID,
		CustomerID: customerID,
	}, nil
}

func init() {
	interactionsCmd.AddCommand(interactionsListCmd)
	interactionsCmd.AddCommand(interactionsGetCmd)
	interactionsCmd.AddCommand(interactionsCreateCmd)
	interactionsCmd.AddCommand(interactionsUpdateCmd)
	interactionsCmd.AddCommand(interactionsDeleteCmd)

	interactionsListCmd.Flags().BoolP("interactive", "i", false, "Browse in an interactive table")

	for _, c := range []*cobra.Command{interactionsCreateCmd, interactionsUpdateCmd} {
		c.Flags().String("type", "", "Interaction type, e.g. call, meeting, email (required)")
		c.Flags().String("notes", "", "Free-form notes")
		c.Flags().String("date", "", "Date (YYYY-MM-DD, default today)")
		c.Flags().Int64("lead-id", 0, "Linked lead ID")
		c.Flags().Int64("customer-id", 0, "Linked customer ID")
	}

	interactionsDeleteCmd.Flags().BoolP("yes", "y", false, "Skip the confirmation prompt")

	rootCmd.AddCommand(interactionsCmd)
}
