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

// leadRows adapts leads for table output
type leadRows []domain.Lead

func (r leadRows) TableHeader() []string {
	return []string{"ID", "Name", "Email", "Status", "Source", "Created", "Owner"}
}

func (r leadRows) TableRows() [][]string {
	rows := make([][]string, 0, len(r))
	for _, l := range r {
		rows = append(rows, []string{
			strconv.FormatInt(l.ID, 10),
			l.Name,
			l.Email,
			l.Status.String(),
			string(l.Source),
			l.CreatedAt.Format(dateLayout),
			strconv.FormatInt(l.UserID, 10),
		})
	}
	return rows
}

var leadsCmd = &cobra.Command{
	Use:     "leads",
	Aliases: []string{"lead"},
	Short:   "Manage leads",
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

var leadsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List leads",
	RunE: func(cmd *cobra.Command, args []string) error {
		interactive, _ := cmd.Flags().GetBool("interactive")

		if interactive {
			a, err := getApp()
			if err != nil {
				return err
			}
			columns := []table.Column{
				{Title: "ID", Width: 6},
				{Title: "Name", Width: 24},
				{Title: "Status", Width: 12},
				{Title: "Source", Width: 12},
				{Title: "Created", Width: 12},
			}
			browser := newResourceBrowser(cmd.Context(), a, "Leads", columns, func(ctx context.Context) ([]table.Row, error) {
				leads, err := a.client.ListLeads(ctx)
				if err != nil {
					return nil, a.wrapAPIError(err)
				}
				rows := make([]table.Row, 0, len(leads))
				for _, l := range leads {
					rows = append(rows, table.Row{
						strconv.FormatInt(l.ID, 10), l.Name, l.Status.String(), string(l.Source), l.CreatedAt.Format(dateLayout),
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

		leads, err := a.client.ListLeads(cmd.Context())
		if err != nil {
			return a.wrapAPIError(err)
		}

		f, err := a.formatter()
		if err != nil {
			return err
		}
		return f.Format(leadRows(leads))
	},
}

var leadsGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show one lead",
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

		lead, err := a.client.GetLead(cmd.Context(), id)
		if err != nil {
			return a.wrapAPIError(err)
		}

		f, err := a.formatter()
		if err != nil {
			return err
		}
		return f.Format(leadRows{*lead})
	},
}

var leadsCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a lead",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, user, err := requireAuth(cmd.Context())
		if err != nil {
			return err
		}
		if err := requireMutate(user, "create lead"); err != nil {
			return err
		}

		req, err := leadRequestFromFlags(cmd, user.ID)
		if err != nil {
			return err
		}

		lead, err := a.client.CreateLead(cmd.Context(), req)
		if err != nil {
			return a.wrapAPIError(err)
		}

		fmt.Printf("Created lead %d (%s)\n", lead.ID, lead.Name)
		return nil
	},
}

var leadsUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a lead",
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
		if err := requireMutate(user, "update lead"); err != nil {
			return err
		}

		req, err := leadRequestFromFlags(cmd, user.ID)
		if err != nil {
			return err
		}

		lead, err := a.client.UpdateLead(cmd.Context(), id, req)
		if err != nil {
			return a.wrapAPIError(err)
		}

		fmt.Printf("Updated lead %d (%s)\n", lead.ID, lead.Name)
		return nil
	},
}

var leadsDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a lead",
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
		if err := requireMutate(user, "delete lead"); err != nil {
			return err
		}

		if err := confirmDelete(cmd, fmt.Sprintf("Delete lead %d?", id)); err != nil {
			return err
		}

		if err := a.client.DeleteLead(cmd.Context(), id); err != nil {
			return a.wrapAPIError(err)
		}

		fmt.Printf("Deleted lead %d\n", id)
		return nil
	},
}

func leadRequestFromFlags(cmd *cobra.Command, defaultUserID int64) (domain.LeadRequest, error) {
	name, _ := cmd.Flags().GetString("name")
	email, _ := cmd.Flags().GetString("email")
	phone, _ := cmd.Flags().GetString("phone")
	source, _ := cmd.Flags().GetString("source")
	status, _ := cmd.Flags().GetString("status")
	userID, _ := cmd.Flags().GetInt64("user-id")
	customerID, _ := cmd.Flags().GetInt64("customer-id")

	if name == "" {
		return domain.LeadRequest{}, errors.NewInputRequiredError("name")
	}
	if userID == 0 {
		userID = defaultUserID
	}

	leadStatus := domain.LeadStatusNew
	if status != "" {
		s, err := domain.NewLeadStatus(status)
		if err != nil {
			return domain.LeadRequest{}, errors.New(errors.ErrCodeInputInvalid, err.Error())
		}
		leadStatus = s
	}

	return domain.LeadRequest{
		Name:       name,
		Email:      email,
		Phone:      phone,
		Source:     domain.LeadSource(source),
		Status:     leadStatus,
		UserID:     userID,
		CustomerID: customerID,
	}, nil
}

func init() {
	leadsCmd.AddCommand(leadsListCmd)
	leadsCmd.AddCommand(leadsGetCmd)
	leadsCmd.AddCommand(leadsCreateCmd)
	leadsCmd.AddCommand(leadsUpdateCmd)
	leadsCmd.AddCommand(leadsDeleteCmd)

	leadsListCmd.Flags().BoolP("interactive", "i", false, "Browse in an interactive table")

	for _, c := range []*cobra.Command{leadsCreateCmd, leadsUpdateCmd} {
		c.Flags().String("name", "", "Lead name (required)")
		c.Flags().String("email", "", "Lead email")
		c.Flags().String("phone", "", "Lead phone")
		c.Flags().String("source", "", "Acquisition source")
		c.Flags().String("status", "", "Status: New, Contacted, Qualified, Lost, Converted (default New)")
		c.Flags().Int64("user-id", 0, "Owning user ID (default: you)")
		c.Flags().Int64("customer-id", 0, "Linked customer ID")
	}

	leadsDeleteCmd.Flags().BoolP("yes", "y", false, "Skip the confirmation prompt")

	rootCmd.AddCommand(leadsCmd)
}
