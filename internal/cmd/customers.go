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
	"github.com/vendalink/vendalink/internal/tui"
)

const dateLayout = "2006-01-02"

// parseID parses a positional record ID argument
func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.New(errors.ErrCodeInputInvalid, fmt.Sprintf("invalid ID %q: expected a positive number", arg))
	}
	return id, nil
}

// customerRows adapts customers for table output
type customerRows []domain.Customer

func (r customerRows) TableHeader() []string {
	return []string{"ID", "Name", "Email", "Phone", "Converted", "Owner"}
}

func (r customerRows) TableRows() [][]string {
	rows := make([][]string, 0, len(r))
	for _, c := range r {
		rows = append(rows, []string{
			strconv.FormatInt(c.ID, 10),
			c.Name,
			c.Email,
			c.Phone,
			c.ConvertedAt.Format(dateLayout),
			strconv.FormatInt(c.UserID, 10),
		})
	}
	return rows
}

var customersCmd = &cobra.Command{
	Use:     "customers",
	Aliases: []string{"customer"},
	Short:   "Manage customers",
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

var customersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List customers",
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
				{Title: "Email", Width: 28},
				{Title: "Phone", Width: 16},
				{Title: "Converted", Width: 12},
			}
			browser := newResourceBrowser(cmd.Context(), a, "Customers", columns, func(ctx context.Context) ([]table.Row, error) {
				customers, err := a.client.ListCustomers(ctx)
				if err != nil {
					return nil, a.wrapAPIError(err)
				}
				rows := make([]table.Row, 0, len(customers))
				for _, c := range customers {
					rows = append(rows, table.Row{
						strconv.FormatInt(c.ID, 10), c.Name, c.Email, c.Phone, c.ConvertedAt.Format(dateLayout),
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

		customers, err := a.client.ListCustomers(cmd.Context())
		if err != nil {
			return a.wrapAPIError(err)
		}

		f, err := a.formatter()
		if err != nil {
			return err
		}
		return f.Format(customerRows(customers))
	},
}

var customersGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show one customer",
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

		customer, err := a.client.GetCustomer(cmd.Context(), id)
		if err != nil {
			return a.wrapAPIError(err)
		}

		f, err := a.formatter()
		if err != nil {
			return err
		}
		return f.Format(customerRows{*customer})
	},
}

var customersCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a customer",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, user, err := requireAuth(cmd.Context())
		if err != nil {
			return err
		}
		if err := requireMutate(user, "create customer"); err != nil {
			return err
		}

		req, err := customerRequestFromFlags(cmd, user.ID)
		if err != nil {
			return err
		}

		customer, err := a.client.CreateCustomer(cmd.Context(), req)
		if err != nil {
			return a.wrapAPIError(err)
		}

		fmt.Printf("Created customer %d (%s)\n", customer.ID, customer.Name)
		return nil
	},
}

var customersUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a customer",
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
		if err := requireMutate(user, "update customer"); err != nil {
			return err
		}

		req, err := customerRequestFromFlags(cmd, user.ID)
		if err != nil {
			return err
		}

		customer, err := a.client.UpdateCustomer(cmd.Context(), id, req)
		if err != nil {
			return a.wrapAPIError(err)
		}

		fmt.Printf("Updated customer %d (%s)\n", customer.ID, customer.Name)
		return nil
	},
}

var customersDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a customer",
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
		if err := requireMutate(user, "delete customer"); err != nil {
			return err
		}

		if err := confirmDelete(cmd, fmt.Sprintf("Delete customer %d?", id)); err != nil {
			return err
		}

		if err := a.client.DeleteCustomer(cmd.Context(), id); err != nil {
			return a.wrapAPIError(err)
		}

		fmt.Printf("Deleted customer %d\n", id)
		return nil
	},
}

// customerRequestFromFlags builds the request payload from command flags.
// The owning user defaults to the logged-in user.
func customerRequestFromFlags(cmd *cobra.Command, defaultUserID int64) (domain.CustomerRequest, error) {
	name, _ := cmd.Flags().GetString("name")
	email, _ := cmd.Flags().GetString("email")
	phone, _ := cmd.Flags().GetString("phone")
	convertedAt, _ := cmd.Flags().GetString("converted-at")
	userID, _ := cmd.Flags().GetInt64("user-id")

	if name == "" {
		return domain.CustomerRequest{}, errors.NewInputRequiredError("name")
	}
	if email == "" {
		return domain.CustomerRequest{}, errors.NewInputRequiredError("email")
	}
	if userID == 0 {
		userID = defaultUserID
	}

	converted := time.Now()
	if convertedAt != "" {
		t, err := time.Parse(dateLayout, convertedAt)
		if err != nil {
			return domain.CustomerRequest{}, errors.New(errors.ErrCodeInputInvalid,
				fmt.Sprintf("invalid --converted-at %q: expected YYYY-MM-DD", convertedAt))
		}
		converted = t
	}

	return domain.CustomerRequest{
		Name:        name,
		Email:       email,
		Phone:       phone,
		ConvertedAt: converted,
		UserID:      userID,
	}, nil
}

// confirmDelete prompts unless --yes was passed
func confirmDelete(cmd *cobra.Command, message string) error {
	if yes, _ := cmd.Flags().GetBool("yes"); yes {
		return nil
	}
	ok, err := tui.PromptForConfirmation(message, false)
	if err != nil {
		return err
	}
	if !ok {
		return errors.New(errors.ErrCodeInputInvalid, "aborted")
	}
	return nil
}

func init() {
	customersCmd.AddCommand(customersListCmd)
	customersCmd.AddCommand(customersGetCmd)
	customersCmd.AddCommand(customersCreateCmd)
	customersCmd.AddCommand(customersUpdateCmd)
	customersCmd.AddCommand(customersDeleteCmd)

	customersListCmd.Flags().BoolP("interactive", "i", false, "Browse in an interactive table")

	for _, c := range []*cobra.Command{customersCreateCmd, customersUpdateCmd} {
		c.Flags().String("name", "", "Customer name (required)")
		c.Flags().String("email", "", "Customer email (required)")
		c.Flags().String("phone", "", "Customer phone")
		c.Flags().String("converted-at", "", "Conversion date (YYYY-MM-DD, default today)")
		c.Flags().Int64("user-id", 0, "Owning user ID (default: you)")
	}

	customersDeleteCmd.Flags().BoolP("yes", "y", false, "Skip the confirmation prompt")

	rootCmd.AddCommand(customersCmd)
}
