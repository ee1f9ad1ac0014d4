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

// userRows adapts user accounts for table output. Passwords are write-only
// and never appear in any output path.
type userRows []domain.User

func (r userRows) TableHeader() []string {
	return []string{"ID", "Name", "Email", "Role"}
}

func (r userRows) TableRows() [][]string {
	rows := make([][]string, 0, len(r))
	for _, u := range r {
		rows = append(rows, []string{
			strconv.FormatInt(u.ID, 10),
			u.Name,
			u.Email,
			u.Role.String(),
		})
	}
	return rows
}

var usersCmd = &cobra.Command{
	Use:     "users",
	Aliases: []string{"user"},
	Short:   "Manage user accounts",
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

var usersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List user accounts",
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
				{Title: "Role", Width: 12},
			}
			browser := newResourceBrowser(cmd.Context(), a, "Users", columns, func(ctx context.Context) ([]table.Row, error) {
				users, err := a.client.ListUsers(ctx)
				if err != nil {
					return nil, a.wrapAPIError(err)
				}
				rows := make([]table.Row, 0, len(users))
				for _, u := range users {
					rows = append(rows, table.Row{
						strconv.FormatInt(u.ID, 10), u.Name, u.Email, u.Role.String(),
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

		users, err := a.client.ListUsers(cmd.Context())
		if err != nil {
			return a.wrapAPIError(err)
		}

		// Never echo password fields, whatever the backend sends.
		for i := range users {
			users[i].Password = ""
		}

		f, err := a.formatter()
		if err != nil {
			return err
		}
		return f.Format(userRows(users))
	},
}

var usersGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show one user account",
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

		user, err := a.client.GetUser(cmd.Context(), id)
		if err != nil {
			return a.wrapAPIError(err)
		}
		user.Password = ""

		f, err := a.formatter()
		if err != nil {
			return err
		}
		return f.Format(userRows{*user})
	},
}

var usersCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a user account",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, current, err := requireAuth(cmd.Context())
		if err != nil {
			return err
		}
		if err := requireMutate(current, "create user"); err != nil {
			return err
		}

		user, err := userFromFlags(cmd, true)
		if err != nil {
			return err
		}

		created, err := a.client.CreateUser(cmd.Context(), user)
		if err != nil {
			return a.wrapAPIError(err)
		}

		fmt.Printf("Created user %d (%s, %s)\n", created.ID, created.Name, created.Role)
		return nil
	},
}

var usersUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a user account",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		a, current, err := requireAuth(cmd.Context())
		if err != nil {
			return err
		}
		if err := requireMutate(current, "update user"); err != nil {
			return err
		}

		user, err := userFromFlags(cmd, false)
		if err != nil {
			return err
		}

		updated, err := a.client.UpdateUser(cmd.Context(), id, user)
		if err != nil {
			return a.wrapAPIError(err)
		}

		fmt.Printf("Updated user %d (%s, %s)\n", updated.ID, updated.Name, updated.Role)
		return nil
	},
}

var usersDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a user account",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		a, current, err := requireAuth(cmd.Context())
		if err != nil {
			return err
		}
		if err := requireMutate(current, "delete user"); err != nil {
			return err
		}

		if err := confirmDelete(cmd, fmt.Sprintf("Delete user %d?", id)); err != nil {
			return err
		}

		if err := a.client.DeleteUser(cmd.Context(), id); err != nil {
			return a.wrapAPIError(err)
		}

		fmt.Printf("Deleted user %d\n", id)
		return nil
	},
}

// userFromFlags builds a user payload from flags. Password is required when
// creating, optional (keep current) when updating.
func userFromFlags(cmd *cobra.Command, passwordRequired bool) (domain.User, error) {
	name, _ := cmd.Flags().GetString("name")
	email, _ := cmd.Flags().GetString("email")
	password, _ := cmd.Flags().GetString("password")
	roleValue, _ := cmd.Flags().GetInt("role")

	if name == "" {
		return domain.User{}, errors.NewInputRequiredError("name")
	}
	if email == "" {
		return domain.User{}, errors.NewInputRequiredError("email")
	}
	if passwordRequired && password == "" {
		return domain.User{}, errors.NewInputRequiredError("password")
	}

	role, err := domain.NewRole(roleValue)
	if err != nil {
		return domain.User{}, errors.New(errors.ErrCodeInputInvalid, err.Error())
	}

	return domain.User{
		Name:     name,
		Email:    email,
		Role:     role,
		Password: password,
	}, nil
}

func init() {
	usersCmd.AddCommand(usersListCmd)
	usersCmd.AddCommand(usersGetCmd)
	usersCmd.AddCommand(usersCreateCmd)
	usersCmd.AddCommand(usersUpdateCmd)
	usersCmd.AddCommand(usersDeleteCmd)

	usersListCmd.Flags().BoolP("interactive", "i", false, "Browse in an interactive table")

	for _, c := range []*cobra.Command{usersCreateCmd, usersUpdateCmd} {
		c.Flags().String("name", "", "Full name (required)")
		c.Flags().String("email", "", "Email address (required)")
		c.Flags().String("password", "", "Password (required on create)")
		c.Flags().Int("role", 2, "Role: 1 admin, 2 user, 3 developer")
	}

	usersDeleteCmd.Flags().BoolP("yes", "y", false, "Skip the confirmation prompt")

	rootCmd.AddCommand(usersCmd)
}
