package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vendalink/vendalink/internal/api"
	"github.com/vendalink/vendalink/internal/errors"
	"github.com/vendalink/vendalink/internal/rbac"
	"github.com/vendalink/vendalink/internal/tui"
)

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Manage authentication credentials",
	Long: `Manage authentication credentials for the Vendalink CRM.

Credentials are stored in ~/.vendalink/credentials.json.

Examples:
  vendalink auth login --email user@example.com
  vendalink auth status
  vendalink auth logout`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

// authLoginCmd handles user login
var authLoginCmd = &cobra.Command{
	Use:   "login",
	Short: "Login to the CRM",
	Long: `Login to the Vendalink CRM with your email and password.

With no flags, an interactive form is shown. After logging in, your session
token is saved locally and attached to every request.

Examples:
  vendalink auth login
  vendalink auth login --email user@example.com --password mypass`,
	RunE: func(cmd *cobra.Command, args []string) error {
		email, _ := cmd.Flags().GetString("email")
		password, _ := cmd.Flags().GetString("password")

		a, err := getApp()
		if err != nil {
			return err
		}

		if email == "" || password == "" {
			in, err := tui.PromptForLogin(email)
			if err != nil {
				return err
			}
			email, password = in.Email, in.Password
		}

		user, err := a.store.Login(cmd.Context(), a.client, email, password)
		if err != nil {
			if api.IsUnauthorized(err) {
				return errors.NewInvalidCredentialsError(err)
			}
			return a.wrapAPIError(err)
		}

		fmt.Printf("Logged in as %s (%s)\n", user.Name, user.Role)
		return nil
	},
}

// authLogoutCmd handles user logout
var authLogoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Logout and remove stored credentials",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := getApp()
		if err != nil {
			return err
		}

		if err := a.store.Logout(); err != nil {
			return err
		}

		fmt.Println("Logged out.")
		return nil
	},
}

// authStatusCmd shows current auth status
var authStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show authentication status",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := getApp()
		if err != nil {
			return err
		}

		if err := a.store.Initialize(cmd.Context(), a.client); err != nil {
			return err
		}

		user, ok := a.store.CurrentUser()
		if !ok {
			fmt.Println("Not logged in.")
			fmt.Println("Use 'vendalink auth login' to authenticate.")
			return nil
		}

		perms := rbac.ForUser(user)
		fmt.Println("Logged in")
		fmt.Printf("User ID: %d\n", user.ID)
		fmt.Printf("Name:    %s\n", user.Name)
		fmt.Printf("Email:   %s\n", user.Email)
		fmt.Printf("Role:    %s\n", user.Role)
		if perms.Mutate {
			fmt.Println("Rights:  read/write")
		} else {
			fmt.Println("Rights:  read only")
		}
		return nil
	},
}

// authRegisterCmd registers a new user account
var authRegisterCmd = &cobra.Command{
	Use:   "register",
	Short: "Register a new user account",
	Long: `Register a new user account with the Vendalink CRM.

After registration, you are automatically logged in.

Examples:
  vendalink auth register --name "Jo Silva" --email jo@example.com --password mypass`,
	RunE: func(cmd *cobra.Command, args []string) error {
		name, _ := cmd.Flags().GetString("name")
		email, _ := cmd.Flags().GetString("email")
		password, _ := cmd.Flags().GetString("password")

		if name == "" {
			return errors.NewInputRequiredError("name")
		}
		if email == "" {
			return errors.NewInputRequiredError("email")
		}
		if password == "" {
			return errors.NewInputRequiredError("password")
		}

		a, err := getApp()
		if err != nil {
			return err
		}

		if _, err := a.client.Register(cmd.Context(), name, email, password); err != nil {
			return a.wrapAPIError(err)
		}

		// Registration succeeded; establish the session through the
		// normal login path so persistence works the same way.
		user, err := a.store.Login(cmd.Context(), a.client, email, password)
		if err != nil {
			return fmt.Errorf("registration succeeded but login failed: %w", err)
		}

		fmt.Printf("Registered and logged in as %s\n", user.Name)
		return nil
	},
}

// authForgotPasswordCmd starts a password reset
var authForgotPasswordCmd = &cobra.Command{
	Use:   "forgot-password",
	Short: "Request a password reset email",
	RunE: func(cmd *cobra.Command, args []string) error {
		email, _ := cmd.Flags().GetString("email")
		if email == "" {
			return errors.NewInputRequiredError("email")
		}

		a, err := getApp()
		if err != nil {
			return err
		}

		if err := a.client.ForgotPassword(cmd.Context(), email); err != nil {
			return a.wrapAPIError(err)
		}

		fmt.Printf("Password reset requested for %s. Check your inbox.\n", email)
		return nil
	},
}

// authResetPasswordCmd completes a password reset
var authResetPasswordCmd = &cobra.Command{
	Use:   "reset-password",
	Short: "Reset your password with the emailed code",
	RunE: func(cmd *cobra.Command, args []string) error {
		email, _ := cmd.Flags().GetString("email")
		code, _ := cmd.Flags().GetString("code")
		password, _ := cmd.Flags().GetString("password")

		if email == "" {
			return errors.NewInputRequiredError("email")
		}
		if code == "" {
			return errors.NewInputRequiredError("code")
		}
		if password == "" {
			return errors.NewInputRequiredError("password")
		}

		a, err := getApp()
		if err != nil {
			return err
		}

		if err := a.client.ResetPassword(cmd.Context(), email, code, password); err != nil {
			return a.wrapAPIError(err)
		}

		fmt.Println("Password reset. Use 'vendalink auth login' to sign in.")
		return nil
	},
}

func init() {
	authCmd.AddCommand(authLoginCmd)
	authCmd.AddCommand(authLogoutCmd)
	authCmd.AddCommand(authStatusCmd)
	authCmd.AddCommand(authRegisterCmd)
	authCmd.AddCommand(authForgotPasswordCmd)
	authCmd.AddCommand(authResetPasswordCmd)

	authLoginCmd.Flags().String("email", "", "Email address")
	authLoginCmd.Flags().String("password", "", "Password")

	authRegisterCmd.Flags().String("name", "", "Full name (required)")
	authRegisterCmd.Flags().String("email", "", "Email address (required)")
	authRegisterCmd.Flags().String("password", "", "Password (required)")

	authForgotPasswordCmd.Flags().String("email", "", "Email address (required)")

	authResetPasswordCmd.Flags().String("email", "", "Email address (required)")
	authResetPasswordCmd.Flags().String("code", "", "Reset code from the email (required)")
	authResetPasswordCmd.Flags().String("password", "", "New password (required)")

	rootCmd.AddCommand(authCmd)
}
