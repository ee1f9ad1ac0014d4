package tui

import (
	"fmt"

	"github.com/charmbracelet/huh"
)

// LoginInput holds the values captured by the login form
type LoginInput struct {
	Email    string
	Password string
}

// PromptForLogin displays the interactive login form. Used when the login
// command is invoked without --email/--password flags.
func PromptForLogin(defaultEmail string) (LoginInput, error) {
	in := LoginInput{Email: defaultEmail}

	form := huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Title("Email").
			Placeholder("user@example.com").
			Value(&in.Email).
			Validate(func(s string) error {
				if s == "" {
					return fmt.Errorf("email is required")
				}
				return nil
			}),
		huh.NewInput().
			Title("Password").
			EchoMode(huh.EchoModePassword).
			Value(&in.Password).
			Validate(func(s string) error {
				if s == "" {
					return fmt.Errorf("password is required")
				}
				return nil
			}),
	))

	if err := form.Run(); err != nil {
		return LoginInput{}, fmt.Errorf("login prompt failed: %w", err)
	}

	return in, nil
}

// PromptForConfirmation displays a yes/no confirmation prompt
func PromptForConfirmation(message string, defaultValue bool) (bool, error) {
	confirmed := defaultValue

	confirm := huh.NewConfirm().
		Title(message).
		Value(&confirmed)

	form := huh.NewForm(huh.NewGroup(confirm))

	if err := form.Run(); err != nil {
		return false, fmt.Errorf("prompt failed: %w", err)
	}

	return confirmed, nil
}

// PromptForString displays a single-value input prompt
func PromptForString(title, placeholder string, required bool) (string, error) {
	var value string

	input := huh.NewInput().
		Title(title).
		Placeholder(placeholder).
		Value(&value)

	form := huh.NewForm(huh.NewGroup(input))

	if err := form.Run(); err != nil {
		return "", fmt.Errorf("prompt failed: %w", err)
	}

	if required && value == "" {
		return "", fmt.Errorf("value is required")
	}

	return value, nil
}
