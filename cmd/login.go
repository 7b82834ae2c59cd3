package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/resumepilot/resumepilot/internal/identity"
)

var loginCmd = &cobra.Command{
	Use:   "login [email]",
	Short: "Sign in with an email address to unlock AI-backed actions",
	Long: `Sign in with an email address to unlock AI-backed actions.

The address is stored locally and never verified; it only scopes
the daily usage counter.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(_ *cobra.Command, args []string) {
		login(args)
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Clear the signed-in identity",
	Run: func(_ *cobra.Command, _ []string) {
		logout()
	},
}

func init() {
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
}

func login(args []string) {
	ctx := context.Background()
	deps := newAppDeps(ctx, false)

	email := ""
	if len(args) > 0 {
		email = args[0]
	} else {
		prompt := promptui.Prompt{
			Label: "Email",
			Validate: func(input string) error {
				if !identity.Valid(input) {
					return errors.New("enter a valid email address")
				}
				return nil
			},
		}

		var err error
		if email, err = prompt.Run(); err != nil {
			deps.logger.Fatal("reading email", zap.Error(err))
		}
	}

	fmt.Println("Verifying...")

	if err := deps.identity.SignIn(ctx, email); err != nil {
		deps.logger.Fatal("signing in", zap.Error(err))
	}

	deps.logger.Info("signed in", zap.String("identity", email))
	fmt.Printf("Welcome, %s! You have %d AI actions per day.\n", email, dailyLimit())
}

func logout() {
	deps := newAppDeps(context.Background(), false)

	token, err := deps.identity.Current()
	if err != nil {
		deps.logger.Fatal("reading identity", zap.Error(err))
	}

	if token == "" {
		fmt.Println("Nobody is signed in.")
		return
	}

	if err := deps.identity.SignOut(); err != nil {
		deps.logger.Fatal("signing out", zap.Error(err))
	}

	// Usage counters stay behind: signing back in today resumes the
	// already-spent quota.
	fmt.Printf("Signed out %s.\n", token)
}
