package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/resumepilot/resumepilot/internal/store"
)

var themeCmd = &cobra.Command{
	Use:       "theme [dark|light]",
	Short:     "Show or set the preferred color theme",
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{"dark", "light"},
	Run: func(cmd *cobra.Command, args []string) {
		theme(cmd, args)
	},
}

func init() {
	rootCmd.AddCommand(themeCmd)
}

func theme(_ *cobra.Command, args []string) {
	deps := newAppDeps(context.Background(), false)

	if len(args) == 0 {
		current, err := deps.store.Get(store.KeyTheme)
		if err != nil {
			deps.logger.Fatal("reading theme", zap.Error(err))
		}
		if current == "" {
			current = "light"
		}
		fmt.Println(current)
		return
	}

	choice := args[0]
	if choice != "dark" && choice != "light" {
		deps.logger.Fatal("unknown theme", zap.String("theme", choice))
	}

	if err := deps.store.Set(store.KeyTheme, choice); err != nil {
		deps.logger.Fatal("saving theme", zap.Error(err))
	}
	fmt.Printf("Theme set to %s.\n", choice)
}
