package cmd

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/resumepilot/resumepilot/internal/usage"
)

var usageCmd = &cobra.Command{
	Use:   "usage",
	Short: "Show today's AI action usage for the signed-in identity",
	Run: func(_ *cobra.Command, _ []string) {
		showUsage()
	},
}

func init() {
	rootCmd.AddCommand(usageCmd)
}

func dailyLimit() int {
	return usage.DailyLimit
}

func showUsage() {
	deps := newAppDeps(context.Background(), false)

	token, err := deps.identity.Current()
	if err != nil {
		deps.logger.Fatal("reading identity", zap.Error(err))
	}

	if token == "" {
		fmt.Printf("Nobody is signed in. Run `%s login <email>` first.\n", app)
		return
	}

	count, err := deps.gate.Count(token)
	if err != nil {
		deps.logger.Fatal("reading usage", zap.Error(err))
	}

	left := usage.DailyLimit - count
	if left < 0 {
		left = 0
	}

	fmt.Printf("%s: ", token)
	if left == 0 {
		color.New(color.FgRed).Printf("%d/%d", count, usage.DailyLimit)
	} else {
		color.New(color.FgGreen).Printf("%d/%d", count, usage.DailyLimit)
	}
	fmt.Println(" AI actions used today.")
}
