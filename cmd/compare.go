package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/resumepilot/resumepilot/internal/intake"
)

var compareCmd = &cobra.Command{
	Use:   "compare <resume-a> <resume-b>",
	Short: "Compare two resumes side by side",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		compare(cmd, args)
	},
}

func init() {
	rootCmd.AddCommand(compareCmd)

	compareCmd.Flags().StringP("context", "c", "", "role or context the comparison should focus on")
}

func compare(cmd *cobra.Command, args []string) {
	ctx := context.Background()
	deps := newAppDeps(ctx, true)

	resumeA, err := intake.Read(args[0])
	if err != nil {
		deps.logger.Fatal("reading resume A", zap.Error(err))
	}

	resumeB, err := intake.Read(args[1])
	if err != nil {
		deps.logger.Fatal("reading resume B", zap.Error(err))
	}

	roleContext, _ := cmd.Flags().GetString("context")

	if _, ok := deps.passGate(); !ok {
		return
	}

	fmt.Println("Comparing resumes...")

	result, err := deps.assistant.CompareResumes(ctx, resumeA, resumeB, roleContext)
	if err != nil {
		deps.logger.Error("comparison failed", zap.Error(err))
		fmt.Printf("Comparison failed: %v\nRe-run to try again (this will use another daily action).\n", err)
		return
	}

	renderComparison(resumeA.Name, resumeB.Name, result)
}
