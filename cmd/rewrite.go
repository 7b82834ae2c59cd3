package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var rewriteCmd = &cobra.Command{
	Use:   "rewrite [draft...]",
	Short: "Rewrite a rough job description draft into a professional one",
	Run: func(cmd *cobra.Command, args []string) {
		rewrite(cmd, args)
	},
}

func init() {
	rootCmd.AddCommand(rewriteCmd)

	rewriteCmd.Flags().StringP("file", "f", "", "read the draft from a text file")
}

func rewrite(cmd *cobra.Command, args []string) {
	ctx := context.Background()
	deps := newAppDeps(ctx, true)

	draft := strings.Join(args, " ")
	if file, _ := cmd.Flags().GetString("file"); file != "" {
		raw, err := os.ReadFile(file)
		if err != nil {
			deps.logger.Fatal("reading draft", zap.Error(err))
		}
		draft = string(raw)
	}

	if strings.TrimSpace(draft) == "" {
		deps.logger.Fatal("a draft is required", zap.String("hint", "pass the draft as arguments or via --file"))
	}

	if _, ok := deps.passGate(); !ok {
		return
	}

	rewritten, err := deps.assistant.RewriteJobDescription(ctx, draft)
	if err != nil {
		deps.logger.Error("rewrite failed", zap.Error(err))
		fmt.Printf("Rewrite failed: %v\nRe-run to try again (this will use another daily action).\n", err)
		return
	}

	fmt.Println(rewritten)
}
