package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/resumepilot/resumepilot/internal/ai"
)

var polishCmd = &cobra.Command{
	Use:   "polish <profile.json>",
	Short: "Polish a resume profile into professional resume content",
	Long: `Polish a resume profile into professional resume content.

The input is a JSON resume profile (contact fields plus education,
experience, projects, awards, certifications and social links). The
polished profile is written to --out, or printed to stdout.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		polish(cmd, args)
	},
}

func init() {
	rootCmd.AddCommand(polishCmd)

	polishCmd.Flags().StringP("out", "o", "", "write the polished profile to this file instead of stdout")
}

func polish(cmd *cobra.Command, args []string) {
	ctx := context.Background()
	deps := newAppDeps(ctx, true)

	raw, err := os.ReadFile(args[0])
	if err != nil {
		deps.logger.Fatal("reading profile", zap.Error(err))
	}

	var profile ai.ResumeProfile
	if err := json.Unmarshal(raw, &profile); err != nil {
		deps.logger.Fatal("parsing profile", zap.Error(err))
	}

	if _, ok := deps.passGate(); !ok {
		return
	}

	fmt.Println("Polishing your resume with AI...")

	polished, err := deps.assistant.PolishResume(ctx, profile)
	if err != nil {
		// The assistant already fell back to the input: warn and keep going
		// so the user's data is never lost.
		deps.logger.Warn("polish failed, keeping the original profile", zap.Error(err))
		fmt.Println("Polishing failed; your original profile is preserved.")
	}

	out, err := json.MarshalIndent(polished, "", "  ")
	if err != nil {
		deps.logger.Fatal("encoding polished profile", zap.Error(err))
	}

	outPath, _ := cmd.Flags().GetString("out")
	if outPath == "" {
		fmt.Println(string(out))
		return
	}

	if err := os.WriteFile(outPath, out, 0o600); err != nil {
		deps.logger.Fatal("writing polished profile", zap.Error(err))
	}
	fmt.Printf("Polished profile written to %s\n", outPath)
}
