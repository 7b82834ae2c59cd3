package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/resumepilot/resumepilot/internal/ai"
	"github.com/resumepilot/resumepilot/internal/filtering"
	"github.com/resumepilot/resumepilot/internal/intake"
	"github.com/resumepilot/resumepilot/internal/suggest"
)

const (
	PromptMatch   = "Match now"
	PromptEnhance = "AI Enhance the description first"
	PromptCancel  = "Cancel"

	PromptRolesDone = "Done"
)

// commonRoles offered during interactive composition.
var commonRoles = []string{
	"Frontend Engineer", "Backend Developer", "Full Stack Developer",
	"Data Scientist", "DevOps Engineer", "Product Manager",
	"UI/UX Designer", "Mobile Developer", "QA Engineer",
	"Cloud Architect", "Security Engineer", "Engineering Manager",
	"AI/ML Engineer", "Data Engineer", "Systems Architect",
	"SRE", "Solutions Architect", "Technical Writer",
}

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Match a resume against one or more job descriptions",
	Run: func(cmd *cobra.Command, _ []string) {
		match(cmd)
	},
}

func init() {
	rootCmd.AddCommand(matchCmd)

	matchCmd.Flags().StringP("resume", "r", "", "path to the resume file (pdf, docx or txt)")
	matchCmd.Flags().String("jd", "", "job description text")
	matchCmd.Flags().String("jd-file", "", "path to a text file with job descriptions")
	matchCmd.Flags().StringSlice("role", nil, "target role names to steer suggestions")
	matchCmd.Flags().Float64("min-match", 0, "hide results scoring below this match percentage")
	matchCmd.Flags().StringSlice("exclude-title", nil, "hide results whose job title contains this phrase")

	matchCmd.MarkFlagRequired("resume")
}

func match(cmd *cobra.Command) {
	ctx := context.Background()
	deps := newAppDeps(ctx, true)

	resumePath, _ := cmd.Flags().GetString("resume")
	resume, err := intake.Read(resumePath)
	if err != nil {
		deps.logger.Fatal("reading resume", zap.Error(err))
	}

	roles, _ := cmd.Flags().GetStringSlice("role")

	jd, err := resolveJobDescription(cmd)
	if err != nil {
		deps.logger.Fatal("reading job description", zap.Error(err))
	}

	if jd == "" {
		// No description supplied: compose one interactively with live
		// suggestions.
		if len(roles) == 0 {
			roles = pickRoles(deps)
		}
		jd = composeJobDescription(ctx, deps, roles)
	}

	if strings.TrimSpace(jd) == "" {
		deps.logger.Fatal("job description is required", zap.String("hint", "pass --jd, --jd-file or compose one interactively"))
	}

	for {
		action := confirmMatch(deps)
		switch action {
		case PromptCancel:
			fmt.Println("Cancelled.")
			return
		case PromptEnhance:
			rewritten, ok := enhanceDescription(ctx, deps, jd)
			if !ok {
				continue
			}
			jd = rewritten
			fmt.Println("\nRewritten description:")
			fmt.Println(jd)
		case PromptMatch:
			runMatch(ctx, deps, resume, jd, resultFilters(cmd))
			return
		}
	}
}

func resolveJobDescription(cmd *cobra.Command) (string, error) {
	jd, _ := cmd.Flags().GetString("jd")
	if jd != "" {
		return jd, nil
	}

	jdFile, _ := cmd.Flags().GetString("jd-file")
	if jdFile == "" {
		return "", nil
	}

	raw, err := os.ReadFile(jdFile)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

// pickRoles lets the user select any number of target roles.
func pickRoles(deps *appDeps) []string {
	var selected []string

	for {
		remaining := []string{PromptRolesDone}
		for _, role := range commonRoles {
			picked := false
			for _, s := range selected {
				if s == role {
					picked = true
					break
				}
			}
			if !picked {
				remaining = append(remaining, role)
			}
		}

		prompt := promptui.Select{
			Label: fmt.Sprintf("Select target roles (%d picked)", len(selected)),
			Items: remaining,
			Size:  10,
		}

		_, choice, err := prompt.Run()
		if err != nil {
			deps.logger.Fatal("selecting roles", zap.Error(err))
		}

		if choice == PromptRolesDone {
			return selected
		}
		selected = append(selected, choice)
	}
}

// composeJobDescription reads the description line by line. After each line
// the debounced suggestion loop may print a short completion hint; hints are
// advisory and never block input. An empty line finishes the draft.
func composeJobDescription(ctx context.Context, deps *appDeps, roles []string) string {
	loop := suggest.New(
		deps.assistant.QuickSuggest,
		func(_, suggestion string) {
			if suggestion != "" {
				fmt.Printf("\n  hint: %s\n> ", suggestion)
			}
		},
	)
	loop.SetRoles(roles)
	defer loop.Stop()

	fmt.Println("Type the job description; press ENTER on an empty line to finish.")
	fmt.Print("> ")

	var lines []string
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			break
		}
		lines = append(lines, line)
		loop.OnInput(ctx, strings.Join(lines, "\n"))
		fmt.Print("> ")
	}

	return strings.Join(lines, "\n")
}

func confirmMatch(deps *appDeps) string {
	prompt := promptui.Select{
		Label: "Proceed?",
		Items: []string{PromptMatch, PromptEnhance, PromptCancel},
	}

	_, action, err := prompt.Run()
	if err != nil {
		if errors.Is(err, promptui.ErrInterrupt) {
			return PromptCancel
		}
		deps.logger.Fatal("reading confirmation", zap.Error(err))
	}
	return action
}

// enhanceDescription rewrites the draft through the provider. The rewrite is
// a gated action of its own: it charges a quota unit even when it fails.
func enhanceDescription(ctx context.Context, deps *appDeps, jd string) (string, bool) {
	if _, ok := deps.passGate(); !ok {
		return "", false
	}

	rewritten, err := deps.assistant.RewriteJobDescription(ctx, jd)
	if err != nil {
		deps.logger.Warn("rewrite failed", zap.Error(err))
		fmt.Println("Could not rewrite the description. The quota unit is spent; the draft is unchanged.")
		return "", false
	}
	return rewritten, true
}

// resultFilters builds the post-processing steps from the match flags.
func resultFilters(cmd *cobra.Command) []filtering.Filter {
	var steps []filtering.Filter

	if minMatch, _ := cmd.Flags().GetFloat64("min-match"); minMatch > 0 {
		steps = append(steps, filtering.NewMinScore(minMatch))
	}
	if excluded, _ := cmd.Flags().GetStringSlice("exclude-title"); len(excluded) > 0 {
		steps = append(steps, filtering.NewExcludeTitles(excluded))
	}

	return steps
}

func runMatch(ctx context.Context, deps *appDeps, resume ai.FileData, jd string, steps []filtering.Filter) {
	if _, ok := deps.passGate(); !ok {
		return
	}

	fmt.Println("Analyzing resume against the job description...")

	results, err := deps.assistant.MatchResume(ctx, resume, jd)
	if err != nil {
		deps.logger.Error("match failed", zap.Error(err))
		fmt.Printf("Analysis failed: %v\nRe-run to try again (this will use another daily action).\n", err)
		return
	}

	results, err = filtering.Run(deps.logger, steps, results)
	if err != nil {
		deps.logger.Fatal("filtering results", zap.Error(err))
	}

	if len(results) == 0 {
		fmt.Println("No match results to show.")
		return
	}

	renderMatchResults(results)
}
