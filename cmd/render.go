package cmd

import (
	"fmt"

	"github.com/fatih/color"

	"github.com/resumepilot/resumepilot/internal/ai"
)

var (
	headingColor = color.New(color.FgCyan, color.Bold)
	goodColor    = color.New(color.FgGreen)
	warnColor    = color.New(color.FgYellow)
	badColor     = color.New(color.FgRed)
	faintColor   = color.New(color.Faint)
)

// percentageColor bands a 0-100 score into green, yellow or red.
func percentageColor(score float64) *color.Color {
	switch {
	case score >= 75:
		return goodColor
	case score >= 50:
		return warnColor
	default:
		return badColor
	}
}

func renderMatchResults(results []ai.MatchResult) {
	for i, result := range results {
		if i > 0 {
			fmt.Println()
		}

		headingColor.Printf("%s\n", result.JobTitle)
		percentageColor(result.MatchPercentage).Printf("Match: %.0f%%\n", result.MatchPercentage)
		if result.Reasoning != "" {
			faintColor.Printf("%s\n", result.Reasoning)
		}

		if len(result.Pros) > 0 {
			goodColor.Println("\nStrengths:")
			for _, pro := range result.Pros {
				fmt.Printf("  + %s\n", pro)
			}
		}

		if len(result.Cons) > 0 {
			badColor.Println("\nGaps:")
			for _, con := range result.Cons {
				fmt.Printf("  - %s\n", con)
			}
		}

		if len(result.Improvements) > 0 {
			warnColor.Println("\nSuggested improvements:")
			for _, improvement := range result.Improvements {
				fmt.Printf("  * %s\n", improvement)
			}
		}

		if len(result.InterviewQuestions) > 0 {
			headingColor.Println("\nLikely interview questions:")
			for n, q := range result.InterviewQuestions {
				fmt.Printf("  %d. %s\n", n+1, q.Question)
				if q.Answer != "" {
					faintColor.Printf("     %s\n", q.Answer)
				}
			}
		}
	}
}

func renderComparison(nameA, nameB string, result *ai.ComparisonResult) {
	headingColor.Printf("%s  vs  %s\n\n", nameA, nameB)

	winner := result.OverallWinner
	switch winner {
	case ai.WinnerResumeA:
		goodColor.Printf("Overall winner: %s (%s)\n", winner, nameA)
	case ai.WinnerResumeB:
		goodColor.Printf("Overall winner: %s (%s)\n", winner, nameB)
	default:
		warnColor.Printf("Overall winner: %s\n", winner)
	}

	if result.Summary != "" {
		fmt.Printf("\n%s\n", result.Summary)
	}

	for _, category := range result.Categories {
		fmt.Println()
		headingColor.Printf("%s\n", category.Name)
		percentageColor(category.ResumeAScore).Printf("  A: %.0f", category.ResumeAScore)
		fmt.Print("  ")
		percentageColor(category.ResumeBScore).Printf("B: %.0f", category.ResumeBScore)
		fmt.Printf("  winner: %s\n", category.Winner)
		if category.ResumeANotes != "" {
			faintColor.Printf("  A: %s\n", category.ResumeANotes)
		}
		if category.ResumeBNotes != "" {
			faintColor.Printf("  B: %s\n", category.ResumeBNotes)
		}
	}
}
