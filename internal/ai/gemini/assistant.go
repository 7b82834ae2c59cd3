package gemini

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"google.golang.org/genai"

	"github.com/resumepilot/resumepilot/internal/ai"
	"github.com/resumepilot/resumepilot/internal/utils"
)

const defaultMaxLogLength = 200

// generator abstracts the provider call so the assistant can be tested with a
// stub.
type generator interface {
	Generate(ctx context.Context, parts []*genai.Part, config *genai.GenerateContentConfig) (string, error)
}

// Assistant translates the five assistant actions into provider requests and
// decodes the responses per each action's failure discipline.
type Assistant struct {
	gen       generator
	logger    *zap.Logger
	maxLogLen int
}

// NewAssistant returns an Assistant over the given generator.
func NewAssistant(gen generator, logger *zap.Logger, maxLogLength int) *Assistant {
	if maxLogLength <= 0 {
		maxLogLength = defaultMaxLogLength
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Assistant{
		gen:       gen,
		logger:    logger,
		maxLogLen: maxLogLength,
	}
}

// RewriteJobDescription turns a draft, title or keywords into a professional
// job description of at most ~150 words. Plain text, errors propagate.
func (a *Assistant) RewriteJobDescription(ctx context.Context, input string) (string, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return "", fmt.Errorf("job description input must not be empty")
	}

	prompt := fmt.Sprintf(`You are an expert HR assistant. The user has provided a draft, title, or keywords for a job description: %q.
Please generate a professional, concise, but comprehensive job description based on this input.
Include a brief summary, Key Responsibilities, and Requirements. Keep it under 150 words for quick reading.`, input)

	raw, err := a.generate(ctx, "rewrite_job_description", []*genai.Part{{Text: prompt}}, plainTextConfig())
	if err != nil {
		return "", err
	}
	return raw, nil
}

// QuickSuggest produces a short completion hint for a partially typed job
// description. It backs a speculative, debounced UI affordance and therefore
// never fails: any provider or transport problem yields an empty string.
func (a *Assistant) QuickSuggest(ctx context.Context, input string, roles []string) string {
	prompt := fmt.Sprintf("Based on the current job title/keywords: %q and selected roles: %s, suggest a short sentence to complete or improve this job description. Keep it under 10 words.",
		input, strings.Join(roles, ", "))

	raw, err := a.generate(ctx, "quick_suggest", []*genai.Part{{Text: prompt}}, plainTextConfig())
	if err != nil {
		a.logger.Debug("quick suggestion suppressed", zap.Error(err))
		return ""
	}
	return strings.TrimSpace(raw)
}

// MatchResume scores the resume document against the combined job description
// text and returns one result per described job. Decode failures propagate.
func (a *Assistant) MatchResume(ctx context.Context, resume ai.FileData, jobDescriptions string) ([]ai.MatchResult, error) {
	resumePart, err := inlinePart(resume)
	if err != nil {
		return nil, err
	}

	prompt := fmt.Sprintf(`Analyze this resume against the job description.
Provide match percentage, pros, cons, improvements, and interview questions.
Job Descriptions: %s`, jobDescriptions)

	parts := []*genai.Part{resumePart, {Text: prompt}}

	raw, err := a.generate(ctx, "match_resume", parts, structuredConfig(matchSchema()))
	if err != nil {
		return nil, err
	}

	results, err := ai.Decode[[]ai.MatchResult](raw, ai.PropagateFailure, nil)
	if err != nil {
		return nil, err
	}
	return results, nil
}

// CompareResumes judges two resume documents side by side. Decode failures
// propagate, same as MatchResume.
func (a *Assistant) CompareResumes(ctx context.Context, resumeA, resumeB ai.FileData, roleContext string) (*ai.ComparisonResult, error) {
	partA, err := inlinePart(resumeA)
	if err != nil {
		return nil, fmt.Errorf("resume A: %w", err)
	}
	partB, err := inlinePart(resumeB)
	if err != nil {
		return nil, fmt.Errorf("resume B: %w", err)
	}

	if roleContext = strings.TrimSpace(roleContext); roleContext == "" {
		roleContext = "General"
	}

	parts := []*genai.Part{
		{Text: "Resume A:"}, partA,
		{Text: "Resume B:"}, partB,
		{Text: fmt.Sprintf("Compare these two resumes. Context/Role: %s", roleContext)},
	}

	raw, err := a.generate(ctx, "compare_resumes", parts, structuredConfig(comparisonSchema()))
	if err != nil {
		return nil, err
	}

	result, err := ai.Decode[ai.ComparisonResult](raw, ai.PropagateFailure, ai.ComparisonResult{})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// PolishResume rewrites the profile's content into high-impact resume prose.
// The returned profile is always usable: a malformed response falls back to
// the input silently, a provider failure falls back to the input and reports
// the error so the caller can warn without discarding the user's data.
func (a *Assistant) PolishResume(ctx context.Context, profile ai.ResumeProfile) (ai.ResumeProfile, error) {
	payload, err := json.Marshal(profile)
	if err != nil {
		return profile, fmt.Errorf("marshal profile: %w", err)
	}

	prompt := fmt.Sprintf(`You are a World-Class Resume Architect.
Your goal is to transform basic, raw inputs into high-impact, single-page professional resume content.

SPECIAL HANDLING FOR BASIC INPUTS:
- If Experience [details] is empty but [role] is provided: GENERATE 3-4 professional bullet points using the STAR method (Situation, Task, Action, Result). Focus on metrics like "Improved efficiency by 20%%" or "Led team of 5".
- If Project [description] is empty but [title] is provided: GENERATE a technical description including a likely tech stack and impact.
- Summary: If the user provides no summary, write a powerful 3-line professional overview based on their roles.
- Skills: Categorize and expand the skills list to include relevant keywords for ATS optimization.

DO NOT fabricate:
- Educational institutions or graduation years (use placeholders if missing).
- Phone numbers or emails.
- Company names (keep user's company names as is).

INPUT DATA:
%s`, payload)

	raw, err := a.generate(ctx, "polish_resume", []*genai.Part{{Text: prompt}}, structuredConfig(profileSchema()))
	if err != nil {
		return profile, err
	}

	polished, _ := ai.Decode[ai.ResumeProfile](raw, ai.FallbackToDefault, profile)
	return polished, nil
}

func (a *Assistant) generate(ctx context.Context, action string, parts []*genai.Part, config *genai.GenerateContentConfig) (string, error) {
	requestID := uuid.NewString()

	preview := ""
	for _, part := range parts {
		if part != nil && part.Text != "" {
			preview = part.Text
			break
		}
	}

	a.logger.Debug("gemini generate content request",
		zap.String("action", action),
		zap.String("request_id", requestID),
		zap.Int("parts", len(parts)),
		zap.String("prompt_preview", utils.TruncateForLog(preview, a.maxLogLen)),
	)

	raw, err := a.gen.Generate(ctx, parts, config)
	if err != nil {
		return "", err
	}

	a.logger.Debug("gemini generate content response",
		zap.String("action", action),
		zap.String("request_id", requestID),
		zap.Int("response_length", utf8.RuneCountInString(raw)),
		zap.String("response_preview", utils.TruncateForLog(raw, a.maxLogLen)),
	)

	return raw, nil
}

// plainTextConfig disables thinking for latency; the text actions want quick,
// shallow completions.
func plainTextConfig() *genai.GenerateContentConfig {
	return &genai.GenerateContentConfig{
		ThinkingConfig: &genai.ThinkingConfig{ThinkingBudget: genai.Ptr[int32](0)},
	}
}

func structuredConfig(schema *genai.Schema) *genai.GenerateContentConfig {
	return &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   schema,
		ThinkingConfig:   &genai.ThinkingConfig{ThinkingBudget: genai.Ptr[int32](0)},
	}
}

func inlinePart(file ai.FileData) (*genai.Part, error) {
	data, err := base64.StdEncoding.DecodeString(file.Data)
	if err != nil {
		return nil, fmt.Errorf("decode document payload: %w", err)
	}

	return &genai.Part{
		InlineData: &genai.Blob{
			MIMEType: file.Type,
			Data:     data,
		},
	}, nil
}
