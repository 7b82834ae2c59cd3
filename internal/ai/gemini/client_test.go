package gemini

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"
	"google.golang.org/genai"
)

type fakeModels struct {
	resp      *genai.GenerateContentResponse
	err       error
	lastModel string
	calls     int
}

func (f *fakeModels) GenerateContent(_ context.Context, model string, _ []*genai.Content, _ *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	f.calls++
	f.lastModel = model
	return f.resp, f.err
}

func textResponse(texts ...string) *genai.GenerateContentResponse {
	parts := make([]*genai.Part, 0, len(texts))
	for _, text := range texts {
		parts = append(parts, &genai.Part{Text: text})
	}
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			Content: &genai.Content{Parts: parts},
		}},
	}
}

func TestGeneratorCollectsCandidateText(t *testing.T) {
	models := &fakeModels{resp: textResponse(" first ", "", "second")}
	g := &Generator{models: models, modelName: "gemini-2.5-flash", logger: zap.NewNop()}

	out, err := g.Generate(context.Background(), []*genai.Part{{Text: "hi"}}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if out != "first\nsecond" {
		t.Fatalf("unexpected output: %q", out)
	}

	if models.lastModel != "gemini-2.5-flash" {
		t.Fatalf("unexpected model: %q", models.lastModel)
	}
}

func TestGeneratorRejectsEmptyParts(t *testing.T) {
	models := &fakeModels{}
	g := &Generator{models: models, modelName: "m", logger: zap.NewNop()}

	if _, err := g.Generate(context.Background(), nil, nil); err == nil {
		t.Fatal("expected error for empty parts")
	}

	if models.calls != 0 {
		t.Fatalf("expected no provider calls, got %d", models.calls)
	}
}

func TestGeneratorEmptyResponseIsError(t *testing.T) {
	models := &fakeModels{resp: textResponse("   ")}
	g := &Generator{models: models, modelName: "m", logger: zap.NewNop()}

	if _, err := g.Generate(context.Background(), []*genai.Part{{Text: "hi"}}, nil); err == nil {
		t.Fatal("expected error for empty response")
	}
}

func TestGeneratorWrapsProviderError(t *testing.T) {
	models := &fakeModels{err: errors.New("quota exhausted")}
	g := &Generator{models: models, modelName: "m", logger: zap.NewNop()}

	if _, err := g.Generate(context.Background(), []*genai.Part{{Text: "hi"}}, nil); err == nil {
		t.Fatal("expected provider error")
	}
}

func TestNewGeneratorRequiresAPIKey(t *testing.T) {
	if _, err := NewGenerator(context.Background(), "   ", "", zap.NewNop()); err == nil {
		t.Fatal("missing api key must fail before any request")
	}
}
