package ai

import (
	"reflect"
	"testing"
)

func TestExtractJSONStripsFence(t *testing.T) {
	fenced := "```json\n{\"a\":1}\n```"
	bare := `{"a":1}`

	if got := ExtractJSON(fenced); got != bare {
		t.Fatalf("expected %q, got %q", bare, got)
	}

	if got := ExtractJSON(bare); got != bare {
		t.Fatalf("bare payload must pass through, got %q", got)
	}
}

func TestFencedAndBareDecodeIdentically(t *testing.T) {
	type payload struct {
		A int `json:"a"`
	}

	fromFenced, err := Decode[payload]("```json\n{\"a\":1}\n```", PropagateFailure, payload{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	fromBare, err := Decode[payload](`{"a":1}`, PropagateFailure, payload{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !reflect.DeepEqual(fromFenced, fromBare) {
		t.Fatalf("fenced %+v != bare %+v", fromFenced, fromBare)
	}
}

func TestDecodeToleratesWeaklyTypedFields(t *testing.T) {
	raw := `{"jobTitle":"Backend Developer","matchPercentage":"85","pros":["go"],"cons":[],"reasoning":"solid"}`

	result, err := Decode[MatchResult](raw, PropagateFailure, MatchResult{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.MatchPercentage != 85 {
		t.Fatalf("expected percentage 85, got %v", result.MatchPercentage)
	}

	if len(result.Improvements) != 0 || len(result.InterviewQuestions) != 0 {
		t.Fatalf("missing array fields must decode as empty, got %+v", result)
	}
}

func TestDecodePropagatesFailure(t *testing.T) {
	if _, err := Decode[MatchResult]("not json at all", PropagateFailure, MatchResult{}); err == nil {
		t.Fatal("expected decode error")
	}
}

func TestDecodeFallsBackToDefault(t *testing.T) {
	fallback := ResumeProfile{
		FullName: "Ada Lovelace",
		Experience: []Experience{
			{Role: "Engineer", Company: "Analytical Engines Ltd"},
		},
	}

	out, err := Decode[ResumeProfile]("```json\n{broken", FallbackToDefault, fallback)
	if err != nil {
		t.Fatalf("fallback policy must not surface an error, got %v", err)
	}

	if !reflect.DeepEqual(out, fallback) {
		t.Fatalf("expected fallback %+v, got %+v", fallback, out)
	}
}
