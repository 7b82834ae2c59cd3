package ai

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mitchellh/mapstructure"
)

// OnDecodeFailure selects what a decode call site does when the provider
// payload does not match the expected shape.
type OnDecodeFailure int

const (
	// PropagateFailure reports the decode error to the caller.
	PropagateFailure OnDecodeFailure = iota
	// FallbackToDefault silently returns the supplied default instead.
	FallbackToDefault
)

// ExtractJSON strips a leading/trailing markdown code fence from a provider
// response. Models wrap JSON in ```json fences often enough that this runs
// before every structured decode.
func ExtractJSON(raw string) string {
	raw = strings.TrimSpace(raw)
	if strings.HasPrefix(raw, "```") {
		raw = strings.TrimPrefix(raw, "```json")
		raw = strings.TrimPrefix(raw, "```")
		raw = strings.TrimSpace(raw)
		if idx := strings.LastIndex(raw, "```"); idx != -1 {
			raw = raw[:idx]
		}
	}
	raw = strings.Trim(raw, "`")
	return strings.TrimSpace(raw)
}

// DecodeInto parses a provider response into out. The payload is first parsed
// as loose JSON, then mapped onto the target shape with weak typing so that a
// number arriving as "85" still lands in a numeric field. Unknown fields are
// ignored; missing array fields stay empty.
func DecodeInto(raw string, out any) error {
	cleaned := ExtractJSON(raw)

	var loose any
	if err := json.Unmarshal([]byte(cleaned), &loose); err != nil {
		return fmt.Errorf("parse provider response: %w", err)
	}

	cfg := &mapstructure.DecoderConfig{
		Result:           out,
		TagName:          "json",
		WeaklyTypedInput: true,
	}
	decoder, err := mapstructure.NewDecoder(cfg)
	if err != nil {
		return fmt.Errorf("build response decoder: %w", err)
	}

	if err := decoder.Decode(loose); err != nil {
		return fmt.Errorf("decode provider response: %w", err)
	}
	return nil
}

// Decode parses a provider response into a value of type T, applying the
// requested failure policy. With FallbackToDefault the returned error is
// always nil and fallback is returned verbatim on any decode problem.
func Decode[T any](raw string, policy OnDecodeFailure, fallback T) (T, error) {
	var out T
	if err := DecodeInto(raw, &out); err != nil {
		if policy == FallbackToDefault {
			return fallback, nil
		}
		return out, err
	}
	return out, nil
}
