// Package llmutil holds the small pieces every LLM-calling component in
// recommend/ shares: pulling a JSON object out of a chat completion that
// may be wrapped in prose or a markdown fence, and a timeout helper for
// the "one call, strict deadline" pattern spec §5 mandates for every LLM
// caller.
package llmutil

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"time"
)

var jsonBlock = regexp.MustCompile(`(?s)\{.*\}`)

// ExtractJSON finds the first top-level-looking JSON object in s and
// unmarshals it into v. It tries the whole string first (the common
// case for a strict JSON-only prompt), then falls back to a single
// regex extraction of the widest brace-delimited span, matching spec
// §4.2/§4.9/§4.10's "response is JSON-extracted... on any failure the
// rule-based output is used" behavior: callers get one shot, not a
// retry loop.
func ExtractJSON(s string, v interface{}) error {
	trimmed := strings.TrimSpace(s)
	trimmed = strings.TrimPrefix(trimmed, "```json")
	trimmed = strings.TrimPrefix(trimmed, "```")
	trimmed = strings.TrimSuffix(trimmed, "```")
	trimmed = strings.TrimSpace(trimmed)

	if err := json.Unmarshal([]byte(trimmed), v); err == nil {
		return nil
	}

	match := jsonBlock.FindString(trimmed)
	if match == "" {
		return fmt.Errorf("llmutil: no JSON object found in response")
	}
	if err := json.Unmarshal([]byte(match), v); err != nil {
		return fmt.Errorf("llmutil: regex-extracted JSON invalid: %w", err)
	}
	return nil
}

// WithTimeout runs fn with ctx bounded by d, matching the per-call
// timeout spec §5 requires of every LLM caller (90s judge, 60s
// intent/persona by convention; the caller picks d).
func WithTimeout(ctx context.Context, d time.Duration, fn func(context.Context) error) error {
	cctx, cancel := context.WithTimeout(ctx, d)
	defer cancel()
	return fn(cctx)
}
