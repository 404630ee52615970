package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/resume-analyzer/resume-analyzer/internal/models"
)

var (
	ErrNoJSONObject   = errors.New("no JSON object found in reply")
	ErrMalformedReply = errors.New("malformed JSON in reply")
	ErrSchemaMismatch = errors.New("reply does not match the analysis schema")
)

var requiredResultFields = []string{"score", "strengths", "weaknesses", "keywords"}

// rawAnalysisResult accepts fractional scores before they are rounded.
type rawAnalysisResult struct {
	Score      json.Number `json:"score"`
	Strengths  []string    `json:"strengths"`
	Weaknesses []string    `json:"weaknesses"`
	Keywords   []string    `json:"keywords"`
}

// NormalizeResponse turns a raw model reply into an AnalysisResult. When strict
// is false, missing fields are left at their zero values, so a missing array
// serializes as null.
func NormalizeResponse(reply string, strict bool) (*models.AnalysisResult, error) {
	text := strings.TrimSpace(reply)
	text = StripCodeFences(text)
	text = strings.TrimSpace(text)

	jsonStr, ok := ExtractJSONObject(text)
	if !ok {
		return nil, ErrNoJSONObject
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal([]byte(jsonStr), &fields); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedReply, err)
	}

	if strict {
		for _, name := range requiredResultFields {
			if _, exists := fields[name]; !exists {
				return nil, fmt.Errorf("%w: missing %q", ErrSchemaMismatch, name)
			}
		}
	}

	var raw rawAnalysisResult
	if err := json.Unmarshal([]byte(jsonStr), &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedReply, err)
	}

	score, err := parseScore(raw.Score)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedReply, err)
	}

	return &models.AnalysisResult{
		Score:      score,
		Strengths:  raw.Strengths,
		Weaknesses: raw.Weaknesses,
		Keywords:   raw.Keywords,
	}, nil
}

// StripCodeFences removes every markdown fence marker from text.
func StripCodeFences(text string) string {
	text = strings.ReplaceAll(text, "```json", "")
	text = strings.ReplaceAll(text, "```", "")
	return text
}

// ExtractJSONObject returns the span from the first '{' to the last '}'.
func ExtractJSONObject(text string) (string, bool) {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start == -1 || end == -1 || end < start {
		return "", false
	}
	return text[start : end+1], true
}

func parseScore(n json.Number) (int, error) {
	if n == "" {
		return 0, nil
	}
	if v, err := n.Int64(); err == nil {
		return int(v), nil
	}
	f, err := n.Float64()
	if err != nil {
		return 0, fmt.Errorf("invalid score %q: %w", n, err)
	}
	f = math.Round(f)
	if math.IsNaN(f) || f < math.MinInt || f >= math.MaxInt {
		return 0, fmt.Errorf("score %q out of range", n)
	}
	return int(f), nil
}
