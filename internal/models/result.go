package models

// AnalysisResult is the canonical response body of a resume analysis.
type AnalysisResult struct {
	Score      int      `json:"score"`
	Strengths  []string `json:"strengths"`
	Weaknesses []string `json:"weaknesses"`
	Keywords   []string `json:"keywords"`
}

// FallbackResult returns the fixed result used whenever the model path fails.
// A new value is built on every call so callers cannot mutate the constant.
func FallbackResult() *AnalysisResult {
	return &AnalysisResult{
		Score:      70,
		Strengths:  []string{"Good structure", "Clear experience", "Relevant skills"},
		Weaknesses: []string{"Missing summary", "No metrics", "Weak keywords"},
		Keywords:   []string{"Python", "React", "Agile", "REST API"},
	}
}

// OutcomeKind tags how an analysis was produced. It is reported through logs
// and metrics only, never in the response body.
type OutcomeKind string

const (
	OutcomeModel          OutcomeKind = "model"
	OutcomeServiceError   OutcomeKind = "service_error"
	OutcomeMalformedReply OutcomeKind = "malformed_reply"
)

const UnreadableDocumentMessage = "Could not read the file. Please try another file."

type ErrorResponse struct {
	Error string `json:"error"`
}

type HealthResponse struct {
	Message string `json:"message"`
}
