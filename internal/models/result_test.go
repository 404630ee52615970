package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFallbackResult(t *testing.T) {
	data, err := json.Marshal(FallbackResult())
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"score": 70,
		"strengths": ["Good structure", "Clear experience", "Relevant skills"],
		"weaknesses": ["Missing summary", "No metrics", "Weak keywords"],
		"keywords": ["Python", "React", "Agile", "REST API"]
	}`, string(data))
}

func TestFallbackResultReturnsFreshCopy(t *testing.T) {
	a := FallbackResult()
	a.Keywords[0] = "Go"
	assert.Equal(t, "Python", FallbackResult().Keywords[0])
}

func TestErrorResponseShape(t *testing.T) {
	data, err := json.Marshal(ErrorResponse{Error: UnreadableDocumentMessage})
	require.NoError(t, err)
	assert.JSONEq(t, `{"error":"Could not read the file. Please try another file."}`, string(data))
}
