package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractTextPDF(t *testing.T) {
	extractor := NewTextExtractorService()

	t.Run("single page", func(t *testing.T) {
		content, err := extractor.ExtractText(buildPDF("Experienced backend engineer, 5 years Python."))
		require.NoError(t, err)
		assert.Equal(t, StrategyPDF, content.Strategy)
		assert.Equal(t, 1, content.PageCount)
		// The pdf package starts a new line at each Td operator.
		assert.Equal(t, "\nExperienced backend engineer, 5 years Python.", content.Text)
	})

	t.Run("pages concatenated in order", func(t *testing.T) {
		content, err := extractor.ExtractText(buildPDF("Page one.", "Page two.", "Page three."))
		require.NoError(t, err)
		assert.Equal(t, StrategyPDF, content.Strategy)
		assert.Equal(t, 3, content.PageCount)
		assert.Equal(t, "\nPage one.\nPage two.\nPage three.", content.Text)
	})

	t.Run("empty pages contribute nothing", func(t *testing.T) {
		content, err := extractor.ExtractText(buildPDF("", "Only text."))
		require.NoError(t, err)
		assert.Equal(t, "\nOnly text.", content.Text)
	})
}

func TestExtractTextPlainFallback(t *testing.T) {
	extractor := NewTextExtractorService()

	tests := []struct {
		name  string
		input []byte
	}{
		{name: "ascii", input: []byte("Jane Doe, Project Manager")},
		{name: "multibyte utf-8", input: []byte("José Núñez, Ingeniero de datos")},
		{name: "pdf header but broken body", input: []byte("%PDF-1.4\nJust some text pretending to be a PDF")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			content, err := extractor.ExtractText(tt.input)
			require.NoError(t, err)
			assert.Equal(t, StrategyPlain, content.Strategy)
			assert.Equal(t, string(tt.input), content.Text)
		})
	}
}

func TestExtractTextEmptyPDFFallsThroughToDecode(t *testing.T) {
	// A PDF without text is treated like any other non-PDF input. Its raw
	// bytes are ASCII, so the decode step accepts them.
	data := buildPDF("")
	content, err := NewTextExtractorService().ExtractText(data)
	require.NoError(t, err)
	assert.Equal(t, StrategyPlain, content.Strategy)
	assert.Equal(t, string(data), content.Text)
}

func TestExtractTextUnreadable(t *testing.T) {
	extractor := NewTextExtractorService()

	tests := []struct {
		name  string
		input []byte
	}{
		{name: "nil", input: nil},
		{name: "whitespace only", input: []byte(" \n\t\r\n ")},
		{name: "invalid utf-8", input: []byte{0xff, 0xfe, 0x00, 0x81, 0xc3, 0x28}},
		{name: "truncated multibyte", input: []byte("abc\xe2\x82")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			content, err := extractor.ExtractText(tt.input)
			assert.ErrorIs(t, err, ErrDocumentUnreadable)
			assert.Nil(t, content)
		})
	}
}
