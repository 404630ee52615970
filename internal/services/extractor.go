package services

import (
	"bytes"
	"errors"
	"fmt"
	"log"
	"strings"
	"unicode/utf8"

	"github.com/ledongthuc/pdf"
)

// ErrDocumentUnreadable is returned when no extraction strategy yields text.
var ErrDocumentUnreadable = errors.New("document unreadable")

type TextExtractorService interface {
	ExtractText(data []byte) (*DocumentContent, error)
}

type DocumentContent struct {
	Text      string
	Strategy  string
	PageCount int
}

type textExtractorService struct{}

func NewTextExtractorService() TextExtractorService {
	return &textExtractorService{}
}

// ExtractText tries the document as a PDF first and as UTF-8 text second.
func (t *textExtractorService) ExtractText(data []byte) (*DocumentContent, error) {
	text, pageCount, err := extractPDFText(data)
	if err == nil && strings.TrimSpace(text) != "" {
		log.Printf("📄 Extracted text from %d PDF pages (%d characters)\n", pageCount, len(text))
		recordExtraction(StrategyPDF)
		return &DocumentContent{Text: text, Strategy: StrategyPDF, PageCount: pageCount}, nil
	}
	if err != nil {
		log.Printf("⚠️  PDF extraction failed, trying plain text: %v\n", err)
	} else {
		log.Println("⚠️  PDF contained no text, trying plain text")
	}

	text, err = decodePlainText(data)
	if err == nil && strings.TrimSpace(text) != "" {
		log.Printf("📄 Decoded document as plain text (%d characters)\n", len(text))
		recordExtraction(StrategyPlain)
		return &DocumentContent{Text: text, Strategy: StrategyPlain}, nil
	}
	if err != nil {
		log.Printf("❌ Plain text decode failed: %v\n", err)
	} else {
		log.Println("❌ Document is empty after decoding")
	}

	recordExtraction(StrategyUnreadable)
	return nil, ErrDocumentUnreadable
}

// extractPDFText concatenates the plain text of every page in page order.
func extractPDFText(data []byte) (text string, pageCount int, err error) {
	// The pdf package panics on some malformed inputs.
	defer func() {
		if r := recover(); r != nil {
			text, pageCount, err = "", 0, fmt.Errorf("failed to parse PDF: %v", r)
		}
	}()

	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", 0, fmt.Errorf("failed to open PDF: %w", err)
	}

	var textBuilder strings.Builder
	totalPage := r.NumPage()

	for pageIndex := 1; pageIndex <= totalPage; pageIndex++ {
		page := r.Page(pageIndex)
		if page.V.IsNull() {
			continue
		}

		pageText, err := page.GetPlainText(nil)
		if err != nil {
			// Log error but continue with other pages
			log.Printf("⚠️  Failed to extract PDF page %d: %v\n", pageIndex, err)
			continue
		}

		textBuilder.WriteString(pageText)
	}

	return textBuilder.String(), totalPage, nil
}

func decodePlainText(data []byte) (string, error) {
	if !utf8.Valid(data) {
		return "", fmt.Errorf("document is not valid UTF-8")
	}
	return string(data), nil
}
