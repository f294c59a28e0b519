// Package upload validates offer documents submitted for redesign and hands
// them to an Extractor.
package upload

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/louisbranch/closealead/internal/offer"
)

// MaxBytes is the largest accepted document.
const MaxBytes = 10 << 20

// Kind is an accepted document format.
type Kind string

const (
	KindPDF  Kind = "pdf"
	KindDOCX Kind = "docx"
	KindText Kind = "txt"
)

const (
	mimePDF  = "application/pdf"
	mimeDOCX = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	mimeText = "text/plain"
)

var (
	ErrEmpty       = errors.New("uploaded file is empty")
	ErrTooLarge    = errors.New("uploaded file exceeds 10MB")
	ErrUnsupported = errors.New("uploaded file must be a PDF, DOCX, or TXT document")
)

// File is a validated upload held in memory.
type File struct {
	Name    string
	Kind    Kind
	Content []byte
}

// Read consumes r up to MaxBytes and validates the content type by sniffing.
func Read(name string, r io.Reader) (File, error) {
	if r == nil {
		return File{}, ErrEmpty
	}
	content, err := io.ReadAll(io.LimitReader(r, MaxBytes+1))
	if err != nil {
		return File{}, fmt.Errorf("read upload: %w", err)
	}
	if len(content) == 0 {
		return File{}, ErrEmpty
	}
	if len(content) > MaxBytes {
		return File{}, ErrTooLarge
	}
	kind, err := Detect(content)
	if err != nil {
		return File{}, err
	}
	return File{Name: strings.TrimSpace(name), Kind: kind, Content: content}, nil
}

// Detect classifies content, returning ErrUnsupported for other formats.
func Detect(content []byte) (Kind, error) {
	mtype, err := mimetype.DetectReader(bytes.NewReader(content))
	if err != nil {
		return "", fmt.Errorf("detect upload type: %w", err)
	}
	for m := mtype; m != nil; m = m.Parent() {
		switch {
		case m.Is(mimePDF):
			return KindPDF, nil
		case m.Is(mimeDOCX):
			return KindDOCX, nil
		case m.Is(mimeText):
			return KindText, nil
		}
	}
	return "", ErrUnsupported
}

// Extractor derives a draft patch from an uploaded document.
type Extractor interface {
	Extract(context.Context, File) (offer.Patch, error)
}

// StaticExtractor returns a fixed redesign patch regardless of content. It
// stands in for a document analysis backend.
type StaticExtractor struct{}

// Extract implements Extractor.
func (StaticExtractor) Extract(ctx context.Context, file File) (offer.Patch, error) {
	if err := ctx.Err(); err != nil {
		return offer.Patch{}, err
	}
	if len(file.Content) == 0 {
		return offer.Patch{}, ErrEmpty
	}
	return offer.Patch{
		Title:       offer.String("Redesigned Professional Service Offer"),
		Subtitle:    offer.String("Enhanced and optimized for maximum conversion"),
		Description: offer.String("Your offer has been analyzed and enhanced with AI-powered improvements to increase engagement and close rates."),
		Price:       &offer.Price{Amount: 997, Currency: offer.CurrencyUSD, Interval: offer.IntervalOneTime},
		Features: []string{
			"Enhanced feature presentation",
			"Improved value proposition",
			"Optimized pricing display",
			"Professional design elements",
		},
	}, nil
}
