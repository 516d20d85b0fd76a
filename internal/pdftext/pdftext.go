// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pdftext extracts per-page plain text from PDF files.
package pdftext

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/pdiddy/doc-insight/pkg/types"
)

// ErrNoExtractableText reports a document that opened but yielded no
// text on any page (e.g. an image-only scan).
var ErrNoExtractableText = errors.New("no extractable text in document")

// Extractor produces a document's page texts. Implementations must not
// fail for a merely-unreadable page (that page degrades to empty text);
// they may fail when the file itself cannot be opened.
type Extractor interface {
	Extract(ctx context.Context, path string) ([]types.PageText, error)
}

// PDF extracts text with the pure-Go pdf reader.
type PDF struct{}

// Extract reads every page of the PDF at path. Pages whose text cannot
// be decoded are returned with empty text rather than aborting the
// document. The document name on each PageText is left empty for the
// caller to fill in.
func (PDF) Extract(ctx context.Context, path string) ([]types.PageText, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open pdf %s: %w", path, err)
	}
	defer f.Close()

	total := r.NumPage()
	pages := make([]types.PageText, 0, total)
	for i := 1; i <= total; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		text := pageText(r, i)
		pages = append(pages, types.PageText{Page: i, Text: text})
	}
	return pages, nil
}

// pageText extracts one page, swallowing per-page decode failures.
func pageText(r *pdf.Reader, num int) (text string) {
	// The reader panics on some malformed content streams.
	defer func() {
		if recover() != nil {
			text = ""
		}
	}()

	p := r.Page(num)
	if p.V.IsNull() {
		return ""
	}
	s, err := p.GetPlainText(nil)
	if err != nil {
		return ""
	}
	return Sanitize(s)
}

// Sanitize strips NUL bytes and non-printing control characters that
// some PDF content streams leak into extracted text, keeping common
// whitespace.
func Sanitize(s string) string {
	if s == "" {
		return s
	}
	s = strings.ReplaceAll(s, "\x00", "")

	r := make([]rune, 0, len(s))
	for _, ch := range s {
		if ch == '\n' || ch == '\r' || ch == '\t' {
			r = append(r, ch)
			continue
		}
		if ch < 0x20 {
			continue
		}
		r = append(r, ch)
	}
	return strings.TrimSpace(string(r))
}
