// Package document turns uploaded lease documents into per-page text.
package document

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ledongthuc/pdf"
)

// ErrNoPages indicates the document yielded no pages.
var ErrNoPages = errors.New("document has no pages")

// PageBreak separates pages in plain-text documents (pdftotext output).
const PageBreak = "\f"

var pdfMagic = []byte("%PDF-")

// LoadPages reads a document file and returns the text of each page.
func LoadPages(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadPages(f)
}

// ReadPages returns the text of each page of a PDF or plain-text document.
// PDF input is detected by its header; anything else is treated as UTF-8
// text split on form feeds.
func ReadPages(r io.Reader) ([]string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	if IsPDF(data) {
		return pdfPages(data)
	}
	return textPages(string(data)), nil
}

// IsPDF reports whether data starts with a PDF header.
func IsPDF(data []byte) bool {
	return bytes.HasPrefix(data, pdfMagic)
}

// FirstPage returns the text of the first page. Later pages are never
// scanned for lease fields.
func FirstPage(pages []string) (string, error) {
	if len(pages) == 0 {
		return "", ErrNoPages
	}
	return pages[0], nil
}

func textPages(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	if strings.TrimSpace(text) == "" {
		return nil
	}
	return strings.Split(text, PageBreak)
}

func pdfPages(data []byte) (pages []string, err error) {
	// The pdf package panics on some malformed content streams.
	defer func() {
		if rec := recover(); rec != nil {
			pages, err = nil, fmt.Errorf("failed to read pdf: %v", rec)
		}
	}()

	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("failed to read pdf: %w", err)
	}

	pages = make([]string, 0, r.NumPage())
	for i := 1; i <= r.NumPage(); i++ {
		p := r.Page(i)
		if p.V.IsNull() {
			pages = append(pages, "")
			continue
		}
		text, err := p.GetPlainText(nil)
		if err != nil {
			return nil, fmt.Errorf("failed to read pdf page %d: %w", i, err)
		}
		pages = append(pages, text)
	}
	return pages, nil
}
