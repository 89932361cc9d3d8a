package service

import (
	"bytes"
	"fmt"

	"github.com/ledongthuc/pdf"
)

// pureDocument adapts ledongthuc/pdf to pageDocument. Page numbers are
// 0-based on the way in, matching fitz.
type pureDocument struct {
	reader *pdf.Reader
}

func openPure(pdfBytes []byte) (doc pageDocument, err error) {
	// The parser panics on some malformed inputs.
	defer func() {
		if r := recover(); r != nil {
			doc, err = nil, fmt.Errorf("malformed PDF: %v", r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(pdfBytes), int64(len(pdfBytes)))
	if err != nil {
		return nil, err
	}
	return &pureDocument{reader: reader}, nil
}

func (d *pureDocument) NumPage() int {
	return d.reader.NumPage()
}

func (d *pureDocument) Text(pageNumber int) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			text, err = "", fmt.Errorf("page %d: %v", pageNumber+1, r)
		}
	}()

	page := d.reader.Page(pageNumber + 1)
	if page.V.IsNull() {
		return "", nil
	}
	return page.GetPlainText(nil)
}

func (d *pureDocument) Close() error {
	return nil
}
