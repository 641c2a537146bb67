package extractor

import (
	"archive/zip"
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"strings"
)

const docxBody = "word/document.xml"

// DocxHandler reads the paragraphs of word/document.xml, one per line.
type DocxHandler struct{}

func (DocxHandler) Extract(_ context.Context, path string) (string, error) {
	rc, err := zip.OpenReader(path)
	if err != nil {
		return "", err
	}
	defer rc.Close()

	for _, f := range rc.File {
		if !strings.EqualFold(f.Name, docxBody) {
			continue
		}
		body, err := f.Open()
		if err != nil {
			return "", err
		}
		defer body.Close()
		return docxParagraphs(body)
	}
	return "", fmt.Errorf("file not found: %s", docxBody)
}

func docxParagraphs(r io.Reader) (string, error) {
	dec := xml.NewDecoder(r)
	var (
		inParagraph bool
		inText      bool
		para        strings.Builder
		out         []string
	)

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", fmt.Errorf("parse %s: %w", docxBody, err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "p":
				inParagraph = true
				para.Reset()
			case "t":
				inText = inParagraph
			case "tab":
				if inParagraph {
					para.WriteByte(' ')
				}
			}
		case xml.CharData:
			if inText {
				para.Write(t)
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "t":
				inText = false
			case "p":
				if s := strings.TrimSpace(para.String()); s != "" {
					out = append(out, s)
				}
				inParagraph = false
			}
		}
	}
	return strings.Join(out, "\n"), nil
}
