// Package corpus streams article pages out of a MediaWiki XML dump.
package corpus

import (
	"bufio"
	"compress/bzip2"
	"compress/gzip"
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sneiksus/VINF2025/internal/models"
)

const readBufferSize = 1 << 20

// Reader decodes <page> elements from a dump file one at a time. Dumps
// compressed with bzip2 or gzip are decompressed transparently based on the
// file extension.
type Reader struct {
	file    *os.File
	decoder *xml.Decoder
}

// pageElement mirrors the subset of the dump schema the pipeline needs.
// Redirects and stubs may carry no revision text at all.
type pageElement struct {
	Title    string `xml:"title"`
	Ns       int    `xml:"ns"`
	Revision struct {
		Text string `xml:"text"`
	} `xml:"revision"`
}

// Open opens a dump file for streaming.
func Open(path string) (*Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open corpus file: %w", err)
	}

	var src io.Reader = f

	switch {
	case strings.HasSuffix(path, ".bz2"):
		src = bzip2.NewReader(f)
	case strings.HasSuffix(path, ".gz"):
		gz, err := gzip.NewReader(f)
		if err != nil {
			f.Close()

			return nil, fmt.Errorf("failed to open gzip corpus: %w", err)
		}

		src = gz
	}

	return &Reader{
		file:    f,
		decoder: xml.NewDecoder(bufio.NewReaderSize(src, readBufferSize)),
	}, nil
}

// Next returns the next page in the dump, or io.EOF when exhausted.
func (r *Reader) Next() (*models.ArticlePage, error) {
	for {
		tok, err := r.decoder.Token()
		if err != nil {
			if err == io.EOF {
				return nil, io.EOF
			}

			return nil, fmt.Errorf("failed to decode corpus: %w", err)
		}

		start, ok := tok.(xml.StartElement)
		if !ok || start.Name.Local != "page" {
			continue
		}

		var p pageElement
		if err := r.decoder.DecodeElement(&p, &start); err != nil {
			return nil, fmt.Errorf("failed to decode page element: %w", err)
		}

		return &models.ArticlePage{
			Title:     p.Title,
			Namespace: p.Ns,
			Body:      p.Revision.Text,
		}, nil
	}
}

// Close closes the underlying file.
func (r *Reader) Close() error {
	return r.file.Close()
}
