package legalservertest

import (
	"fmt"

	"github.com/RichardKnop/legalserver"
)

type DocumentOption func(*legalserver.Document)

func WithDocumentContent(content string) DocumentOption {
	return func(d *legalserver.Document) {
		d.Content = content
	}
}

func WithDocumentMetadata(metadata legalserver.Metadata) DocumentOption {
	return func(d *legalserver.Document) {
		d.Metadata = metadata
	}
}

func (g *DataGen) Document(options ...DocumentOption) legalserver.Document {
	aDocument := legalserver.Document{
		Content: g.Sentence(12),
		Metadata: legalserver.Metadata{
			"articulo": fmt.Sprintf("%d", g.Number(1, 3000)),
			"fuente":   "Código Civil",
		},
	}

	for _, o := range options {
		o(&aDocument)
	}

	return aDocument
}

func (g *DataGen) Documents(count int, options ...DocumentOption) []legalserver.Document {
	documents := make([]legalserver.Document, 0, count)
	for i := 0; i < count; i++ {
		documents = append(documents, g.Document(options...))
	}
	return documents
}
