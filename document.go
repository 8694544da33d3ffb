package legalserver

import (
	"strings"
)

type Vector []float32

type Metadata map[string]any

// Document is a passage retrieved from the vector store together with its
// metadata record (article number, source and so on).
type Document struct {
	Content  string   `json:"content"`
	Metadata Metadata `json:"metadata"`
}

func (d Document) Sanitize() Document {
	d.Content = strings.TrimSpace(d.Content)
	d.Content = strings.Join(strings.Fields(d.Content), " ")
	return d
}
