package weaviate

import (
	"context"
	"fmt"

	"github.com/weaviate/weaviate-go-client/v5/weaviate/graphql"
	"github.com/weaviate/weaviate/entities/models"

	"github.com/RichardKnop/legalserver"
)

// Search runs a similarity query against the collection and returns up to
// limit documents ordered by descending similarity. A precomputed vector
// takes precedence over raw query text.
func (a *Adapter) Search(ctx context.Context, query legalserver.SearchQuery, limit int) ([]legalserver.Document, error) {
	if err := a.ensureClass(ctx); err != nil {
		return nil, err
	}

	gql := a.client.GraphQL()

	builder := gql.Get().
		WithClassName(a.className).
		WithFields(
			graphql.Field{Name: "content"},
			graphql.Field{Name: "articulo"},
			graphql.Field{Name: "fuente"},
		).
		WithLimit(limit)

	if len(query.Vector) > 0 {
		nearVector := gql.NearVectorArgBuilder().WithVector([]float32(query.Vector))
		builder = builder.WithNearVector(nearVector)
	} else {
		nearText := gql.NearTextArgBuilder().WithConcepts([]string{query.Text})
		builder = builder.WithNearText(nearText)
	}

	graphqlResponse, err := builder.Do(ctx)
	if err := combinedWeaviateError(graphqlResponse, err); err != nil {
		return nil, err
	}

	return decodeGetDocumentResults(graphqlResponse, a.className)
}

// decodeGetDocumentResults decodes the result returned by Weaviate's GraphQL
// Get query; these are returned as a nested map[string]any (just like JSON
// unmarshaled into a map[string]any). Every field except content ends up in
// the document metadata.
func decodeGetDocumentResults(graphqlResponse *models.GraphQLResponse, className string) ([]legalserver.Document, error) {
	data, ok := graphqlResponse.Data["Get"]
	if !ok {
		return nil, fmt.Errorf("get key not found in result")
	}
	doc, ok := data.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("get key unexpected type")
	}
	slc, ok := doc[className].([]any)
	if !ok {
		return nil, fmt.Errorf("%s is not a list of results", className)
	}

	var out []legalserver.Document
	for _, s := range slc {
		smap, ok := s.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("invalid element in list of documents")
		}
		content, ok := smap["content"].(string)
		if !ok {
			return nil, fmt.Errorf("expected content in document")
		}

		metadata := legalserver.Metadata{}
		for key, value := range smap {
			if key == "content" || value == nil {
				continue
			}
			metadata[key] = value
		}

		out = append(out, legalserver.Document{
			Content:  content,
			Metadata: metadata,
		})
	}
	return out, nil
}

// combinedWeaviateError generates an error if err is non-nil or result has
// errors, and returns an error (or nil if there's no error). It's useful for
// the results of the Weaviate GraphQL API's "Do" calls.
func combinedWeaviateError(graphqlResponse *models.GraphQLResponse, err error) error {
	if err != nil {
		return err
	}
	if len(graphqlResponse.Errors) != 0 {
		var ss []string
		for _, e := range graphqlResponse.Errors {
			ss = append(ss, e.Message)
		}
		return fmt.Errorf("weaviate error: %v", ss)
	}
	return nil
}
