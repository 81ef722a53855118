package database

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/tieubaoca/docsense-be/config"
	"github.com/tieubaoca/docsense-be/types"
	"github.com/weaviate/weaviate-go-client/v4/weaviate"
	"github.com/weaviate/weaviate-go-client/v4/weaviate/auth"
	"github.com/weaviate/weaviate-go-client/v4/weaviate/graphql"
	"github.com/weaviate/weaviate/entities/models"
)

var (
	ANALYZED_DOCUMENT_CLASS        = "AnalyzedDocument"
	ANALYZED_DOCUMENT_CLASS_OBJECT = &models.Class{
		Class: ANALYZED_DOCUMENT_CLASS,
		Properties: []*models.Property{
			{Name: "content", DataType: []string{"text"}},
			{Name: "title", DataType: []string{"text"}},
			{Name: "fileType", DataType: []string{"text"}},
			{Name: "topics", DataType: []string{"text[]"}},
			{Name: "createdAt", DataType: []string{"int"}},
		},
		// Keyword index only; no vectorizer module is deployed.
		Vectorizer: "none",
	}
)

// SearchStore is a keyword (BM25) search index over analyzed documents.
// Records are indexed under their storage identifier, so index entries
// follow the record's lifecycle.
type SearchStore struct {
	client *weaviate.Client
}

func NewSearchStore(config config.SearchStoreConfig) (*SearchStore, error) {
	var scheme string
	if strings.Contains(config.Host, "https") {
		scheme = "https"
	} else {
		scheme = "http"
	}
	host := strings.TrimPrefix(config.Host, scheme+"://")
	cfg := weaviate.Config{
		Host:   host,
		Scheme: scheme,
	}
	if config.APIKey != "" {
		cfg.AuthConfig = auth.ApiKey{
			Value: config.APIKey,
		}
		cfg.Headers = map[string]string{
			"X-Weaviate-Api-Key":     config.APIKey,
			"X-Weaviate-Cluster-Url": fmt.Sprintf("%s://%s", scheme, host),
		}
	}
	client, err := weaviate.NewClient(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create weaviate client: %v", err)
	}

	schema, err := client.Schema().Getter().Do(context.Background())
	if err != nil {
		return nil, fmt.Errorf("failed to get schema: %v", err)
	}

	hasClass := false
	for _, class := range schema.Classes {
		if class.Class == ANALYZED_DOCUMENT_CLASS {
			hasClass = true
			break
		}
	}
	// Create AnalyzedDocument class if it doesn't exist
	if !hasClass {
		err = client.Schema().ClassCreator().WithClass(ANALYZED_DOCUMENT_CLASS_OBJECT).Do(context.Background())
		if err != nil {
			return nil, fmt.Errorf("failed to create AnalyzedDocument class: %v", err)
		}
	}
	return &SearchStore{
		client: client,
	}, nil
}

func (s *SearchStore) ReInit() error {
	err := s.client.Schema().ClassDeleter().WithClassName(ANALYZED_DOCUMENT_CLASS).Do(context.Background())
	if err != nil {
		return fmt.Errorf("failed to delete AnalyzedDocument class: %v", err)
	}

	err = s.client.Schema().ClassCreator().WithClass(ANALYZED_DOCUMENT_CLASS_OBJECT).Do(context.Background())
	if err != nil {
		return fmt.Errorf("failed to create AnalyzedDocument class: %v", err)
	}
	return nil
}

// IndexDocument upserts one persisted record into the index, reusing the
// record identifier as the object id.
func (s *SearchStore) IndexDocument(ctx context.Context, record *types.DocumentRecord) error {
	properties := map[string]interface{}{
		"content":   record.Content,
		"title":     record.Title,
		"fileType":  string(record.FileType),
		"createdAt": record.UploadDate,
	}
	if record.Analysis != nil {
		properties["topics"] = record.Analysis.Topics
	}

	_, err := s.client.Data().Creator().
		WithClassName(ANALYZED_DOCUMENT_CLASS).
		WithID(record.ID).
		WithProperties(properties).
		Do(ctx)
	return err
}

func (s *SearchStore) RemoveDocument(ctx context.Context, id string) error {
	return s.client.Data().Deleter().
		WithClassName(ANALYZED_DOCUMENT_CLASS).
		WithID(id).
		Do(ctx)
}

// Search runs a BM25 keyword query over titles, content and topics.
func (s *SearchStore) Search(ctx context.Context, query string, limit int) ([]types.SearchHit, error) {
	fields := []graphql.Field{
		{Name: "content"},
		{Name: "title"},
		{Name: "fileType"},
		{Name: "topics"},
		{Name: "createdAt"},
		{Name: "_additional", Fields: []graphql.Field{{Name: "score"}, {Name: "id"}}},
	}

	bm25 := (&graphql.BM25ArgumentBuilder{}).
		WithQuery(query).
		WithProperties("title", "content", "topics")

	getBuilder := s.client.GraphQL().Get().
		WithClassName(ANALYZED_DOCUMENT_CLASS).
		WithFields(fields...).
		WithBM25(bm25)
	if limit > 0 {
		getBuilder = getBuilder.WithLimit(limit)
	}

	result, err := getBuilder.Do(ctx)
	if err != nil {
		return nil, err
	}
	if result.Errors != nil {
		return nil, fmt.Errorf("search failed: %v", result.Errors[0].Message)
	}

	var hits []types.SearchHit
	if data, ok := result.Data["Get"].(map[string]interface{})[ANALYZED_DOCUMENT_CLASS].([]interface{}); ok {
		for _, item := range data {
			if hit, ok := parseHit(item); ok {
				hits = append(hits, hit)
			}
		}
	}

	return hits, nil
}

// parseHit converts one graphql result object into a SearchHit. Null or
// missing properties (objects written by an older schema) degrade to
// zero values instead of failing the whole result set.
func parseHit(item interface{}) (types.SearchHit, bool) {
	doc, ok := item.(map[string]interface{})
	if !ok {
		return types.SearchHit{}, false
	}
	hit := types.SearchHit{
		Content:  parseString(doc["content"]),
		Title:    parseString(doc["title"]),
		FileType: types.FormatKind(parseString(doc["fileType"])),
		Topics:   parseStringArray(doc["topics"]),
	}
	if additional, ok := doc["_additional"].(map[string]interface{}); ok {
		hit.ID = parseString(additional["id"])
		hit.Score = parseScore(additional["score"])
	}
	return hit, true
}

func parseString(value interface{}) string {
	s, _ := value.(string)
	return s
}

func parseStringArray(value interface{}) []string {
	items, ok := value.([]interface{})
	if !ok {
		return nil
	}
	var out []string
	for _, item := range items {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

// Weaviate reports BM25 scores as strings in _additional.
func parseScore(value interface{}) float64 {
	switch v := value.(type) {
	case string:
		score, _ := strconv.ParseFloat(v, 64)
		return score
	case float64:
		return v
	default:
		return 0
	}
}
