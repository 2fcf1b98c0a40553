// Package es indexes and searches vaccine resources in Elasticsearch.
package es

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"vaccine-village-go/internal/config"
	"vaccine-village-go/internal/model"
	"vaccine-village-go/pkg/log"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
)

const resourceMapping = `{
	"mappings": {
		"properties": {
			"id":          { "type": "keyword" },
			"title":       { "type": "text" },
			"description": { "type": "text" },
			"category":    { "type": "keyword" },
			"source":      { "type": "text", "fields": { "raw": { "type": "keyword" } } },
			"url":         { "type": "keyword", "index": false },
			"tags":        { "type": "text", "fields": { "keyword": { "type": "keyword" } } }
		}
	}
}`

// ResourceIndex wraps one Elasticsearch index of model.Resource documents.
type ResourceIndex struct {
	client    *elasticsearch.Client
	indexName string
}

// NewResourceIndex connects to Elasticsearch and creates the index if missing.
func NewResourceIndex(esCfg config.ElasticsearchConfig) (*ResourceIndex, error) {
	cfg := elasticsearch.Config{
		Addresses: strings.Split(esCfg.Addresses, ","),
		Username:  esCfg.Username,
		Password:  esCfg.Password,
		Transport: &http.Transport{
			TLSClientConfig: &tls.Config{InsecureSkipVerify: true},
		},
	}
	client, err := elasticsearch.NewClient(cfg)
	if err != nil {
		return nil, err
	}
	idx := &ResourceIndex{client: client, indexName: esCfg.IndexName}
	if err := idx.createIndexIfNotExists(); err != nil {
		return nil, err
	}
	return idx, nil
}

func (i *ResourceIndex) createIndexIfNotExists() error {
	res, err := i.client.Indices.Exists([]string{i.indexName})
	if err != nil {
		return err
	}
	res.Body.Close()
	if res.StatusCode == http.StatusOK {
		log.Infof("Index '%s' already exists", i.indexName)
		return nil
	}
	if res.StatusCode != http.StatusNotFound {
		return fmt.Errorf("unexpected status %d checking index '%s'", res.StatusCode, i.indexName)
	}

	res, err = i.client.Indices.Create(
		i.indexName,
		i.client.Indices.Create.WithBody(strings.NewReader(resourceMapping)),
	)
	if err != nil {
		return err
	}
	defer res.Body.Close()
	if res.IsError() {
		return fmt.Errorf("create index '%s': %s", i.indexName, res.String())
	}
	log.Infof("Index '%s' created", i.indexName)
	return nil
}

// IndexResource upserts r under its id.
func (i *ResourceIndex) IndexResource(ctx context.Context, r model.Resource) error {
	body, err := json.Marshal(r)
	if err != nil {
		return err
	}
	req := esapi.IndexRequest{
		Index:      i.indexName,
		DocumentID: r.ID,
		Body:       bytes.NewReader(body),
		Refresh:    "true",
	}
	res, err := req.Do(ctx, i.client)
	if err != nil {
		return err
	}
	defer res.Body.Close()
	if res.IsError() {
		log.Errorf("Failed to index resource %s: %s", r.ID, res.String())
		return errors.New("failed to index resource")
	}
	return nil
}

// Search runs a full-text query over title, description and tags. An empty
// query matches everything; category, when set, filters exactly.
func (i *ResourceIndex) Search(ctx context.Context, query, category string, size int) ([]model.ResourceHit, error) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(buildSearchQuery(query, category, size)); err != nil {
		return nil, err
	}

	res, err := i.client.Search(
		i.client.Search.WithContext(ctx),
		i.client.Search.WithIndex(i.indexName),
		i.client.Search.WithBody(&buf),
	)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()
	if res.IsError() {
		return nil, fmt.Errorf("search resources: %s", res.String())
	}

	var parsed struct {
		Hits struct {
			Hits []struct {
				Score  float64        `json:"_score"`
				Source model.Resource `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return nil, err
	}
	hits := make([]model.ResourceHit, 0, len(parsed.Hits.Hits))
	for _, h := range parsed.Hits.Hits {
		hits = append(hits, model.ResourceHit{Resource: h.Source, Score: h.Score})
	}
	return hits, nil
}

func buildSearchQuery(query, category string, size int) map[string]interface{} {
	if size <= 0 {
		size = 20
	}
	boolQuery := map[string]interface{}{}
	if q := strings.TrimSpace(query); q != "" {
		boolQuery["must"] = map[string]interface{}{
			"multi_match": map[string]interface{}{
				"query":     q,
				"fields":    []string{"title^3", "tags^2", "description"},
				"fuzziness": "AUTO",
			},
		}
	} else {
		boolQuery["must"] = map[string]interface{}{"match_all": map[string]interface{}{}}
	}
	if category != "" {
		boolQuery["filter"] = map[string]interface{}{
			"term": map[string]interface{}{"category": category},
		}
	}
	return map[string]interface{}{
		"size":  size,
		"query": map[string]interface{}{"bool": boolQuery},
	}
}
