package service

import (
	"context"
	"sort"
	"strings"
	"time"

	"vaccine-village-go/internal/model"
	"vaccine-village-go/pkg/log"

	"github.com/patrickmn/go-cache"
)

const searchResultSize = 20

// ResourceIndexer is the full-text backend for resource search.
type ResourceIndexer interface {
	IndexResource(ctx context.Context, r model.Resource) error
	Search(ctx context.Context, query, category string, size int) ([]model.ResourceHit, error)
}

// ResourceService serves the educational resource catalog.
type ResourceService interface {
	// List returns resources in catalog order; an empty category means all.
	List(category string) []model.Resource
	Get(id string) (model.Resource, bool)
	Search(ctx context.Context, query, category string) ([]model.ResourceHit, error)
	// Seed indexes the catalog into the search backend.
	Seed(ctx context.Context) error
}

type resourceService struct {
	resources []model.Resource
	index     ResourceIndexer
	cache     *cache.Cache
}

// NewResourceService creates a ResourceService over the built-in catalog.
// A nil index makes Search fall back to in-memory matching.
func NewResourceService(index ResourceIndexer, cacheTTL time.Duration) ResourceService {
	if cacheTTL <= 0 {
		cacheTTL = 5 * time.Minute
	}
	return &resourceService{
		resources: builtinResources,
		index:     index,
		cache:     cache.New(cacheTTL, 2*cacheTTL),
	}
}

func validCategory(category string) bool {
	switch category {
	case "", model.CategoryGeneral, model.CategorySchedules, model.CategorySafety:
		return true
	}
	return false
}

func (s *resourceService) List(category string) []model.Resource {
	out := make([]model.Resource, 0, len(s.resources))
	for _, r := range s.resources {
		if category == "" || r.Category == category {
			out = append(out, r)
		}
	}
	return out
}

func (s *resourceService) Get(id string) (model.Resource, bool) {
	for _, r := range s.resources {
		if r.ID == id {
			return r, true
		}
	}
	return model.Resource{}, false
}

func (s *resourceService) Search(ctx context.Context, query, category string) ([]model.ResourceHit, error) {
	if !validCategory(category) {
		return nil, ErrInvalidCategory
	}
	query = strings.TrimSpace(query)
	key := category + "|" + strings.ToLower(query)
	if cached, ok := s.cache.Get(key); ok {
		return cached.([]model.ResourceHit), nil
	}

	if s.index == nil {
		hits := s.localSearch(query, category)
		s.cache.SetDefault(key, hits)
		return hits, nil
	}

	hits, err := s.index.Search(ctx, query, category, searchResultSize)
	if err != nil {
		// not cached, so the next query retries the index
		log.Warnf("Resource search backend failed, matching in memory: %v", err)
		return s.localSearch(query, category), nil
	}
	s.cache.SetDefault(key, hits)
	return hits, nil
}

// localSearch scores title matches above tag matches above description matches.
func (s *resourceService) localSearch(query, category string) []model.ResourceHit {
	terms := strings.Fields(strings.ToLower(query))
	hits := []model.ResourceHit{}
	for _, r := range s.List(category) {
		score := 0.0
		if len(terms) == 0 {
			score = 1
		}
		title := strings.ToLower(r.Title)
		desc := strings.ToLower(r.Description)
		tags := strings.ToLower(strings.Join(r.Tags, " "))
		for _, t := range terms {
			if strings.Contains(title, t) {
				score += 3
			}
			if strings.Contains(tags, t) {
				score += 2
			}
			if strings.Contains(desc, t) {
				score++
			}
		}
		if score > 0 {
			hits = append(hits, model.ResourceHit{Resource: r, Score: score})
		}
	}
	sort.SliceStable(hits, func(i, j int) bool { return hits[i].Score > hits[j].Score })
	if len(hits) > searchResultSize {
		hits = hits[:searchResultSize]
	}
	return hits
}

func (s *resourceService) Seed(ctx context.Context) error {
	if s.index == nil {
		return nil
	}
	for _, r := range s.resources {
		if err := s.index.IndexResource(ctx, r); err != nil {
			return err
		}
	}
	s.cache.Flush()
	log.Infof("Seeded %d resources into the search index", len(s.resources))
	return nil
}
