package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"

	"vaccine-village-go/internal/model"
	"vaccine-village-go/internal/repository"
	"vaccine-village-go/pkg/log"
	"vaccine-village-go/pkg/responder"

	"github.com/gowebpki/jcs"
)

// BundleStore holds offline bundle objects.
type BundleStore interface {
	Exists(ctx context.Context, objectName string) (bool, error)
	Put(ctx context.Context, objectName string, data []byte, contentType string) error
	PresignedURL(ctx context.Context, objectName string) (string, error)
}

// OfflineBundle is everything the app needs to answer questions offline in
// one language.
type OfflineBundle struct {
	Language  string                        `json:"language"`
	Languages []responder.Language          `json:"languages"`
	Responses map[string]responder.Response `json:"responses"`
	Resources []model.Resource              `json:"resources"`
}

// OfflineBundleInfo points at a stored bundle.
type OfflineBundleInfo struct {
	Language string `json:"language"`
	Digest   string `json:"digest"`
	URL      string `json:"url"`
	Size     int    `json:"size"`
}

// OfflineService builds and publishes offline content bundles.
type OfflineService interface {
	// Prepare builds the bundle for language, stores it if the same content
	// is not stored yet, and marks the user's offline-downloaded flag.
	Prepare(ctx context.Context, userID uint, language string) (*OfflineBundleInfo, error)
}

type offlineService struct {
	catalog   *responder.Catalog
	resources ResourceService
	store     BundleStore
	prefRepo  repository.PreferenceRepository
}

// NewOfflineService creates a new OfflineService.
func NewOfflineService(catalog *responder.Catalog, resources ResourceService, store BundleStore, prefRepo repository.PreferenceRepository) OfflineService {
	if catalog == nil {
		catalog = responder.DefaultCatalog()
	}
	return &offlineService{catalog: catalog, resources: resources, store: store, prefRepo: prefRepo}
}

// BuildOfflineBundle resolves every topic for language.
func BuildOfflineBundle(catalog *responder.Catalog, resources []model.Resource, language string) OfflineBundle {
	responses := make(map[string]responder.Response, len(responder.Topics))
	for _, topic := range responder.Topics {
		res := catalog.Lookup(topic, language)
		responses[string(topic)] = res.Response
	}
	return OfflineBundle{
		Language:  language,
		Languages: catalog.Languages(),
		Responses: responses,
		Resources: resources,
	}
}

// canonicalBundle returns the RFC 8785 form of b and its SHA-256 digest.
func canonicalBundle(b OfflineBundle) ([]byte, string, error) {
	raw, err := json.Marshal(b)
	if err != nil {
		return nil, "", err
	}
	canonical, err := jcs.Transform(raw)
	if err != nil {
		return nil, "", fmt.Errorf("canonicalize bundle: %w", err)
	}
	sum := sha256.Sum256(canonical)
	return canonical, hex.EncodeToString(sum[:]), nil
}

func (s *offlineService) Prepare(ctx context.Context, userID uint, language string) (*OfflineBundleInfo, error) {
	language = strings.ToLower(strings.TrimSpace(language))
	if !s.catalog.Supports(language) {
		return nil, ErrUnsupportedLanguage
	}

	data, digest, err := canonicalBundle(BuildOfflineBundle(s.catalog, s.resources.List(""), language))
	if err != nil {
		return nil, err
	}
	objectName := fmt.Sprintf("bundles/%s/%s.json", language, digest)

	exists, err := s.store.Exists(ctx, objectName)
	if err != nil {
		return nil, fmt.Errorf("check bundle: %w", err)
	}
	if !exists {
		if err := s.store.Put(ctx, objectName, data, "application/json"); err != nil {
			return nil, fmt.Errorf("store bundle: %w", err)
		}
		log.Infof("Stored offline bundle %s (%d bytes)", objectName, len(data))
	}

	url, err := s.store.PresignedURL(ctx, objectName)
	if err != nil {
		return nil, fmt.Errorf("presign bundle: %w", err)
	}

	downloaded := true
	if err := s.prefRepo.Update(ctx, userID, model.PreferencesUpdate{OfflineDownloaded: &downloaded}); err != nil {
		log.Warnf("Failed to mark offline download for user %d: %v", userID, err)
	}

	return &OfflineBundleInfo{Language: language, Digest: digest, URL: url, Size: len(data)}, nil
}
