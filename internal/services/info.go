package services

import (
	"context"

	"github.com/sbilibin2017/museum-guide/internal/logger"
)

// ExtractFetcher retrieves article extracts from the external encyclopedia API.
type ExtractFetcher interface {
	GetExtract(ctx context.Context, title string) (string, error)
}

// ExtractCache caches extracts between lookups.
type ExtractCache interface {
	GetExtract(ctx context.Context, name string) (string, error)
	SetExtract(ctx context.Context, name, extract string) error
}

// InfoService serves museum background information from Wikipedia with an
// optional cache in front. Lookups never fail a request: errors degrade to a
// placeholder response.
type InfoService struct {
	wiki  ExtractFetcher
	cache ExtractCache
}

// NewInfoService creates a new InfoService. The cache may be nil.
func NewInfoService(wiki ExtractFetcher, cache ExtractCache) *InfoService {
	return &InfoService{
		wiki:  wiki,
		cache: cache,
	}
}

// GetMuseumInfo returns background text for the museum name and whether the
// lookup succeeded. On upstream failure it returns a placeholder and false.
func (s *InfoService) GetMuseumInfo(ctx context.Context, name string) (string, bool) {
	if s.cache != nil {
		if extract, err := s.cache.GetExtract(ctx, name); err == nil && extract != "" {
			return extract, true
		}
	}

	extract, err := s.wiki.GetExtract(ctx, name)
	if err != nil {
		return "API unavailable", false
	}
	if extract == "" {
		return "Information not available", true
	}

	if s.cache != nil {
		if err := s.cache.SetExtract(ctx, name, extract); err != nil {
			logger.Log.Warnw("failed to cache museum info", "name", name, "error", err)
		}
	}

	return extract, true
}
