package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"hotel-booking-api/dto"
	"hotel-booking-api/models"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const searchCacheTTL = time.Minute

// HotelService answers hotel name searches. When Cache is non-nil, search
// results are served read-through from redis; the relational store stays
// the source of truth and the cache is versioned out on admin reset/seed.
type HotelService struct {
	DB    *gorm.DB
	Cache *redis.Client
}

func NewHotelService(db *gorm.DB, cache *redis.Client) *HotelService {
	return &HotelService{DB: db, Cache: cache}
}

// Search matches hotels by case-insensitive partial name, ordered by name.
// Callers must reject a blank name before calling.
func (s *HotelService) Search(ctx context.Context, name string) ([]dto.HotelSummary, error) {
	term := strings.ToLower(strings.TrimSpace(name))

	var cacheKey string
	if s.Cache != nil {
		cacheKey = fmt.Sprintf("hotel_search:%s:%s", SearchCacheVersion(ctx, s.Cache), term)
		var cached []dto.HotelSummary
		if hit, err := GetFromRedis(ctx, s.Cache, cacheKey, &cached); err == nil && hit {
			return cached, nil
		}
	}

	var hotels []dto.HotelSummary
	err := s.DB.WithContext(ctx).Model(&models.Hotel{}).
		Select("id", "name").
		Where("LOWER(name) LIKE ?", "%"+term+"%").
		Order("name ASC").
		Scan(&hotels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to search hotels: %w", err)
	}
	if hotels == nil {
		hotels = []dto.HotelSummary{}
	}

	if s.Cache != nil {
		// Best effort; a failed cache write must not fail the search.
		_ = SetToRedis(ctx, s.Cache, cacheKey, hotels, searchCacheTTL)
	}
	return hotels, nil
}
