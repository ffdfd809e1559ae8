// Package catalog describes the media catalog rooms draw their cards from.
// The service never queries a catalog itself; clients fetch pages and send item ids,
// which are cleaned with UniqueIDs before a deck is built.
package catalog

import (
	"context"

	"swipe-service/domain"
)

type Item struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Overview    string  `json:"overview,omitempty"`
	PosterPath  string  `json:"poster_path,omitempty"`
	ReleaseDate string  `json:"release_date,omitempty"`
	VoteAverage float64 `json:"vote_average,omitempty"`
	GenreIDs    []int64 `json:"genre_ids,omitempty"`
}

type Filters struct {
	MediaType   domain.MediaType
	GenreIDs    []int64
	WatchRegion string
	ProviderIDs []int64
}

type Page struct {
	Page       int    `json:"page"`
	TotalPages int    `json:"total_pages"`
	Results    []Item `json:"results"`
}

type Source interface {
	Discover(ctx context.Context, page int, filters Filters) (*Page, error)
	Details(ctx context.Context, itemID int64) (*Item, error)
}

// UniqueIDs drops non-positive and repeated ids, keeping first occurrences in order.
func UniqueIDs(ids []int64) []int64 {
	seen := make(map[int64]struct{}, len(ids))
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if id <= 0 {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
