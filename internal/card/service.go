// Copyright (c) 2026 Cardex. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package card

import (
	"context"
	"net/url"

	"golang.org/x/sync/errgroup"

	"github.com/taibuivan/cardex/internal/platform/constants"
)

// # Service Layer

// Service orchestrates the catalogue's read operations.
//
// It owns the interpreters, consults the optional result cache, and runs the
// screen path's paired store reads concurrently.
type Service struct {
	repo   Repository
	search *SearchInterpreter
	screen *ScreenInterpreter
	cache  *ResultCache
}

// NewService constructs a catalogue [Service]. The cache may be nil, in
// which case every request goes straight to the record store.
func NewService(repo Repository, cache *ResultCache) *Service {
	return &Service{
		repo:   repo,
		search: NewSearchInterpreter(NewMatcher(Monsters)),
		screen: NewScreenInterpreter(),
		cache:  cache,
	}
}

/*
Hint returns the full reference-domain payload.

Returns:
  - Hint: All criteria domains plus searchable/sortable field lists
*/
func (service *Service) Hint() Hint {
	return NewHint()
}

/*
Search runs the single-field permissive lookup.

Description: Interprets the raw query (validation happens entirely before any
store access), then fetches every matching record. The reported total is the
result-set size, since search is unpaginated.

Parameters:
  - context: context.Context
  - raw: url.Values

Returns:
  - []Info: Matching card projections
  - int: Result count
  - error: [ErrInvalidSearch] or store failures
*/
func (service *Service) Search(context context.Context, raw url.Values) ([]Info, int, error) {

	// Interpret first so invalid queries never touch cache or store.
	filter, err := service.search.Build(raw)
	if err != nil {
		return nil, 0, err
	}

	cacheKey := constants.RedisPrefixSearch + raw.Encode()
	if data, total, ok := service.cache.Get(context, cacheKey); ok {
		return data, total, nil
	}

	cards, err := service.repo.FindCards(context, filter)
	if err != nil {
		return nil, 0, err
	}

	data := project(cards)
	service.cache.Set(context, cacheKey, data, len(data))

	return data, len(data), nil
}

/*
Screen runs the strict multi-field filter with pagination and sort.

Description: After interpretation, the windowed fetch and the unwindowed
count execute concurrently against the identical compiled filter. The two
reads carry no snapshot guarantee; they are independent by design.

Parameters:
  - context: context.Context
  - raw: url.Values

Returns:
  - []Info: One window of matching card projections
  - int: Total match count ignoring the window
  - error: [ErrInvalidScreen] or store failures
*/
func (service *Service) Screen(context context.Context, raw url.Values) ([]Info, int, error) {

	filter, window, err := service.screen.Build(raw)
	if err != nil {
		return nil, 0, err
	}

	cacheKey := constants.RedisPrefixScreen + raw.Encode()
	if data, total, ok := service.cache.Get(context, cacheKey); ok {
		return data, total, nil
	}

	var cards []*Card
	var total int

	group, groupCtx := errgroup.WithContext(context)
	group.Go(func() error {
		var err error
		cards, err = service.repo.FindCardsWindow(groupCtx, filter, window)
		return err
	})
	group.Go(func() error {
		var err error
		total, err = service.repo.CountCards(groupCtx, filter)
		return err
	})

	if err := group.Wait(); err != nil {
		return nil, 0, err
	}

	data := project(cards)
	service.cache.Set(context, cacheKey, data, total)

	return data, total, nil
}

// project maps records to their outward projections. The result is never
// nil so an empty set serializes as [] rather than null.
func project(cards []*Card) []Info {
	data := make([]Info, 0, len(cards))
	for _, c := range cards {
		data = append(data, c.Info())
	}
	return data
}
