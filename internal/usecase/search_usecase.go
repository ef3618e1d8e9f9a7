package usecase

import (
	"context"
	"strings"
	"sync"
	"time"

	"carezone-storefront/internal/domain"
	"carezone-storefront/pkg/logger"
)

// SearchGateway is the slice of the backend client search needs.
type SearchGateway interface {
	SearchProducts(ctx context.Context, term string) ([]domain.Product, error)
}

// SearchUsecase is the search-as-you-type pipeline: keystrokes are
// debounced, duplicate consecutive terms are suppressed, and results are
// delivered through a callback. In-flight requests are never cancelled, so
// the last response to arrive wins.
type SearchUsecase struct {
	mu       sync.Mutex
	gateway  SearchGateway
	debounce time.Duration
	onResult func(term string, products []domain.Product)

	timer    *time.Timer
	lastTerm string
	hasLast  bool

	resultsTerm string
	results     []domain.Product
}

func NewSearchUsecase(gateway SearchGateway, debounce time.Duration, onResult func(term string, products []domain.Product)) *SearchUsecase {
	if onResult == nil {
		onResult = func(string, []domain.Product) {}
	}
	return &SearchUsecase{
		gateway:  gateway,
		debounce: debounce,
		onResult: onResult,
	}
}

// Type feeds one keystroke's worth of input. The query fires only after the
// debounce window passes with no further input, and only when the term
// differs from the previously fired one. The context is detached from
// cancellation: the caller's request is long gone by the time the window
// closes.
func (u *SearchUsecase) Type(ctx context.Context, term string) {
	term = strings.TrimSpace(term)
	fireCtx := context.WithoutCancel(ctx)

	u.mu.Lock()
	defer u.mu.Unlock()

	if u.timer != nil {
		u.timer.Stop()
	}
	u.timer = time.AfterFunc(u.debounce, func() {
		u.fire(fireCtx, term)
	})
}

func (u *SearchUsecase) fire(ctx context.Context, term string) {
	u.mu.Lock()
	if u.hasLast && term == u.lastTerm {
		u.mu.Unlock()
		return
	}
	u.lastTerm = term
	u.hasLast = true
	u.mu.Unlock()

	if term == "" {
		u.setResults(term, nil)
		u.onResult(term, nil)
		return
	}

	products, err := u.gateway.SearchProducts(ctx, term)
	if err != nil {
		logger.Error().Err(err).Str("term", term).Msg("Search request failed")
		return
	}
	u.setResults(term, products)
	u.onResult(term, products)
}

func (u *SearchUsecase) setResults(term string, products []domain.Product) {
	u.mu.Lock()
	u.resultsTerm = term
	u.results = products
	u.mu.Unlock()
}

// Results returns the term and products of the most recently completed
// debounced query.
func (u *SearchUsecase) Results() (string, []domain.Product) {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.resultsTerm, u.results
}

// Search runs an immediate query, bypassing the debounce pipeline.
func (u *SearchUsecase) Search(ctx context.Context, term string) ([]domain.Product, error) {
	return u.gateway.SearchProducts(ctx, strings.TrimSpace(term))
}
