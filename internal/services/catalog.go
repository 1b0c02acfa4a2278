package services

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"encoresocial/internal/domain"
)

const (
	catalogLoadLimit = 100

	// CatalogPageSize is how many concerts each catalog page reveals.
	CatalogPageSize = 15
)

// DateRange selects an upcoming-date bucket for catalog filtering.
type DateRange string

const (
	DateRangeAll     DateRange = "all"
	DateRangeWeek    DateRange = "week"
	DateRangeMonth   DateRange = "month"
	DateRangeQuarter DateRange = "quarter"
)

// FilterCriteria narrows the catalog. Zero values mean "no constraint";
// criteria are ANDed with each other and with the free-text term.
type FilterCriteria struct {
	Genres    []string
	DateRange DateRange
	City      string
}

// Catalog is a stateful view over the upcoming-concert list: one loaded
// snapshot, the active filters, and a paging cursor over the filtered
// result. Safe for concurrent use.
type Catalog struct {
	concertRepo domain.ConcertRepository
	now         func() time.Time

	mu       sync.Mutex
	loading  bool
	all      []*domain.Concert
	filtered []*domain.Concert
	visible  int
	term     string
	criteria FilterCriteria
}

// NewCatalog creates an empty Catalog over the given repository. Call Load
// before reading from it.
func NewCatalog(concertRepo domain.ConcertRepository) *Catalog {
	return &Catalog{concertRepo: concertRepo, now: time.Now}
}

// Load fetches the upcoming snapshot (local date >= today, ascending, capped)
// and re-applies the active filters. Concurrent calls are single-flight: a
// call that finds a load in progress returns immediately.
func (c *Catalog) Load(ctx context.Context) error {
	c.mu.Lock()
	if c.loading {
		c.mu.Unlock()
		return nil
	}
	c.loading = true
	c.mu.Unlock()

	today := c.now().Format("2006-01-02")
	concerts, err := c.concertRepo.ListUpcoming(ctx, today, catalogLoadLimit)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.loading = false
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}
	c.all = concerts
	c.apply()
	return nil
}

// FilterByText sets the free-text term: a case-insensitive substring match
// against artist, concert name, venue, genre, or city. It resets paging.
func (c *Catalog) FilterByText(term string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.term = strings.TrimSpace(term)
	c.apply()
}

// FilterByCriteria sets the structured filters. It resets paging.
func (c *Catalog) FilterByCriteria(criteria FilterCriteria) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.criteria = criteria
	c.apply()
}

// apply rebuilds the filtered list and rewinds to the first page.
// Callers hold c.mu.
func (c *Catalog) apply() {
	cutoff := c.dateCutoff()
	c.filtered = c.filtered[:0]
	for _, concert := range c.all {
		if c.matches(concert, cutoff) {
			c.filtered = append(c.filtered, concert)
		}
	}
	c.visible = min(CatalogPageSize, len(c.filtered))
}

// dateCutoff returns the inclusive upper bound for the active date bucket,
// or "" for no bound. ISO dates compare chronologically as strings.
func (c *Catalog) dateCutoff() string {
	now := c.now()
	switch c.criteria.DateRange {
	case DateRangeWeek:
		return now.AddDate(0, 0, 7).Format("2006-01-02")
	case DateRangeMonth:
		return now.AddDate(0, 1, 0).Format("2006-01-02")
	case DateRangeQuarter:
		return now.AddDate(0, 3, 0).Format("2006-01-02")
	}
	return ""
}

func (c *Catalog) matches(concert *domain.Concert, dateCutoff string) bool {
	if c.term != "" {
		term := strings.ToLower(c.term)
		if !strings.Contains(strings.ToLower(concert.PrimaryArtist()), term) &&
			!strings.Contains(strings.ToLower(concert.Name), term) &&
			!strings.Contains(strings.ToLower(concert.VenueName()), term) &&
			!strings.Contains(strings.ToLower(concert.GenreName()), term) &&
			!strings.Contains(strings.ToLower(concert.CityName()), term) {
			return false
		}
	}
	if len(c.criteria.Genres) > 0 {
		genre := strings.ToLower(concert.GenreName())
		found := false
		for _, g := range c.criteria.Genres {
			if strings.ToLower(g) == genre {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	if c.criteria.City != "" && !strings.EqualFold(c.criteria.City, concert.CityName()) {
		return false
	}
	if dateCutoff != "" && concert.Dates.Start.LocalDate > dateCutoff {
		return false
	}
	return true
}

// Visible returns the currently paged-in slice of the filtered catalog.
func (c *Catalog) Visible() []*domain.Concert {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]*domain.Concert, c.visible)
	copy(out, c.filtered[:c.visible])
	return out
}

// HasMore reports whether LoadMore would reveal further entries.
func (c *Catalog) HasMore() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.visible < len(c.filtered)
}

// LoadMore reveals the next page of the filtered list.
func (c *Catalog) LoadMore() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.visible = min(c.visible+CatalogPageSize, len(c.filtered))
}

// Genres returns the distinct genre names in the loaded snapshot, sorted.
func (c *Catalog) Genres() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.distinct(func(concert *domain.Concert) string { return concert.GenreName() })
}

// Cities returns the distinct venue city names in the loaded snapshot, sorted.
func (c *Catalog) Cities() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.distinct(func(concert *domain.Concert) string { return concert.CityName() })
}

func (c *Catalog) distinct(key func(*domain.Concert) string) []string {
	seen := make(map[string]struct{})
	out := []string{}
	for _, concert := range c.all {
		v := key(concert)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}
