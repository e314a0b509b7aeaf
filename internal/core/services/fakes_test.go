package services_test

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/PuerkitoBio/goquery"
	"github.com/cequiv/currency_equivalences_app/internal/apperrors"
	"github.com/cequiv/currency_equivalences_app/internal/core/domain"
	portsrepo "github.com/cequiv/currency_equivalences_app/internal/core/ports/repositories"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// fakeFetcher serves canned HTML documents keyed by URL and counts how
// often each URL was requested.
type fakeFetcher struct {
	mu      sync.Mutex
	pages   map[string]string
	fetches map[string]int
}

func newFakeFetcher(pages map[string]string) *fakeFetcher {
	return &fakeFetcher{pages: pages, fetches: make(map[string]int)}
}

func (f *fakeFetcher) Fetch(_ context.Context, pageURL string) (*goquery.Document, error) {
	f.mu.Lock()
	f.fetches[pageURL]++
	html, ok := f.pages[pageURL]
	f.mu.Unlock()
	if !ok {
		return nil, fmt.Errorf("no document at %s", pageURL)
	}
	return goquery.NewDocumentFromReader(strings.NewReader(html))
}

func (f *fakeFetcher) totalFetches() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	total := 0
	for _, n := range f.fetches {
		total += n
	}
	return total
}

// memStore is an in-memory stand-in for both repositories, enforcing the
// same uniqueness rules as the database schema.
type memStore struct {
	mu         sync.Mutex
	currencies map[string]domain.Currency // by ID
	byKey      map[string]string          // country|name -> ID
	facts      map[string]domain.Equivalence
	upsertErr  error
}

var (
	_ portsrepo.CurrencyRepositoryFacade    = (*memStore)(nil)
	_ portsrepo.EquivalenceRepositoryFacade = (*memStore)(nil)
)

func newMemStore() *memStore {
	return &memStore{
		currencies: make(map[string]domain.Currency),
		byKey:      make(map[string]string),
		facts:      make(map[string]domain.Equivalence),
	}
}

func factKey(currencyID string, year, month int) string {
	return fmt.Sprintf("%s|%d|%d", currencyID, year, month)
}

func (s *memStore) FindOrCreateCurrency(_ context.Context, country, name string, defaultEquivalence decimal.Decimal, actor string) (*domain.Currency, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := country + "|" + name
	if id, ok := s.byKey[key]; ok {
		existing := s.currencies[id]
		return &existing, nil
	}
	currency := domain.Currency{
		CurrencyID:  uuid.NewString(),
		Country:     country,
		Name:        name,
		Equivalence: defaultEquivalence,
	}
	currency.CreatedBy = actor
	currency.LastUpdatedBy = actor
	s.currencies[currency.CurrencyID] = currency
	s.byKey[key] = currency.CurrencyID
	return &currency, nil
}

// FindOrCreateCurrencyInTx ignores the transaction handle; the in-memory
// map has no isolation to honor.
func (s *memStore) FindOrCreateCurrencyInTx(ctx context.Context, _ pgx.Tx, country, name string, defaultEquivalence decimal.Decimal, actor string) (*domain.Currency, error) {
	return s.FindOrCreateCurrency(ctx, country, name, defaultEquivalence, actor)
}

func (s *memStore) FindCurrencyByID(_ context.Context, currencyID string) (*domain.Currency, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	currency, ok := s.currencies[currencyID]
	if !ok {
		return nil, apperrors.NewNotFoundError("currency not found")
	}
	return &currency, nil
}

func (s *memStore) ListCurrencies(_ context.Context) ([]domain.Currency, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Currency, 0, len(s.currencies))
	for _, c := range s.currencies {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Country < out[j].Country })
	return out, nil
}

func (s *memStore) ListCurrenciesWithEquivalences(_ context.Context) ([]domain.Currency, error) {
	s.mu.Lock()
	withFacts := make(map[string]bool)
	for _, fact := range s.facts {
		withFacts[fact.CurrencyID] = true
	}
	out := make([]domain.Currency, 0, len(withFacts))
	for id := range withFacts {
		out = append(out, s.currencies[id])
	}
	s.mu.Unlock()
	sort.Slice(out, func(i, j int) bool { return out[i].Country < out[j].Country })
	return out, nil
}

// RecordFact mirrors the transactional semantics of the real repository:
// when the fact write fails, a currency created for it is not kept.
func (s *memStore) RecordFact(_ context.Context, country, name string, equivalence decimal.Decimal, year, month int, actor string) (*domain.Currency, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.upsertErr != nil {
		return nil, s.upsertErr
	}

	key := country + "|" + name
	var currency domain.Currency
	if id, ok := s.byKey[key]; ok {
		currency = s.currencies[id]
	} else {
		currency = domain.Currency{
			CurrencyID:  uuid.NewString(),
			Country:     country,
			Name:        name,
			Equivalence: equivalence,
		}
		currency.CreatedBy = actor
		currency.LastUpdatedBy = actor
		s.currencies[currency.CurrencyID] = currency
		s.byKey[key] = currency.CurrencyID
	}

	fkey := factKey(currency.CurrencyID, year, month)
	if existing, ok := s.facts[fkey]; ok {
		existing.Equivalence = equivalence
		existing.LastUpdatedBy = actor
		s.facts[fkey] = existing
		return &currency, nil
	}
	fact := domain.Equivalence{
		EquivalenceID: uuid.NewString(),
		CurrencyID:    currency.CurrencyID,
		Year:          year,
		Month:         month,
		Equivalence:   equivalence,
	}
	fact.CreatedBy = actor
	fact.LastUpdatedBy = actor
	s.facts[fkey] = fact
	return &currency, nil
}

func (s *memStore) FindByCurrencyAndPeriod(_ context.Context, currencyID string, year, month int) (*domain.Equivalence, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fact, ok := s.facts[factKey(currencyID, year, month)]
	if !ok {
		return nil, apperrors.NewNotFoundError("equivalence not found")
	}
	return &fact, nil
}

func (s *memStore) AvailableYears(_ context.Context) ([]int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	seen := make(map[int]bool)
	for _, fact := range s.facts {
		seen[fact.Year] = true
	}
	years := make([]int, 0, len(seen))
	for y := range seen {
		years = append(years, y)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(years)))
	return years, nil
}

func (s *memStore) AvailableMonths(_ context.Context) ([]int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	seen := make(map[int]bool)
	for _, fact := range s.facts {
		seen[fact.Month] = true
	}
	months := make([]int, 0, len(seen))
	for m := range seen {
		months = append(months, m)
	}
	sort.Ints(months)
	return months, nil
}

func (s *memStore) MonthsByYear(_ context.Context) (map[int][]int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	grouped := make(map[int]map[int]bool)
	for _, fact := range s.facts {
		if grouped[fact.Year] == nil {
			grouped[fact.Year] = make(map[int]bool)
		}
		grouped[fact.Year][fact.Month] = true
	}
	out := make(map[int][]int, len(grouped))
	for year, months := range grouped {
		list := make([]int, 0, len(months))
		for m := range months {
			list = append(list, m)
		}
		sort.Ints(list)
		out[year] = list
	}
	return out, nil
}

func (s *memStore) YearExists(_ context.Context, year int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, fact := range s.facts {
		if fact.Year == year {
			return true, nil
		}
	}
	return false, nil
}

func (s *memStore) MonthExists(_ context.Context, year, month int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, fact := range s.facts {
		if fact.Year == year && fact.Month == month {
			return true, nil
		}
	}
	return false, nil
}

func (s *memStore) MissingMonths(ctx context.Context, year int) ([]int, error) {
	present := make(map[int]bool)
	s.mu.Lock()
	for _, fact := range s.facts {
		if fact.Year == year {
			present[fact.Month] = true
		}
	}
	s.mu.Unlock()
	missing := make([]int, 0, 12)
	for m := 1; m <= 12; m++ {
		if !present[m] {
			missing = append(missing, m)
		}
	}
	return missing, nil
}

// findCurrencyByName is a test helper, not part of any repository port.
func (s *memStore) findCurrencyByName(name string) (domain.Currency, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.currencies {
		if c.Name == name {
			return c, true
		}
	}
	return domain.Currency{}, false
}

func (s *memStore) factCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.facts)
}

func (s *memStore) currencyCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.currencies)
}
