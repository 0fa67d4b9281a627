package storage

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/xaenox/campus-chatbot/internal/models"
)

// MemoryStorage keeps the five relations in slices, in id order. It mirrors
// the SQL backends' matching semantics and is used for tests and for running
// without a database.
type MemoryStorage struct {
	mu         sync.RWMutex
	faqs       []models.FAQ
	schedules  []models.ClassSchedule
	dining     []models.DiningVenue
	facilities []models.Facility
	library    []models.LibrarySection
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{}
}

// AddFAQ stores f with the next id and returns it.
func (s *MemoryStorage) AddFAQ(f models.FAQ) models.FAQ {
	s.mu.Lock()
	defer s.mu.Unlock()
	f.ID = int64(len(s.faqs) + 1)
	s.faqs = append(s.faqs, f)
	return f
}

func (s *MemoryStorage) AddSchedule(r models.ClassSchedule) models.ClassSchedule {
	s.mu.Lock()
	defer s.mu.Unlock()
	r.ID = int64(len(s.schedules) + 1)
	s.schedules = append(s.schedules, r)
	return r
}

func (s *MemoryStorage) AddDiningVenue(d models.DiningVenue) models.DiningVenue {
	s.mu.Lock()
	defer s.mu.Unlock()
	d.ID = int64(len(s.dining) + 1)
	s.dining = append(s.dining, d)
	return d
}

func (s *MemoryStorage) AddFacility(f models.Facility) models.Facility {
	s.mu.Lock()
	defer s.mu.Unlock()
	f.ID = int64(len(s.facilities) + 1)
	s.facilities = append(s.facilities, f)
	return f
}

func (s *MemoryStorage) AddLibrarySection(l models.LibrarySection) models.LibrarySection {
	s.mu.Lock()
	defer s.mu.Unlock()
	l.ID = int64(len(s.library) + 1)
	s.library = append(s.library, l)
	return l
}

// NewSeededMemoryStorage returns an in-memory store preloaded with the
// sample dataset.
func NewSeededMemoryStorage() *MemoryStorage {
	s := NewMemoryStorage()
	s.Reset(context.Background())
	return s
}

func (s *MemoryStorage) SearchFAQs(ctx context.Context, tokens []string, limit int) ([]models.FAQMatch, error) {
	if len(tokens) == 0 {
		return nil, nil
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	var matches []models.FAQMatch
	for _, f := range s.faqs {
		score := 0
		for _, tok := range tokens {
			if containsFold(f.Question, tok) {
				score++
			}
			if containsFold(f.Answer, tok) {
				score++
			}
		}
		if score > 0 {
			matches = append(matches, models.FAQMatch{FAQ: f, Score: score})
		}
	}

	// Stable keeps id order among equal scores.
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})

	if len(matches) > limit {
		matches = matches[:limit]
	}
	return matches, nil
}

func (s *MemoryStorage) SearchTable(ctx context.Context, table models.Table, tokens []string, limit int) ([]models.Record, error) {
	if len(tokens) == 0 {
		return nil, nil
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	var records []models.Record
	appendIfMatch := func(r models.Record, cols ...string) {
		if len(records) < limit && anyTokenMatches(tokens, cols) {
			records = append(records, r)
		}
	}

	switch table {
	case models.TableSchedules:
		for _, r := range s.schedules {
			appendIfMatch(r, r.Department, r.Course, r.Details)
		}
	case models.TableDining:
		for _, r := range s.dining {
			appendIfMatch(r, r.Name, r.Menu, r.Notes)
		}
	case models.TableLibrary:
		for _, r := range s.library {
			appendIfMatch(r, r.Section, r.Services, r.Notes)
		}
	case models.TableFacilities:
		for _, r := range s.facilities {
			appendIfMatch(r, r.Name, r.Description, r.Location)
		}
	}

	return records, nil
}

func anyTokenMatches(tokens []string, cols []string) bool {
	for _, tok := range tokens {
		for _, col := range cols {
			if containsFold(col, tok) {
				return true
			}
		}
	}
	return false
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

func (s *MemoryStorage) Reset(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.faqs = make([]models.FAQ, len(seedFAQs))
	for i, f := range seedFAQs {
		f.ID = int64(i + 1)
		s.faqs[i] = f
	}

	s.schedules = make([]models.ClassSchedule, len(seedSchedules))
	for i, r := range seedSchedules {
		r.ID = int64(i + 1)
		s.schedules[i] = r
	}

	s.dining = make([]models.DiningVenue, len(seedDining))
	for i, d := range seedDining {
		d.ID = int64(i + 1)
		s.dining[i] = d
	}

	s.facilities = make([]models.Facility, len(seedFacilities))
	for i, f := range seedFacilities {
		f.ID = int64(i + 1)
		s.facilities[i] = f
	}

	s.library = make([]models.LibrarySection, len(seedLibrary))
	for i, l := range seedLibrary {
		l.ID = int64(i + 1)
		s.library[i] = l
	}

	return nil
}

func (s *MemoryStorage) Ping(ctx context.Context) error {
	return nil
}

func (s *MemoryStorage) Close() error {
	// Nothing to close for in-memory storage
	return nil
}
