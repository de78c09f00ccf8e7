package services

import (
	"errors"
	"sort"
	"strconv"
	"sync"

	"github.com/address-parser-ar/app/models"
	"github.com/address-parser-ar/pkg/addr"
	"go.uber.org/zap"
)

var ErrReviewNotFound = errors.New("review entry not found")

// ReviewService holds address lines whose parse resolved to unknown, pending
// a human decision. It has no influence on pkg/addr.Parser.Parse, which stays
// a pure function of its input and cache.
type ReviewService struct {
	mu      sync.Mutex
	entries map[string]*models.ReviewEntry
	nextID  int
	logger  *zap.Logger
}

func NewReviewService(logger *zap.Logger) *ReviewService {
	return &ReviewService{
		entries: make(map[string]*models.ReviewEntry),
		logger:  logger,
	}
}

// Enqueue records a raw input that failed to parse, returning its queue entry.
func (s *ReviewService) Enqueue(rawInput string) *models.ReviewEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	id := strconv.Itoa(s.nextID)
	entry := models.NewReviewEntry(id, rawInput)
	s.entries[id] = entry
	s.logger.Info("queued address for review", zap.String("id", id), zap.String("raw_input", rawInput))
	return entry
}

// List returns every queue entry ordered by ID.
func (s *ReviewService) List() []*models.ReviewEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*models.ReviewEntry, 0, len(s.entries))
	for _, e := range s.entries {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool {
		a, _ := strconv.Atoi(out[i].ID)
		b, _ := strconv.Atoi(out[j].ID)
		return a < b
	})
	return out
}

// Resolve transitions a pending entry to approved, rejected, or a manual result.
func (s *ReviewService) Resolve(id string, action string, manual *addr.AddressResult) (*models.ReviewEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry, ok := s.entries[id]
	if !ok {
		return nil, ErrReviewNotFound
	}
	switch action {
	case models.ReviewStatusApproved:
		if manual != nil {
			entry.SetManualResult(*manual)
		} else {
			entry.Approve()
		}
	case models.ReviewStatusRejected:
		entry.Reject()
	default:
		return nil, errors.New("unknown review action: " + action)
	}
	return entry, nil
}
