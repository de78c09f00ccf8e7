package services

import (
	"testing"

	"github.com/address-parser-ar/app/models"
	"github.com/address-parser-ar/pkg/addr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestReviewService() *ReviewService {
	return NewReviewService(zap.NewNop())
}

func TestReviewServiceEnqueueAndList(t *testing.T) {
	s := newTestReviewService()

	e1 := s.Enqueue("qwerty")
	e2 := s.Enqueue("asdf 123")

	assert.Equal(t, models.ReviewStatusPending, e1.Status)
	assert.NotEqual(t, e1.ID, e2.ID)

	entries := s.List()
	require.Len(t, entries, 2)
	assert.Equal(t, e1.ID, entries[0].ID)
	assert.Equal(t, e2.ID, entries[1].ID)
}

func TestReviewServiceResolveApprove(t *testing.T) {
	s := newTestReviewService()
	e := s.Enqueue("qwerty")

	resolved, err := s.Resolve(e.ID, models.ReviewStatusApproved, nil)
	require.NoError(t, err)
	assert.Equal(t, models.ReviewStatusApproved, resolved.Status)
	assert.Nil(t, resolved.ManualResult)
	assert.NotNil(t, resolved.ResolvedAt)
}

func TestReviewServiceResolveWithManualResult(t *testing.T) {
	s := newTestReviewService()
	e := s.Enqueue("Sarmiento mil cien")

	manual := &addr.AddressResult{Kind: "simple", StreetNames: []string{"Sarmiento"}}
	resolved, err := s.Resolve(e.ID, models.ReviewStatusApproved, manual)
	require.NoError(t, err)
	require.NotNil(t, resolved.ManualResult)
	assert.Equal(t, "simple", resolved.ManualResult.Kind)
}

func TestReviewServiceResolveReject(t *testing.T) {
	s := newTestReviewService()
	e := s.Enqueue("qwerty")

	resolved, err := s.Resolve(e.ID, models.ReviewStatusRejected, nil)
	require.NoError(t, err)
	assert.Equal(t, models.ReviewStatusRejected, resolved.Status)
}

func TestReviewServiceResolveUnknownIDFails(t *testing.T) {
	s := newTestReviewService()
	_, err := s.Resolve("missing", models.ReviewStatusApproved, nil)
	assert.ErrorIs(t, err, ErrReviewNotFound)
}
