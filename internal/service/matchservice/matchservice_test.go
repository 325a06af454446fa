package matchservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/decentracode/creditcore/internal/domain"
	"github.com/decentracode/creditcore/internal/metrics"
)

func NewMock(t *testing.T) (*Service, *MockAttributeReader, *MockReputationReader) {
	ctrl := gomock.NewController(t)
	attrs := NewMockAttributeReader(ctrl)
	reputation := NewMockReputationReader(ctrl)
	service := New(attrs, reputation, metrics.New(prometheus.NewRegistry()), 3)
	defer ctrl.Finish()
	return service, attrs, reputation
}

type candidate struct {
	id        uuid.UUID
	username  string
	score     int
	languages []string
	available bool
	staked    float64
}

func expectCandidate(attrs *MockAttributeReader, reputation *MockReputationReader, c candidate) {
	attrs.EXPECT().GetUsername(gomock.Any(), c.id).Return(c.username, nil)
	attrs.EXPECT().GetLanguageExpertise(gomock.Any(), c.id).Return(c.languages, nil)
	attrs.EXPECT().GetAvailability(gomock.Any(), c.id).Return(c.available, nil)
	attrs.EXPECT().GetStakedCredits(gomock.Any(), c.id).Return(c.staked, nil)
	reputation.EXPECT().ReputationWithDecay(gomock.Any(), c.id, gomock.Any()).Return(c.score, nil)
}

func TestRankOrdering(t *testing.T) {
	service, attrs, reputation := NewMock(t)

	// staked credits dominate reputation, and reputation dominates
	// language match: C outranks both despite the lowest score, and B's
	// higher score beats A's language match at equal stake.
	a := candidate{id: uuid.New(), username: "alice", score: 50, languages: []string{"go"}, available: true, staked: 500}
	b := candidate{id: uuid.New(), username: "bob", score: 80, languages: []string{"rust"}, available: true, staked: 500}
	c := candidate{id: uuid.New(), username: "carol", score: 10, languages: []string{"python"}, available: true, staked: 1000}
	for _, cand := range []candidate{a, b, c} {
		expectCandidate(attrs, reputation, cand)
	}

	ranked, err := service.Rank(context.Background(), "go", []uuid.UUID{a.id, b.id, c.id})
	assert.NoError(t, err)
	assert.Equal(t, []uuid.UUID{c.id, b.id, a.id}, rankedIDs(ranked))
}

func TestRankLanguageMatchBreaksTies(t *testing.T) {
	service, attrs, reputation := NewMock(t)

	noMatch := candidate{id: uuid.New(), username: "dave", score: 40, languages: []string{"java"}, available: true, staked: 200}
	match := candidate{id: uuid.New(), username: "erin", score: 40, languages: []string{"go", "java"}, available: true, staked: 200}
	for _, cand := range []candidate{noMatch, match} {
		expectCandidate(attrs, reputation, cand)
	}

	ranked, err := service.Rank(context.Background(), "go", []uuid.UUID{noMatch.id, match.id})
	assert.NoError(t, err)
	assert.Equal(t, []uuid.UUID{match.id, noMatch.id}, rankedIDs(ranked))
}

func TestRankStableOnFullTie(t *testing.T) {
	service, attrs, reputation := NewMock(t)

	first := candidate{id: uuid.New(), username: "frank", score: 40, languages: []string{"go"}, available: true, staked: 200}
	second := candidate{id: uuid.New(), username: "grace", score: 40, languages: []string{"go"}, available: true, staked: 200}
	for _, cand := range []candidate{first, second} {
		expectCandidate(attrs, reputation, cand)
	}

	ranked, err := service.Rank(context.Background(), "go", []uuid.UUID{first.id, second.id})
	assert.NoError(t, err)
	assert.Equal(t, []uuid.UUID{first.id, second.id}, rankedIDs(ranked))
}

func TestRankExcludesUnavailable(t *testing.T) {
	service, attrs, reputation := NewMock(t)

	busy := candidate{id: uuid.New(), username: "heidi", score: 90, languages: []string{"go"}, available: false, staked: 5000}
	free := candidate{id: uuid.New(), username: "ivan", score: 5, languages: nil, available: true, staked: 0}
	for _, cand := range []candidate{busy, free} {
		expectCandidate(attrs, reputation, cand)
	}

	ranked, err := service.Rank(context.Background(), "go", []uuid.UUID{busy.id, free.id})
	assert.NoError(t, err)
	assert.Equal(t, []uuid.UUID{free.id}, rankedIDs(ranked))
}

func TestRankExcludesCandidateOnFetchError(t *testing.T) {
	service, attrs, reputation := NewMock(t)

	brokenID := uuid.New()
	attrs.EXPECT().GetUsername(gomock.Any(), brokenID).Return("", errors.New("connection reset")).AnyTimes()
	attrs.EXPECT().GetLanguageExpertise(gomock.Any(), brokenID).Return(nil, nil).AnyTimes()
	attrs.EXPECT().GetAvailability(gomock.Any(), brokenID).Return(true, nil).AnyTimes()
	attrs.EXPECT().GetStakedCredits(gomock.Any(), brokenID).Return(0.0, nil).AnyTimes()
	reputation.EXPECT().ReputationWithDecay(gomock.Any(), brokenID, gomock.Any()).Return(0, nil).AnyTimes()

	healthy := candidate{id: uuid.New(), username: "judy", score: 30, languages: []string{"go"}, available: true, staked: 100}
	expectCandidate(attrs, reputation, healthy)

	ranked, err := service.Rank(context.Background(), "go", []uuid.UUID{brokenID, healthy.id})
	assert.NoError(t, err)
	assert.Equal(t, []uuid.UUID{healthy.id}, rankedIDs(ranked))
}

func TestRankTruncatesToTopN(t *testing.T) {
	service, attrs, reputation := NewMock(t)
	service.now = func() time.Time { return time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC) }

	ids := make([]uuid.UUID, 5)
	for i := range ids {
		cand := candidate{
			id:        uuid.New(),
			username:  "reviewer",
			score:     10,
			languages: []string{"go"},
			available: true,
			staked:    float64(100 * (i + 1)),
		}
		ids[i] = cand.id
		expectCandidate(attrs, reputation, cand)
	}

	ranked, err := service.Rank(context.Background(), "go", ids)
	assert.NoError(t, err)
	assert.Len(t, ranked, 3)
	// best staked first
	assert.Equal(t, []uuid.UUID{ids[4], ids[3], ids[2]}, rankedIDs(ranked))
}

func TestRankEmptyPool(t *testing.T) {
	service, _, _ := NewMock(t)

	ranked, err := service.Rank(context.Background(), "go", nil)
	assert.NoError(t, err)
	assert.Empty(t, ranked)
}

func rankedIDs(ranked []domain.RankedReviewer) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(ranked))
	for _, reviewer := range ranked {
		ids = append(ids, reviewer.ID)
	}
	return ids
}
