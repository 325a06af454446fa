package matchservice

import (
	"context"
	"slices"
	"sort"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/decentracode/creditcore/internal/domain"
	"github.com/decentracode/creditcore/internal/metrics"
)

type AttributeReader interface {
	GetUsername(ctx context.Context, userID uuid.UUID) (string, error)
	GetLanguageExpertise(ctx context.Context, userID uuid.UUID) ([]string, error)
	GetAvailability(ctx context.Context, userID uuid.UUID) (bool, error)
	GetStakedCredits(ctx context.Context, userID uuid.UUID) (float64, error)
}

// ReputationReader is a read that may mutate: fetching a reviewer's
// score triggers the inactivity decay check and persists any due decay.
type ReputationReader interface {
	ReputationWithDecay(ctx context.Context, userID uuid.UUID, asOf time.Time) (int, error)
}

// Service selects and orders the best available reviewers for a
// submission's language from a candidate pool.
type Service struct {
	attrs      AttributeReader
	reputation ReputationReader
	metrics    *metrics.Metrics
	topN       int
	now        func() time.Time
}

func New(attrs AttributeReader, reputation ReputationReader, m *metrics.Metrics, topN int) *Service {
	return &Service{
		attrs:      attrs,
		reputation: reputation,
		metrics:    m,
		topN:       topN,
		now:        time.Now,
	}
}

// Rank fetches live attributes for every candidate concurrently, drops
// unavailable reviewers and candidates whose attributes cannot be read,
// and returns the top candidates ordered by staked credits, then
// reputation, then language match. The sort is stable: candidates equal
// on all three keys keep their input order.
func (s *Service) Rank(ctx context.Context, language string, candidateIDs []uuid.UUID) ([]domain.RankedReviewer, error) {
	s.metrics.MatchRequests.Inc()
	timer := time.Now()
	defer func() {
		s.metrics.MatchDuration.Observe(time.Since(timer).Seconds())
	}()

	candidates := make([]*domain.RankedReviewer, len(candidateIDs))

	var g errgroup.Group
	for i, candidateID := range candidateIDs {
		i, candidateID := i, candidateID

		g.Go(func() error {
			reviewer, err := s.fetchCandidate(ctx, language, candidateID)
			if err != nil {
				// one bad reviewer record must not fail matching for the pool
				s.metrics.MatchExcluded.Inc()
				zap.L().Warn("excluding candidate from ranking",
					zap.String("candidateId", candidateID.String()),
					zap.Error(err))
				return nil
			}
			candidates[i] = reviewer
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	ranked := make([]domain.RankedReviewer, 0, len(candidates))
	for _, candidate := range candidates {
		if candidate != nil && candidate.IsAvailable {
			ranked = append(ranked, *candidate)
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		a, b := ranked[i], ranked[j]
		if a.StakedCredits != b.StakedCredits {
			return a.StakedCredits > b.StakedCredits
		}
		if a.ReputationScore != b.ReputationScore {
			return a.ReputationScore > b.ReputationScore
		}
		aMatch := slices.Contains(a.LanguageExpertise, language)
		bMatch := slices.Contains(b.LanguageExpertise, language)
		if aMatch != bMatch {
			return aMatch
		}
		return false
	})

	if len(ranked) > s.topN {
		ranked = ranked[:s.topN]
	}
	return ranked, nil
}

func (s *Service) fetchCandidate(ctx context.Context, language string, candidateID uuid.UUID) (*domain.RankedReviewer, error) {
	reviewer := &domain.RankedReviewer{ID: candidateID}

	var g errgroup.Group
	g.Go(func() error {
		score, err := s.reputation.ReputationWithDecay(ctx, candidateID, s.now())
		reviewer.ReputationScore = score
		return err
	})
	g.Go(func() error {
		languages, err := s.attrs.GetLanguageExpertise(ctx, candidateID)
		reviewer.LanguageExpertise = languages
		return err
	})
	g.Go(func() error {
		available, err := s.attrs.GetAvailability(ctx, candidateID)
		reviewer.IsAvailable = available
		return err
	})
	g.Go(func() error {
		username, err := s.attrs.GetUsername(ctx, candidateID)
		reviewer.Username = username
		return err
	})
	g.Go(func() error {
		staked, err := s.attrs.GetStakedCredits(ctx, candidateID)
		reviewer.StakedCredits = staked
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return reviewer, nil
}
