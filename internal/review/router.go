package review

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/stpnv0/interviewsched/internal/domain"
	"github.com/stpnv0/interviewsched/internal/metrics"
	"github.com/stpnv0/interviewsched/internal/repository"
	"github.com/stpnv0/interviewsched/internal/review/ports"
	"github.com/wb-go/wbf/logger"
)

// DirectoryPageSize bounds a single upstream fetch of the candidate
// universe. The router pages through until it has enough of U \ V to
// decide, or the directory runs dry.
const DirectoryPageSize = 200

// Assignment is what GetNextSurvey hands back to a reviewer: the
// candidate to review plus enough context to render it.
type Assignment struct {
	SurveyID string
	Tally    domain.Tally
	Role     domain.Role
}

// Router is the Review Router: it is the only place the
// UNIQUE(survey_id, voter_id) constraint is relied on as a lock.
type Router struct {
	votes     ports.VoteRepo
	roles     ports.UserRoleRepo
	directory ports.CandidateDirectory
	logger    logger.Logger
	quorum    int
}

func NewRouter(votes ports.VoteRepo, roles ports.UserRoleRepo, directory ports.CandidateDirectory, quorum int, log logger.Logger) *Router {
	return &Router{votes: votes, roles: roles, directory: directory, quorum: quorum, logger: log}
}

// ErrNoWork signals the caller should retry later: either nothing is
// eligible right now, or another reviewer won a race for the only
// eligible candidate.
var ErrNoWork = errors.New("no work available")

func (rt *Router) GetNextSurvey(ctx context.Context, voterID string) (*Assignment, error) {
	role, err := rt.roles.Get(ctx, voterID)
	if err != nil {
		return nil, fmt.Errorf("get voter role: %w", err)
	}

	if err = rt.votes.CancelStaleClaims(ctx, voterID); err != nil {
		return nil, fmt.Errorf("cancel stale claims: %w", err)
	}

	touched, err := rt.votes.TouchedByVoter(ctx, voterID)
	if err != nil {
		return nil, fmt.Errorf("list touched candidates: %w", err)
	}
	seen := make(map[string]bool, len(touched))
	for _, id := range touched {
		seen[id] = true
	}

	candidate, err := rt.pickCandidate(ctx, role, seen)
	if err != nil {
		return nil, err
	}
	if candidate == "" {
		return nil, ErrNoWork
	}

	if err = rt.votes.InsertClaim(ctx, uuid.New().String(), candidate, voterID, time.Now().UTC()); err != nil {
		if errors.Is(err, domain.ErrConflict) {
			metrics.ClaimRaces.Inc()
			rt.logger.Info("lost claim race", logger.String("survey_id", candidate), logger.String("voter_id", voterID))
			return nil, ErrNoWork
		}
		return nil, fmt.Errorf("claim candidate: %w", err)
	}

	tally, err := rt.votes.Tally(ctx, candidate)
	if err != nil {
		return nil, fmt.Errorf("tally candidate: %w", err)
	}

	return &Assignment{SurveyID: candidate, Tally: tally, Role: role}, nil
}

// pickCandidate walks the candidate universe page by page, filtering out
// anything voterID already touched, and applies the role-specific
// eligibility rule to what remains.
func (rt *Router) pickCandidate(ctx context.Context, role domain.Role, seen map[string]bool) (string, error) {
	var universe []string
	for skip := 0; ; skip += DirectoryPageSize {
		page, err := rt.directory.ListCompletedSurveys(ctx, DirectoryPageSize, skip)
		if err != nil {
			return "", fmt.Errorf("list candidate universe: %w", err)
		}
		for _, id := range page {
			if !seen[id] {
				universe = append(universe, id)
			}
		}
		if len(page) < DirectoryPageSize {
			break
		}
	}
	if len(universe) == 0 {
		return "", nil
	}

	stats, err := rt.votes.Stats(ctx, universe)
	if err != nil {
		return "", fmt.Errorf("candidate stats: %w", err)
	}

	if role == domain.RolePrivileged {
		return rt.pickPrivileged(universe, stats), nil
	}
	return rt.pickOrdinary(universe, stats), nil
}

// pickOrdinary chooses, among candidates with real_votes < K and no
// in-flight claim, the one whose real_votes is closest to K. Ties break
// by insertion order (the order `universe` already carries).
func (rt *Router) pickOrdinary(universe []string, stats map[string]repository.CandidateStats) string {
	best := ""
	bestGap := -1
	for _, id := range universe {
		s := stats[id]
		if s.RealVotes >= rt.quorum || s.ClaimVotes > 0 {
			continue
		}
		gap := rt.quorum - s.RealVotes
		if best == "" || gap < bestGap {
			best = id
			bestGap = gap
		}
	}
	return best
}

// pickPrivileged chooses the first candidate, in insertion order, with
// real_votes >= K and no existing row from any privileged voter.
func (rt *Router) pickPrivileged(universe []string, stats map[string]repository.CandidateStats) string {
	for _, id := range universe {
		s := stats[id]
		if s.RealVotes >= rt.quorum && !s.HasPrivilegedRow {
			return id
		}
	}
	return ""
}
