package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/stpnv0/interviewsched/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type VoteRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewVoteRepo(db *dbpg.DB) *VoteRepository {
	return &VoteRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

// CandidateStats is one candidate's vote-table snapshot, used by the
// Review Router to decide eligibility without a round trip per candidate.
// HasPrivilegedRow covers ANY row (claim or real vote) from a privileged
// voter — no existing row by any privileged voter is a stricter test
// than the tally's has_privileged_vote, which only counts real votes.
type CandidateStats struct {
	SurveyID         string
	RealVotes        int
	ClaimVotes       int
	HasPrivilegedRow bool
}

// CancelStaleClaims deletes any claim rows held by voterID: a reviewer
// who returns mid-flight is re-routed fresh.
func (r *VoteRepository) CancelStaleClaims(ctx context.Context, voterID string) error {
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy,
		`DELETE FROM votes WHERE voter_id = $1 AND comment = $2`,
		voterID, string(domain.CommentClaim),
	)
	if err != nil {
		return fmt.Errorf("cancel stale claims: %w", err)
	}
	return nil
}

// TouchedByVoter returns every survey_id voterID already has a row
// against, real vote or claim alike.
func (r *VoteRepository) TouchedByVoter(ctx context.Context, voterID string) ([]string, error) {
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, `SELECT survey_id FROM votes WHERE voter_id = $1`, voterID)
	if err != nil {
		return nil, fmt.Errorf("list touched: %w", err)
	}
	defer rows.Close()

	var res []string
	for rows.Next() {
		var id string
		if err = rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan survey id: %w", err)
		}
		res = append(res, id)
	}

	return res, rows.Err()
}

// Stats computes, for each candidate in surveyIDs, the real-vote count,
// the claim-vote count, and whether any privileged reviewer already has a
// row on it. One grouped query serves both the ordinary and privileged
// eligibility branches of the Review Router.
func (r *VoteRepository) Stats(ctx context.Context, surveyIDs []string) (map[string]CandidateStats, error) {
	if len(surveyIDs) == 0 {
		return map[string]CandidateStats{}, nil
	}

	query := `SELECT v.survey_id,
					COUNT(*) FILTER (WHERE v.comment NOT IN ($2, $3)) AS real_votes,
					COUNT(*) FILTER (WHERE v.comment = $2) AS claim_votes,
					BOOL_OR(ur.role = $4) AS has_privileged_row
			  FROM votes v
			  LEFT JOIN user_roles ur ON ur.recipient_id = v.voter_id
			  WHERE v.survey_id = ANY($1)
			  GROUP BY v.survey_id`

	rows, err := r.db.QueryWithRetry(
		ctx, r.strategy, query,
		pq.Array(surveyIDs), string(domain.CommentClaim), string(domain.CommentInit), domain.RolePrivileged,
	)
	if err != nil {
		return nil, fmt.Errorf("candidate stats: %w", err)
	}
	defer rows.Close()

	res := make(map[string]CandidateStats, len(surveyIDs))
	for rows.Next() {
		var s CandidateStats
		if err = rows.Scan(&s.SurveyID, &s.RealVotes, &s.ClaimVotes, &s.HasPrivilegedRow); err != nil {
			return nil, fmt.Errorf("scan candidate stats: %w", err)
		}
		res[s.SurveyID] = s
	}

	return res, rows.Err()
}

// InsertClaim is the mutual-exclusion primitive: it inserts a lease row
// for (surveyID, voterID). A UNIQUE(survey_id, voter_id) violation means
// another reviewer won the race; the caller treats that as "no work".
func (r *VoteRepository) InsertClaim(ctx context.Context, id, surveyID, voterID string, createdAt time.Time) error {
	query := `INSERT INTO votes (id, survey_id, voter_id, decision, comment, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.db.ExecWithRetry(ctx, r.strategy, query, id, surveyID, voterID, domain.DecisionReject, string(domain.CommentClaim), createdAt)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrConflict
		}
		return fmt.Errorf("insert claim: %w", err)
	}
	return nil
}

// FindClaim returns the claim row voterID holds over surveyID, if any.
func (r *VoteRepository) FindClaim(ctx context.Context, surveyID, voterID string) (*domain.Vote, error) {
	query := `SELECT id, survey_id, voter_id, decision, comment, created_at
			  FROM votes WHERE survey_id = $1 AND voter_id = $2 AND comment = $3`
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, surveyID, voterID, string(domain.CommentClaim))
	if err != nil {
		return nil, fmt.Errorf("find claim: %w", err)
	}

	var v domain.Vote
	var comment string
	if err = row.Scan(&v.ID, &v.SurveyID, &v.VoterID, &v.Decision, &comment, &v.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrVoteNotFound
		}
		return nil, fmt.Errorf("scan claim: %w", err)
	}
	v.Comment = domain.Comment(comment)

	return &v, nil
}

// FinalizeClaim flips a held claim row into a real vote.
func (r *VoteRepository) FinalizeClaim(ctx context.Context, surveyID, voterID string, decision domain.Decision, comment domain.Comment) error {
	query := `UPDATE votes SET decision = $3, comment = $4
			  WHERE survey_id = $1 AND voter_id = $2 AND comment = $5`
	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, surveyID, voterID, decision, string(comment), string(domain.CommentClaim))
	if err != nil {
		return fmt.Errorf("finalize claim: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrVoteNotFound
	}
	return nil
}

// InsertVote inserts a fresh vote row, covering the path where the claim
// lifecycle was skipped (SubmitVote called with no prior claim).
func (r *VoteRepository) InsertVote(ctx context.Context, v *domain.Vote) error {
	query := `INSERT INTO votes (id, survey_id, voter_id, decision, comment, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6)
			  ON CONFLICT (survey_id, voter_id) DO UPDATE SET decision = excluded.decision, comment = excluded.comment`
	_, err := r.db.ExecWithRetry(ctx, r.strategy, query, v.ID, v.SurveyID, v.VoterID, v.Decision, string(v.Comment), v.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert vote: %w", err)
	}
	return nil
}

// Tally computes the reporting view for a candidate: approve/reject
// counts excluding reserved comments, plus whether a privileged voter has
// weighed in.
func (r *VoteRepository) Tally(ctx context.Context, surveyID string) (domain.Tally, error) {
	query := `SELECT
					COUNT(*) FILTER (WHERE v.comment NOT IN ($2, $3)) AS real_votes,
					COUNT(*) FILTER (WHERE v.comment NOT IN ($2, $3) AND v.decision = $4) AS approve,
					COUNT(*) FILTER (WHERE v.comment NOT IN ($2, $3) AND v.decision = $5) AS reject,
					BOOL_OR(v.comment NOT IN ($2, $3) AND ur.role = $6) AS has_privileged
			  FROM votes v
			  LEFT JOIN user_roles ur ON ur.recipient_id = v.voter_id
			  WHERE v.survey_id = $1`

	row, err := r.db.QueryRowWithRetry(
		ctx, r.strategy, query, surveyID,
		string(domain.CommentClaim), string(domain.CommentInit),
		domain.DecisionApprove, domain.DecisionReject, domain.RolePrivileged,
	)
	if err != nil {
		return domain.Tally{}, fmt.Errorf("tally: %w", err)
	}

	t := domain.Tally{SurveyID: surveyID}
	var hasPrivileged sql.NullBool
	if err = row.Scan(&t.RealVotes, &t.Approve, &t.Reject, &hasPrivileged); err != nil {
		return domain.Tally{}, fmt.Errorf("scan tally: %w", err)
	}
	t.HasPrivilegedVote = hasPrivileged.Valid && hasPrivileged.Bool

	return t, nil
}

func (r *VoteRepository) ListAll(ctx context.Context) ([]*domain.Vote, error) {
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, `SELECT id, survey_id, voter_id, decision, comment, created_at FROM votes ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("list votes: %w", err)
	}
	defer rows.Close()

	var res []*domain.Vote
	for rows.Next() {
		var v domain.Vote
		var comment string
		if err = rows.Scan(&v.ID, &v.SurveyID, &v.VoterID, &v.Decision, &comment, &v.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan vote: %w", err)
		}
		v.Comment = domain.Comment(comment)
		res = append(res, &v)
	}

	return res, rows.Err()
}

func (r *VoteRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecWithRetry(ctx, r.strategy, `DELETE FROM votes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete vote: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrVoteNotFound
	}
	return nil
}
