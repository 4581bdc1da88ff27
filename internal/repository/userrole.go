package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/stpnv0/interviewsched/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type UserRoleRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewUserRoleRepo(db *dbpg.DB) *UserRoleRepository {
	return &UserRoleRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

// Get returns RoleOrdinary when no row exists, per the domain invariant
// that absence of a UserRole means ordinary.
func (r *UserRoleRepository) Get(ctx context.Context, recipientID string) (domain.Role, error) {
	query := `SELECT role FROM user_roles WHERE recipient_id = $1`
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, recipientID)
	if err != nil {
		return domain.RoleOrdinary, fmt.Errorf("get user role: %w", err)
	}

	var role domain.Role
	if err = row.Scan(&role); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.RoleOrdinary, nil
		}
		return domain.RoleOrdinary, fmt.Errorf("scan user role: %w", err)
	}

	return role, nil
}

func (r *UserRoleRepository) Set(ctx context.Context, recipientID string, role domain.Role) error {
	query := `INSERT INTO user_roles (recipient_id, role) VALUES ($1, $2)
			  ON CONFLICT (recipient_id) DO UPDATE SET role = excluded.role`
	_, err := r.db.ExecWithRetry(ctx, r.strategy, query, recipientID, role)
	if err != nil {
		return fmt.Errorf("set user role: %w", err)
	}
	return nil
}

func (r *UserRoleRepository) Clear(ctx context.Context, recipientID string) error {
	_, err := r.db.ExecWithRetry(ctx, r.strategy, `DELETE FROM user_roles WHERE recipient_id = $1`, recipientID)
	if err != nil {
		return fmt.Errorf("clear user role: %w", err)
	}
	return nil
}

// ListPrivileged returns the recipient ids with RolePrivileged. The Review
// Router does not call it; it reads privileged rows through
// VoteRepository.Stats.
func (r *UserRoleRepository) ListPrivileged(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, `SELECT recipient_id FROM user_roles WHERE role = $1`, domain.RolePrivileged)
	if err != nil {
		return nil, fmt.Errorf("list privileged: %w", err)
	}
	defer rows.Close()

	var res []string
	for rows.Next() {
		var id string
		if err = rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan recipient id: %w", err)
		}
		res = append(res, id)
	}

	return res, rows.Err()
}
