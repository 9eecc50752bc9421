package postgres

import (
	"context"
	"fmt"
	"matchup/pkg/domain"

	"github.com/doug-martin/goqu/v9"
)

const (
	likesTable    = "user_likes"
	refusalsTable = "user_refusals"
)

// StoreLike inserts a like and reports whether a new row was created.
func (p *PgSQL) StoreLike(ctx context.Context, like domain.Like) (bool, error) {
	res, err := p.Builder.Insert(likesTable).
		Rows(PgLike{
			LikerID: int64(like.LikerID),
			LikedID: int64(like.LikedID),
		}).
		OnConflict(goqu.DoNothing()).
		Executor().ExecContext(ctx)
	if err != nil {
		return false, fmt.Errorf("could not store like into pg: %w", constraintErr(err))
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("could not get affected rows: %w", err)
	}

	return n > 0, nil
}

// LikeExists reports whether likerID likes likedID.
func (p *PgSQL) LikeExists(ctx context.Context, likerID, likedID domain.UserID) (bool, error) {
	count, err := p.Builder.From(likesTable).
		Where(
			goqu.I("liker_id").Eq(int64(likerID)),
			goqu.I("liked_id").Eq(int64(likedID)),
		).
		CountContext(ctx)
	if err != nil {
		return false, fmt.Errorf("could not check like in pg: %w", err)
	}

	return count > 0, nil
}

// DeleteLike removes a like and reports whether it existed.
func (p *PgSQL) DeleteLike(ctx context.Context, likerID, likedID domain.UserID) (bool, error) {
	res, err := p.Builder.Delete(likesTable).
		Where(
			goqu.I("liker_id").Eq(int64(likerID)),
			goqu.I("liked_id").Eq(int64(likedID)),
		).
		Executor().ExecContext(ctx)
	if err != nil {
		return false, fmt.Errorf("could not delete like in pg: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("could not get affected rows: %w", err)
	}

	return n > 0, nil
}

// StoreRefusal records a refusal. Existing refusals are left untouched.
func (p *PgSQL) StoreRefusal(ctx context.Context, refusal domain.Refusal) error {
	if _, err := p.Builder.Insert(refusalsTable).
		Rows(PgRefusal{
			RefuserID: int64(refusal.RefuserID),
			RefusedID: int64(refusal.RefusedID),
		}).
		OnConflict(goqu.DoNothing()).
		Executor().ExecContext(ctx); err != nil {
		return fmt.Errorf("could not store refusal into pg: %w", constraintErr(err))
	}

	return nil
}

// DeleteRefusal removes a refusal if present.
func (p *PgSQL) DeleteRefusal(ctx context.Context, refuserID, refusedID domain.UserID) error {
	if _, err := p.Builder.Delete(refusalsTable).
		Where(
			goqu.I("refuser_id").Eq(int64(refuserID)),
			goqu.I("refused_id").Eq(int64(refusedID)),
		).
		Executor().ExecContext(ctx); err != nil {
		return fmt.Errorf("could not delete refusal in pg: %w", err)
	}

	return nil
}
