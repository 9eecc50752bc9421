package postgres

import (
	"context"
	"fmt"
	"matchup/pkg/domain"

	"github.com/doug-martin/goqu/v9"
	"github.com/doug-martin/goqu/v9/exp"
)

const (
	photosTable = "user_photos"
)

// StorePhoto inserts a photo row and returns it.
func (p *PgSQL) StorePhoto(ctx context.Context, photo domain.Photo) (*domain.Photo, error) {
	var row PgPhoto
	row.FromDomain(photo)

	var stored PgPhoto
	if _, err := p.Builder.Insert(photosTable).
		Rows(row).
		Returning(&PgPhoto{}).
		Executor().ScanStructContext(ctx, &stored); err != nil {
		return nil, fmt.Errorf("could not store photo into pg: %w", constraintErr(err))
	}

	return stored.ToDomain(), nil
}

// UserPhotos returns the photos of the given users ordered by creation.
func (p *PgSQL) UserPhotos(ctx context.Context, userIDs ...domain.UserID) ([]domain.Photo, error) {
	if len(userIDs) == 0 {
		return nil, nil
	}

	ids := make([]int64, 0, len(userIDs))
	for _, id := range userIDs {
		ids = append(ids, int64(id))
	}

	var rows []PgPhoto
	if err := p.Builder.From(photosTable).
		Where(goqu.I("user_id").In(ids)).
		Order(goqu.I("created_at").Asc(), goqu.I("id").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch user photos from pg: %w", err)
	}

	out := make([]domain.Photo, 0, len(rows))
	for i := range rows {
		out = append(out, *rows[i].ToDomain())
	}

	return out, nil
}

// PhotoCount returns the number of photos owned by a user. The user row is
// locked first, so inside WithTx concurrent uploads of the same user are
// counted one after another.
func (p *PgSQL) PhotoCount(ctx context.Context, userID domain.UserID) (int64, error) {
	var id int64
	if _, err := p.Builder.From(usersTable).
		Select(goqu.I("id")).
		Where(goqu.I("id").Eq(int64(userID))).
		ForUpdate(exp.Wait).
		Executor().ScanValContext(ctx, &id); err != nil {
		return 0, fmt.Errorf("could not lock user in pg: %w", err)
	}

	count, err := p.Builder.From(photosTable).
		Where(goqu.I("user_id").Eq(int64(userID))).
		CountContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("could not count user photos in pg: %w", err)
	}

	return count, nil
}

// PhotoByKey returns the photo stored under key.
func (p *PgSQL) PhotoByKey(ctx context.Context, key string) (*domain.Photo, error) {
	var row PgPhoto
	found, err := p.Builder.From(photosTable).
		Where(goqu.I("storage_key").Eq(key)).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch photo from pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// DeletePhoto deletes a photo owned by userID and returns the deleted row.
func (p *PgSQL) DeletePhoto(ctx context.Context, userID domain.UserID, id domain.PhotoID) (*domain.Photo, error) {
	var row PgPhoto
	found, err := p.Builder.Delete(photosTable).
		Where(
			goqu.I("id").Eq(int64(id)),
			goqu.I("user_id").Eq(int64(userID)),
		).
		Returning(&PgPhoto{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not delete photo in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}
