package postgres

import (
	"context"
	"fmt"
	"matchup/pkg/domain"
	"matchup/pkg/storage"

	"github.com/doug-martin/goqu/v9"
)

const (
	usersTable = "users"
)

// StoreUser inserts a new user and returns the stored row.
func (p *PgSQL) StoreUser(ctx context.Context, user domain.User) (*domain.User, error) {
	var row PgUser
	row.FromDomain(user)

	var stored PgUser
	if _, err := p.Builder.Insert(usersTable).
		Rows(row).
		Returning(&PgUser{}).
		Executor().ScanStructContext(ctx, &stored); err != nil {
		return nil, fmt.Errorf("could not store user into pg: %w", constraintErr(err))
	}

	return stored.ToDomain(), nil
}

func (p *PgSQL) userBy(ctx context.Context, where goqu.Expression) (*domain.User, error) {
	var row PgUser
	found, err := p.Builder.From(usersTable).
		Where(where).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch user from pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// UserByID returns a user by its ID.
func (p *PgSQL) UserByID(ctx context.Context, id domain.UserID) (*domain.User, error) {
	return p.userBy(ctx, goqu.I("id").Eq(int64(id)))
}

// UserByLogin returns a user by its login.
func (p *PgSQL) UserByLogin(ctx context.Context, login string) (*domain.User, error) {
	return p.userBy(ctx, goqu.I("login").Eq(login))
}

// UpdateUser updates the provided fields of a user and returns the updated row.
func (p *PgSQL) UpdateUser(ctx context.Context, id domain.UserID, updates storage.UserUpdates) (*domain.User, error) {
	rec := goqu.Record{
		"updated_at": goqu.L("CURRENT_TIMESTAMP"),
	}
	if updates.Login != nil {
		rec["login"] = *updates.Login
	}
	if updates.Email != nil {
		rec["email"] = *updates.Email
	}
	if updates.PhoneNumber != nil {
		if *updates.PhoneNumber == "" {
			rec["phone_number"] = goqu.L("NULL")
		} else {
			rec["phone_number"] = *updates.PhoneNumber
		}
	}
	if updates.FirstName != nil {
		rec["first_name"] = *updates.FirstName
	}
	if updates.LastName != nil {
		rec["last_name"] = *updates.LastName
	}
	if updates.PasswordHash != nil {
		rec["password"] = *updates.PasswordHash
	}

	var row PgUser
	found, err := p.Builder.Update(usersTable).
		Set(rec).
		Where(goqu.I("id").Eq(int64(id))).
		Returning(&PgUser{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not update user in pg: %w", constraintErr(err))
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// DeleteUser deletes a user. Photos, hobbies, likes, refusals and messages
// are removed by ON DELETE CASCADE.
func (p *PgSQL) DeleteUser(ctx context.Context, id domain.UserID) (bool, error) {
	res, err := p.Builder.Delete(usersTable).
		Where(goqu.I("id").Eq(int64(id))).
		Executor().ExecContext(ctx)
	if err != nil {
		return false, fmt.Errorf("could not delete user in pg: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("could not get affected rows: %w", err)
	}

	return n > 0, nil
}

// BrowseUsers returns random candidates for userID. Users already liked or
// refused by userID are excluded. When userID has hobbies, only users sharing
// at least one of them are returned.
func (p *PgSQL) BrowseUsers(ctx context.Context, userID domain.UserID, limit uint) ([]domain.User, error) {
	uid := int64(userID)

	var hobbyIDs []int64
	if err := p.Builder.From(userHobbiesTable).
		Select("hobby_id").
		Where(goqu.I("user_id").Eq(uid)).
		Executor().ScanValsContext(ctx, &hobbyIDs); err != nil {
		return nil, fmt.Errorf("could not fetch user hobby ids from pg: %w", err)
	}

	w := []goqu.Expression{
		goqu.I("id").Neq(uid),
		goqu.I("id").NotIn(dialect.From(likesTable).
			Select("liked_id").
			Where(goqu.I("liker_id").Eq(uid))),
		goqu.I("id").NotIn(dialect.From(refusalsTable).
			Select("refused_id").
			Where(goqu.I("refuser_id").Eq(uid))),
	}
	if len(hobbyIDs) > 0 {
		w = append(w, goqu.I("id").In(dialect.From(userHobbiesTable).
			Select("user_id").
			Where(goqu.I("hobby_id").In(hobbyIDs))))
	}

	var rows []PgUser
	if err := p.Builder.From(usersTable).
		Where(w...).
		Order(goqu.L("RANDOM()").Asc()).
		Limit(limit).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not browse users in pg: %w", err)
	}

	return pgUsersToDomain(rows), nil
}

// MatchedUsers returns users that like userID and are liked back by userID,
// ordered by ID.
func (p *PgSQL) MatchedUsers(ctx context.Context, userID domain.UserID) ([]domain.User, error) {
	uid := int64(userID)

	var rows []PgUser
	if err := p.Builder.From(usersTable).
		Where(
			goqu.I("id").In(dialect.From(likesTable).
				Select("liked_id").
				Where(goqu.I("liker_id").Eq(uid))),
			goqu.I("id").In(dialect.From(likesTable).
				Select("liker_id").
				Where(goqu.I("liked_id").Eq(uid))),
		).
		Order(goqu.I("id").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch matched users from pg: %w", err)
	}

	return pgUsersToDomain(rows), nil
}
