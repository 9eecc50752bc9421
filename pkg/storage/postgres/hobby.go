package postgres

import (
	"context"
	"fmt"
	"matchup/pkg/domain"
	"strings"

	"github.com/doug-martin/goqu/v9"
)

const (
	hobbiesTable     = "hobbies"
	categoriesTable  = "categories"
	userHobbiesTable = "user_hobbies"
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`) //nolint: gochecknoglobals

func hobbyIDs(IDs []domain.HobbyID) []int64 {
	out := make([]int64, 0, len(IDs))
	for _, id := range IDs {
		out = append(out, int64(id))
	}

	return out
}

// StoreHobby inserts a hobby and returns the stored row.
func (p *PgSQL) StoreHobby(ctx context.Context, hobby domain.Hobby) (*domain.Hobby, error) {
	var stored PgHobby
	if _, err := p.Builder.Insert(hobbiesTable).
		Rows(PgHobby{
			Name:       hobby.Name,
			CategoryID: int64(hobby.CategoryID),
		}).
		Returning(&PgHobby{}).
		Executor().ScanStructContext(ctx, &stored); err != nil {
		return nil, fmt.Errorf("could not store hobby into pg: %w", constraintErr(err))
	}

	return stored.ToDomain(), nil
}

// HobbyByID returns a hobby by its ID.
func (p *PgSQL) HobbyByID(ctx context.Context, id domain.HobbyID) (*domain.Hobby, error) {
	var row PgHobby
	found, err := p.Builder.From(hobbiesTable).
		Where(goqu.I("id").Eq(int64(id))).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch hobby from pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// UpdateHobby replaces the name and category of a hobby.
func (p *PgSQL) UpdateHobby(ctx context.Context, hobby domain.Hobby) (*domain.Hobby, error) {
	var row PgHobby
	found, err := p.Builder.Update(hobbiesTable).
		Set(goqu.Record{
			"name":        hobby.Name,
			"category_id": int64(hobby.CategoryID),
		}).
		Where(goqu.I("id").Eq(int64(hobby.ID))).
		Returning(&PgHobby{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not update hobby in pg: %w", constraintErr(err))
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// DeleteHobby deletes a hobby. User links are removed by ON DELETE CASCADE.
func (p *PgSQL) DeleteHobby(ctx context.Context, id domain.HobbyID) (bool, error) {
	res, err := p.Builder.Delete(hobbiesTable).
		Where(goqu.I("id").Eq(int64(id))).
		Executor().ExecContext(ctx)
	if err != nil {
		return false, fmt.Errorf("could not delete hobby in pg: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("could not get affected rows: %w", err)
	}

	return n > 0, nil
}

// SearchHobbies matches query against hobby and category names.
func (p *PgSQL) SearchHobbies(ctx context.Context, query string, limit uint) ([]domain.Hobby, error) {
	pattern := "%" + likeEscaper.Replace(query) + "%"

	var rows []PgHobby
	if err := p.Builder.From(goqu.T(hobbiesTable).As("h")).
		Select(
			goqu.I("h.id").As("id"),
			goqu.I("h.name").As("name"),
			goqu.I("h.category_id").As("category_id"),
		).
		InnerJoin(goqu.T(categoriesTable).As("c"), goqu.On(goqu.I("c.id").Eq(goqu.I("h.category_id")))).
		Where(goqu.Or(
			goqu.I("h.name").ILike(pattern),
			goqu.I("c.name").ILike(pattern),
		)).
		Order(goqu.I("h.name").Asc()).
		Limit(limit).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not search hobbies in pg: %w", err)
	}

	return pgHobbiesToDomain(rows), nil
}

// HobbiesByCategory returns the hobbies of the given categories.
func (p *PgSQL) HobbiesByCategory(ctx context.Context, IDs ...domain.CategoryID) ([]domain.Hobby, error) {
	if len(IDs) == 0 {
		return nil, nil
	}

	ids := make([]int64, 0, len(IDs))
	for _, id := range IDs {
		ids = append(ids, int64(id))
	}

	var rows []PgHobby
	if err := p.Builder.From(hobbiesTable).
		Where(goqu.I("category_id").In(ids)).
		Order(goqu.I("name").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch hobbies by category from pg: %w", err)
	}

	return pgHobbiesToDomain(rows), nil
}

// StoreCategory inserts a category and returns the stored row.
func (p *PgSQL) StoreCategory(ctx context.Context, category domain.Category) (*domain.Category, error) {
	var stored PgCategory
	if _, err := p.Builder.Insert(categoriesTable).
		Rows(PgCategory{Name: category.Name}).
		Returning(&PgCategory{}).
		Executor().ScanStructContext(ctx, &stored); err != nil {
		return nil, fmt.Errorf("could not store category into pg: %w", constraintErr(err))
	}

	return stored.ToDomain(), nil
}

// CategoryByID returns a category by its ID.
func (p *PgSQL) CategoryByID(ctx context.Context, id domain.CategoryID) (*domain.Category, error) {
	var row PgCategory
	found, err := p.Builder.From(categoriesTable).
		Where(goqu.I("id").Eq(int64(id))).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch category from pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// Categories returns all categories ordered by name.
func (p *PgSQL) Categories(ctx context.Context) ([]domain.Category, error) {
	var rows []PgCategory
	if err := p.Builder.From(categoriesTable).
		Order(goqu.I("name").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch categories from pg: %w", err)
	}

	out := make([]domain.Category, 0, len(rows))
	for i := range rows {
		out = append(out, *rows[i].ToDomain())
	}

	return out, nil
}

// UpdateCategory renames a category.
func (p *PgSQL) UpdateCategory(ctx context.Context, category domain.Category) (*domain.Category, error) {
	var row PgCategory
	found, err := p.Builder.Update(categoriesTable).
		Set(goqu.Record{"name": category.Name}).
		Where(goqu.I("id").Eq(int64(category.ID))).
		Returning(&PgCategory{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not update category in pg: %w", constraintErr(err))
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// DeleteCategory deletes a category. It fails with a reference violation
// while hobbies still belong to it.
func (p *PgSQL) DeleteCategory(ctx context.Context, id domain.CategoryID) (bool, error) {
	res, err := p.Builder.Delete(categoriesTable).
		Where(goqu.I("id").Eq(int64(id))).
		Executor().ExecContext(ctx)
	if err != nil {
		return false, fmt.Errorf("could not delete category in pg: %w", constraintErr(err))
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("could not get affected rows: %w", err)
	}

	return n > 0, nil
}

// UserHobbies returns the hobbies attached to a user.
func (p *PgSQL) UserHobbies(ctx context.Context, userID domain.UserID) ([]domain.Hobby, error) {
	var rows []PgHobby
	if err := p.Builder.From(hobbiesTable).
		Where(goqu.I("id").In(dialect.From(userHobbiesTable).
			Select("hobby_id").
			Where(goqu.I("user_id").Eq(int64(userID))))).
		Order(goqu.I("name").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch user hobbies from pg: %w", err)
	}

	return pgHobbiesToDomain(rows), nil
}

// AddUserHobbies links hobbies to a user, ignoring links that already exist.
func (p *PgSQL) AddUserHobbies(ctx context.Context, userID domain.UserID, IDs ...domain.HobbyID) error {
	if len(IDs) == 0 {
		return nil
	}

	rows := make([]goqu.Record, 0, len(IDs))
	for _, id := range hobbyIDs(IDs) {
		rows = append(rows, goqu.Record{
			"user_id":  int64(userID),
			"hobby_id": id,
		})
	}

	if _, err := p.Builder.Insert(userHobbiesTable).
		Rows(rows).
		OnConflict(goqu.DoNothing()).
		Executor().ExecContext(ctx); err != nil {
		return fmt.Errorf("could not add user hobbies into pg: %w", constraintErr(err))
	}

	return nil
}

// RemoveUserHobbies unlinks hobbies from a user.
func (p *PgSQL) RemoveUserHobbies(ctx context.Context, userID domain.UserID, IDs ...domain.HobbyID) (int64, error) {
	if len(IDs) == 0 {
		return 0, nil
	}

	res, err := p.Builder.Delete(userHobbiesTable).
		Where(
			goqu.I("user_id").Eq(int64(userID)),
			goqu.I("hobby_id").In(hobbyIDs(IDs)),
		).
		Executor().ExecContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("could not remove user hobbies in pg: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("could not get affected rows: %w", err)
	}

	return n, nil
}
