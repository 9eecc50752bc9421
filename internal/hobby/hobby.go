package hobby

import (
	"context"
	"errors"
	"fmt"
	"matchup/pkg/domain"
	"matchup/pkg/serrors"
	"matchup/pkg/storage"
	"strings"
)

// DefaultSearchLimit bounds the number of hobbies returned by Search.
const DefaultSearchLimit = 50

type Options struct {
	// SearchLimit bounds the number of hobbies returned by Search.
	SearchLimit uint
}

type hobbies struct {
	options Options
	storage storage.Storage
}

// writeErr maps constraint violations of hobby and category writes to
// semantic errors.
func writeErr(err error, action string) error {
	switch storage.ViolatedConstraint(err) {
	case storage.ConstraintHobbyName:
		return serrors.Wrap(serrors.ErrConflict, err, "Hobby name must be unique")
	case storage.ConstraintCategoryName:
		return serrors.Wrap(serrors.ErrConflict, err, "Category name must be unique")
	case storage.ConstraintHobbyCategory:
		if errors.Is(err, storage.ErrReference) {
			return serrors.Wrap(serrors.ErrBadRequest, err, "Category not found")
		}
	}

	return fmt.Errorf("could not %s: %w", action, err)
}

func validName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", serrors.With(serrors.ErrBadRequest, "Name must not be empty")
	}

	return name, nil
}

func (h hobbies) Get(ctx context.Context, id domain.HobbyID) (*domain.Hobby, error) {
	if id <= 0 {
		return nil, serrors.With(serrors.ErrBadRequest, "Invalid hobby ID")
	}

	hobby, err := h.storage.HobbyByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("could not get hobby: %w", err)
	}
	if hobby == nil {
		return nil, serrors.With(serrors.ErrNotFound, "Hobby not found")
	}

	return hobby, nil
}

func (h hobbies) Create(ctx context.Context, hobby domain.Hobby) (*domain.Hobby, error) {
	name, err := validName(hobby.Name)
	if err != nil {
		return nil, err
	}
	if hobby.CategoryID <= 0 {
		return nil, serrors.With(serrors.ErrBadRequest, "Invalid category ID")
	}
	hobby.Name = name

	stored, err := h.storage.StoreHobby(ctx, hobby)
	if err != nil {
		return nil, writeErr(err, "store hobby")
	}

	return stored, nil
}

func (h hobbies) Update(ctx context.Context, hobby domain.Hobby) (*domain.Hobby, error) {
	if hobby.ID <= 0 {
		return nil, serrors.With(serrors.ErrBadRequest, "Invalid hobby ID")
	}
	name, err := validName(hobby.Name)
	if err != nil {
		return nil, err
	}
	if hobby.CategoryID <= 0 {
		return nil, serrors.With(serrors.ErrBadRequest, "Invalid category ID")
	}
	hobby.Name = name

	updated, err := h.storage.UpdateHobby(ctx, hobby)
	if err != nil {
		return nil, writeErr(err, "update hobby")
	}
	if updated == nil {
		return nil, serrors.With(serrors.ErrNotFound, "Hobby not found")
	}

	return updated, nil
}

func (h hobbies) Delete(ctx context.Context, id domain.HobbyID) error {
	if id <= 0 {
		return serrors.With(serrors.ErrBadRequest, "Invalid hobby ID")
	}

	deleted, err := h.storage.DeleteHobby(ctx, id)
	if err != nil {
		return fmt.Errorf("could not delete hobby: %w", err)
	}
	if !deleted {
		return serrors.With(serrors.ErrNotFound, "Hobby not found")
	}

	return nil
}

// Search matches query case-insensitively against hobby and category names.
// A blank query returns nothing.
func (h hobbies) Search(ctx context.Context, query string) ([]domain.Hobby, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []domain.Hobby{}, nil
	}

	res, err := h.storage.SearchHobbies(ctx, query, h.options.SearchLimit)
	if err != nil {
		return nil, fmt.Errorf("could not search hobbies: %w", err)
	}

	return res, nil
}

// withHobbies attaches the hobbies of every category in a single query.
func (h hobbies) withHobbies(ctx context.Context, categories []domain.Category) error {
	if len(categories) == 0 {
		return nil
	}

	IDs := make([]domain.CategoryID, 0, len(categories))
	for _, c := range categories {
		IDs = append(IDs, c.ID)
	}

	all, err := h.storage.HobbiesByCategory(ctx, IDs...)
	if err != nil {
		return fmt.Errorf("could not get category hobbies: %w", err)
	}

	byCategory := make(map[domain.CategoryID][]domain.Hobby, len(categories))
	for _, hobby := range all {
		byCategory[hobby.CategoryID] = append(byCategory[hobby.CategoryID], hobby)
	}
	for i := range categories {
		if list, ok := byCategory[categories[i].ID]; ok {
			categories[i].Hobbies = list
		} else {
			categories[i].Hobbies = []domain.Hobby{}
		}
	}

	return nil
}

func (h hobbies) Categories(ctx context.Context) ([]domain.Category, error) {
	categories, err := h.storage.Categories(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not get categories: %w", err)
	}

	if err := h.withHobbies(ctx, categories); err != nil {
		return nil, err
	}

	return categories, nil
}

func (h hobbies) Category(ctx context.Context, id domain.CategoryID) (*domain.Category, error) {
	if id <= 0 {
		return nil, serrors.With(serrors.ErrBadRequest, "Invalid category ID")
	}

	category, err := h.storage.CategoryByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("could not get category: %w", err)
	}
	if category == nil {
		return nil, serrors.With(serrors.ErrNotFound, "Category not found")
	}

	list := []domain.Category{*category}
	if err := h.withHobbies(ctx, list); err != nil {
		return nil, err
	}

	return &list[0], nil
}

func (h hobbies) CreateCategory(ctx context.Context, name string) (*domain.Category, error) {
	name, err := validName(name)
	if err != nil {
		return nil, err
	}

	category, err := h.storage.StoreCategory(ctx, domain.Category{Name: name})
	if err != nil {
		return nil, writeErr(err, "store category")
	}

	return category, nil
}

func (h hobbies) UpdateCategory(ctx context.Context, category domain.Category) (*domain.Category, error) {
	if category.ID <= 0 {
		return nil, serrors.With(serrors.ErrBadRequest, "Invalid category ID")
	}
	name, err := validName(category.Name)
	if err != nil {
		return nil, err
	}
	category.Name = name

	updated, err := h.storage.UpdateCategory(ctx, category)
	if err != nil {
		return nil, writeErr(err, "update category")
	}
	if updated == nil {
		return nil, serrors.With(serrors.ErrNotFound, "Category not found")
	}

	list := []domain.Category{*updated}
	if err := h.withHobbies(ctx, list); err != nil {
		return nil, err
	}

	return &list[0], nil
}

// DeleteCategory removes an empty category. Categories that still own
// hobbies are rejected with CONFLICT.
func (h hobbies) DeleteCategory(ctx context.Context, id domain.CategoryID) error {
	if id <= 0 {
		return serrors.With(serrors.ErrBadRequest, "Invalid category ID")
	}

	deleted, err := h.storage.DeleteCategory(ctx, id)
	if errors.Is(err, storage.ErrReference) {
		return serrors.Wrap(serrors.ErrConflict, err, "Category still has hobbies")
	}
	if err != nil {
		return fmt.Errorf("could not delete category: %w", err)
	}
	if !deleted {
		return serrors.With(serrors.ErrNotFound, "Category not found")
	}

	return nil
}

func (h hobbies) UserHobbies(ctx context.Context, userID domain.UserID) ([]domain.Hobby, error) {
	res, err := h.storage.UserHobbies(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("could not get user hobbies: %w", err)
	}

	return res, nil
}

func validHobbyIDs(userID domain.UserID, IDs []domain.HobbyID) error {
	if userID <= 0 || len(IDs) == 0 {
		return serrors.With(serrors.ErrBadRequest, "Invalid user or hobby IDs")
	}
	for _, id := range IDs {
		if id <= 0 {
			return serrors.With(serrors.ErrBadRequest, "Invalid user or hobby IDs")
		}
	}

	return nil
}

func userHobbyErr(err error, action string) error {
	if errors.Is(err, storage.ErrReference) {
		return serrors.Wrap(serrors.ErrBadRequest, err, "Hobby not found")
	}

	return fmt.Errorf("could not %s: %w", action, err)
}

// AddUserHobbies attaches hobbies to the user. Hobbies already attached are
// kept as they are.
func (h hobbies) AddUserHobbies(ctx context.Context, userID domain.UserID, IDs []domain.HobbyID) ([]domain.Hobby, error) {
	if err := validHobbyIDs(userID, IDs); err != nil {
		return nil, err
	}

	var res []domain.Hobby
	if err := h.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		if err := tx.AddUserHobbies(ctx, userID, IDs...); err != nil {
			return userHobbyErr(err, "add user hobbies")
		}

		var err error
		res, err = tx.UserHobbies(ctx, userID)
		if err != nil {
			return fmt.Errorf("could not get user hobbies: %w", err)
		}

		return nil
	}); err != nil {
		return nil, fmt.Errorf("could not add user hobbies: %w", err)
	}

	return res, nil
}

// EditUserHobbies makes IDs the exact hobby set of the user.
func (h hobbies) EditUserHobbies(ctx context.Context, userID domain.UserID, IDs []domain.HobbyID) ([]domain.Hobby, error) {
	if err := validHobbyIDs(userID, IDs); err != nil {
		return nil, err
	}

	wanted := make(map[domain.HobbyID]struct{}, len(IDs))
	for _, id := range IDs {
		wanted[id] = struct{}{}
	}

	var res []domain.Hobby
	if err := h.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		current, err := tx.UserHobbies(ctx, userID)
		if err != nil {
			return fmt.Errorf("could not get user hobbies: %w", err)
		}

		var remove []domain.HobbyID
		for _, hobby := range current {
			if _, ok := wanted[hobby.ID]; ok {
				delete(wanted, hobby.ID)
			} else {
				remove = append(remove, hobby.ID)
			}
		}
		add := make([]domain.HobbyID, 0, len(wanted))
		for _, id := range IDs {
			if _, ok := wanted[id]; ok {
				add = append(add, id)
				delete(wanted, id)
			}
		}

		if len(remove) > 0 {
			if _, err := tx.RemoveUserHobbies(ctx, userID, remove...); err != nil {
				return fmt.Errorf("could not remove user hobbies: %w", err)
			}
		}
		if len(add) > 0 {
			if err := tx.AddUserHobbies(ctx, userID, add...); err != nil {
				return userHobbyErr(err, "add user hobbies")
			}
		}

		res, err = tx.UserHobbies(ctx, userID)
		if err != nil {
			return fmt.Errorf("could not get user hobbies: %w", err)
		}

		return nil
	}); err != nil {
		return nil, fmt.Errorf("could not edit user hobbies: %w", err)
	}

	return res, nil
}

func (h hobbies) DeleteUserHobbies(ctx context.Context, userID domain.UserID, IDs []domain.HobbyID) error {
	if err := validHobbyIDs(userID, IDs); err != nil {
		return err
	}

	removed, err := h.storage.RemoveUserHobbies(ctx, userID, IDs...)
	if err != nil {
		return fmt.Errorf("could not remove user hobbies: %w", err)
	}
	if removed == 0 {
		return serrors.With(serrors.ErrNotFound, "No hobbies found for user")
	}

	return nil
}

// New creates a Hobbies service backed by storage.
func New(storage storage.Storage, options Options) Hobbies {
	if options.SearchLimit == 0 {
		options.SearchLimit = DefaultSearchLimit
	}

	return &hobbies{
		options: options,
		storage: storage,
	}
}
