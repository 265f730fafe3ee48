package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"carrybid/internal/entities"

	sq "github.com/Masterminds/squirrel"
)

func (r *postgresRepo) GetUser(ctx context.Context, userID string) (entities.User, error) {
	query, args := r.qb.Select(
		"userid", "name", "email", "phone", "country", "address", "created_at").
		From("users").
		Where(sq.Eq{"userid": userID}).
		MustSql()

	var user User
	err := r.getContext(ctx, &user, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.User{}, entities.ErrUserNotFound
	}
	if err != nil {
		return entities.User{}, fmt.Errorf("failed to get user: %w", err)
	}
	return UserToEntity(user), nil
}

func (r *postgresRepo) GetUsersByIDs(ctx context.Context, userIDs []string) (map[string]entities.User, error) {
	if len(userIDs) == 0 {
		return map[string]entities.User{}, nil
	}

	query, args := r.qb.Select(
		"userid", "name", "email", "phone", "country", "address", "created_at").
		From("users").
		Where(sq.Eq{"userid": userIDs}).
		MustSql()

	var users []User
	if err := r.selectContext(ctx, &users, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select users: %w", err)
	}

	result := make(map[string]entities.User, len(users))
	for _, u := range users {
		result[u.UserID] = UserToEntity(u)
	}
	return result, nil
}

// UpdateProfile writes the caller-editable contact fields and returns the
// stored row.
func (r *postgresRepo) UpdateProfile(ctx context.Context, u entities.User) (entities.User, error) {
	query, args := r.qb.Update("users").
		Set("name", u.Name).
		Set("phone", nullString(u.Phone)).
		Set("country", nullString(u.Country)).
		Set("address", nullString(u.Address)).
		Where(sq.Eq{"userid": u.UserID}).
		Suffix("RETURNING userid, name, email, phone, country, address, created_at").
		MustSql()

	var updated User
	err := r.getContext(ctx, &updated, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.User{}, entities.ErrUserNotFound
	}
	if err != nil {
		return entities.User{}, fmt.Errorf("failed to update profile: %w", err)
	}
	return UserToEntity(updated), nil
}

func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}
