package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/SergeyBogomolovv/storefront-service/internal/entities"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
)

type userRepo struct {
	base
}

func NewUserRepo(db *sqlx.DB) *userRepo {
	return &userRepo{base: newBase(db)}
}

var userColumns = []string{"user_id", "username", "email", "role", "created_at"}

func (r *userRepo) FindByEmail(ctx context.Context, email string) (entities.User, error) {
	query, args := r.qb.Select(userColumns...).
		From("users").
		Where(sq.Expr("lower(email) = lower(?)", email)).
		MustSql()

	return r.findOne(ctx, query, args)
}

func (r *userRepo) FindByUsername(ctx context.Context, username string) (entities.User, error) {
	query, args := r.qb.Select(userColumns...).
		From("users").
		Where(sq.Expr("lower(username) = lower(?)", username)).
		MustSql()

	return r.findOne(ctx, query, args)
}

func (r *userRepo) findOne(ctx context.Context, query string, args []any) (entities.User, error) {
	var user User
	err := r.getContext(ctx, &user, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.User{}, entities.ErrUserNotFound
	}
	if err != nil {
		return entities.User{}, fmt.Errorf("failed to find user: %w", err)
	}
	return UserToEntity(user), nil
}

// CreateUser заводит гостевой аккаунт: пароль помечается заглушкой,
// настоящие учётные данные выставляет внешний auth-сервис.
func (r *userRepo) CreateUser(ctx context.Context, username, email string) (entities.User, error) {
	query, args := r.qb.Insert("users").
		Columns("username", "email", "password_hash", "role").
		Values(username, email, "!", "customer").
		Suffix("RETURNING user_id, username, email, role, created_at").
		MustSql()

	var user User
	if err := r.getContext(ctx, &user, query, args...); err != nil {
		return entities.User{}, fmt.Errorf("failed to create user: %w", err)
	}
	return UserToEntity(user), nil
}
