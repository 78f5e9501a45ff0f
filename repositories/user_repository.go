package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/rupeshmutkule/Shophub/models"
)

type UserRepository struct{}

func NewUserRepository() *UserRepository {
	return &UserRepository{}
}

func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO users (first_name, last_name, email, phone, password, user_type, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at
	`
	return models.DB.QueryRow(
		ctx,
		query,
		user.FirstName,
		user.LastName,
		user.Email,
		user.Phone,
		user.Password,
		user.UserType,
		time.Now(),
	).Scan(&user.ID, &user.CreatedAt)
}

// FindByIdentifier looks a user up by email or phone, whichever matches. The
// login form sends a single identifier field for both.
func (r *UserRepository) FindByIdentifier(ctx context.Context, identifier string) (*models.User, error) {
	query := `
		SELECT id, first_name, last_name, email, phone, password, user_type, created_at
		FROM users
		WHERE email = $1 OR phone = $1
	`
	return r.scanOne(models.DB.QueryRow(ctx, query, identifier))
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `
		SELECT id, first_name, last_name, email, phone, password, user_type, created_at
		FROM users
		WHERE LOWER(email) = LOWER($1)
	`
	return r.scanOne(models.DB.QueryRow(ctx, query, email))
}

func (r *UserRepository) UpdatePasswordByEmail(ctx context.Context, email, hashedPassword string) error {
	query := `UPDATE users SET password = $1 WHERE LOWER(email) = LOWER($2)`
	_, err := models.DB.Exec(ctx, query, hashedPassword, email)
	return err
}

func (r *UserRepository) scanOne(row pgx.Row) (*models.User, error) {
	user := &models.User{}
	err := row.Scan(
		&user.ID,
		&user.FirstName,
		&user.LastName,
		&user.Email,
		&user.Phone,
		&user.Password,
		&user.UserType,
		&user.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}
