package auth

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const userColumns = `id, name, email, image, theme, language, role, created_at, updated_at`

type UserRepository struct {
	DB *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{DB: db}
}

func (r *UserRepository) Create(ctx context.Context, name *string, email string) (*User, error) {
	id := uuid.NewString()

	row := r.DB.QueryRow(ctx, `
		INSERT INTO users (id, name, email, theme, role)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING `+userColumns+`
	`, id, name, email, "system", "USER")

	return scanUser(row)
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*User, error) {
	row := r.DB.QueryRow(ctx, `
		SELECT `+userColumns+`
		FROM users
		WHERE id=$1
	`, id)

	user, err := scanUser(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	return user, err
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*User, error) {
	row := r.DB.QueryRow(ctx, `
		SELECT `+userColumns+`
		FROM users
		WHERE email=$1
	`, email)

	user, err := scanUser(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	return user, err
}

// GetUserLanguage returns the account's stored language preference, or ""
// when the account does not exist or never saved one.
func (r *UserRepository) GetUserLanguage(ctx context.Context, userID string) (string, error) {
	row := r.DB.QueryRow(ctx, `
		SELECT language
		FROM users
		WHERE id=$1
	`, userID)

	var language sql.NullString
	if err := row.Scan(&language); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", nil
		}
		return "", err
	}
	return language.String, nil
}

// UpdateUserLanguage persists the account's language preference. Only
// explicit, validated switches reach this write.
func (r *UserRepository) UpdateUserLanguage(ctx context.Context, userID, language string) error {
	_, err := r.DB.Exec(ctx, `
		UPDATE users
		SET language=$1, updated_at=NOW()
		WHERE id=$2
	`, language, userID)
	return err
}

func (r *UserRepository) UpdateProfile(ctx context.Context, userID string, name, theme, language *string) (*User, error) {
	sets := []string{}
	args := []interface{}{}
	idx := 1

	if name != nil {
		sets = append(sets, fmt.Sprintf("name=$%d", idx))
		args = append(args, name)
		idx++
	}
	if theme != nil {
		sets = append(sets, fmt.Sprintf("theme=$%d", idx))
		args = append(args, theme)
		idx++
	}
	if language != nil {
		sets = append(sets, fmt.Sprintf("language=$%d", idx))
		args = append(args, language)
		idx++
	}

	if len(sets) == 0 {
		return r.FindByID(ctx, userID)
	}

	sets = append(sets, "updated_at=NOW()")
	args = append(args, userID)
	query := fmt.Sprintf(`
		UPDATE users
		SET %s
		WHERE id=$%d
		RETURNING `+userColumns+`
	`, strings.Join(sets, ", "), idx)

	row := r.DB.QueryRow(ctx, query, args...)
	return scanUser(row)
}

func scanUser(row pgx.Row) (*User, error) {
	var (
		id        string
		name      sql.NullString
		email     string
		image     sql.NullString
		theme     sql.NullString
		language  sql.NullString
		role      string
		createdAt time.Time
		updatedAt time.Time
	)

	if err := row.Scan(&id, &name, &email, &image, &theme, &language, &role, &createdAt, &updatedAt); err != nil {
		return nil, err
	}

	return &User{
		ID:        id,
		Name:      nullStringPtr(name),
		Email:     email,
		Image:     nullStringPtr(image),
		Theme:     stringOrDefault(theme, "system"),
		Language:  nullStringPtr(language),
		Role:      role,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}, nil
}

func nullStringPtr(ns sql.NullString) *string {
	if ns.Valid {
		return &ns.String
	}
	return nil
}

func stringOrDefault(ns sql.NullString, def string) string {
	if ns.Valid {
		return ns.String
	}
	return def
}
