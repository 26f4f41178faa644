package postgres

import (
	"context"
	"errors"
	"task-service/internal/domain/user"
	"task-service/internal/repository"
	apperrors "task-service/pkg/errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const userColumns = "id, user_name, password, user_email, phone, role"

type UserRepository struct {
	db *DB
}

func NewUserRepository(db *DB) *UserRepository {
	return &UserRepository{db: db}
}

func scanUser(row pgx.Row) (*user.User, error) {
	u := &user.User{}
	err := row.Scan(
		&u.ID,
		&u.UserName,
		&u.Password,
		&u.Email,
		&u.Phone,
		&u.Role,
	)
	return u, err
}

func (r *UserRepository) List(ctx context.Context) ([]*user.User, error) {
	query := "SELECT " + userColumns + " FROM users ORDER BY user_name"

	rows, err := r.db.Pool.Query(ctx, query)
	if err != nil {
		return nil, errFailedListUsers(err)
	}
	defer rows.Close()

	users := []*user.User{}
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, errFailedScanUser(err)
		}
		users = append(users, u)
	}

	if err := rows.Err(); err != nil {
		return nil, errIterateUsers(err)
	}

	return users, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	query := "SELECT " + userColumns + " FROM users WHERE id = $1"

	u, err := scanUser(r.db.Pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NotFound(repository.MsgUserNotFound)
		}
		return nil, errFailedGetUser(err)
	}

	return u, nil
}

// GetByCredentials compares the password inside postgres; the secret is
// never read back into the process.
func (r *UserRepository) GetByCredentials(ctx context.Context, username, password string) (*user.User, error) {
	query := "SELECT " + userColumns + " FROM users WHERE user_name = $1 AND password = $2"

	u, err := scanUser(r.db.Pool.QueryRow(ctx, query, username, password))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.InvalidCredentials()
		}
		return nil, errFailedGetUser(err)
	}

	return u, nil
}

func (r *UserRepository) Create(ctx context.Context, u *user.User) error {
	query := `
		INSERT INTO users (id, user_name, password, user_email, phone, role)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.Pool.Exec(ctx, query, u.ID, u.UserName, u.Password, u.Email, u.Phone, u.Role)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.Conflict(repository.MsgUserNameTaken)
		}
		return errFailedCreateUser(err)
	}

	return nil
}

func (r *UserRepository) Update(ctx context.Context, id uuid.UUID, mutate repository.UserMutator) (*user.User, error) {
	var updated *user.User

	err := r.db.inTx(ctx, func(tx pgx.Tx) error {
		query := "SELECT " + userColumns + " FROM users WHERE id = $1 FOR UPDATE"

		u, err := scanUser(tx.QueryRow(ctx, query, id))
		if errors.Is(err, pgx.ErrNoRows) {
			if err := mutate(nil); err != nil {
				return err
			}
			return apperrors.NotFound(repository.MsgUserNotFound)
		}
		if err != nil {
			return errFailedGetUser(err)
		}

		if err := mutate(u); err != nil {
			return err
		}
		u.ID = id

		update := `
			UPDATE users
			SET user_name = $2, password = $3, user_email = $4, phone = $5, role = $6
			WHERE id = $1
		`
		if _, err := tx.Exec(ctx, update, id, u.UserName, u.Password, u.Email, u.Phone, u.Role); err != nil {
			if isUniqueViolation(err) {
				return apperrors.Conflict(repository.MsgUserNameTaken)
			}
			return errFailedUpdateUser(err)
		}

		updated = u
		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

func (r *UserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := "DELETE FROM users WHERE id = $1"

	result, err := r.db.Pool.Exec(ctx, query, id)
	if err != nil {
		return errFailedDeleteUser(err)
	}

	if result.RowsAffected() == 0 {
		return apperrors.NotFound(repository.MsgUserNotFound)
	}

	return nil
}

func (r *UserRepository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.Pool.QueryRow(ctx, "SELECT COUNT(*) FROM users").Scan(&n); err != nil {
		return 0, errFailedCountUsers(err)
	}
	return n, nil
}
