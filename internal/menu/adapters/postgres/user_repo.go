package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"

	"restomenu/internal/menu/domain/entities"
	"restomenu/internal/menu/ports/repositories"
	"restomenu/pkg/logger"
)

// Код ошибки Postgres для нарушения уникального ограничения.
const uniqueViolationCode = "23505"

type PgxPoolInterface interface {
	QueryRow(ctx context.Context, query string, args ...interface{}) pgx.Row
	Exec(ctx context.Context, query string, args ...interface{}) (pgconn.CommandTag, error)
	Query(ctx context.Context, query string, args ...interface{}) (pgx.Rows, error)
	Begin(ctx context.Context) (pgx.Tx, error)
	Close()
}

const userColumns = "id, username, password_hash, email, facebook_id, provider, created_at"

// UserRepository реализует интерфейс repositories.UserRepository для работы с Postgres.
type UserRepository struct {
	pool PgxPoolInterface
}

// NewUserRepository создает новый экземпляр репозитория пользователей.
func NewUserRepository(pool PgxPoolInterface) repositories.UserRepository {
	return &UserRepository{pool: pool}
}

// FindByID находит пользователя по ID.
func (r *UserRepository) FindByID(ctx context.Context, id string) (*entities.User, error) {
	query := `
        SELECT ` + userColumns + `
        FROM users
        WHERE id = $1
    `
	return r.findOne(ctx, "FindByID", query, id)
}

// FindByUsername находит пользователя по имени.
func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*entities.User, error) {
	query := `
        SELECT ` + userColumns + `
        FROM users
        WHERE username = $1
    `
	return r.findOne(ctx, "FindByUsername", query, username)
}

// FindByEmail находит пользователя по email.
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*entities.User, error) {
	query := `
        SELECT ` + userColumns + `
        FROM users
        WHERE email = $1
    `
	return r.findOne(ctx, "FindByEmail", query, email)
}

// FindByFacebookID находит пользователя по идентификатору Facebook.
func (r *UserRepository) FindByFacebookID(ctx context.Context, facebookID string) (*entities.User, error) {
	query := `
        SELECT ` + userColumns + `
        FROM users
        WHERE facebook_id = $1
    `
	return r.findOne(ctx, "FindByFacebookID", query, facebookID)
}

func (r *UserRepository) findOne(ctx context.Context, method, query string, arg any) (*entities.User, error) {
	log := logger.Log(ctx).With(zap.String("repository", "user"), zap.String("method", method))

	user, err := scanUser(r.pool.QueryRow(ctx, query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Debug(ctx, "user not found")
			return nil, entities.ErrUserNotFound
		}
		log.Error(ctx, "error querying user", zap.Error(err))
		return nil, fmt.Errorf("error querying user: %w", err)
	}
	return user, nil
}

// Create создает нового пользователя. Нарушение уникальности имени или
// почты транслируется в entities.ErrUserAlreadyExists.
func (r *UserRepository) Create(ctx context.Context, user *entities.User) (*entities.User, error) {
	log := logger.Log(ctx).With(zap.String("repository", "user"), zap.String("method", "Create"))

	query := `
        INSERT INTO users (username, password_hash, email, facebook_id, provider)
        VALUES ($1, $2, $3, NULLIF($4, ''), $5)
        RETURNING ` + userColumns + `
    `

	created, err := scanUser(r.pool.QueryRow(ctx, query,
		user.Username,
		user.PasswordHash,
		user.Email,
		user.FacebookID,
		user.Provider,
	))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			log.Debug(ctx, "user already exists", zap.String("username", user.Username))
			return nil, entities.ErrUserAlreadyExists
		}
		log.Error(ctx, "error creating user", zap.Error(err))
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	return created, nil
}

// LinkFacebook привязывает идентификатор Facebook к существующей
// учетной записи и переводит ее на внешнего провайдера.
func (r *UserRepository) LinkFacebook(ctx context.Context, userID, facebookID string) (*entities.User, error) {
	log := logger.Log(ctx).With(zap.String("repository", "user"), zap.String("method", "LinkFacebook"))

	query := `
        UPDATE users
        SET facebook_id = $2, provider = $3
        WHERE id = $1
        RETURNING ` + userColumns + `
    `

	linked, err := scanUser(r.pool.QueryRow(ctx, query, userID, facebookID, entities.ProviderFacebook))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Debug(ctx, "user not found for linking", zap.String("id", userID))
			return nil, entities.ErrUserNotFound
		}
		log.Error(ctx, "error linking facebook identity", zap.Error(err))
		return nil, fmt.Errorf("error linking facebook identity: %w", err)
	}

	return linked, nil
}

func scanUser(row pgx.Row) (*entities.User, error) {
	var (
		user       entities.User
		facebookID *string
	)
	err := row.Scan(
		&user.ID,
		&user.Username,
		&user.PasswordHash,
		&user.Email,
		&facebookID,
		&user.Provider,
		&user.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	if facebookID != nil {
		user.FacebookID = *facebookID
	}
	return &user, nil
}
