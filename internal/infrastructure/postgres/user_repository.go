package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/Taller-api/internal/domain"
	"github.com/jhoicas/Taller-api/internal/domain/entity"
	"github.com/jhoicas/Taller-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepository)(nil)

// UserRepository implementa el puerto sobre PostgreSQL.
type UserRepository struct {
	pool *pgxpool.Pool
}

// NewUserRepository construye el repositorio.
func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

const userColumns = `id, username, email, password_hash, name, profile_picture`

func (r *UserRepository) getBy(field string, value any) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE ` + field + ` = $1`

	var u entity.User
	err := r.pool.QueryRow(context.Background(), query, value).
		Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.Name, &u.ProfilePicture)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

// Create inserta el usuario y asigna el ID generado. Traduce la violación de
// unicidad a domain.ErrDuplicate.
func (r *UserRepository) Create(user *entity.User) error {
	query := `
		INSERT INTO users (username, email, password_hash, name, profile_picture)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`

	err := r.pool.QueryRow(context.Background(), query,
		user.Username, user.Email, user.PasswordHash, user.Name, user.ProfilePicture,
	).Scan(&user.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insertar usuario: %w", err)
	}
	return nil
}

// GetByID devuelve el usuario o (nil, nil) si no existe.
func (r *UserRepository) GetByID(id int64) (*entity.User, error) {
	return r.getBy("id", id)
}

// GetByUsername devuelve el usuario o (nil, nil) si no existe.
func (r *UserRepository) GetByUsername(username string) (*entity.User, error) {
	return r.getBy("username", username)
}

// GetByEmail devuelve el usuario o (nil, nil) si no existe.
func (r *UserRepository) GetByEmail(email string) (*entity.User, error) {
	return r.getBy("email", email)
}

// List devuelve todos los usuarios ordenados por username.
func (r *UserRepository) List() ([]*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users ORDER BY username`

	rows, err := r.pool.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("listar usuarios: %w", err)
	}
	defer rows.Close()

	var users []*entity.User
	for rows.Next() {
		var u entity.User
		if err := rows.Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.Name, &u.ProfilePicture); err != nil {
			return nil, fmt.Errorf("escanear usuario: %w", err)
		}
		users = append(users, &u)
	}
	return users, rows.Err()
}

// Update escribe todos los campos editables del usuario.
func (r *UserRepository) Update(user *entity.User) error {
	query := `
		UPDATE users
		SET username = $1, email = $2, password_hash = $3, name = $4, profile_picture = $5
		WHERE id = $6`

	tag, err := r.pool.Exec(context.Background(), query,
		user.Username, user.Email, user.PasswordHash, user.Name, user.ProfilePicture, user.ID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("actualizar usuario: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}
