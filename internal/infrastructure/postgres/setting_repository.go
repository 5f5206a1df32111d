package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/Taller-api/internal/domain/entity"
	"github.com/jhoicas/Taller-api/internal/domain/repository"
)

var _ repository.SettingRepository = (*SettingRepository)(nil)

// SettingRepository implementa el puerto clave/valor sobre PostgreSQL.
type SettingRepository struct {
	pool *pgxpool.Pool
}

// NewSettingRepository construye el repositorio.
func NewSettingRepository(pool *pgxpool.Pool) *SettingRepository {
	return &SettingRepository{pool: pool}
}

// Get devuelve el setting o (nil, nil) si la clave no existe.
func (r *SettingRepository) Get(key string) (*entity.Setting, error) {
	query := `SELECT id, key, value FROM settings WHERE key = $1`

	var s entity.Setting
	err := r.pool.QueryRow(context.Background(), query, key).Scan(&s.ID, &s.Key, &s.Value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}

// Set inserta o actualiza el valor de la clave (upsert).
func (r *SettingRepository) Set(key, value string) (*entity.Setting, error) {
	query := `
		INSERT INTO settings (key, value)
		VALUES ($1, $2)
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value
		RETURNING id, key, value`

	var s entity.Setting
	err := r.pool.QueryRow(context.Background(), query, key, value).Scan(&s.ID, &s.Key, &s.Value)
	if err != nil {
		return nil, fmt.Errorf("guardar setting: %w", err)
	}
	return &s, nil
}
