package repository

import "github.com/jhoicas/Taller-api/internal/domain/entity"

// SettingRepository define el puerto de persistencia para Setting (DIP).
// Get devuelve (nil, nil) si la clave no existe.
type SettingRepository interface {
	Get(key string) (*entity.Setting, error)
	// Set inserta o actualiza el valor de la clave (upsert).
	Set(key, value string) (*entity.Setting, error)
}
