package usecase

import (
	"github.com/jhoicas/Taller-api/internal/application/dto"
	"github.com/jhoicas/Taller-api/internal/domain"
	"github.com/jhoicas/Taller-api/internal/domain/repository"
)

// SettingUseCase casos de uso de configuración clave/valor.
type SettingUseCase struct {
	repo repository.SettingRepository
}

// NewSettingUseCase construye el caso de uso.
func NewSettingUseCase(repo repository.SettingRepository) *SettingUseCase {
	return &SettingUseCase{repo: repo}
}

// Get obtiene una clave. Devuelve (nil, nil) si no existe.
func (uc *SettingUseCase) Get(key string) (*dto.SettingResponse, error) {
	setting, err := uc.repo.Get(key)
	if err != nil {
		return nil, err
	}
	if setting == nil {
		return nil, nil
	}
	return &dto.SettingResponse{ID: setting.ID, Key: setting.Key, Value: setting.Value}, nil
}

// Set inserta o actualiza la clave (upsert).
func (uc *SettingUseCase) Set(in dto.SetSettingRequest) (*dto.SettingResponse, error) {
	if in.Key == "" || in.Value == "" {
		return nil, domain.ErrInvalidInput
	}
	setting, err := uc.repo.Set(in.Key, in.Value)
	if err != nil {
		return nil, err
	}
	return &dto.SettingResponse{ID: setting.ID, Key: setting.Key, Value: setting.Value}, nil
}
