package dto

// SetSettingRequest entrada para crear o actualizar una clave de configuración.
type SetSettingRequest struct {
	Key   string `json:"key" validate:"required"`
	Value string `json:"value" validate:"required"`
}

// SettingResponse salida de una clave de configuración.
type SettingResponse struct {
	ID    int64  `json:"id"`
	Key   string `json:"key"`
	Value string `json:"value"`
}
