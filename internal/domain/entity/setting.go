package entity

// Claves de configuración conocidas.
const (
	SettingInitialCapital = "initial_capital"
)

// Setting es un par clave/valor de configuración de la aplicación.
type Setting struct {
	ID    int64
	Key   string
	Value string
}
