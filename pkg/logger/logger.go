// Package logger arma el zerolog de la aplicación.
package logger

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// New construye el logger raíz. En development escribe consola legible con
// hora corta; en cualquier otro entorno, JSON por línea a stderr. level acepta
// los niveles de zerolog (trace, debug, info, warn, error); un valor
// desconocido o vacío cae en info. Todas las líneas llevan el campo service.
func New(env, service, level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}

	var w io.Writer = os.Stderr
	if env == "development" {
		w = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}
	}

	l := zerolog.New(w).Level(lvl).With().
		Timestamp().
		Str("service", service).
		Logger()

	// Las librerías que usan el logger global de zerolog escriben igual.
	log.Logger = l
	return l
}
