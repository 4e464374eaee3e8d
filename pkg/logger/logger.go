package logger

import (
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Config opciones del logger del motor de inventario.
type Config struct {
	Env    string    // development -> consola legible; cualquier otro valor -> JSON
	Level  string    // trace, debug, info, warn, error
	Output io.Writer // destino; por defecto os.Stdout
}

// Logger wrapper sobre zerolog. Centraliza el formato y los campos que el
// motor usa de forma recurrente (componente, contexto de auditoría).
type Logger struct {
	zl zerolog.Logger
}

// New crea el logger estructurado. En development la salida es consola
// legible; en cualquier otro entorno, JSON por línea.
func New(cfg Config) *Logger {
	w := cfg.Output
	if w == nil {
		w = os.Stdout
	}
	if cfg.Env == "development" {
		w = zerolog.ConsoleWriter{Out: w}
	}

	zl := zerolog.New(w).Level(parseLevel(cfg.Level)).With().Timestamp().Logger()

	// Redirigir el logger global de zerolog para librerías que lo usen
	log.Logger = zl

	return &Logger{zl: zl}
}

// Un nivel desconocido cae a warn: el ledger prefiere pecar de ruidoso a
// perder avisos de auditoría degradada.
func parseLevel(s string) zerolog.Level {
	switch s {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.WarnLevel
	}
}

// WithComponent devuelve un sublogger etiquetado con el componente emisor
// (ledger, catalog, auth...).
func (l *Logger) WithComponent(name string) *Logger {
	return &Logger{zl: l.zl.With().Str("component", name).Logger()}
}

// AuditFailure deja constancia de una fila de auditoría que no pudo
// persistirse. La operación primaria continúa; este aviso es el único rastro
// del fallo, por eso lleva el contexto completo actor/acción/entidad.
func (l *Logger) AuditFailure(err error, actorID, action, entityType, entityID string) {
	l.zl.Warn().Err(err).
		Str("actor", actorID).
		Str("action", action).
		Str("entity_type", entityType).
		Str("entity_id", entityID).
		Msg("auditoría no persistida; la operación primaria continúa")
}

// Trace, Debug, Info, Warn, Error delegados a zerolog.
func (l *Logger) Trace() *zerolog.Event { return l.zl.Trace() }
func (l *Logger) Debug() *zerolog.Event { return l.zl.Debug() }
func (l *Logger) Info() *zerolog.Event  { return l.zl.Info() }
func (l *Logger) Warn() *zerolog.Event  { return l.zl.Warn() }
func (l *Logger) Error() *zerolog.Event { return l.zl.Error() }
func (l *Logger) Fatal() *zerolog.Event { return l.zl.Fatal() }

// With crea un sublogger con campos fijos arbitrarios.
func (l *Logger) With() zerolog.Context {
	return l.zl.With()
}

// Zerolog devuelve el logger interno por si se necesita la API directa.
func (l *Logger) Zerolog() zerolog.Logger {
	return l.zl
}
