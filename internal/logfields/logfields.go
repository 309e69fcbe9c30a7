package logfields

import "log/slog"

// Canonical log field name constants to avoid drift across packages.
const (
	KeyPath       = "path"
	KeyFormat     = "format"
	KeyPlugin     = "plugin"
	KeyPlugins    = "plugins"
	KeyProvider   = "provider"
	KeyRepo       = "repository"
	KeyEvent      = "event"
	KeyDurationMS = "duration_ms"
	KeyError      = "error"
)

// Simple helpers returning slog.Attr. Keeping each granular means callers can compose.
func Path(p string) slog.Attr         { return slog.String(KeyPath, p) }
func Format(f string) slog.Attr       { return slog.String(KeyFormat, f) }
func Plugin(name string) slog.Attr    { return slog.String(KeyPlugin, name) }
func Plugins(n int) slog.Attr         { return slog.Int(KeyPlugins, n) }
func Provider(name string) slog.Attr  { return slog.String(KeyProvider, name) }
func Repository(r string) slog.Attr   { return slog.String(KeyRepo, r) }
func Event(op string) slog.Attr       { return slog.String(KeyEvent, op) }
func DurationMS(ms float64) slog.Attr { return slog.Float64(KeyDurationMS, ms) }
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
