// Package logger defines the logging surface used during initialization
// and ships a zerolog-backed default plus adapters for log/slog.
package logger

// Logger accepts a message followed by alternating key/value args.
type Logger interface {
	Error(msg string, args ...any)
	Warn(msg string, args ...any)
	Info(msg string, args ...any)
	Debug(msg string, args ...any)
}

// Nop discards everything. It is the default when the caller supplies no
// logger, keeping the library silent.
type Nop struct{}

func (Nop) Error(msg string, args ...any) {}
func (Nop) Warn(msg string, args ...any)  {}
func (Nop) Info(msg string, args ...any)  {}
func (Nop) Debug(msg string, args ...any) {}

func fields(args []any) map[string]any {
	if len(args) == 0 {
		return nil
	}
	f := make(map[string]any, len(args)/2)
	for i := 0; i+1 < len(args); i += 2 {
		key, ok := args[i].(string)
		if !ok {
			continue
		}
		f[key] = args[i+1]
	}
	return f
}
