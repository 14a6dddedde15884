package logger

// Nop descarta todo. Útil en tests y en comandos CLI silenciosos.
type nopLogger struct{}

func Nop() Logger { return nopLogger{} }

func (n nopLogger) With(map[string]any) Logger  { return n }
func (nopLogger) Debug(string, map[string]any) {}
func (nopLogger) Info(string, map[string]any)  {}
func (nopLogger) Warn(string, map[string]any)  {}
func (nopLogger) Error(string, map[string]any) {}
