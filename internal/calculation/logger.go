package calculation

// Logger receives engine diagnostics. The default is a no-op.
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// NopLogger implements Logger with no output.
type NopLogger struct{}

func (NopLogger) Debugf(format string, args ...any) {}
func (NopLogger) Infof(format string, args ...any)  {}
func (NopLogger) Warnf(format string, args ...any)  {}
func (NopLogger) Errorf(format string, args ...any) {}

// scopedLogger tags every message with the scenario being projected.
type scopedLogger struct {
	base  Logger
	scope string
}

func withScope(l Logger, scope string) Logger {
	if _, nop := l.(NopLogger); nop {
		return l
	}
	return scopedLogger{base: l, scope: scope}
}

func (s scopedLogger) Debugf(format string, args ...any) {
	s.base.Debugf("[%s] "+format, s.prefixed(args)...)
}

func (s scopedLogger) Infof(format string, args ...any) {
	s.base.Infof("[%s] "+format, s.prefixed(args)...)
}

func (s scopedLogger) Warnf(format string, args ...any) {
	s.base.Warnf("[%s] "+format, s.prefixed(args)...)
}

func (s scopedLogger) Errorf(format string, args ...any) {
	s.base.Errorf("[%s] "+format, s.prefixed(args)...)
}

func (s scopedLogger) prefixed(args []any) []any {
	return append([]any{s.scope}, args...)
}
