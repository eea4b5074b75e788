package giturl

// Logger is the logging surface the parser reports its stages to.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

type nopLogger struct{}

func (nopLogger) Debug(string, ...any) {}
func (nopLogger) Info(string, ...any)  {}
func (nopLogger) Warn(string, ...any)  {}
func (nopLogger) Error(string, ...any) {}

// Option configures a Parser.
type Option func(*Parser)

// WithLogger sets the logger that receives debug output for each stage.
func WithLogger(logger Logger) Option {
	return func(p *Parser) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// WithStrictCheck toggles the final net/url conformance check. It is on by
// default.
func WithStrictCheck(enabled bool) Option {
	return func(p *Parser) {
		p.strict = enabled
	}
}
