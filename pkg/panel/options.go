package panel

// Option configures a Session at construction time.
type Option func(*Session)

// WithObserver attaches a diagnostics observer. Without one, the session
// produces no output of its own.
func WithObserver(observer Observer) Option {
	return func(s *Session) {
		s.observer = observer
	}
}

// WithLabeler overrides how property names become control labels.
func WithLabeler(labeler func(string) string) Option {
	return func(s *Session) {
		if labeler != nil {
			s.labeler = labeler
		}
	}
}
