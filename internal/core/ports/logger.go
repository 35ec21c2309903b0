package ports

// Logger reports progress and problems while package definitions are inspected.
// Command output is written separately; the logger only carries diagnostics.
//
//go:generate mockgen -source=logger.go -destination=mocks/mock_logger.go -package=mocks
type Logger interface {
	// Info records routine progress.
	Info(msg string)
	// Warn records a condition the user should know about, such as a skipped livecheck.
	Warn(msg string)
	// Error reports a failed operation together with its cause chain.
	Error(err error)
}
