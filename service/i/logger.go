package i

// Logger is the leveled logger used across services and infrastructure.
type Logger interface {
	// Info logs routine operational messages.
	Info(message string)

	// Warning logs recoverable anomalies.
	Warning(message string)

	// Error logs failures.
	Error(message string)
}
