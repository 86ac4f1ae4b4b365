package config

// Color constants for component log prefixes
const (
	ColorGreen    = "\033[32m"
	ColorCyan     = "\033[36m"
	ColorPurple   = "\033[35m"
	LogColorReset = "\033[0m"
)
