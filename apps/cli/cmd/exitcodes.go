package cmd

// Exit codes for envconfirm CLI
const (
	// ExitSuccess indicates all rules held
	ExitSuccess = 0

	// ExitCheckFailure indicates one or more rules failed
	ExitCheckFailure = 1

	// ExitRuleError indicates a rule could not be parsed
	ExitRuleError = 2

	// ExitConfigError indicates a configuration error
	ExitConfigError = 3

	// ExitUsageError indicates invalid CLI usage
	ExitUsageError = 64
)
