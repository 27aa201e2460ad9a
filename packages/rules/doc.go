// Package rules parses the textual rule form used by the CLI and runs
// each rule as one confirmation chain.
package rules
