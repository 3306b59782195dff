// Package cli parses the roman command line into Options and maps usage
// mistakes to an ExitError with exit code 2.
package cli
