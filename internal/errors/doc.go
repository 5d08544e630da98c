// Package errors provides structured, actionable error messages for the
// command line.
//
// Each error has a stable code (e.g., "E100") that maps to a short
// message, a detailed explanation, and a fix suggestion. The serve
// command prints them with Format, which renders something like:
//
//	ERROR E100: Configuration file not found
//
//	  No simplistic.json was found in the project directory.
//
//	  Hint: Create a simplistic.json, or run with flags instead of a
//	  config file.
//
// Errors are organized into categories:
//   - config: configuration file problems
//   - server: listen and shutdown failures
//   - demo: demo registration and lookup
//   - runtime: reactive cell misuse
//   - cli: everything else surfaced by a command
package errors
