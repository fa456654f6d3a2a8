// Package desk runs single baggage-desk client actions against the registry
// server: it loads settings, dials the server, runs the action and prints the
// result for the operator.
package desk
