// Package common holds helpers shared by several services.
//
// It provides the BaggageDesk gRPC client with per-call timeouts and the
// detection of the desk operator (username@hostname) sent with every call.
//
//nolint:revive,nolintlint // Package name "common" is intentional for shared helpers.
package common
