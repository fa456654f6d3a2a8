// Package report stores registry snapshots as JSON reports on disk.
//
// Reports are written through protobuf JSON (protojson) so they match the
// field names served by the BaggageDesk gRPC API.
package report
