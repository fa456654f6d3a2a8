// Package baggage exposes the baggage registry over gRPC.
//
// The service is declared by hand (see ServiceDesc) and exchanges
// google.protobuf.Struct messages whose fields follow the JSON shape of the
// request and domain types, so no generated stubs are needed.
package baggage
