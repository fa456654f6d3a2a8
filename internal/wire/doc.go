// Package wire converts Go values to and from google.protobuf.Struct.
//
// Values go through their JSON form, so the json tags of domain types define
// the field names seen by gRPC clients and written to report files.
package wire
