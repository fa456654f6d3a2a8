// Package registry implements the baggage registry: the aggregate root that
// owns passengers, bags and claims, assigns claim ids and settles claims.
//
// Every method takes the registry lock, so a single Registry can be shared by
// concurrent gRPC handlers. Mutations append to an in-memory event journal and
// narrate through the context logger.
package registry
