package baggage

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

// ServiceName is the fully qualified gRPC service name.
const ServiceName = "baggage.v1.BaggageDesk"

// Method names of the BaggageDesk service.
const (
	MethodRegisterPassenger = "RegisterPassenger"
	MethodLocatePassenger   = "LocatePassenger"
	MethodUpdateContact     = "UpdateContact"
	MethodRegisterBag       = "RegisterBag"
	MethodUpdateMovement    = "UpdateMovement"
	MethodSetBagStatus      = "SetBagStatus"
	MethodLocateBag         = "LocateBag"
	MethodListBags          = "ListBags"
	MethodRaiseClaim        = "RaiseClaim"
	MethodLocateClaim       = "LocateClaim"
	MethodListClaims        = "ListClaims"
	MethodProcessClaims     = "ProcessClaims"
	MethodJournal           = "Journal"
	MethodSnapshot          = "Snapshot"
)

// FullMethod returns the invocation path of a method, e.g. "/baggage.v1.BaggageDesk/LocateBag".
func FullMethod(method string) string {
	return "/" + ServiceName + "/" + method
}

// BaggageDeskServer is the server API of the BaggageDesk service.
type BaggageDeskServer interface {
	RegisterPassenger(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error)
	LocatePassenger(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error)
	UpdateContact(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error)
	RegisterBag(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error)
	UpdateMovement(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error)
	SetBagStatus(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error)
	LocateBag(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error)
	ListBags(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error)
	RaiseClaim(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error)
	LocateClaim(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error)
	ListClaims(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error)
	ProcessClaims(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error)
	Journal(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error)
	Snapshot(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error)
}

// unaryCall is a BaggageDeskServer method expression.
type unaryCall func(BaggageDeskServer, context.Context, *structpb.Struct) (*structpb.Struct, error)

// ServiceDesc describes the BaggageDesk service for grpc.Server.RegisterService.
//
//nolint:gochecknoglobals // Service descriptors are package-level by convention.
var ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*BaggageDeskServer)(nil),
	Methods: []grpc.MethodDesc{
		unary(MethodRegisterPassenger, BaggageDeskServer.RegisterPassenger),
		unary(MethodLocatePassenger, BaggageDeskServer.LocatePassenger),
		unary(MethodUpdateContact, BaggageDeskServer.UpdateContact),
		unary(MethodRegisterBag, BaggageDeskServer.RegisterBag),
		unary(MethodUpdateMovement, BaggageDeskServer.UpdateMovement),
		unary(MethodSetBagStatus, BaggageDeskServer.SetBagStatus),
		unary(MethodLocateBag, BaggageDeskServer.LocateBag),
		unary(MethodListBags, BaggageDeskServer.ListBags),
		unary(MethodRaiseClaim, BaggageDeskServer.RaiseClaim),
		unary(MethodLocateClaim, BaggageDeskServer.LocateClaim),
		unary(MethodListClaims, BaggageDeskServer.ListClaims),
		unary(MethodProcessClaims, BaggageDeskServer.ProcessClaims),
		unary(MethodJournal, BaggageDeskServer.Journal),
		unary(MethodSnapshot, BaggageDeskServer.Snapshot),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "baggage/v1/baggage_desk.proto",
}

// RegisterBaggageDeskServer registers srv on the gRPC server.
func RegisterBaggageDeskServer(registrar grpc.ServiceRegistrar, srv BaggageDeskServer) {
	registrar.RegisterService(&ServiceDesc, srv)
}

// unary builds the method descriptor that decodes a Struct and runs call,
// honoring the server's unary interceptor.
func unary(method string, call unaryCall) grpc.MethodDesc {
	return grpc.MethodDesc{
		MethodName: method,
		Handler: func(
			srv any,
			ctx context.Context,
			dec func(any) error,
			interceptor grpc.UnaryServerInterceptor,
		) (any, error) {
			in := new(structpb.Struct)
			if err := dec(in); err != nil {
				return nil, err
			}

			server, _ := srv.(BaggageDeskServer)
			if interceptor == nil {
				return call(server, ctx, in)
			}

			info := &grpc.UnaryServerInfo{
				Server:     srv,
				FullMethod: FullMethod(method),
			}

			handler := func(ctx context.Context, req any) (any, error) {
				msg, _ := req.(*structpb.Struct)

				return call(server, ctx, msg)
			}

			return interceptor(ctx, in, info, handler)
		},
	}
}
