package baggage

import (
	"context"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"

	domain "github.com/oshokin/baggage-desk/internal/domain/baggage"
	"github.com/oshokin/baggage-desk/internal/wire"
)

// Service abstracts the registry operations the transport depends on.
type Service interface {
	RegisterPassenger(ctx context.Context, id, name, flightNo, contact string) (*domain.Passenger, error)
	LocatePassenger(ctx context.Context, id string) (*domain.Passenger, error)
	UpdateContact(ctx context.Context, id, contact string) (*domain.Passenger, error)
	RegisterBag(ctx context.Context, tag string, weight float64, ownerID string) (*domain.Bag, error)
	UpdateMovement(ctx context.Context, tag string, cp domain.Checkpoint) (*domain.Bag, error)
	RecordCheckpoint(ctx context.Context, tag, checkpointID, checkpointName string) (*domain.Bag, error)
	SetBagStatus(ctx context.Context, tag string, status domain.BagStatus) (*domain.Bag, error)
	LocateBag(ctx context.Context, tag string) (*domain.Bag, error)
	ListBags(ctx context.Context) []*domain.Bag
	RaiseClaim(
		ctx context.Context,
		kind domain.ClaimKind,
		passengerID, bagTag string,
		amount float64,
	) (*domain.Claim, error)
	LocateClaim(ctx context.Context, id string) (*domain.Claim, error)
	ListClaims(ctx context.Context) []*domain.Claim
	PassengerClaims(ctx context.Context, passengerID string) ([]*domain.Claim, error)
	ProcessClaims(ctx context.Context) ([]domain.Settlement, error)
	Journal(ctx context.Context) []domain.Event
	Snapshot(ctx context.Context) *domain.Snapshot
}

// Server implements the BaggageDesk gRPC API.
type Server struct {
	// service provides the registry operations.
	service Service
}

// NewServer wires the service into a gRPC handler.
func NewServer(service Service) *Server {
	return &Server{
		service: service,
	}
}

// RegisterPassenger registers a passenger and returns it.
func (s *Server) RegisterPassenger(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	req, err := decode[RegisterPassengerRequest](in)
	if err != nil {
		return nil, err
	}

	if req.ID == "" {
		return nil, status.Error(codes.InvalidArgument, "passenger id is required")
	}

	p, err := s.service.RegisterPassenger(ctx, req.ID, req.Name, req.FlightNo, req.Contact)
	if err != nil {
		return nil, toStatus(err)
	}

	return encode(p)
}

// LocatePassenger returns a passenger by id.
func (s *Server) LocatePassenger(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	req, err := decode[LocatePassengerRequest](in)
	if err != nil {
		return nil, err
	}

	p, err := s.service.LocatePassenger(ctx, req.PassengerID)
	if err != nil {
		return nil, toStatus(err)
	}

	return encode(p)
}

// UpdateContact changes a passenger's contact.
func (s *Server) UpdateContact(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	req, err := decode[UpdateContactRequest](in)
	if err != nil {
		return nil, err
	}

	p, err := s.service.UpdateContact(ctx, req.PassengerID, req.Contact)
	if err != nil {
		return nil, toStatus(err)
	}

	return encode(p)
}

// RegisterBag registers a bag and returns it.
func (s *Server) RegisterBag(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	req, err := decode[RegisterBagRequest](in)
	if err != nil {
		return nil, err
	}

	b, err := s.service.RegisterBag(ctx, req.Tag, req.Weight, req.OwnerID)
	if err != nil {
		return nil, toStatus(err)
	}

	return encode(b)
}

// UpdateMovement moves a bag through a checkpoint and returns the bag.
func (s *Server) UpdateMovement(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	req, err := decode[UpdateMovementRequest](in)
	if err != nil {
		return nil, err
	}

	var b *domain.Bag

	if req.Timestamp.IsZero() {
		b, err = s.service.RecordCheckpoint(ctx, req.Tag, req.CheckpointID, req.CheckpointName)
	} else {
		cp := domain.NewCheckpoint(req.CheckpointID, req.CheckpointName, req.Timestamp.UTC())
		b, err = s.service.UpdateMovement(ctx, req.Tag, cp)
	}

	if err != nil {
		return nil, toStatus(err)
	}

	return encode(b)
}

// SetBagStatus overwrites a bag's status and returns the bag.
func (s *Server) SetBagStatus(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	req, err := decode[SetBagStatusRequest](in)
	if err != nil {
		return nil, err
	}

	bagStatus, err := domain.ParseBagStatus(req.Status)
	if err != nil {
		return nil, toStatus(err)
	}

	b, err := s.service.SetBagStatus(ctx, req.Tag, bagStatus)
	if err != nil {
		return nil, toStatus(err)
	}

	return encode(b)
}

// LocateBag returns a bag by tag.
func (s *Server) LocateBag(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	req, err := decode[LocateBagRequest](in)
	if err != nil {
		return nil, err
	}

	b, err := s.service.LocateBag(ctx, req.Tag)
	if err != nil {
		return nil, toStatus(err)
	}

	return encode(b)
}

// ListBags returns every bag ordered by tag.
func (s *Server) ListBags(ctx context.Context, _ *structpb.Struct) (*structpb.Struct, error) {
	return encode(&ListBagsResponse{Bags: s.service.ListBags(ctx)})
}

// RaiseClaim raises a loss or damage claim and returns it.
func (s *Server) RaiseClaim(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	req, err := decode[RaiseClaimRequest](in)
	if err != nil {
		return nil, err
	}

	kind, err := domain.ParseClaimKind(req.Kind)
	if err != nil {
		return nil, toStatus(err)
	}

	c, err := s.service.RaiseClaim(ctx, kind, req.PassengerID, req.BagTag, req.Amount)
	if err != nil {
		return nil, toStatus(err)
	}

	return encode(c)
}

// LocateClaim returns a claim by id.
func (s *Server) LocateClaim(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	req, err := decode[LocateClaimRequest](in)
	if err != nil {
		return nil, err
	}

	c, err := s.service.LocateClaim(ctx, req.ClaimID)
	if err != nil {
		return nil, toStatus(err)
	}

	return encode(c)
}

// ListClaims returns all claims, or the claims of one passenger, in raise order.
func (s *Server) ListClaims(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	req, err := decode[ListClaimsRequest](in)
	if err != nil {
		return nil, err
	}

	if req.PassengerID == "" {
		return encode(&ListClaimsResponse{Claims: s.service.ListClaims(ctx)})
	}

	claims, err := s.service.PassengerClaims(ctx, req.PassengerID)
	if err != nil {
		return nil, toStatus(err)
	}

	return encode(&ListClaimsResponse{Claims: claims})
}

// ProcessClaims settles every open claim.
func (s *Server) ProcessClaims(ctx context.Context, _ *structpb.Struct) (*structpb.Struct, error) {
	settlements, err := s.service.ProcessClaims(ctx)
	if err != nil {
		return nil, toStatus(err)
	}

	return encode(&ProcessClaimsResponse{Settlements: settlements})
}

// Journal returns the registry events.
func (s *Server) Journal(ctx context.Context, _ *structpb.Struct) (*structpb.Struct, error) {
	return encode(&JournalResponse{Events: s.service.Journal(ctx)})
}

// Snapshot returns a copy of the whole registry.
func (s *Server) Snapshot(ctx context.Context, _ *structpb.Struct) (*structpb.Struct, error) {
	return encode(s.service.Snapshot(ctx))
}

// decode parses a request message, reporting malformed input as InvalidArgument.
func decode[T any](in *structpb.Struct) (*T, error) {
	req := new(T)

	if in == nil {
		return req, nil
	}

	if err := wire.Decode(in, req); err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	return req, nil
}

// encode converts a response value, reporting failures as Internal.
func encode(v any) (*structpb.Struct, error) {
	msg, err := wire.Encode(v)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}

	return msg, nil
}

// Ensure Server satisfies the service API.
var _ BaggageDeskServer = (*Server)(nil)
