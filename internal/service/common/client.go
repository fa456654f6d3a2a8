//nolint:revive,nolintlint // Package name "common" is intentional for shared helpers.
package common

import (
	"context"
	"errors"
	"fmt"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/protobuf/types/known/structpb"

	api "github.com/oshokin/baggage-desk/internal/api/grpc/baggage"
	"github.com/oshokin/baggage-desk/internal/config"
	domain "github.com/oshokin/baggage-desk/internal/domain/baggage"
	"github.com/oshokin/baggage-desk/internal/wire"
)

// Client wraps the BaggageDesk gRPC service with typed helpers.
type Client struct {
	// conn is the underlying gRPC connection.
	conn *grpc.ClientConn
	// callTimeout is the default timeout for individual RPC calls.
	callTimeout time.Duration
	// operator is sent as metadata with every call when set.
	operator string
	// dialOptions are appended to the default dial options.
	dialOptions []grpc.DialOption
}

// Option configures client behaviour.
type Option func(*Client)

// WithCallTimeout sets a default timeout for service calls.
func WithCallTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.callTimeout = timeout
		}
	}
}

// WithOperator tags every call with the desk operator.
func WithOperator(operator string) Option {
	return func(c *Client) {
		c.operator = operator
	}
}

// WithDialOptions appends gRPC dial options, e.g. a custom dialer in tests.
func WithDialOptions(opts ...grpc.DialOption) Option {
	return func(c *Client) {
		c.dialOptions = append(c.dialOptions, opts...)
	}
}

// errAddressRequired is returned when the server address is missing.
var errAddressRequired = errors.New("address must be provided")

// Dial creates a client for the registry server.
// Transport is insecure; run it on a trusted network or behind a TLS proxy.
func Dial(_ context.Context, address string, opts ...Option) (*Client, error) {
	if address == "" {
		return nil, errAddressRequired
	}

	client := &Client{
		callTimeout: config.DefaultTimeout,
	}

	for _, opt := range opts {
		opt(client)
	}

	dialOptions := append(
		[]grpc.DialOption{grpc.WithTransportCredentials(insecure.NewCredentials())},
		client.dialOptions...,
	)

	conn, err := grpc.NewClient(address, dialOptions...)
	if err != nil {
		return nil, fmt.Errorf("dial baggage server: %w", err)
	}

	client.conn = conn

	return client, nil
}

// Close releases the underlying gRPC connection.
func (c *Client) Close() error {
	if c == nil || c.conn == nil {
		return nil
	}

	return c.conn.Close()
}

// RegisterPassenger registers a passenger.
func (c *Client) RegisterPassenger(
	ctx context.Context,
	req *api.RegisterPassengerRequest,
) (*domain.Passenger, error) {
	return invoke[domain.Passenger](ctx, c, api.MethodRegisterPassenger, req)
}

// LocatePassenger returns a passenger by id.
func (c *Client) LocatePassenger(ctx context.Context, passengerID string) (*domain.Passenger, error) {
	return invoke[domain.Passenger](ctx, c, api.MethodLocatePassenger, &api.LocatePassengerRequest{
		PassengerID: passengerID,
	})
}

// UpdateContact changes a passenger's contact.
func (c *Client) UpdateContact(ctx context.Context, passengerID, contact string) (*domain.Passenger, error) {
	return invoke[domain.Passenger](ctx, c, api.MethodUpdateContact, &api.UpdateContactRequest{
		PassengerID: passengerID,
		Contact:     contact,
	})
}

// RegisterBag registers a bag.
func (c *Client) RegisterBag(ctx context.Context, req *api.RegisterBagRequest) (*domain.Bag, error) {
	return invoke[domain.Bag](ctx, c, api.MethodRegisterBag, req)
}

// UpdateMovement moves a bag through a checkpoint.
func (c *Client) UpdateMovement(ctx context.Context, req *api.UpdateMovementRequest) (*domain.Bag, error) {
	return invoke[domain.Bag](ctx, c, api.MethodUpdateMovement, req)
}

// SetBagStatus overwrites a bag's status.
func (c *Client) SetBagStatus(ctx context.Context, tag, status string) (*domain.Bag, error) {
	return invoke[domain.Bag](ctx, c, api.MethodSetBagStatus, &api.SetBagStatusRequest{
		Tag:    tag,
		Status: status,
	})
}

// LocateBag returns a bag by tag. Unknown tags yield domain.ErrNotFound.
func (c *Client) LocateBag(ctx context.Context, tag string) (*domain.Bag, error) {
	return invoke[domain.Bag](ctx, c, api.MethodLocateBag, &api.LocateBagRequest{Tag: tag})
}

// ListBags returns every bag ordered by tag.
func (c *Client) ListBags(ctx context.Context) ([]*domain.Bag, error) {
	resp, err := invoke[api.ListBagsResponse](ctx, c, api.MethodListBags, struct{}{})
	if err != nil {
		return nil, err
	}

	return resp.Bags, nil
}

// RaiseClaim raises a claim.
func (c *Client) RaiseClaim(ctx context.Context, req *api.RaiseClaimRequest) (*domain.Claim, error) {
	return invoke[domain.Claim](ctx, c, api.MethodRaiseClaim, req)
}

// LocateClaim returns a claim by id.
func (c *Client) LocateClaim(ctx context.Context, claimID string) (*domain.Claim, error) {
	return invoke[domain.Claim](ctx, c, api.MethodLocateClaim, &api.LocateClaimRequest{ClaimID: claimID})
}

// ListClaims returns all claims, or only those of passengerID when it is set.
func (c *Client) ListClaims(ctx context.Context, passengerID string) ([]*domain.Claim, error) {
	resp, err := invoke[api.ListClaimsResponse](ctx, c, api.MethodListClaims, &api.ListClaimsRequest{
		PassengerID: passengerID,
	})
	if err != nil {
		return nil, err
	}

	return resp.Claims, nil
}

// ProcessClaims settles every open claim and returns the settlements.
func (c *Client) ProcessClaims(ctx context.Context) ([]domain.Settlement, error) {
	resp, err := invoke[api.ProcessClaimsResponse](ctx, c, api.MethodProcessClaims, struct{}{})
	if err != nil {
		return nil, err
	}

	return resp.Settlements, nil
}

// Journal returns the registry events.
func (c *Client) Journal(ctx context.Context) ([]domain.Event, error) {
	resp, err := invoke[api.JournalResponse](ctx, c, api.MethodJournal, struct{}{})
	if err != nil {
		return nil, err
	}

	return resp.Events, nil
}

// Snapshot returns a copy of the whole registry.
func (c *Client) Snapshot(ctx context.Context) (*domain.Snapshot, error) {
	return invoke[domain.Snapshot](ctx, c, api.MethodSnapshot, struct{}{})
}

// invoke encodes req, calls the method and decodes the response into T.
func invoke[T any](ctx context.Context, c *Client, method string, req any) (*T, error) {
	in, err := wire.Encode(req)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}

	callCtx, cancel := c.callContext(ctx)
	defer cancel()

	out := new(structpb.Struct)
	if err = c.conn.Invoke(callCtx, api.FullMethod(method), in, out); err != nil {
		return nil, fmt.Errorf("%s: %w", method, api.FromStatus(err))
	}

	result := new(T)
	if err = wire.Decode(out, result); err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}

	return result, nil
}

// callContext returns a context with the call timeout and the operator metadata.
func (c *Client) callContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.operator != "" {
		ctx = metadata.AppendToOutgoingContext(ctx, OperatorMetadataKey, c.operator)
	}

	if c.callTimeout <= 0 {
		return context.WithCancel(ctx)
	}

	return context.WithTimeout(ctx, c.callTimeout)
}
