package baggage

import (
	"errors"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	domain "github.com/oshokin/baggage-desk/internal/domain/baggage"
)

// ErrorDomain is the ErrorInfo domain of registry failures.
const ErrorDomain = "baggage.v1"

// errorReason ties a registry sentinel to its gRPC code and ErrorInfo reason.
type errorReason struct {
	reason string
	err    error
	code   codes.Code
}

// errorReasons is ordered from the most specific sentinel to the most general.
var errorReasons = []errorReason{
	{reason: "INVALID_AMOUNT", err: domain.ErrInvalidAmount, code: codes.InvalidArgument},
	{reason: "INVALID_WEIGHT", err: domain.ErrInvalidWeight, code: codes.InvalidArgument},
	{reason: "UNKNOWN_CLAIM_KIND", err: domain.ErrUnknownClaimKind, code: codes.InvalidArgument},
	{reason: "UNKNOWN_BAG_STATUS", err: domain.ErrUnknownBagStatus, code: codes.InvalidArgument},
	{reason: "VALIDATION", err: domain.ErrValidation, code: codes.InvalidArgument},
	{reason: "NOT_FOUND", err: domain.ErrNotFound, code: codes.NotFound},
	{reason: "ALREADY_EXISTS", err: domain.ErrAlreadyExists, code: codes.AlreadyExists},
	{reason: "CLAIM_NOT_OPEN", err: domain.ErrClaimNotOpen, code: codes.FailedPrecondition},
}

// toStatus maps registry errors to gRPC status errors carrying an ErrorInfo
// detail with the matched reason.
func toStatus(err error) error {
	if err == nil {
		return nil
	}

	for _, r := range errorReasons {
		if !errors.Is(err, r.err) {
			continue
		}

		st := status.New(r.code, err.Error())

		detailed, detailErr := st.WithDetails(&errdetails.ErrorInfo{
			Reason: r.reason,
			Domain: ErrorDomain,
		})
		if detailErr != nil {
			return st.Err()
		}

		return detailed.Err()
	}

	return status.Error(codes.Internal, "internal registry error")
}

// FromStatus maps gRPC status errors back to the registry sentinel errors,
// so clients can use errors.Is with the domain errors. The ErrorInfo reason
// picks the exact sentinel; without it the status code picks the general one.
func FromStatus(err error) error {
	if err == nil {
		return nil
	}

	st, ok := status.FromError(err)
	if !ok {
		return err
	}

	if sentinel := sentinelFromDetails(st); sentinel != nil {
		return errors.Join(sentinel, err)
	}

	var sentinel error

	switch st.Code() {
	case codes.NotFound:
		sentinel = domain.ErrNotFound
	case codes.AlreadyExists:
		sentinel = domain.ErrAlreadyExists
	case codes.InvalidArgument:
		sentinel = domain.ErrValidation
	case codes.FailedPrecondition:
		sentinel = domain.ErrClaimNotOpen
	default:
		return err
	}

	return errors.Join(sentinel, err)
}

// sentinelFromDetails returns the sentinel named by a registry ErrorInfo detail.
func sentinelFromDetails(st *status.Status) error {
	for _, detail := range st.Details() {
		info, ok := detail.(*errdetails.ErrorInfo)
		if !ok || info.GetDomain() != ErrorDomain {
			continue
		}

		for _, r := range errorReasons {
			if r.reason == info.GetReason() {
				return r.err
			}
		}
	}

	return nil
}
