package apperr

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/protoadapt"
)

// ToStatus converts err into a gRPC status. Validation problems travel as
// BadRequest field violations and not-found resources as ResourceInfo so
// FromStatus can rebuild the typed error on the other side.
func ToStatus(err error) *status.Status {
	if err == nil {
		return status.New(codes.OK, "")
	}

	switch KindOf(err) {
	case KindValidation:
		st := status.New(codes.InvalidArgument, PublicMessage(err))
		br := &errdetails.BadRequest{}
		for _, p := range Problems(err) {
			br.FieldViolations = append(br.FieldViolations, &errdetails.BadRequest_FieldViolation{
				Description: p,
			})
		}
		return withDetails(st, br)
	case KindNotFound:
		st := status.New(codes.NotFound, PublicMessage(err))
		var nf *NotFoundError
		if errors.As(err, &nf) {
			return withDetails(st, &errdetails.ResourceInfo{ResourceType: nf.Resource})
		}
		return st
	case KindForbidden:
		return status.New(codes.PermissionDenied, PublicMessage(err))
	case KindConflict:
		return status.New(codes.FailedPrecondition, PublicMessage(err))
	case KindUnauthenticated:
		return status.New(codes.Unauthenticated, PublicMessage(err))
	}

	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return status.FromContextError(err)
	}
	return status.New(codes.Internal, PublicMessage(err))
}

// FromStatus rebuilds a typed error from a gRPC error returned by a client
// call. Errors that carry no status are classified as internal.
func FromStatus(err error) error {
	if err == nil {
		return nil
	}

	st, ok := status.FromError(err)
	if !ok {
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}

	switch st.Code() {
	case codes.OK:
		return nil
	case codes.InvalidArgument:
		var problems []string
		for _, d := range st.Details() {
			if br, ok := d.(*errdetails.BadRequest); ok {
				for _, v := range br.GetFieldViolations() {
					problems = append(problems, v.GetDescription())
				}
			}
		}
		if len(problems) == 0 {
			problems = []string{st.Message()}
		}
		return &ValidationError{Problems: problems}
	case codes.NotFound:
		resource := "resource"
		for _, d := range st.Details() {
			if ri, ok := d.(*errdetails.ResourceInfo); ok && ri.GetResourceType() != "" {
				resource = ri.GetResourceType()
			}
		}
		return &NotFoundError{Resource: resource}
	case codes.PermissionDenied:
		return &ForbiddenError{Reason: st.Message()}
	case codes.FailedPrecondition:
		return &ConflictError{Reason: st.Message()}
	case codes.Unauthenticated:
		return fmt.Errorf("%w: %s", ErrUnauthenticated, st.Message())
	default:
		return fmt.Errorf("%w: %s: %s", ErrInternal, st.Code(), st.Message())
	}
}

func withDetails(st *status.Status, detail protoadapt.MessageV1) *status.Status {
	ds, err := st.WithDetails(detail)
	if err != nil {
		return st
	}
	return ds
}
