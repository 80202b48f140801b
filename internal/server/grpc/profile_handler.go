package grpc

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/esgportal/internal/autherr"
	"github.com/dmitrijs2005/esgportal/internal/common"
	pb "github.com/dmitrijs2005/esgportal/internal/proto"
	"github.com/dmitrijs2005/esgportal/internal/rpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
)

type profileHandler struct {
	pb.UnimplementedProfileServiceServer
	s *GRPCServer
}

// storeStatus maps store errors onto the codes the client store expects.
func (h *profileHandler) storeStatus(ctx context.Context, method string, err error) error {
	switch {
	case errors.Is(err, common.ErrorNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, common.ErrorAlreadyExists):
		return status.Error(codes.AlreadyExists, err.Error())
	case errors.Is(err, common.ErrorValidation):
		return status.Error(codes.InvalidArgument, err.Error())
	}
	if autherr.CodeOf(err) == autherr.CodeUnknown {
		h.s.logger.Error(ctx, "request failed", "method", method, "error", err)
	}
	return autherr.ToStatus(err)
}

func (h *profileHandler) Get(ctx context.Context, req *pb.UIDRequest) (*pb.RecordResponse, error) {
	p, err := principal(ctx)
	if err != nil {
		return nil, err
	}
	rec, err := h.s.profiles.Get(ctx, p, req.GetUid())
	if err != nil {
		return nil, h.storeStatus(ctx, "Get", err)
	}
	return &pb.RecordResponse{Record: rpc.FromRecord(rec)}, nil
}

func (h *profileHandler) Create(ctx context.Context, req *pb.RecordRequest) (*pb.RecordResponse, error) {
	p, err := principal(ctx)
	if err != nil {
		return nil, err
	}
	if req.GetRecord() == nil {
		return nil, autherr.ToStatus(autherr.New(autherr.CodeInvalidArgument, "record is required"))
	}
	rec, err := h.s.profiles.Create(ctx, p, rpc.ToRecord(req.GetRecord()))
	if err != nil {
		return nil, h.storeStatus(ctx, "Create", err)
	}
	return &pb.RecordResponse{Record: rpc.FromRecord(rec)}, nil
}

func (h *profileHandler) Update(ctx context.Context, req *pb.PatchRequest) (*pb.RecordResponse, error) {
	p, err := principal(ctx)
	if err != nil {
		return nil, err
	}
	rec, err := h.s.profiles.Update(ctx, p, req.GetUid(), rpc.ToPatch(req.GetPatch()))
	if err != nil {
		return nil, h.storeStatus(ctx, "Update", err)
	}
	return &pb.RecordResponse{Record: rpc.FromRecord(rec)}, nil
}

func (h *profileHandler) TouchLastLogin(ctx context.Context, req *pb.UIDRequest) (*emptypb.Empty, error) {
	p, err := principal(ctx)
	if err != nil {
		return nil, err
	}
	if err := h.s.profiles.TouchLastLogin(ctx, p, req.GetUid()); err != nil {
		return nil, h.storeStatus(ctx, "TouchLastLogin", err)
	}
	return &emptypb.Empty{}, nil
}

func (h *profileHandler) Delete(ctx context.Context, req *pb.UIDRequest) (*emptypb.Empty, error) {
	p, err := principal(ctx)
	if err != nil {
		return nil, err
	}
	if err := h.s.profiles.Delete(ctx, p, req.GetUid()); err != nil {
		return nil, h.storeStatus(ctx, "Delete", err)
	}
	return &emptypb.Empty{}, nil
}

var _ pb.ProfileServiceServer = (*profileHandler)(nil)
