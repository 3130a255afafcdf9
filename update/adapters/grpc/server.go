package grpc

import (
	"context"
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"

	updatepb "stemdex.dev/search/proto/update"
	"stemdex.dev/search/update/core"
)

type Updater interface {
	Update(ctx context.Context) error
	Stats(ctx context.Context) (core.ServiceStats, error)
	Status(ctx context.Context) core.ServiceStatus
	Drop(ctx context.Context) error
}

type Server struct {
	updatepb.UnimplementedUpdateServer
	service Updater
}

func NewServer(service Updater) *Server {
	return &Server{service: service}
}

func (s *Server) Ping(_ context.Context, _ *emptypb.Empty) (*emptypb.Empty, error) {
	return &emptypb.Empty{}, nil
}

func (s *Server) Status(ctx context.Context, _ *emptypb.Empty) (*updatepb.StatusReply, error) {
	var st updatepb.Status
	switch s.service.Status(ctx) {
	case core.StatusIdle:
		st = updatepb.Status_STATUS_IDLE
	case core.StatusRunning:
		st = updatepb.Status_STATUS_RUNNING
	default:
		st = updatepb.Status_STATUS_UNSPECIFIED
	}
	return &updatepb.StatusReply{Status: st}, nil
}

func (s *Server) Stats(ctx context.Context, _ *emptypb.Empty) (*updatepb.StatsReply, error) {
	stats, err := s.service.Stats(ctx)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	return &updatepb.StatsReply{
		WordsTotal:  int64(stats.WordsTotal),
		WordsUnique: int64(stats.WordsUnique),
		DocsTotal:   int64(stats.DocsTotal),
		DocsFetched: int64(stats.DocsFetched),
	}, nil
}

func (s *Server) Update(ctx context.Context, _ *emptypb.Empty) (*emptypb.Empty, error) {
	if err := s.service.Update(ctx); err != nil {
		if errors.Is(err, core.ErrAlreadyExists) {
			return nil, status.Error(codes.AlreadyExists, err.Error())
		}
		return nil, status.Error(codes.Internal, err.Error())
	}
	return &emptypb.Empty{}, nil
}

func (s *Server) Drop(ctx context.Context, _ *emptypb.Empty) (*emptypb.Empty, error) {
	if err := s.service.Drop(ctx); err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	return &emptypb.Empty{}, nil
}
