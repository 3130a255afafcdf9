package grpc

import (
	"context"
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"

	searchpb "stemdex.dev/search/proto/search"
	"stemdex.dev/search/search/core"
)

type Server struct {
	searchpb.UnimplementedSearchServer
	service core.Searcher
}

func NewServer(service core.Searcher) *Server {
	return &Server{service: service}
}

func (s *Server) Ping(_ context.Context, _ *emptypb.Empty) (*emptypb.Empty, error) {
	return &emptypb.Empty{}, nil
}

func (s *Server) Search(ctx context.Context, req *searchpb.SearchRequest) (*searchpb.SearchReply, error) {

	docs, err := s.service.Search(ctx, req.GetPhrase(), int(req.GetLimit()))
	if err != nil {
		if errors.Is(err, core.ErrBadArguments) {
			return nil, status.Error(codes.InvalidArgument, err.Error())
		}
		return nil, status.Error(codes.Internal, err.Error())
	}

	return makeReply(docs), nil
}

func (s *Server) IndexSearch(ctx context.Context, req *searchpb.SearchRequest) (*searchpb.SearchReply, error) {

	docs, err := s.service.IndexSearch(ctx, req.GetPhrase(), int(req.GetLimit()))
	if err != nil {
		if errors.Is(err, core.ErrBadArguments) {
			return nil, status.Error(codes.InvalidArgument, err.Error())
		}
		return nil, status.Error(codes.Internal, err.Error())
	}

	return makeReply(docs), nil
}

func makeReply(docs []core.Doc) *searchpb.SearchReply {
	resp := &searchpb.SearchReply{
		Docs: make([]*searchpb.Doc, 0, len(docs)),
	}
	for _, d := range docs {
		resp.Docs = append(resp.Docs, &searchpb.Doc{
			Id:  int64(d.ID),
			Url: d.URL,
		})
	}
	return resp
}
