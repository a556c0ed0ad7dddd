package server

import (
	"fmt"
	"net"

	"github.com/MKhiriev/agent-portal/internal/config"
	myGRPC "github.com/MKhiriev/agent-portal/internal/handler/grpc"
	"github.com/MKhiriev/agent-portal/internal/logger"

	"google.golang.org/grpc"
)

type grpcServer struct {
	handler *myGRPC.Handler

	server   *grpc.Server
	listener net.Listener

	logger *logger.Logger
}

// newGRPCServer binds the gRPC address right away so a busy port fails
// startup instead of a background goroutine.
func newGRPCServer(handler *myGRPC.Handler, cfg config.Server, logger *logger.Logger) (*grpcServer, error) {
	listener, err := net.Listen("tcp", cfg.GRPCAddress)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrListeningGRPC, cfg.GRPCAddress, err)
	}

	server := grpc.NewServer()
	handler.Register(server)

	return &grpcServer{
		handler:  handler,
		server:   server,
		listener: listener,
		logger:   logger,
	}, nil
}

func (g *grpcServer) RunServer() {
	g.handler.MarkServing()

	if err := g.server.Serve(g.listener); err != nil {
		g.logger.Err(err).Str("func", "grpcServer.RunServer").Msg("gRPC server Serve")
	}
}

func (g *grpcServer) Shutdown() {
	g.logger.Info().Msg("gRPC server Shutdown")
	g.handler.Shutdown()
	g.server.GracefulStop()
}
