package grpc

import (
	"context"
	"net"

	"github.com/dmitrijs2005/memoryvault/internal/logging"
	pb "github.com/dmitrijs2005/memoryvault/internal/proto"
	"github.com/dmitrijs2005/memoryvault/internal/server/intake"
	"github.com/dmitrijs2005/memoryvault/internal/server/models"
	"github.com/dmitrijs2005/memoryvault/internal/server/services"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// ObjectService is the part of services.ObjectService the transport uses.
type ObjectService interface {
	OpenVault(ctx context.Context, ownerID string) (*models.Vault, error)
	Store(ctx context.Context, ownerID, kind string, upload *intake.ValidatedUpload) (*services.StoreResult, error)
	AccessRead(ctx context.Context, ownerID, key string) (*services.AccessResult, error)
	Delete(ctx context.Context, ownerID, key string) (*services.DeleteResult, error)
	List(ctx context.Context, ownerID string) ([]*services.AccessResult, error)
}

var _ ObjectService = (*services.ObjectService)(nil)

// Room for the other request fields on top of the largest accepted payload, so
// an oversize upload reaches the intake gate and gets its specific error.
const msgOverhead = 1 << 20

type GRPCServer struct {
	pb.UnimplementedVaultServiceServer
	address   string
	objects   ObjectService
	gate      *intake.Gate
	logger    logging.Logger
	jwtSecret []byte
	health    *health.Server
}

func NewGRPCServer(a string, l logging.Logger, objects ObjectService, gate *intake.Gate, secretKey string) (*GRPCServer, error) {
	return &GRPCServer{
		address:   a,
		logger:    l.With("module", "grpc_server"),
		objects:   objects,
		gate:      gate,
		jwtSecret: []byte(secretKey),
		health:    health.NewServer(),
	}, nil
}

// newServer builds the grpc.Server with interceptors, the vault service and
// the health service registered.
func (s *GRPCServer) newServer() *grpc.Server {
	maxMsg := int(s.gate.MaxSize()) + msgOverhead

	srv := grpc.NewServer(
		grpc.ChainUnaryInterceptor(s.requestLogInterceptor, s.accessTokenInterceptor),
		grpc.MaxRecvMsgSize(maxMsg),
	)
	pb.RegisterVaultServiceServer(srv, s)

	healthpb.RegisterHealthServer(srv, s.health)
	s.health.SetServingStatus(pb.VaultService_ServiceDesc.ServiceName, healthpb.HealthCheckResponse_SERVING)
	s.health.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	return srv
}

// Run serves on the configured address until ctx is cancelled.
func (s *GRPCServer) Run(ctx context.Context) error {
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}
	return s.serve(ctx, listen)
}

func (s *GRPCServer) serve(ctx context.Context, listen net.Listener) error {
	srv := s.newServer()

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		s.health.Shutdown()
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", listen.Addr().String())

	if err := srv.Serve(listen); err != nil {
		return err
	}
	return nil
}
