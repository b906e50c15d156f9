package grpc

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/memoryvault/internal/common"
	pb "github.com/dmitrijs2005/memoryvault/internal/proto"
	"github.com/dmitrijs2005/memoryvault/internal/server/intake"
	"github.com/dmitrijs2005/memoryvault/internal/server/models"
	"github.com/dmitrijs2005/memoryvault/internal/server/privacy"
	"github.com/dmitrijs2005/memoryvault/internal/server/services"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"
)

var _ pb.VaultServiceServer = (*GRPCServer)(nil)

func (s *GRPCServer) OpenVault(ctx context.Context, req *pb.OpenVaultRequest) (*pb.OpenVaultResponse, error) {
	userID, err := s.owner(ctx)
	if err != nil {
		return nil, err
	}

	v, err := s.objects.OpenVault(ctx, userID)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &pb.OpenVaultResponse{VaultId: v.ID, CreatedAt: timestamppb.New(v.CreatedAt)}, nil
}

func (s *GRPCServer) StoreObject(ctx context.Context, req *pb.StoreObjectRequest) (*pb.StoreObjectResponse, error) {
	userID, err := s.owner(ctx)
	if err != nil {
		return nil, err
	}

	level, err := privacy.ParseLevel(req.GetPrivacyLevel())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "privacy_level must be zero_knowledge or server_managed")
	}

	upload, err := s.gate.Validate(level, intake.Payload{
		Data:         req.GetData(),
		MimeType:     req.GetMimeType(),
		OriginalName: req.GetOriginalName(),
		IV:           req.GetEncryptionIv(),
		AuthTag:      req.GetEncryptionAuthTag(),
	})
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	res, err := s.objects.Store(ctx, userID, req.GetKind(), upload)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	meta := res.Descriptor.Meta()
	s.logger.Info(ctx, "Stored object", "key", meta.Key, "privacy_level", res.Descriptor.PrivacyLevel(), "size", meta.Size)

	return &pb.StoreObjectResponse{Object: toObject(&services.AccessResult{
		Key:          meta.Key,
		Kind:         meta.Kind,
		MimeType:     meta.MimeType,
		Size:         meta.Size,
		OriginalName: meta.OriginalName,
		CreatedAt:    meta.CreatedAt,
		PrivacyLevel: res.Descriptor.PrivacyLevel(),
		Handle:       res.Handle,
		Encryption:   encryptionOf(res),
	})}, nil
}

func (s *GRPCServer) AccessObject(ctx context.Context, req *pb.AccessObjectRequest) (*pb.AccessObjectResponse, error) {
	userID, err := s.owner(ctx)
	if err != nil {
		return nil, err
	}

	res, err := s.objects.AccessRead(ctx, userID, req.GetKey())
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &pb.AccessObjectResponse{Object: toObject(res)}, nil
}

func (s *GRPCServer) DeleteObject(ctx context.Context, req *pb.DeleteObjectRequest) (*pb.DeleteObjectResponse, error) {
	userID, err := s.owner(ctx)
	if err != nil {
		return nil, err
	}

	res, err := s.objects.Delete(ctx, userID, req.GetKey())
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &pb.DeleteObjectResponse{Key: res.Key}, nil
}

func (s *GRPCServer) ListObjects(ctx context.Context, req *pb.ListObjectsRequest) (*pb.ListObjectsResponse, error) {
	userID, err := s.owner(ctx)
	if err != nil {
		return nil, err
	}

	list, err := s.objects.List(ctx, userID)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	out := make([]*pb.Object, 0, len(list))
	for _, r := range list {
		out = append(out, toObject(r))
	}
	return &pb.ListObjectsResponse{Objects: out}, nil
}

func (s *GRPCServer) Ping(ctx context.Context, req *pb.PingRequest) (*pb.PingResponse, error) {
	return &pb.PingResponse{Status: "OK"}, nil
}

func (s *GRPCServer) owner(ctx context.Context) (string, error) {
	userID, ok := userIDFromContext(ctx)
	if !ok {
		return "", status.Error(codes.Unauthenticated, "unauthenticated")
	}
	return userID, nil
}

// toStatus maps service errors to gRPC status codes. Only intake messages are
// passed through; everything else gets a fixed message.
func (s *GRPCServer) toStatus(ctx context.Context, err error) error {
	var ie *intake.Error
	switch {
	case errors.As(err, &ie):
		return status.Error(codes.InvalidArgument, ie.Message)
	case errors.Is(err, common.ErrorNotFound):
		return status.Error(codes.NotFound, "not found")
	case errors.Is(err, common.ErrCapabilityDenied):
		return status.Error(codes.FailedPrecondition, "operation not available for this privacy level")
	case errors.Is(err, common.ErrorStoreFailed):
		s.logger.Error(ctx, "store failed", "request_id", requestIDFromContext(ctx), "error", err)
		return status.Error(codes.Internal, "could not store")
	default:
		s.logger.Error(ctx, "request error", "request_id", requestIDFromContext(ctx), "error", err)
		return status.Error(codes.Internal, "internal error")
	}
}

func encryptionOf(res *services.StoreResult) *models.Encryption {
	if zk, ok := res.Descriptor.(*models.ZeroKnowledgeDescriptor); ok {
		enc := zk.Encryption
		return &enc
	}
	return nil
}

func toObject(r *services.AccessResult) *pb.Object {
	o := &pb.Object{
		Key:          r.Key,
		Kind:         r.Kind,
		MimeType:     r.MimeType,
		Size:         r.Size,
		OriginalName: r.OriginalName,
		CreatedAt:    timestamppb.New(r.CreatedAt),
		PrivacyLevel: r.PrivacyLevel.String(),
		SignedUrl:    r.Handle.URL,
		ExpiresAt:    timestamppb.New(r.Handle.ExpiresAt),
	}
	if r.Encryption != nil {
		o.EncryptionIv = r.Encryption.IV
		o.EncryptionAuthTag = r.Encryption.AuthTag
	}
	return o
}
