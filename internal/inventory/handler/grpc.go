package handler

import (
	"context"
	"errors"
	"math"
	"time"

	"github.com/jackaholy/Cheminv2.0/internal/inventory"
	"github.com/jackaholy/Cheminv2.0/internal/logger"
	"github.com/jackaholy/Cheminv2.0/internal/model"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
)

const InventoryServiceName = "cheminv.inventory.v1.InventoryService"

// InventoryServer is the gRPC surface of the live/dead toggle. Payloads use
// the well-known Struct type with the HTTP field names.
type InventoryServer interface {
	MarkDead(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
	MarkAlive(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
	MarkManyDead(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
}

var InventoryServiceDesc = grpc.ServiceDesc{
	ServiceName: InventoryServiceName,
	HandlerType: (*InventoryServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "MarkDead", Handler: structMethod("MarkDead", InventoryServer.MarkDead)},
		{MethodName: "MarkAlive", Handler: structMethod("MarkAlive", InventoryServer.MarkAlive)},
		{MethodName: "MarkManyDead", Handler: structMethod("MarkManyDead", InventoryServer.MarkManyDead)},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "cheminv/inventory/v1/inventory.proto",
}

func RegisterInventoryServer(s grpc.ServiceRegistrar, srv InventoryServer) {
	s.RegisterService(&InventoryServiceDesc, srv)
}

type structCall func(InventoryServer, context.Context, *structpb.Struct) (*structpb.Struct, error)

func structMethod(name string, call structCall) func(interface{}, context.Context, func(interface{}) error, grpc.UnaryServerInterceptor) (interface{}, error) {
	return func(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
		in := new(structpb.Struct)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(InventoryServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{
			Server:     srv,
			FullMethod: "/" + InventoryServiceName + "/" + name,
		}
		handler := func(ctx context.Context, req interface{}) (interface{}, error) {
			return call(srv.(InventoryServer), ctx, req.(*structpb.Struct))
		}
		return interceptor(ctx, in, info, handler)
	}
}

type GRPCHandler struct {
	uc     inventory.UseCase
	logger logger.ZapLogger
}

func NewGRPCHandler(uc inventory.UseCase, log logger.ZapLogger) *GRPCHandler {
	return &GRPCHandler{uc: uc, logger: log}
}

func (h *GRPCHandler) MarkDead(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	id, ok := intField(req, "inventory_id")
	if !ok {
		return nil, status.Error(codes.InvalidArgument, "Missing inventory_id")
	}
	b, err := h.uc.MarkDead(ctx, id)
	if err != nil {
		return nil, h.statusError(err)
	}
	return bottleStruct(b)
}

func (h *GRPCHandler) MarkAlive(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	id, ok := intField(req, "inventory_id")
	if !ok {
		return nil, status.Error(codes.InvalidArgument, "Missing inventory_id")
	}
	b, err := h.uc.MarkAlive(ctx, id)
	if err != nil {
		return nil, h.statusError(err)
	}
	return bottleStruct(b)
}

func (h *GRPCHandler) MarkManyDead(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	shelfID, ok := intField(req, "sub_location_id")
	if !ok {
		return nil, status.Error(codes.InvalidArgument, "Missing sub_location_id")
	}
	var stickers []int64
	for _, v := range req.GetFields()["sticker_numbers"].GetListValue().GetValues() {
		n, ok := toInt(v)
		if !ok {
			return nil, status.Error(codes.InvalidArgument, "sticker_numbers must be integers")
		}
		stickers = append(stickers, n)
	}

	n, err := h.uc.MarkManyDead(ctx, shelfID, stickers)
	if err != nil {
		return nil, h.statusError(err)
	}
	return structpb.NewStruct(map[string]interface{}{"marked": n})
}

func (h *GRPCHandler) statusError(err error) error {
	switch {
	case errors.Is(err, inventory.ErrBottleNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, inventory.ErrNotOnShelf), errors.Is(err, inventory.ErrNoStickers):
		return status.Error(codes.InvalidArgument, err.Error())
	}
	h.logger.Error("Bottle status update failed", zap.Error(err))
	return status.Error(codes.Internal, "internal error")
}

func bottleStruct(b *model.Bottle) (*structpb.Struct, error) {
	fields := map[string]interface{}{
		"id":              b.ID,
		"sticker_number":  b.StickerNumber,
		"sub_location_id": b.ShelfID,
		"dead":            b.IsDead,
	}
	if b.WhoUpdated != nil {
		fields["who_updated"] = *b.WhoUpdated
	}
	if b.LastUpdated != nil {
		fields["last_updated"] = b.LastUpdated.Format(time.RFC3339)
	}
	return structpb.NewStruct(fields)
}

func intField(req *structpb.Struct, name string) (int64, bool) {
	v, ok := req.GetFields()[name]
	if !ok {
		return 0, false
	}
	return toInt(v)
}

func toInt(v *structpb.Value) (int64, bool) {
	n, ok := v.GetKind().(*structpb.Value_NumberValue)
	if !ok || n.NumberValue != math.Trunc(n.NumberValue) || n.NumberValue <= 0 {
		return 0, false
	}
	return int64(n.NumberValue), true
}
