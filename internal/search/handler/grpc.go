package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"

	"github.com/jackaholy/Cheminv2.0/internal/logger"
	"github.com/jackaholy/Cheminv2.0/internal/search"
	"github.com/jackaholy/Cheminv2.0/internal/search/dto"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
)

const SearchServiceName = "cheminv.search.v1.SearchService"

// SearchServer is the gRPC surface of the search engine. Requests and
// responses use the well-known Struct and ListValue types with the same field
// names as the HTTP API.
type SearchServer interface {
	Search(ctx context.Context, req *structpb.Struct) (*structpb.ListValue, error)
}

var SearchServiceDesc = grpc.ServiceDesc{
	ServiceName: SearchServiceName,
	HandlerType: (*SearchServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Search", Handler: searchMethodHandler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "cheminv/search/v1/search.proto",
}

func RegisterSearchServer(s grpc.ServiceRegistrar, srv SearchServer) {
	s.RegisterService(&SearchServiceDesc, srv)
}

func searchMethodHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(structpb.Struct)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SearchServer).Search(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/" + SearchServiceName + "/Search",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(SearchServer).Search(ctx, req.(*structpb.Struct))
	}
	return interceptor(ctx, in, info, handler)
}

type GRPCHandler struct {
	uc     search.UseCase
	logger logger.ZapLogger
}

func NewGRPCHandler(uc search.UseCase, log logger.ZapLogger) *GRPCHandler {
	return &GRPCHandler{uc: uc, logger: log}
}

func (h *GRPCHandler) Search(ctx context.Context, req *structpb.Struct) (*structpb.ListValue, error) {
	input, verr := searchInputFromStruct(req)
	if verr != nil {
		return nil, validationStatus(verr)
	}

	views, err := h.uc.Search(ctx, input)
	if err != nil {
		var ve *search.ValidationError
		if errors.As(err, &ve) {
			return nil, validationStatus(ve)
		}
		if errors.Is(err, context.Canceled) {
			return nil, status.Error(codes.Canceled, "search canceled")
		}
		h.logger.Error("Search failed", zap.String("query", input.Query), zap.Error(err))
		return nil, status.Error(codes.Internal, "internal error")
	}

	list, err := viewsToList(views)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	return list, nil
}

func searchInputFromStruct(req *structpb.Struct) (*dto.SearchInput, *search.ValidationError) {
	verr := &search.ValidationError{}
	input := &dto.SearchInput{}
	fields := req.GetFields()

	if v, ok := fields["query"]; ok {
		if _, isStr := v.GetKind().(*structpb.Value_StringValue); isStr {
			input.Query = v.GetStringValue()
		} else {
			verr.Add("query", "Not a valid string.")
		}
	}
	if v, ok := fields["synonyms"]; ok {
		if _, isBool := v.GetKind().(*structpb.Value_BoolValue); isBool {
			input.Synonyms = v.GetBoolValue()
		} else {
			verr.Add("synonyms", "Not a valid boolean.")
		}
	}
	if v, ok := fields["room"]; ok && !isNull(v) {
		if id, ok := intValue(v); ok {
			input.Filter.RoomID = &id
		} else {
			verr.Add("room", "Not a valid integer.")
		}
	}
	if v, ok := fields["sub_location"]; ok && !isNull(v) {
		if id, ok := intValue(v); ok {
			input.Filter.ShelfID = &id
		} else {
			verr.Add("sub_location", "Not a valid integer.")
		}
	}
	if v, ok := fields["manufacturers"]; ok && !isNull(v) {
		list := v.GetListValue()
		if list == nil {
			verr.Add("manufacturers", "Not a valid list.")
		}
		for i, item := range list.GetValues() {
			if id, ok := intValue(item); ok {
				input.Filter.ManufacturerIDs = append(input.Filter.ManufacturerIDs, id)
			} else {
				verr.Add(fmt.Sprintf("manufacturers.%d", i), "Not a valid integer.")
			}
		}
	}

	if !verr.Empty() {
		return nil, verr
	}
	return input, nil
}

func isNull(v *structpb.Value) bool {
	_, null := v.GetKind().(*structpb.Value_NullValue)
	return null
}

func intValue(v *structpb.Value) (int64, bool) {
	n, isNum := v.GetKind().(*structpb.Value_NumberValue)
	if !isNum {
		return 0, false
	}
	f := n.NumberValue
	if f != math.Trunc(f) || math.Abs(f) > 1<<53 {
		return 0, false
	}
	return int64(f), true
}

func validationStatus(verr *search.ValidationError) error {
	st := status.New(codes.InvalidArgument, "Invalid request parameters")
	details := map[string]interface{}{}
	for field, msgs := range verr.Fields {
		list := make([]interface{}, len(msgs))
		for i, m := range msgs {
			list[i] = m
		}
		details[field] = list
	}
	detail, err := structpb.NewStruct(details)
	if err != nil {
		return st.Err()
	}
	if withDetails, err := st.WithDetails(detail); err == nil {
		return withDetails.Err()
	}
	return st.Err()
}

// viewsToList converts views through their JSON form so the gRPC and HTTP
// responses carry identical field names.
func viewsToList(views []dto.ChemicalView) (*structpb.ListValue, error) {
	raw, err := json.Marshal(views)
	if err != nil {
		return nil, fmt.Errorf("marshal views: %w", err)
	}
	var items []interface{}
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("unmarshal views: %w", err)
	}
	return structpb.NewList(items)
}
