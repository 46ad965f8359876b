package escrowpb

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const ServiceName = "escrow.v1.EscrowService"

type EscrowServiceServer interface {
	InitializeEscrow(context.Context, *InitializeEscrowRequest) (*EscrowResponse, error)
	ConfirmEscrow(context.Context, *ConfirmEscrowRequest) (*EscrowResponse, error)
	CancelEscrow(context.Context, *CancelEscrowRequest) (*EscrowResponse, error)
	GetEscrow(context.Context, *GetEscrowRequest) (*EscrowResponse, error)
	ListEscrows(context.Context, *ListEscrowsRequest) (*ListEscrowsResponse, error)
	GetEscrowStats(context.Context, *GetEscrowStatsRequest) (*GetEscrowStatsResponse, error)
}

// UnimplementedEscrowServiceServer can be embedded to keep servers
// forward compatible.
type UnimplementedEscrowServiceServer struct{}

func (UnimplementedEscrowServiceServer) InitializeEscrow(context.Context, *InitializeEscrowRequest) (*EscrowResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method InitializeEscrow not implemented")
}
func (UnimplementedEscrowServiceServer) ConfirmEscrow(context.Context, *ConfirmEscrowRequest) (*EscrowResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ConfirmEscrow not implemented")
}
func (UnimplementedEscrowServiceServer) CancelEscrow(context.Context, *CancelEscrowRequest) (*EscrowResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method CancelEscrow not implemented")
}
func (UnimplementedEscrowServiceServer) GetEscrow(context.Context, *GetEscrowRequest) (*EscrowResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetEscrow not implemented")
}
func (UnimplementedEscrowServiceServer) ListEscrows(context.Context, *ListEscrowsRequest) (*ListEscrowsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListEscrows not implemented")
}
func (UnimplementedEscrowServiceServer) GetEscrowStats(context.Context, *GetEscrowStatsRequest) (*GetEscrowStatsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetEscrowStats not implemented")
}

func RegisterEscrowServiceServer(s grpc.ServiceRegistrar, srv EscrowServiceServer) {
	s.RegisterService(&EscrowService_ServiceDesc, srv)
}

var EscrowService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*EscrowServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "InitializeEscrow", Handler: unaryHandler("InitializeEscrow", EscrowServiceServer.InitializeEscrow)},
		{MethodName: "ConfirmEscrow", Handler: unaryHandler("ConfirmEscrow", EscrowServiceServer.ConfirmEscrow)},
		{MethodName: "CancelEscrow", Handler: unaryHandler("CancelEscrow", EscrowServiceServer.CancelEscrow)},
		{MethodName: "GetEscrow", Handler: unaryHandler("GetEscrow", EscrowServiceServer.GetEscrow)},
		{MethodName: "ListEscrows", Handler: unaryHandler("ListEscrows", EscrowServiceServer.ListEscrows)},
		{MethodName: "GetEscrowStats", Handler: unaryHandler("GetEscrowStats", EscrowServiceServer.GetEscrowStats)},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "escrow/v1/escrow.proto",
}

func FullMethod(method string) string {
	return "/" + ServiceName + "/" + method
}

func unaryHandler[Req any, Resp any](
	method string,
	call func(EscrowServiceServer, context.Context, *Req) (*Resp, error),
) func(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	return func(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
		in := new(Req)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(EscrowServiceServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{
			Server:     srv,
			FullMethod: FullMethod(method),
		}
		handler := func(ctx context.Context, req interface{}) (interface{}, error) {
			return call(srv.(EscrowServiceServer), ctx, req.(*Req))
		}
		return interceptor(ctx, in, info, handler)
	}
}

type EscrowServiceClient interface {
	InitializeEscrow(ctx context.Context, in *InitializeEscrowRequest, opts ...grpc.CallOption) (*EscrowResponse, error)
	ConfirmEscrow(ctx context.Context, in *ConfirmEscrowRequest, opts ...grpc.CallOption) (*EscrowResponse, error)
	CancelEscrow(ctx context.Context, in *CancelEscrowRequest, opts ...grpc.CallOption) (*EscrowResponse, error)
	GetEscrow(ctx context.Context, in *GetEscrowRequest, opts ...grpc.CallOption) (*EscrowResponse, error)
	ListEscrows(ctx context.Context, in *ListEscrowsRequest, opts ...grpc.CallOption) (*ListEscrowsResponse, error)
	GetEscrowStats(ctx context.Context, in *GetEscrowStatsRequest, opts ...grpc.CallOption) (*GetEscrowStatsResponse, error)
}

type escrowServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewEscrowServiceClient(cc grpc.ClientConnInterface) EscrowServiceClient {
	return &escrowServiceClient{cc: cc}
}

func (c *escrowServiceClient) invoke(ctx context.Context, method string, in, out interface{}, opts []grpc.CallOption) error {
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	return c.cc.Invoke(ctx, FullMethod(method), in, out, opts...)
}

func (c *escrowServiceClient) InitializeEscrow(ctx context.Context, in *InitializeEscrowRequest, opts ...grpc.CallOption) (*EscrowResponse, error) {
	out := new(EscrowResponse)
	if err := c.invoke(ctx, "InitializeEscrow", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *escrowServiceClient) ConfirmEscrow(ctx context.Context, in *ConfirmEscrowRequest, opts ...grpc.CallOption) (*EscrowResponse, error) {
	out := new(EscrowResponse)
	if err := c.invoke(ctx, "ConfirmEscrow", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *escrowServiceClient) CancelEscrow(ctx context.Context, in *CancelEscrowRequest, opts ...grpc.CallOption) (*EscrowResponse, error) {
	out := new(EscrowResponse)
	if err := c.invoke(ctx, "CancelEscrow", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *escrowServiceClient) GetEscrow(ctx context.Context, in *GetEscrowRequest, opts ...grpc.CallOption) (*EscrowResponse, error) {
	out := new(EscrowResponse)
	if err := c.invoke(ctx, "GetEscrow", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *escrowServiceClient) ListEscrows(ctx context.Context, in *ListEscrowsRequest, opts ...grpc.CallOption) (*ListEscrowsResponse, error) {
	out := new(ListEscrowsResponse)
	if err := c.invoke(ctx, "ListEscrows", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *escrowServiceClient) GetEscrowStats(ctx context.Context, in *GetEscrowStatsRequest, opts ...grpc.CallOption) (*GetEscrowStatsResponse, error) {
	out := new(GetEscrowStatsResponse)
	if err := c.invoke(ctx, "GetEscrowStats", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}
