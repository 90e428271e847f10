package server

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
)

const ServiceName = "billrecon.v1.Reconciler"

// Full method names, for clients and interceptors.
const (
	MethodReconcile     = "/" + ServiceName + "/Reconcile"
	MethodListProviders = "/" + ServiceName + "/ListProviders"
	MethodSubmit        = "/" + ServiceName + "/Submit"
)

// ReconcilerServer is the server API for billrecon.v1.Reconciler. Messages
// are well-known types so no generated stubs are needed.
type ReconcilerServer interface {
	Reconcile(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ListProviders(context.Context, *emptypb.Empty) (*structpb.Struct, error)
	Submit(context.Context, *structpb.Struct) (*structpb.Struct, error)
}

func RegisterReconcilerServer(s grpc.ServiceRegistrar, srv ReconcilerServer) {
	s.RegisterService(&ReconcilerServiceDesc, srv)
}

var ReconcilerServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*ReconcilerServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Reconcile", Handler: structHandler(MethodReconcile, ReconcilerServer.Reconcile)},
		{MethodName: "ListProviders", Handler: listProvidersHandler},
		{MethodName: "Submit", Handler: structHandler(MethodSubmit, ReconcilerServer.Submit)},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "billrecon/v1/reconciler.proto",
}

type structMethod func(ReconcilerServer, context.Context, *structpb.Struct) (*structpb.Struct, error)

func structHandler(fullMethod string, call structMethod) func(any, context.Context, func(any) error, grpc.UnaryServerInterceptor) (any, error) {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(structpb.Struct)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(ReconcilerServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(ReconcilerServer), ctx, req.(*structpb.Struct))
		}
		return interceptor(ctx, in, info, handler)
	}
}

func listProvidersHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(emptypb.Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ReconcilerServer).ListProviders(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: MethodListProviders}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(ReconcilerServer).ListProviders(ctx, req.(*emptypb.Empty))
	}
	return interceptor(ctx, in, info, handler)
}

// ReconcilerClient calls billrecon.v1.Reconciler.
type ReconcilerClient struct {
	cc grpc.ClientConnInterface
}

func NewReconcilerClient(cc grpc.ClientConnInterface) *ReconcilerClient {
	return &ReconcilerClient{cc: cc}
}

func (c *ReconcilerClient) Reconcile(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, MethodReconcile, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *ReconcilerClient) ListProviders(ctx context.Context, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, MethodListProviders, &emptypb.Empty{}, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *ReconcilerClient) Submit(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, MethodSubmit, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}
