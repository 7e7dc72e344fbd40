// Regenerate the Go bindings with:
//   protoc --go_out=. --go_opt=module=github.com/perfspace/dse-explorer \
//          --go-grpc_out=. --go-grpc_opt=module=github.com/perfspace/dse-explorer \
//          proto/sampler.proto

// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.5.1
// - protoc             (unknown)
// source: sampler.proto

package sampler

import (
	context "context"
	grpc "google.golang.org/grpc"
	codes "google.golang.org/grpc/codes"
	status "google.golang.org/grpc/status"
)

// This is a compile-time assertion to ensure that this generated file
// is compatible with the grpc package it is being compiled against.
// Requires gRPC-Go v1.64.0 or later.
const _ = grpc.SupportPackageIsVersion9

const (
	SamplerService_CreateStudy_FullMethodName    = "/sampler.SamplerService/CreateStudy"
	SamplerService_StartTrial_FullMethodName     = "/sampler.SamplerService/StartTrial"
	SamplerService_AskCategorical_FullMethodName = "/sampler.SamplerService/AskCategorical"
	SamplerService_AskInt_FullMethodName         = "/sampler.SamplerService/AskInt"
	SamplerService_AskFloat_FullMethodName       = "/sampler.SamplerService/AskFloat"
	SamplerService_Tell_FullMethodName           = "/sampler.SamplerService/Tell"
	SamplerService_BestTrials_FullMethodName     = "/sampler.SamplerService/BestTrials"
)

// SamplerServiceClient is the client API for SamplerService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// SamplerService is implemented by the Python optimizer sidecar (Optuna).
// The controller treats it as a stateful ask/tell oracle: it never inspects
// the optimizer's internal model, only issues typed value requests and
// reports finalized trial outcomes.
type SamplerServiceClient interface {
	CreateStudy(ctx context.Context, in *CreateStudyRequest, opts ...grpc.CallOption) (*CreateStudyResponse, error)
	StartTrial(ctx context.Context, in *StartTrialRequest, opts ...grpc.CallOption) (*StartTrialResponse, error)
	AskCategorical(ctx context.Context, in *CategoricalRequest, opts ...grpc.CallOption) (*CategoricalResponse, error)
	AskInt(ctx context.Context, in *IntRequest, opts ...grpc.CallOption) (*IntResponse, error)
	AskFloat(ctx context.Context, in *FloatRequest, opts ...grpc.CallOption) (*FloatResponse, error)
	Tell(ctx context.Context, in *TellRequest, opts ...grpc.CallOption) (*TellResponse, error)
	BestTrials(ctx context.Context, in *BestTrialsRequest, opts ...grpc.CallOption) (*BestTrialsResponse, error)
}

type samplerServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewSamplerServiceClient(cc grpc.ClientConnInterface) SamplerServiceClient {
	return &samplerServiceClient{cc}
}

func (c *samplerServiceClient) CreateStudy(ctx context.Context, in *CreateStudyRequest, opts ...grpc.CallOption) (*CreateStudyResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(CreateStudyResponse)
	err := c.cc.Invoke(ctx, SamplerService_CreateStudy_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *samplerServiceClient) StartTrial(ctx context.Context, in *StartTrialRequest, opts ...grpc.CallOption) (*StartTrialResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(StartTrialResponse)
	err := c.cc.Invoke(ctx, SamplerService_StartTrial_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *samplerServiceClient) AskCategorical(ctx context.Context, in *CategoricalRequest, opts ...grpc.CallOption) (*CategoricalResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(CategoricalResponse)
	err := c.cc.Invoke(ctx, SamplerService_AskCategorical_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *samplerServiceClient) AskInt(ctx context.Context, in *IntRequest, opts ...grpc.CallOption) (*IntResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(IntResponse)
	err := c.cc.Invoke(ctx, SamplerService_AskInt_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *samplerServiceClient) AskFloat(ctx context.Context, in *FloatRequest, opts ...grpc.CallOption) (*FloatResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(FloatResponse)
	err := c.cc.Invoke(ctx, SamplerService_AskFloat_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *samplerServiceClient) Tell(ctx context.Context, in *TellRequest, opts ...grpc.CallOption) (*TellResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(TellResponse)
	err := c.cc.Invoke(ctx, SamplerService_Tell_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *samplerServiceClient) BestTrials(ctx context.Context, in *BestTrialsRequest, opts ...grpc.CallOption) (*BestTrialsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(BestTrialsResponse)
	err := c.cc.Invoke(ctx, SamplerService_BestTrials_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// SamplerServiceServer is the server API for SamplerService service.
// All implementations must embed UnimplementedSamplerServiceServer
// for forward compatibility.
//
// SamplerService is implemented by the Python optimizer sidecar (Optuna).
// The controller treats it as a stateful ask/tell oracle: it never inspects
// the optimizer's internal model, only issues typed value requests and
// reports finalized trial outcomes.
type SamplerServiceServer interface {
	CreateStudy(context.Context, *CreateStudyRequest) (*CreateStudyResponse, error)
	StartTrial(context.Context, *StartTrialRequest) (*StartTrialResponse, error)
	AskCategorical(context.Context, *CategoricalRequest) (*CategoricalResponse, error)
	AskInt(context.Context, *IntRequest) (*IntResponse, error)
	AskFloat(context.Context, *FloatRequest) (*FloatResponse, error)
	Tell(context.Context, *TellRequest) (*TellResponse, error)
	BestTrials(context.Context, *BestTrialsRequest) (*BestTrialsResponse, error)
	mustEmbedUnimplementedSamplerServiceServer()
}

// UnimplementedSamplerServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedSamplerServiceServer struct{}

func (UnimplementedSamplerServiceServer) CreateStudy(context.Context, *CreateStudyRequest) (*CreateStudyResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CreateStudy not implemented")
}
func (UnimplementedSamplerServiceServer) StartTrial(context.Context, *StartTrialRequest) (*StartTrialResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method StartTrial not implemented")
}
func (UnimplementedSamplerServiceServer) AskCategorical(context.Context, *CategoricalRequest) (*CategoricalResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method AskCategorical not implemented")
}
func (UnimplementedSamplerServiceServer) AskInt(context.Context, *IntRequest) (*IntResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method AskInt not implemented")
}
func (UnimplementedSamplerServiceServer) AskFloat(context.Context, *FloatRequest) (*FloatResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method AskFloat not implemented")
}
func (UnimplementedSamplerServiceServer) Tell(context.Context, *TellRequest) (*TellResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Tell not implemented")
}
func (UnimplementedSamplerServiceServer) BestTrials(context.Context, *BestTrialsRequest) (*BestTrialsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method BestTrials not implemented")
}
func (UnimplementedSamplerServiceServer) mustEmbedUnimplementedSamplerServiceServer() {}
func (UnimplementedSamplerServiceServer) testEmbeddedByValue()                        {}

// UnsafeSamplerServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to SamplerServiceServer will
// result in compilation errors.
type UnsafeSamplerServiceServer interface {
	mustEmbedUnimplementedSamplerServiceServer()
}

func RegisterSamplerServiceServer(s grpc.ServiceRegistrar, srv SamplerServiceServer) {
	// If the following call pancis, it indicates UnimplementedSamplerServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&SamplerService_ServiceDesc, srv)
}

func _SamplerService_CreateStudy_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CreateStudyRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SamplerServiceServer).CreateStudy(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: SamplerService_CreateStudy_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(SamplerServiceServer).CreateStudy(ctx, req.(*CreateStudyRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _SamplerService_StartTrial_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(StartTrialRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SamplerServiceServer).StartTrial(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: SamplerService_StartTrial_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(SamplerServiceServer).StartTrial(ctx, req.(*StartTrialRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _SamplerService_AskCategorical_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CategoricalRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SamplerServiceServer).AskCategorical(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: SamplerService_AskCategorical_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(SamplerServiceServer).AskCategorical(ctx, req.(*CategoricalRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _SamplerService_AskInt_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(IntRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SamplerServiceServer).AskInt(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: SamplerService_AskInt_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(SamplerServiceServer).AskInt(ctx, req.(*IntRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _SamplerService_AskFloat_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(FloatRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SamplerServiceServer).AskFloat(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: SamplerService_AskFloat_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(SamplerServiceServer).AskFloat(ctx, req.(*FloatRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _SamplerService_Tell_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(TellRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SamplerServiceServer).Tell(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: SamplerService_Tell_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(SamplerServiceServer).Tell(ctx, req.(*TellRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _SamplerService_BestTrials_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(BestTrialsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SamplerServiceServer).BestTrials(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: SamplerService_BestTrials_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(SamplerServiceServer).BestTrials(ctx, req.(*BestTrialsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// SamplerService_ServiceDesc is the grpc.ServiceDesc for SamplerService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var SamplerService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "sampler.SamplerService",
	HandlerType: (*SamplerServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "CreateStudy",
			Handler:    _SamplerService_CreateStudy_Handler,
		},
		{
			MethodName: "StartTrial",
			Handler:    _SamplerService_StartTrial_Handler,
		},
		{
			MethodName: "AskCategorical",
			Handler:    _SamplerService_AskCategorical_Handler,
		},
		{
			MethodName: "AskInt",
			Handler:    _SamplerService_AskInt_Handler,
		},
		{
			MethodName: "AskFloat",
			Handler:    _SamplerService_AskFloat_Handler,
		},
		{
			MethodName: "Tell",
			Handler:    _SamplerService_Tell_Handler,
		},
		{
			MethodName: "BestTrials",
			Handler:    _SamplerService_BestTrials_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "sampler.proto",
}
