package v1

import (
	"context"

	"google.golang.org/grpc"
)

// Fully qualified service names
const (
	KeyServiceName    = "rsa.v1.KeyService"
	CipherServiceName = "rsa.v1.CipherService"
)

// KeyServiceServer is the server API of KeyService
type KeyServiceServer interface {
	Generate(ctx context.Context, req *GenerateKeyRequest) (*KeyMetaResponse, error)
	ListMetadata(req *KeyMetadataQuery, stream grpc.ServerStream) error
	GetMetadataByID(ctx context.Context, req *IDRequest) (*KeyMetaResponse, error)
	DeleteByID(ctx context.Context, req *IDRequest) (*InfoResponse, error)
}

// CipherServiceServer is the server API of CipherService
type CipherServiceServer interface {
	Encrypt(ctx context.Context, req *TextRequest) (*BlocksResponse, error)
	Decrypt(ctx context.Context, req *BlocksRequest) (*TextResponse, error)
	Sign(ctx context.Context, req *TextRequest) (*BlocksResponse, error)
	Verify(ctx context.Context, req *VerifyRequest) (*VerifyResponse, error)
}

// KeyServiceDesc describes KeyService for grpc.ServiceRegistrar
var KeyServiceDesc = grpc.ServiceDesc{
	ServiceName: KeyServiceName,
	HandlerType: (*KeyServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "Generate",
			Handler: unaryHandler(KeyServiceName, "Generate", func(srv interface{}, ctx context.Context, req *GenerateKeyRequest) (*KeyMetaResponse, error) {
				return srv.(KeyServiceServer).Generate(ctx, req)
			}),
		},
		{
			MethodName: "GetMetadataByID",
			Handler: unaryHandler(KeyServiceName, "GetMetadataByID", func(srv interface{}, ctx context.Context, req *IDRequest) (*KeyMetaResponse, error) {
				return srv.(KeyServiceServer).GetMetadataByID(ctx, req)
			}),
		},
		{
			MethodName: "DeleteByID",
			Handler: unaryHandler(KeyServiceName, "DeleteByID", func(srv interface{}, ctx context.Context, req *IDRequest) (*InfoResponse, error) {
				return srv.(KeyServiceServer).DeleteByID(ctx, req)
			}),
		},
	},
	Streams: []grpc.StreamDesc{
		{
			StreamName:    "ListMetadata",
			Handler:       listMetadataHandler,
			ServerStreams: true,
		},
	},
	Metadata: "rsa/v1/keys",
}

// CipherServiceDesc describes CipherService for grpc.ServiceRegistrar
var CipherServiceDesc = grpc.ServiceDesc{
	ServiceName: CipherServiceName,
	HandlerType: (*CipherServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "Encrypt",
			Handler: unaryHandler(CipherServiceName, "Encrypt", func(srv interface{}, ctx context.Context, req *TextRequest) (*BlocksResponse, error) {
				return srv.(CipherServiceServer).Encrypt(ctx, req)
			}),
		},
		{
			MethodName: "Decrypt",
			Handler: unaryHandler(CipherServiceName, "Decrypt", func(srv interface{}, ctx context.Context, req *BlocksRequest) (*TextResponse, error) {
				return srv.(CipherServiceServer).Decrypt(ctx, req)
			}),
		},
		{
			MethodName: "Sign",
			Handler: unaryHandler(CipherServiceName, "Sign", func(srv interface{}, ctx context.Context, req *TextRequest) (*BlocksResponse, error) {
				return srv.(CipherServiceServer).Sign(ctx, req)
			}),
		},
		{
			MethodName: "Verify",
			Handler: unaryHandler(CipherServiceName, "Verify", func(srv interface{}, ctx context.Context, req *VerifyRequest) (*VerifyResponse, error) {
				return srv.(CipherServiceServer).Verify(ctx, req)
			}),
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "rsa/v1/cipher",
}

// RegisterServices registers both services on s
func RegisterServices(s grpc.ServiceRegistrar, keyServer KeyServiceServer, cipherServer CipherServiceServer) {
	s.RegisterService(&KeyServiceDesc, keyServer)
	s.RegisterService(&CipherServiceDesc, cipherServer)
}

func fullMethod(service, method string) string {
	return "/" + service + "/" + method
}

// unaryHandler decodes Req, runs the interceptor chain and dispatches to call
func unaryHandler[Req any, Resp any](service, method string, call func(srv interface{}, ctx context.Context, req *Req) (*Resp, error)) func(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	return func(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
		in := new(Req)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv, ctx, in)
		}
		info := &grpc.UnaryServerInfo{
			Server:     srv,
			FullMethod: fullMethod(service, method),
		}
		handler := func(ctx context.Context, req interface{}) (interface{}, error) {
			return call(srv, ctx, req.(*Req))
		}
		return interceptor(ctx, in, info, handler)
	}
}

func listMetadataHandler(srv interface{}, stream grpc.ServerStream) error {
	in := new(KeyMetadataQuery)
	if err := stream.RecvMsg(in); err != nil {
		return err
	}
	return srv.(KeyServiceServer).ListMetadata(in, stream)
}
