package api

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
)

const ServiceName = "refugio.v1.Refugio"

// Full method names, as seen by interceptors.
const (
	MethodRegister      = "/" + ServiceName + "/Register"
	MethodGetSalt       = "/" + ServiceName + "/GetSalt"
	MethodLogin         = "/" + ServiceName + "/Login"
	MethodRefreshToken  = "/" + ServiceName + "/RefreshToken"
	MethodLogout        = "/" + ServiceName + "/Logout"
	MethodPing          = "/" + ServiceName + "/Ping"
	MethodInsertEntry   = "/" + ServiceName + "/InsertEntry"
	MethodListEntries   = "/" + ServiceName + "/ListEntries"
	MethodGetProfile    = "/" + ServiceName + "/GetProfile"
	MethodUpsertProfile = "/" + ServiceName + "/UpsertProfile"
)

// RefugioServer is implemented by the sync server.
type RefugioServer interface {
	Register(context.Context, *RegisterRequest) (*RegisterResponse, error)
	GetSalt(context.Context, *GetSaltRequest) (*GetSaltResponse, error)
	Login(context.Context, *LoginRequest) (*TokenResponse, error)
	RefreshToken(context.Context, *RefreshTokenRequest) (*TokenResponse, error)
	Logout(context.Context, *LogoutRequest) (*emptypb.Empty, error)
	Ping(context.Context, *emptypb.Empty) (*PingResponse, error)
	InsertEntry(context.Context, *InsertEntryRequest) (*InsertEntryResponse, error)
	ListEntries(context.Context, *ListEntriesRequest) (*ListEntriesResponse, error)
	GetProfile(context.Context, *GetProfileRequest) (*ProfileResponse, error)
	UpsertProfile(context.Context, *UpsertProfileRequest) (*ProfileResponse, error)
}

// UnimplementedRefugioServer can be embedded to get forward-compatible
// implementations.
type UnimplementedRefugioServer struct{}

func (UnimplementedRefugioServer) Register(context.Context, *RegisterRequest) (*RegisterResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Register not implemented")
}
func (UnimplementedRefugioServer) GetSalt(context.Context, *GetSaltRequest) (*GetSaltResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetSalt not implemented")
}
func (UnimplementedRefugioServer) Login(context.Context, *LoginRequest) (*TokenResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Login not implemented")
}
func (UnimplementedRefugioServer) RefreshToken(context.Context, *RefreshTokenRequest) (*TokenResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method RefreshToken not implemented")
}
func (UnimplementedRefugioServer) Logout(context.Context, *LogoutRequest) (*emptypb.Empty, error) {
	return nil, status.Error(codes.Unimplemented, "method Logout not implemented")
}
func (UnimplementedRefugioServer) Ping(context.Context, *emptypb.Empty) (*PingResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Ping not implemented")
}
func (UnimplementedRefugioServer) InsertEntry(context.Context, *InsertEntryRequest) (*InsertEntryResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method InsertEntry not implemented")
}
func (UnimplementedRefugioServer) ListEntries(context.Context, *ListEntriesRequest) (*ListEntriesResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListEntries not implemented")
}
func (UnimplementedRefugioServer) GetProfile(context.Context, *GetProfileRequest) (*ProfileResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetProfile not implemented")
}
func (UnimplementedRefugioServer) UpsertProfile(context.Context, *UpsertProfileRequest) (*ProfileResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method UpsertProfile not implemented")
}

// unary builds a MethodDesc whose handler decodes Req, runs the optional
// interceptor and dispatches to call.
func unary[Req any, Resp any](name string, call func(RefugioServer, context.Context, *Req) (*Resp, error)) grpc.MethodDesc {
	fullMethod := "/" + ServiceName + "/" + name
	return grpc.MethodDesc{
		MethodName: name,
		Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
			in := new(Req)
			if err := dec(in); err != nil {
				return nil, err
			}
			if interceptor == nil {
				return call(srv.(RefugioServer), ctx, in)
			}
			info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod}
			handler := func(ctx context.Context, req any) (any, error) {
				return call(srv.(RefugioServer), ctx, req.(*Req))
			}
			return interceptor(ctx, in, info, handler)
		},
	}
}

// ServiceDesc describes refugio.v1.Refugio for grpc.Server.
var ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*RefugioServer)(nil),
	Methods: []grpc.MethodDesc{
		unary("Register", RefugioServer.Register),
		unary("GetSalt", RefugioServer.GetSalt),
		unary("Login", RefugioServer.Login),
		unary("RefreshToken", RefugioServer.RefreshToken),
		unary("Logout", RefugioServer.Logout),
		unary("Ping", RefugioServer.Ping),
		unary("InsertEntry", RefugioServer.InsertEntry),
		unary("ListEntries", RefugioServer.ListEntries),
		unary("GetProfile", RefugioServer.GetProfile),
		unary("UpsertProfile", RefugioServer.UpsertProfile),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "refugio/v1/refugio.api",
}

func RegisterRefugioServer(s grpc.ServiceRegistrar, srv RefugioServer) {
	s.RegisterService(&ServiceDesc, srv)
}

// RefugioClient is the client stub for refugio.v1.Refugio.
type RefugioClient interface {
	Register(ctx context.Context, in *RegisterRequest, opts ...grpc.CallOption) (*RegisterResponse, error)
	GetSalt(ctx context.Context, in *GetSaltRequest, opts ...grpc.CallOption) (*GetSaltResponse, error)
	Login(ctx context.Context, in *LoginRequest, opts ...grpc.CallOption) (*TokenResponse, error)
	RefreshToken(ctx context.Context, in *RefreshTokenRequest, opts ...grpc.CallOption) (*TokenResponse, error)
	Logout(ctx context.Context, in *LogoutRequest, opts ...grpc.CallOption) (*emptypb.Empty, error)
	Ping(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*PingResponse, error)
	InsertEntry(ctx context.Context, in *InsertEntryRequest, opts ...grpc.CallOption) (*InsertEntryResponse, error)
	ListEntries(ctx context.Context, in *ListEntriesRequest, opts ...grpc.CallOption) (*ListEntriesResponse, error)
	GetProfile(ctx context.Context, in *GetProfileRequest, opts ...grpc.CallOption) (*ProfileResponse, error)
	UpsertProfile(ctx context.Context, in *UpsertProfileRequest, opts ...grpc.CallOption) (*ProfileResponse, error)
}

type refugioClient struct {
	cc grpc.ClientConnInterface
}

func NewRefugioClient(cc grpc.ClientConnInterface) RefugioClient {
	return &refugioClient{cc: cc}
}

func invoke[Resp any](ctx context.Context, cc grpc.ClientConnInterface, method string, in any, opts []grpc.CallOption) (*Resp, error) {
	out := new(Resp)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	if err := cc.Invoke(ctx, method, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *refugioClient) Register(ctx context.Context, in *RegisterRequest, opts ...grpc.CallOption) (*RegisterResponse, error) {
	return invoke[RegisterResponse](ctx, c.cc, MethodRegister, in, opts)
}

func (c *refugioClient) GetSalt(ctx context.Context, in *GetSaltRequest, opts ...grpc.CallOption) (*GetSaltResponse, error) {
	return invoke[GetSaltResponse](ctx, c.cc, MethodGetSalt, in, opts)
}

func (c *refugioClient) Login(ctx context.Context, in *LoginRequest, opts ...grpc.CallOption) (*TokenResponse, error) {
	return invoke[TokenResponse](ctx, c.cc, MethodLogin, in, opts)
}

func (c *refugioClient) RefreshToken(ctx context.Context, in *RefreshTokenRequest, opts ...grpc.CallOption) (*TokenResponse, error) {
	return invoke[TokenResponse](ctx, c.cc, MethodRefreshToken, in, opts)
}

func (c *refugioClient) Logout(ctx context.Context, in *LogoutRequest, opts ...grpc.CallOption) (*emptypb.Empty, error) {
	return invoke[emptypb.Empty](ctx, c.cc, MethodLogout, in, opts)
}

func (c *refugioClient) Ping(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*PingResponse, error) {
	return invoke[PingResponse](ctx, c.cc, MethodPing, in, opts)
}

func (c *refugioClient) InsertEntry(ctx context.Context, in *InsertEntryRequest, opts ...grpc.CallOption) (*InsertEntryResponse, error) {
	return invoke[InsertEntryResponse](ctx, c.cc, MethodInsertEntry, in, opts)
}

func (c *refugioClient) ListEntries(ctx context.Context, in *ListEntriesRequest, opts ...grpc.CallOption) (*ListEntriesResponse, error) {
	return invoke[ListEntriesResponse](ctx, c.cc, MethodListEntries, in, opts)
}

func (c *refugioClient) GetProfile(ctx context.Context, in *GetProfileRequest, opts ...grpc.CallOption) (*ProfileResponse, error) {
	return invoke[ProfileResponse](ctx, c.cc, MethodGetProfile, in, opts)
}

func (c *refugioClient) UpsertProfile(ctx context.Context, in *UpsertProfileRequest, opts ...grpc.CallOption) (*ProfileResponse, error) {
	return invoke[ProfileResponse](ctx, c.cc, MethodUpsertProfile, in, opts)
}
