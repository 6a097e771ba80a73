// Package api is the wire contract between the Refugio client and the sync
// server.
//
// The service is plain gRPC. Messages are Go structs encoded as JSON by Codec,
// which is registered with grpc under the "json" content-subtype; messages
// that are protobuf types (emptypb.Empty) go through protojson instead. Both
// sides use the descriptors and stubs in this package, so the method names
// and message shapes live in exactly one place.
//
//	service refugio.v1.Refugio {
//	  Register(RegisterRequest)         returns (RegisterResponse)
//	  GetSalt(GetSaltRequest)           returns (GetSaltResponse)
//	  Login(LoginRequest)               returns (TokenResponse)
//	  RefreshToken(RefreshTokenRequest) returns (TokenResponse)
//	  Logout(LogoutRequest)             returns (google.protobuf.Empty)
//	  Ping(google.protobuf.Empty)       returns (PingResponse)
//	  InsertEntry(InsertEntryRequest)   returns (InsertEntryResponse)   // auth
//	  ListEntries(ListEntriesRequest)   returns (ListEntriesResponse)   // auth
//	}
package api
