// Package client contains the client-side plumbing of Refugio.
//
// # Overview
//
//  1. The Client interface is the remote entry store as the rest of the
//     client sees it: account calls (Register, GetSalt, Login, RefreshToken,
//     Logout), Ping, and the entries table (InsertEntry, ListEntries).
//  2. GRPCClient implements it over the refugio.v1.Refugio service. It keeps
//     the token pair of the current session, injects the access token as
//     metadata, refreshes it once when the server reports it expired, and maps
//     gRPC status codes to sentinel errors.
//  3. InitDatabase opens the local SQLite file and applies the embedded
//     migrations.
//
// # Error Handling
//
// Callers match ErrUnavailable, ErrUnauthorized, ErrAlreadyExists and
// ErrInvalidArgument with errors.Is.
package client
