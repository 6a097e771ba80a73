// Package common contains shared constants and sentinel errors used across
// Refugio components.
package common

// AccessTokenHeaderName is the gRPC metadata key used to carry the
// access token on outbound requests.
const AccessTokenHeaderName = "access_token"

// DraftKey is the single logical key the in-progress draft is stored under.
const DraftKey = "diario_draft"

// DefaultHistoryLimit is how many entries the history view asks for.
const DefaultHistoryLimit = 50
