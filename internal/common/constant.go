// Package common contains shared constants and sentinel errors used across
// ESG portal components.
package common

// AccessTokenHeaderName is the gRPC metadata key used to carry the
// access token on outbound requests.
const AccessTokenHeaderName = "access_token"

// ProfilesCollection is the logical collection holding one profile record
// per identity.
const ProfilesCollection = "users"

// DefaultRole is assigned to every freshly created profile.
const DefaultRole = "user"

// AdminRole is the role tag carried by administrators.
const AdminRole = "admin"
