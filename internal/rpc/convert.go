// Package rpc converts between the domain types and the generated gRPC
// messages in internal/proto, and lists the calls that need no access token.
package rpc

import (
	"time"

	"github.com/dmitrijs2005/esgportal/internal/identity"
	"github.com/dmitrijs2005/esgportal/internal/profiles"
	pb "github.com/dmitrijs2005/esgportal/internal/proto"
	"google.golang.org/protobuf/types/known/timestamppb"
)

// PublicMethods can be called without an access token.
var PublicMethods = map[string]bool{
	pb.IdentityService_SignIn_FullMethodName:               true,
	pb.IdentityService_SignUp_FullMethodName:               true,
	pb.IdentityService_Refresh_FullMethodName:              true,
	pb.IdentityService_SignOut_FullMethodName:              true,
	pb.IdentityService_FederatedStart_FullMethodName:       true,
	pb.IdentityService_FederatedFinish_FullMethodName:      true,
	pb.IdentityService_SendPasswordReset_FullMethodName:    true,
	pb.IdentityService_ConfirmPasswordReset_FullMethodName: true,
	pb.IdentityService_VerifyEmail_FullMethodName:          true,
	pb.IdentityService_Ping_FullMethodName:                 true,
}

// Timestamp converts t; the zero time travels as an unset field.
func Timestamp(t time.Time) *timestamppb.Timestamp {
	if t.IsZero() {
		return nil
	}
	return timestamppb.New(t)
}

// Time is the inverse of Timestamp.
func Time(ts *timestamppb.Timestamp) time.Time {
	if ts == nil {
		return time.Time{}
	}
	return ts.AsTime()
}

// FromIdentity converts a domain identity to its wire form. The refresh
// token travels in Session, never inside the identity.
func FromIdentity(i *identity.Identity) *pb.Identity {
	if i == nil {
		return nil
	}
	out := &pb.Identity{
		Uid:           i.UID,
		Email:         i.Email,
		DisplayName:   i.DisplayName,
		PhotoUrl:      i.PhotoURL,
		EmailVerified: i.EmailVerified,
		IsAnonymous:   i.IsAnonymous,
		ProviderId:    string(i.ProviderID),
		CreatedAt:     Timestamp(i.CreatedAt),
		LastLoginAt:   Timestamp(i.LastLoginAt),
	}
	for _, p := range i.Providers {
		out.Providers = append(out.Providers, string(p))
	}
	return out
}

// ToIdentity converts a wire identity to the domain type.
func ToIdentity(w *pb.Identity) *identity.Identity {
	if w == nil {
		return nil
	}
	out := &identity.Identity{
		UID:           w.GetUid(),
		Email:         w.GetEmail(),
		DisplayName:   w.GetDisplayName(),
		PhotoURL:      w.GetPhotoUrl(),
		EmailVerified: w.GetEmailVerified(),
		IsAnonymous:   w.GetIsAnonymous(),
		ProviderID:    identity.ProviderTag(w.GetProviderId()),
		CreatedAt:     Time(w.GetCreatedAt()),
		LastLoginAt:   Time(w.GetLastLoginAt()),
	}
	for _, p := range w.GetProviders() {
		out.Providers = append(out.Providers, identity.ProviderTag(p))
	}
	return out
}

func FromCredential(c identity.Credential) *pb.Credential {
	return &pb.Credential{
		Provider: string(c.Provider),
		Email:    c.Email,
		Password: c.Password,
		State:    c.State,
		Code:     c.Code,
	}
}

func ToCredential(c *pb.Credential) identity.Credential {
	return identity.Credential{
		Provider: identity.ProviderTag(c.GetProvider()),
		Email:    c.GetEmail(),
		Password: c.GetPassword(),
		State:    c.GetState(),
		Code:     c.GetCode(),
	}
}

func fromExtensions(e profiles.Extensions) map[string][]byte {
	if e == nil {
		return nil
	}
	out := make(map[string][]byte, len(e))
	for k, v := range e {
		out[k] = v
	}
	return out
}

func toExtensions(m map[string][]byte) profiles.Extensions {
	if len(m) == 0 {
		return nil
	}
	out := make(profiles.Extensions, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// FromRecord converts a profile document to its wire form.
func FromRecord(r *profiles.Record) *pb.ProfileRecord {
	if r == nil {
		return nil
	}
	return &pb.ProfileRecord{
		Uid:           r.UID,
		Email:         r.Email,
		DisplayName:   r.DisplayName,
		PhotoUrl:      r.PhotoURL,
		EmailVerified: r.EmailVerified,
		IsAdmin:       r.IsAdmin,
		Roles:         r.Roles,
		Extensions:    fromExtensions(r.Extensions),
		CreatedAt:     Timestamp(r.CreatedAt),
		UpdatedAt:     Timestamp(r.UpdatedAt),
		LastLoginAt:   Timestamp(r.LastLoginAt),
	}
}

// ToRecord converts a wire profile document to the domain type.
func ToRecord(w *pb.ProfileRecord) *profiles.Record {
	if w == nil {
		return nil
	}
	return &profiles.Record{
		UID:           w.GetUid(),
		Email:         w.GetEmail(),
		DisplayName:   w.GetDisplayName(),
		PhotoURL:      w.GetPhotoUrl(),
		EmailVerified: w.GetEmailVerified(),
		IsAdmin:       w.GetIsAdmin(),
		Roles:         w.GetRoles(),
		Extensions:    toExtensions(w.GetExtensions()),
		CreatedAt:     Time(w.GetCreatedAt()),
		UpdatedAt:     Time(w.GetUpdatedAt()),
		LastLoginAt:   Time(w.GetLastLoginAt()),
	}
}

// FromPatch converts a patch; unset fields stay unset on the wire.
func FromPatch(p profiles.Patch) *pb.ProfilePatch {
	return &pb.ProfilePatch{
		Email:         p.Email,
		DisplayName:   p.DisplayName,
		PhotoUrl:      p.PhotoURL,
		EmailVerified: p.EmailVerified,
		Extensions:    fromExtensions(p.Extensions),
	}
}

func ToPatch(w *pb.ProfilePatch) profiles.Patch {
	if w == nil {
		return profiles.Patch{}
	}
	return profiles.Patch{
		Email:         w.Email,
		DisplayName:   w.DisplayName,
		PhotoURL:      w.PhotoUrl,
		EmailVerified: w.EmailVerified,
		Extensions:    toExtensions(w.GetExtensions()),
	}
}
