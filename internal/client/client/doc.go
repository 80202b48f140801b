// Package client is the CLI's connection to the identity server.
//
// GRPCClient implements both identity.Provider and profiles.Store on top of
// one lazily created gRPC connection. It attaches the access token to every
// call, refreshes it transparently when the server reports it expired and
// maps gRPC statuses to *autherr.Error values (profile-store misses become
// common.ErrorNotFound, as profiles.Store requires).
//
// When given a metadata repository the client saves the refresh token after
// every sign-in and Restore resumes that session on the next start. Until
// Restore has run, subscribers are not told anything, so the session
// manager stays in its loading state instead of reporting "signed out".
//
// InitDatabase opens the local SQLite database and applies the embedded
// goose migrations.
package client
