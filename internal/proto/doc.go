// Package proto holds the gRPC contract between the CLI and the identity
// server. Everything except this file is generated.
package proto

//go:generate protoc --proto_path=. --go_out=. --go_opt=paths=source_relative --go-grpc_out=. --go-grpc_opt=paths=source_relative identity.proto profile.proto
