// Package proto holds the gRPC contract between the pipeline and the
// external ML services. Run go generate to regenerate the Go bindings.
package proto

//go:generate protoc --go_out=. --go_opt=paths=source_relative --go-grpc_out=. --go-grpc_opt=paths=source_relative callsight.proto
