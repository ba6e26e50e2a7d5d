// Package pb holds the protobuf messages and gRPC bindings of the
// matchcore.OrderService, generated from order_service.proto.
package pb

//go:generate protoc --go_out=. --go_opt=paths=source_relative --go-grpc_out=. --go-grpc_opt=paths=source_relative order_service.proto
