// Package v1 serves the key and cipher services over gRPC.
//
// Messages are plain Go structs carried by a JSON codec registered under
// CodecName, so the services are described by hand-written grpc.ServiceDesc
// values instead of generated stubs. Clients select the codec with
// grpc.CallContentSubtype(CodecName); Client does this for every call.
package v1
