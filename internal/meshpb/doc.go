// Package meshpb holds the Meshtastic wire schema used by the radio layer.
//
// The *.pb.go files are generated from proto/meshtastic with buf
// (see buf.gen.yaml at the repository root) and cover only the part of the
// upstream schema the client consumes. Run `buf generate` from the
// repository root after editing the .proto files.
package meshpb
