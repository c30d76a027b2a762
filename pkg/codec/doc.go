// Package codec encodes and decodes force-feedback frames.
//
// A frame is exactly [FrameSize] bytes on the wire: six little-endian int16
// fields with no header, length prefix, or checksum.
//
//	offset  field
//	0       thumb curl
//	2       index curl
//	4       middle curl
//	6       ring curl
//	8       pinky curl
//	10      hand code (0 = left, 1 = right)
//
// Curl values are carried as-is. The 0..1000 range is a contract enforced
// by the sender, not by the codec, so boundary and out-of-range values
// survive a round trip unchanged.
//
// # Usage
//
//	buf := codec.Encode(frame)
//	conn.Write(buf[:])
//
//	frame, err := codec.ReadFrame(conn)
//
// # Version
//
// Current version: 1.0.0
// Minimum compatible version: 1.0.0
//
// See version.go for version constants that can be used programmatically.
package codec
