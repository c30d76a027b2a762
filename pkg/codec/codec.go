package codec

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/bft-labs/ffblink/internal/domain"
)

// FrameSize is the encoded size of every frame.
const FrameSize = 12

// ErrMalformedFrame is returned when bytes do not hold exactly one valid frame.
var ErrMalformedFrame = domain.ErrMalformedFrame

// Frame is the force-feedback frame value type.
type Frame = domain.Frame

// Encode returns the wire representation of f.
func Encode(f Frame) [FrameSize]byte {
	var b [FrameSize]byte
	put(b[:], f)
	return b
}

// AppendFrame appends the wire representation of f to dst.
func AppendFrame(dst []byte, f Frame) []byte {
	b := Encode(f)
	return append(dst, b[:]...)
}

// Decode parses one frame. It fails with ErrMalformedFrame when b is not
// exactly FrameSize bytes or carries an unknown hand code.
func Decode(b []byte) (Frame, error) {
	if len(b) != FrameSize {
		return Frame{}, fmt.Errorf("%w: got %d bytes, want %d", ErrMalformedFrame, len(b), FrameSize)
	}
	f := Frame{
		ThumbCurl:  int16(binary.LittleEndian.Uint16(b[0:])),
		IndexCurl:  int16(binary.LittleEndian.Uint16(b[2:])),
		MiddleCurl: int16(binary.LittleEndian.Uint16(b[4:])),
		RingCurl:   int16(binary.LittleEndian.Uint16(b[6:])),
		PinkyCurl:  int16(binary.LittleEndian.Uint16(b[8:])),
		Hand:       domain.Hand(int16(binary.LittleEndian.Uint16(b[10:]))),
	}
	if !f.Hand.Valid() {
		return Frame{}, fmt.Errorf("%w: hand code %d", ErrMalformedFrame, int16(f.Hand))
	}
	return f, nil
}

// ReadFrame reads exactly one frame from r.
// It returns io.EOF only when r is exhausted on a frame boundary; a stream
// that ends mid-frame yields ErrMalformedFrame.
func ReadFrame(r io.Reader) (Frame, error) {
	var b [FrameSize]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		if errors.Is(err, io.ErrUnexpectedEOF) {
			return Frame{}, fmt.Errorf("%w: truncated", ErrMalformedFrame)
		}
		return Frame{}, err
	}
	return Decode(b[:])
}

// WriteFrame writes f to w in a single Write call.
func WriteFrame(w io.Writer, f Frame) error {
	b := Encode(f)
	n, err := w.Write(b[:])
	if err != nil {
		return err
	}
	if n != FrameSize {
		return io.ErrShortWrite
	}
	return nil
}

func put(b []byte, f Frame) {
	binary.LittleEndian.PutUint16(b[0:], uint16(f.ThumbCurl))
	binary.LittleEndian.PutUint16(b[2:], uint16(f.IndexCurl))
	binary.LittleEndian.PutUint16(b[4:], uint16(f.MiddleCurl))
	binary.LittleEndian.PutUint16(b[6:], uint16(f.RingCurl))
	binary.LittleEndian.PutUint16(b[8:], uint16(f.PinkyCurl))
	binary.LittleEndian.PutUint16(b[10:], uint16(f.Hand))
}
