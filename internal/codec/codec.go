// Package codec wraps a whole-buffer compression codec behind a one-method
// contract so commands can swap or fake the implementation.
package codec

import (
	"bytes"
	"fmt"
	"io"

	"github.com/hhrutter/lzw"
)

// Encoder compresses a complete buffer. Implementations must be deterministic.
type Encoder interface {
	Encode(src []byte) ([]byte, error)
}

// Decoder reverses an Encoder.
type Decoder interface {
	Decode(src []byte) ([]byte, error)
}

type EncoderFunc func(src []byte) ([]byte, error)

func (f EncoderFunc) Encode(src []byte) ([]byte, error) { return f(src) }

type DecoderFunc func(src []byte) ([]byte, error)

func (f DecoderFunc) Decode(src []byte) ([]byte, error) { return f(src) }

// earlyChange selects the TIFF flavour: the code width grows one code
// before the table reaches the next power of two.
const earlyChange = true

// TIFF is LZW as used by TIFF: MSB-first code packing, 9 to 12 bit codes and
// the early code-width change. An empty input still produces a clear code
// followed by end-of-information.
type TIFF struct{}

func (TIFF) Encode(src []byte) ([]byte, error) {
	var buf bytes.Buffer
	w := lzw.NewWriter(&buf, earlyChange)
	if _, err := w.Write(src); err != nil {
		_ = w.Close()
		return nil, fmt.Errorf("lzw write: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("lzw close: %w", err)
	}
	return buf.Bytes(), nil
}

func (TIFF) Decode(src []byte) ([]byte, error) {
	r := lzw.NewReader(bytes.NewReader(src), earlyChange)
	defer r.Close()
	out, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("lzw read: %w", err)
	}
	return out, nil
}
