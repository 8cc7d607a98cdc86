package codec

import (
	"fmt"
	"os"
)

// Result reports buffer sizes for logging.
type Result struct {
	InBytes  int
	OutBytes int
}

// EncodeFile reads inPath whole, encodes it with enc and writes the result to
// outPath, creating or truncating it. Nothing is retried and a partially
// written output is left in place.
func EncodeFile(enc Encoder, inPath, outPath string) (Result, error) {
	return transformFile(enc.Encode, "encode", inPath, outPath)
}

// DecodeFile is the inverse of EncodeFile.
func DecodeFile(dec Decoder, inPath, outPath string) (Result, error) {
	return transformFile(dec.Decode, "decode", inPath, outPath)
}

func transformFile(fn func([]byte) ([]byte, error), op, inPath, outPath string) (Result, error) {
	data, err := os.ReadFile(inPath)
	if err != nil {
		return Result{}, fmt.Errorf("read input: %w", err)
	}
	res := Result{InBytes: len(data)}

	out, err := fn(data)
	if err != nil {
		return res, fmt.Errorf("%s %s: %w", op, inPath, err)
	}
	res.OutBytes = len(out)

	if err := os.WriteFile(outPath, out, 0o644); err != nil {
		return res, fmt.Errorf("write output: %w", err)
	}
	return res, nil
}
