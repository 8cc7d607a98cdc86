// Command lzwencode compresses one file with TIFF-style LZW.
//
//	lzwencode <input_path> <output_path>
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/obiente/translate/textkit/internal/codec"
	"github.com/obiente/translate/textkit/internal/config"
	"github.com/obiente/translate/textkit/internal/logging"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stderr, codec.TIFF{}))
}

func run(args []string, stderr io.Writer, enc codec.Encoder) int {
	cfg, envErr := config.Load()
	log.Logger = logging.New(stderr, cfg.LogLevel, cfg.LogFormat)
	if envErr != nil {
		log.Warn().Err(envErr).Msg("ignoring .env")
	}

	paths, err := config.ParsePositional("lzwencode", args)
	if err != nil {
		if errors.Is(err, config.ErrHelp) {
			fmt.Fprintln(stderr, "Usage: lzwencode <input_path> <output_path>")
			return 0
		}
		fmt.Fprintf(stderr, "lzwencode: %v\n", err)
		return 2
	}

	res, err := codec.EncodeFile(enc, paths.Input, paths.Output)
	if err != nil {
		log.Error().Err(err).Str("input", paths.Input).Str("output", paths.Output).Msg("encode failed")
		return 1
	}

	log.Info().
		Str("input", paths.Input).
		Str("output", paths.Output).
		Int("inBytes", res.InBytes).
		Int("outBytes", res.OutBytes).
		Msg("encoded")
	return 0
}
