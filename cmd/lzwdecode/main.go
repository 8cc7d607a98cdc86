// Command lzwdecode expands a file written by lzwencode.
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

func run(args []string, stderr io.Writer, dec codec.Decoder) int {
	cfg, envErr := config.Load()
	log.Logger = logging.New(stderr, cfg.LogLevel, cfg.LogFormat)
	if envErr != nil {
		log.Warn().Err(envErr).Msg("ignoring .env")
	}

	paths, err := config.ParsePositional("lzwdecode", args)
	if err != nil {
		if errors.Is(err, config.ErrHelp) {
			fmt.Fprintln(stderr, "Usage: lzwdecode <input_path> <output_path>")
			return 0
		}
		fmt.Fprintf(stderr, "lzwdecode: %v\n", err)
		return 2
	}

	res, err := codec.DecodeFile(dec, paths.Input, paths.Output)
	if err != nil {
		log.Error().Err(err).Str("input", paths.Input).Msg("decode failed")
		return 1
	}
	log.Info().Str("output", paths.Output).Int("inBytes", res.InBytes).Int("outBytes", res.OutBytes).Msg("decoded")
	return 0
}
