// Command tsclean strips leading timestamp markers from a transcript.
//
// With no flags it reads 6.1.txt and writes 6.1_clean.txt in the working
// directory.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/obiente/translate/textkit/internal/config"
	"github.com/obiente/translate/textkit/internal/logging"
	"github.com/obiente/translate/textkit/internal/transcript"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	cfg, envErr := config.Load()
	log.Logger = logging.New(stderr, cfg.LogLevel, cfg.LogFormat)
	if envErr != nil {
		log.Warn().Err(envErr).Msg("ignoring .env")
	}

	if err := config.ParseCleanFlags(&cfg, args, stderr); err != nil {
		if errors.Is(err, config.ErrHelp) {
			return 0
		}
		fmt.Fprintf(stderr, "tsclean: %v\n", err)
		return 2
	}

	st, err := transcript.CleanFile(cfg.CleanInput, cfg.CleanOutput)
	if err != nil {
		log.Error().Err(err).Str("input", cfg.CleanInput).Int("lines", st.Lines).Msg("clean failed")
		return 1
	}
	log.Debug().Int("lines", st.Lines).Int("stripped", st.Stripped).Msg("transcript cleaned")

	fmt.Fprintf(stdout, "✅ Done. Cleaned file saved as: %s\n", cfg.CleanOutput)
	return 0
}
