package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/danmuck/bytecursor/cursor"
	"github.com/danmuck/bytecursor/internal/layout"
	"github.com/danmuck/bytecursor/internal/logging"
)

func main() {
	layoutPath := flag.String("layout", "", "path to a TOML decode plan")
	input := flag.String("input", "", "path to the binary file to decode")
	validate := flag.Bool("validate", false, "validate the plan without decoding")
	flag.Parse()

	logging.Init("curdump")

	if *layoutPath == "" {
		log.Fatal().Msg("missing -layout")
	}

	plan, err := layout.Load(*layoutPath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load decode plan")
	}
	if *validate {
		log.Info().Str("plan", plan.Name).Int("fields", len(plan.Fields)).Msg("plan is valid")
		return
	}

	if *input == "" {
		log.Fatal().Msg("missing -input")
	}
	data, err := os.ReadFile(*input)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to read input")
	}

	c := cursor.New(data)
	values, runErr := layout.Run(plan, c)
	for _, v := range values {
		fmt.Println(v)
	}
	if runErr != nil {
		log.Fatal().Err(runErr).Int("offset", c.Pos()).Msg("decode stopped")
	}
	if !c.IsAtEnd() {
		log.Warn().Int("offset", c.Pos()).Int("len", c.Len()).Msg("trailing bytes after plan")
	}
	log.Info().Str("plan", plan.Name).Int("fields", len(values)).Msg("decode complete")
}
