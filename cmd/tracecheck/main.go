// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Command tracecheck scores saved tracing ink offline and manages the
// custom word list.
//
// Usage:
//
//	tracecheck score -ink ink.png -word cat [-dpr 2] [-anchor 400,300] [-overlay out.png]
//	tracecheck list
//	tracecheck add -word kite [-image kite.jpg]
//	tracecheck suggest
//
// Configuration is read from the environment and an optional .env file:
// LOG_LEVEL, TRACE_STRATEGY, TRACE_DENSITY_THRESHOLD, TRACE_STRIDE,
// TRACE_WORDS_DB, GEMINI_API_KEY and GEMINI_MODEL. Flags take precedence.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/rs/zerolog/log"
)

const usage = `usage: tracecheck <command> [flags]

commands:
  score    score an ink PNG against a word
  list     print the word list
  add      add a custom word
  suggest  ask Gemini for a new word
`

func main() {
	e := loadEnv()
	setupLogging(e.LogLevel)

	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var err error
	switch cmd, args := os.Args[1], os.Args[2:]; cmd {
	case "score":
		err = runScore(ctx, e, args, os.Stdout)
	case "list":
		err = runList(ctx, e, args)
	case "add":
		err = runAdd(ctx, e, args)
	case "suggest":
		err = runSuggest(ctx, e, args)
	case "-h", "-help", "--help", "help":
		fmt.Fprint(os.Stdout, usage)
		return
	default:
		fmt.Fprintf(os.Stderr, "tracecheck: unknown command %q\n\n%s", cmd, usage)
		os.Exit(2)
	}
	if err != nil {
		log.Fatal().Err(err).Msg("tracecheck failed")
	}
}
