// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package main

import (
	"log/slog"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/term"

	"github.com/gogpu/tracekit"
	"github.com/gogpu/tracekit/score"
)

// env is configuration read from the environment and .env.
type env struct {
	LogLevel  string
	Strategy  string
	Threshold float64
	Stride    int
	DBPath    string
	GeminiKey string
	Model     string
}

func loadEnv() env {
	_ = godotenv.Load()
	d := score.DefaultDensity()
	return env{
		LogLevel:  getEnv("LOG_LEVEL", "info"),
		Strategy:  getEnv("TRACE_STRATEGY", score.StrategyDensity),
		Threshold: getFloat("TRACE_DENSITY_THRESHOLD", d.Threshold),
		Stride:    getInt("TRACE_STRIDE", d.Stride),
		DBPath:    getEnv("TRACE_WORDS_DB", "./data/words.db"),
		GeminiKey: getEnv("GEMINI_API_KEY", ""),
		Model:     getEnv("GEMINI_MODEL", ""),
	}
}

// setupLogging configures zerolog for the command and routes library logs
// through slog at the same level.
func setupLogging(level string) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)
	if term.IsTerminal(int(os.Stderr.Fd())) {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	var sl slog.Level
	switch lvl {
	case zerolog.TraceLevel, zerolog.DebugLevel:
		sl = slog.LevelDebug
	case zerolog.InfoLevel:
		sl = slog.LevelInfo
	case zerolog.WarnLevel:
		sl = slog.LevelWarn
	default:
		sl = slog.LevelError
	}
	tracekit.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: sl})))
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getFloat(k string, def float64) float64 {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		log.Warn().Str("key", k).Str("value", v).Msg("ignoring malformed number")
		return def
	}
	return f
}

func getInt(k string, def int) int {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Warn().Str("key", k).Str("value", v).Msg("ignoring malformed integer")
		return def
	}
	return n
}
