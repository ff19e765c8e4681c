// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/rs/zerolog/log"

	"github.com/gogpu/tracekit/refimage"
	"github.com/gogpu/tracekit/wordgen"
	"github.com/gogpu/tracekit/words"
)

func openLibrary(ctx context.Context, path string) (*words.Library, func(), error) {
	kv, err := words.OpenSQLiteKV(ctx, path)
	if err != nil {
		return nil, nil, err
	}
	return words.NewLibrary(words.NewKVRepository(kv, "")), func() { _ = kv.Close() }, nil
}

func runList(ctx context.Context, e env, args []string) error {
	fs := flag.NewFlagSet("list", flag.ContinueOnError)
	db := fs.String("db", e.DBPath, "SQLite database for custom words")
	if err := fs.Parse(args); err != nil {
		return err
	}
	lib, closeDB, err := openLibrary(ctx, *db)
	if err != nil {
		return err
	}
	defer closeDB()

	entries, err := lib.Entries(ctx)
	if err != nil {
		return err
	}
	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	for i, en := range entries {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", i, en.Text, en.Emoji, en.Category)
	}
	return tw.Flush()
}

func runAdd(ctx context.Context, e env, args []string) error {
	fs := flag.NewFlagSet("add", flag.ContinueOnError)
	db := fs.String("db", e.DBPath, "SQLite database for custom words")
	word := fs.String("word", "", "word to add (required)")
	imagePath := fs.String("image", "", "reference photo to attach")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *word == "" {
		return fmt.Errorf("add: -word is required")
	}

	var imageURL string
	if *imagePath != "" {
		fh, err := os.Open(*imagePath)
		if err != nil {
			return err
		}
		defer fh.Close()
		res := <-refimage.CompressAsync(ctx, fh, refimage.DefaultOptions())
		if res.Err != nil {
			return res.Err
		}
		imageURL = refimage.DataURL(res.JPEG)
		log.Debug().Int("bytes", len(res.JPEG)).Msg("compressed reference photo")
	}

	lib, closeDB, err := openLibrary(ctx, *db)
	if err != nil {
		return err
	}
	defer closeDB()
	en, err := lib.Add(ctx, *word, imageURL)
	if err != nil {
		return err
	}
	log.Info().Str("id", en.ID).Str("text", en.Text).Msg("added word")
	return nil
}

func runSuggest(ctx context.Context, e env, args []string) error {
	fs := flag.NewFlagSet("suggest", flag.ContinueOnError)
	db := fs.String("db", e.DBPath, "SQLite database for custom words")
	save := fs.Bool("save", false, "add the suggestion to the word list")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if e.GeminiKey == "" {
		return fmt.Errorf("suggest: GEMINI_API_KEY is not set")
	}
	lib, closeDB, err := openLibrary(ctx, *db)
	if err != nil {
		return err
	}
	defer closeDB()

	exclude, err := lib.Texts(ctx)
	if err != nil {
		return err
	}
	g, err := wordgen.NewGemini(ctx, e.GeminiKey, e.Model)
	if err != nil {
		return err
	}
	en, err := g.Suggest(ctx, exclude)
	if err != nil {
		return err
	}
	fmt.Printf("%s\t%s\n", en.Text, en.Category)
	if *save {
		added, err := lib.Add(ctx, en.Text, "")
		if err != nil {
			return err
		}
		log.Info().Str("id", added.ID).Str("text", added.Text).Msg("saved suggestion")
	}
	return nil
}
