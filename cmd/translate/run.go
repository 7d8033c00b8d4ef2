package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/rbmt-backend/internal/app"
	"github.com/heartmarshall/rbmt-backend/internal/config"
	"github.com/heartmarshall/rbmt-backend/internal/domain"
	"github.com/heartmarshall/rbmt-backend/internal/lexicon"
	"github.com/heartmarshall/rbmt-backend/internal/mt"
)

type debugLine struct {
	TranslatedText string         `json:"translated_text"`
	Matches        []domain.Match `json:"matches"`
}

func version() string { return app.BuildVersion() }

func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.LoadFrom(path, true)
	}
	return config.Load()
}

func run(cmd *cobra.Command, f *flags, args []string) error {
	cfg, err := loadConfig(f.configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if f.lexicon != "" {
		cfg.Lexicon.Path = f.lexicon
	}

	logger := app.NewLogger(cfg.Log)

	store := lexicon.Load(cfg.Lexicon.Path,
		lexicon.WithColumns(cfg.Lexicon.SourceColumn, cfg.Lexicon.TargetColumn),
		lexicon.WithDelimiter(cfg.Lexicon.Comma),
		lexicon.WithLogger(logger),
	)
	lex := store.Snapshot()

	w := bufio.NewWriter(cmd.OutOrStdout())

	emit := func(line string) error {
		out, matches := mt.TranslateText(line, lex, f.debug)
		if !f.debug {
			_, err := fmt.Fprintln(w, out)
			return err
		}
		if matches == nil {
			matches = []domain.Match{}
		}
		return json.NewEncoder(w).Encode(debugLine{TranslatedText: out, Matches: matches})
	}

	switch {
	case f.text != "":
		err = emit(f.text)
	case len(args) > 0:
		err = emit(strings.Join(args, " "))
	default:
		err = translateLines(cmd.InOrStdin(), emit)
	}
	if err != nil {
		return err
	}

	if err := w.Flush(); err != nil {
		return fmt.Errorf("write: %w", err)
	}
	return nil
}

func translateLines(r io.Reader, emit func(string) error) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	for sc.Scan() {
		if err := emit(sc.Text()); err != nil {
			return fmt.Errorf("write: %w", err)
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("read stdin: %w", err)
	}
	return nil
}
