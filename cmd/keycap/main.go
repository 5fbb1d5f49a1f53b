package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"github.com/urfave/cli/v3"

	"github.com/BrandonKowalski/keycap/pkg/keycap"
	"github.com/BrandonKowalski/keycap/pkg/keycap/config"
	"github.com/BrandonKowalski/keycap/pkg/keycap/constants"
)

var version = "dev"

const exitCancelled = 2

func main() {
	if err := newCommand().Run(context.Background(), os.Args); err != nil {
		if exitErr, ok := err.(cli.ExitCoder); ok {
			os.Exit(exitErr.ExitCode())
		}
		fmt.Fprintf(os.Stderr, "keycap: %v\n", err)
		os.Exit(1)
	}
}

func newCommand() *cli.Command {
	return &cli.Command{
		Name:    "keycap",
		Usage:   "type text on an on-screen keyboard",
		Version: version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "TOML config file",
				Sources: cli.EnvVars(constants.ConfigPathEnvVar),
			},
			&cli.StringFlag{
				Name:    "text",
				Aliases: []string{"t"},
				Usage:   "initial text, overrides initial_text",
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "write the confirmed text to this file instead of stdout",
			},
		},
		Action: run,
	}
}

func run(ctx context.Context, cmd *cli.Command) error {
	cfg, err := config.Load(cmd.String("config"))
	if err != nil {
		return err
	}
	if cmd.IsSet("text") {
		cfg.InitialText = cmd.String("text")
	}

	options, err := keycap.OptionsFromConfig(cfg)
	if err != nil {
		return err
	}
	if err := keycap.Init(options); err != nil {
		return err
	}
	defer keycap.Close()

	logger := keycap.GetLogger()

	result, err := keycap.Keyboard(cfg.InitialText)
	if errors.Is(err, keycap.ErrCancelled) {
		logger.Info("Keyboard cancelled")
		return cli.Exit("", exitCancelled)
	}
	if err != nil {
		return err
	}

	logger.Info("Keyboard confirmed", "length", utf8.RuneCountInString(result.Text))
	return writeResult(cmd.String("output"), result.Text, os.Stdout)
}

// writeResult writes text to path, or to stdout when path is empty.
func writeResult(path, text string, stdout io.Writer) error {
	if path == "" {
		_, err := fmt.Fprintln(stdout, text)
		return err
	}
	if err := os.WriteFile(path, []byte(text), 0644); err != nil {
		return fmt.Errorf("failed to write result: %w", err)
	}
	return nil
}
