// SPDX-FileCopyrightText: 2025 Shahrad Elahi
//
// SPDX-License-Identifier: MIT

package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	base64 "github.com/shahradelahi/go-base64"
	"golang.org/x/sync/errgroup"
)

// IO provides input and output details for the command.
type IO struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// Run is the main entry point for the CLI command.
func Run(ctx context.Context, args []string, cfg IO) int {
	flags := newFlags(cfg.Stderr)

	err := flags.parseArgs(MergedArgs(args))
	if err != nil {
		return handleParseArgsError(err)
	}

	setupLogging(cfg.Stderr, flags.debug)

	err = run(ctx, flags, cfg)
	if err != nil {
		slog.Error(err.Error())
		return 1
	}

	return 0
}

func handleParseArgsError(err error) int {
	// [flag.ErrHelp] is returned when help or version is requested. So
	// exit without error in this case.
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}

	// parseArgs already prints errors, so we just exit without logging
	// them again.
	if !errors.Is(err, &ParseArgsError{}) {
		slog.Error(err.Error())
	}

	return 1
}

func run(ctx context.Context, flags *flags, cfg IO) error {
	out := cfg.Stdout

	if flags.output != "" {
		file, err := os.Create(flags.output)
		if err != nil {
			return fmt.Errorf("create output: %w", err)
		}
		defer file.Close()

		out = file
	}

	if len(flags.inputs) == 0 {
		return runStdin(flags, cfg.Stdin, out)
	}

	return runFiles(ctx, flags, out)
}

// runStdin processes stdin. Plain encoding and decoding is streamed
// through the chunked codecs, so input of any size passes through in
// constant memory. The data URL and validate modes need the complete
// input and read it up front.
func runStdin(flags *flags, in io.Reader, out io.Writer) error {
	switch {
	case flags.validate, flags.unwrap, flags.wrapMIME != "":
		data, err := io.ReadAll(in)
		if err != nil {
			return fmt.Errorf("read stdin: %w", err)
		}

		result, err := process(flags, "stdin", data)
		if err != nil {
			return err
		}

		_, err = out.Write(result)
		if err != nil {
			return fmt.Errorf("write: %w", err)
		}

		return nil
	case flags.decode:
		_, err := io.Copy(out, base64.NewReader(in, flags.options()))
		if err != nil {
			return fmt.Errorf("decode stdin: %w", err)
		}

		return nil
	default:
		encoder := base64.NewWriter(out, flags.options())

		_, err := io.Copy(encoder, in)
		if err != nil {
			return fmt.Errorf("encode stdin: %w", err)
		}

		err = encoder.Close()
		if err != nil {
			return fmt.Errorf("encode stdin: %w", err)
		}

		_, err = fmt.Fprintln(out)
		if err != nil {
			return fmt.Errorf("write: %w", err)
		}

		return nil
	}
}

// runFiles processes the input files concurrently and emits the
// results in argument order.
func runFiles(ctx context.Context, flags *flags, out io.Writer) error {
	results := make([][]byte, len(flags.inputs))

	eg, ctx := errgroup.WithContext(ctx)

	for idx, path := range flags.inputs {
		idx, path := idx, path

		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err //nolint:wrapcheck
			}

			data, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("read input: %w", err)
			}

			slog.Debug("Processing input",
				slog.String("path", path),
				slog.Int("size", len(data)))

			results[idx], err = process(flags, path, data)

			return err
		})
	}

	err := eg.Wait()
	if err != nil {
		return err
	}

	for _, result := range results {
		_, err := out.Write(result)
		if err != nil {
			return fmt.Errorf("write: %w", err)
		}
	}

	return nil
}

// process transforms a single complete input per the selected mode.
func process(flags *flags, name string, data []byte) ([]byte, error) {
	opts := flags.options()

	switch {
	case flags.validate:
		if !base64.IsValid(strings.TrimSpace(string(data)), opts) {
			return nil, fmt.Errorf("%s: %w", name, ErrNotBase64)
		}

		return nil, nil
	case flags.unwrap:
		dataURL, err := base64.FromDataURL(strings.TrimSpace(string(data)))
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}

		return []byte(dataURL.Data), nil
	case flags.wrapMIME != "":
		return []byte(base64.ToDataURL(string(data), flags.wrapMIME, opts) + "\n"), nil
	case flags.decode:
		return base64.DecodeBytes(string(data), opts), nil
	default:
		return []byte(base64.EncodeBytes(data, opts) + "\n"), nil
	}
}
