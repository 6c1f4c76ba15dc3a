// SPDX-FileCopyrightText: 2025 Shahrad Elahi
//
// SPDX-License-Identifier: MIT

package cmd

import (
	"flag"
	"fmt"
	"io"
	"runtime/debug"

	base64 "github.com/shahradelahi/go-base64"
)

const (
	name = "b64"

	usageMessage = `Usage of 'b64':
    b64 [flags...] [files...]

Encodes the given files, or stdin if none are given, to base64 on
stdout. With -decode the input is decoded instead. Stdin is processed
as a stream, files are read completely and processed in argument order.

Examples:
	echo -n 'Hello, world!' | b64
	b64 -decode encoded.txt
	b64 -wrap image/png -output logo.url logo.png

All b64 flags can also be provided via environment variable B64_ARGS:
	B64_ARGS="-alphabet=url -nopad" b64 input.bin
`
)

type flags struct {
	flagSet *flag.FlagSet

	inputs   []string
	decode   bool
	alphabet base64.Alphabet
	noPad    bool
	wrapMIME string
	unwrap   bool
	validate bool
	output   string
	debug    bool
	version  bool
}

func newFlags(output io.Writer) *flags {
	flags := &flags{
		alphabet: base64.AlphabetStd,
	}

	flags.initFlagset(output)

	return flags
}

func (f *flags) initFlagset(output io.Writer) {
	flagSet := flag.NewFlagSet(name, flag.ContinueOnError)
	flagSet.SetOutput(output)
	flagSet.Usage = f.usage

	flagSet.BoolVar(
		&f.decode,
		"decode",
		f.decode,
		"decode input instead of encoding it",
	)

	flagSet.TextVar(
		&f.alphabet,
		"alphabet",
		&f.alphabet,
		"alphabet to use: std, url",
	)

	flagSet.BoolVar(
		&f.noPad,
		"nopad",
		f.noPad,
		"omit padding characters from encoded output",
	)

	flagSet.StringVar(
		&f.wrapMIME,
		"wrap",
		f.wrapMIME,
		"wrap encoded output into a data URL with the given MIME type",
	)

	flagSet.BoolVar(
		&f.unwrap,
		"unwrap",
		f.unwrap,
		"parse input as a data URL and print the decoded payload",
	)

	flagSet.BoolVar(
		&f.validate,
		"validate",
		f.validate,
		"check that input matches the base64 grammar instead of "+
			"decoding. Exits non-zero on the first invalid input.",
	)

	flagSet.StringVar(
		&f.output,
		"output",
		f.output,
		"write output to the given file instead of stdout",
	)

	flagSet.BoolVar(
		&f.debug,
		"debug",
		f.debug,
		"enable debug output",
	)

	flagSet.BoolVar(
		&f.version,
		"version",
		f.version,
		"show version and exit",
	)

	f.flagSet = flagSet
}

func (f *flags) parseArgs(args []string) error {
	err := f.flagSet.Parse(args)
	if err != nil {
		return &ParseArgsError{msg: "flag parse", err: err}
	}

	// With version flag, just print the version and exit. Using
	// [flag.ErrHelp] the main binary is supposed to return with a non
	// error exit code.
	if f.version {
		err := f.printVersionInformation()
		return &ParseArgsError{msg: "version requested", err: err}
	}

	if f.wrapMIME != "" && f.decode {
		return f.fail("-wrap conflicts with -decode", nil)
	}

	if f.wrapMIME != "" && f.unwrap {
		return f.fail("-wrap conflicts with -unwrap", nil)
	}

	if f.validate && f.unwrap {
		return f.fail("-validate conflicts with -unwrap", nil)
	}

	// All positional arguments are input files. Without any, stdin is
	// processed.
	f.inputs = f.flagSet.Args()

	return nil
}

// options returns the codec options the flags select.
func (f *flags) options() base64.Options {
	opts := f.alphabet.Options()
	opts.OmitPadding = f.noPad

	return opts
}

// fail fails like flag does. It prints the error first and then usage.
func (f *flags) fail(msg string, err error) error {
	err = &ParseArgsError{msg: msg, err: err}
	fmt.Fprintln(f.flagSet.Output(), err.Error())

	f.flagSet.Usage()

	return err
}

func (f *flags) printVersionInformation() error {
	buildInfo, ok := debug.ReadBuildInfo()
	if !ok {
		return ErrReadBuildInfo
	}

	fmt.Fprintf(f.flagSet.Output(), "Version: %s\n", buildInfo.Main.Version)

	return flag.ErrHelp
}

func (f *flags) usage() {
	fmt.Fprint(f.flagSet.Output(), usageMessage)
	fmt.Fprintln(f.flagSet.Output(), "\nFlags:")
	f.flagSet.PrintDefaults()
}
