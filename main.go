package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"

	"golang.org/x/time/rate"

	"line_tools/config"
	"line_tools/count"
	"line_tools/palindrome"
	"line_tools/phone"
	"line_tools/temperature"
	"line_tools/titles"
)

func main() {
	cfg := config.Load(config.SettingsFile())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr, cfg)
	stop()
	os.Exit(code)
}

// run dispatches a subcommand and returns the process exit code.
func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer, cfg *config.AppConfig) int {
	if len(args) == 0 {
		printUsage(stderr)
		return 2
	}
	if cfg.Debug {
		log.Printf("debug: command=%s color=%s rate_limit=%g burst_limit=%d", args[0], cfg.ColorOutput, cfg.RateLimit, cfg.BurstLimit)
	}
	p := newPainter(cfg.ColorOutput)

	var err error
	switch args[0] {
	case "phone":
		return runPhone(args[1:], stdout, stderr, p)
	case "count":
		return runCount(ctx, args[1:], stdout, stderr, cfg)
	case "palindrome":
		err = palindrome.Run(stdin, stdout)
	case "temp":
		err = temperature.Run(stdin, stdout)
	case "search":
		err = titles.Run(stdin, stdout, p)
	case "help", "-h", "--help":
		printUsage(stdout)
		return 0
	default:
		fmt.Fprintf(stderr, "Unknown command %q\n\n", args[0])
		printUsage(stderr)
		return 2
	}
	if err != nil {
		fmt.Fprintf(stderr, "[ERROR] %v\n", err)
		return 1
	}
	return 0
}

func runPhone(args []string, stdout, stderr io.Writer, p painter) int {
	if len(args) != 1 {
		fmt.Fprintf(stderr, "[ERROR] Expected one argument got %d.\n", len(args))
		return 1
	}

	src, err := phone.Open(args[0])
	if err != nil {
		fmt.Fprintf(stderr, "[ERROR] %v\n", err)
		return 1
	}
	defer src.Close()

	rep, err := phone.Check(src)
	if err != nil {
		fmt.Fprintf(stderr, "[ERROR] %v\n", err)
		return 1
	}
	phone.Render(stdout, stderr, rep, p)
	return 0
}

func runCount(ctx context.Context, args []string, stdout, stderr io.Writer, cfg *config.AppConfig) int {
	fs := flag.NewFlagSet("count", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintln(stderr, "Usage: line_tools count [-c|--chars] [-w|--words] [-l|--lines] PATH")
		fs.PrintDefaults()
	}
	var opts count.Options
	fs.BoolVar(&opts.Chars, "c", false, "Get the character count")
	fs.BoolVar(&opts.Chars, "chars", false, "Get the character count")
	fs.BoolVar(&opts.Words, "w", false, "Get the word count")
	fs.BoolVar(&opts.Words, "words", false, "Get the word count")
	fs.BoolVar(&opts.Lines, "l", false, "Get the line count")
	fs.BoolVar(&opts.Lines, "lines", false, "Get the line count")

	// flag stops at the first positional argument; resume after it so
	// flags may follow the path.
	var paths []string
	for {
		if err := fs.Parse(args); err != nil {
			if errors.Is(err, flag.ErrHelp) {
				return 0
			}
			return 2
		}
		if fs.NArg() == 0 {
			break
		}
		paths = append(paths, fs.Arg(0))
		args = fs.Args()[1:]
	}
	if len(paths) != 1 {
		fs.Usage()
		return 2
	}

	c := &count.Counter{
		Out:      stdout,
		Opts:     opts.OrAll(),
		Throttle: NewRateLimiter(rate.Limit(cfg.RateLimit), cfg.BurstLimit),
	}
	if err := c.Run(ctx, paths[0]); err != nil {
		fmt.Fprintf(stderr, "[ERROR] %v\n", err)
		return 1
	}
	return 0
}

func printUsage(w io.Writer) {
	fmt.Fprint(w, `Usage:
  line_tools <command> [arguments]

Commands:
  phone FILE                 validate the phone numbers listed in FILE
  count [-c] [-w] [-l] PATH  count characters, words and lines in a file or directory
  palindrome                 check phrases and their words for palindromes
  temp                       convert between Celsius, Fahrenheit and Kelvin
  search                     count search terms across the movie title list

Settings are read from settings.env (or $LINE_TOOLS_SETTINGS).
`)
}
