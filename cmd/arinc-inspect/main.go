// Command arinc-inspect is a tool for decoding ARINC 429 words and viewing
// capture files.
//
// Usage:
//
//	arinc-inspect <command> [flags] [args]
//
// Commands:
//
//	decode   Decode words given as hex arguments
//	view     View a capture file in human-readable format
//	repl     Decode words interactively
//
// Examples:
//
//	# Decode a word: label, parity verdict
//	arinc-inspect decode 0x10000056
//
//	# Decode a word delivered by a label-swapped adapter, repairing parity
//	arinc-inspect decode -swapped -repair 0x22443300
//
//	# View only received words that failed parity
//	arinc-inspect view -direction rx -bad-parity bus.wlog
//
//	# Interactive prompt, capturing every decoded word
//	arinc-inspect repl -log bus.wlog
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/arinc-protocol/arinc429-go/cmd/arinc-inspect/commands"
	"github.com/arinc-protocol/arinc429-go/pkg/log"
)

const usage = `arinc-inspect - ARINC 429 word and capture-file inspector

Usage:
  arinc-inspect <command> [flags] [args]

Commands:
  decode   Decode words given as hex arguments
  view     View a capture file in human-readable format
  repl     Decode words interactively

Use "arinc-inspect <command> -help" for more information about a command.
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}

	cmd := os.Args[1]
	args := os.Args[2:]

	switch cmd {
	case "decode":
		runDecode(args)
	case "view":
		runView(args)
	case "repl":
		runRepl(args)
	case "-h", "-help", "--help", "help":
		fmt.Print(usage)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", cmd)
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}
}

func runDecode(args []string) {
	fs := flag.NewFlagSet("decode", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `arinc-inspect decode - Decode words given as hex arguments

Usage:
  arinc-inspect decode [flags] <hexword>...

Flags:
`)
		fs.PrintDefaults()
	}

	swapped := fs.Bool("swapped", false, "Treat input as label-swapped adapter words")
	repair := fs.Bool("repair", false, "Show the parity-corrected word for failing input")

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Error: at least one hex word required")
		fs.Usage()
		os.Exit(1)
	}

	opts := commands.DecodeOptions{Swapped: *swapped, Repair: *repair}
	if err := commands.DecodeWords(os.Stdout, fs.Args(), opts); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runView(args []string) {
	fs := flag.NewFlagSet("view", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `arinc-inspect view - View a capture file in human-readable format

Usage:
  arinc-inspect view [flags] <file.wlog>

Flags:
`)
		fs.PrintDefaults()
	}

	channel := fs.String("channel", "", "Filter by channel name")
	direction := fs.String("direction", "", "Filter by direction (rx, tx)")
	session := fs.String("session", "", "Filter by capture session ID")
	badParity := fs.Bool("bad-parity", false, "Show only words that failed the parity check")

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Error: capture file path required")
		fs.Usage()
		os.Exit(1)
	}

	filter := log.Filter{
		SessionID:     *session,
		Channel:       *channel,
		BadParityOnly: *badParity,
	}
	if *direction != "" {
		d, ok := log.ParseDirection(*direction)
		if !ok {
			fmt.Fprintf(os.Stderr, "Error: invalid direction %q (expected rx or tx)\n", *direction)
			os.Exit(1)
		}
		filter.Direction = &d
	}

	count, err := commands.View(os.Stdout, fs.Arg(0), filter)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("%d events\n", count)
}

func runRepl(args []string) {
	fs := flag.NewFlagSet("repl", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `arinc-inspect repl - Decode words interactively

Usage:
  arinc-inspect repl [flags]

Flags:
`)
		fs.PrintDefaults()
	}

	swapped := fs.Bool("swapped", false, "Treat input as label-swapped adapter words")
	logPath := fs.String("log", "", "Append decoded words to this capture file")

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	opts := commands.ReplOptions{Swapped: *swapped}
	if *logPath != "" {
		logger, err := log.NewFileLogger(*logPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer logger.Close()
		opts.Logger = logger
	}

	if err := commands.Repl(opts); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
