package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"

	"github.com/arinc-protocol/arinc429-go/pkg/log"
)

// ReplOptions configures the interactive prompt.
type ReplOptions struct {
	// Swapped starts the prompt in label-swapped input mode.
	Swapped bool

	// Logger, when non-nil, captures every decoded word as an rx event.
	Logger log.Logger
}

const replHelp = `Enter a 32-bit word in hex (e.g. 0x10000056) to decode it.

Commands:
  swap on|off   Treat input as label-swapped adapter words
  repair on|off Show the parity-corrected word for failing input
  help          Show this help
  exit          Leave the prompt
`

// Repl runs the interactive word prompt until EOF or an exit command.
func Repl(opts ReplOptions) error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "arinc> ",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return fmt.Errorf("failed to create readline: %w", err)
	}
	defer rl.Close()

	session := log.NewSession(opts.Logger)
	out := rl.Stdout()
	decode := DecodeOptions{Swapped: opts.Swapped}

	for {
		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			continue
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		switch {
		case line == "exit" || line == "quit":
			return nil
		case line == "help":
			fmt.Fprint(out, replHelp)
		case strings.HasPrefix(line, "swap "):
			decode.Swapped = strings.TrimSpace(strings.TrimPrefix(line, "swap ")) == "on"
			fmt.Fprintf(out, "label-swapped input: %v\n", decode.Swapped)
		case strings.HasPrefix(line, "repair "):
			decode.Repair = strings.TrimSpace(strings.TrimPrefix(line, "repair ")) == "on"
			fmt.Fprintf(out, "repair output: %v\n", decode.Repair)
		default:
			handleWord(out, session, line, decode)
		}
	}
}

// handleWord decodes one line of hex input and records it in the session.
func handleWord(out io.Writer, session *log.Session, line string, opts DecodeOptions) {
	raw, err := ParseWord(line)
	if err != nil {
		fmt.Fprintf(out, "error: %v (try \"help\")\n", err)
		return
	}

	msg := decodeRaw(raw, opts.Swapped)
	fmt.Fprintln(out, FormatWord(msg, opts.Repair))
	session.Record("repl", log.DirectionRx, msg)
}
