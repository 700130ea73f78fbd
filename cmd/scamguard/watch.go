package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ersonp/scamguard/internal/application/handlers"
	"github.com/ersonp/scamguard/internal/domain/entities"
)

func newWatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Interactive mode scanning each line as it is entered",
		Long:  "Reads messages line by line from stdin, scans and records each one, and prints its verdict.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDeps(cmd.Context(), func(deps *Deps) error {
				s := &watchState{
					scan: deps.ScanHandler,
					in:   cmd.InOrStdin(),
					out:  cmd.OutOrStdout(),
				}
				return s.runInputLoop(cmd.Context())
			})
		},
	}
}

type watchState struct {
	scan    *handlers.ScanHandler
	in      io.Reader
	out     io.Writer
	scanned int
}

func (s *watchState) runInputLoop(ctx context.Context) error {
	fmt.Fprintln(s.out, "scamguard interactive mode. Paste a message and press Enter to scan it.")
	fmt.Fprintln(s.out, "Commands: 'help' for help, 'quit' to exit")
	fmt.Fprintln(s.out)

	scanner := bufio.NewScanner(s.in)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for {
		if ctx.Err() != nil {
			return nil
		}

		fmt.Fprint(s.out, "> ")
		if !scanner.Scan() {
			break
		}

		line := scanner.Text()
		switch strings.ToLower(strings.TrimSpace(line)) {
		case "quit", "exit":
			s.sayGoodbye()
			return nil
		case "help":
			s.showHelp()
			continue
		case "":
			continue
		}

		s.processInput(ctx, line)
	}

	fmt.Fprintln(s.out)
	s.sayGoodbye()
	return scanner.Err()
}

func (s *watchState) processInput(ctx context.Context, text string) {
	rec, err := s.scan.Handle(ctx, text)
	if err != nil {
		if !errors.Is(err, entities.ErrInvalidInput) {
			fmt.Fprintf(s.out, "Error: %v\n", err)
		}
		return
	}
	s.scanned++
	displayRecordLine(s.out, rec)
	if rec.Verdict != entities.VerdictSafe {
		fmt.Fprintf(s.out, "  %s\n", rec.Explanation)
	}
}

func (s *watchState) showHelp() {
	fmt.Fprintln(s.out, "Commands:")
	fmt.Fprintln(s.out, "  quit    - Exit interactive mode")
	fmt.Fprintln(s.out, "  help    - Show this help")
	fmt.Fprintln(s.out)
	fmt.Fprintln(s.out, "Any other line is scanned and recorded in history.")
}

func (s *watchState) sayGoodbye() {
	fmt.Fprintf(s.out, "Scanned %d messages. Goodbye!\n", s.scanned)
}
