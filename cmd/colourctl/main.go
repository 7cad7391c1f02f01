package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/adammck/colourstore/pkg/colour"
	"github.com/adammck/colourstore/pkg/store"
)

func main() {
	w := flag.CommandLine.Output()

	flag.Usage = func() {
		fmt.Fprintf(w, "Usage: %s [-v] <action> [<args>] [<action> [<args>]]...\n", os.Args[0])
		fmt.Fprintf(w, "\n")
		fmt.Fprintf(w, "Actions run in order against a single empty store.\n")
		fmt.Fprintf(w, "Each action and its args must be one of:\n")
		fmt.Fprintf(w, "  - store <range> <colour>\n")
		fmt.Fprintf(w, "  - get <index>\n")
		fmt.Fprintf(w, "  - dump\n")
		fmt.Fprintf(w, "\n")
		fmt.Fprintf(w, "Flags:\n")
		flag.PrintDefaults()
	}

	verbose := flag.Bool("v", false, "log each action before running it")
	flag.Parse()

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(1)
	}

	// Replace default logger.
	log.Default().SetOutput(os.Stderr)
	log.Default().SetPrefix("")
	log.Default().SetFlags(0)
	if !*verbose {
		log.Default().SetOutput(io.Discard)
	}

	err := run(flag.Args(), os.Stdout)
	if err != nil {
		exit(err)
	}
}

func exit(err error) {
	fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	os.Exit(1)
}

var errUsage = errors.New("usage")

// run executes every action in args against a new store, writing results to
// out. It stops at the first action which fails.
func run(args []string, out io.Writer) error {
	s := store.New()

	for len(args) > 0 {
		action := args[0]

		switch action {
		case "store":
			if len(args) < 3 {
				return fmt.Errorf("%w: store <range> <colour>", errUsage)
			}

			c, err := colour.Parse(args[2])
			if err != nil {
				return err
			}

			log.Printf("store %s %s", args[1], c)
			err = s.Store(args[1], c)
			if err != nil {
				return fmt.Errorf("store %s: %w", args[1], err)
			}

			args = args[3:]

		case "get":
			if len(args) < 2 {
				return fmt.Errorf("%w: get <index>", errUsage)
			}

			log.Printf("get %s", args[1])
			c, err := s.Get(args[1])
			if err != nil {
				return fmt.Errorf("get %s: %w", args[1], err)
			}

			fmt.Fprintf(out, "%s\n", c)
			args = args[2:]

		case "dump":
			log.Printf("dump")
			err := dump(s, out)
			if err != nil {
				return err
			}

			args = args[1:]

		default:
			return fmt.Errorf("%w: unknown action: %s", errUsage, action)
		}
	}

	return nil
}

// dump writes the index and colour of every slot which isn't Grey.
func dump(s *store.Store, out io.Writer) error {
	for i := 0; i < store.Capacity; i++ {
		c, err := s.Get(fmt.Sprintf("%02d", i))
		if err != nil {
			return err
		}
		if c == colour.Grey {
			continue
		}
		fmt.Fprintf(out, "%02d %s\n", i, c)
	}

	return nil
}
