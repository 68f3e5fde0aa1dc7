package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

const helpText = `Available commands:
  (l)ist | refresh    reload and show the file list
  upload <path>       upload a local file
  show <id>           preview a file
  delete <id>         delete a file (asks for confirmation)
  download <id>       save a file into the download directory
  url <id>            print view and download links
  status              show connectivity, database health and session state
  stats               show API request counters
  exit | quit         leave the program`

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	List(ctx context.Context) error
	Upload(ctx context.Context, path string) error
	Show(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
	Download(ctx context.Context, id string) error
	URL(id string) error
	Status(ctx context.Context) error
	Stats() error
}

// runREPL reads one command per line from r and dispatches it to a. Prompts
// and usage messages go to out. The loop exits on EOF or when the user types
// "exit" or "quit".
//
// Handlers report their own failures to the user, so errors they return are
// ignored here.
func runREPL(ctx context.Context, a execIface, statusFn func() string, r *bufio.Reader, out io.Writer) {
	for {
		fmt.Fprintf(out, "gophdrop %s> ", statusFn())

		line, err := r.ReadString('\n')
		if err != nil && line == "" {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			fmt.Fprintln(out, helpText)

		case "l", "list", "refresh":
			_ = a.List(ctx)

		case "status":
			_ = a.Status(ctx)

		case "stats":
			_ = a.Stats()

		case "upload":
			if len(args) == 0 {
				fmt.Fprintln(out, "Usage: upload <path>")
				continue
			}
			_ = a.Upload(ctx, strings.Join(args, " "))

		case "show", "delete", "download", "url":
			if len(args) == 0 {
				fmt.Fprintf(out, "Usage: %s <id>\n", cmd)
				continue
			}
			id := args[0]
			switch cmd {
			case "show":
				_ = a.Show(ctx, id)
			case "delete":
				_ = a.Delete(ctx, id)
			case "download":
				_ = a.Download(ctx, id)
			case "url":
				_ = a.URL(id)
			}

		case "exit", "quit":
			fmt.Fprintln(out, "Bye!")
			return

		default:
			fmt.Fprintln(out, "Unknown command:", cmd)
		}
	}
}
