// Command jsonfmt is a thin CLI wrapper around the formatter: it reads
// file arguments or standard input, prints formatted output (or rewrites
// the file in place with -i), and returns a non-zero exit code when the
// core reports a FormattingError.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/google/uuid"

	"github.com/simon-lentz/jsonfmt/ferr"
	"github.com/simon-lentz/jsonfmt/jsonfmt"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout))
}

func run(args []string, stdin io.Reader, stdout io.Writer) int {
	fs := flag.NewFlagSet("jsonfmt", flag.ContinueOnError)
	inPlace := fs.Bool("i", false, "rewrite each file argument in place")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	log := slog.New(slog.NewTextHandler(os.Stderr, nil)).With("correlation_id", uuid.NewString())

	files := fs.Args()
	if len(files) == 0 {
		data, err := io.ReadAll(stdin)
		if err != nil {
			log.Error("read stdin", "error", err)
			return 1
		}
		out, err := jsonfmt.Reformat(data)
		if err != nil {
			return reportFormatError(log, "<stdin>", err)
		}
		fmt.Fprint(stdout, out)
		return 0
	}

	code := 0
	for _, path := range files {
		if !formatFile(log, path, *inPlace, stdout) {
			code = 1
		}
	}
	return code
}

func formatFile(log *slog.Logger, path string, inPlace bool, stdout io.Writer) bool {
	data, err := os.ReadFile(path)
	if err != nil {
		log.Error("read file", "path", path, "error", err)
		return false
	}
	out, err := jsonfmt.Reformat(data)
	if err != nil {
		reportFormatError(log, path, err)
		return false
	}
	if inPlace {
		if err := os.WriteFile(path, []byte(out), 0o644); err != nil {
			log.Error("write file", "path", path, "error", err)
			return false
		}
		return true
	}
	fmt.Fprint(stdout, out)
	return true
}

func reportFormatError(log *slog.Logger, path string, err error) int {
	var fe *ferr.Error
	if ok := asFormattingError(err, &fe); ok {
		attrs := []any{"path", path, "code", fe.Code().String()}
		if pos, has := fe.Position(); has {
			attrs = append(attrs, "position", pos.String())
		}
		log.ErrorContext(context.Background(), fe.Error(), attrs...)
		return 1
	}
	log.Error(err.Error(), "path", path)
	return 1
}

func asFormattingError(err error, target **ferr.Error) bool {
	fe, ok := err.(*ferr.Error)
	if ok {
		*target = fe
	}
	return ok
}
