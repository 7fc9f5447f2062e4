package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/cognicore/factual/pkg/factual"
	"github.com/cognicore/factual/pkg/factual/extract"
	"github.com/cognicore/factual/pkg/factual/store"
	"github.com/cognicore/factual/pkg/factual/store/memstore"
	storesqlite "github.com/cognicore/factual/pkg/factual/store/sqlite"
)

func main() {
	var (
		input     = flag.String("input", "", "Path to input file, one sentence or question per line (required)")
		htmlInput = flag.Bool("html", false, "Treat the input as HTML and extract its visible text first")
		backend   = flag.String("backend", "memory", "Fact store backend: memory or sqlite")
		sqliteDSN = flag.String("sqlite-dsn", "", "SQLite DSN for --backend=sqlite (in-memory when empty)")
	)
	flag.Parse()

	if *input == "" {
		log.Fatal("--input is required")
	}

	ctx := context.Background()

	data, err := os.ReadFile(*input)
	if err != nil {
		log.Fatalf("read input: %v", err)
	}

	text := string(data)
	if *htmlInput || strings.HasSuffix(*input, ".html") || strings.HasSuffix(*input, ".htm") {
		text = extract.Text(text)
	}

	st, err := openStore(ctx, *backend, *sqliteDSN)
	if err != nil {
		log.Fatalf("open store: %v", err)
	}

	engine := factual.New(factual.Options{Store: st})
	defer engine.Close()

	var told, parsed, asked int
	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		if isQuestion(line) {
			ans, err := engine.Ask(ctx, line)
			if err != nil {
				log.Fatalf("ask %q: %v", line, err)
			}
			asked++
			fmt.Printf("\nQuery: %q\n%s\n", line, ans.Render())
			continue
		}

		res, err := engine.Tell(ctx, line)
		if err != nil {
			log.Fatalf("tell %q: %v", line, err)
		}
		told++
		if res.Parsed {
			parsed++
			fmt.Printf("Added fact: %s\n", res.Fact)
		} else {
			log.Printf("could not parse: %q", line)
		}
	}

	dump, err := engine.Dump(ctx)
	if err != nil {
		log.Fatalf("dump: %v", err)
	}
	fmt.Println()
	fmt.Print(dump)

	log.Printf("done: %d statements (%d parsed), %d questions", told, parsed, asked)
}

// isQuestion routes a line to the question interpreter when it ends with
// a question mark or opens with one of the supported question words.
func isQuestion(line string) bool {
	if strings.HasSuffix(line, "?") {
		return true
	}
	folded := strings.ToLower(line)
	for _, prefix := range []string{"who ", "what ", "where ", "is "} {
		if strings.HasPrefix(folded, prefix) {
			return true
		}
	}
	return false
}

func openStore(ctx context.Context, backend, dsn string) (store.Store, error) {
	switch backend {
	case "memory":
		return memstore.New(), nil
	case "sqlite":
		return storesqlite.Open(ctx, dsn)
	default:
		return nil, fmt.Errorf("unknown backend %q (want memory or sqlite)", backend)
	}
}
