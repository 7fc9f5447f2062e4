package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/cognicore/factual/pkg/factual"
	"github.com/cognicore/factual/pkg/factual/config"
	"github.com/cognicore/factual/pkg/factual/store"
	"github.com/cognicore/factual/pkg/factual/store/memstore"
	storesqlite "github.com/cognicore/factual/pkg/factual/store/sqlite"
)

func main() {
	var (
		scriptPath = flag.String("script", "", "Path to a YAML script (uses the built-in demo script when empty)")
		backend    = flag.String("backend", "memory", "Fact store backend: memory or sqlite")
		sqliteDSN  = flag.String("sqlite-dsn", "", "SQLite DSN for --backend=sqlite (in-memory when empty)")
	)
	flag.Parse()

	ctx := context.Background()

	script := config.DefaultScript()
	if *scriptPath != "" {
		loaded, err := config.LoadScript(*scriptPath)
		if err != nil {
			log.Fatalf("load script: %v", err)
		}
		script = loaded
	}

	st, err := openStore(ctx, *backend, *sqliteDSN)
	if err != nil {
		log.Fatalf("open store: %v", err)
	}

	engine := factual.New(factual.Options{Store: st})
	defer engine.Close()

	// Phase 1: ingest statements
	fmt.Println("STEP 1: Parsing natural language statements")
	fmt.Println("--------------------------------------------")
	for _, sentence := range script.Statements {
		res, err := engine.Tell(ctx, sentence)
		if err != nil {
			log.Fatalf("tell %q: %v", sentence, err)
		}
		if res.Parsed {
			fmt.Printf("Added fact: %s\n", res.Fact)
		} else {
			fmt.Printf("Could not parse sentence pattern: %q\n", sentence)
		}
	}

	// Phase 2: dump the store
	dump, err := engine.Dump(ctx)
	if err != nil {
		log.Fatalf("dump: %v", err)
	}
	fmt.Println()
	fmt.Print(dump)

	// Phase 3: answer questions
	fmt.Println()
	fmt.Println("STEP 2: Processing queries")
	fmt.Println("--------------------------------------------")
	for _, question := range script.Questions {
		ans, err := engine.Ask(ctx, question)
		if err != nil {
			log.Fatalf("ask %q: %v", question, err)
		}
		fmt.Printf("\nQuery: %q\n%s\n", question, ans.Render())
	}

	// Direct pattern queries make sense against the built-in data only.
	if *scriptPath == "" {
		fmt.Println()
		fmt.Println("STEP 3: Direct pattern queries")
		fmt.Println("--------------------------------------------")
		runDirect(ctx, engine, "parent", []string{store.Wildcard, "mary"})
		runDirect(ctx, engine, "parent", []string{"john", store.Wildcard})
		runDirect(ctx, engine, "lives_in", []string{store.Wildcard, store.Wildcard})
	}
}

func runDirect(ctx context.Context, engine *factual.Engine, predicate string, pattern []string) {
	fact := store.Fact{Predicate: predicate, Args: pattern}
	fmt.Printf("\nQuery: %s\n", fact)

	results, err := engine.Query(ctx, predicate, pattern)
	if err != nil {
		log.Fatalf("query %s: %v", fact, err)
	}
	if len(results) == 0 {
		fmt.Println("  No matches found.")
		return
	}
	for _, args := range results {
		fmt.Printf("  Result: %s\n", store.Fact{Predicate: predicate, Args: args})
	}
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
