// Package main is the interactive driver for the tickloop demo. It reads
// menu choices from stdin, registers the matching handler, dispatches an
// event, and advances the loop one tick per iteration.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/tickloop/tickloop/internal/config"
	"github.com/tickloop/tickloop/internal/handlers"
	"github.com/tickloop/tickloop/internal/loop"
	"github.com/tickloop/tickloop/internal/loop/event"
)

// drainTicks bounds how many extra ticks run at exit to surface results
// from workers that are still in flight.
const (
	drainTicks    = 50
	drainInterval = 100 * time.Millisecond
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "tickloop.toml", "path to the configuration file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to load configuration: %v\n", err)
		return 1
	}

	var newsOpts []handlers.NewsOption
	if cfg.NewsURL != "" {
		newsOpts = append(newsOpts, handlers.WithBaseURL(cfg.NewsURL))
	}
	news := handlers.NewNewsFetcher(newsOpts...)

	l := loop.New()
	scanner := bufio.NewScanner(os.Stdin)
	seq := 0

	for {
		fmt.Println("What kind of task would you like to submit to the event loop?")
		fmt.Println(" 1. Say hello")
		fmt.Println(" 2. Read the contents of a file named", cfg.HelloFile)
		fmt.Println(" 3. Fetch the latest news")
		fmt.Println(" 4. Exit")
		fmt.Print(" > ")

		choice, ok := readLine(scanner)
		if !ok || choice == "4" {
			break
		}

		fmt.Println("How would you like to execute this operation?")
		fmt.Println(" 1. Synchronously (this blocks the event loop until the operation completes)")
		fmt.Println(" 2. Asynchronously (this won't block the event loop in any way)")
		fmt.Print(" > ")

		mode, ok := readLine(scanner)
		if !ok {
			break
		}
		async := mode == "2"

		switch choice {
		case "1":
			key := eventKey("hello", &seq)
			l.On(key, handlers.Greet)
			l.Dispatch(event.New(key, "How are you doing today?", async))
		case "2":
			key := eventKey("read-file", &seq)
			l.On(key, handlers.ReadFile)
			l.Dispatch(event.New(key, cfg.HelloFile, async))
		case "3":
			key := eventKey("fetch-latest-news", &seq)
			l.On(key, news.Fetch)
			l.Dispatch(event.New(key, cfg.NewsAPIKey, async))
		default:
			fmt.Println("Unknown choice:", choice)
			continue
		}

		l.Tick()
	}

	drain(l)
	return 0
}

// readLine reads one trimmed line from the scanner, reporting false on EOF.
func readLine(scanner *bufio.Scanner) (string, bool) {
	if !scanner.Scan() {
		return "", false
	}
	return scanner.Text(), true
}

// eventKey builds a unique "<kind>-<sequence>" key and advances the
// sequence counter.
func eventKey(kind string, seq *int) string {
	key := fmt.Sprintf("%s-%d", kind, *seq)
	*seq++
	return key
}

// drain keeps ticking at exit so results from workers still in flight get
// surfaced. Ticking stops after a few consecutive quiet intervals, bounded
// overall so a stuck worker cannot hold the process open.
func drain(l *loop.Loop) {
	quiet := 0
	for i := 0; i < drainTicks; i++ {
		report := l.Tick()
		if report.Processed || report.Delivered || l.PendingLen() > 0 || l.CompletedLen() > 0 {
			quiet = 0
		} else {
			quiet++
			if quiet >= 3 {
				return
			}
		}
		time.Sleep(drainInterval)
	}
}
