// Command ordervox runs the voice utterance resolution engine from the
// command line. It stands in for the dialogue orchestrator: utterances come
// in as arguments or stdin lines, structured resolution results come out on
// stdout.
package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/ordervox/ordervox/internal/config"
	"github.com/ordervox/ordervox/internal/engine"
	"github.com/ordervox/ordervox/internal/observe"
	"github.com/ordervox/ordervox/internal/order"
	"github.com/ordervox/ordervox/internal/resolve"
)

// maxInFlight bounds how many utterances are processed concurrently when
// reading batch input.
const maxInFlight = 8

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "", "path to the YAML configuration file (optional; defaults apply without one)")
	mode := flag.String("mode", "decompose", "processing mode: decompose, resolve, correct, phone, or suggest")
	showMenu := flag.Bool("menu", false, "print the active menu and exit")
	flag.Parse()

	// ── Load configuration ────────────────────────────────────────────────
	cfg := &config.Config{}
	if *configPath != "" {
		var err error
		cfg, err = config.Load(*configPath)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				fmt.Fprintf(os.Stderr, "ordervox: config file %q not found; copy configs/example.yaml to get started\n", *configPath)
			} else {
				fmt.Fprintf(os.Stderr, "ordervox: %v\n", err)
			}
			return 1
		}
	}

	// ── Logger ────────────────────────────────────────────────────────────
	slog.SetDefault(newLogger(cfg.LogLevel))

	// ── Signal context ────────────────────────────────────────────────────
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// ── Telemetry ─────────────────────────────────────────────────────────
	shutdown, err := observe.InitProvider(ctx, observe.ProviderConfig{
		ServiceName: cfg.Telemetry.ServiceName,
	})
	if err != nil {
		slog.Error("failed to initialise telemetry", "err", err)
		return 1
	}
	defer func() {
		if err := shutdown(context.Background()); err != nil {
			slog.Warn("telemetry shutdown", "err", err)
		}
	}()

	// ── Static inputs ─────────────────────────────────────────────────────
	catalog, err := cfg.Catalog()
	if err != nil {
		slog.Error("failed to load catalog", "err", err)
		return 1
	}
	corrector, err := cfg.Corrector()
	if err != nil {
		slog.Error("failed to load correction table", "err", err)
		return 1
	}

	// ── Engine ────────────────────────────────────────────────────────────
	var opts []engine.Option
	opts = append(opts, engine.WithCorrector(corrector))
	if cfg.Engine.FuzzyThreshold > 0 {
		opts = append(opts, engine.WithThreshold(cfg.Engine.FuzzyThreshold))
	}
	if cfg.Engine.MaxQuantity > 0 {
		opts = append(opts, engine.WithMaxQuantity(cfg.Engine.MaxQuantity))
	}
	eng := engine.New(catalog, opts...)

	slog.Info("ordervox ready",
		"mode", *mode,
		"items", catalog.Len(),
		"rules", corrector.Len(),
	)

	if *showMenu {
		fmt.Print(catalog.Text())
		return 0
	}

	inputs, err := collectInputs(flag.Args())
	if err != nil {
		slog.Error("failed to read input", "err", err)
		return 1
	}
	if len(inputs) == 0 {
		fmt.Fprintln(os.Stderr, "ordervox: no input; pass utterances as arguments or on stdin")
		return 1
	}

	if err := process(ctx, eng, *mode, inputs); err != nil {
		slog.Error("processing failed", "err", err)
		return 1
	}
	return 0
}

// collectInputs returns the utterances to process: the positional arguments
// when present, otherwise all non-empty stdin lines.
func collectInputs(args []string) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}

	var inputs []string
	sc := bufio.NewScanner(os.Stdin)
	for sc.Scan() {
		if line := strings.TrimSpace(sc.Text()); line != "" {
			inputs = append(inputs, line)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read stdin: %w", err)
	}
	return inputs, nil
}

// process runs every input through the engine with bounded concurrency and
// prints the results in input order.
func process(ctx context.Context, eng *engine.Engine, mode string, inputs []string) error {
	outputs := make([]string, len(inputs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxInFlight)

	for i, input := range inputs {
		g.Go(func() error {
			out, err := processOne(ctx, eng, mode, input)
			if err != nil {
				return err
			}
			outputs[i] = out
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for _, out := range outputs {
		fmt.Println(out)
	}
	return nil
}

// processOne dispatches one input to the engine operation selected by mode
// and renders the result as a single output line.
func processOne(ctx context.Context, eng *engine.Engine, mode, input string) (string, error) {
	switch mode {
	case "correct":
		return fmt.Sprintf("%q -> %q", input, eng.Correct(ctx, input)), nil

	case "resolve":
		return renderResult(input, eng.Resolve(ctx, input)), nil

	case "decompose":
		return renderDecomposition(input, eng.Decompose(ctx, input)), nil

	case "phone":
		n := eng.NormalizePhone(ctx, input)
		if !n.Valid {
			return fmt.Sprintf("%q -> invalid phone number", input), nil
		}
		return fmt.Sprintf("%q -> %s", input, n.Digits), nil

	case "suggest":
		name, conf, ok := eng.Suggest(ctx, input)
		if !ok {
			return fmt.Sprintf("%q -> no suggestion", input), nil
		}
		return fmt.Sprintf("%q -> did you mean %q? (%.2f)", input, name, conf), nil

	default:
		return "", fmt.Errorf("unknown mode %q; valid modes: decompose, resolve, correct, phone, suggest", mode)
	}
}

func renderResult(input string, res resolve.Result) string {
	switch {
	case res.Ambiguous():
		names := make([]string, len(res.SizeGroup))
		for i, it := range res.SizeGroup {
			names[i] = it.Name
		}
		return fmt.Sprintf("%q -> which size? %s", input, strings.Join(names, " / "))
	case res.Found():
		best := res.Candidates[0]
		return fmt.Sprintf("%q -> %s (Rs. %d, %s pass, score %.2f)",
			input, best.Item.Name, best.Item.Price, best.Pass, best.Score)
	default:
		return fmt.Sprintf("%q -> not on the menu", input)
	}
}

func renderDecomposition(input string, dec order.Decomposition) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%q:\n", input)
	for _, line := range dec.Lines {
		switch line.Status {
		case order.StatusResolved:
			fmt.Fprintf(&b, "  %dx %s - Rs. %d\n", line.Quantity, line.Resolved.Item.Name, line.Subtotal)
		case order.StatusAmbiguous:
			names := make([]string, len(line.SizeGroup))
			for i, it := range line.SizeGroup {
				names[i] = it.Name
			}
			fmt.Fprintf(&b, "  %q: which size? %s\n", line.RawSegment, strings.Join(names, " / "))
		case order.StatusQuantityExceeded:
			fmt.Fprintf(&b, "  %q: %d exceeds the per-item limit\n", line.RawSegment, line.Quantity)
		default:
			fmt.Fprintf(&b, "  %q: not on the menu\n", line.RawSegment)
		}
	}
	fmt.Fprintf(&b, "  Total: Rs. %d", dec.Total)
	return b.String()
}

// newLogger builds the process-wide slog logger at the configured level.
func newLogger(level config.LogLevel) *slog.Logger {
	var l slog.Level
	switch level {
	case config.LogDebug:
		l = slog.LevelDebug
	case config.LogWarn:
		l = slog.LevelWarn
	case config.LogError:
		l = slog.LevelError
	default:
		l = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: l}))
}
