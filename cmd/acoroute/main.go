// Command acoroute searches a wireless network for a low-cost route that
// visits every node exactly once.
//
// Usage:
//
//	acoroute [--network office.toml] [--ants 10] [--iterations 15] [--seed 42] ...
//
// Without --network the built-in four-node sample network is used.
// Settings may also come from acoroute.toml or ACOROUTE_* variables.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/antroute/aco"
	"github.com/katalvlaran/antroute/config"
	"github.com/katalvlaran/antroute/logging"
	"github.com/katalvlaran/antroute/network"
)

var (
	// errDisconnected is returned when no Hamiltonian path can exist.
	errDisconnected = errors.New("network is not connected")

	// errTooManyLeaves is returned when more than two nodes have a single link.
	errTooManyLeaves = errors.New("network has more than two single-link nodes")
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		fmt.Fprintln(os.Stderr, "acoroute:", err)
		os.Exit(1)
	}
}

// run parses args, optimizes, and prints the route to stdout. Logs go to stderr.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	fs := pflag.NewFlagSet("acoroute", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	config.RegisterFlags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := config.Load(fs)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, err := logging.New(stderr, cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return err
	}
	logger = logging.WithRunID(logger, uuid.NewString())

	spec := network.Sample()
	source := "built-in sample"
	if cfg.Network != "" {
		if spec, err = network.Load(cfg.Network); err != nil {
			return err
		}
		source = cfg.Network
	}
	g, err := network.Build(spec)
	if err != nil {
		return err
	}
	comps, err := network.Components(g)
	if err != nil {
		return err
	}
	if len(comps) != 1 {
		return fmt.Errorf("%w: %d components %v", errDisconnected, len(comps), comps)
	}
	leaves, err := network.Leaves(g)
	if err != nil {
		return err
	}
	if len(leaves) > 2 {
		return fmt.Errorf("%w: %v", errTooManyLeaves, leaves)
	}
	lb, err := network.LowerBound(g)
	if err != nil {
		return err
	}
	logger.Info().
		Str("network", source).
		Int("nodes", g.VertexCount()).
		Int("links", g.EdgeCount()).
		Bool("complete", network.Complete(g)).
		Float64("lower_bound", lb).
		Msg("network loaded")

	opts := cfg.Options()
	opts.Logger = &logger

	res, err := aco.OptimizeContext(ctx, g, opts)
	if err != nil {
		if res.Path == nil {
			return err
		}
		logger.Warn().Err(err).Msg("returning best route found before interruption")
	}

	fmt.Fprintf(stdout, "path: %s\n", strings.Join(res.Path, " -> "))
	fmt.Fprintf(stdout, "cost: %g\n", res.Cost)

	return nil
}
