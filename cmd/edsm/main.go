package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"

	"go-edsm/internal/galaxy/services"
	"go-edsm/pkg/app"
	"go-edsm/pkg/edsm"
	"go-edsm/pkg/version"
)

var errUsage = errors.New("usage")

func main() {
	if len(os.Args) < 2 {
		showHelp(os.Stderr)
		os.Exit(2)
	}

	// Results go to stdout; keep the request log quiet unless asked for
	if os.Getenv("LOG_LEVEL") == "" {
		os.Setenv("LOG_LEVEL", "warn")
	}
	appCtx, err := app.InitializeAppWithOptions("edsm-cli", app.Options{LogOutput: os.Stderr})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err = run(ctx, appCtx.Client, os.Args[1:], os.Stdout)
	stop()
	appCtx.Shutdown(context.Background())

	switch {
	case err == nil:
	case errors.Is(err, errUsage):
		fmt.Fprintf(os.Stderr, "Error: %v\n\n", err)
		showHelp(os.Stderr)
		os.Exit(2)
	default:
		fmt.Fprintf(os.Stderr, "Error: %s\n", describe(err))
		os.Exit(1)
	}
}

// run executes one subcommand against client and writes the result to out
func run(ctx context.Context, client services.Client, args []string, out io.Writer) error {
	command, rest := args[0], args[1:]

	switch command {
	case "system", "s":
		name, err := nameArg(command, rest)
		if err != nil {
			return err
		}
		system, err := client.System(ctx, name)
		if err != nil {
			return err
		}
		printSystem(out, system)

	case "systems", "search":
		name, err := nameArg(command, rest)
		if err != nil {
			return err
		}
		systems, err := client.Systems(ctx, name)
		if err != nil {
			return err
		}
		printSystemList(out, services.RankByName(name, systems))

	case "sphere":
		name, err := nameArg(command, rest)
		if err != nil {
			return err
		}
		floats, err := floatArgs(command, rest[1:], "radius", "min-radius")
		if err != nil {
			return err
		}
		systems, err := client.SphereSystems(ctx, name, edsm.SphereOptions{Radius: floats[0], MinRadius: floats[1]})
		if err != nil {
			return err
		}
		printSystemList(out, systems)

	case "cube":
		name, err := nameArg(command, rest)
		if err != nil {
			return err
		}
		floats, err := floatArgs(command, rest[1:], "size")
		if err != nil {
			return err
		}
		systems, err := client.CubeSystems(ctx, name, edsm.CubeOptions{Size: floats[0]})
		if err != nil {
			return err
		}
		printSystemList(out, systems)

	case "bodies", "b":
		name, err := nameArg(command, rest)
		if err != nil {
			return err
		}
		system, err := client.Bodies(ctx, name)
		if err != nil {
			return err
		}
		printBodies(out, system)

	case "factions", "f":
		withHistory := false
		var positional []string
		for _, arg := range rest {
			if arg == "--history" || arg == "-history" {
				withHistory = true
				continue
			}
			positional = append(positional, arg)
		}
		name, err := nameArg(command, positional)
		if err != nil {
			return err
		}
		system, err := client.Factions(ctx, name, withHistory)
		if err != nil {
			return err
		}
		printFactions(out, system, withHistory)

	case "traffic", "t":
		name, err := nameArg(command, rest)
		if err != nil {
			return err
		}
		system, err := client.Traffic(ctx, name)
		if err != nil {
			return err
		}
		printTraffic(out, system)

	case "deaths", "d":
		name, err := nameArg(command, rest)
		if err != nil {
			return err
		}
		system, err := client.Deaths(ctx, name)
		if err != nil {
			return err
		}
		printDeaths(out, system)

	case "load", "l":
		if len(rest) != 1 {
			return fmt.Errorf("%w: %s needs exactly one file", errUsage, command)
		}
		systems, err := edsm.LoadSystems(rest[0])
		if err != nil {
			return err
		}
		printDumpSummary(out, rest[0], systems)

	case "version", "v":
		fmt.Fprintln(out, version.GetBuildInfo())

	case "help", "h", "--help", "-h":
		showHelp(out)

	default:
		return fmt.Errorf("%w: unknown command %q", errUsage, command)
	}
	return nil
}

// nameArg takes the system name from the first argument; names with spaces
// must be quoted
func nameArg(command string, args []string) (string, error) {
	if len(args) == 0 || strings.TrimSpace(args[0]) == "" {
		return "", fmt.Errorf("%w: %s needs a system name", errUsage, command)
	}
	return args[0], nil
}

// floatArgs parses optional positional numbers; missing ones are zero
func floatArgs(command string, args []string, names ...string) ([]float64, error) {
	if len(args) > len(names) {
		return nil, fmt.Errorf("%w: %s takes at most %d numbers", errUsage, command, len(names))
	}
	values := make([]float64, len(names))
	for i, arg := range args {
		v, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %s %s must be a number, got %q", errUsage, command, names[i], arg)
		}
		values[i] = v
	}
	return values, nil
}

// describe turns client errors into one line for the terminal
func describe(err error) string {
	var (
		validation *edsm.ValidationError
		remote     *edsm.RemoteError
		transport  *edsm.TransportError
		decodeErr  *edsm.DecodeError
	)
	switch {
	case errors.Is(err, edsm.ErrUnknownSystem):
		return "EDSM does not know that system"
	case errors.As(err, &validation):
		return fmt.Sprintf("invalid %s: must satisfy %s (got %v)", validation.Field, validation.Rule, validation.Value)
	case errors.As(err, &remote):
		return "EDSM answered " + remote.Status
	case errors.As(err, &transport):
		if transport.Timeout() {
			return "EDSM did not answer in time"
		}
		return fmt.Sprintf("could not reach EDSM: %v", transport.Err)
	case errors.As(err, &decodeErr):
		return fmt.Sprintf("unexpected EDSM payload: %v", decodeErr)
	default:
		return err.Error()
	}
}

func showHelp(w io.Writer) {
	fmt.Fprintln(w, "EDSM lookup tool")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Usage: edsm <command> [arguments]")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  system, s <name>                    Show a system with coordinates and information")
	fmt.Fprintln(w, "  systems, search <prefix>            List systems whose name starts with prefix")
	fmt.Fprintln(w, "  sphere <name> [radius] [min-radius] Systems within radius ly (max 100)")
	fmt.Fprintln(w, "  cube <name> [size]                  Systems inside a cube of size ly (max 200)")
	fmt.Fprintln(w, "  bodies, b <name>                    Stars and planets of a system")
	fmt.Fprintln(w, "  factions, f <name> [--history]      Minor factions and their influence")
	fmt.Fprintln(w, "  traffic, t <name>                   Ship traffic counters")
	fmt.Fprintln(w, "  deaths, d <name>                    Commander death counters")
	fmt.Fprintln(w, "  load, l <file[.gz]>                 Summarise a systems dump file")
	fmt.Fprintln(w, "  version, v                          Show build information")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Examples:")
	fmt.Fprintln(w, "  edsm system Sol")
	fmt.Fprintln(w, "  edsm sphere \"Alpha Centauri\" 15")
	fmt.Fprintln(w, "  edsm factions Meliae --history")
}
