// Command fracmath does exact fraction arithmetic and evaluates geometry
// formulas from the command line. It can also list the rational values
// stored in a TIFF or EXIF blob.
//
//	fracmath [-v] [-simplify] <command> args...
//
// The log level and format are read from the LogLevelName and LogFormat
// environment variables. -v forces debug logging.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	log "github.com/dsoprea/go-logging"
)

var errUsage = errors.New("usage: fracmath [-v] [-simplify] <command> args...")

const usageCommands = `commands:
  add|sub|mul|div N1 D1 N2 D2
  simplify N D
  reciprocal N D
  gcd A B
  lcm A B
  area circle|parallelogram|rectangle|square|trapezoid|triangle|triangle-right args...
  perimeter parallelogram|rectangle|square|trapezoid|triangle args...
  circumference R
  tiff FILE
`

func main() {
	log.AddAdapter("console", log.NewConsoleLogAdapter())
	err := run(os.Args[1:], os.Stdout, os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "fracmath:", err)
		if errors.Is(err, errUsage) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

type config struct {
	verbose  bool
	simplify bool
}

func run(args []string, stdout, stderr io.Writer) (err error) {
	var cfg config
	fs := flag.NewFlagSet("fracmath", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.BoolVar(&cfg.verbose, "v", false, "debug logging")
	fs.BoolVar(&cfg.simplify, "simplify", false, "simplify fraction results")
	fs.Usage = func() {
		fmt.Fprintln(stderr, errUsage)
		fs.PrintDefaults()
		fmt.Fprint(stderr, usageCommands)
	}
	if err := fs.Parse(args); err != nil {
		return err
	}

	logger := newLogger(cfg.verbose)
	ctx := context.Background()
	defer func() {
		if state := recover(); state != nil {
			e, ok := state.(error)
			if !ok {
				panic(state)
			}
			err = log.Wrap(e)
			logger.Debugf(ctx, "%s", log.Wrap(e).ErrorStack())
		}
	}()

	if fs.NArg() == 0 {
		fs.Usage()
		return errUsage
	}
	cmd, cmdArgs := fs.Arg(0), fs.Args()[1:]
	logger.Debugf(ctx, "running %q with %d arguments", cmd, len(cmdArgs))
	c := &cli{cfg: cfg, w: stdout, logger: logger, ctx: ctx}
	switch cmd {
	case "add", "sub", "mul", "div":
		c.arith(cmd, cmdArgs)
	case "simplify":
		c.simplify(cmdArgs)
	case "reciprocal":
		c.reciprocal(cmdArgs)
	case "gcd", "lcm":
		c.gcdLCM(cmd, cmdArgs)
	case "area":
		c.shape(areas, cmdArgs)
	case "perimeter":
		c.shape(perimeters, cmdArgs)
	case "circumference":
		c.circumference(cmdArgs)
	case "tiff":
		c.tiff(cmdArgs)
	default:
		log.Panicf("unknown command %q: %w", cmd, errUsage)
	}
	return nil
}

// newLogger applies the environment logging configuration, forcing the debug
// level when verbose is set.
func newLogger(verbose bool) *log.Logger {
	if verbose {
		env := log.NewEnvironmentConfigurationProvider()
		scp := log.NewStaticConfigurationProvider()
		scp.SetFormat(env.Format())
		scp.SetDefaultAdapterName(env.DefaultAdapterName())
		scp.SetIncludeNouns(env.IncludeNouns())
		scp.SetExcludeNouns(env.ExcludeNouns())
		scp.SetExcludeBypassLevelName(env.ExcludeBypassLevelName())
		scp.SetLevelName(log.LevelNameDebug)
		log.LoadConfiguration(scp)
	} else {
		log.LoadConfiguration(log.NewEnvironmentConfigurationProvider())
	}
	return log.NewLogger("fracmath")
}
