package main

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/logrusorgru/aurora"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

const (
	domainInt   = "int"
	domainRat   = "rat"
	domainFloat = "float"
)

type options struct {
	domain      string
	verbose     bool
	veryVerbose bool
	pngPath     string
	scale       float64
	showImage   bool
	color       bool

	logger *slog.Logger
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "rattrig",
		Short: "Quadrances, spreads and triangle laws in exact arithmetic",
		Long: `rattrig evaluates the formulas of rational trigonometry: dot and cross
products, quadrance, spread, Archimedes' function, the spread law and the
triple quad formula. Exact domains never round.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			switch opts.domain {
			case domainInt, domainRat, domainFloat:
			default:
				return errors.Errorf("unknown domain %q (want %s, %s or %s)", opts.domain, domainInt, domainRat, domainFloat)
			}
			opts.logger = newLogger(cmd.ErrOrStderr(), opts.verbose, opts.veryVerbose)
			opts.logger.Debug("starting", "command", cmd.Name(), "domain", opts.domain)
			return nil
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&opts.domain, "domain", "d", domainRat, "number domain: int, rat or float")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "set loglevel to INFO")
	flags.BoolVarP(&opts.veryVerbose, "very-verbose", "V", false, "set loglevel to DEBUG")
	flags.StringVar(&opts.pngPath, "png", "", "also draw the input to this PNG file")
	flags.Float64Var(&opts.scale, "scale", 40, "pixels per unit when drawing")
	flags.BoolVar(&opts.showImage, "imgcat", false, "print the drawing inline (needs --png)")
	flags.BoolVar(&opts.color, "color", false, "colorize output")

	rootCmd.AddCommand(
		newVectorsCmd(opts),
		newTriangleCmd(opts),
		newTripleQuadCmd(opts),
		newPointsCmd(opts),
	)
	return rootCmd
}

func newLogger(w io.Writer, verbose, veryVerbose bool) *slog.Logger {
	level := slog.LevelError
	if veryVerbose {
		level = slog.LevelDebug
	} else if verbose {
		level = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// Fields from the arguments if there are any, otherwise from every line of in.
func readFields(args []string, in io.Reader) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}
	var fields []string
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		fields = append(fields, strings.Fields(scanner.Text())...)
	}
	return fields, errors.Wrap(scanner.Err(), "reading input")
}

func parseAll[T any](fields []string, want int, parse func(string) (T, error)) ([]T, error) {
	if len(fields) != want {
		return nil, errors.Errorf("expected %d numbers, got %d", want, len(fields))
	}
	values := make([]T, len(fields))
	for i, field := range fields {
		value, err := parse(field)
		if err != nil {
			return nil, err
		}
		values[i] = value
	}
	return values, nil
}

type tone int

const (
	plain tone = iota
	good
	bad
)

type row struct {
	name  string
	value fmt.Stringer
	tone  tone
}

// With --color, names are cyan, and values that say something about the
// input's shape are green when it's a proper triangle and red when it isn't.
func (o *options) printRows(w io.Writer, rows []row) {
	au := aurora.NewAurora(o.color)
	for _, r := range rows {
		var value interface{} = r.value.String()
		switch r.tone {
		case good:
			value = au.Green(value)
		case bad:
			value = au.Red(value)
		}
		fmt.Fprintf(w, "%s %s\n", au.Cyan(fmt.Sprintf("%-12s", r.name)), value)
	}
}

func identity[T any](x T) T {
	return x
}
