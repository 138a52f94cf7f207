package main

import (
	"io"

	"github.com/osuushi/rattrig"
	"github.com/osuushi/rattrig/advanced"
	"github.com/osuushi/rattrig/draw"
	"github.com/osuushi/rattrig/numeric"
	"github.com/spf13/cobra"
)

// Each command parses its numbers in the selected domain. Formulas that divide
// run in the promoted field domain, which is Rat for integers and the domain
// itself otherwise.

func newVectorsCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "vectors [x1 y1 x2 y2]",
		Short: "Dot and cross products, quadrances and spread of two vectors",
		Args:  cobra.MaximumNArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			fields, err := readFields(args, cmd.InOrStdin())
			if err != nil {
				return err
			}
			switch opts.domain {
			case domainInt:
				return runVectors(cmd, opts, fields, numeric.ParseInt, numeric.Int.Rat)
			case domainFloat:
				return runVectors(cmd, opts, fields, numeric.ParseFloat, identity[numeric.Float])
			}
			return runVectors(cmd, opts, fields, numeric.ParseRat, identity[numeric.Rat])
		},
	}
}

func runVectors[R draw.Drawable[R], F numeric.Field[F]](cmd *cobra.Command, opts *options, fields []string, parse func(string) (R, error), promote func(R) F) error {
	values, err := parseAll(fields, 4, parse)
	if err != nil {
		return err
	}
	v1 := advanced.Vec(values[0], values[1])
	v2 := advanced.Vec(values[2], values[3])
	opts.logger.Debug("parsed vectors", "v1", v1, "v2", v2)

	out := cmd.OutOrStdout()
	rows := []row{
		{name: "dot", value: rattrig.Dot(v1, v2)},
		{name: "cross", value: rattrig.Cross(v1, v2)},
		{name: "quad1", value: rattrig.Quad(v1)},
		{name: "quad2", value: rattrig.Quad(v2)},
	}
	spread, err := rattrig.Spread(advanced.MapVector(v1, promote), advanced.MapVector(v2, promote))
	if err != nil {
		opts.printRows(out, rows)
		return err
	}
	opts.printRows(out, append(rows, row{name: "spread", value: spread}))

	return opts.maybeDraw(out, func(filename string) error {
		return draw.Vectors(filename, opts.scale, v1, v2)
	})
}

func newTriangleCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "triangle [q1 q2 q3]",
		Short: "Archimedes' function and the spread opposite q3",
		Args:  cobra.MaximumNArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			fields, err := readFields(args, cmd.InOrStdin())
			if err != nil {
				return err
			}
			switch opts.domain {
			case domainInt:
				return runTriangle(cmd, opts, fields, numeric.ParseInt, numeric.Int.Rat)
			case domainFloat:
				return runTriangle(cmd, opts, fields, numeric.ParseFloat, identity[numeric.Float])
			}
			return runTriangle(cmd, opts, fields, numeric.ParseRat, identity[numeric.Rat])
		},
	}
}

func runTriangle[R numeric.Ring[R], F numeric.Field[F]](cmd *cobra.Command, opts *options, fields []string, parse func(string) (R, error), promote func(R) F) error {
	q, err := parseAll(fields, 3, parse)
	if err != nil {
		return err
	}
	opts.logger.Debug("parsed quadrances", "q1", q[0], "q2", q[1], "q3", q[2])

	out := cmd.OutOrStdout()
	rows := []row{{name: "archimedes", value: rattrig.Archimedes(q[0], q[1], q[2])}}
	spread, err := rattrig.SpreadLaw(promote(q[0]), promote(q[1]), promote(q[2]))
	if err != nil {
		opts.printRows(out, rows)
		return err
	}
	spreadTone := good
	if spread.Sign() < 0 || spread.Cmp(spread.FromInt64(1)) > 0 {
		opts.logger.Info("spread out of range, quadrances do not form a triangle", "spread", spread)
		spreadTone = bad
	}
	opts.printRows(out, append(rows, row{name: "spread law", value: spread, tone: spreadTone}))
	return nil
}

func newTripleQuadCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "triple-quad [q1 q2 s3]",
		Short: "The triple quad formula (q1 + q2)² − 4·q1·q2·(1 − s3)",
		Args:  cobra.MaximumNArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			fields, err := readFields(args, cmd.InOrStdin())
			if err != nil {
				return err
			}
			switch opts.domain {
			case domainInt:
				return runTripleQuad(cmd, opts, fields, numeric.ParseInt)
			case domainFloat:
				return runTripleQuad(cmd, opts, fields, numeric.ParseFloat)
			}
			return runTripleQuad(cmd, opts, fields, numeric.ParseRat)
		},
	}
}

func runTripleQuad[R numeric.Ring[R]](cmd *cobra.Command, opts *options, fields []string, parse func(string) (R, error)) error {
	values, err := parseAll(fields, 3, parse)
	if err != nil {
		return err
	}
	opts.logger.Debug("parsed inputs", "q1", values[0], "q2", values[1], "s3", values[2])
	opts.printRows(cmd.OutOrStdout(), []row{
		{name: "triple quad", value: rattrig.TripleQuadFormula(values[0], values[1], values[2])},
	})
	return nil
}

func newPointsCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "points [xa ya xb yb xc yc]",
		Short: "Quadrances, quadrea and spreads of the triangle on three points",
		Args:  cobra.MaximumNArgs(6),
		RunE: func(cmd *cobra.Command, args []string) error {
			fields, err := readFields(args, cmd.InOrStdin())
			if err != nil {
				return err
			}
			switch opts.domain {
			case domainInt:
				return runPoints(cmd, opts, fields, numeric.ParseInt, numeric.Int.Rat)
			case domainFloat:
				return runPoints(cmd, opts, fields, numeric.ParseFloat, identity[numeric.Float])
			}
			return runPoints(cmd, opts, fields, numeric.ParseRat, identity[numeric.Rat])
		},
	}
}

func runPoints[R draw.Drawable[R], F numeric.Field[F]](cmd *cobra.Command, opts *options, fields []string, parse func(string) (R, error), promote func(R) F) error {
	values, err := parseAll(fields, 6, parse)
	if err != nil {
		return err
	}
	tri := advanced.Triangle[R]{
		A: advanced.Vec(values[0], values[1]),
		B: advanced.Vec(values[2], values[3]),
		C: advanced.Vec(values[4], values[5]),
	}
	opts.logger.Debug("parsed triangle", "triangle", tri)

	out := cmd.OutOrStdout()
	qa, qb, qc := tri.Quadrances()
	quadreaTone := good
	if tri.IsDegenerate() {
		opts.logger.Info("points are collinear")
		quadreaTone = bad
	}
	rows := []row{
		{name: "qa", value: qa},
		{name: "qb", value: qb},
		{name: "qc", value: qc},
		{name: "quadrea", value: tri.Quadrea(), tone: quadreaTone},
	}

	// Spreads come from the spread law, so a repeated point is reported as a
	// division by zero rather than a panic.
	sqa, sqb, sqc := promote(qa), promote(qb), promote(qc)
	spreads := []struct {
		name   string
		q1, q2 F
		q3     F
	}{
		{"sa", sqb, sqc, sqa},
		{"sb", sqa, sqc, sqb},
		{"sc", sqa, sqb, sqc},
	}
	for _, s := range spreads {
		spread, err := rattrig.SpreadLaw(s.q1, s.q2, s.q3)
		if err != nil {
			opts.printRows(out, rows)
			return err
		}
		rows = append(rows, row{name: s.name, value: spread})
	}
	opts.printRows(out, rows)

	return opts.maybeDraw(out, func(filename string) error {
		return draw.Triangle(filename, opts.scale, tri)
	})
}

func (o *options) maybeDraw(out io.Writer, render func(filename string) error) error {
	if o.pngPath == "" {
		if o.showImage {
			o.logger.Warn("--imgcat needs --png, not drawing")
		}
		return nil
	}
	if err := render(o.pngPath); err != nil {
		return err
	}
	o.logger.Info("wrote drawing", "path", o.pngPath)
	if o.showImage {
		return draw.Cat(o.pngPath, out)
	}
	return nil
}
