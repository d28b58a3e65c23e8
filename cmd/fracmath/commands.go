package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	log "github.com/dsoprea/go-logging"
	"github.com/rwcarlsen/goexif/tiff"
	"github.com/soypat/fracmath/fraction"
	"github.com/soypat/fracmath/geometry"
	"github.com/soypat/fracmath/rational"
)

// cli runs a single command. Failures panic with a wrapped error and are
// recovered in run.
type cli struct {
	cfg    config
	w      io.Writer
	logger *log.Logger
	ctx    context.Context
}

func (c *cli) arith(op string, args []string) {
	wantArgs(op, args, 4)
	f, g := parseFraction(args[0], args[1]), parseFraction(args[2], args[3])
	var (
		r   fraction.Fraction
		err error
	)
	switch op {
	case "add":
		r, err = f.Add(g)
	case "sub":
		r, err = f.Sub(g)
	case "mul":
		r, err = f.Mul(g)
	case "div":
		r, err = f.Div(g)
	}
	log.PanicIf(err)
	c.logger.Debugf(c.ctx, "%s %s %s = %s", f, op, g, r)
	c.printFraction(r)
}

func (c *cli) simplify(args []string) {
	wantArgs("simplify", args, 2)
	f := parseFraction(args[0], args[1])
	f.Simplify()
	c.printFraction(f)
}

func (c *cli) reciprocal(args []string) {
	wantArgs("reciprocal", args, 2)
	r, err := parseFraction(args[0], args[1]).Reciprocal()
	log.PanicIf(err)
	c.printFraction(r)
}

func (c *cli) gcdLCM(op string, args []string) {
	wantArgs(op, args, 2)
	a, b := parseUint(args[0]), parseUint(args[1])
	if op == "gcd" {
		fmt.Fprintln(c.w, fraction.GCD(a, b))
	} else {
		fmt.Fprintln(c.w, fraction.LCM(a, b))
	}
}

func (c *cli) printFraction(f fraction.Fraction) {
	if c.cfg.simplify {
		f.Simplify()
	}
	fmt.Fprintf(c.w, "%s = %v\n", f, f.Float())
}

type shapeFunc struct {
	args []string
	fn   func(a []float64) (float64, error)
}

var areas = map[string]shapeFunc{
	"circle": {[]string{"radius"}, func(a []float64) (float64, error) {
		return geometry.AreaCircle(a[0])
	}},
	"parallelogram": {[]string{"base", "height"}, func(a []float64) (float64, error) {
		return geometry.AreaParallelogram(a[0], a[1]), nil
	}},
	"rectangle": {[]string{"length", "width"}, func(a []float64) (float64, error) {
		return geometry.AreaRectangle(a[0], a[1]), nil
	}},
	"square": {[]string{"side"}, func(a []float64) (float64, error) {
		return geometry.AreaSquare(a[0])
	}},
	"trapezoid": {[]string{"base1", "base2", "height"}, func(a []float64) (float64, error) {
		return geometry.AreaTrapezoid(a[0], a[1], a[2])
	}},
	"triangle": {[]string{"base", "height"}, func(a []float64) (float64, error) {
		return geometry.AreaTriangle(a[0], a[1])
	}},
	"triangle-right": {[]string{"adjacent", "opposite"}, func(a []float64) (float64, error) {
		return geometry.AreaTriangleRight(a[0], a[1])
	}},
}

var perimeters = map[string]shapeFunc{
	"parallelogram": {[]string{"adjacent1", "adjacent2"}, func(a []float64) (float64, error) {
		return geometry.PerimeterParallelogram(a[0], a[1])
	}},
	"rectangle": {[]string{"length", "width"}, func(a []float64) (float64, error) {
		return geometry.PerimeterRectangle(a[0], a[1])
	}},
	"square": {[]string{"side"}, func(a []float64) (float64, error) {
		return geometry.PerimeterSquare(a[0])
	}},
	"trapezoid": {[]string{"base1", "base2", "leg1", "leg2"}, func(a []float64) (float64, error) {
		return geometry.PerimeterTrapezoid(a[0], a[1], a[2], a[3])
	}},
	"triangle": {[]string{"a", "b", "c"}, func(a []float64) (float64, error) {
		return geometry.PerimeterTriangle(a[0], a[1], a[2])
	}},
}

func (c *cli) shape(shapes map[string]shapeFunc, args []string) {
	if len(args) == 0 {
		log.Panicf("missing shape, one of %s: %w", shapeNames(shapes), errUsage)
	}
	s, ok := shapes[args[0]]
	if !ok {
		log.Panicf("unknown shape %q, want one of %s: %w", args[0], shapeNames(shapes), errUsage)
	}
	args = args[1:]
	if len(args) != len(s.args) {
		log.Panicf("shape wants %d arguments (%s), got %d: %w", len(s.args), strings.Join(s.args, ", "), len(args), errUsage)
	}
	vals := make([]float64, len(args))
	for i := range args {
		vals[i] = parseFloat(args[i])
	}
	v, err := s.fn(vals)
	log.PanicIf(err)
	fmt.Fprintln(c.w, v)
}

func (c *cli) circumference(args []string) {
	wantArgs("circumference", args, 1)
	v, err := geometry.Circumference(parseFloat(args[0]))
	log.PanicIf(err)
	fmt.Fprintln(c.w, v)
}

// tiff lists every rational value in a TIFF structure, one per line as
//
//	IFD TAG[INDEX] N/D = DECIMAL
func (c *cli) tiff(args []string) {
	wantArgs("tiff", args, 1)
	fp, err := os.Open(args[0])
	log.PanicIf(err)
	defer fp.Close()
	t, err := tiff.Decode(fp)
	log.PanicIf(err)
	c.logger.Debugf(c.ctx, "decoded %d directories from %s", len(t.Dirs), args[0])
	fracs, err := rational.TagFractions(t)
	if err != nil {
		c.logger.Warningf(c.ctx, "skipped values: %v", err)
	}
	for _, tf := range fracs {
		fmt.Fprintf(c.w, "%d %#04x[%d] ", tf.Dir, tf.ID, tf.Index)
		c.printFraction(tf.Value)
	}
}

func wantArgs(cmd string, args []string, n int) {
	if len(args) != n {
		log.Panicf("%s wants %d arguments, got %d: %w", cmd, n, len(args), errUsage)
	}
}

func parseFraction(num, den string) fraction.Fraction {
	n, err := strconv.Atoi(num)
	if err != nil {
		log.Panicf("numerator: %w", err)
	}
	f, err := fraction.New(n, parseUint(den))
	log.PanicIf(err)
	return f
}

func parseUint(s string) uint {
	v, err := strconv.ParseUint(s, 10, 0)
	if err != nil {
		log.Panicf("parsing unsigned integer: %w", err)
	}
	return uint(v)
}

func parseFloat(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		log.Panicf("parsing number: %w", err)
	}
	return v
}

func shapeNames(shapes map[string]shapeFunc) string {
	names := make([]string, 0, len(shapes))
	for name := range shapes {
		names = append(names, name)
	}
	sort.Strings(names)
	return strings.Join(names, "|")
}
