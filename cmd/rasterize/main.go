// Command rasterize prints the pixels of a line, circle or closed polygon,
// one pixel per line.
//
//	rasterize line X1 Y1 X2 Y2
//	rasterize circle R CX CY
//	rasterize polygon X1 Y1 X2 Y2 X3 Y3 ...
//
// Flag -trace selects the trace level (error, info or debug).
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/npillmayer/raster"
	"github.com/npillmayer/raster/circle"
	"github.com/npillmayer/raster/line"
	"github.com/npillmayer/raster/polygon"
	"github.com/npillmayer/schuko/tracing"
)

// errUsage marks errors in the command line itself.
var errUsage = errors.New("usage")

func main() {
	level := flag.String("trace", "error", "trace level: error, info or debug")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(),
			"usage: %s [-trace level] line X1 Y1 X2 Y2 | circle R CX CY | polygon X1 Y1 X2 Y2 ...\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	if err := setTraceLevel(*level); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if err := run(os.Stdout, flag.Args()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		if errors.Is(err, errUsage) {
			flag.Usage()
			os.Exit(2)
		}
		os.Exit(1)
	}
}

func setTraceLevel(level string) error {
	var l tracing.TraceLevel
	switch level {
	case "error":
		l = tracing.LevelError
	case "info":
		l = tracing.LevelInfo
	case "debug":
		l = tracing.LevelDebug
	default:
		return fmt.Errorf("%w: unknown trace level %q", errUsage, level)
	}
	for _, key := range []string{"raster", "raster.line", "raster.circle", "raster.polygon"} {
		tracing.Select(key).SetTraceLevel(l)
	}
	return nil
}

// run rasterizes the primitive described by args and writes its pixels to w.
func run(w io.Writer, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: missing primitive", errUsage)
	}
	n, err := ints(args[1:])
	if err != nil {
		return err
	}
	var pixels []raster.Point
	switch args[0] {
	case "line":
		if len(n) != 4 {
			return fmt.Errorf("%w: line needs 4 coordinates, have %d", errUsage, len(n))
		}
		pixels = line.Rasterize(n[0], n[1], n[2], n[3])
	case "circle":
		if len(n) != 3 {
			return fmt.Errorf("%w: circle needs radius and center, have %d numbers", errUsage, len(n))
		}
		if pixels, err = circle.Rasterize(n[0], n[1], n[2]); err != nil {
			return err
		}
	case "polygon":
		if len(n) == 0 || len(n)%2 != 0 {
			return fmt.Errorf("%w: polygon needs pairs of coordinates, have %d numbers", errUsage, len(n))
		}
		pg := polygon.NullPolygon()
		for i := 0; i < len(n); i += 2 {
			pg.Knot(raster.Pt(n[i], n[i+1]))
		}
		pixels = pg.Cycle().Raster()
	default:
		return fmt.Errorf("%w: unknown primitive %q", errUsage, args[0])
	}
	for _, p := range pixels {
		if _, err := fmt.Fprintf(w, "(%d, %d)\n", p.X, p.Y); err != nil {
			return err
		}
	}
	return nil
}

func ints(args []string) ([]int, error) {
	n := make([]int, len(args))
	for i, a := range args {
		v, err := strconv.Atoi(a)
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not an integer", errUsage, a)
		}
		n[i] = v
	}
	return n, nil
}
