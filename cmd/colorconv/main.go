// Command colorconv prints the canonical form of color expressions.
//
// Usage:
//
//	colorconv [-strict] [-names=false] [-v] expr...
//
// Example:
//
//	colorconv 'hsv(200, 0.5, 0.9)' '#336699' cornflowerblue
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/gogpu/colorconv"
)

func main() {
	var (
		strict  = flag.Bool("strict", false, "reject components outside their nominal range")
		names   = flag.Bool("names", true, "accept color keywords")
		verbose = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}

	if *verbose {
		colorconv.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	opts := []colorconv.ParseOption{colorconv.WithNamedColors(*names)}
	if *strict {
		opts = append(opts, colorconv.WithStrictRange())
	}

	failed := false
	for _, expr := range flag.Args() {
		c, err := colorconv.Parse(expr, opts...)
		if err != nil {
			log.Printf("%s: %v", expr, err)
			failed = true
			continue
		}
		p := c.Packed()
		gamut := ""
		if !c.InGamut() {
			gamut = " (out of gamut, clamped)"
		}
		fmt.Printf("%-24s %v  #%02x%02x%02x%02x%s\n", expr, c, p.R, p.G, p.B, p.A, gamut)
	}

	if failed {
		os.Exit(1)
	}
}
