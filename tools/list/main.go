package list

import (
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/starsoc/linux-star-x7/modes"
	"github.com/starsoc/linux-star-x7/modeset"
)

const usageString = `List the built-in mode table in lookup order.

Usage: %s [flags]

`

var (
	flags = flag.NewFlagSet("list", flag.ExitOnError)

	raster = flags.Bool("raster", false, "show the CRT raster and pixel clock of each mode")
)

func usage() {
	fmt.Fprintf(flags.Output(), usageString, "list")
	flags.PrintDefaults()
}

func Main(args []string) {
	flags.Usage = usage
	flags.Parse(args[1:])
	if flags.NArg() != 0 {
		flags.Usage()
		os.Exit(1)
	}

	t := modes.Default()
	w := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
	if *raster {
		fmt.Fprintln(w, "#\tMODE\tRASTER\tPIXCLK\tSYNC")
	} else {
		fmt.Fprintln(w, "#\tMODE\tMISC\tCRC8")
	}
	for i, d := range t.All() {
		if !*raster {
			fmt.Fprintf(w, "%d\t%v\t%02x\t%02x\n", i, d, d.Misc, modeset.Fingerprint(d))
			continue
		}
		tm := d.Timing()
		fmt.Fprintf(w, "%d\t%v\t%dx%d\t%.3f MHz\t%s\n", i, d, tm.HDisplay, tm.VDisplay,
			float64(tm.PixelClockHz(d.RefreshHz))/1e6, polarity(tm))
	}
	w.Flush()

	for _, dup := range t.Duplicates() {
		fmt.Fprintf(os.Stderr, "entry %d (%v) is shadowed by entry %d\n", dup.Shadow, t.At(dup.Shadow), dup.First)
	}
}

func polarity(t modes.Timing) string {
	sign := func(pos bool) string {
		if pos {
			return "+"
		}
		return "-"
	}
	return sign(t.HSyncPositive) + "hsync " + sign(t.VSyncPositive) + "vsync"
}
