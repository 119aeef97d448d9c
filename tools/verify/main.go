//go:build linux

package verify

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/starsoc/linux-star-x7/modes"
	"github.com/starsoc/linux-star-x7/modeset"
	"github.com/starsoc/linux-star-x7/tools/setup"
)

const usageString = `Compare the programmed registers with a table mode.

Usage: %s [flags] <mode_str>

Exits with status 1 if any register differs.

`

var (
	flags = flag.NewFlagSet("verify", flag.ExitOnError)

	cfgfile = setup.ConfigFlag(flags)
	bpp     = flags.Int("bpp", 0, "depth if mode_str has none, the configured one if 0")
	quiet   = flags.Bool("q", false, "only set the exit status")
)

func usage() {
	fmt.Fprintf(flags.Output(), usageString, "verify")
	flags.PrintDefaults()
}

func Main(args []string) {
	flags.Usage = usage
	flags.Parse(args[1:])
	if flags.NArg() != 1 {
		flags.Usage()
		os.Exit(1)
	}

	cfg, err := setup.Config(*cfgfile)
	if err != nil {
		log.Fatalln(err)
	}
	depth := *bpp
	if depth == 0 {
		depth = cfg.Mode.BitsPerPixel
	}
	r, err := modes.ParseRequest(flags.Arg(0), depth)
	if err != nil {
		log.Fatalln(err)
	}
	d, err := modes.Default().Select(r)
	if err != nil {
		log.Fatalln(err)
	}

	space, closer, err := setup.Space(cfg.Device)
	if err != nil {
		log.Fatalln(err)
	}
	defer closer.Close()

	rep, err := modeset.Verify(d, space)
	if err != nil {
		log.Fatalln(err)
	}
	if !*quiet {
		for _, m := range rep.Mismatches {
			fmt.Println(m)
		}
		fmt.Printf("%v: expected crc8 %02x, actual %02x\n", d, rep.Expected, rep.Actual)
	}
	if !rep.OK() {
		os.Exit(1)
	}
}
