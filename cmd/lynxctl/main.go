//go:build linux

package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/starsoc/linux-star-x7/tools/apply"
	"github.com/starsoc/linux-star-x7/tools/edidinfo"
	"github.com/starsoc/linux-star-x7/tools/list"
	"github.com/starsoc/linux-star-x7/tools/pattern"
	"github.com/starsoc/linux-star-x7/tools/serve"
	"github.com/starsoc/linux-star-x7/tools/timing"
	"github.com/starsoc/linux-star-x7/tools/verify"
)

const usageString = `lynxctl drives the display controller of the SM712 (Lynx).

Usage:

	%s <command> [arguments]

The commands are:

	list     list the built-in modes
	timing   print the raster of a mode
	apply    program a mode
	verify   compare the registers with a mode
	edid     decode a monitor's capability block
	pattern  draw color bars
	serve    run the display daemon
`

func usage() {
	fmt.Fprintf(flag.CommandLine.Output(), usageString, os.Args[0])
	flag.PrintDefaults()
}

func main() {
	log.Default().SetFlags(0)
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(1)
	}

	switch flag.Arg(0) {
	case "list":
		list.Main(flag.Args())
	case "timing":
		timing.Main(flag.Args())
	case "apply":
		apply.Main(flag.Args())
	case "verify":
		verify.Main(flag.Args())
	case "edid":
		edidinfo.Main(flag.Args())
	case "pattern":
		pattern.Main(flag.Args())
	case "serve":
		log.Default().SetFlags(log.LstdFlags)
		serve.Main(flag.Args())
	default:
		fmt.Fprintf(flag.CommandLine.Output(), "unknown command: %s\n", flag.Arg(0))
		flag.Usage()
		os.Exit(1)
	}
}
