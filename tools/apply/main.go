//go:build linux

package apply

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"

	"github.com/starsoc/linux-star-x7/drivers/display"
	"github.com/starsoc/linux-star-x7/framebuffer"
	"github.com/starsoc/linux-star-x7/modes"
	"github.com/starsoc/linux-star-x7/modeset"
	"github.com/starsoc/linux-star-x7/tools/setup"
)

const usageString = `Program a display mode.

Usage: %s [flags] <mode_str>

By default the registers are written directly through the configured device.
With -fbdev the mode is handed to the kernel framebuffer driver instead.

`

var (
	flags = flag.NewFlagSet("apply", flag.ExitOnError)

	cfgfile = setup.ConfigFlag(flags)
	bpp     = flags.Int("bpp", 0, "depth if mode_str has none, the configured one if 0")
	fbdev   = flags.String("fbdev", "", "set the mode through this framebuffer `device`")
	verify  = flags.Bool("verify", false, "read the registers back afterwards")
)

func usage() {
	fmt.Fprintf(flags.Output(), usageString, "apply")
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

	if *fbdev != "" {
		d, err := modes.Default().Select(r)
		if err != nil {
			log.Fatalln(err)
		}
		fb, err := framebuffer.Open(*fbdev)
		if err != nil {
			log.Fatalln(err)
		}
		defer fb.Close()
		v := framebuffer.VarFromDescriptor(d)
		if err := fb.PutVarScreenInfo(&v); err != nil {
			log.Fatalln(err)
		}
		fmt.Printf("%v via %s\n", d, *fbdev)
		return
	}

	space, closer, err := setup.Space(cfg.Device)
	if err != nil {
		log.Fatalln(err)
	}
	defer closer.Close()
	tx, txCloser, err := setup.Transmitter(cfg.Transmitter, log.Default())
	if err != nil {
		log.Fatalln(err)
	}
	defer txCloser.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	c := display.New(space, display.Options{Default: r, Transmitter: tx})
	d, err := c.SetMode(ctx, r)
	if err != nil {
		log.Fatalln(err)
	}
	fmt.Printf("%v crc8 %02x\n", d, modeset.Fingerprint(d))

	if *verify {
		rep, err := modeset.Verify(d, space)
		if err != nil {
			log.Fatalln(err)
		}
		for _, m := range rep.Mismatches {
			fmt.Println(m)
		}
		if !rep.OK() {
			log.Fatalf("verify: %d registers differ", len(rep.Mismatches))
		}
	}
}
