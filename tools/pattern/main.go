//go:build linux

package pattern

import (
	"flag"
	"fmt"
	"image/png"
	"log"
	"os"

	"github.com/starsoc/linux-star-x7/framebuffer"
	"github.com/starsoc/linux-star-x7/modes"
	"github.com/starsoc/linux-star-x7/modeset"
	"github.com/starsoc/linux-star-x7/tools/setup"
)

const usageString = `Draw color bars on the framebuffer.

Usage: %s [flags]

The bars carry a label with the mode and its register fingerprint.

With -png the bars are rendered for a table mode into a PNG file instead.

`

var (
	flags = flag.NewFlagSet("pattern", flag.ExitOnError)

	cfgfile = setup.ConfigFlag(flags)
	fbdev   = flags.String("fbdev", "", "framebuffer `device`, the configured one if empty")
	out     = flags.String("png", "", "write the pattern to this `file`")
	mode    = flags.String("mode", "", "mode_str used with -png, the configured one if empty")
	nolabel = flags.Bool("nolabel", false, "draw the bars only")
)

// label draws the mode name and register fingerprint of d, or just the
// request when the mode is not in the table.
func label(fb *framebuffer.Framebuffer, d *modes.Descriptor, r modes.Request) {
	if *nolabel {
		return
	}
	text := r.String()
	if d != nil {
		text = fmt.Sprintf("%v fp %02x", d, modeset.Fingerprint(d))
	}
	if err := framebuffer.DrawLabel(fb, text); err != nil {
		log.Println("pattern:", err)
	}
}

func usage() {
	fmt.Fprintf(flags.Output(), usageString, "pattern")
	flags.PrintDefaults()
}

func Main(args []string) {
	flags.Usage = usage
	flags.Parse(args[1:])
	if flags.NArg() != 0 {
		flags.Usage()
		os.Exit(1)
	}

	cfg, err := setup.Config(*cfgfile)
	if err != nil {
		log.Fatalln(err)
	}

	if *out != "" {
		m := cfg.Mode
		if *mode != "" {
			m.ModeStr = *mode
		}
		r, err := m.Request()
		if err != nil {
			log.Fatalln(err)
		}
		d, err := modes.Default().Select(r)
		if err != nil {
			log.Fatalln(err)
		}
		fb, err := framebuffer.New(d, nil, 0)
		if err != nil {
			log.Fatalln(err)
		}
		framebuffer.DrawColorBars(fb)
		label(fb, d, r)
		f, err := os.Create(*out)
		if err != nil {
			log.Fatalln(err)
		}
		defer f.Close()
		if err := png.Encode(f, fb); err != nil {
			log.Fatalln(err)
		}
		return
	}

	name := *fbdev
	if name == "" {
		name = cfg.Framebuffer
	}
	dev, err := framebuffer.Open(name)
	if err != nil {
		log.Fatalln(err)
	}
	defer dev.Close()
	fix, err := dev.FixScreenInfo()
	if err != nil {
		log.Fatalln(err)
	}
	v, err := dev.VarScreenInfo()
	if err != nil {
		log.Fatalln(err)
	}
	fb, err := dev.Framebuffer()
	if err != nil {
		log.Fatalln(err)
	}
	framebuffer.DrawColorBars(fb)
	r := v.Request()
	d, _ := modes.Default().Select(r)
	label(fb, d, r)
	fmt.Printf("%s: %v color bars\n", fix.Name(), fb.Bounds().Size())
}
