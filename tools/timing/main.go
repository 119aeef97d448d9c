package timing

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/starsoc/linux-star-x7/framebuffer"
	"github.com/starsoc/linux-star-x7/modes"
)

const usageString = `Print the raster a mode programs.

Usage: %s [flags] <mode_str>

mode_str is <xres>x<yres>[-<bpp>][@<refresh>], for example 1024x600-16@60.

`

var (
	flags = flag.NewFlagSet("timing", flag.ExitOnError)

	bpp   = flags.Int("bpp", 16, "depth if mode_str has none")
	fbset = flags.Bool("fbset", false, "print an fb.modes entry instead")
)

func usage() {
	fmt.Fprintf(flags.Output(), usageString, "timing")
	flags.PrintDefaults()
}

func Main(args []string) {
	flags.Usage = usage
	flags.Parse(args[1:])
	if flags.NArg() != 1 {
		flags.Usage()
		os.Exit(1)
	}

	r, err := modes.ParseRequest(flags.Arg(0), *bpp)
	if err != nil {
		log.Fatalln(err)
	}
	d, err := modes.Default().Select(r)
	if err != nil {
		log.Fatalln(err)
	}

	if *fbset {
		v := framebuffer.VarFromDescriptor(d)
		fmt.Printf("mode \"%dx%d-%d\"\n", d.Width, d.Height, d.RefreshHz)
		fmt.Printf("    geometry %d %d %d %d %d\n", v.XRes, v.YRes, v.XResVirtual, v.YResVirtual, v.BitsPerPixel)
		fmt.Printf("    timings %d %d %d %d %d %d %d\n", v.PixClock,
			v.LeftMargin, v.RightMargin, v.UpperMargin, v.LowerMargin, v.HSyncLen, v.VSyncLen)
		if v.Sync&framebuffer.SyncHorHighAct != 0 {
			fmt.Println("    hsync high")
		}
		if v.Sync&framebuffer.SyncVertHighAct != 0 {
			fmt.Println("    vsync high")
		}
		fmt.Println("endmode")
		return
	}

	t := d.Timing()
	fmt.Printf("mode      %v\n", d)
	fmt.Printf("pixclock  %d Hz\n", t.PixelClockHz(d.RefreshHz))
	fmt.Printf("hdisplay  %d %d %d %d\n", t.HDisplay, t.HSyncStart, t.HSyncEnd, t.HTotal)
	fmt.Printf("vdisplay  %d %d %d %d\n", t.VDisplay, t.VSyncStart, t.VSyncEnd, t.VTotal)
	fmt.Printf("sync      hsync %v vsync %v\n", sign(t.HSyncPositive), sign(t.VSyncPositive))
	fmt.Printf("misc      %#02x\n", d.Misc)
}

func sign(positive bool) string {
	if positive {
		return "positive"
	}
	return "negative"
}
