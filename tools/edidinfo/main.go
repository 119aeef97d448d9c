//go:build linux

package edidinfo

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/starsoc/linux-star-x7/edid"
	"github.com/starsoc/linux-star-x7/modes"
	"github.com/starsoc/linux-star-x7/tools/setup"
)

const usageString = `Decode a monitor's capability block (EDID).

Usage: %s [flags] [file]

The file holds the raw block or its hex dump as shown by the sysfs edid
attribute. Without a file the block is read through the transmitter.

`

var (
	flags = flag.NewFlagSet("edid", flag.ExitOnError)

	cfgfile = setup.ConfigFlag(flags)
	hex     = flags.Bool("hex", false, "also print a hex dump")
)

func usage() {
	fmt.Fprintf(flags.Output(), usageString, "edid")
	flags.PrintDefaults()
}

func Main(args []string) {
	flags.Usage = usage
	flags.Parse(args[1:])

	var data []byte
	var err error
	switch flags.NArg() {
	case 0:
		data, err = readTransmitter()
	case 1:
		data, err = readFile(flags.Arg(0))
	default:
		flags.Usage()
		os.Exit(1)
	}
	if err != nil {
		log.Fatalln(err)
	}

	e, err := edid.Parse(data)
	if err != nil {
		log.Fatalln(err)
	}
	describe(e)
	if *hex {
		edid.WriteHex(os.Stdout, e.Raw)
	}
}

func readFile(name string) ([]byte, error) {
	data, err := os.ReadFile(name)
	if err != nil {
		return nil, err
	}
	if bytes.HasPrefix(bytes.TrimSpace(data), []byte("0x")) {
		return edid.ParseHex(data)
	}
	return data, nil
}

func readTransmitter() ([]byte, error) {
	cfg, err := setup.Config(*cfgfile)
	if err != nil {
		return nil, err
	}
	tx, closer, err := setup.Transmitter(cfg.Transmitter, log.Default())
	if err != nil {
		return nil, err
	}
	defer closer.Close()
	if tx == nil {
		return nil, fmt.Errorf("no transmitter")
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return tx.ReadCapabilityBlock(ctx)
}

func describe(e *edid.EDID) {
	fmt.Printf("monitor   %s (%s %04x", e.Name, e.Manufacturer, e.ProductCode)
	if e.Serial != "" {
		fmt.Printf(" serial %s", e.Serial)
	}
	fmt.Printf(")\n")
	fmt.Printf("version   %d.%d, made week %d of %d\n", e.Version, e.Revision, e.Week, e.Year)
	fmt.Printf("size      %dx%d cm\n", e.WidthCM, e.HeightCM)
	fmt.Printf("hdmi      %v\n", e.HDMI)
	if m, ok := e.Preferred(); ok {
		fmt.Printf("preferred %v\n", m)
	}
	fmt.Printf("modes    ")
	for _, m := range e.Modes() {
		fmt.Printf(" %v", m)
	}
	fmt.Println()

	fmt.Printf("table    ")
	for _, d := range modes.Default().All() {
		t := d.Timing()
		if e.Supports(t.HDisplay, t.VDisplay, d.RefreshHz) {
			fmt.Printf(" %v", d)
		}
	}
	fmt.Println()
}
