package modes_test

import (
	"testing"

	"github.com/starsoc/linux-star-x7/modes"
)

func TestTiming(t *testing.T) {
	tests := []struct {
		w, h, bpp int
		want      modes.Timing
		clock     int
	}{
		{640, 480, 16, modes.Timing{
			HDisplay: 640, HSyncStart: 664, HSyncEnd: 760, HTotal: 800,
			VDisplay: 480, VSyncStart: 490, VSyncEnd: 492, VTotal: 525,
		}, 25200000},
		{800, 600, 24, modes.Timing{
			HDisplay: 800, HSyncStart: 832, HSyncEnd: 960, HTotal: 1056,
			VDisplay: 600, VSyncStart: 600, VSyncEnd: 604, VTotal: 628,
			HSyncPositive: true, VSyncPositive: true,
		}, 39790080},
		{1024, 768, 32, modes.Timing{
			HDisplay: 1024, HSyncStart: 1064, HSyncEnd: 1200, HTotal: 1344,
			VDisplay: 768, VSyncStart: 771, VSyncEnd: 777, VTotal: 806,
		}, 64995840},
		// Panel mode scanned on the native 1024x768 raster.
		{320, 240, 16, modes.Timing{
			HDisplay: 1024, HSyncStart: 1064, HSyncEnd: 1200, HTotal: 1344,
			VDisplay: 768, VSyncStart: 771, VSyncEnd: 777, VTotal: 806,
		}, 64995840},
	}
	for _, tt := range tests {
		d, ok := modes.Default().Lookup(tt.w, tt.h, tt.bpp)
		if !ok {
			t.Fatalf("%dx%d-%d not found", tt.w, tt.h, tt.bpp)
		}
		got := d.Timing()
		if got != tt.want {
			t.Errorf("%v:\ngot  %+v\nwant %+v", d, got, tt.want)
		}
		if clk := got.PixelClockHz(d.RefreshHz); clk != tt.clock {
			t.Errorf("%v: pixel clock %d, want %d", d, clk, tt.clock)
		}
	}
}
