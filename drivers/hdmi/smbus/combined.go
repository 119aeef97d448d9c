package smbus

// Msg is one part of a combined transaction: a write of W followed by a read
// into R, both addressed to Addr. Either may be empty.
type Msg struct {
	Addr uint16
	W, R []byte
}

// Combiner is implemented by buses that can run messages to different
// addresses with repeated starts in between and a single stop at the end.
// E-DDC needs this, the segment pointer resets on every stop.
type Combiner interface {
	TxCombined(msgs ...Msg) error
}
