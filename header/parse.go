package header

import "github.com/mewkiz/blackbox/bitstream"

// Parse reads the textual header preamble from r and returns the finalized
// schema descriptor. r must be positioned at the start of the log; on
// success, r is left positioned at the first byte of the frame region (the
// byte that terminated the header section), ready for the frame decoder.
func Parse(r *bitstream.Reader, opts ...Option) (*Headers, error) {
	cfg := newConfig(opts)
	return run(r, cfg)
}
