package header

import (
	"bytes"
	"fmt"
	"unicode/utf8"

	"github.com/mewkiz/blackbox/bitstream"
	"github.com/mewkiz/blackbox/errs"
	"github.com/mewkiz/pkg/dbg"
)

// state identifies one of the four states of the header preamble state
// machine. Implemented as a small tagged enum rather than dynamic dispatch,
// per the no-cyclic-structures design note.
type state int

const (
	stateExpectProduct state = iota
	stateExpectDataVersion
	stateAccumulating
	stateFinalizing
)

// readHeaderLine reads one "H"-prefixed line and splits it into its name
// and value, per the header line grammar: 'H', an optional single space,
// then "name:value".
func readHeaderLine(r *bitstream.Reader) (name, value string, err error) {
	const op = "header.readHeaderLine"

	line, ok := r.ReadLine()
	if !ok {
		return "", "", errs.UnexpectedEOFErr(op)
	}
	if len(line) == 0 || line[0] != 'H' {
		return "", "", errs.CorruptedErr(op, fmt.Sprintf("expected a header line starting with 'H', got %q", line))
	}
	rest := line[1:]
	if !utf8.Valid(rest) {
		return "", "", errs.New(errs.HeaderInvalidUTF8, op)
	}
	if len(rest) > 0 && rest[0] == ' ' {
		rest = rest[1:]
	}
	idx := bytes.IndexByte(rest, ':')
	if idx < 0 {
		return "", "", errs.New(errs.HeaderMissingColon, op)
	}
	return string(rest[:idx]), string(rest[idx+1:]), nil
}

// parseVersion maps a "Data version" header value to a recognized Version.
func parseVersion(value string) (Version, error) {
	switch value {
	case "1":
		return V1, nil
	case "2":
		return V2, nil
	default:
		return 0, errs.InvalidHeaderErr("header.parseVersion", "Data version", value)
	}
}

// run drives the state machine to completion, returning the finalized
// Headers or the first fatal error encountered.
func run(r *bitstream.Reader, cfg *config) (*Headers, error) {
	b := newBuilder()
	st := stateExpectProduct

	for {
		switch st {
		case stateExpectProduct:
			name, value, err := readHeaderLine(r)
			if err != nil {
				return nil, err
			}
			if name != "Product" {
				return nil, errs.CorruptedErr("header.run", fmt.Sprintf("expected \"Product\" header first, got %q", name))
			}
			b.raw[name] = value
			b.productSeen = true
			dbg.Println("header: Product:", value)
			st = stateExpectDataVersion

		case stateExpectDataVersion:
			name, value, err := readHeaderLine(r)
			if err != nil {
				return nil, err
			}
			if name != "Data version" {
				return nil, errs.CorruptedErr("header.run", fmt.Sprintf("expected \"Data version\" header second, got %q", name))
			}
			version, err := parseVersion(value)
			if err != nil {
				return nil, err
			}
			b.raw[name] = value
			b.version = version
			b.versionSet = true
			dbg.Println("header: Data version:", value)
			st = stateAccumulating

		case stateAccumulating:
			next, ok := r.Peek()
			if !ok {
				return nil, errs.UnexpectedEOFErr("header.run")
			}
			if next != 'H' {
				st = stateFinalizing
				continue
			}
			name, value, err := readHeaderLine(r)
			if err != nil {
				return nil, err
			}
			dbg.Println("header: accepted:", name, "=", value)
			if err := applyHeader(b, name, value, cfg); err != nil {
				return nil, err
			}

		case stateFinalizing:
			return b.finalize(cfg)
		}
	}
}
