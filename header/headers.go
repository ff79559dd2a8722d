// Package header implements the textual preamble state machine that turns
// the "H"-prefixed key/value lines at the start of a blackbox log into a
// validated Headers schema descriptor, consumed by the (out of scope) frame
// decoder to select which codec to call per field.
package header

import "github.com/mewkiz/blackbox/codec"

// Version identifies the log format version, re-exported from codec so
// that Headers.Version can be passed straight into version-branched codecs
// like codec.Tagged16 without a conversion at the call site.
type Version = codec.Version

// Recognized log format versions.
const (
	V1 = codec.V1
	V2 = codec.V2
)

// Encoding identifies which of the closed set of integer codecs a field
// uses. The numeric value is the wire tag from the log's "Field ... encoding"
// header.
type Encoding int

// Recognized field encodings. Tag 2 has no assigned meaning in the format
// and is never produced by Finalize.
const (
	EncodingVariableSigned   Encoding = 0
	EncodingVariable         Encoding = 1
	EncodingNegative14Bit    Encoding = 3
	EncodingEliasDelta       Encoding = 4
	EncodingEliasDeltaSigned Encoding = 5
	EncodingTaggedVariable   Encoding = 6
	EncodingTagged32         Encoding = 7
	EncodingTagged16         Encoding = 8
	EncodingNull             Encoding = 9
	EncodingEliasGamma       Encoding = 10
	EncodingEliasGammaSigned Encoding = 11
)

func (e Encoding) String() string {
	switch e {
	case EncodingVariableSigned:
		return "VariableSigned"
	case EncodingVariable:
		return "Variable"
	case EncodingNegative14Bit:
		return "Negative14Bit"
	case EncodingEliasDelta:
		return "EliasDelta"
	case EncodingEliasDeltaSigned:
		return "EliasDeltaSigned"
	case EncodingTaggedVariable:
		return "TaggedVariable"
	case EncodingTagged32:
		return "Tagged32"
	case EncodingTagged16:
		return "Tagged16"
	case EncodingNull:
		return "Null"
	case EncodingEliasGamma:
		return "EliasGamma"
	case EncodingEliasGammaSigned:
		return "EliasGammaSigned"
	default:
		return "Encoding(?)"
	}
}

// recognizedEncodings is the closed set of valid wire tags, used to reject
// tag 2 and anything outside the table.
var recognizedEncodings = map[Encoding]bool{
	EncodingVariableSigned: true, EncodingVariable: true, EncodingNegative14Bit: true,
	EncodingEliasDelta: true, EncodingEliasDeltaSigned: true, EncodingTaggedVariable: true,
	EncodingTagged32: true, EncodingTagged16: true, EncodingNull: true,
	EncodingEliasGamma: true, EncodingEliasGammaSigned: true,
}

// FieldDef describes a single field of a frame: its name, signedness, the
// (opaque to this package) predictor id used between successive frames, and
// the encoding used to decode it.
type FieldDef struct {
	Name      string
	Signed    bool
	Predictor int
	Encoding  Encoding
}

// FrameDef is the ordered sequence of field definitions for one frame kind.
// Names, Signs, Predictors and Encodings are parallel slices of equal
// length once finalization has succeeded. For the main frame, Deltas is an
// additional parallel slice recording which fields the P-frame encodes as a
// delta from the previous frame (predictor 0 means "not delta-encoded"); it
// is nil for the slow frame.
type FrameDef struct {
	Names      []string
	Signs      []bool
	Predictors []int
	Encodings  []Encoding
	Deltas     []bool
}

// Fields zips the parallel slices into a slice of FieldDef, for callers that
// prefer to walk one field at a time.
func (fd *FrameDef) Fields() []FieldDef {
	out := make([]FieldDef, len(fd.Names))
	for i := range fd.Names {
		out[i] = FieldDef{
			Name:      fd.Names[i],
			Signed:    fd.Signs[i],
			Predictor: fd.Predictors[i],
			Encoding:  fd.Encodings[i],
		}
	}
	return out
}

// FirmwareFamily identifies the flight controller firmware that produced
// the log.
type FirmwareFamily int

// Recognized firmware families.
const (
	FirmwareBaseflight FirmwareFamily = iota
	FirmwareCleanflight
	FirmwareINav
)

func (f FirmwareFamily) String() string {
	switch f {
	case FirmwareBaseflight:
		return "Baseflight"
	case FirmwareCleanflight:
		return "Cleanflight"
	case FirmwareINav:
		return "INav"
	default:
		return "FirmwareFamily(?)"
	}
}

// MotorOutputRange is the optional "min,max" motor output pair.
type MotorOutputRange struct {
	Min, Max uint16
}

// Headers is the finalized schema descriptor produced by Parse: the log
// format version, the frame definitions for the main (I/P) and slow (S)
// frames, and the firmware/craft metadata recorded in the preamble.
//
// Headers is created once per log and is immutable thereafter; it is safe
// to share across goroutines once Parse returns, even though Parse itself
// is not concurrent.
type Headers struct {
	Version Version

	Main FrameDef
	Slow FrameDef

	FirmwareFamily   FirmwareFamily
	FirmwareRevision string
	BoardInfo        string
	CraftName        string
	VbatRef          uint16
	MinThrottle      *uint16
	MotorOutput      *MotorOutputRange

	// Raw holds every "H"-prefixed header value seen, keyed by name exactly
	// as it appeared on the line, including ones that also drove a named
	// effect above. Firmware variants occasionally emit header names this
	// package has no dedicated effect for; Raw keeps them available without
	// requiring a parser change to read them back.
	Raw map[string]string
}

// MainFields returns the field definitions of the main (I/P) frame.
func (h *Headers) MainFields() []FieldDef { return h.Main.Fields() }

// SlowFields returns the field definitions of the slow (S) frame.
func (h *Headers) SlowFields() []FieldDef { return h.Slow.Fields() }
