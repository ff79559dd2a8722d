package header

import (
	"strconv"

	"github.com/mewkiz/blackbox/errs"
)

// pendingFrame accumulates the raw comma-separated values of the "Field <K>
// <P>" headers for one frame kind, to be parsed and validated together at
// Finalize. A later header of the same (K, P) pair overwrites an earlier
// one; the format emits each exactly once in practice.
type pendingFrame struct {
	names      []string
	signs      []string
	predictors []string
	encodings  []string
}

// builder accumulates header state across the Accumulating state, to be
// validated and turned into a Headers by finalize.
type builder struct {
	productSeen bool
	version     Version
	versionSet  bool

	i, p, s pendingFrame

	firmwareFamily   *FirmwareFamily
	firmwareRevision *string
	boardInfo        *string
	craftName        *string
	vbatRef          *uint16
	minThrottle      *uint16
	motorOutput      *MotorOutputRange

	raw map[string]string
}

func newBuilder() *builder {
	return &builder{raw: make(map[string]string)}
}

// buildFrameDef parses and validates one pendingFrame's raw CSV fields into
// a FrameDef. deltaSource, if non-nil, supplies the P-frame's predictor
// values used to compute Deltas on the main frame; nil for the slow frame.
func buildFrameDef(op string, pf pendingFrame, deltaSource *pendingFrame) (FrameDef, error) {
	names := pf.names
	n := len(names)

	signs, err := parseBoolList(op, "signed", pf.signs, n)
	if err != nil {
		return FrameDef{}, err
	}
	predictors, err := parseIntList(op, "predictor", pf.predictors, n)
	if err != nil {
		return FrameDef{}, err
	}
	encodings, err := parseEncodingList(op, pf.encodings, n)
	if err != nil {
		return FrameDef{}, err
	}

	if len(signs) != n || len(predictors) != n || len(encodings) != n {
		return FrameDef{}, errs.CorruptedErr(op, "frame field lists have mismatched cardinality")
	}

	fd := FrameDef{Names: names, Signs: signs, Predictors: predictors, Encodings: encodings}

	if deltaSource != nil {
		deltaPreds, err := parseIntList(op, "predictor", deltaSource.predictors, len(deltaSource.names))
		if err != nil {
			return FrameDef{}, err
		}
		if len(deltaSource.names) > 0 {
			if len(deltaSource.names) != n {
				return FrameDef{}, errs.CorruptedErr(op, "I and P frame definitions have different field counts")
			}
			for i, name := range deltaSource.names {
				if name != names[i] {
					return FrameDef{}, errs.CorruptedErr(op, "I and P frame definitions have different field names")
				}
			}
			if deltaPreds != nil && len(deltaPreds) != n {
				return FrameDef{}, errs.CorruptedErr(op, "P frame field lists have mismatched cardinality")
			}
			deltas := make([]bool, n)
			for i, pred := range deltaPreds {
				deltas[i] = pred != 0
			}
			fd.Deltas = deltas
		} else {
			// No "Field P name" header was seen: the P-frame defaults to
			// exactly mirror I, with no fields marked delta-encoded. This
			// does not depend on strict mode.
			fd.Deltas = make([]bool, n)
		}
	}

	return fd, nil
}

func parseBoolList(op, prop string, raw []string, want int) ([]bool, error) {
	if raw == nil {
		return nil, nil
	}
	out := make([]bool, len(raw))
	for i, s := range raw {
		switch s {
		case "0":
			out[i] = false
		case "1":
			out[i] = true
		default:
			return nil, errs.InvalidHeaderErr(op, prop, s)
		}
	}
	return out, nil
}

func parseIntList(op, prop string, raw []string, want int) ([]int, error) {
	if raw == nil {
		return nil, nil
	}
	out := make([]int, len(raw))
	for i, s := range raw {
		v, err := strconv.Atoi(s)
		if err != nil {
			return nil, errs.InvalidHeaderErr(op, prop, s)
		}
		out[i] = v
	}
	return out, nil
}

func parseEncodingList(op string, raw []string, want int) ([]Encoding, error) {
	if raw == nil {
		return nil, nil
	}
	out := make([]Encoding, len(raw))
	for i, s := range raw {
		v, err := strconv.Atoi(s)
		if err != nil {
			return nil, errs.InvalidHeaderErr(op, "encoding", s)
		}
		enc := Encoding(v)
		if !recognizedEncodings[enc] {
			return nil, errs.InvalidHeaderErr(op, "encoding", s)
		}
		out[i] = enc
	}
	return out, nil
}

// finalize validates the accumulated builder state and emits the schema
// descriptor, per the Finalizing state.
func (b *builder) finalize(cfg *config) (*Headers, error) {
	const op = "header.Finalize"

	main, err := buildFrameDef(op, b.i, &b.p)
	if err != nil {
		return nil, err
	}
	slow, err := buildFrameDef(op, b.s, nil)
	if err != nil {
		return nil, err
	}

	h := &Headers{
		Version: b.version,
		Main:    main,
		Slow:    slow,
		Raw:     b.raw,
	}

	if b.firmwareFamily != nil {
		h.FirmwareFamily = *b.firmwareFamily
	} else if cfg.strict {
		return nil, errs.MissingHeaderErr(op, "firmware type")
	}

	if b.firmwareRevision != nil {
		h.FirmwareRevision = *b.firmwareRevision
	} else if cfg.strict {
		return nil, errs.MissingHeaderErr(op, "firmware revision")
	}

	if b.boardInfo != nil {
		h.BoardInfo = *b.boardInfo
	} else if cfg.strict {
		return nil, errs.MissingHeaderErr(op, "board information")
	}

	if b.craftName != nil {
		h.CraftName = *b.craftName
	} else if cfg.strict {
		return nil, errs.MissingHeaderErr(op, "craft name")
	}

	if b.vbatRef != nil {
		h.VbatRef = *b.vbatRef
	} else if cfg.strict {
		return nil, errs.MissingHeaderErr(op, "vbatref")
	}

	h.MinThrottle = b.minThrottle
	h.MotorOutput = b.motorOutput

	return h, nil
}
