package header

import (
	"strconv"
	"strings"

	"github.com/mewkiz/blackbox/errs"
	"github.com/mewkiz/pkg/dbg"
	pkgerrors "github.com/pkg/errors"
)

// applyHeader dispatches one accumulated "H" header line (name and value
// already split on ':' and stripped of the leading "H "/"H" prefix) to the
// builder, per the §4.C recognized-header table.
func applyHeader(b *builder, name, value string, cfg *config) error {
	const op = "header.applyHeader"
	b.raw[name] = value

	if rest, ok := strings.CutPrefix(name, "Field "); ok {
		return applyFieldHeader(b, rest, value, cfg)
	}

	switch strings.ToLower(name) {
	case "firmware revision":
		v := value
		b.firmwareRevision = &v
	case "firmware type":
		family, err := parseFirmwareFamily(value)
		if err != nil {
			return errs.InvalidHeaderErr(op, name, value)
		}
		b.firmwareFamily = &family
	case "board information":
		v := value
		b.boardInfo = &v
	case "craft name":
		v := value
		b.craftName = &v
	case "vbatref":
		v, err := parseUint16(value)
		if err != nil {
			return errs.InvalidHeaderErrCause(op, name, value, err)
		}
		b.vbatRef = &v
	case "minthrottle":
		v, err := parseUint16(value)
		if err != nil {
			return errs.InvalidHeaderErrCause(op, name, value, err)
		}
		b.minThrottle = &v
	case "motoroutput":
		r, err := parseMotorOutput(value)
		if err != nil {
			return errs.InvalidHeaderErrCause(op, name, value, err)
		}
		b.motorOutput = &r
	default:
		dbg.Println("header: unrecognized header, skipping:", name)
	}
	return nil
}

// applyFieldHeader handles the "Field <K> <P>" family, where rest is
// whatever followed the literal "Field " prefix (e.g. "I name").
func applyFieldHeader(b *builder, rest, value string, cfg *config) error {
	const op = "header.applyFieldHeader"
	parts := strings.SplitN(rest, " ", 2)
	if len(parts) != 2 {
		return errs.UnknownHeaderErr(op, "Field "+rest)
	}
	kind, prop := parts[0], parts[1]

	var pf *pendingFrame
	switch kind {
	case "I":
		pf = &b.i
	case "P":
		pf = &b.p
	case "S":
		pf = &b.s
	default:
		return errs.UnknownHeaderErr(op, "Field "+rest)
	}

	items := strings.Split(value, ",")

	switch prop {
	case "name":
		pf.names = items
	case "signed":
		pf.signs = items
	case "predictor":
		pf.predictors = items
	case "encoding":
		pf.encodings = items
	case "width":
		cfg.warn.Printf("header: Field %s width is recognized but ignored", kind)
	default:
		return errs.UnknownHeaderErr(op, "Field "+rest)
	}
	return nil
}

func parseFirmwareFamily(value string) (FirmwareFamily, error) {
	switch {
	case strings.EqualFold(value, "Baseflight"):
		return FirmwareBaseflight, nil
	case strings.EqualFold(value, "Cleanflight"):
		return FirmwareCleanflight, nil
	case strings.EqualFold(value, "INav"):
		return FirmwareINav, nil
	default:
		return 0, errs.New(errs.InvalidHeader, "header.parseFirmwareFamily")
	}
}

func parseUint16(value string) (uint16, error) {
	v, err := strconv.ParseUint(value, 10, 16)
	if err != nil {
		return 0, pkgerrors.Wrap(err, "header.parseUint16")
	}
	return uint16(v), nil
}

func parseMotorOutput(value string) (MotorOutputRange, error) {
	parts := strings.SplitN(value, ",", 2)
	if len(parts) != 2 {
		return MotorOutputRange{}, pkgerrors.New("header.parseMotorOutput: expected \"min,max\"")
	}
	min, err := parseUint16(strings.TrimSpace(parts[0]))
	if err != nil {
		return MotorOutputRange{}, err
	}
	max, err := parseUint16(strings.TrimSpace(parts[1]))
	if err != nil {
		return MotorOutputRange{}, err
	}
	return MotorOutputRange{Min: min, Max: max}, nil
}
