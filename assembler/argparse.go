package assembler

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/advhd-tools/ws2kit/bytecode"
)

// parseScalar decodes one JSON argument value into a bytecode.Arg of the
// given non-array, non-empty tag.
func parseScalar(tag bytecode.ArgTag, raw json.RawMessage) (bytecode.Arg, error) {
	switch tag {
	case bytecode.U8:
		var v uint8
		if err := json.Unmarshal(raw, &v); err != nil {
			return bytecode.Arg{}, err
		}
		return bytecode.Arg{Tag: bytecode.U8, U8: v}, nil
	case bytecode.U16:
		var v uint16
		if err := json.Unmarshal(raw, &v); err != nil {
			return bytecode.Arg{}, err
		}
		return bytecode.Arg{Tag: bytecode.U16, U16: v}, nil
	case bytecode.U32:
		var v uint32
		if err := json.Unmarshal(raw, &v); err != nil {
			return bytecode.Arg{}, err
		}
		return bytecode.Arg{Tag: bytecode.U32, U32: v}, nil
	case bytecode.F32:
		var v float32
		if err := json.Unmarshal(raw, &v); err != nil {
			return bytecode.Arg{}, err
		}
		return bytecode.Arg{Tag: bytecode.F32, F32: v}, nil
	case bytecode.Str:
		var s bytecode.StrArg
		if err := json.Unmarshal(raw, &s); err != nil {
			return bytecode.Arg{}, err
		}
		return bytecode.Arg{Tag: bytecode.Str, Str: s}, nil
	default:
		return bytecode.Arg{}, fmt.Errorf("%w: unexpected scalar tag %d", ErrArgMismatch, tag)
	}
}

// parseArray decodes a CountedArray argument: the {count, items} object,
// each item decoded as elem.
func parseArray(elem bytecode.ArgTag, raw json.RawMessage) (bytecode.ArrayArg, error) {
	var arr bytecode.ArrayArg
	if err := json.Unmarshal(raw, &arr); err != nil {
		return bytecode.ArrayArg{}, err
	}
	arr.Elem = elem
	for _, item := range arr.RawItems() {
		a, err := parseScalar(elem, item)
		if err != nil {
			return bytecode.ArrayArg{}, err
		}
		arr.Items = append(arr.Items, a)
	}
	return arr, nil
}

// writeScalar encodes a decoded scalar Arg to w.
func writeScalar(w *bytecode.Writer, a bytecode.Arg) error {
	switch a.Tag {
	case bytecode.U8:
		w.WriteU8(a.U8)
	case bytecode.U16:
		w.WriteU16LE(a.U16)
	case bytecode.U32:
		w.WriteU32LE(a.U32)
	case bytecode.F32:
		w.WriteF32LE(a.F32)
	case bytecode.Str:
		if a.Str.WellFormed {
			w.WriteStr16(a.Str.Text, true)
		} else {
			if err := w.WriteRawHex(a.Str.Raw); err != nil {
				return err
			}
			if a.Str.Terminated {
				w.WriteU16LE(0)
			}
		}
	default:
		return fmt.Errorf("%w: unexpected scalar tag %d", ErrArgMismatch, a.Tag)
	}
	return nil
}

// writeArray encodes a CountedArray argument: the count byte, then each
// item re-encoded per Elem.
func writeArray(w *bytecode.Writer, arr bytecode.ArrayArg) error {
	w.WriteU8(uint8(len(arr.Items)))
	for _, item := range arr.Items {
		if err := writeScalar(w, item); err != nil {
			return err
		}
	}
	return nil
}

// parsePointer resolves a code-pointer JSON value: a bare number, a
// loc_XXXXXXXX string (looked up in labels, warning and defaulting to 0 if
// absent), or a numeric string coerced to an integer.
func parsePointer(raw json.RawMessage, labels map[string]uint32, warn func(string)) (uint32, error) {
	var num float64
	if err := json.Unmarshal(raw, &num); err == nil {
		return uint32(num), nil
	}

	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return 0, fmt.Errorf("%w: pointer argument is neither number nor string", ErrArgMismatch)
	}
	if strings.HasPrefix(s, "loc_") {
		if off, ok := labels[s]; ok {
			return off, nil
		}
		warn(fmt.Sprintf("unresolved label %s, using 0", s))
		return 0, nil
	}
	if n, err := strconv.ParseUint(s, 10, 32); err == nil {
		return uint32(n), nil
	}
	return 0, nil
}
