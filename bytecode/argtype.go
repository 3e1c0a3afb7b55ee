package bytecode

import "encoding/json"

// ArgTag discriminates the wire shape of one argument slot in an opcode's
// signature. This is the "tagged sum" design note §9 calls for; pointer
// rendering (loc_XXXXXXXX vs decimal) is a presentation decision made by
// the opcode-specific decoders in package disassembler, not a distinct tag
// here — the seven cases below are exactly the wire shapes the format uses.
type ArgTag int

const (
	U8 ArgTag = iota
	U16
	U32
	F32
	Str
	Empty
	CountedArray
)

// Width reports the fixed wire width in bytes for the scalar tags used by
// the auto-detector's skip-ahead walker. Str and CountedArray have no fixed
// width and are not valid inputs.
func (t ArgTag) Width() int {
	switch t {
	case U8:
		return 1
	case U16:
		return 2
	case U32, F32:
		return 4
	default:
		return -1
	}
}

// StrArg holds a decoded Str16 argument. Text is the UTF-16-decoded string,
// valid only when WellFormed is true. Raw is the original bytes (terminator
// excluded) as a space-separated uppercase hex dump, rendered as JSON when the string decodes poorly or was cut off by a
// truncated buffer instead of a 0x0000 terminator.
type StrArg struct {
	Text       string
	Raw        string
	Terminated bool
	WellFormed bool
}

// strJSON is the object shape used for a StrArg that isn't a clean string.
type strJSON struct {
	Raw        string `json:"raw"`
	Terminated bool   `json:"terminated"`
}

// MarshalJSON renders a well-formed, terminated string as a plain JSON
// string; anything else (malformed UTF-16, or cut short by buffer end)
// renders as {"raw":..., "terminated":...} per the wire format.
func (s StrArg) MarshalJSON() ([]byte, error) {
	if s.WellFormed && s.Terminated {
		return json.Marshal(s.Text)
	}
	return json.Marshal(strJSON{Raw: s.Raw, Terminated: s.Terminated})
}

// UnmarshalJSON accepts either shape: a plain string, or the raw/terminated
// object. Used by the assembler and by jsontext's import path.
func (s *StrArg) UnmarshalJSON(b []byte) error {
	var plain string
	if err := json.Unmarshal(b, &plain); err == nil {
		s.Text = plain
		s.WellFormed = true
		s.Terminated = true
		return nil
	}
	var obj strJSON
	if err := json.Unmarshal(b, &obj); err != nil {
		return err
	}
	s.Raw = obj.Raw
	s.Terminated = obj.Terminated
	s.WellFormed = false
	return nil
}

// ArrayArg is a CountedArray argument: a count byte followed by Count
// homogeneous items of Elem's tag.
type ArrayArg struct {
	Elem     ArgTag
	Items    []Arg
	rawItems []json.RawMessage
}

// RawItems returns the item payloads recorded by UnmarshalJSON, for the
// caller to decode once it knows the element ArgTag.
func (a ArrayArg) RawItems() []json.RawMessage { return a.rawItems }

// arrayJSON is the {count, items} object shape §3 specifies.
type arrayJSON struct {
	Count int   `json:"count"`
	Items []Arg `json:"items"`
}

// MarshalJSON renders {"count": N, "items": [...]} per the wire format.
func (a ArrayArg) MarshalJSON() ([]byte, error) {
	items := a.Items
	if items == nil {
		items = []Arg{}
	}
	return json.Marshal(arrayJSON{Count: len(items), Items: items})
}

// UnmarshalJSON reads the {count, items} shape back. Elem must be set by
// the caller afterward from the owning opcode's signature — the wire form
// doesn't carry the element type.
func (a *ArrayArg) UnmarshalJSON(b []byte) error {
	var obj struct {
		Count int               `json:"count"`
		Items []json.RawMessage `json:"items"`
	}
	if err := json.Unmarshal(b, &obj); err != nil {
		return err
	}
	a.rawItems = obj.Items
	return nil
}

// Arg is one decoded or to-be-encoded instruction argument. Tag selects
// which field is meaningful; the zero value of the others is ignored.
type Arg struct {
	Tag   ArgTag
	U8    uint8
	U16   uint16
	U32   uint32
	F32   float32
	Str   StrArg
	Array ArrayArg
}

// MarshalJSON renders the field selected by Tag, matching §3's per-type
// JSON rendering rule (plain numbers for U8/U16/U32/F32, nothing for
// Empty, the StrArg/ArrayArg shapes above for Str/CountedArray).
func (a Arg) MarshalJSON() ([]byte, error) {
	switch a.Tag {
	case U8:
		return json.Marshal(a.U8)
	case U16:
		return json.Marshal(a.U16)
	case U32:
		return json.Marshal(a.U32)
	case F32:
		return json.Marshal(a.F32)
	case Str:
		return json.Marshal(a.Str)
	case CountedArray:
		return json.Marshal(a.Array)
	case Empty:
		return json.Marshal(nil)
	default:
		return json.Marshal(nil)
	}
}
