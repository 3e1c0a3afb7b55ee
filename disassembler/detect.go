package disassembler

import "github.com/advhd-tools/ws2kit/bytecode"

// checkValidity walks data as a stream of generic table-driven opcodes (the
// specially-handled opcodes are not special-cased here: 0x01, 0x02, 0x06,
// 0x0F and 0xE6 are walked by their Sig entries as they stand, which for
// 0x01 and 0x0F do not follow their variable on-disk shape, and 0xFF has no
// Sig entry, so it counts as an unknown opcode) and
// reports how many consecutive valid opcodes it found before hitting an
// unknown opcode, a CountedArray (which it can't skip past without fully
// decoding, so it stops and reports what it has), or instructions-checked
// reaching limit. An unknown opcode anywhere in the sample invalidates the
// whole sample, reported as -1. Running out of buffer mid-argument is not
// the same thing: it means the sample's last instruction was simply cut
// off by the window, so the count of opcodes confirmed valid before it is
// returned as-is instead of being discarded.
func checkValidity(data []byte, limit int) int {
	r := bytecode.NewReader(data)
	valid := 0
	for checked := 0; checked < limit; checked++ {
		if r.Pos() >= r.Len() {
			break
		}
		op, err := r.U8()
		if err != nil {
			return -1
		}
		sig, ok := bytecode.Sig[op]
		if !ok {
			return -1
		}
		valid++
		for i := 0; i < len(sig); i++ {
			tag := sig[i]
			if tag == bytecode.CountedArray {
				if _, err := r.U8(); err != nil {
					return valid - 1
				}
				// Skipping a variable-length array without decoding each
				// element is impractical here; stop deepening and report
				// what's confirmed so far.
				return valid
			}
			if tag == bytecode.Empty {
				// Zero wire bytes; does not advance the cursor.
				continue
			}
			if w := tag.Width(); w >= 0 {
				if err := skip(r, w); err != nil {
					// Ran out of buffer mid-argument on this sample's last
					// instruction; report what was confirmed valid before it,
					// not -1 (that's reserved for an actually unknown opcode).
					return valid - 1
				}
				continue
			}
			// Str: scan forward for the 0x0000 terminator.
			r.Str16()
		}
	}
	return valid
}

func skip(r *bytecode.Reader, n int) error {
	switch n {
	case 1:
		_, err := r.U8()
		return err
	case 2:
		_, err := r.U16LE()
		return err
	case 4:
		_, err := r.U32LE()
		return err
	}
	return nil
}

// Detect implements the auto-detector (§4.4): it scores the buffer as-is
// against the opcode table, scores a decoded copy of a leading sample, and
// escalates both the instruction count and the decode-sample size when the
// two scores tie, before finally preferring whichever mode scored higher.
// A tie after the deepest escalation returns ModeDecrypted (the buffer is
// taken as plaintext), matching the original's "default to decrypted"
// fallback.
func Detect(data []byte) Mode {
	if len(data) == 0 {
		return ModeDecrypted
	}

	sampleSize := 2000
	if sampleSize > len(data) {
		sampleSize = len(data)
	}
	decodedSample := bytecode.Decode(data[:sampleSize])

	scorePlain := checkValidity(data, 20)
	scoreEncrypted := checkValidity(decodedSample, 20)

	if scorePlain == scoreEncrypted && scorePlain > 0 {
		scorePlain = checkValidity(data, 100)
		scoreEncrypted = checkValidity(decodedSample, 100)
	}

	if scorePlain == scoreEncrypted && scorePlain > 0 {
		largeSize := 10000
		if largeSize > len(data) {
			largeSize = len(data)
		}
		decodedLarge := bytecode.Decode(data[:largeSize])
		scorePlain = checkValidity(data, 500)
		scoreEncrypted = checkValidity(decodedLarge, 500)
	}

	if scoreEncrypted > scorePlain {
		return ModeEncrypted
	}
	return ModeDecrypted
}
