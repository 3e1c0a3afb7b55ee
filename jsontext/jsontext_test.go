package jsontext_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/advhd-tools/ws2kit/bytecode"
	"github.com/advhd-tools/ws2kit/disassembler"
	"github.com/advhd-tools/ws2kit/jsontext"
)

// encodeStr16 writes s as UTF-16LE terminated by 0x0000.
func encodeStr16(s string) []byte {
	w := bytecode.NewWriter()
	w.WriteStr16(s, true)
	return w.Bytes()
}

func buildScript(parts ...[]byte) []byte {
	var out []byte
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

// setDisplayName builds a 0x15 instruction: Str, Empty(0 bytes), U8.
func setDisplayName(name string, trailing uint8) []byte {
	out := []byte{0x15}
	out = append(out, encodeStr16(name)...)
	out = append(out, trailing)
	return out
}

// displayMessage builds a 0x14 instruction: U32, Str, Empty, Str, Empty, U8.
func displayMessage(id uint32, speakerSlot string, message string, trailing uint8) []byte {
	w := bytecode.NewWriter()
	w.WriteU8(0x14)
	w.WriteU32LE(id)
	w.WriteStr16(speakerSlot, true)
	w.WriteStr16(message, true)
	w.WriteU8(trailing)
	return w.Bytes()
}

func strPtr(s string) *string { return &s }

func TestExtractDialogueWithSpeakerName(t *testing.T) {
	raw := buildScript(
		setDisplayName("%LC佐藤", 0),
		displayMessage(1, "", "こんにちは%K%P", 0),
	)
	entries := jsontext.Extract(raw, disassembler.ModeDecrypted)
	require.Len(t, entries, 1)
	require.NotNil(t, entries[0].Name)
	require.Equal(t, "佐藤", *entries[0].Name)
	require.Equal(t, "こんにちは", entries[0].Message)
}

func TestExtractSkipsEmptyMessageAfterStrippingControlCodes(t *testing.T) {
	raw := buildScript(displayMessage(1, "", "%K%P", 0))
	entries := jsontext.Extract(raw, disassembler.ModeDecrypted)
	require.Empty(t, entries)
}

func TestExtractClearingDisplayNameDropsSpeaker(t *testing.T) {
	raw := buildScript(
		setDisplayName("%LC佐藤", 0),
		setDisplayName("", 0),
		displayMessage(1, "", "hello", 0),
	)
	entries := jsontext.Extract(raw, disassembler.ModeDecrypted)
	require.Len(t, entries, 1)
	require.Empty(t, entries[0].Name)
}

func TestImportReplacesMessageTextPreservingControlSuffix(t *testing.T) {
	raw := buildScript(displayMessage(1, "", "original%K%P", 0))

	entries := jsontext.Extract(raw, disassembler.ModeDecrypted)
	require.Len(t, entries, 1)
	entries[0].Message = "translated"

	out, err := jsontext.Import(raw, entries, t.TempDir()+"/out.ws2", disassembler.ModeDecrypted, bytecode.NopSink{})
	require.NoError(t, err)

	res := disassembler.Disassemble(out, disassembler.ModeDecrypted)
	require.Len(t, res.Instructions, 1)
	msg, ok := res.Instructions[0].Args[3].(bytecode.Arg)
	require.True(t, ok)
	require.Equal(t, "translated%K%P", msg.Str.Text)
}

func TestImportRetroactivelyPatchesSpeakerName(t *testing.T) {
	raw := buildScript(
		setDisplayName("%LC佐藤", 0),
		displayMessage(1, "", "hello", 0),
	)

	entries := jsontext.Extract(raw, disassembler.ModeDecrypted)
	require.Len(t, entries, 1)
	entries[0].Name = strPtr("鈴木")
	entries[0].Message = "hi"

	out, err := jsontext.Import(raw, entries, t.TempDir()+"/out.ws2", disassembler.ModeDecrypted, bytecode.NopSink{})
	require.NoError(t, err)

	res := disassembler.Disassemble(out, disassembler.ModeDecrypted)
	require.Len(t, res.Instructions, 2)
	name, ok := res.Instructions[0].Args[0].(bytecode.Arg)
	require.True(t, ok)
	require.Equal(t, "%LC鈴木", name.Str.Text)
}

func TestImportExplicitEmptyNameClearsSpeaker(t *testing.T) {
	raw := buildScript(
		setDisplayName("%LC佐藤", 0),
		displayMessage(1, "", "hello", 0),
	)

	entries := jsontext.Extract(raw, disassembler.ModeDecrypted)
	require.Len(t, entries, 1)
	entries[0].Name = strPtr("") // explicit, as opposed to the field being absent
	entries[0].Message = "hi"

	out, err := jsontext.Import(raw, entries, t.TempDir()+"/out.ws2", disassembler.ModeDecrypted, bytecode.NopSink{})
	require.NoError(t, err)

	res := disassembler.Disassemble(out, disassembler.ModeDecrypted)
	require.Len(t, res.Instructions, 2)
	name, ok := res.Instructions[0].Args[0].(bytecode.Arg)
	require.True(t, ok)
	require.Equal(t, "%LC", name.Str.Text)
}

func TestImportAbsentNameLeavesSpeakerUnchanged(t *testing.T) {
	raw := buildScript(
		setDisplayName("%LC佐藤", 0),
		displayMessage(1, "", "hello", 0),
	)

	entries := jsontext.Extract(raw, disassembler.ModeDecrypted)
	require.Len(t, entries, 1)
	entries[0].Name = nil // JSON omitted "name" entirely
	entries[0].Message = "hi"

	out, err := jsontext.Import(raw, entries, t.TempDir()+"/out.ws2", disassembler.ModeDecrypted, bytecode.NopSink{})
	require.NoError(t, err)

	res := disassembler.Disassemble(out, disassembler.ModeDecrypted)
	require.Len(t, res.Instructions, 2)
	name, ok := res.Instructions[0].Args[0].(bytecode.Arg)
	require.True(t, ok)
	require.Equal(t, "%LC佐藤", name.Str.Text)
}

func TestImportReencryptsWhenOriginalWasEncrypted(t *testing.T) {
	plain := buildScript(displayMessage(1, "", "hi", 0))
	encrypted := bytecode.Encode(plain)

	entries := jsontext.Extract(encrypted, disassembler.ModeAuto)
	require.Len(t, entries, 1)
	entries[0].Message = "bye"

	out, err := jsontext.Import(encrypted, entries, t.TempDir()+"/out.ws2", disassembler.ModeAuto, bytecode.NopSink{})
	require.NoError(t, err)

	res := disassembler.Disassemble(out, disassembler.ModeAuto)
	require.Equal(t, disassembler.ModeEncrypted, res.ResolvedMode)
	msg, ok := res.Instructions[0].Args[3].(bytecode.Arg)
	require.True(t, ok)
	require.Equal(t, "bye", msg.Str.Text)
}
