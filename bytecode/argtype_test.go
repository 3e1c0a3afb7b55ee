package bytecode_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/advhd-tools/ws2kit/bytecode"
)

func TestArgMarshalScalars(t *testing.T) {
	tests := []struct {
		name string
		arg  bytecode.Arg
		want string
	}{
		{"u8", bytecode.Arg{Tag: bytecode.U8, U8: 7}, "7"},
		{"u16", bytecode.Arg{Tag: bytecode.U16, U16: 300}, "300"},
		{"u32", bytecode.Arg{Tag: bytecode.U32, U32: 70000}, "70000"},
		{"empty", bytecode.Arg{Tag: bytecode.Empty}, "null"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b, err := json.Marshal(tc.arg)
			require.NoError(t, err)
			require.JSONEq(t, tc.want, string(b))
		})
	}
}

func TestStrArgWellFormedMarshalsAsPlainString(t *testing.T) {
	s := bytecode.StrArg{Text: "こんにちは", WellFormed: true, Terminated: true}
	b, err := json.Marshal(s)
	require.NoError(t, err)
	require.JSONEq(t, `"こんにちは"`, string(b))
}

func TestStrArgMalformedMarshalsAsObject(t *testing.T) {
	s := bytecode.StrArg{Raw: "D8 00", Terminated: false, WellFormed: false}
	b, err := json.Marshal(s)
	require.NoError(t, err)
	require.JSONEq(t, `{"raw":"D8 00","terminated":false}`, string(b))
}

func TestStrArgUnmarshalRoundTrip(t *testing.T) {
	var s bytecode.StrArg
	require.NoError(t, json.Unmarshal([]byte(`"hello"`), &s))
	require.True(t, s.WellFormed)
	require.True(t, s.Terminated)
	require.Equal(t, "hello", s.Text)

	var s2 bytecode.StrArg
	require.NoError(t, json.Unmarshal([]byte(`{"raw":"41 00","terminated":true}`), &s2))
	require.False(t, s2.WellFormed)
	require.True(t, s2.Terminated)
	require.Equal(t, "41 00", s2.Raw)
}

func TestArrayArgMarshalsCountAndItems(t *testing.T) {
	arr := bytecode.ArrayArg{
		Elem: bytecode.U8,
		Items: []bytecode.Arg{
			{Tag: bytecode.U8, U8: 1},
			{Tag: bytecode.U8, U8: 2},
		},
	}
	b, err := json.Marshal(arr)
	require.NoError(t, err)
	require.JSONEq(t, `{"count":2,"items":[1,2]}`, string(b))
}

func TestArrayArgMarshalsEmptyItemsAsEmptyArray(t *testing.T) {
	var arr bytecode.ArrayArg
	b, err := json.Marshal(arr)
	require.NoError(t, err)
	require.JSONEq(t, `{"count":0,"items":[]}`, string(b))
}
