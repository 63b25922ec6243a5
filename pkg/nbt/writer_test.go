package nbt

import (
	"bytes"
	"encoding/binary"
	"strings"
	"testing"

	"github.com/hansbonini/skinstatue/pkg/nbt/nbttest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteRoot_BigEndianBytes(t *testing.T) {
	root := NewCompound().
		Set("s", Short(0x0102)).
		Set("i", Int(-2))

	got, err := Marshal(binary.BigEndian, "R", root)
	require.NoError(t, err)

	want := []byte{
		0x0A, 0x00, 0x01, 'R', // root compound named "R"
		0x02, 0x00, 0x01, 's', 0x01, 0x02, // short
		0x03, 0x00, 0x01, 'i', 0xFF, 0xFF, 0xFF, 0xFE, // int
		0x00, // end
	}
	assert.Equal(t, want, got)
}

func TestWriteRoot_LittleEndianBytes(t *testing.T) {
	root := NewCompound().
		Set("s", Short(0x0102)).
		Set("l", IntList(1))

	got, err := Marshal(binary.LittleEndian, "", root)
	require.NoError(t, err)

	want := []byte{
		0x0A, 0x00, 0x00, // unnamed root
		0x02, 0x01, 0x00, 's', 0x02, 0x01, // short, swapped
		0x09, 0x01, 0x00, 'l', 0x03, 0x01, 0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, // list of one int
		0x00,
	}
	assert.Equal(t, want, got)
}

func TestCompoundSetReplacesInPlace(t *testing.T) {
	c := NewCompound().Set("a", Int(1)).Set("b", Int(2)).Set("a", Int(3))

	assert.Equal(t, []string{"a", "b"}, c.Keys())
	v, ok := c.Get("a")
	require.True(t, ok)
	assert.Equal(t, Int(3), v)
	_, ok = c.Get("missing")
	assert.False(t, ok)
}

func TestRoundTripAllTagTypes(t *testing.T) {
	for _, order := range []binary.ByteOrder{binary.BigEndian, binary.LittleEndian} {
		t.Run(order.String(), func(t *testing.T) {
			root := NewCompound().
				Set("byte", Byte(-3)).
				Set("short", Short(-300)).
				Set("int", Int(70000)).
				Set("long", Long(-1)).
				Set("float", Float(1.5)).
				Set("double", Double(-2.25)).
				Set("bytes", ByteArray{1, 2, 3}).
				Set("string", String("minecraft:white_wool")).
				Set("ints", IntArray{1, -1}).
				Set("longs", LongArray{1 << 40, -5}).
				Set("empty", NewList(TagCompound)).
				Set("nested", NewCompound().Set("x", Int(7)))

			data, err := MarshalGzip(order, "root", root)
			require.NoError(t, err)

			name, got, err := nbttest.DecodeGzip(data, order)
			require.NoError(t, err)
			assert.Equal(t, "root", name)
			assert.Equal(t, root.Keys(), got.Keys)
			assert.Equal(t, int8(-3), got.Get("byte"))
			assert.Equal(t, int16(-300), got.Get("short"))
			assert.Equal(t, int32(70000), got.Get("int"))
			assert.Equal(t, int64(-1), got.Get("long"))
			assert.Equal(t, float32(1.5), got.Get("float"))
			assert.Equal(t, -2.25, got.Get("double"))
			assert.Equal(t, []byte{1, 2, 3}, got.Get("bytes"))
			assert.Equal(t, "minecraft:white_wool", got.Get("string"))
			assert.Equal(t, []int32{1, -1}, got.Get("ints"))
			assert.Equal(t, []int64{1 << 40, -5}, got.Get("longs"))

			empty := got.Get("empty").(*nbttest.List)
			assert.Equal(t, byte(TagCompound), empty.Elem)
			assert.Empty(t, empty.Items)
			assert.Equal(t, int32(7), got.Compound("nested").Get("x"))
		})
	}
}

func TestListRejectsMixedTypes(t *testing.T) {
	root := NewCompound().Set("bad", NewList(TagInt).Add(Int(1), Long(2)))
	_, err := Marshal(binary.BigEndian, "", root)
	assert.Error(t, err)
}

func TestListInfersElementType(t *testing.T) {
	var buf bytes.Buffer
	l := &List{Items: []Tag{String("a")}}
	require.NoError(t, NewWriter(&buf, binary.BigEndian).WriteRoot("", NewCompound().Set("l", l)))

	_, got, err := nbttest.Decode(buf.Bytes(), binary.BigEndian)
	require.NoError(t, err)
	assert.Equal(t, byte(TagString), got.Get("l").(*nbttest.List).Elem)
}

func TestTagTypeString(t *testing.T) {
	assert.Equal(t, "TAG_Long_Array", TagLongArray.String())
	assert.Equal(t, "TagType(99)", TagType(99).String())
}

func TestWriteRejectsOversizedString(t *testing.T) {
	root := NewCompound().Set("s", String(strings.Repeat("x", 70000)))
	_, err := Marshal(binary.BigEndian, "", root)
	assert.ErrorContains(t, err, "out of range for uint16")
}
