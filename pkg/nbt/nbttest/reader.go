// Package nbttest decodes tag trees back into plain Go values so tests can
// inspect encoder output. It is test tooling, not a general reader.
package nbttest

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"github.com/klauspost/compress/gzip"
)

// Compound is a decoded compound with its keys in file order.
type Compound struct {
	Keys   []string
	Values map[string]any
}

// Get returns the value under key.
func (c *Compound) Get(key string) any {
	return c.Values[key]
}

// Compound returns the nested compound under key, or nil.
func (c *Compound) Compound(key string) *Compound {
	v, _ := c.Values[key].(*Compound)
	return v
}

// List is a decoded list with its declared element type id.
type List struct {
	Elem  byte
	Items []any
}

// Gunzip inflates a gzip stream.
func Gunzip(data []byte) ([]byte, error) {
	zr, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer zr.Close()
	return io.ReadAll(zr)
}

// Decode parses an uncompressed tree and returns the root name and compound.
func Decode(data []byte, order binary.ByteOrder) (string, *Compound, error) {
	d := &decoder{r: bytes.NewReader(data), order: order}
	typ := d.byte()
	if d.err == nil && typ != 10 {
		return "", nil, fmt.Errorf("root tag is %d, want compound", typ)
	}
	name := d.string()
	root := d.compound()
	if d.err != nil {
		return "", nil, d.err
	}
	if d.r.Len() != 0 {
		return "", nil, fmt.Errorf("%d trailing bytes", d.r.Len())
	}
	return name, root, nil
}

// DecodeGzip gunzips and decodes a tree.
func DecodeGzip(data []byte, order binary.ByteOrder) (string, *Compound, error) {
	raw, err := Gunzip(data)
	if err != nil {
		return "", nil, err
	}
	return Decode(raw, order)
}

type decoder struct {
	r     *bytes.Reader
	order binary.ByteOrder
	err   error
}

func (d *decoder) read(n int) []byte {
	if d.err != nil {
		return make([]byte, n)
	}
	p := make([]byte, n)
	if _, err := io.ReadFull(d.r, p); err != nil {
		d.err = err
	}
	return p
}

func (d *decoder) byte() byte     { return d.read(1)[0] }
func (d *decoder) u16() uint16    { return d.order.Uint16(d.read(2)) }
func (d *decoder) u32() uint32    { return d.order.Uint32(d.read(4)) }
func (d *decoder) u64() uint64    { return d.order.Uint64(d.read(8)) }
func (d *decoder) string() string { return string(d.read(int(d.u16()))) }

func (d *decoder) length() int {
	n := int32(d.u32())
	if n < 0 && d.err == nil {
		d.err = fmt.Errorf("negative length %d", n)
	}
	if n < 0 {
		return 0
	}
	return int(n)
}

func (d *decoder) compound() *Compound {
	c := &Compound{Values: map[string]any{}}
	for d.err == nil {
		typ := d.byte()
		if typ == 0 {
			break
		}
		name := d.string()
		c.Keys = append(c.Keys, name)
		c.Values[name] = d.payload(typ)
	}
	return c
}

func (d *decoder) payload(typ byte) any {
	switch typ {
	case 1:
		return int8(d.byte())
	case 2:
		return int16(d.u16())
	case 3:
		return int32(d.u32())
	case 4:
		return int64(d.u64())
	case 5:
		return math.Float32frombits(d.u32())
	case 6:
		return math.Float64frombits(d.u64())
	case 7:
		return d.read(d.length())
	case 8:
		return d.string()
	case 9:
		l := &List{Elem: d.byte()}
		n := d.length()
		for i := 0; i < n && d.err == nil; i++ {
			l.Items = append(l.Items, d.payload(l.Elem))
		}
		return l
	case 10:
		return d.compound()
	case 11:
		n := d.length()
		out := make([]int32, n)
		for i := range out {
			out[i] = int32(d.u32())
		}
		return out
	case 12:
		n := d.length()
		out := make([]int64, n)
		for i := range out {
			out[i] = int64(d.u64())
		}
		return out
	default:
		if d.err == nil {
			d.err = fmt.Errorf("unknown tag type %d", typ)
		}
		return nil
	}
}
