package nbt

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"github.com/hansbonini/skinstatue/pkg/common"
	"github.com/klauspost/compress/gzip"
)

// Writer serializes tag trees with a fixed byte order. Every multi-byte
// field, including string and array length prefixes, follows that order.
type Writer struct {
	w     io.Writer
	order binary.ByteOrder
	buf   [8]byte
	err   error
}

// NewWriter creates a writer emitting to w in the given byte order.
func NewWriter(w io.Writer, order binary.ByteOrder) *Writer {
	return &Writer{w: w, order: order}
}

// WriteRoot writes a complete tree: the compound type id, its name and its
// payload.
func (w *Writer) WriteRoot(name string, root *Compound) error {
	w.putByte(byte(TagCompound))
	w.putString(name)
	w.writePayload(root)
	return w.err
}

func (w *Writer) write(p []byte) {
	if w.err != nil {
		return
	}
	_, w.err = w.w.Write(p)
}

func (w *Writer) fail(err error) {
	if w.err == nil {
		w.err = err
	}
}

func (w *Writer) putByte(b byte) {
	w.buf[0] = b
	w.write(w.buf[:1])
}

func (w *Writer) putUint16(v uint16) {
	w.order.PutUint16(w.buf[:2], v)
	w.write(w.buf[:2])
}

func (w *Writer) putUint32(v uint32) {
	w.order.PutUint32(w.buf[:4], v)
	w.write(w.buf[:4])
}

func (w *Writer) putUint64(v uint64) {
	w.order.PutUint64(w.buf[:8], v)
	w.write(w.buf[:8])
}

func (w *Writer) putLength(n int) {
	length, err := common.SafeIntToInt32(n)
	if err != nil {
		w.fail(fmt.Errorf("array length: %w", err))
		return
	}
	w.putUint32(uint32(length))
}

func (w *Writer) putString(s string) {
	length, err := common.SafeIntToUint16(len(s))
	if err != nil {
		w.fail(fmt.Errorf("string length: %w", err))
		return
	}
	w.putUint16(length)
	w.write([]byte(s))
}

func (w *Writer) writePayload(tag Tag) {
	if w.err != nil {
		return
	}
	switch v := tag.(type) {
	case Byte:
		w.putByte(byte(v))
	case Short:
		w.putUint16(uint16(v))
	case Int:
		w.putUint32(uint32(v))
	case Long:
		w.putUint64(uint64(v))
	case Float:
		w.putUint32(math.Float32bits(float32(v)))
	case Double:
		w.putUint64(math.Float64bits(float64(v)))
	case ByteArray:
		w.putLength(len(v))
		w.write(v)
	case String:
		w.putString(string(v))
	case IntArray:
		w.putLength(len(v))
		if w.err == nil {
			w.err = binary.Write(w.w, w.order, []int32(v))
		}
	case LongArray:
		w.putLength(len(v))
		if w.err == nil {
			w.err = binary.Write(w.w, w.order, []int64(v))
		}
	case *List:
		w.writeList(v)
	case *Compound:
		for _, e := range v.entries {
			w.putByte(byte(e.tag.Type()))
			w.putString(e.name)
			w.writePayload(e.tag)
		}
		w.putByte(byte(TagEnd))
	default:
		w.fail(fmt.Errorf("unsupported tag %T", tag))
	}
}

func (w *Writer) writeList(l *List) {
	elem := l.Elem
	if len(l.Items) > 0 && elem == TagEnd {
		elem = l.Items[0].Type()
	}
	for i, item := range l.Items {
		if item.Type() != elem {
			w.fail(fmt.Errorf("list item %d is %s, list holds %s", i, item.Type(), elem))
			return
		}
	}
	w.putByte(byte(elem))
	w.putLength(len(l.Items))
	for _, item := range l.Items {
		w.writePayload(item)
	}
}

// Marshal encodes a named root compound without compression.
func Marshal(order binary.ByteOrder, name string, root *Compound) ([]byte, error) {
	var buf bytes.Buffer
	if err := NewWriter(&buf, order).WriteRoot(name, root); err != nil {
		return nil, fmt.Errorf("failed to write tag tree: %w", err)
	}
	return buf.Bytes(), nil
}

// MarshalGzip encodes a named root compound and gzip-compresses the result,
// the framing every statue format uses on disk.
func MarshalGzip(order binary.ByteOrder, name string, root *Compound) ([]byte, error) {
	raw, err := Marshal(order, name, root)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	zw, err := gzip.NewWriterLevel(&buf, gzip.DefaultCompression)
	if err != nil {
		return nil, common.FormatError(common.ErrFailedToCompress, err)
	}
	if _, err := zw.Write(raw); err != nil {
		zw.Close()
		return nil, common.FormatError(common.ErrFailedToCompress, err)
	}
	if err := zw.Close(); err != nil {
		return nil, common.FormatError(common.ErrFailedToCompress, err)
	}
	common.LogDebug(common.DebugCompressedBytes, len(raw), buf.Len())
	return buf.Bytes(), nil
}
