// Package nbt writes named binary tag trees, the self-describing container
// shared by every statue output format.
//
// One Writer serves both byte orders: Java tools read big-endian trees while
// Bedrock tools read little-endian ones. Only writing is supported.
package nbt

import "fmt"

// TagType identifies the payload kind of a tag.
type TagType byte

const (
	TagEnd TagType = iota
	TagByte
	TagShort
	TagInt
	TagLong
	TagFloat
	TagDouble
	TagByteArray
	TagString
	TagList
	TagCompound
	TagIntArray
	TagLongArray
)

var tagNames = [...]string{
	"TAG_End", "TAG_Byte", "TAG_Short", "TAG_Int", "TAG_Long", "TAG_Float",
	"TAG_Double", "TAG_Byte_Array", "TAG_String", "TAG_List", "TAG_Compound",
	"TAG_Int_Array", "TAG_Long_Array",
}

func (t TagType) String() string {
	if int(t) < len(tagNames) {
		return tagNames[t]
	}
	return fmt.Sprintf("TagType(%d)", byte(t))
}

// Tag is any value that can appear in a tree.
type Tag interface {
	Type() TagType
}

type (
	Byte      int8
	Short     int16
	Int       int32
	Long      int64
	Float     float32
	Double    float64
	ByteArray []byte
	String    string
	IntArray  []int32
	LongArray []int64
)

func (Byte) Type() TagType      { return TagByte }
func (Short) Type() TagType     { return TagShort }
func (Int) Type() TagType       { return TagInt }
func (Long) Type() TagType      { return TagLong }
func (Float) Type() TagType     { return TagFloat }
func (Double) Type() TagType    { return TagDouble }
func (ByteArray) Type() TagType { return TagByteArray }
func (String) Type() TagType    { return TagString }
func (IntArray) Type() TagType  { return TagIntArray }
func (LongArray) Type() TagType { return TagLongArray }

// List is a homogeneous sequence of unnamed tags. An empty list is written
// with element type TagEnd unless Elem is set.
type List struct {
	Elem  TagType
	Items []Tag
}

func (*List) Type() TagType { return TagList }

// NewList creates an empty list of the given element type.
func NewList(elem TagType) *List {
	return &List{Elem: elem}
}

// Add appends items to the list.
func (l *List) Add(items ...Tag) *List {
	l.Items = append(l.Items, items...)
	return l
}

// Len returns the number of items.
func (l *List) Len() int {
	return len(l.Items)
}

// IntList builds a list of TAG_Int.
func IntList(values ...int32) *List {
	l := &List{Elem: TagInt, Items: make([]Tag, len(values))}
	for i, v := range values {
		l.Items[i] = Int(v)
	}
	return l
}

type entry struct {
	name string
	tag  Tag
}

// Compound is a set of named tags. Entries are written in insertion order,
// so output is deterministic.
type Compound struct {
	entries []entry
}

func (*Compound) Type() TagType { return TagCompound }

// NewCompound creates an empty compound.
func NewCompound() *Compound {
	return &Compound{}
}

// Set stores tag under name, replacing an existing entry in place.
func (c *Compound) Set(name string, tag Tag) *Compound {
	for i := range c.entries {
		if c.entries[i].name == name {
			c.entries[i].tag = tag
			return c
		}
	}
	c.entries = append(c.entries, entry{name: name, tag: tag})
	return c
}

// Get returns the tag stored under name.
func (c *Compound) Get(name string) (Tag, bool) {
	for _, e := range c.entries {
		if e.name == name {
			return e.tag, true
		}
	}
	return nil, false
}

// Keys returns entry names in write order.
func (c *Compound) Keys() []string {
	keys := make([]string, len(c.entries))
	for i, e := range c.entries {
		keys[i] = e.name
	}
	return keys
}

// Len returns the number of entries.
func (c *Compound) Len() int {
	return len(c.entries)
}
