package genrand

import (
	"encoding/binary"
	"fmt"
	"reflect"
)

// Codec samples arbitrary fixed-size values by packing draws into the
// little-endian encoding of T (see Generator.Read). T qualifies when
// encoding/binary can lay it out: booleans, sized numbers, and arrays or
// structs of those with exported or blank fields.
//
// A Codec keeps a scratch buffer and decode target, so like Generator it
// must be owned by one goroutine at a time.
type Codec[T any] struct {
	size  int
	typ   reflect.Type
	draws int

	buf []byte
	val *T
}

// NewCodec checks T once and fails with ErrUnsupportedType when T has no
// fixed layout (int, uint, pointers, slices, strings, maps, interfaces...).
func NewCodec[T any]() (*Codec[T], error) {
	typ := reflect.TypeFor[T]()
	switch typ.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.UnsafePointer, reflect.Slice:
		return nil, &UnsupportedTypeError{Type: typ, Reason: "not plain data"}
	}
	var zero T
	size := binary.Size(zero)
	if size < 0 {
		return nil, &UnsupportedTypeError{Type: typ, Reason: "no fixed-size encoding"}
	}
	if err := checkDecode[T](size); err != nil {
		return nil, &UnsupportedTypeError{Type: typ, Reason: err.Error()}
	}
	return &Codec[T]{
		size:  size,
		typ:   typ,
		draws: (size + 3) / 4,
		buf:   make([]byte, size),
		val:   new(T),
	}, nil
}

// encoding/binary panics on unexported fields, so decode a zeroed buffer
// before handing the codec out.
func checkDecode[T any](size int) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%v", r)
		}
	}()
	var v T
	_, err = binary.Decode(make([]byte, size), binary.LittleEndian, &v)
	return err
}

// Size is the encoded width of T in bytes.
func (c *Codec[T]) Size() int { return c.size }

// Draws is the number of draws one Sample consumes.
func (c *Codec[T]) Draws() int { return c.draws }

// Sample draws one T. It reuses the codec's buffers and does not allocate
// per call.
func (c *Codec[T]) Sample(g *Generator) T {
	if c.size == 0 {
		var zero T
		return zero
	}
	_, _ = g.Read(c.buf)
	if _, err := binary.Decode(c.buf, binary.LittleEndian, c.val); err != nil {
		panic(fmt.Sprintf("genrand: decoding %s: %v", c.typ, err))
	}
	return *c.val
}

// Fill samples buf in index order.
func (c *Codec[T]) Fill(g *Generator, buf []T) {
	for i := range buf {
		buf[i] = c.Sample(g)
	}
}

// SampleValue is a one-shot NewCodec followed by Sample.
func SampleValue[T any](g *Generator) (T, error) {
	c, err := NewCodec[T]()
	if err != nil {
		var zero T
		return zero, err
	}
	return c.Sample(g), nil
}

// FillValues is a one-shot NewCodec followed by Fill. Nothing is drawn when
// T is rejected.
func FillValues[T any](g *Generator, buf []T) error {
	c, err := NewCodec[T]()
	if err != nil {
		return err
	}
	c.Fill(g, buf)
	return nil
}
