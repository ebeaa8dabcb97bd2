package genrand

import (
	"encoding/binary"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

type packed struct {
	A uint16
	B int32
	C bool
}

type vec3 struct {
	X, Y, Z float32
}

type withBlank struct {
	A uint8
	_ [3]byte
	B uint32
}

type hidden struct {
	a int32
}

func TestCodecLayout(t *testing.T) {
	raw := draws(New(benchSeed), 2)
	buf := make([]byte, 8)
	binary.LittleEndian.PutUint32(buf, uint32(raw[0]))
	binary.LittleEndian.PutUint32(buf[4:], uint32(raw[1]))

	c, err := NewCodec[packed]()
	if err != nil {
		t.Fatal(err)
	}
	if c.Size() != 7 || c.Draws() != 2 {
		t.Fatalf("Size=%d Draws=%d, want 7 and 2", c.Size(), c.Draws())
	}
	want := packed{
		A: binary.LittleEndian.Uint16(buf),
		B: int32(binary.LittleEndian.Uint32(buf[2:])),
		C: buf[6] != 0,
	}
	if diff := cmp.Diff(want, c.Sample(New(benchSeed))); diff != "" {
		t.Fatalf("packed (-want +got):\n%s", diff)
	}
}

func TestCodecDraws(t *testing.T) {
	check := func(name string, draws int, sample func(*Generator)) {
		t.Helper()
		g, ref := New(benchSeed), New(benchSeed)
		sample(g)
		for i := 0; i < draws; i++ {
			ref.Next()
		}
		if g.Next() != ref.Next() {
			t.Errorf("%s: expected %d draws", name, draws)
		}
	}
	check("struct{}", 0, func(g *Generator) { _, _ = SampleValue[struct{}](g) })
	check("[3]uint8", 1, func(g *Generator) { _, _ = SampleValue[[3]uint8](g) })
	check("vec3", 3, func(g *Generator) { _, _ = SampleValue[vec3](g) })
	check("[5]uint64", 10, func(g *Generator) { _, _ = SampleValue[[5]uint64](g) })
	check("withBlank", 2, func(g *Generator) { _, _ = SampleValue[withBlank](g) })
}

func TestCodecMatchesRead(t *testing.T) {
	v, err := SampleValue[[8]byte](New(benchSeed))
	if err != nil {
		t.Fatal(err)
	}
	var want [8]byte
	_, _ = New(benchSeed).Read(want[:])
	if v != want {
		t.Fatalf("[8]byte = %v, want %v", v, want)
	}
}

func TestCodecFill(t *testing.T) {
	c, err := NewCodec[vec3]()
	if err != nil {
		t.Fatal(err)
	}
	g, ref := New(benchSeed), New(benchSeed)
	got := make([]vec3, 17)
	c.Fill(g, got)
	for i := range got {
		if want := c.Sample(ref); got[i] != want {
			t.Fatalf("slot %d = %v, want %v", i, got[i], want)
		}
	}

	before := *g
	if err := FillValues(g, []vec3{}); err != nil {
		t.Fatal(err)
	}
	if *g != before {
		t.Fatalf("empty FillValues drew from the generator")
	}
}

func TestCodecUnsupported(t *testing.T) {
	assertUnsupported := func(name string, err error) {
		t.Helper()
		if !errors.Is(err, ErrUnsupportedType) {
			t.Errorf("%s: err = %v, want ErrUnsupportedType", name, err)
		}
		var ute *UnsupportedTypeError
		if !errors.As(err, &ute) || ute.Type == nil {
			t.Errorf("%s: err = %#v, want *UnsupportedTypeError with a type", name, err)
		}
	}
	_, err := NewCodec[int]()
	assertUnsupported("int", err)
	_, err = NewCodec[*int32]()
	assertUnsupported("*int32", err)
	_, err = NewCodec[[]byte]()
	assertUnsupported("[]byte", err)
	_, err = NewCodec[string]()
	assertUnsupported("string", err)
	_, err = NewCodec[map[int32]int32]()
	assertUnsupported("map", err)
	_, err = NewCodec[hidden]()
	assertUnsupported("hidden", err)
	_, err = SampleValue[any](New(benchSeed))
	assertUnsupported("any", err)

	g := New(benchSeed)
	before := *g
	err = FillValues(g, make([]uint, 4))
	assertUnsupported("[]uint", err)
	if *g != before {
		t.Fatalf("rejected FillValues drew from the generator")
	}
}

func TestCodecReusesBuffers(t *testing.T) {
	c, err := NewCodec[vec3]()
	if err != nil {
		t.Fatal(err)
	}
	g, ref := New(benchSeed), New(benchSeed)
	first := c.Sample(g)
	second := c.Sample(g)

	var buf [12]byte
	for i, got := range []vec3{first, second} {
		_, _ = ref.Read(buf[:])
		var want vec3
		if _, err := binary.Decode(buf[:], binary.LittleEndian, &want); err != nil {
			t.Fatal(err)
		}
		if got != want {
			t.Fatalf("sample %d = %v, want %v", i, got, want)
		}
	}

	allocs := testing.AllocsPerRun(100, func() { _ = c.Sample(g) })
	if allocs > 1 {
		t.Fatalf("Sample allocates %.1f times per call", allocs)
	}
}
