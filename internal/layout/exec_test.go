package layout

import (
	"encoding/binary"
	"errors"
	"testing"

	"github.com/danmuck/bytecursor/cursor"
	"github.com/danmuck/bytecursor/internal/testutil/testlog"
)

func sampleRecord(t *testing.T) []byte {
	t.Helper()
	title := "demo"
	buf := make([]byte, 6)
	binary.NativeEndian.PutUint32(buf[0:4], 0xC0DE)
	binary.NativeEndian.PutUint16(buf[4:6], uint16(len(title)))
	buf = append(buf, title...)
	for _, s := range []int16{-1, 0, 1, 2} {
		var b [2]byte
		binary.NativeEndian.PutUint16(b[:], uint16(s))
		buf = append(buf, b[:]...)
	}
	return append(buf, 0xDE, 0xAD, 0xBE, 0xEF)
}

func TestRunSamplePlan(t *testing.T) {
	testlog.Start(t)
	p, err := Parse([]byte(samplePlan))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	c := cursor.New(sampleRecord(t))
	values, err := Run(p, c)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if len(values) != 5 {
		t.Fatalf("expected 5 values, got %d", len(values))
	}
	if values[0].Uint() != 0xC0DE {
		t.Fatalf("magic: %d", values[0].Uint())
	}
	if values[2].Text != "demo" {
		t.Fatalf("title: %q", values[2].Text)
	}
	want := []int64{-1, 0, 1, 2}
	for i, s := range values[3].Ints {
		if s != want[i] {
			t.Fatalf("sample %d: got %d want %d", i, s, want[i])
		}
	}
	if len(values[4].Bytes) != 4 || values[4].Bytes[0] != 0xDE {
		t.Fatalf("checksum: %x", values[4].Bytes)
	}
	if !c.IsAtEnd() {
		t.Fatalf("plan did not consume the record, pos=%d len=%d", c.Pos(), c.Len())
	}
}

func TestRunShortInputKeepsDecodedPrefix(t *testing.T) {
	p, err := Parse([]byte(samplePlan))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	rec := sampleRecord(t)
	values, err := Run(p, cursor.New(rec[:7]))
	if !errors.Is(err, cursor.ErrInsufficientData) {
		t.Fatalf("expected ErrInsufficientData, got %v", err)
	}
	// magic and title_len decode before the title runs out of bytes
	if len(values) != 2 {
		t.Fatalf("expected 2 decoded values, got %d", len(values))
	}
}

func TestRunInvalidTextReportsEncoding(t *testing.T) {
	p, err := Parse([]byte("[[field]]\nname = \"s\"\ntype = \"text\"\nlen = 2\n"))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	_, err = Run(p, cursor.New([]byte{0xff, 0xff}))
	if !errors.Is(err, cursor.ErrInvalidEncoding) {
		t.Fatalf("expected ErrInvalidEncoding, got %v", err)
	}
}

func TestValueString(t *testing.T) {
	v := Value{Name: "samples", Kind: KindI16, Ints: []int64{-1, 2}}
	if got := v.String(); got != "samples=[-1 2]" {
		t.Fatalf("got %q", got)
	}
	v = Value{Name: "title", Kind: KindText, Text: "demo"}
	if got := v.String(); got != `title="demo"` {
		t.Fatalf("got %q", got)
	}
}
