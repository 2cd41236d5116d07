package layout

import (
	"testing"
)

const samplePlan = `
name = "record"

[[field]]
name = "magic"
type = "u32"

[[field]]
name = "title_len"
type = "u16"

[[field]]
name = "title"
type = "text"
len_from = "title_len"

[[field]]
name = "samples"
type = "i16"
count = 4

[[field]]
name = "checksum"
type = "bytes"
len = 4
`

func TestParseSamplePlan(t *testing.T) {
	p, err := Parse([]byte(samplePlan))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if p.Name != "record" {
		t.Fatalf("plan name: %q", p.Name)
	}
	if len(p.Fields) != 5 {
		t.Fatalf("expected 5 fields, got %d", len(p.Fields))
	}
	if p.Fields[2].LenFrom != "title_len" {
		t.Fatalf("len_from not parsed: %+v", p.Fields[2])
	}
	if p.Fields[3].Count != 4 {
		t.Fatalf("count not parsed: %+v", p.Fields[3])
	}
}

func TestParseRejectsUnknownKind(t *testing.T) {
	_, err := Parse([]byte("[[field]]\nname = \"x\"\ntype = \"u128\"\n"))
	if err == nil {
		t.Fatalf("expected error for unknown kind")
	}
}

func TestParseRejectsDuplicateNames(t *testing.T) {
	_, err := Parse([]byte("[[field]]\nname = \"x\"\ntype = \"u8\"\n\n[[field]]\nname = \"x\"\ntype = \"u8\"\n"))
	if err == nil {
		t.Fatalf("expected error for duplicate names")
	}
}

func TestParseRejectsForwardLenFrom(t *testing.T) {
	_, err := Parse([]byte("[[field]]\nname = \"s\"\ntype = \"text\"\nlen_from = \"n\"\n\n[[field]]\nname = \"n\"\ntype = \"u8\"\n"))
	if err == nil {
		t.Fatalf("expected error for len_from referencing a later field")
	}
}

func TestParseRejectsSignedLenFrom(t *testing.T) {
	_, err := Parse([]byte("[[field]]\nname = \"n\"\ntype = \"i32\"\n\n[[field]]\nname = \"s\"\ntype = \"text\"\nlen_from = \"n\"\n"))
	if err == nil {
		t.Fatalf("expected error for signed len_from source")
	}
}

func TestParseRejectsTextWithoutWidth(t *testing.T) {
	_, err := Parse([]byte("[[field]]\nname = \"s\"\ntype = \"text\"\n"))
	if err == nil {
		t.Fatalf("expected error for text without len or len_from")
	}
}

func TestParseRejectsCountOnText(t *testing.T) {
	_, err := Parse([]byte("[[field]]\nname = \"s\"\ntype = \"text\"\nlen = 4\ncount = 2\n"))
	if err == nil {
		t.Fatalf("expected error for count on text field")
	}
}

func TestParseRejectsEmptyPlan(t *testing.T) {
	if _, err := Parse([]byte("name = \"empty\"\n")); err == nil {
		t.Fatalf("expected error for plan without fields")
	}
}
