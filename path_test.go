package swagval_test

import (
	"testing"

	"github.com/reoring/swagval"
)

func TestPath_Pointer(t *testing.T) {
	if got := swagval.Root().Pointer(); got != "" {
		t.Fatalf("root pointer = %q", got)
	}
	if got := swagval.Root().Field("").Pointer(); got != "/" {
		t.Fatalf("empty key pointer = %q", got)
	}
	p := swagval.Root().Field("a/b").Index(2).Field("c~d")
	if got := p.Pointer(); got != "/a~1b/2/c~0d" {
		t.Fatalf("pointer = %q", got)
	}
}
