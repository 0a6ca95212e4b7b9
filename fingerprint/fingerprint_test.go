package fingerprint

import "testing"

func TestStringDeterministic(t *testing.T) {
	if String("hello") != String("hello") {
		t.Fatal("String should be deterministic")
	}
	if String("hello") == String("world") {
		t.Fatal("different inputs should (almost certainly) hash differently")
	}
}

func TestEntriesOrderIndependent(t *testing.T) {
	a := [][2]string{{"hello", "hello"}, {"world", "world"}}
	b := [][2]string{{"world", "world"}, {"hello", "hello"}}
	if Entries(a) != Entries(b) {
		t.Fatal("Entries must be order-independent")
	}
}

func TestEntriesSensitiveToContent(t *testing.T) {
	a := [][2]string{{"hello", "hello"}}
	b := [][2]string{{"hello", "HELLO"}}
	if Entries(a) == Entries(b) {
		t.Fatal("Entries must change when canonical form changes")
	}
}
