package lexicon

import "testing"

func TestMultipleReadings(t *testing.T) {
	l := New()
	l.AddWord("buffalo", "N")
	l.AddWord("buffalo", "V")
	l.AddWord("buffalo", "ADJ")

	entries := l.Lookup("buffalo")
	if len(entries) != 3 {
		t.Fatalf("Lookup(buffalo) = %d entries, want 3", len(entries))
	}
	want := []string{"N", "V", "ADJ"}
	for i, e := range entries {
		if string(e.POS) != want[i] {
			t.Errorf("entry %d POS = %s, want %s", i, e.POS, want[i])
		}
	}
}

func TestLookupCaseInsensitive(t *testing.T) {
	l := New()
	l.AddWord("Buffalo", "ADJ")

	for _, form := range []string{"buffalo", "Buffalo", "BUFFALO"} {
		if len(l.Lookup(form)) != 1 {
			t.Errorf("Lookup(%q) missed the entry", form)
		}
	}
}

func TestLookupUnknownWord(t *testing.T) {
	l := New()
	if entries := l.Lookup("zzz"); len(entries) != 0 {
		t.Errorf("Lookup(zzz) = %v, want empty", entries)
	}
	if l.Has("zzz") {
		t.Error("Has(zzz) = true, want false")
	}
}

func TestCanonicalDefaultsToLowercase(t *testing.T) {
	l := New()
	l.AddWord("Chased", "V")
	if got := l.Lookup("chased")[0].Canonical; got != "chased" {
		t.Errorf("Canonical = %q, want %q", got, "chased")
	}
}

const lexiconYAML = `
words:
  buffalo:
    - pos: N
    - pos: V
    - pos: ADJ
      canonical: Buffalo
      features:
        origin: place-name
  the:
    - pos: DET
`

func TestParseYAML(t *testing.T) {
	l, err := Parse([]byte(lexiconYAML))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if l.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", l.Len())
	}

	entries := l.Lookup("buffalo")
	if len(entries) != 3 {
		t.Fatalf("Lookup(buffalo) = %d entries, want 3", len(entries))
	}
	var adj *Entry
	for _, e := range entries {
		if e.POS == "ADJ" {
			adj = e
		}
	}
	if adj == nil {
		t.Fatal("no ADJ reading for buffalo")
	}
	if adj.Canonical != "Buffalo" {
		t.Errorf("ADJ canonical = %q, want Buffalo", adj.Canonical)
	}
	if adj.Features["origin"] != "place-name" {
		t.Errorf("ADJ features = %v, want origin=place-name", adj.Features)
	}
}

func TestParseYAMLErrors(t *testing.T) {
	cases := []struct {
		name string
		text string
	}{
		{"missing pos", "words:\n  dog:\n    - canonical: dog\n"},
		{"category as pos", "words:\n  dog:\n    - pos: NP\n"},
		{"not yaml", "words: ["},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Parse([]byte(tc.text)); err == nil {
				t.Errorf("Parse(%q) succeeded, want error", tc.text)
			}
		})
	}
}
