package ledger

import (
	"reflect"
	"testing"

	"github.com/nguyentantai21042004/translatocr/internal/models"
)

func region(text string) models.TextRegion {
	return models.TextRegion{OriginalText: text, TranslatedText: text + "!"}
}

func TestRecordAppends(t *testing.T) {
	l := New()
	l.Record("a.png", region("uno"), region("dos"))
	l.Record("a.png", region("tres"))

	got := l.EntriesFor("a.png")
	if len(got) != 3 {
		t.Fatalf("EntriesFor() len = %d, want 3", len(got))
	}
	want := []string{"uno", "dos", "tres"}
	for i, r := range got {
		if r.OriginalText != want[i] {
			t.Errorf("entry %d = %q, want %q", i, r.OriginalText, want[i])
		}
	}
}

func TestFilesInsertionOrder(t *testing.T) {
	l := New()
	l.Record("z.png", region("a"))
	l.Record("a.png", region("b"))
	l.Record("m.png")
	l.Record("z.png", region("c"))

	want := []string{"z.png", "a.png", "m.png"}
	if got := l.Files(); !reflect.DeepEqual(got, want) {
		t.Errorf("Files() = %v, want %v", got, want)
	}
	if l.Len() != 3 {
		t.Errorf("Len() = %d, want 3", l.Len())
	}
	if !l.Has("m.png") || l.Has("nope.png") {
		t.Error("Has() mismatch")
	}
}

func TestEntriesForIsACopy(t *testing.T) {
	l := New()
	l.Record("a.png", region("hola"))

	got := l.EntriesFor("a.png")
	got[0].TranslatedText = "mutated"

	if l.EntriesFor("a.png")[0].TranslatedText != "hola!" {
		t.Error("ledger entry mutated through returned slice")
	}
	if l.EntriesFor("missing.png") != nil {
		t.Error("EntriesFor() on unknown file should be nil")
	}
}

func TestTranslatedTexts(t *testing.T) {
	l := New()
	l.Record("a.png",
		models.TextRegion{TranslatedText: "HELLO"},
		models.TextRegion{TranslatedText: "WORLD"},
	)

	want := []string{"HELLO", "WORLD"}
	if got := l.TranslatedTexts("a.png"); !reflect.DeepEqual(got, want) {
		t.Errorf("TranslatedTexts() = %v, want %v", got, want)
	}
}
