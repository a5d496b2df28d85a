// Package ledger accumulates the translated regions of every image in a run.
package ledger

import "github.com/nguyentantai21042004/translatocr/internal/models"

// Ledger maps image names to their regions. Entries are append-only and
// images iterate in the order they were first recorded. Not safe for
// concurrent use; the pipeline is single-threaded.
type Ledger struct {
	order   []string
	entries map[string][]models.TextRegion
}

// New returns an empty ledger.
func New() *Ledger {
	return &Ledger{entries: make(map[string][]models.TextRegion)}
}

// Record appends regions to the entry for file, creating it if needed.
// Recording zero regions still registers the file.
func (l *Ledger) Record(file string, regions ...models.TextRegion) {
	if _, ok := l.entries[file]; !ok {
		l.order = append(l.order, file)
		l.entries[file] = nil
	}
	l.entries[file] = append(l.entries[file], regions...)
}

// EntriesFor returns a copy of the regions recorded for file, in detection order.
func (l *Ledger) EntriesFor(file string) []models.TextRegion {
	regions := l.entries[file]
	if len(regions) == 0 {
		return nil
	}
	out := make([]models.TextRegion, len(regions))
	copy(out, regions)
	return out
}

// Has reports whether file has been recorded.
func (l *Ledger) Has(file string) bool {
	_, ok := l.entries[file]
	return ok
}

// Files returns the recorded image names in first-insertion order.
func (l *Ledger) Files() []string {
	out := make([]string, len(l.order))
	copy(out, l.order)
	return out
}

// TranslatedTexts returns the translated strings for file, in order.
func (l *Ledger) TranslatedTexts(file string) []string {
	regions := l.entries[file]
	texts := make([]string, 0, len(regions))
	for _, r := range regions {
		texts = append(texts, r.TranslatedText)
	}
	return texts
}

// Len is the number of images in the ledger.
func (l *Ledger) Len() int {
	return len(l.order)
}
