package summarizer

import (
	"fmt"
	"os"
	"strings"
)

// FormatContext renders the log block for one image.
func FormatContext(file, summary string) string {
	return fmt.Sprintf("Context for file: %s:\n%s\n\n", file, summary)
}

// AppendContext appends a block per file, in the order given, to the
// context log at path. Files without a summary are left out.
func AppendContext(path string, files []string, contexts map[string]string) error {
	var b strings.Builder
	for _, file := range files {
		summary, ok := contexts[file]
		if !ok {
			continue
		}
		b.WriteString(FormatContext(file, summary))
	}
	if b.Len() == 0 {
		return nil
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("open context file: %w", err)
	}
	if _, err := f.WriteString(b.String()); err != nil {
		f.Close()
		return fmt.Errorf("write context file: %w", err)
	}
	return f.Close()
}
