package translator

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"

	"github.com/nguyentantai21042004/translatocr/internal/language"
	"github.com/nguyentantai21042004/translatocr/internal/logger"
)

type scriptedModel struct {
	replies []string
	errs    []error
	calls   int
	system  string
	user    string
}

func (m *scriptedModel) Generate(ctx context.Context, input []*schema.Message, opts ...model.Option) (*schema.Message, error) {
	i := m.calls
	m.calls++
	m.system, m.user = input[0].Content, input[1].Content
	if i < len(m.errs) && m.errs[i] != nil {
		return nil, m.errs[i]
	}
	reply := ""
	if i < len(m.replies) {
		reply = m.replies[i]
	}
	return schema.AssistantMessage(reply, nil), nil
}

func TestTranslate(t *testing.T) {
	m := &scriptedModel{replies: []string{`"HELLO"`}}
	tr := New(m, 0, 0, logger.Nop())

	got, err := tr.Translate(context.Background(), "HOLA", language.Spanish, language.English)
	if err != nil {
		t.Fatalf("Translate() error = %v", err)
	}
	if got != "HELLO" {
		t.Errorf("Translate() = %q, want HELLO", got)
	}
	if !strings.Contains(m.system, "from Spanish to English") {
		t.Errorf("system prompt = %q", m.system)
	}
	if m.user != "HOLA" {
		t.Errorf("user message = %q", m.user)
	}
}

func TestTranslateSameLanguage(t *testing.T) {
	m := &scriptedModel{}
	tr := New(m, 0, 0, logger.Nop())

	got, err := tr.Translate(context.Background(), "hello", language.English, language.English)
	if err != nil || got != "hello" {
		t.Errorf("Translate() = %q, %v", got, err)
	}
	if m.calls != 0 {
		t.Errorf("model called %d times, want 0", m.calls)
	}
}

func TestTranslateRetries(t *testing.T) {
	flaky := errors.New("connection reset")
	m := &scriptedModel{errs: []error{flaky, flaky}, replies: []string{"", "", "MENU"}}
	tr := New(m, 2, 0, logger.Nop())

	got, err := tr.Translate(context.Background(), "CARTE", language.French, language.English)
	if err != nil {
		t.Fatalf("Translate() error = %v", err)
	}
	if got != "MENU" || m.calls != 3 {
		t.Errorf("Translate() = %q after %d calls", got, m.calls)
	}
}

func TestTranslateFails(t *testing.T) {
	down := errors.New("service unreachable")
	m := &scriptedModel{errs: []error{down, down}}
	tr := New(m, 1, 0, logger.Nop())

	_, err := tr.Translate(context.Background(), "HOLA", language.Spanish, language.English)
	if !errors.Is(err, ErrTranslation) || !errors.Is(err, down) {
		t.Errorf("Translate() error = %v, want ErrTranslation wrapping cause", err)
	}
	if m.calls != 2 {
		t.Errorf("calls = %d, want 2", m.calls)
	}
}

func TestTranslateUnsupported(t *testing.T) {
	tr := New(&scriptedModel{}, 0, 0, logger.Nop())
	_, err := tr.Translate(context.Background(), "x", language.Language(42), language.English)
	if !errors.Is(err, language.ErrUnsupportedLanguage) {
		t.Errorf("Translate() error = %v, want ErrUnsupportedLanguage", err)
	}
}

func TestCleanReply(t *testing.T) {
	tests := map[string]string{
		`"Hello"`:   "Hello",
		"'Hi'":      "Hi",
		"“Bonjour”": "Bonjour",
		"«Salut»":   "Salut",
		"plain":     "plain",
		`"`:         `"`,
		` "a b" `:   "a b",
	}
	for in, want := range tests {
		if got := cleanReply(in); got != want {
			t.Errorf("cleanReply(%q) = %q, want %q", in, got, want)
		}
	}
}
