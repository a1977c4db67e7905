package ai

import (
	"context"
	"errors"
	"testing"
)

// fakeModel returns a canned reply and records the parts it was given.
type fakeModel struct {
	reply string
	err   error
	parts []Part
}

func (f *fakeModel) Generate(_ context.Context, parts []Part) (string, error) {
	f.parts = parts
	return f.reply, f.err
}

func TestInterpretSearchIntent(t *testing.T) {
	m := &fakeModel{reply: `{"action":"search","params":{"query":"beras"},"reply":"Sebentar ya."}`}

	cmd := Interpret(context.Background(), m, "cariin beras dong")
	if cmd.Action != ActionSearch || cmd.Params.Query != "beras" {
		t.Errorf("unexpected command %+v", cmd)
	}
	if len(m.parts) != 1 || m.parts[0].Text == "" {
		t.Errorf("expected a single text prompt, got %+v", m.parts)
	}
}

func TestInterpretAddToCartDefaultsQuantity(t *testing.T) {
	m := &fakeModel{reply: `{"action":"add_to_cart","params":{"product":"gula"},"reply":"Oke."}`}

	cmd := Interpret(context.Background(), m, "mau beli gula")
	if cmd.Action != ActionAddToCart {
		t.Fatalf("unexpected action %q", cmd.Action)
	}
	if cmd.Params.Quantity != 1 {
		t.Errorf("expected quantity 1, got %d", cmd.Params.Quantity)
	}
}

func TestInterpretModelErrorFallsBackToSearch(t *testing.T) {
	m := &fakeModel{err: errors.New("quota exceeded")}

	cmd := Interpret(context.Background(), m, "cariin sabun")
	if cmd.Action != ActionSearch {
		t.Fatalf("expected search fallback, got %q", cmd.Action)
	}
	if cmd.Params.Query != "cariin sabun" {
		t.Errorf("fallback should search the raw transcript, got %q", cmd.Params.Query)
	}
	if cmd.Reply == "" {
		t.Error("fallback reply must not be empty")
	}
}

func TestInterpretGarbageReplyFallsBackToSearch(t *testing.T) {
	m := &fakeModel{reply: "I am just a language model and cannot help."}

	cmd := Interpret(context.Background(), m, "kopi")
	if cmd.Action != ActionSearch || cmd.Params.Query != "kopi" {
		t.Errorf("expected search fallback, got %+v", cmd)
	}
}

func TestInterpretUnknownActionFallsBackToSearch(t *testing.T) {
	m := &fakeModel{reply: `{"action":"self_destruct","reply":"boom"}`}

	cmd := Interpret(context.Background(), m, "teh botol")
	if cmd.Action != ActionSearch || cmd.Params.Query != "teh botol" {
		t.Errorf("expected search fallback, got %+v", cmd)
	}
}
