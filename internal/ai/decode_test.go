package ai

import (
	"errors"
	"testing"
)

func TestDecodeLoosePlainJSON(t *testing.T) {
	var cmd Command
	if err := DecodeLoose(`{"action":"search","params":{"query":"beras"},"reply":"ok"}`, &cmd); err != nil {
		t.Fatal(err)
	}
	if cmd.Action != ActionSearch || cmd.Params.Query != "beras" {
		t.Errorf("unexpected command %+v", cmd)
	}
}

func TestDecodeLooseStripsMarkdownFences(t *testing.T) {
	raw := "```json\n{\"action\": \"chat\", \"reply\": \"halo\"}\n```"
	var cmd Command
	if err := DecodeLoose(raw, &cmd); err != nil {
		t.Fatal(err)
	}
	if cmd.Action != ActionChat || cmd.Reply != "halo" {
		t.Errorf("unexpected command %+v", cmd)
	}
}

func TestDecodeLooseIgnoresSurroundingProse(t *testing.T) {
	raw := `Sure! Here is the result: {"name":"Indomie Goreng","category":"Mie Instan"} Hope that helps.`
	var res ScanResult
	if err := DecodeLoose(raw, &res); err != nil {
		t.Fatal(err)
	}
	if res.Name != "Indomie Goreng" || res.Category != "Mie Instan" {
		t.Errorf("unexpected result %+v", res)
	}
}

func TestDecodeLooseRepairsMissingClosingBrace(t *testing.T) {
	raw := `{"name":"Kopi Kapal Api","category":"Kopi"`
	var res ScanResult
	if err := DecodeLoose(raw, &res); err != nil {
		t.Fatal(err)
	}
	if res.Name != "Kopi Kapal Api" {
		t.Errorf("unexpected result %+v", res)
	}
}

func TestDecodeLooseNoObject(t *testing.T) {
	var res ScanResult
	err := DecodeLoose("I could not identify the product.", &res)
	if !errors.Is(err, ErrNoJSONObject) {
		t.Errorf("expected ErrNoJSONObject, got %v", err)
	}
}
