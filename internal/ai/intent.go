package ai

import (
	"context"
	"fmt"
	"log"
)

// Voice intent actions.
const (
	ActionSearch    = "search"
	ActionAddToCart = "add_to_cart"
	ActionChat      = "chat"
)

// CommandParams carries the action-specific payload of a voice command.
type CommandParams struct {
	Query    string `json:"query,omitempty"`
	Product  string `json:"product,omitempty"`
	Quantity int    `json:"quantity,omitempty"`
}

// Command is the structured intent extracted from a voice transcript.
type Command struct {
	Action string        `json:"action"`
	Params CommandParams `json:"params"`
	Reply  string        `json:"reply"`
}

const intentPrompt = `You are "Ibu Pintar", a smart shop assistant for an Indonesian warung.
Analyze the following customer voice transcript and extract the intent.

Transcript: %q

Output ONLY a JSON object with this structure (no markdown):
{
  "action": "search" | "add_to_cart" | "chat",
  "params": {
    "query": string,
    "product": string,
    "quantity": number
  },
  "reply": string
}

"query" is for search, "product" and "quantity" for add_to_cart (quantity
defaults to 1 when not spoken), "reply" is a short, friendly, motherly
response in Indonesian.

Examples:
- "Cariin beras" -> {"action": "search", "params": {"query": "beras"}, "reply": "Sebentar ya, Ibu carikan berasnya."}
- "Mau beli gula 2 bungkus" -> {"action": "add_to_cart", "params": {"product": "gula", "quantity": 2}, "reply": "Oke, Ibu masukkan 2 bungkus gula ke keranjang ya."}
- "Halo Bu" -> {"action": "chat", "params": {}, "reply": "Halo nak, mau belanja apa hari ini?"}`

const fallbackReply = "Maaf Ibu sedang sibuk, Ibu carikan manual saja ya."

// fallbackCommand treats the raw transcript as a plain search. It is the
// contract keeping the voice flow usable when the model is down or returns
// garbage.
func fallbackCommand(transcript string) Command {
	return Command{
		Action: ActionSearch,
		Params: CommandParams{Query: transcript},
		Reply:  fallbackReply,
	}
}

// Interpret maps a transcript onto a Command. It never fails: any model or
// parse error degrades to a search for the raw text.
func Interpret(ctx context.Context, m Model, transcript string) Command {
	reply, err := m.Generate(ctx, []Part{{Text: fmt.Sprintf(intentPrompt, transcript)}})
	if err != nil {
		log.Printf("intent: model call failed, falling back to search: %v", err)
		return fallbackCommand(transcript)
	}

	var cmd Command
	if err := DecodeLoose(reply, &cmd); err != nil {
		log.Printf("intent: unparseable model reply, falling back to search: %v", err)
		return fallbackCommand(transcript)
	}

	switch cmd.Action {
	case ActionSearch, ActionChat:
	case ActionAddToCart:
		if cmd.Params.Quantity <= 0 {
			cmd.Params.Quantity = 1
		}
	default:
		log.Printf("intent: unknown action %q, falling back to search", cmd.Action)
		return fallbackCommand(transcript)
	}

	return cmd
}
