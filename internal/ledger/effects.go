package ledger

import (
	"encoding/json"
	"fmt"
)

type Op int

const (
	OpSet Op = iota + 1
	OpRemove
)

func (o Op) String() string {
	switch o {
	case OpSet:
		return "set"
	case OpRemove:
		return "remove"
	default:
		return fmt.Sprintf("op(%d)", int(o))
	}
}

// Effect is a pending write of one collection to the store. Items holds a
// copy of the collection taken when the effect was produced.
type Effect struct {
	Op    Op
	Key   string
	Items any
}

// Encode serializes the effect's items to the persisted JSON form.
func (e Effect) Encode() (string, error) {
	b, err := json.Marshal(e.Items)
	if err != nil {
		return "", fmt.Errorf("encode %s: %w", e.Key, err)
	}
	return string(b), nil
}

// Coalesce keeps only the last effect per key, in the order keys were
// first seen. A step that touches one budget twice is written once.
func Coalesce(effects []Effect) []Effect {
	if len(effects) < 2 {
		return effects
	}
	pos := make(map[string]int, len(effects))
	out := make([]Effect, 0, len(effects))
	for _, e := range effects {
		if i, ok := pos[e.Key]; ok {
			out[i] = e
			continue
		}
		pos[e.Key] = len(out)
		out = append(out, e)
	}
	return out
}
