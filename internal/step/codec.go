package step

import (
	"encoding/json"
	"errors"
	"fmt"
)

var ErrUnknownKind = errors.New("step: unknown snapshot kind")

type wireStep struct {
	ID          int             `json:"id"`
	Action      Action          `json:"action"`
	Description string          `json:"description"`
	Kind        Kind            `json:"kind"`
	Data        json.RawMessage `json:"data"`
}

// MarshalJSON tags the snapshot with its kind so the step can be decoded
// back into the right variant.
func (s Step) MarshalJSON() ([]byte, error) {
	w := wireStep{
		ID:          s.ID,
		Action:      s.Action,
		Description: s.Description,
	}
	if s.Data != nil {
		w.Kind = s.Data.Kind()
		data, err := json.Marshal(s.Data)
		if err != nil {
			return nil, err
		}
		w.Data = data
	}
	return json.Marshal(w)
}

func (s *Step) UnmarshalJSON(b []byte) error {
	var w wireStep
	if err := json.Unmarshal(b, &w); err != nil {
		return err
	}
	s.ID = w.ID
	s.Action = w.Action
	s.Description = w.Description
	s.Data = nil

	switch w.Kind {
	case KindSort:
		var snap SortSnapshot
		if err := json.Unmarshal(w.Data, &snap); err != nil {
			return fmt.Errorf("step %d: %w", w.ID, err)
		}
		s.Data = snap
	case KindSearch:
		var snap SearchSnapshot
		if err := json.Unmarshal(w.Data, &snap); err != nil {
			return fmt.Errorf("step %d: %w", w.ID, err)
		}
		s.Data = snap
	case "":
		if len(w.Data) > 0 && string(w.Data) != "null" {
			return fmt.Errorf("step %d: %w: missing kind", w.ID, ErrUnknownKind)
		}
	default:
		return fmt.Errorf("step %d: %w: %q", w.ID, ErrUnknownKind, w.Kind)
	}
	return nil
}
