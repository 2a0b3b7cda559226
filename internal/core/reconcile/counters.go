package reconcile

import "encoding/json"

// Delta is a set of session counter increments reported by a player file.
// Files report increments, never absolute totals; merging is always
// addition, which keeps it associative: applying d1 then d2 equals
// applying d1.Add(d2) once.
type Delta struct {
	Kills    int64 `json:"kills"`
	Deaths   int64 `json:"deaths"`
	Captures int64 `json:"captures"`
}

// IsZero reports whether the delta carries no increments.
func (d Delta) IsZero() bool {
	return d.Kills == 0 && d.Deaths == 0 && d.Captures == 0
}

// Add combines two deltas.
func (d Delta) Add(other Delta) Delta {
	return Delta{
		Kills:    d.Kills + other.Kills,
		Deaths:   d.Deaths + other.Deaths,
		Captures: d.Captures + other.Captures,
	}
}

// ExtractDelta pulls the optional stats sub-document out of a player file
// payload. Absent or malformed stats are a zero delta, never an error:
// the payload is otherwise opaque and may contain anything.
//
// The host process owns clearing the stats block after it has been merged.
// If it never clears, the same delta is re-counted on the next sweep; that
// contract lives with the host, not here.
func ExtractDelta(payload json.RawMessage) Delta {
	var doc struct {
		Stats *Delta `json:"stats"`
	}
	if err := json.Unmarshal(payload, &doc); err != nil || doc.Stats == nil {
		return Delta{}
	}
	return *doc.Stats
}
