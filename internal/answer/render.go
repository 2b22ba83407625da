package answer

import "codingclass_backend/internal/problemkind"

type ViewState string

const (
	StateAnswered    ViewState = "answered"
	StateNoAnswer    ViewState = "no_answer"
	StateUnsupported ViewState = "unsupported"
)

// View is the presentation model handed to the rendering collaborator. It is
// the whole contract: which of the five strategies applies, or an explicit
// placeholder state. The actual rendering lives outside this package.
type View struct {
	State  ViewState        `json:"state"`
	Kind   problemkind.Kind `json:"kind"`
	Answer Normalized       `json:"answer"`
}

// Render dispatches on the PROBLEM's declared kind, not the submission's —
// the submission tag is only a normalization fallback. An unknown kind
// yields a labeled unsupported view instead of rendering nothing or
// panicking; a missing payload yields the no-answer view.
func Render(kind problemkind.Kind, n Normalized) View {
	if !kind.Valid() {
		return View{State: StateUnsupported, Kind: kind}
	}

	// Re-key the payload check to the problem's kind: a submission
	// normalized under a different tag carries no payload for this one.
	check := n
	check.Kind = kind
	if !HasPayload(check) {
		return View{State: StateNoAnswer, Kind: kind, Answer: emptyFor(kind)}
	}

	return View{State: StateAnswered, Kind: kind, Answer: check}
}
