package intake

// classifyTickMsg fires after the debounce window following an edit.
// Seq guards against stale ticks from superseded edits.
type classifyTickMsg struct {
	Seq int
}
