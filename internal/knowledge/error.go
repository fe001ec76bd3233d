package knowledge

// AssertionError reports a broken internal invariant, e.g. a cell proven
// both safe and mined. It is always a programming error, never a game state.
type AssertionError struct {
	message string
}

// [AssertionError] implements [error]
func (e AssertionError) Error() string {
	return e.message
}
