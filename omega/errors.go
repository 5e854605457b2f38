package omega

import "fmt"

// DegenerateIdealError reports an ideal with no well-defined point
// configuration: the zero ideal or the whole ring. Not recoverable
// locally; it surfaces to the caller unchanged.
type DegenerateIdealError struct {
	Reason string
}

func (e *DegenerateIdealError) Error() string {
	return fmt.Sprintf("degenerate ideal: %s", e.Reason)
}

// InconsistentDimensionError reports a point configuration or weight
// vector whose length does not match its partner. It is raised at
// component entry; nothing is ever silently truncated or padded.
type InconsistentDimensionError struct {
	What string
	Got  int
	Want int
}

func (e *InconsistentDimensionError) Error() string {
	return fmt.Sprintf("inconsistent dimension: %s has length %d, want %d", e.What, e.Got, e.Want)
}
