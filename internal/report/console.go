package report

import (
	"fmt"
	"io"

	"pomotick/internal/engine"
)

// Console prints one status block per tick.
type Console struct {
	Out io.Writer
}

// Render writes the block for a post-tick status.
func (c *Console) Render(st engine.Status) {
	activity := "Idle"
	if st.Active {
		activity = "Active"
	}
	fmt.Fprintf(c.Out,
		"Mode: %s (%s)\nTime Left: %s\nLast Activity: %s\nTotal Work Today: %s\n",
		st.Mode.Title(),
		activity,
		Clock(st.Remaining),
		Clock(st.SinceActivity),
		HoursMinutes(st.WorkedToday),
	)
}
