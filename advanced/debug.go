package advanced

import (
	"fmt"
	"strings"

	"github.com/logrusorgru/aurora"
	"github.com/osuushi/covercircle/dbg"
)

func (h *Hull) String() string {
	parts := make([]string, len(h.vertices))
	for i, vertex := range h.vertices {
		parts[i] = vertex.String()
	}
	return fmt.Sprintf("Hull %s [%s]", h.DbgName(), strings.Join(parts, ", "))
}

// Readable name for log output, colored by shape: red when empty, yellow when
// degenerate, green for a real polygon.
func (h *Hull) DbgName() string {
	name := dbg.Name(h)
	switch {
	case len(h.vertices) == 0:
		return aurora.Red(name).String()
	case len(h.vertices) < 3:
		return aurora.Yellow(name).String()
	}
	return aurora.Green(name).String()
}
