// FILE: lixenwraith/commander/help.go
package commander

import (
	"fmt"
	"strings"
	"text/tabwriter"
)

const helpHeader = "Options available:\n"

// renderHelp formats options in the given order, one aligned line each:
//
//	--long, -short  [type]  description
func renderHelp(options []Option) string {
	var b strings.Builder
	b.WriteString(helpHeader)

	tw := tabwriter.NewWriter(&b, 0, 0, 2, ' ', 0)
	for _, o := range options {
		fmt.Fprintf(tw, "  --%s, -%s\t[%s]\t%s\n", o.long, o.short, o.valueType, o.description)
	}
	tw.Flush()

	return b.String()
}
