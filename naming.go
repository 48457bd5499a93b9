package roseredis

import (
	"fmt"
	"strconv"
	"strings"
)

// CommandString renders a raw command for logs. Argument slices come out like
// `SET k "v 1"`; anything else is formatted with %v.
func CommandString(cmd any) string {

	var args []string
	switch c := cmd.(type) {
	case []string:
		args = append([]string(nil), c...)
	case []any:
		args = make([]string, len(c))
		for i, a := range c {
			switch v := a.(type) {
			case string:
				args[i] = v
			case []byte:
				args[i] = string(v)
			default:
				args[i] = fmt.Sprint(v)
			}
		}
	default:
		return fmt.Sprintf("%v", cmd)
	}

	for i, a := range args {
		if a == "" || strings.ContainsAny(a, " \t\n\"") {
			args[i] = strconv.Quote(a)
		}
	}
	return strings.Join(args, " ")
}
