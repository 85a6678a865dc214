package catalog

import (
	"fmt"
	"strings"
)

// InterpolateNamed replaces every {name} placeholder in template with the
// stringified value of params["name"]. Placeholders without a matching
// parameter are left verbatim.
func InterpolateNamed(template string, params map[string]any) string {
	if len(params) == 0 {
		return template
	}

	result := template
	for name, value := range params {
		result = strings.ReplaceAll(result, "{"+name+"}", fmt.Sprint(value))
	}
	return result
}

// InterpolatePositional replaces {} tokens in template left to right, one
// per argument. Once the arguments are exhausted, remaining {} tokens are
// left verbatim; extra arguments are discarded.
func InterpolatePositional(template string, args ...any) string {
	var b strings.Builder
	rest := template

	for _, arg := range args {
		idx := strings.Index(rest, "{}")
		if idx < 0 {
			break
		}
		b.WriteString(rest[:idx])
		b.WriteString(fmt.Sprint(arg))
		rest = rest[idx+2:]
	}

	b.WriteString(rest)
	return b.String()
}
