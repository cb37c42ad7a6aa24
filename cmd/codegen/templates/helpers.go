package templates

import (
	"strconv"
	"strings"
)

func prefixedStrings(prefix string, count int) string {
	var sb strings.Builder
	for i := 0; i < count; i++ {
		sb.WriteString(prefix)
		sb.WriteString(strconv.Itoa(i))
		if i < count-1 {
			sb.WriteString(", ")
		}
	}
	return sb.String()
}

// typeParams lists the value type followed by count dependency types.
func typeParams(count int) string {
	if count == 0 {
		return "T"
	}
	return "T, " + prefixedStrings("D", count)
}

func depCasts(count int) string {
	var sb strings.Builder
	for i := 0; i < count; i++ {
		sb.WriteString(",\n\t\t\tcast[D")
		sb.WriteString(strconv.Itoa(i))
		sb.WriteString("](dep(deps, ")
		sb.WriteString(strconv.Itoa(i))
		sb.WriteString("))")
	}
	return sb.String()
}
