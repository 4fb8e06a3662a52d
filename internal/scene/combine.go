package scene

import "strings"

// Combine joins per-camera sections with blank lines, in camera order.
func Combine(views []ViewResult) string {
	sections := make([]string, len(views))
	for i, v := range views {
		sections[i] = v.Section()
	}
	return strings.Join(sections, "\n\n")
}
