package dev

// TailLines splits s into lines of at most w characters and returns
// the last n of them, for panels that only show the end of a
// transmission. The decoder emits plain ASCII, so byte slicing is
// safe here.
func TailLines(s string, w, n int) []string {
	if w <= 0 || n <= 0 {
		return nil
	}
	var lines []string
	for len(s) > w {
		lines = append(lines, s[:w])
		s = s[w:]
	}
	lines = append(lines, s)
	if len(lines) > n {
		lines = lines[len(lines)-n:]
	}
	return lines
}
