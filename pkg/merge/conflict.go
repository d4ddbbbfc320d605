package merge

// RenderConflict builds the content written for a conflicted file. An
// absent side contributes nothing.
func RenderConflict(current, given []byte) []byte {
	out := make([]byte, 0, len(current)+len(given)+32)
	out = append(out, "<<<<<<< HEAD\n"...)
	out = append(out, current...)
	out = append(out, "=======\n"...)
	out = append(out, given...)
	out = append(out, ">>>>>>>\n"...)
	return out
}
