package source

// Position converts a byte offset into a line and column, honouring FirstLine.
func (f *File) Position(off uint32) LineCol {
	lc := toLineCol(f.LineIdx, off)
	lc.Line += max(f.FirstLine, 1) - 1
	return lc
}

// lineBounds returns the byte range of the 1-based line n, without its '\n'.
func (f *File) lineBounds(n int) (start, end int, ok bool) {
	if n < 1 || n > len(f.LineIdx)+1 {
		return 0, 0, false
	}
	if n > 1 {
		start = int(f.LineIdx[n-2]) + 1
	}
	end = len(f.Content)
	if n <= len(f.LineIdx) {
		end = int(f.LineIdx[n-1])
	}
	if start >= len(f.Content) {
		return 0, 0, false
	}
	return start, min(end, len(f.Content)), true
}

// GetLine returns the text of the 1-based line lineNum (as counted inside
// Content, ignoring FirstLine), or "" when the line does not exist.
func (f *File) GetLine(lineNum uint32) string {
	start, end, ok := f.lineBounds(int(lineNum))
	if !ok {
		return ""
	}
	return string(f.Content[start:end])
}

// FormatPath renders Path for display: "absolute", "relative" (to baseDir or
// the working directory when empty) or "basename"; other modes keep Path.
// Virtual files (stdin) are never rewritten.
func (f *File) FormatPath(mode, baseDir string) string {
	if f.Flags&FileVirtual != 0 {
		return f.Path
	}
	var (
		out string
		err error
	)
	switch mode {
	case "absolute":
		out, err = AbsolutePath(f.Path)
	case "relative":
		out, err = RelativePath(f.Path, baseDir)
	case "basename":
		out = BaseName(f.Path)
	default:
		return f.Path
	}
	if err != nil || out == "" {
		return f.Path
	}
	return out
}
