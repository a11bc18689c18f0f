package gridview

// thumb returns the offset and length of a scrollbar thumb on a track of
// length track, for a viewport of size visible scrolled to offset within
// content of size total. All values are in the same unit.
func thumb(track int, visible, total, offset float64) (int, int) {
	if track <= 0 {
		return 0, 0
	}
	if total <= visible || total <= 0 {
		return 0, track
	}

	size := max(int(float64(track)*visible/total), 1)
	scrollable := total - visible
	room := track - size

	pos := 0
	if room > 0 {
		pos = int(offset / scrollable * float64(room))
	}
	pos = min(max(pos, 0), room)
	return pos, size
}

// verticalBar returns one glyph per line of a track of height track.
func verticalBar(track int, visible, total, offset float64) []string {
	pos, size := thumb(track, visible, total, offset)
	out := make([]string, track)
	for i := range out {
		out[i] = "│"
		if i >= pos && i < pos+size {
			out[i] = "┃"
		}
	}
	return out
}

// horizontalBar returns a single line of width track.
func horizontalBar(track int, visible, total, offset float64) string {
	pos, size := thumb(track, visible, total, offset)
	out := make([]rune, track)
	for i := range out {
		out[i] = '─'
		if i >= pos && i < pos+size {
			out[i] = '━'
		}
	}
	return string(out)
}
