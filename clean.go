// Package pathclean reduces slash-separated path names to their shortest
// lexical equivalent. It works on the text of the path alone, without
// touching the filesystem, so it performs no symlink resolution and no
// resolution against a working directory. Only the forward slash is
// treated as a separator; any other byte, including multi-byte encoded
// text, passes through unchanged as segment content.
package pathclean

const (
	sep = '/'
	dot = '.'
)

// Clean returns the shortest path name equivalent to path by purely
// lexical processing:
//
//  1. collapse runs of slashes into a single slash
//  2. drop each . element (the current directory)
//  3. drop each .. element together with the non-.. element before it
//  4. drop .. elements that begin a rooted path, so /.. becomes /
//
// Leading .. elements of a non-rooted path are kept, since nothing above
// the current directory is known lexically. The result ends in a slash
// only if it is the root "/". If the result would be empty, Clean
// returns ".".
//
// Clean never fails; it is defined for every input string, including the
// empty string.
func Clean(path string) string {
	if path == "" {
		return "."
	}

	rooted := path[0] == sep
	n := len(path)

	// Invariants:
	//  - r is the index of the next input byte to classify.
	//  - dotdot is the index in out below which .. may not erase: just
	//    past the leading slash, or past a kept leading ../../.. run.
	out := make([]byte, 0, n)
	r, dotdot := 0, 0
	if rooted {
		out = append(out, sep)
		r, dotdot = 1, 1
	}

	for r < n {
		switch {
		case path[r] == sep:
			// empty element
			r++
		case path[r] == dot && (r+1 == n || path[r+1] == sep):
			// . element
			r++
		case path[r] == dot && path[r+1] == dot && (r+2 == n || path[r+2] == sep):
			// .. element: erase back to the last separator
			r += 2
			switch {
			case len(out) > dotdot:
				w := len(out) - 1
				for w > dotdot && out[w] != sep {
					w--
				}
				out = out[:w]
			case !rooted:
				// nothing left to erase; keep the .. and move the
				// floor so a later .. cannot consume it
				if len(out) > 0 {
					out = append(out, sep)
				}
				out = append(out, dot, dot)
				dotdot = len(out)
			}
		default:
			// real element
			if rooted && len(out) != 1 || !rooted && len(out) != 0 {
				out = append(out, sep)
			}
			for ; r < n && path[r] != sep; r++ {
				out = append(out, path[r])
			}
		}
	}

	if len(out) == 0 {
		return "."
	}
	return string(out)
}
