package img2ascii

import (
	"regexp"
	"strconv"
	"strings"
)

// ESC is the escape character that introduces terminal control sequences.
const ESC = "\u001b"

// Reset clears all color attributes.
const Reset = ESC + "[0m"

var sgrPattern = regexp.MustCompile(`\x1b\[[0-9;]*m`)

// StripANSI removes every SGR escape sequence from s, leaving glyphs and
// line breaks.
func StripANSI(s string) string {
	return sgrPattern.ReplaceAllString(s, "")
}

// scanANSI walks s, calling onSGR with the parameter string of each
// complete ESC[...m sequence and onText for the text between them. An
// ESC that does not start a well-formed sequence is passed through as
// text.
func scanANSI(s string, onSGR func(params string), onText func(text string)) {
	for len(s) > 0 {
		i := strings.IndexByte(s, ESC[0])
		if i < 0 {
			onText(s)
			return
		}
		if i > 0 {
			onText(s[:i])
			s = s[i:]
		}

		end := sgrEnd(s)
		if end < 0 {
			onText(s[:1])
			s = s[1:]
			continue
		}
		onSGR(s[2 : end-1])
		s = s[end:]
	}
}

// sgrEnd returns the length of the SGR sequence at the start of s, or -1
// if s does not start with one.
func sgrEnd(s string) int {
	if len(s) < 3 || s[0] != ESC[0] || s[1] != '[' {
		return -1
	}
	for i := 2; i < len(s); i++ {
		switch c := s[i]; {
		case c == 'm':
			return i + 1
		case c == ';' || (c >= '0' && c <= '9'):
		default:
			return -1
		}
	}
	return -1
}

// sgrState tracks the colors selected by a stream of SGR sequences.
type sgrState struct {
	fg, bg       RGB
	hasFG, hasBG bool
}

// apply updates the state with one SGR parameter string. Only resets
// and 24-bit colors are understood; other attributes are ignored.
func (st *sgrState) apply(params string) {
	if params == "" {
		*st = sgrState{}
		return
	}
	codes := strings.Split(params, ";")
	for i := 0; i < len(codes); i++ {
		switch codes[i] {
		case "", "0":
			*st = sgrState{}
		case "39":
			st.fg, st.hasFG = RGB{}, false
		case "49":
			st.bg, st.hasBG = RGB{}, false
		case "38", "48":
			if i+4 >= len(codes) || codes[i+1] != "2" {
				continue
			}
			c := RGB{
				R: sgrComponent(codes[i+2]),
				G: sgrComponent(codes[i+3]),
				B: sgrComponent(codes[i+4]),
			}
			if codes[i] == "38" {
				st.fg, st.hasFG = c, true
			} else {
				st.bg, st.hasBG = c, true
			}
			i += 4
		}
	}
}

func sgrComponent(s string) uint8 {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return uint8(max(0, min(255, v)))
}

// CompressANSI removes color sequences that would not change what the
// terminal displays: a color escape that repeats the active color, or a
// reset while no color is active. The first sequence is always kept
// since the terminal state before the artifact is unknown. Glyphs and
// line breaks are untouched.
func CompressANSI(ansiImage string) string {
	var compressed strings.Builder
	compressed.Grow(len(ansiImage))

	var current sgrState
	known := false
	scanANSI(ansiImage,
		func(params string) {
			next := current
			next.apply(params)
			if known && next == current {
				return
			}
			compressed.WriteString(ESC + "[")
			compressed.WriteString(params)
			compressed.WriteByte('m')
			current, known = next, true
		},
		func(text string) {
			compressed.WriteString(text)
		})
	return compressed.String()
}
