package docgen

import "strings"

// ptToMM converts typographic points to millimetres.
const ptToMM = 25.4 / 72

// avgGlyphFactor approximates the average Helvetica advance as a fraction of
// the font size. The wrap stays deterministic and backend-independent at the
// cost of not being metrically exact per glyph.
const avgGlyphFactor = 0.5

// lineHeight returns the vertical advance in mm for a font size in points.
func lineHeight(size float64) float64 {
	return size * ptToMM * 1.15
}

// maxRunesForWidth returns how many average glyphs of the given font size
// fit in width millimetres.
func maxRunesForWidth(width, size float64) int {
	n := int(width / (size * avgGlyphFactor * ptToMM))
	if n < 1 {
		n = 1
	}
	return n
}

// wrap greedily breaks text into lines of at most maxRunesForWidth(width,
// size) runes, breaking on spaces. Explicit newlines are kept; a word longer
// than a whole line is emitted unbroken on its own line.
func wrap(text string, width, size float64) []string {
	limit := maxRunesForWidth(width, size)

	var lines []string
	for _, para := range strings.Split(text, "\n") {
		words := strings.Fields(para)
		if len(words) == 0 {
			lines = append(lines, "")
			continue
		}
		cur := words[0]
		for _, w := range words[1:] {
			if len([]rune(cur))+1+len([]rune(w)) <= limit {
				cur += " " + w
				continue
			}
			lines = append(lines, cur)
			cur = w
		}
		lines = append(lines, cur)
	}
	return lines
}
