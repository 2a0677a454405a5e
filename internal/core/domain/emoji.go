package domain

import "unicode"

// pictographic covers the Unicode Extended_Pictographic blocks, which is what
// the product means by "emoji": emoticons, pictographs, transport symbols,
// supplemental symbols, dingbats and the legacy BMP symbol blocks.
var pictographic = &unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: 0x00a9, Hi: 0x00a9, Stride: 1}, // ©
		{Lo: 0x00ae, Hi: 0x00ae, Stride: 1}, // ®
		{Lo: 0x203c, Hi: 0x203c, Stride: 1}, // ‼
		{Lo: 0x2049, Hi: 0x2049, Stride: 1}, // ⁉
		{Lo: 0x2122, Hi: 0x2122, Stride: 1}, // ™
		{Lo: 0x2139, Hi: 0x2139, Stride: 1}, // ℹ
		{Lo: 0x2194, Hi: 0x2199, Stride: 1}, // arrows
		{Lo: 0x21a9, Hi: 0x21aa, Stride: 1}, // hooked arrows
		{Lo: 0x231a, Hi: 0x231b, Stride: 1}, // watch, hourglass
		{Lo: 0x2328, Hi: 0x2328, Stride: 1}, // keyboard
		{Lo: 0x23cf, Hi: 0x23cf, Stride: 1}, // eject
		{Lo: 0x23e9, Hi: 0x23f3, Stride: 1}, // media controls
		{Lo: 0x23f8, Hi: 0x23fa, Stride: 1}, // pause, stop, record
		{Lo: 0x24c2, Hi: 0x24c2, Stride: 1}, // Ⓜ
		{Lo: 0x25aa, Hi: 0x25ab, Stride: 1}, // squares
		{Lo: 0x25b6, Hi: 0x25b6, Stride: 1},
		{Lo: 0x25c0, Hi: 0x25c0, Stride: 1},
		{Lo: 0x25fb, Hi: 0x25fe, Stride: 1},
		{Lo: 0x2600, Hi: 0x27bf, Stride: 1}, // misc symbols + dingbats
		{Lo: 0x2934, Hi: 0x2935, Stride: 1},
		{Lo: 0x2b05, Hi: 0x2b07, Stride: 1},
		{Lo: 0x2b1b, Hi: 0x2b1c, Stride: 1},
		{Lo: 0x2b50, Hi: 0x2b50, Stride: 1}, // ⭐
		{Lo: 0x2b55, Hi: 0x2b55, Stride: 1}, // ⭕
		{Lo: 0x3030, Hi: 0x3030, Stride: 1},
		{Lo: 0x303d, Hi: 0x303d, Stride: 1},
		{Lo: 0x3297, Hi: 0x3297, Stride: 1},
		{Lo: 0x3299, Hi: 0x3299, Stride: 1},
	},
	R32: []unicode.Range32{
		{Lo: 0x1f004, Hi: 0x1f004, Stride: 1}, // 🀄
		{Lo: 0x1f0cf, Hi: 0x1f0cf, Stride: 1}, // 🃏
		{Lo: 0x1f170, Hi: 0x1f251, Stride: 1}, // enclosed characters
		{Lo: 0x1f300, Hi: 0x1f5ff, Stride: 1}, // misc symbols and pictographs
		{Lo: 0x1f600, Hi: 0x1f64f, Stride: 1}, // emoticons
		{Lo: 0x1f680, Hi: 0x1f6ff, Stride: 1}, // transport and map
		{Lo: 0x1f780, Hi: 0x1f7ff, Stride: 1}, // geometric shapes extended
		{Lo: 0x1f900, Hi: 0x1f9ff, Stride: 1}, // supplemental symbols
		{Lo: 0x1fa70, Hi: 0x1faff, Stride: 1}, // symbols and pictographs extended-A
	},
}

// emojiComponent covers the Emoji_Component code points that legally appear
// inside emoji sequences: ZWJ, variation selectors, skin-tone modifiers,
// keycap bases and combiner, regional indicators, and tag characters.
var emojiComponent = &unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: 0x0023, Hi: 0x0023, Stride: 1}, // #
		{Lo: 0x002a, Hi: 0x002a, Stride: 1}, // *
		{Lo: 0x0030, Hi: 0x0039, Stride: 1}, // 0-9
		{Lo: 0x200d, Hi: 0x200d, Stride: 1}, // zero width joiner
		{Lo: 0x20e3, Hi: 0x20e3, Stride: 1}, // combining keycap
		{Lo: 0xfe0e, Hi: 0xfe0f, Stride: 1}, // variation selectors
	},
	R32: []unicode.Range32{
		{Lo: 0x1f1e6, Hi: 0x1f1ff, Stride: 1}, // regional indicators
		{Lo: 0x1f3fb, Hi: 0x1f3ff, Stride: 1}, // skin tone modifiers
		{Lo: 0xe0020, Hi: 0xe007f, Stride: 1}, // tags
	},
}

// IsEmojiOnly reports whether s consists solely of emoji glyphs and the
// component code points used inside emoji sequences. The empty string is not
// emoji-only.
func IsEmojiOnly(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.Is(pictographic, r) && !unicode.Is(emojiComponent, r) {
			return false
		}
	}
	return true
}
