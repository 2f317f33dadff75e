// Package preprocess holds caller-side text filters meant to run before
// Sentence construction. They are not part of the scoring core (spec.md
// §6's Preprocessor collaborator) and have no dependency on it.
package preprocess

// kyteaFullwidth is the fixed half-width-to-full-width rune remap used by
// KyTea, reproduced verbatim from preprocess_kytea_style.rs /
// kytea_fullwidth.rs: ASCII letters and digits, bracket/quote pairs, and a
// curated set of punctuation. Runes with no entry pass through unchanged.
var kyteaFullwidth = map[rune]rune{
	'a': 'ａ', 'b': 'ｂ', 'c': 'ｃ', 'd': 'ｄ', 'e': 'ｅ', 'f': 'ｆ', 'g': 'ｇ',
	'h': 'ｈ', 'i': 'ｉ', 'j': 'ｊ', 'k': 'ｋ', 'l': 'ｌ', 'm': 'ｍ', 'n': 'ｎ',
	'o': 'ｏ', 'p': 'ｐ', 'q': 'ｑ', 'r': 'ｒ', 's': 'ｓ', 't': 'ｔ', 'u': 'ｕ',
	'v': 'ｖ', 'w': 'ｗ', 'x': 'ｘ', 'y': 'ｙ', 'z': 'ｚ',
	'A': 'Ａ', 'B': 'Ｂ', 'C': 'Ｃ', 'D': 'Ｄ', 'E': 'Ｅ', 'F': 'Ｆ', 'G': 'Ｇ',
	'H': 'Ｈ', 'I': 'Ｉ', 'J': 'Ｊ', 'K': 'Ｋ', 'L': 'Ｌ', 'M': 'Ｍ', 'N': 'Ｎ',
	'O': 'Ｏ', 'P': 'Ｐ', 'Q': 'Ｑ', 'R': 'Ｒ', 'S': 'Ｓ', 'T': 'Ｔ', 'U': 'Ｕ',
	'V': 'Ｖ', 'W': 'Ｗ', 'X': 'Ｘ', 'Y': 'Ｙ', 'Z': 'Ｚ',
	'0': '０', '1': '１', '2': '２', '3': '３', '4': '４',
	'5': '５', '6': '６', '7': '７', '8': '８', '9': '９',
	'(': '（', ')': '）', '{': '｛', '}': '｝', '<': '＜', '>': '＞',
	'｢': '「', '｣': '」', '[': '［', ']': '］',
	'-': '−', '～': '〜', '.': '。', '－': 'ー', '/': '／', '_': '＿',
	',': '，', '%': '％', '?': '？', '､': '、', '―': 'ー',
	'"': '”', '\'': '’', '･': '・', '─': 'ー', '+': '＋', ':': '：',
	'–': 'ー', '!': '！', '｡': '。', '&': '＆', '*': '＊', '@': '＠', '=': '＝',
}

// KyteaFullwidth remaps every half-width rune in text to its full-width
// counterpart, leaving runes with no table entry unchanged. Intended to
// run once on raw input before NewSentenceFromText, the way KyTea-backed
// pipelines normalize text ahead of a model trained on full-width forms.
func KyteaFullwidth(text string) string {
	runes := []rune(text)
	out := make([]rune, len(runes))
	for i, r := range runes {
		if full, ok := kyteaFullwidth[r]; ok {
			out[i] = full
		} else {
			out[i] = r
		}
	}
	return string(out)
}
