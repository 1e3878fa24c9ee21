package config

import "golang.org/x/text/unicode/bidi"

// DetectRTL reports whether sample should be laid out right-to-left,
// using the Unicode bidirectional algorithm's paragraph-level direction
// resolution. A manifest can supply sample_text instead of an explicit
// rtl flag and let the paragraph's dominant script decide.
func DetectRTL(sample string) bool {
	if sample == "" {
		return false
	}
	var p bidi.Paragraph
	if _, err := p.SetString(sample, bidi.DefaultDirection(bidi.LeftToRight)); err != nil {
		return false
	}
	return p.Direction() == bidi.RightToLeft
}
