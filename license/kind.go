package license

// Kind identifies a Creative Commons permission combination.
type Kind int

const (
	// Zero is the CC0 public-domain dedication (a waiver, not a license).
	Zero Kind = iota
	By
	ByNc
	ByNcNd
	ByNcSa
	ByNd
	BySa
)

// kindByCode maps the URL code token to its Kind.
// Matching is case-sensitive: CC never publishes mixed-case codes.
var kindByCode = map[string]Kind{
	"by":       By,
	"by-nc":    ByNc,
	"by-nc-nd": ByNcNd,
	"by-nc-sa": ByNcSa,
	"by-nd":    ByNd,
	"by-sa":    BySa,
}

// Display tables indexed by Kind. Keep in sync with the constants above:
// a Kind without a row panics on first render, which is the point.
var (
	kindAbbr = [...]string{
		Zero:   "CC0",
		By:     "CC BY",
		ByNc:   "CC BY-NC",
		ByNcNd: "CC BY-NC-ND",
		ByNcSa: "CC BY-NC-SA",
		ByNd:   "CC BY-ND",
		BySa:   "CC BY-SA",
	}

	kindFullText = [...]string{
		Zero:   "CC0",
		By:     "Attribution",
		ByNc:   "Attribution-NonCommercial",
		ByNcNd: "Attribution-NonCommercial-NoDerivatives",
		ByNcSa: "Attribution-NonCommercial-ShareAlike",
		ByNd:   "Attribution-NoDerivatives",
		BySa:   "Attribution-ShareAlike",
	}
)

// Abbr returns the abbreviated rights string, e.g. "CC BY-NC-SA".
func (k Kind) Abbr() string {
	return kindAbbr[k]
}

// FullText returns the full rights phrase, e.g. "Attribution-NonCommercial-ShareAlike".
func (k Kind) FullText() string {
	return kindFullText[k]
}
