package sample

import "strings"

// Group is one of the four experimental cohorts a sample can belong to.
type Group int

const (
	Unknown Group = iota
	NI
	NIAD
	Tg
	TgAD
)

// Groups lists the cohorts in the order used for summary rows and ANOVA inputs.
var Groups = []Group{NI, NIAD, Tg, TgAD}

// String returns the cohort token as it appears in file names.
func (g Group) String() string {
	switch g {
	case NI:
		return "NI"
	case NIAD:
		return "NI_AD"
	case Tg:
		return "Tg"
	case TgAD:
		return "Tg_AD"
	default:
		return "Unknown Group"
	}
}

// classifierOrder is checked first to last; longer tokens come first so that
// "Tg" does not claim a "Tg_AD" sample and "NI" does not claim "NI_AD".
var classifierOrder = []struct {
	token string
	group Group
}{
	{"Tg_AD", TgAD},
	{"Tg", Tg},
	{"NI_AD", NIAD},
	{"NI", NI},
}

// ClassifyGroup maps any identifying string (typically a sample key) to a cohort.
func ClassifyGroup(s string) Group {
	for _, c := range classifierOrder {
		if strings.Contains(s, c.token) {
			return c.group
		}
	}
	return Unknown
}
