package sample

import (
	"errors"
	"fmt"
	"regexp"
)

// Version is the schema tag carried by an export's file name.
type Version string

const (
	V1 Version = "1"
	V3 Version = "3"
)

// Recognized reports whether the version has a known statistics layout.
func (v Version) Recognized() bool { return v == V1 || v == V3 }

// ErrUnrecognizedVersion is returned for files whose version tag is neither 1 nor 3.
var ErrUnrecognizedVersion = errors.New("unrecognized schema version")

// The group alternation is ordered so NI_AD wins over NI and Tg_AD over Tg.
// The version digit is the last dotted number before the extension, whatever
// reader the extension maps to.
var filenamePattern = regexp.MustCompile(`_(\d{3})_(NI_AD|NI|Tg_AD|Tg|AD).*?microglia(\d+(?:_\d+)?)(?:\.(\d+))?\.[A-Za-z]+`)

// FileName is the identity encoded in an IMARIS export's file name.
type FileName struct {
	SampleNumber string
	GroupToken   string
	SubObjectID  string
	Version      Version
}

// ParseFilename extracts identity fields from name. ok is false when the name
// does not follow the naming convention; that is not an error.
func ParseFilename(name string) (fn FileName, ok bool) {
	m := filenamePattern.FindStringSubmatch(name)
	if m == nil {
		return FileName{}, false
	}
	return FileName{
		SampleNumber: m[1],
		GroupToken:   m[2],
		SubObjectID:  m[3],
		Version:      Version(m[4]),
	}, true
}

// Group classifies the parsed group token.
func (f FileName) Group() Group { return ClassifyGroup(f.GroupToken) }

// Key is the composite sample key group_sampleNumber_subObjectId.
func (f FileName) Key() string {
	return f.GroupToken + "_" + f.SampleNumber + "_" + f.SubObjectID
}

// String renders the identity for log lines.
func (f FileName) String() string {
	v := string(f.Version)
	if v == "" {
		v = "none"
	}
	return fmt.Sprintf("group=%s sample=%s microglia%s version=%s", f.GroupToken, f.SampleNumber, f.SubObjectID, v)
}

var leadingDigits = regexp.MustCompile(`\d+`)

// DisplayLabel reduces a sample key to its first run of digits, e.g.
// "Tg_AD_007_3" becomes "007". Keys without digits are returned unchanged.
func DisplayLabel(key string) string {
	if d := leadingDigits.FindString(key); d != "" {
		return d
	}
	return key
}
