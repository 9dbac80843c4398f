// Package exformat reformats spreadsheet workbooks into the compiled layout
// and names the result after a base name and a suffix.
package exformat

import (
	"strings"
)

// Suffix selects the naming convention of the output file.
type Suffix string

const (
	// SuffixPRT is the default output suffix.
	SuffixPRT Suffix = "PRT_COMPILATO"
	// SuffixSTR is used for structure workbooks (input names containing "_STR").
	SuffixSTR Suffix = "STR_COMPILATO"
)

// OutputExt is the extension of both accepted input and produced output files.
const OutputExt = ".xlsx"

// Suffixes lists every valid suffix.
func Suffixes() []Suffix {
	return []Suffix{SuffixPRT, SuffixSTR}
}

// SuffixList joins the valid suffixes for messages, e.g. "PRT_COMPILATO or STR_COMPILATO".
func SuffixList() string {
	names := make([]string, 0, len(Suffixes()))
	for _, s := range Suffixes() {
		names = append(names, string(s))
	}
	return strings.Join(names, " or ")
}

// Valid reports whether s is one of the known suffixes.
func (s Suffix) Valid() bool {
	return s == SuffixPRT || s == SuffixSTR
}

// ParseSuffix accepts a full suffix or its short form ("PRT", "STR"), in any case.
func ParseSuffix(s string) (Suffix, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "PRT", string(SuffixPRT):
		return SuffixPRT, nil
	case "STR", string(SuffixSTR):
		return SuffixSTR, nil
	}
	return "", &OptionError{Field: "suffix", Value: s, Err: ErrInvalidSuffix}
}

// Options configures one processing run.
type Options struct {
	// BaseFileName is the output name before the suffix. Must not be blank.
	BaseFileName string
	// Suffix is appended to BaseFileName.
	Suffix Suffix
	// DeleteFirstRow removes row 1 of every sheet before formatting.
	DeleteFirstRow bool
}

// Validate checks the options needed to name the output file.
func (o Options) Validate() error {
	if strings.TrimSpace(o.BaseFileName) == "" {
		return &OptionError{Field: "base_file_name", Value: o.BaseFileName, Err: ErrMissingBaseName}
	}
	if strings.ContainsAny(o.BaseFileName, `/\`) {
		return &OptionError{Field: "base_file_name", Value: o.BaseFileName, Err: ErrInvalidBaseName}
	}
	if !o.Suffix.Valid() {
		return &OptionError{Field: "suffix", Value: string(o.Suffix), Err: ErrInvalidSuffix}
	}
	return nil
}

// OutputName returns the output file name, {BaseFileName}_{Suffix}.xlsx.
func (o Options) OutputName() string {
	return o.BaseFileName + "_" + string(o.Suffix) + OutputExt
}
