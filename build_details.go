package caseconv

// version is stamped by the release pipeline via -ldflags; builds from
// source report "dev".
var version = "dev"

// Version reports the library version.
func Version() string {
	return version
}
