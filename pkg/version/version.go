package version

var (
	// Injected at build time via -ldflags.
	Version   = "dev"
	CommitSHA = "unknown"
)

func String() string {
	return "pdftools " + Version
}

func Detailed() string {
	return "pdftools\n" +
		"Version:  " + Version + "\n" +
		"Commit:   " + CommitSHA + "\n"
}
