package models

// Output files, relative to the working directory.
const (
	FirstOut  = "first_out.txt"
	SecondOut = "second_out.txt"
	ThirdOut  = "third_out.txt"
)

// Invocation holds the parsed command line
type Invocation struct {
	FileCount int    // value of --num-files
	Zone      string // value of --zone, appended verbatim
}
