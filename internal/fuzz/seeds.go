package fuzztests

import "testing"

var languageSeeds = []string{
	"",
	"0",
	"42",
	" 12 + 34 - 5 ",
	"1+2+3+4+5+6+7+8+9",
	"18446744073709551615",
	"18446744073709551616",
	"3 * 4",
	"++--",
	"1 +",
	"- 1",
	"1 2 3",
	"\t1\n+\n2\t",
	"1 \r\n+ 2",
	"1 + é",
}

func addCorpusSeeds(f *testing.F) {
	for _, s := range languageSeeds {
		f.Add([]byte(s))
	}
}
