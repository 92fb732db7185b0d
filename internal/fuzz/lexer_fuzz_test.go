package fuzztests

import (
	"testing"

	"relaxfmt/internal/diag"
	"relaxfmt/internal/lexer"
	"relaxfmt/internal/source"
	"relaxfmt/internal/token"
)

func FuzzLexerTokens(f *testing.F) {
	addCorpusSeeds(f)
	f.Fuzz(func(t *testing.T, input []byte) {
		input = clampInput(input)

		fs := source.NewFileSet()
		fileID := fs.AddVirtual("fuzz.ex", input)
		file := fs.Get(fileID)

		bag := diag.NewBag(64)
		lx := lexer.New(file, lexer.Options{Reporter: diag.BagReporter{Bag: bag}})
		// Каждый токен продвигает курсор, иначе лексер зациклится
		for i := 0; ; i++ {
			if i > 4*len(input)+16 {
				t.Fatalf("lexer does not advance for %q", input)
			}
			if lx.Next().Kind == token.EOF {
				break
			}
		}
	})
}
