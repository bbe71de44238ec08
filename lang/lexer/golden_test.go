package lexer_test

import (
	"bytes"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vesperlang/vesper/internal/filetest"
	"github.com/vesperlang/vesper/lang/lexer"
)

var testUpdateLexerTests = flag.Bool("test.update-lexer-tests", false, "If set, replace expected lexer golden output with actual output.")

func TestTokenizeGolden(t *testing.T) {
	srcDir, resultDir := filepath.Join("testdata", "in"), filepath.Join("testdata", "out")
	for _, fi := range filetest.SourceFiles(t, srcDir, ".vsp") {
		t.Run(fi.Name(), func(t *testing.T) {
			src, err := os.ReadFile(filepath.Join(srcDir, fi.Name()))
			require.NoError(t, err)

			toks, err := lexer.Tokenize(string(src))
			require.NoError(t, err)

			var buf bytes.Buffer
			for _, tk := range toks {
				fmt.Fprintln(&buf, tk.String())
			}
			filetest.DiffOutput(t, fi, buf.String(), resultDir, testUpdateLexerTests)
		})
	}
}
