package formatking

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// decodeText drains r into a string, transparently decoding UTF-16 input and
// stripping any byte order mark. Clipboard dumps and files saved by
// spreadsheet tools routinely carry both.
func decodeText(r io.Reader) (string, error) {
	decoder := unicode.BOMOverride(unicode.UTF8.NewDecoder().Transformer)
	data, err := io.ReadAll(transform.NewReader(r, decoder))
	if err != nil {
		return "", fmt.Errorf("decoding input: %w", err)
	}
	return string(data), nil
}

// readFile reads and decodes a file's content.
func readFile(filename string) (string, error) {
	f, err := os.Open(filename)
	if err != nil {
		return "", fmt.Errorf("opening file: %w", err)
	}
	defer f.Close()
	return decodeText(f)
}
