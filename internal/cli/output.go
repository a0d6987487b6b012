package cli

import (
	"bytes"
	"fmt"
	"os"

	"quizkit/internal/question"
)

// writeEncoded encodes value to path in the given format.
func writeEncoded(path string, value any, format question.Format) error {
	var buf bytes.Buffer
	if err := question.Encode(&buf, value, format); err != nil {
		return err
	}
	return writeText(path, buf.String())
}

// writeText writes text to path.
func writeText(path, text string) error {
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
