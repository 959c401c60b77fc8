package platform

import (
	"fmt"

	"github.com/atotto/clipboard"
)

// CopyText places text on the system clipboard
func CopyText(text string) error {
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("copy to clipboard: %w", err)
	}
	return nil
}
