package presentation

import (
	"fmt"

	"github.com/schollz/progressbar/v3"
)

const labelWidth = 40

// NewCopyBar returns the copy progress bar, sized for total entries and
// showing a "current/total" readout.
func NewCopyBar(total int) *progressbar.ProgressBar {
	return progressbar.NewOptions(total,
		progressbar.OptionSetDescription(TruncateLabel("Copying")),
		progressbar.OptionSetWidth(20),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)
}

// TruncateLabel fits a label into a fixed width so the bar does not jump
// around as file names change length. Long labels keep their head and
// tail with an ellipsis between; slicing is rune-based so non-ASCII
// names are never split mid-character.
func TruncateLabel(label string) string {
	runes := []rune(label)
	if len(runes) > labelWidth {
		return string(runes[:19]) + "..." + string(runes[len(runes)-18:])
	}
	return fmt.Sprintf("%-*s", labelWidth, label)
}
