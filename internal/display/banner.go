package display

import (
	"fmt"
	"io"

	"github.com/backmassage/fileinfo/internal/term"
)

// PrintBanner writes the ASCII banner and version; magenta when colours are
// enabled.
func PrintBanner(w io.Writer, version string) {
	fmt.Fprint(w, term.Paint(term.Magenta, ` _____ _ _      ___        __
|  ___(_) | ___|_ _|_ __  / _| ___
| |_  | | |/ _ \| || '_ \| |_ / _ \
|  _| | | |  __/| || | | |  _| (_) |
|_|   |_|_|\___|___|_| |_|_|  \___/
`))
	fmt.Fprintf(w, "fileinfo v%s\n", version)
}
