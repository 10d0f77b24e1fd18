package app

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/pkg/errors"
	"github.com/vinser/mazechase/internal/embeddata"
	"golang.org/x/term"
)

const aboutWidth = 80

// About writes the how-to-play page to w.
func About(w io.Writer) error {
	width := aboutWidth
	if cols, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && cols > 0 && cols < width {
		width = cols
	}
	return renderAbout(w, width)
}

func renderAbout(w io.Writer, width int) error {
	md, err := embeddata.ReadAboutMD()
	if err != nil {
		return errors.Wrap(err, "read about")
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("pink"),
		glamour.WithWordWrap(width-4),
	)
	if err != nil {
		return errors.Wrap(err, "markdown renderer")
	}
	out, err := r.Render(string(md))
	if err != nil {
		return errors.Wrap(err, "render about")
	}
	_, err = fmt.Fprint(w, out)
	return err
}
