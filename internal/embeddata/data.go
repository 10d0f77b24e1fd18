package embeddata

import (
	"embed"
	"io/fs"
)

//go:embed about.md level.txt
var embeddedFS embed.FS

// FS returns the embedded filesystem with access to about.md and level.txt.
func FS() fs.FS {
	return embeddedFS
}

// ReadAboutMD returns the contents of about.md.
func ReadAboutMD() ([]byte, error) {
	return embeddedFS.ReadFile("about.md")
}

// ReadLevel returns the default level.
func ReadLevel() ([]byte, error) {
	return embeddedFS.ReadFile("level.txt")
}
