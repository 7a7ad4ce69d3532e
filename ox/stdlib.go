package ox

import (
	"embed"
	"strings"
)

//go:embed stdlib/*.ox
var stdlibFS embed.FS

// stdlibSource returns the embedded source of a standard library module.
func stdlibSource(name string) (string, bool) {
	if strings.ContainsAny(name, "/\\.") {
		return "", false
	}
	data, err := stdlibFS.ReadFile("stdlib/" + name + ".ox")
	if err != nil {
		return "", false
	}
	return string(data), true
}
