// Package ipc implements the local-socket transport between ffblink clients
// and a provider process.
package ipc

import (
	"os"
	"path/filepath"
	"strings"
)

// SocketPrefix starts every socket file name derived from an endpoint name.
const SocketPrefix = "ffb-"

// RuntimeDir returns the directory that holds provider sockets:
// $XDG_RUNTIME_DIR when set, otherwise the OS temp directory.
func RuntimeDir() string {
	if d := os.Getenv("XDG_RUNTIME_DIR"); d != "" {
		return d
	}
	return os.TempDir()
}

// SocketPath maps a well-known endpoint name to its socket path.
// "application/ffb" becomes <RuntimeDir>/ffb-application-ffb.sock.
func SocketPath(name string) string {
	return filepath.Join(RuntimeDir(), SocketPrefix+sanitize(name)+".sock")
}

func sanitize(name string) string {
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '.', r == '_':
			b.WriteRune(r)
		default:
			b.WriteByte('-')
		}
	}
	s := strings.Trim(b.String(), "-")
	if s == "" {
		return "default"
	}
	return s
}
