package media

import (
	"os"
	"sync"
)

// Asset is a staged audio file owned by a single pipeline invocation. The
// consumer must call Release on every exit path to reclaim the temporary
// storage.
type Asset struct {
	path string
	ext  string
	once sync.Once
}

// NewAsset wraps an existing staged file as an Asset
func NewAsset(path, ext string) *Asset {
	return &Asset{path: path, ext: ext}
}

// Path returns the location of the staged audio file
func (a *Asset) Path() string {
	return a.path
}

// Ext returns the extension hint for the downstream API (".wav", ".mp3", ...)
func (a *Asset) Ext() string {
	return a.ext
}

// Release deletes the staged file. Safe to call more than once.
func (a *Asset) Release() {
	a.once.Do(func() {
		if a.path != "" {
			os.Remove(a.path)
		}
	})
}
