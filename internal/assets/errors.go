package assets

import "fmt"

// Kind is the type of an asset.
type Kind string

const (
	KindArt   Kind = "art"   // Text art for terminal backends
	KindImage Kind = "image" // PNG or JPEG
	KindFont  Kind = "font"  // TrueType or OpenType
	KindAudio Kind = "audio" // WAV or MP3
)

// LoadError is the single failure kind for every asset. Whether it is fatal
// is decided by the manifest entry's required flag, not by the kind.
type LoadError struct {
	Name string
	Kind Kind
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	path := e.Path
	if path == "" {
		path = "built-in"
	}
	return fmt.Sprintf("assets: failed to load %s %q from %s: %v", e.Kind, e.Name, path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}
