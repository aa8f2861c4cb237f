// Package assets loads the images, fonts, text art and audio clips named in
// the asset manifest.
package assets

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"image"
	_ "image/jpeg" // register JPEG decoder
	_ "image/png"  // register PNG decoder
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/mp3"
	"github.com/gopxl/beep/wav"

	"github.com/vovakirdan/bubble-dodge/internal/config"
)

//go:embed builtin/*.txt
var builtinFS embed.FS

// Clip is a decoded audio clip held in memory.
type Clip struct {
	Buffer *beep.Buffer
	Format beep.Format
}

// Bundle holds every asset that loaded.
type Bundle struct {
	Art    map[string]Art
	Images map[string]image.Image
	Fonts  map[string][]byte
	Audio  map[string]*Clip

	// Skipped lists optional assets that failed and were left out.
	Skipped []*LoadError
}

// NewBundle returns an empty bundle.
func NewBundle() *Bundle {
	return &Bundle{
		Art:    make(map[string]Art),
		Images: make(map[string]image.Image),
		Fonts:  make(map[string][]byte),
		Audio:  make(map[string]*Clip),
	}
}

// Load loads every manifest entry. An entry with an empty path uses the
// built-in asset of that name when one exists and is skipped otherwise.
// The first required asset that fails aborts loading with its *LoadError;
// optional failures are collected in Bundle.Skipped.
func Load(entries []config.AssetConfig) (*Bundle, error) {
	b := NewBundle()
	for _, e := range entries {
		err := b.load(e)
		if err == nil {
			continue
		}

		var le *LoadError
		if !errors.As(err, &le) {
			le = &LoadError{Name: e.Name, Kind: Kind(e.Kind), Path: e.Path, Err: err}
		}
		if e.Required {
			return b, le
		}
		b.Skipped = append(b.Skipped, le)
	}
	return b, nil
}

func (b *Bundle) load(e config.AssetConfig) error {
	kind := Kind(e.Kind)
	fail := func(err error) error {
		return &LoadError{Name: e.Name, Kind: kind, Path: e.Path, Err: err}
	}

	data, ok, err := readSource(e)
	if err != nil {
		return fail(err)
	}
	if !ok {
		return nil
	}

	switch kind {
	case KindArt:
		art, err := ParseArt(data)
		if err != nil {
			return fail(err)
		}
		b.Art[e.Name] = art

	case KindImage:
		img, _, err := image.Decode(bytes.NewReader(data))
		if err != nil {
			return fail(err)
		}
		b.Images[e.Name] = img

	case KindFont:
		if err := checkFont(data); err != nil {
			return fail(err)
		}
		b.Fonts[e.Name] = data

	case KindAudio:
		clip, err := decodeAudio(data, e.Path)
		if err != nil {
			return fail(err)
		}
		b.Audio[e.Name] = clip

	default:
		return fail(fmt.Errorf("unknown asset kind %q", e.Kind))
	}
	return nil
}

// readSource returns the raw bytes for an entry. ok is false when the entry
// has no path and no built-in version.
func readSource(e config.AssetConfig) ([]byte, bool, error) {
	if e.Path == "" {
		if Kind(e.Kind) != KindArt {
			return nil, false, nil
		}
		data, err := builtinFS.ReadFile(path.Join("builtin", e.Name+".txt"))
		if err != nil {
			return nil, false, nil
		}
		return data, true, nil
	}

	data, err := os.ReadFile(e.Path)
	if err != nil {
		return nil, false, err
	}
	return data, true, nil
}

// checkFont accepts TrueType, OpenType and font collection files.
func checkFont(data []byte) error {
	if len(data) < 4 {
		return errors.New("font file is truncated")
	}
	switch string(data[:4]) {
	case "\x00\x01\x00\x00", "OTTO", "true", "ttcf":
		return nil
	}
	return errors.New("not a TrueType or OpenType font")
}

// decodeAudio decodes a WAV or MP3 clip into memory.
func decodeAudio(data []byte, name string) (*Clip, error) {
	var (
		streamer beep.StreamSeekCloser
		format   beep.Format
		err      error
	)

	switch strings.ToLower(filepath.Ext(name)) {
	case ".wav":
		streamer, format, err = wav.Decode(bytes.NewReader(data))
	case ".mp3":
		streamer, format, err = mp3.Decode(io.NopCloser(bytes.NewReader(data)))
	default:
		return nil, fmt.Errorf("unsupported audio format %q", filepath.Ext(name))
	}
	if err != nil {
		return nil, err
	}
	defer streamer.Close()

	buf := beep.NewBuffer(format)
	buf.Append(streamer)
	if err := streamer.Err(); err != nil {
		return nil, err
	}
	return &Clip{Buffer: buf, Format: format}, nil
}
