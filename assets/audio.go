package assets

import (
	"bytes"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

// AudioLoader decodes and caches sound effects. Sounds are loose files
// on disk; a missing file is an error the caller may ignore, since audio
// is an optional collaborator.
type AudioLoader struct {
	context *audio.Context
	cache   map[string][]byte
}

func NewAudioLoader(context *audio.Context) *AudioLoader {
	return &AudioLoader{
		context: context,
		cache:   make(map[string][]byte),
	}
}

// LoadSFX returns a ready-to-play player for the given path.
func (l *AudioLoader) LoadSFX(path string) (*audio.Player, error) {
	data, ok := l.cache[path]
	if !ok {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read sfx %s: %w", path, err)
		}
		stream, err := wav.DecodeWithSampleRate(l.context.SampleRate(), bytes.NewReader(raw))
		if err != nil {
			return nil, fmt.Errorf("decode sfx %s: %w", path, err)
		}
		buf, err := readAll(stream)
		if err != nil {
			return nil, fmt.Errorf("buffer sfx %s: %w", path, err)
		}
		data = buf
		l.cache[path] = data
	}

	return l.context.NewPlayerFromBytes(data), nil
}

func readAll(stream *wav.Stream) ([]byte, error) {
	buf := bytes.Buffer{}
	if _, err := buf.ReadFrom(stream); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
