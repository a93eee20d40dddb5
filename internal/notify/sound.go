package notify

import (
	"encoding/base64"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/gen2brain/beeep"

	"github.com/tanabodee/attendly/internal/logger"
)

// DefaultSuccessSound is an optional build-time payload (data URL) played for
// success cues when the user has not supplied one. Empty means synthesized
// tones only.
var DefaultSuccessSound = ""

// Player resolves and plays sound cues. Resolution order for success cues:
// user payload, then the built-in default payload, then a synthesized tone.
// Warning cues always use their own tone so the two stay distinguishable.
type Player struct {
	cacheDir string
}

func NewPlayer() *Player {
	dir, err := os.UserCacheDir()
	if err != nil {
		dir = os.TempDir()
	}
	return &Player{cacheDir: filepath.Join(dir, "attendly")}
}

// Play plays the cue for the given kind.
func (p *Player) Play(kind CueKind, customSound string) error {
	if kind == CueSuccess {
		source := customSound
		if source == "" {
			source = DefaultSuccessSound
		}
		if source != "" {
			if err := p.playPayload(source); err == nil {
				return nil
			} else {
				logger.Debug("payload playback failed, falling back to tone", "error", err)
			}
		}
		// High "ding".
		return beeep.Beep(880, 300)
	}
	// Low warning "buzz", longer than the success tone.
	return beeep.Beep(150, 500)
}

// playPayload decodes a data-URL audio payload to the cache dir and hands it
// to the platform's player.
func (p *Player) playPayload(dataURL string) error {
	data, ext, err := decodeDataURL(dataURL)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(p.cacheDir, 0700); err != nil {
		return err
	}
	path := filepath.Join(p.cacheDir, "cue"+ext)
	if err := os.WriteFile(path, data, 0600); err != nil {
		return err
	}

	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("afplay", path)
	case "windows":
		cmd = exec.Command("powershell", "-c", fmt.Sprintf("(New-Object Media.SoundPlayer %q).PlaySync()", path))
	default:
		if _, err := exec.LookPath("paplay"); err == nil {
			cmd = exec.Command("paplay", path)
		} else {
			cmd = exec.Command("aplay", path)
		}
	}
	return cmd.Run()
}

func decodeDataURL(dataURL string) ([]byte, string, error) {
	meta, payload, ok := strings.Cut(dataURL, ",")
	if !ok || !strings.HasPrefix(meta, "data:") {
		return nil, "", errors.New("not a data URL")
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, "", fmt.Errorf("invalid payload encoding: %w", err)
	}

	ext := ".audio"
	switch {
	case strings.Contains(meta, "audio/wav"), strings.Contains(meta, "audio/x-wav"):
		ext = ".wav"
	case strings.Contains(meta, "audio/mpeg"), strings.Contains(meta, "audio/mp3"):
		ext = ".mp3"
	case strings.Contains(meta, "audio/ogg"):
		ext = ".ogg"
	}
	return data, ext, nil
}
