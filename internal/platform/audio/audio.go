// Package audio plays the background music and the celebration cue through
// an external player command. Missing assets or a missing player only
// disable sound; the game keeps running silently.
package audio

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-hotcold/internal/config"
)

// Placeholders recognized in the player command line.
const (
	placeholderFile   = "{file}"
	placeholderVolume = "{volume}"
)

// restartDelay throttles the music loop when the player exits immediately.
const restartDelay = 500 * time.Millisecond

// AssetError reports an audio resource that could not be used.
type AssetError struct {
	Kind string // "music", "celebration" or "player"
	Path string
	Err  error
}

func (e *AssetError) Error() string {
	return fmt.Sprintf("audio: cannot use %s %s: %v", e.Kind, e.Path, e.Err)
}

func (e *AssetError) Unwrap() error {
	return e.Err
}

// ErrNotConfigured is wrapped by AssetError when no path was given.
var ErrNotConfigured = errors.New("not configured")

type runFunc func(ctx context.Context, argv []string) error

// Jukebox owns the player processes. Its methods are safe to call from the
// UI loop; playback itself runs in background goroutines.
type Jukebox struct {
	logger      *log.Logger
	player      []string
	volume      int
	music       string
	celebration string
	problems    []error

	bell io.Writer
	run  runFunc

	ctx       context.Context
	cancel    context.CancelFunc
	mu        sync.Mutex
	stopMusic context.CancelFunc
	wg        sync.WaitGroup
}

// New checks the configured assets once and returns a ready jukebox.
// Every unusable asset is logged as a warning and disables only itself.
func New(cfg config.AssetsConfig, logger *log.Logger) *Jukebox {
	return newJukebox(cfg, logger, exec.LookPath, runCommand)
}

func newJukebox(cfg config.AssetsConfig, logger *log.Logger, lookPath func(string) (string, error), run runFunc) *Jukebox {
	j := &Jukebox{
		logger: logger,
		volume: cfg.Volume,
		bell:   os.Stderr,
		run:    run,
	}
	j.ctx, j.cancel = context.WithCancel(context.Background())

	j.player = strings.Fields(cfg.Player)
	if len(j.player) == 0 {
		j.warn(&AssetError{Kind: "player", Err: ErrNotConfigured})
		return j
	}
	if _, err := lookPath(j.player[0]); err != nil {
		j.warn(&AssetError{Kind: "player", Path: j.player[0], Err: err})
		j.player = nil
		return j
	}

	j.music = j.check("music", cfg.Music)
	j.celebration = j.check("celebration", cfg.Celebration)
	return j
}

// check returns the usable path of an asset, or "" if it cannot be played.
func (j *Jukebox) check(kind, path string) string {
	if path == "" {
		j.warn(&AssetError{Kind: kind, Err: ErrNotConfigured})
		return ""
	}
	path = expandHome(path)
	info, err := os.Stat(path)
	if err != nil {
		j.warn(&AssetError{Kind: kind, Path: path, Err: err})
		return ""
	}
	if info.IsDir() {
		j.warn(&AssetError{Kind: kind, Path: path, Err: errors.New("is a directory")})
		return ""
	}
	return path
}

func (j *Jukebox) warn(err error) {
	j.problems = append(j.problems, err)
	j.logger.Warn("sound disabled", "error", err)
}

// Problems returns the asset errors found by New.
func (j *Jukebox) Problems() []error {
	return j.problems
}

// HasMusic reports whether background music can be played.
func (j *Jukebox) HasMusic() bool {
	return j.music != ""
}

// HasCelebration reports whether the celebration cue can be played.
func (j *Jukebox) HasCelebration() bool {
	return j.celebration != ""
}

// command builds the player argv for file.
func (j *Jukebox) command(file string) []string {
	argv := make([]string, 0, len(j.player)+1)
	hasFile := false
	for _, arg := range j.player {
		if strings.Contains(arg, placeholderFile) {
			hasFile = true
			arg = strings.ReplaceAll(arg, placeholderFile, file)
		}
		arg = strings.ReplaceAll(arg, placeholderVolume, strconv.Itoa(j.volume))
		argv = append(argv, arg)
	}
	if !hasFile {
		argv = append(argv, file)
	}
	return argv
}

// StartMusic loops the background track until StopMusic or Close.
func (j *Jukebox) StartMusic() {
	if !j.HasMusic() {
		return
	}

	j.mu.Lock()
	defer j.mu.Unlock()
	if j.stopMusic != nil {
		return
	}

	ctx, cancel := context.WithCancel(j.ctx)
	j.stopMusic = cancel
	argv := j.command(j.music)

	j.wg.Add(1)
	go func() {
		defer j.wg.Done()
		for {
			if err := j.run(ctx, argv); err != nil && ctx.Err() == nil {
				j.logger.Debug("music player exited", "error", err)
			}
			select {
			case <-ctx.Done():
				return
			case <-time.After(restartDelay):
			}
		}
	}()
}

// StopMusic stops the background track if it is playing.
func (j *Jukebox) StopMusic() {
	j.mu.Lock()
	defer j.mu.Unlock()
	if j.stopMusic != nil {
		j.stopMusic()
		j.stopMusic = nil
	}
}

// Celebrate plays the celebration cue once, or rings the terminal bell
// when there is none.
func (j *Jukebox) Celebrate() {
	if !j.HasCelebration() {
		//nolint:errcheck // Best-effort bell
		io.WriteString(j.bell, "\a")
		return
	}

	argv := j.command(j.celebration)
	j.wg.Add(1)
	go func() {
		defer j.wg.Done()
		if err := j.run(j.ctx, argv); err != nil && j.ctx.Err() == nil {
			j.logger.Warn("celebration cue failed", "error", err)
		}
	}()
}

// Close stops all players and waits for them to exit.
func (j *Jukebox) Close() {
	j.StopMusic()
	j.cancel()
	j.wg.Wait()
}

func runCommand(ctx context.Context, argv []string) error {
	return exec.CommandContext(ctx, argv[0], argv[1:]...).Run()
}

func expandHome(path string) string {
	if !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[2:])
}
