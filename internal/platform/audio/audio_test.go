package audio

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"sync"
	"testing"
	"time"

	"github.com/vovakirdan/tui-hotcold/internal/config"
	"github.com/vovakirdan/tui-hotcold/internal/logging"
)

func found(string) (string, error) { return "/usr/bin/player", nil }

func missing(name string) (string, error) { return "", errors.New("executable file not found") }

// recorder is a fake player that records every command it is asked to run.
type recorder struct {
	mu    sync.Mutex
	calls [][]string
	block bool
}

func (r *recorder) run(ctx context.Context, argv []string) error {
	r.mu.Lock()
	r.calls = append(r.calls, argv)
	r.mu.Unlock()
	if r.block {
		<-ctx.Done()
		return ctx.Err()
	}
	return nil
}

func (r *recorder) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.calls)
}

func writeAsset(t *testing.T, name string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte("ID3"), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestMissingAssetsAreNotFatal(t *testing.T) {
	cfg := config.AssetsConfig{
		Music:       filepath.Join(t.TempDir(), "nope.mp3"),
		Celebration: "",
		Player:      "ffplay",
	}
	rec := &recorder{}
	j := newJukebox(cfg, logging.Discard(), found, rec.run)
	var bell bytes.Buffer
	j.bell = &bell

	if j.HasMusic() || j.HasCelebration() {
		t.Error("Missing assets should disable sound")
	}
	if len(j.Problems()) != 2 {
		t.Fatalf("Problems() = %v, expected 2", j.Problems())
	}
	var assetErr *AssetError
	if !errors.As(j.Problems()[0], &assetErr) || assetErr.Kind != "music" {
		t.Errorf("first problem = %v, expected music AssetError", j.Problems()[0])
	}
	if !errors.Is(j.Problems()[1], ErrNotConfigured) {
		t.Errorf("second problem = %v, expected ErrNotConfigured", j.Problems()[1])
	}

	j.StartMusic()
	j.Celebrate()
	j.Close()

	if rec.count() != 0 {
		t.Errorf("Player ran %d times without assets", rec.count())
	}
	if bell.String() != "\a" {
		t.Errorf("bell = %q, expected terminal bell", bell.String())
	}
}

func TestMissingPlayer(t *testing.T) {
	cfg := config.AssetsConfig{
		Music:  writeAsset(t, "music.mp3"),
		Player: "ffplay -nodisp",
	}
	j := newJukebox(cfg, logging.Discard(), missing, (&recorder{}).run)

	if j.HasMusic() {
		t.Error("Music should be disabled without a player")
	}
	var assetErr *AssetError
	if len(j.Problems()) != 1 || !errors.As(j.Problems()[0], &assetErr) || assetErr.Kind != "player" {
		t.Errorf("Problems() = %v, expected one player error", j.Problems())
	}
}

func TestCommand(t *testing.T) {
	tests := []struct {
		name   string
		player string
		want   []string
	}{
		{"appended", "ffplay -nodisp -volume {volume}", []string{"ffplay", "-nodisp", "-volume", "50", "/a.mp3"}},
		{"placeholder", "mpv --volume={volume} {file} --no-video", []string{"mpv", "--volume=50", "/a.mp3", "--no-video"}},
		{"plain", "aplay", []string{"aplay", "/a.mp3"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			j := newJukebox(config.AssetsConfig{Player: tc.player, Volume: 50}, logging.Discard(), found, (&recorder{}).run)
			if got := j.command("/a.mp3"); !reflect.DeepEqual(got, tc.want) {
				t.Errorf("command() = %q, expected %q", got, tc.want)
			}
		})
	}
}

func TestMusicLoopStops(t *testing.T) {
	cfg := config.AssetsConfig{
		Music:  writeAsset(t, "music.mp3"),
		Player: "ffplay",
	}
	rec := &recorder{block: true}
	j := newJukebox(cfg, logging.Discard(), found, rec.run)

	j.StartMusic()
	j.StartMusic() // already playing

	deadline := time.Now().Add(2 * time.Second)
	for rec.count() == 0 && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
	}
	j.Close()

	if rec.count() != 1 {
		t.Errorf("player started %d times, expected 1", rec.count())
	}
	if rec.calls[0][len(rec.calls[0])-1] != cfg.Music {
		t.Errorf("argv = %q, expected the music file last", rec.calls[0])
	}
}

func TestCelebrationPlaysOnce(t *testing.T) {
	cfg := config.AssetsConfig{
		Celebration: writeAsset(t, "yay.mp3"),
		Player:      "ffplay",
	}
	rec := &recorder{}
	j := newJukebox(cfg, logging.Discard(), found, rec.run)
	var bell bytes.Buffer
	j.bell = &bell

	j.Celebrate()
	j.Close()

	if rec.count() != 1 || bell.Len() != 0 {
		t.Errorf("calls = %d, bell = %q; expected one player run and no bell", rec.count(), bell.String())
	}
}
