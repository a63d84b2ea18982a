package main

import (
	"bytes"
	"io"
	"sync"
	"time"

	"github.com/hajimehoshi/go-mp3"
	"github.com/hajimehoshi/oto/v2"
	"github.com/sirupsen/logrus"
)

// SoundEffect is an enum for different sound types.
type SoundEffect int

const (
	SoundGameStart SoundEffect = iota
	SoundMove
	SoundPlayerWins
	SoundComputerWins
	SoundDraw
)

var (
	otoCtx         *oto.Context
	soundData      = make(map[SoundEffect][]byte)
	lastPlayTimes  = make(map[SoundEffect]time.Time) // Per-sound rate limiting.
	soundLoaded    = false
	soundMutex     sync.Mutex              // Protects lastPlayTimes and activePlayers.
	soundRateLimit = 50 * time.Millisecond // Minimum gap between replays of the same effect.
	activePlayers  = make(map[oto.Player]bool)
	audioLog       = logrus.StandardLogger()
)

// initAudio initializes the audio context. This must be called once at
// startup. Any failure disables audio for the run; the game itself is
// unaffected.
func initAudio(log *logrus.Logger, mute bool) {
	audioLog = log
	if mute {
		return
	}
	// 44100, 2 channels (stereo), 2 bytes (16-bit) is a standard setting.
	var readyChan chan struct{}
	var err error
	otoCtx, readyChan, err = oto.NewContext(44100, 2, 2)
	if err != nil {
		audioLog.WithError(err).Error("failed to initialize audio context, audio disabled")
		return
	}
	// The context needs a moment to initialize. Wait for the ready
	// signal off the UI goroutine so the window appears immediately.
	go func() {
		<-readyChan
		soundLoaded = true
		loadAllSounds()
		go cleanupActivePlayers()
	}()
}

// cleanupActivePlayers runs in the background and periodically removes
// finished players from the activePlayers map to prevent leaks.
func cleanupActivePlayers() {
	ticker := time.NewTicker(500 * time.Millisecond)
	defer ticker.Stop()
	for range ticker.C {
		soundMutex.Lock()
		for player, active := range activePlayers {
			if active && !player.IsPlaying() {
				player.Close()
				delete(activePlayers, player)
			}
		}
		soundMutex.Unlock()
	}
}

// loadAllSounds is called once the audio context is ready.
func loadAllSounds() {
	loadSound(SoundGameStart, "assets/sounds/start.mp3")
	loadSound(SoundMove, "assets/sounds/move.mp3")
	loadSound(SoundPlayerWins, "assets/sounds/player_wins.mp3")
	loadSound(SoundComputerWins, "assets/sounds/computer_wins.mp3")
	loadSound(SoundDraw, "assets/sounds/draw.mp3")
}

// loadSound decodes a sound from the embedded assets into memory.
func loadSound(effect SoundEffect, path string) {
	if !soundLoaded {
		return // Audio context failed to initialize.
	}
	fileBytes, err := embeddedAssets.ReadFile(path)
	if err != nil {
		audioLog.WithError(err).WithField("asset", path).Error("failed to load sound asset")
		return
	}
	decoder, err := mp3.NewDecoder(bytes.NewReader(fileBytes))
	if err != nil {
		audioLog.WithError(err).WithField("asset", path).Error("failed to decode mp3")
		return
	}
	decodedBytes, err := io.ReadAll(decoder)
	if err != nil {
		audioLog.WithError(err).WithField("asset", path).Error("failed to read decoded mp3")
		return
	}
	soundData[effect] = decodedBytes
}

// PlaySound plays a pre-loaded sound effect.
func PlaySound(effect SoundEffect) {
	if !soundLoaded {
		return // Audio disabled.
	}
	// The rate limiter must be mutex-protected: sounds are triggered
	// from both tap handlers and delayed-turn timers.
	soundMutex.Lock()
	if time.Since(lastPlayTimes[effect]) < soundRateLimit {
		soundMutex.Unlock()
		return
	}
	lastPlayTimes[effect] = time.Now()
	data, ok := soundData[effect]
	if !ok || len(data) == 0 {
		soundMutex.Unlock()
		return // Sound not loaded.
	}
	player := otoCtx.NewPlayer(bytes.NewReader(data))
	// Keep a reference while it plays so it is not garbage-collected;
	// the cleanup goroutine removes it later.
	activePlayers[player] = true
	soundMutex.Unlock()
	player.Play()
}
