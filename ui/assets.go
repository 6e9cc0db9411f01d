package ui

import (
	"os"
	"path/filepath"
	"strings"

	"snake-minigame/game/types"
	"snake-minigame/logger"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Assets hands out handles immediately and loads the files on the next
// Resolve, once the window and audio device exist.
type Assets struct {
	byPath   map[string]types.AssetHandle
	paths    map[types.AssetHandle]string
	pending  []types.AssetHandle
	sounds   map[types.AssetHandle]rl.Sound
	textures map[types.AssetHandle]rl.Texture2D
}

func NewAssets() *Assets {
	return &Assets{
		byPath:   make(map[string]types.AssetHandle),
		paths:    make(map[types.AssetHandle]string),
		sounds:   make(map[types.AssetHandle]rl.Sound),
		textures: make(map[types.AssetHandle]rl.Texture2D),
	}
}

func (a *Assets) Load(path string) types.AssetHandle {
	if h, ok := a.byPath[path]; ok {
		return h
	}
	h := types.AssetHandle(len(a.byPath) + 1)
	a.byPath[path] = h
	a.paths[h] = path
	a.pending = append(a.pending, h)
	return h
}

// Resolve loads everything requested since the last call. Files that are
// missing or of an unknown type are dropped and their handle stays silent.
func (a *Assets) Resolve() {
	for _, h := range a.pending {
		path := a.paths[h]
		if _, err := os.Stat(path); err != nil {
			logger.Log.Warnw("asset unavailable", "path", path, "error", err.Error())
			continue
		}
		switch strings.ToLower(filepath.Ext(path)) {
		case ".wav", ".ogg", ".mp3", ".flac":
			if !rl.IsAudioDeviceReady() {
				logger.Log.Warnw("no audio device, skipping sound", "path", path)
				continue
			}
			a.sounds[h] = rl.LoadSound(path)
		case ".png", ".jpg", ".bmp":
			a.textures[h] = rl.LoadTexture(path)
		default:
			logger.Log.Warnw("unknown asset type", "path", path)
			continue
		}
		logger.Log.Debugw("asset loaded", "path", path, "handle", h)
	}
	a.pending = a.pending[:0]
}

func (a *Assets) Sound(h types.AssetHandle) (rl.Sound, bool) {
	if len(a.pending) > 0 {
		a.Resolve()
	}
	s, ok := a.sounds[h]
	return s, ok
}

func (a *Assets) Texture(h types.AssetHandle) (rl.Texture2D, bool) {
	t, ok := a.textures[h]
	return t, ok
}

func (a *Assets) Unload() {
	for h, s := range a.sounds {
		rl.UnloadSound(s)
		delete(a.sounds, h)
	}
	for h, t := range a.textures {
		rl.UnloadTexture(t)
		delete(a.textures, h)
	}
}
