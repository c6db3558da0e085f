package game

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/png" // Register PNG decoder
	"io"
	"io/fs"
	"path"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
	"gopkg.in/yaml.v3"
)

// ErrResourceConfigNotLoaded is returned by ID based lookups before LoadResourceConfig.
var ErrResourceConfigNotLoaded = errors.New("resource config not loaded - call LoadResourceConfig first")

// ResourceManager is responsible for centralized management of game resources.
// It provides loading and caching mechanisms for images and audio assets read
// from a file system (the embedded assets in the game, fstest.MapFS in tests),
// ensuring that resources are loaded only once and reused throughout the game.
//
// Thread Safety Note:
// This implementation is NOT thread-safe. All loading happens on the game loop goroutine.
//
// Usage:
//
//	rm := NewResourceManager(audio.NewContext(48000), embedded.FS())
//	if err := rm.LoadResourceConfig("assets/config/resources.yaml"); err != nil {
//	    return err
//	}
//	img, err := rm.LoadImageByID("IMAGE_SOIL_X")
type ResourceManager struct {
	fsys         fs.FS                      // Source of every resource file
	imageCache   map[string]*ebiten.Image   // Cache for loaded images: path -> Image
	audioCache   map[audioKey]*audio.Player // Cache for loaded audio players, looping and one-shot kept apart
	audioContext *audio.Context             // Global audio context for audio decoding, nil disables audio

	// YAML resource configuration
	config      *ResourceConfig   // Parsed YAML configuration
	resourceMap map[string]string // Resource ID -> file path mapping for quick lookup
}

// NewResourceManager creates and initializes a new ResourceManager instance.
//
// Parameters:
//   - audioContext: The global audio context used for decoding audio files (nil disables audio loading).
//   - fsys: The file system resources are read from.
//
// Returns:
//   - A pointer to a newly initialized ResourceManager with empty caches.
func NewResourceManager(audioContext *audio.Context, fsys fs.FS) *ResourceManager {
	return &ResourceManager{
		fsys:         fsys,
		imageCache:   make(map[string]*ebiten.Image),
		audioCache:   make(map[audioKey]*audio.Player),
		audioContext: audioContext,
		resourceMap:  make(map[string]string),
	}
}

// LoadImage loads an image file from the specified path and caches it for future use.
// If the image has already been loaded, it returns the cached version.
//
// Parameters:
//   - path: The file path to the image resource (e.g., "assets/graphics/soil/x.png").
//
// Returns:
//   - A pointer to the loaded ebiten.Image.
//   - An error if the file cannot be opened or decoded.
func (rm *ResourceManager) LoadImage(path string) (*ebiten.Image, error) {
	if cachedImage, exists := rm.imageCache[path]; exists {
		return cachedImage, nil
	}

	file, err := rm.fsys.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image file %s: %w", path, err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", path, err)
	}

	ebitenImg := ebiten.NewImageFromImage(img)
	rm.imageCache[path] = ebitenImg
	return ebitenImg, nil
}

// GetImage retrieves a previously loaded image from the cache, or nil.
func (rm *ResourceManager) GetImage(path string) *ebiten.Image {
	return rm.imageCache[path]
}

// LoadAudio loads a looping audio track (background music) and caches it.
// Supported formats: MP3 (.mp3), OGG Vorbis (.ogg) and WAV (.wav).
func (rm *ResourceManager) LoadAudio(path string) (*audio.Player, error) {
	return rm.loadAudioPlayer(path, true)
}

// LoadSoundEffect loads a one-shot sound effect (hoe, planting) and caches it.
// Unlike LoadAudio, the stream is NOT wrapped in an infinite loop.
func (rm *ResourceManager) LoadSoundEffect(path string) (*audio.Player, error) {
	return rm.loadAudioPlayer(path, false)
}

// audioKey identifies a cached player. The same file may be loaded both as
// music and as a one-shot effect.
type audioKey struct {
	path string
	loop bool
}

func (rm *ResourceManager) loadAudioPlayer(filePath string, loop bool) (*audio.Player, error) {
	key := audioKey{path: filePath, loop: loop}
	if cachedPlayer, exists := rm.audioCache[key]; exists {
		return cachedPlayer, nil
	}
	if rm.audioContext == nil {
		return nil, fmt.Errorf("cannot load audio %s: no audio context", filePath)
	}

	// Read the entire file into memory so the stream can seek without an open handle
	audioData, err := fs.ReadFile(rm.fsys, filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read audio file %s: %w", filePath, err)
	}
	reader := bytes.NewReader(audioData)

	var stream interface {
		io.ReadSeeker
		Length() int64
	}

	switch ext := strings.ToLower(path.Ext(filePath)); ext {
	case ".mp3":
		stream, err = mp3.DecodeWithoutResampling(reader)
	case ".ogg":
		stream, err = vorbis.DecodeWithoutResampling(reader)
	case ".wav":
		stream, err = wav.DecodeWithoutResampling(reader)
	default:
		return nil, fmt.Errorf("unsupported audio format: %s (supported: .mp3, .ogg, .wav)", ext)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to decode audio %s: %w", filePath, err)
	}

	var src io.Reader = stream
	if loop {
		src = audio.NewInfiniteLoop(stream, stream.Length())
	}

	player, err := rm.audioContext.NewPlayer(src)
	if err != nil {
		return nil, fmt.Errorf("failed to create audio player for %s: %w", filePath, err)
	}

	rm.audioCache[key] = player
	return player, nil
}

// LoadResourceConfig loads and parses the YAML resource manifest.
//
// Example:
//
//	if err := rm.LoadResourceConfig("assets/config/resources.yaml"); err != nil {
//	    return fmt.Errorf("failed to load resource config: %w", err)
//	}
func (rm *ResourceManager) LoadResourceConfig(configPath string) error {
	data, err := fs.ReadFile(rm.fsys, configPath)
	if err != nil {
		return fmt.Errorf("failed to read resource config %s: %w", configPath, err)
	}

	var config ResourceConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return fmt.Errorf("failed to parse resource config %s: %w", configPath, err)
	}

	rm.config = &config
	rm.buildResourceMap()

	log.Debugf("[ResourceManager] Loaded resource config %s: %d resources in %d groups",
		configPath, len(rm.resourceMap), len(config.Groups))
	return nil
}

// buildResourceMap constructs a mapping from resource IDs to full file paths.
//
//	IMAGE_SOIL_X -> assets/graphics/soil/x.png
//	SOUND_HOE    -> assets/audio/hoe.wav
func (rm *ResourceManager) buildResourceMap() {
	rm.resourceMap = make(map[string]string)
	if rm.config == nil {
		return
	}

	for _, group := range rm.config.Groups {
		for _, img := range group.Images {
			fullPath := buildFullPath(rm.config.BasePath, img.Path)
			if path.Ext(fullPath) == "" {
				fullPath += ".png" // Default to PNG for images
			}
			rm.resourceMap[img.ID] = fullPath
		}

		for _, sound := range group.Sounds {
			fullPath := buildFullPath(rm.config.BasePath, sound.Path)
			if path.Ext(fullPath) == "" {
				fullPath += ".ogg" // Default to OGG for sounds
			}
			rm.resourceMap[sound.ID] = fullPath
		}
	}
}

// ResourcePath returns the file path registered for a resource ID.
func (rm *ResourceManager) ResourcePath(resourceID string) (string, bool) {
	filePath, exists := rm.resourceMap[resourceID]
	return filePath, exists
}

// LoadImageByID loads an image resource using its resource ID from the manifest.
func (rm *ResourceManager) LoadImageByID(resourceID string) (*ebiten.Image, error) {
	if rm.config == nil {
		return nil, ErrResourceConfigNotLoaded
	}

	filePath, exists := rm.resourceMap[resourceID]
	if !exists {
		return nil, fmt.Errorf("resource ID not found: %s", resourceID)
	}
	return rm.LoadImage(filePath)
}

// GetImageByID retrieves a previously loaded image using its resource ID, or nil.
func (rm *ResourceManager) GetImageByID(resourceID string) *ebiten.Image {
	filePath, exists := rm.resourceMap[resourceID]
	if !exists {
		return nil
	}
	return rm.GetImage(filePath)
}

// LoadResourceGroup loads all resources in a specified group.
// Groups in resources.yaml: "farm_images", "farm_sounds".
//
// Returns:
//   - An error if the group is not found or any resource fails to load
func (rm *ResourceManager) LoadResourceGroup(groupName string) error {
	if rm.config == nil {
		return ErrResourceConfigNotLoaded
	}

	group, exists := rm.config.Groups[groupName]
	if !exists {
		return fmt.Errorf("resource group not found: %s", groupName)
	}

	for _, img := range group.Images {
		if _, err := rm.LoadImageByID(img.ID); err != nil {
			return fmt.Errorf("failed to load image %s in group %s: %w", img.ID, groupName, err)
		}
	}

	for _, sound := range group.Sounds {
		filePath := rm.resourceMap[sound.ID]
		if _, err := rm.LoadSoundEffect(filePath); err != nil {
			return fmt.Errorf("failed to load sound %s in group %s: %w", sound.ID, groupName, err)
		}
	}

	log.Debugf("[ResourceManager] Loaded group %s: %d images, %d sounds", groupName, len(group.Images), len(group.Sounds))
	return nil
}
