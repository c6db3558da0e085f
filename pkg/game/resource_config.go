package game

import "path"

// ResourceConfig is the layout of assets/config/resources.yaml:
//
//	version: "1.0"
//	base_path: assets
//	groups:
//	  farm_images:
//	    images:
//	      - id: IMAGE_SOIL_X
//	        path: graphics/soil/x
//	  farm_sounds:
//	    sounds:
//	      - id: SOUND_HOE
//	        path: audio/hoe.wav
type ResourceConfig struct {
	Version  string                   `yaml:"version"`
	BasePath string                   `yaml:"base_path"`
	Groups   map[string]ResourceGroup `yaml:"groups"`
}

// ResourceGroup is a set of resources loaded together by LoadResourceGroup.
type ResourceGroup struct {
	Images []ImageResource `yaml:"images"`
	Sounds []SoundResource `yaml:"sounds"`
}

// ImageResource maps an ID to a path under base_path.
// ".png" is appended when the path has no extension.
type ImageResource struct {
	ID   string `yaml:"id"`
	Path string `yaml:"path"`
}

// SoundResource maps an ID to an audio file under base_path.
type SoundResource struct {
	ID   string `yaml:"id"`
	Path string `yaml:"path"`
}

// buildFullPath joins base_path and a resource path into an fs.FS path.
func buildFullPath(basePath, relativePath string) string {
	return path.Join(basePath, relativePath)
}
