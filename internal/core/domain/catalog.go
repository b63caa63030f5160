package domain

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// AssetDescriptor describes one bucket object the seeder expects to find.
type AssetDescriptor struct {
	Filename string `yaml:"filename"`
	Alt      string `yaml:"alt"`
	Folder   string `yaml:"folder,omitempty"`
}

// ObjectPath returns the object key relative to the bucket root:
// "folder/filename" when a folder is set, else the bare filename.
func (a AssetDescriptor) ObjectPath() string {
	if a.Folder != "" {
		return a.Folder + "/" + a.Filename
	}
	return a.Filename
}

// DefaultCatalog returns the built-in asset list. The catalog is
// configuration: constructed once, never mutated.
func DefaultCatalog() []AssetDescriptor {
	return []AssetDescriptor{
		{Filename: "hero-banner.jpg", Alt: "Storefront hero banner"},
		{Filename: "about-team.jpg", Alt: "The team at work", Folder: "pages"},
		{Filename: "contact-map.png", Alt: "Map to the shop", Folder: "pages"},
		{Filename: "roastery-interior.jpg", Alt: "Roastery interior", Folder: "gallery"},
		{Filename: "latte-art.png", Alt: "Latte art close-up", Folder: "gallery"},
		{Filename: "beans-closeup.jpg", Alt: "Roasted beans close-up", Folder: "gallery"},
		{Filename: "espresso-machine.jpg", Alt: "Espresso machine", Folder: "gallery"},
		{Filename: "logo.png", Alt: "Site logo"},
	}
}

// LoadCatalog reads an asset catalog from a YAML file. A missing file is not
// an error; the built-in catalog is returned instead (mirrors config loading).
func LoadCatalog(path string) ([]AssetDescriptor, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultCatalog(), nil
		}
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}

	var catalog []AssetDescriptor
	if err := yaml.Unmarshal(data, &catalog); err != nil {
		return nil, fmt.Errorf("failed to parse catalog file: %w", err)
	}

	if err := ValidateCatalog(catalog); err != nil {
		return nil, err
	}
	return catalog, nil
}

// ValidateCatalog checks that every entry has a filename and that filenames
// are unique (the upsert key).
func ValidateCatalog(catalog []AssetDescriptor) error {
	seen := make(map[string]bool, len(catalog))
	for i, asset := range catalog {
		if asset.Filename == "" {
			return fmt.Errorf("catalog entry %d has an empty filename", i)
		}
		if seen[asset.Filename] {
			return fmt.Errorf("catalog contains duplicate filename %q", asset.Filename)
		}
		seen[asset.Filename] = true
	}
	return nil
}
