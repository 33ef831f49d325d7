package blog

import (
	"fmt"

	"github.com/spf13/viper"
)

// LoadCatalog reads the "posts" list from a YAML, JSON or TOML file and
// validates every entry. The file format is taken from the extension.
func LoadCatalog(path string) ([]Post, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("blog: read catalog %s: %w", path, err)
	}
	return decodeCatalog(v, path)
}

func decodeCatalog(v *viper.Viper, source string) ([]Post, error) {
	var records []Record
	if err := v.UnmarshalKey("posts", &records); err != nil {
		return nil, fmt.Errorf("blog: decode catalog %s: %w", source, err)
	}

	posts := make([]Post, 0, len(records))
	for i, r := range records {
		p, err := r.Post()
		if err != nil {
			return nil, fmt.Errorf("blog: catalog %s: post %d: %w", source, i, err)
		}
		posts = append(posts, p)
	}
	return posts, nil
}
