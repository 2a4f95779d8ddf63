package bfconfigs

import (
	_ "embed"
	"os"
	"path/filepath"

	"github.com/reusee/bf/configs"
	"github.com/reusee/bf/logs"
)

//go:embed schema.cue
var schema string

var filenames = []string{
	"bf.cue",
	".bf.cue",
}

func (Module) ConfigsLoader(
	logger logs.Logger,
) configs.Loader {
	paths := configPaths()
	if len(paths) > 0 {
		logger.Debug("config file",
			"paths", paths,
		)
	}
	return configs.NewLoader(paths, schema)
}

// configPaths lists existing config files, most specific first
func configPaths() (paths []string) {
	var dirs []string
	if dir, err := os.Getwd(); err == nil {
		dirs = append(dirs, dir)
	}
	if dir, err := os.UserConfigDir(); err == nil {
		dirs = append(dirs, dir)
	}
	dirs = append(dirs, "/etc")

	for _, dir := range dirs {
		for _, filename := range filenames {
			path := filepath.Join(dir, filename)
			if _, err := os.Stat(path); err == nil {
				paths = append(paths, path)
			}
		}
	}
	return
}
