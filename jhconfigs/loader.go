package jhconfigs

import (
	_ "embed"
	"os"
	"path/filepath"

	"github.com/reusee/jehanni/cmds"
	"github.com/reusee/jehanni/configs"
	"github.com/reusee/jehanni/logs"
	"github.com/reusee/jehanni/modes"
)

//go:embed schema.cue
var schema string

var configFlags = cmds.Collect[string]("-config")

// ConfigFiles lists the CUE files to load, most specific first.
type ConfigFiles []string

func (Module) ConfigFiles(
	mode modes.Mode,
) (paths ConfigFiles) {
	paths = append(paths, *configFlags...)

	if mode == modes.ModeDevelopment {
		return
	}

	filenames := []string{
		"jehanni.cue",
		".jehanni.cue",
	}
	var dirs []string
	if workingDir, err := os.Getwd(); err == nil {
		dirs = append(dirs, workingDir)
	}
	if configDir, err := os.UserConfigDir(); err == nil {
		dirs = append(dirs, configDir)
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

func (Module) ConfigsLoader(
	files ConfigFiles,
	logger logs.Logger,
) configs.Loader {
	if len(files) > 0 {
		logger.Info("config file",
			"paths", []string(files),
		)
	}
	return configs.NewLoader(files, schema)
}
