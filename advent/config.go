package main

import (
	"fmt"
	"io"
	"os"
	"os/user"
	"path/filepath"

	"github.com/vaughan0/go-ini"
)

const defaultTarget = "shiny gold"

// config is read from an INI file:
//
//	[day7]
//	target = shiny gold
//	input = /path/to/rules.txt
//	history = /tmp/advent-history.txt
//
//	[profile]
//	fgprof = /tmp/advent.pprof
type config struct {
	target  string
	input   string
	history string
	fgprof  string
}

// loadConfig reads the file named by $ADVENT_CONFIG or, if that is
// unset, ~/.config/advent/config.ini. Only the former must exist.
func loadConfig() (*config, error) {
	path := os.Getenv("ADVENT_CONFIG")
	explicit := path != ""
	if !explicit {
		user, err := user.Current()
		if err != nil || user.HomeDir == "" {
			return parseConfig(ini.File{})
		}
		path = filepath.Join(user.HomeDir, ".config", "advent", "config.ini")
	}
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return parseConfig(ini.File{})
		}
		return nil, fmt.Errorf("error loading config (%s): %s", path, err)
	}
	defer f.Close()
	cfg, err := readConfig(f)
	if err != nil {
		return nil, fmt.Errorf("error loading config (%s): %s", path, err)
	}
	return cfg, nil
}

func readConfig(r io.Reader) (*config, error) {
	file, err := ini.Load(r)
	if err != nil {
		return nil, err
	}
	return parseConfig(file)
}

func parseConfig(file ini.File) (*config, error) {
	cfg := &config{target: defaultTarget}
	day7 := file.Section("day7")
	if target, ok := day7["target"]; ok {
		if target == "" {
			return nil, fmt.Errorf("[day7] target is empty")
		}
		cfg.target = target
	}
	cfg.input = day7["input"]
	cfg.history = day7["history"]
	cfg.fgprof = file.Section("profile")["fgprof"]
	return cfg, nil
}
