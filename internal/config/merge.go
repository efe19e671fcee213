package config

import "fmt"

// Merge layers the given files over the defaults. Later files take
// precedence; nil entries are skipped.
func Merge(files ...*KDLConfig) (*Config, error) {
	cfg := NewConfig()
	for _, f := range files {
		if f == nil {
			continue
		}
		if err := f.apply(cfg); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

// Options selects the config sources for Load.
type Options struct {
	// ProjectDir is searched for .jobboss2-mcp.kdl.
	ProjectDir string

	// File, when set, replaces the project config file. It must exist.
	File string

	// Getenv reads environment variables; nil means os.Getenv.
	Getenv func(string) string
}

// Load merges the user file, the project file and the environment. It does
// not validate the result.
func Load(opts Options) (*Config, error) {
	var (
		files []*KDLConfig
		read  []string
	)

	if path := UserConfigPath(); path != "" {
		user, err := loadConfigFile(path)
		if err != nil {
			return nil, err
		}
		if user != nil {
			files = append(files, user)
			read = append(read, path)
		}
	}

	projectPath := ProjectConfigPath(opts.ProjectDir)
	if opts.File != "" {
		projectPath = opts.File
	}
	project, err := loadConfigFile(projectPath)
	if err != nil {
		return nil, err
	}
	if project == nil && opts.File != "" {
		return nil, fmt.Errorf("config file not found: %s", opts.File)
	}
	if project != nil {
		files = append(files, project)
		read = append(read, projectPath)
	}

	cfg, err := Merge(files...)
	if err != nil {
		return nil, err
	}
	cfg.Files = read

	if err := ApplyEnv(cfg, opts.Getenv); err != nil {
		return nil, err
	}
	return cfg, nil
}
