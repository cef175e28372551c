package models

// Settings represents the application configuration
type Settings struct {
	UI  UISettings  `yaml:"ui"`
	Log LogSettings `yaml:"log"`
}

// UISettings controls how the grid is drawn
type UISettings struct {
	MaxCellWidth int  `yaml:"max_cell_width"` // display columns per cell before truncation
	ShowHelp     bool `yaml:"show_help"`
	NoColor      bool `yaml:"no_color"`
}

// LogSettings controls the diagnostic log file
type LogSettings struct {
	File  string `yaml:"file"`  // empty disables logging
	Level string `yaml:"level"` // debug, info, warn or error
}

// DefaultSettings returns the default configuration
func DefaultSettings() *Settings {
	return &Settings{
		UI: UISettings{
			MaxCellWidth: 24,
			ShowHelp:     true,
			NoColor:      false,
		},
		Log: LogSettings{
			File:  "",
			Level: "info",
		},
	}
}
