package config

// Pexfile represents the structure of the pexwrap.yaml configuration file.
// Pointer fields distinguish an explicit false or empty value from an absent key.
type Pexfile struct {
	EntryPoint *string   `yaml:"entryPoint"`
	ZipSafe    *bool     `yaml:"zipSafe"`
	Python     *string   `yaml:"python"`
	PyPI       *bool     `yaml:"pypi"`
	FindLinks  []string  `yaml:"findLinks"`
	UseWheel   *bool     `yaml:"useWheel"`
	PexRoot    *string   `yaml:"pexRoot"`
	IndexURL   *string   `yaml:"indexURL"`
	SearchPath *string   `yaml:"searchPath"`
	Bootstrap  []string  `yaml:"bootstrap"`
	Journal    *string   `yaml:"journal"`
	LogJSON    *bool     `yaml:"logJSON"`
	Extras     ExtrasDTO `yaml:"extras"`
}

// ExtrasDTO locates the pinned utility packages and overrides the interpreter requirements.
type ExtrasDTO struct {
	SetuptoolsPath        *string `yaml:"setuptoolsPath"`
	WheelPath             *string `yaml:"wheelPath"`
	SetuptoolsRequirement *string `yaml:"setuptoolsRequirement"`
	WheelRequirement      *string `yaml:"wheelRequirement"`
}
