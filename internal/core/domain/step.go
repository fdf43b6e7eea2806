package domain

// WorkflowStep is one ordered invocation of a measure.
type WorkflowStep struct {
	Index          int            `yaml:"-" json:"-"`
	MeasureDirName string         `yaml:"measure_dir_name" json:"measure_dir_name" validate:"required"`
	Name           string         `yaml:"name,omitempty" json:"name,omitempty"`
	Arguments      map[string]any `yaml:"arguments,omitempty" json:"arguments,omitempty"`
	Skip           bool           `yaml:"skip,omitempty" json:"skip,omitempty"`
}

// Workflow is an ordered list of steps together with its inputs.
type Workflow struct {
	SeedFile     string         `yaml:"seed_file" json:"seed_file" validate:"required"`
	WeatherFile  string         `yaml:"weather_file,omitempty" json:"weather_file,omitempty"`
	MeasurePaths []string       `yaml:"measure_paths,omitempty" json:"measure_paths,omitempty"`
	RunDirectory string         `yaml:"run_directory,omitempty" json:"run_directory,omitempty"`
	Steps        []WorkflowStep `yaml:"steps" json:"steps" validate:"dive"`

	// Path is the file the workflow was loaded from.
	Path string `yaml:"-" json:"-"`
}

// RunState is the shared state threaded through the steps of a run.
// Steps borrow the model and workspace for their own duration only.
type RunState struct {
	Cursor    int
	Model     *Model
	Workspace *Workspace
	SQLPath   string
}
