package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"go.trai.ch/osw/internal/core/domain"
	"go.trai.ch/zerr"
)

// Settings are run options that do not belong in a workflow file.
type Settings struct {
	RunDir         string
	MeasurePaths   []string
	StepTimeout    time.Duration
	ChangeDir      bool
	LogJSON        bool
	Quiet          bool
	DebounceWindow time.Duration
}

// DefaultSettings returns the settings used when nothing is configured.
func DefaultSettings() Settings {
	return Settings{
		ChangeDir:      true,
		DebounceWindow: 100 * time.Millisecond,
	}
}

// LoadSettings reads OSW_* settings from dir/.env and the process
// environment. Non-empty environment values win over the file.
func LoadSettings(dir string) (Settings, error) {
	s := DefaultSettings()

	file, err := godotenv.Read(filepath.Join(dir, domain.EnvFileName))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return s, zerr.With(zerr.Wrap(domain.ErrValidation, "unreadable settings file"), "path", filepath.Join(dir, domain.EnvFileName))
	}
	lookup := func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok && v != "" {
			return v, true
		}
		v, ok := file[key]
		return v, ok
	}

	if v, ok := lookup(EnvRunDir); ok && v != "" {
		s.RunDir = v
	}
	if v, ok := lookup(EnvMeasurePaths); ok && v != "" {
		s.MeasurePaths = filepath.SplitList(v)
	}
	if v, ok := lookup(EnvLogFormat); ok {
		s.LogJSON = strings.EqualFold(strings.TrimSpace(v), "json")
	}
	if s.StepTimeout, err = durationSetting(lookup, EnvStepTimeout, s.StepTimeout); err != nil {
		return s, err
	}
	if s.DebounceWindow, err = durationSetting(lookup, EnvDebounceWindow, s.DebounceWindow); err != nil {
		return s, err
	}
	if s.ChangeDir, err = boolSetting(lookup, EnvChangeDir, s.ChangeDir); err != nil {
		return s, err
	}
	if s.Quiet, err = boolSetting(lookup, EnvQuiet, s.Quiet); err != nil {
		return s, err
	}
	return s, nil
}

type lookupFunc func(key string) (string, bool)

func durationSetting(lookup lookupFunc, key string, def time.Duration) (time.Duration, error) {
	v, ok := lookup(key)
	if !ok || strings.TrimSpace(v) == "" {
		return def, nil
	}
	d, err := time.ParseDuration(strings.TrimSpace(v))
	if err != nil {
		return def, zerr.With(zerr.With(zerr.Wrap(domain.ErrValidation, "invalid duration setting"), "key", key), "value", v)
	}
	return d, nil
}

func boolSetting(lookup lookupFunc, key string, def bool) (bool, error) {
	v, ok := lookup(key)
	if !ok || strings.TrimSpace(v) == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(strings.TrimSpace(v))
	if err != nil {
		return def, zerr.With(zerr.With(zerr.Wrap(domain.ErrValidation, "invalid boolean setting"), "key", key), "value", v)
	}
	return b, nil
}

// Apply overlays settings onto wf. Workflow values win for the run directory;
// settings measure paths are searched after the workflow's own.
func (s Settings) Apply(wf *domain.Workflow) {
	if s.RunDir != "" && wf.RunDirectory == filepath.Join(filepath.Dir(wf.Path), domain.DefaultRunPath()) {
		wf.RunDirectory = s.RunDir
	}
	wf.MeasurePaths = append(wf.MeasurePaths, s.MeasurePaths...)
}
