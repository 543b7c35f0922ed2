package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk shape of the settings file.
type StructuredJSONConfig struct {
	Resolver struct {
		FilePath       string `json:"file"`
		ModeVar        string `json:"mode_var"`
		Mode           string `json:"mode"`
		SyncProcessEnv bool   `json:"sync_process_env"`
	} `json:"resolver,omitempty"`

	Output struct {
		Format string `json:"format"`
		All    bool   `json:"all"`
	} `json:"output,omitempty"`

	Watch struct {
		Debounce Duration `json:"debounce"`
	} `json:"watch,omitempty"`

	Log struct {
		Level  string `json:"level"`
		Pretty bool   `json:"pretty"`
	} `json:"log,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		Resolver: Resolver{
			FilePath:       jsonCfg.Resolver.FilePath,
			ModeVar:        jsonCfg.Resolver.ModeVar,
			Mode:           jsonCfg.Resolver.Mode,
			SyncProcessEnv: jsonCfg.Resolver.SyncProcessEnv,
		},
		Output: Output{
			Format: jsonCfg.Output.Format,
			All:    jsonCfg.Output.All,
		},
		Watch: Watch{
			Debounce: time.Duration(jsonCfg.Watch.Debounce),
		},
		Log: Log{
			Level:  jsonCfg.Log.Level,
			Pretty: jsonCfg.Log.Pretty,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
