package scenario

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/goccy/go-yaml"
	"github.com/pelletier/go-toml/v2"
)

// Format identifies a scenario file encoding
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
	FormatJSON Format = "json"
)

// Calculation is one named tool invocation
type Calculation struct {
	Name   string                 `json:"name" yaml:"name" toml:"name"`
	Tool   string                 `json:"tool" yaml:"tool" toml:"tool"`
	Params map[string]interface{} `json:"params" yaml:"params" toml:"params"`
}

// File is a decoded scenario
type File struct {
	Name         string        `json:"name" yaml:"name" toml:"name"`
	Calculations []Calculation `json:"calculations" yaml:"calculations" toml:"calculations"`
}

// FormatFor maps a file extension to its format
func FormatFor(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	case ".json":
		return FormatJSON, nil
	}
	return "", fmt.Errorf("unsupported scenario file extension %q", filepath.Ext(path))
}

// Load reads and decodes a scenario file
func Load(path string) (*File, error) {
	format, err := FormatFor(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario: %w", err)
	}
	file, err := Parse(data, format)
	if err != nil {
		return nil, err
	}
	if file.Name == "" {
		file.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return file, nil
}

// Parse decodes scenario content in the given format
func Parse(data []byte, format Format) (*File, error) {
	var file File
	var err error
	switch format {
	case FormatYAML:
		err = yaml.Unmarshal(data, &file)
	case FormatTOML:
		err = toml.Unmarshal(data, &file)
	case FormatJSON:
		err = sonic.Unmarshal(data, &file)
	default:
		return nil, fmt.Errorf("unsupported scenario format %q", format)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s scenario: %w", format, err)
	}
	if err := file.Validate(); err != nil {
		return nil, err
	}
	return &file, nil
}

// Validate checks that every entry names a tool
func (f *File) Validate() error {
	if len(f.Calculations) == 0 {
		return fmt.Errorf("scenario has no calculations")
	}
	for k := range f.Calculations {
		c := &f.Calculations[k]
		if c.Tool == "" {
			return fmt.Errorf("calculation %d: tool is required", k+1)
		}
		if c.Name == "" {
			c.Name = fmt.Sprintf("%s#%d", c.Tool, k+1)
		}
		if c.Params == nil {
			c.Params = map[string]interface{}{}
		}
	}
	return nil
}
