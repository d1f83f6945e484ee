package theme

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/dshills/quill/internal/highlight"
	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"
)

// definition is the YAML schema for a user theme. Colors are hex
// strings; the keys under colors are highlight class names:
//
//	name: nord
//	foreground: "#d8dee9"
//	selection: "#434c5e"
//	status_foreground: "#2e3440"
//	status_background: "#d8dee9"
//	colors:
//	  number: "#b48ead"
//	  match: "#88c0d0"
//	  string: "#a3be8c"
//	  comment: "#616e88"
//	  mlcomment: "#616e88"
//	  primary_keyword: "#81a1c1"
//	  secondary_keyword: "#8fbcbb"
type definition struct {
	Name             string            `yaml:"name"`
	Foreground       string            `yaml:"foreground"`
	Selection        string            `yaml:"selection"`
	StatusForeground string            `yaml:"status_foreground"`
	StatusBackground string            `yaml:"status_background"`
	Colors           map[string]string `yaml:"colors"`
}

var classByName = map[string]highlight.Type{
	highlight.Number.String():           highlight.Number,
	highlight.Match.String():            highlight.Match,
	highlight.String.String():           highlight.String,
	highlight.Character.String():        highlight.Character,
	highlight.Comment.String():          highlight.Comment,
	highlight.MultilineComment.String(): highlight.MultilineComment,
	highlight.PrimaryKeyword.String():   highlight.PrimaryKeyword,
	highlight.SecondaryKeyword.String(): highlight.SecondaryKeyword,
}

// LoadFile parses one theme definition.
func LoadFile(path string) (*Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var def definition
	if err := yaml.Unmarshal(data, &def); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if def.Name == "" {
		return nil, fmt.Errorf("%s: theme needs a name", path)
	}

	base := Classic()
	t := &Theme{
		Name:             def.Name,
		Foreground:       base.Foreground,
		Colors:           make(map[highlight.Type]Color),
		Selection:        base.Selection,
		StatusForeground: base.StatusForeground,
		StatusBackground: base.StatusBackground,
	}
	fields := []struct {
		hex string
		dst *Color
	}{
		{def.Foreground, &t.Foreground},
		{def.Selection, &t.Selection},
		{def.StatusForeground, &t.StatusForeground},
		{def.StatusBackground, &t.StatusBackground},
	}
	for _, f := range fields {
		if f.hex == "" {
			continue
		}
		c, err := parseHex(f.hex)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		*f.dst = c
	}
	for name, hex := range def.Colors {
		class, ok := classByName[name]
		if !ok {
			return nil, fmt.Errorf("%s: unknown highlight class %q", path, name)
		}
		c, err := parseHex(hex)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		t.Colors[class] = c
	}
	return t, nil
}

// LoadDir registers every *.yaml and *.yml theme under dir. A missing
// directory is not an error; a theme that fails to parse is reported
// but does not stop the rest from loading.
func LoadDir(reg *Registry, dir string) error {
	entries, err := os.ReadDir(dir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return err
	}
	var errs []error
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || (!strings.HasSuffix(name, ".yaml") && !strings.HasSuffix(name, ".yml")) {
			continue
		}
		t, err := LoadFile(filepath.Join(dir, name))
		if err != nil {
			errs = append(errs, err)
			continue
		}
		reg.Register(t)
	}
	return errors.Join(errs...)
}

func parseHex(hex string) (Color, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return Color{}, fmt.Errorf("bad color %q: %w", hex, err)
	}
	r, g, b := c.RGB255()
	return Color{R: r, G: g, B: b}, nil
}
