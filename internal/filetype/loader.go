package filetype

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/dshills/quill/internal/highlight"
	"github.com/pelletier/go-toml/v2"
)

// definition is the TOML schema for a user-supplied file type:
//
//	name = "zig"
//	extensions = ["zig"]
//
//	[highlighting]
//	numbers = true
//	strings = true
//	characters = true
//	comments = true
//	multiline_comments = true
//	primary_keywords = ["fn", "pub", "return"]
//	secondary_keywords = ["u8", "i32"]
type definition struct {
	Name         string   `toml:"name"`
	Extensions   []string `toml:"extensions"`
	Highlighting struct {
		Numbers           bool     `toml:"numbers"`
		Strings           bool     `toml:"strings"`
		Characters        bool     `toml:"characters"`
		Comments          bool     `toml:"comments"`
		MultilineComments bool     `toml:"multiline_comments"`
		PrimaryKeywords   []string `toml:"primary_keywords"`
		SecondaryKeywords []string `toml:"secondary_keywords"`
	} `toml:"highlighting"`
}

// LoadFile parses one file type definition.
func LoadFile(path string) (*FileType, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var def definition
	if err := toml.Unmarshal(data, &def); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if def.Name == "" {
		return nil, fmt.Errorf("%s: file type needs a name", path)
	}
	if len(def.Extensions) == 0 {
		return nil, fmt.Errorf("%s: file type %q needs at least one extension", path, def.Name)
	}
	return &FileType{
		Name:       def.Name,
		Extensions: def.Extensions,
		Options: highlight.Options{
			Numbers:           def.Highlighting.Numbers,
			Strings:           def.Highlighting.Strings,
			Characters:        def.Highlighting.Characters,
			Comments:          def.Highlighting.Comments,
			MultilineComments: def.Highlighting.MultilineComments,
			PrimaryKeywords:   def.Highlighting.PrimaryKeywords,
			SecondaryKeywords: def.Highlighting.SecondaryKeywords,
		},
	}, nil
}

// LoadDir registers every *.toml definition under dir. A missing
// directory is not an error; a definition that fails to parse is
// reported but does not stop the rest from loading.
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
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".toml") {
			continue
		}
		ft, err := LoadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			errs = append(errs, err)
			continue
		}
		reg.Register(ft)
	}
	return errors.Join(errs...)
}
