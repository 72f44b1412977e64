package yaml_adapter

import (
	"fmt"
	"strconv"

	"github.com/kballard/go-shellquote"
	"gopkg.in/yaml.v3"
)

type fileRoot struct {
	Configurations []*Configuration `yaml:"configurations"`
}

// Configuration is the YAML schema of one entry of `configurations`.
type Configuration struct {
	Name            string   `yaml:"name"`
	Toolchain       string   `yaml:"toolchain"`
	CompilerVersion string   `yaml:"compiler_version"`
	Device          *Device  `yaml:"device"`
	Defines         []string `yaml:"defines"`
	IncludePaths    []string `yaml:"include_paths"`
	Libraries       []string `yaml:"libraries"`
	LibraryPaths    []string `yaml:"library_paths"`
	CMisc           flagList `yaml:"c_misc"`
	AsmMisc         flagList `yaml:"asm_misc"`
	LinkerMisc      flagList `yaml:"linker_misc"`
	LinkerScript    string   `yaml:"linker_script"`
	UseMicrolib     *bool    `yaml:"use_microlib"`
	Memory          []Memory `yaml:"memory"`
	Options         []Option `yaml:"options"`
}

// Device is the YAML schema of the `device` mapping.
type Device struct {
	Name   string `yaml:"name"`
	Core   string `yaml:"core"`
	FPU    string `yaml:"fpu"`
	Endian string `yaml:"endian"`
}

// Memory is the YAML schema of a memory region.
type Memory struct {
	Name    string  `yaml:"name"`
	Start   address `yaml:"start"`
	Size    address `yaml:"size"`
	Access  string  `yaml:"access"`
	Startup bool    `yaml:"startup"`
}

// Option is the YAML schema of an option slot. Values is a pointer so that
// an explicit empty list can be told apart from an omitted key.
type Option struct {
	ID     string    `yaml:"id"`
	Value  *string   `yaml:"value"`
	Values *[]string `yaml:"values"`
}

// flagList accepts either a sequence of strings or a single string that is
// split into words with shell quoting rules.
type flagList []string

func (f *flagList) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		words, err := shellquote.Split(node.Value)
		if err != nil {
			return fmt.Errorf("line %d: %w", node.Line, err)
		}
		*f = words
		return nil
	case yaml.SequenceNode:
		var items []string
		if err := node.Decode(&items); err != nil {
			return err
		}
		*f = items
		return nil
	default:
		return fmt.Errorf("line %d: flags must be a string or a list of strings", node.Line)
	}
}

// address accepts integers in any base strconv understands, quoted or not.
type address uint64

func (a *address) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: address must be a scalar", node.Line)
	}
	u, err := strconv.ParseUint(node.Value, 0, 64)
	if err != nil {
		return fmt.Errorf("line %d: invalid address %q: %w", node.Line, node.Value, err)
	}
	*a = address(u)
	return nil
}
