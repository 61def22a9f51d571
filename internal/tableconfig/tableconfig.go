// Package tableconfig loads table rulesets from HCL files.
package tableconfig

import (
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/imaddar/poker-arena/services/tablecore/internal/domain"
)

// DefaultTableName labels the table returned when no file exists.
const DefaultTableName = "default"

var (
	ErrTableNotFound  = errors.New("table not found")
	ErrDuplicateTable = errors.New("duplicate table name")
)

type fileSchema struct {
	Tables []tableBlock `hcl:"table,block"`
}

type tableBlock struct {
	Name              string  `hcl:"name,label"`
	MaxSeats          *uint8  `hcl:"max_seats,optional"`
	MinPlayersToStart *uint8  `hcl:"min_players_to_start,optional"`
	StartingStack     *uint32 `hcl:"starting_stack,optional"`
	SmallBlind        *uint32 `hcl:"small_blind,optional"`
	BigBlind          *uint32 `hcl:"big_blind,optional"`
	ActionTimeoutMS   *uint64 `hcl:"action_timeout_ms,optional"`
}

// File is a set of validated table configs keyed by block label.
type File struct {
	tables map[string]domain.TableConfig
}

// Load reads path. A missing file yields a single default v0 table.
func Load(path string) (*File, error) {
	src, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return &File{tables: map[string]domain.TableConfig{
			DefaultTableName: domain.DefaultV0TableConfig(),
		}}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read table config: %w", err)
	}
	return Parse(src, path)
}

// Parse decodes HCL source. Attributes left out of a table block take their
// v0 default, then every table is validated.
func Parse(src []byte, filename string) (*File, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var schema fileSchema
	diags = gohcl.DecodeBody(file.Body, nil, &schema)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	tables := make(map[string]domain.TableConfig, len(schema.Tables))
	for _, block := range schema.Tables {
		if _, exists := tables[block.Name]; exists {
			return nil, fmt.Errorf("table %q: %w", block.Name, ErrDuplicateTable)
		}
		cfg := block.toConfig()
		if err := cfg.Validate(); err != nil {
			return nil, fmt.Errorf("table %q: %w", block.Name, err)
		}
		tables[block.Name] = cfg
	}

	return &File{tables: tables}, nil
}

func (b tableBlock) toConfig() domain.TableConfig {
	cfg := domain.DefaultV0TableConfig()
	if b.MaxSeats != nil {
		cfg.MaxSeats = *b.MaxSeats
	}
	if b.MinPlayersToStart != nil {
		cfg.MinPlayersToStart = *b.MinPlayersToStart
	}
	if b.StartingStack != nil {
		cfg.StartingStack = *b.StartingStack
	}
	if b.SmallBlind != nil {
		cfg.SmallBlind = *b.SmallBlind
	}
	if b.BigBlind != nil {
		cfg.BigBlind = *b.BigBlind
	}
	if b.ActionTimeoutMS != nil {
		cfg.ActionTimeoutMS = *b.ActionTimeoutMS
	}
	return cfg
}

func (f *File) Table(name string) (domain.TableConfig, error) {
	cfg, ok := f.tables[name]
	if !ok {
		return domain.TableConfig{}, fmt.Errorf("table %q: %w", name, ErrTableNotFound)
	}
	return cfg, nil
}

// Names returns the table labels in sorted order.
func (f *File) Names() []string {
	names := make([]string, 0, len(f.tables))
	for name := range f.tables {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
