// Package catalog holds the static trade registry the page layer and the
// form builder draw from: trade names, icons and the certification lists
// lenders care about per trade. The production site generates thousands of
// trade × location pages from tables like these; this package carries the
// working subset the engine needs.
package catalog

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/mattylll/tradesmanfinance-engine/step"
)

// Trade is one entry of the registry.
type Trade struct {
	ID             string        `yaml:"id" json:"id"`
	Name           string        `yaml:"name" json:"name"`
	Icon           string        `yaml:"icon" json:"icon"`
	Certifications []step.Option `yaml:"certifications" json:"certifications"`
}

// FormOverrides maps the trade's metadata onto the step builder's override
// shape.
func (t Trade) FormOverrides() *step.Overrides {
	return &step.Overrides{
		Icon:           t.Icon,
		Certifications: t.Certifications,
	}
}

var trades = map[string]Trade{}

func init() {
	for _, t := range builtinTrades {
		trades[t.ID] = t
	}
}

// TradeByID looks up a trade by its slug.
func TradeByID(id string) (Trade, bool) {
	t, ok := trades[id]
	return t, ok
}

// Trades returns all registered trades sorted by id.
func Trades() []Trade {
	out := make([]Trade, 0, len(trades))
	for _, t := range trades {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Register adds or replaces a trade entry.
func Register(t Trade) error {
	if t.ID == "" || t.Name == "" {
		return fmt.Errorf("catalog: trade needs an id and a name, got %+v", t)
	}
	trades[t.ID] = t
	return nil
}

type tradesFile struct {
	Trades []Trade `yaml:"trades"`
}

// RegisterFromYAML merges trade entries from a YAML file into the registry,
// replacing built-ins that share an id.
func RegisterFromYAML(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("catalog: read %s: %w", path, err)
	}
	var file tradesFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return fmt.Errorf("catalog: parse %s: %w", path, err)
	}
	for _, t := range file.Trades {
		if err := Register(t); err != nil {
			return err
		}
	}
	return nil
}

var builtinTrades = []Trade{
	{
		ID: "electrician", Name: "Electrician", Icon: "⚡",
		Certifications: []step.Option{
			{Value: "NICEIC", Label: "NICEIC approved"},
			{Value: "NAPIT", Label: "NAPIT registered"},
			{Value: "18th-edition", Label: "18th Edition qualified"},
			{Value: "none", Label: "None of these"},
		},
	},
	{
		ID: "plumber", Name: "Plumber", Icon: "🔧",
		Certifications: []step.Option{
			{Value: "gas-safe", Label: "Gas Safe registered"},
			{Value: "ciphe", Label: "CIPHE member"},
			{Value: "watersafe", Label: "WaterSafe approved"},
			{Value: "none", Label: "None of these"},
		},
	},
	{
		ID: "heating-engineer", Name: "Heating Engineer", Icon: "🔥",
		Certifications: []step.Option{
			{Value: "gas-safe", Label: "Gas Safe registered"},
			{Value: "oftec", Label: "OFTEC registered"},
			{Value: "mcs", Label: "MCS certified"},
			{Value: "none", Label: "None of these"},
		},
	},
	{
		ID: "builder", Name: "Builder", Icon: "🧱",
		Certifications: []step.Option{
			{Value: "cscs", Label: "CSCS card"},
			{Value: "fmb", Label: "FMB member"},
			{Value: "trustmark", Label: "TrustMark registered"},
			{Value: "none", Label: "None of these"},
		},
	},
	{
		ID: "carpenter", Name: "Carpenter", Icon: "🪚",
		Certifications: []step.Option{
			{Value: "cscs", Label: "CSCS card"},
			{Value: "city-and-guilds", Label: "City & Guilds"},
			{Value: "institute-of-carpenters", Label: "Institute of Carpenters"},
			{Value: "none", Label: "None of these"},
		},
	},
	{
		ID: "roofer", Name: "Roofer", Icon: "🏠",
		Certifications: []step.Option{
			{Value: "nfrc", Label: "NFRC member"},
			{Value: "confederation-of-roofing", Label: "CORC member"},
			{Value: "cscs", Label: "CSCS card"},
			{Value: "none", Label: "None of these"},
		},
	},
	{
		ID: "plasterer", Name: "Plasterer", Icon: "🏗️",
		Certifications: []step.Option{
			{Value: "cscs", Label: "CSCS card"},
			{Value: "city-and-guilds", Label: "City & Guilds"},
			{Value: "none", Label: "None of these"},
		},
	},
	{
		ID: "landscaper", Name: "Landscaper", Icon: "🌿",
		Certifications: []step.Option{
			{Value: "bali", Label: "BALI member"},
			{Value: "apl", Label: "APL member"},
			{Value: "none", Label: "None of these"},
		},
	},
}
