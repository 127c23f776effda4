// Package refdata loads static reference data: badge definitions, the government
// scheme catalog and the quest seed used by the in-memory store.
//
// Every file is embedded into the binary. When a directory is given, a file of the
// same name found there replaces the embedded one.
package refdata

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/limbo/agriquest/pkg/entity"
)

const (
	BadgesFile  = "badges.yaml"
	SchemesFile = "schemes.yaml"
	QuestsFile  = "quests.yaml"
)

// QuestNamespace derives stable quest ids from seed keys.
var QuestNamespace = uuid.MustParse("6f1c2a52-8a0e-4c1e-9d55-0b7f3f6a2e10")

//go:embed data/*.yaml
var embedded embed.FS

var validate = validator.New()

type Set struct {
	Badges  []entity.BadgeDefinition
	Schemes []entity.Scheme
	Quests  []entity.Quest
}

type questSeed struct {
	Key         string           `yaml:"key" validate:"required"`
	Title       string           `yaml:"title" validate:"required"`
	Description string           `yaml:"description"`
	Type        entity.QuestType `yaml:"quest_type" validate:"required,oneof=daily weekly special"`
	Category    string           `yaml:"category"`
	Points      int              `yaml:"points" validate:"required,min=1"`
	OrderIndex  int              `yaml:"order_index"`
	Inactive    bool             `yaml:"inactive"`
}

// Load reads all reference files. dir may be empty.
func Load(dir string) (*Set, error) {
	var set Set
	data, err := readFile(dir, BadgesFile)
	if err != nil {
		return nil, err
	}
	if set.Badges, err = ParseBadgesYAML(data); err != nil {
		return nil, fmt.Errorf("refdata: %s: %w", BadgesFile, err)
	}
	if data, err = readFile(dir, SchemesFile); err != nil {
		return nil, err
	}
	if set.Schemes, err = ParseSchemesYAML(data); err != nil {
		return nil, fmt.Errorf("refdata: %s: %w", SchemesFile, err)
	}
	if data, err = readFile(dir, QuestsFile); err != nil {
		return nil, err
	}
	if set.Quests, err = ParseQuestsYAML(data); err != nil {
		return nil, fmt.Errorf("refdata: %s: %w", QuestsFile, err)
	}
	return &set, nil
}

func readFile(dir, name string) ([]byte, error) {
	if dir != "" {
		path := filepath.Join(dir, name)
		data, err := os.ReadFile(path)
		if err == nil {
			return data, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("refdata: read %s: %w", path, err)
		}
	}
	data, err := embedded.ReadFile("data/" + name)
	if err != nil {
		return nil, fmt.Errorf("refdata: read embedded %s: %w", name, err)
	}
	return data, nil
}

func decode(data []byte, out any) error {
	if len(bytes.TrimSpace(data)) == 0 {
		return errors.New("payload is empty")
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	return nil
}

// ParseBadgesYAML decodes badge definitions. Kind defaults to completions; names must be unique.
func ParseBadgesYAML(data []byte) ([]entity.BadgeDefinition, error) {
	var doc struct {
		Badges []entity.BadgeDefinition `yaml:"badges"`
	}
	if err := decode(data, &doc); err != nil {
		return nil, err
	}
	seen := make(map[string]struct{}, len(doc.Badges))
	for i := range doc.Badges {
		b := &doc.Badges[i]
		b.Name = strings.TrimSpace(b.Name)
		b.Category = strings.TrimSpace(b.Category)
		if b.Kind == "" {
			b.Kind = entity.BadgeCompletions
		}
		if err := validate.Struct(*b); err != nil {
			return nil, fmt.Errorf("badge #%d: %w", i, err)
		}
		if _, ok := seen[b.Name]; ok {
			return nil, fmt.Errorf("badge %q defined twice", b.Name)
		}
		seen[b.Name] = struct{}{}
	}
	return doc.Badges, nil
}

func ParseSchemesYAML(data []byte) ([]entity.Scheme, error) {
	var doc struct {
		Schemes []entity.Scheme `yaml:"schemes"`
	}
	if err := decode(data, &doc); err != nil {
		return nil, err
	}
	seen := make(map[string]struct{}, len(doc.Schemes))
	for i, s := range doc.Schemes {
		if err := validate.Struct(s); err != nil {
			return nil, fmt.Errorf("scheme #%d: %w", i, err)
		}
		if _, ok := seen[s.Code]; ok {
			return nil, fmt.Errorf("scheme %q defined twice", s.Code)
		}
		seen[s.Code] = struct{}{}
	}
	return doc.Schemes, nil
}

func ParseQuestsYAML(data []byte) ([]entity.Quest, error) {
	var doc struct {
		Quests []questSeed `yaml:"quests"`
	}
	if err := decode(data, &doc); err != nil {
		return nil, err
	}
	quests := make([]entity.Quest, 0, len(doc.Quests))
	seen := make(map[string]struct{}, len(doc.Quests))
	for i, q := range doc.Quests {
		if err := validate.Struct(q); err != nil {
			return nil, fmt.Errorf("quest #%d: %w", i, err)
		}
		if _, ok := seen[q.Key]; ok {
			return nil, fmt.Errorf("quest %q defined twice", q.Key)
		}
		seen[q.Key] = struct{}{}
		category := q.Category
		if category == "" {
			category = "general"
		}
		quests = append(quests, entity.Quest{
			ID:          QuestID(q.Key),
			Title:       q.Title,
			Description: q.Description,
			Type:        q.Type,
			Category:    category,
			Points:      q.Points,
			IsActive:    !q.Inactive,
			OrderIndex:  q.OrderIndex,
		})
	}
	return quests, nil
}

func QuestID(key string) uuid.UUID {
	return uuid.NewSHA1(QuestNamespace, []byte(key))
}
