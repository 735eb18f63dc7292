// Package settings owns the mutable company and pricing configuration. The
// Store serializes changes and hands out deep-copied pricing snapshots so a
// calculation never observes a half-applied edit.
package settings

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/iwvelando/paint-bid/internal/pricing"
)

var (
	// ErrNotFound is returned when a line item or section id is unknown.
	ErrNotFound = errors.New("not found")
	// ErrDefaultLineItem is returned when deleting a built-in line item.
	ErrDefaultLineItem = errors.New("default line items cannot be deleted")
	// ErrDefaultSection is returned when deleting a built-in section.
	ErrDefaultSection = errors.New("default sections cannot be deleted")
	// ErrInvalid is returned when a change is rejected before it is applied.
	ErrInvalid = errors.New("invalid settings change")
)

// customIDPrefix marks user-created line items and sections.
const customIDPrefix = "custom-"

// document is the on-disk layout of the settings file.
type document struct {
	Company CompanySettings   `yaml:"company"`
	Pricing *pricing.Settings `yaml:"pricing"`
}

// Store holds company and pricing settings, optionally persisted to a YAML
// file after every change.
type Store struct {
	mu      sync.RWMutex
	path    string
	company CompanySettings
	pricing *pricing.Settings
	logger  *zap.Logger
}

// LineItemPatch carries the line item fields to change. Nil fields are left
// untouched.
type LineItemPatch struct {
	Name     *string       `json:"name,omitempty"`
	Rate     *float64      `json:"rate,omitempty"`
	Unit     *pricing.Unit `json:"unit,omitempty"`
	Category *string       `json:"category,omitempty"`
	Order    *int          `json:"order,omitempty"`
}

// SectionPatch carries the section fields to change.
type SectionPatch struct {
	Name  *string `json:"name,omitempty"`
	Order *int    `json:"order,omitempty"`
}

// NewStore returns a store seeded with defaults. When path is not empty
// settings are read from it if it exists and written back on every change.
func NewStore(path string, logger *zap.Logger) (*Store, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Store{
		path:    path,
		company: DefaultCompany(),
		pricing: pricing.DefaultSettings(),
		logger:  logger,
	}
	if path == "" {
		return s, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		logger.Info("settings file not found, using defaults",
			zap.String("op", "settings.NewStore"),
			zap.String("path", path),
		)
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading settings file %s: %w", path, err)
	}

	doc := document{Company: DefaultCompany(), Pricing: pricing.DefaultSettings()}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing settings file %s: %w", path, err)
	}
	if doc.Pricing == nil {
		doc.Pricing = pricing.DefaultSettings()
	}
	for _, warning := range doc.Pricing.Validate() {
		logger.Warn("pricing settings warning",
			zap.String("op", "settings.NewStore"),
			zap.String("warning", warning),
		)
	}
	s.company = doc.Company
	s.pricing = doc.Pricing
	return s, nil
}

// Snapshot returns a deep copy of the current pricing.
func (s *Store) Snapshot() *pricing.Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.pricing.Clone()
}

// Company returns the current company settings.
func (s *Store) Company() CompanySettings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.company
}

// UpdateCompany replaces the company settings.
func (s *Store) UpdateCompany(company CompanySettings) error {
	return s.mutate(func(c *CompanySettings, _ *pricing.Settings) error {
		*c = company
		return nil
	})
}

// UpdatePricing applies fn to a copy of the pricing and commits it once the
// copy has been persisted.
func (s *Store) UpdatePricing(fn func(*pricing.Settings)) error {
	return s.mutate(func(_ *CompanySettings, p *pricing.Settings) error {
		fn(p)
		return nil
	})
}

// ReplacePricing swaps in a complete pricing configuration.
func (s *Store) ReplacePricing(p *pricing.Settings) error {
	if p == nil {
		return fmt.Errorf("pricing settings are required: %w", ErrInvalid)
	}
	return s.UpdatePricing(func(current *pricing.Settings) {
		*current = *p.Clone()
	})
}

// AddLineItem adds a custom line item to an existing section. The id and
// order are assigned by the store.
func (s *Store) AddLineItem(item pricing.LineItem) (pricing.LineItem, error) {
	var added pricing.LineItem
	err := s.mutate(func(_ *CompanySettings, p *pricing.Settings) error {
		if _, ok := p.Section(item.Category); !ok {
			return fmt.Errorf("section %q: %w", item.Category, ErrNotFound)
		}
		maxOrder := 0
		for _, existing := range p.LineItems {
			if existing.Order > maxOrder {
				maxOrder = existing.Order
			}
		}
		item.ID = customIDPrefix + uuid.New().String()
		item.Order = maxOrder + 1
		item.IsDefault = false
		p.LineItems = append(p.LineItems, item)
		added = item
		return nil
	})
	return added, err
}

// UpdateLineItem applies patch to the line item with the given id.
func (s *Store) UpdateLineItem(id string, patch LineItemPatch) (pricing.LineItem, error) {
	var updated pricing.LineItem
	err := s.mutate(func(_ *CompanySettings, p *pricing.Settings) error {
		for i := range p.LineItems {
			if p.LineItems[i].ID != id {
				continue
			}
			item := &p.LineItems[i]
			if patch.Name != nil {
				item.Name = *patch.Name
			}
			if patch.Rate != nil {
				item.Rate = *patch.Rate
			}
			if patch.Unit != nil {
				item.Unit = *patch.Unit
			}
			if patch.Category != nil {
				if _, ok := p.Section(*patch.Category); !ok {
					return fmt.Errorf("section %q: %w", *patch.Category, ErrNotFound)
				}
				item.Category = *patch.Category
			}
			if patch.Order != nil {
				item.Order = *patch.Order
			}
			updated = *item
			return nil
		}
		return fmt.Errorf("line item %q: %w", id, ErrNotFound)
	})
	return updated, err
}

// DeleteLineItem removes a custom line item.
func (s *Store) DeleteLineItem(id string) error {
	return s.mutate(func(_ *CompanySettings, p *pricing.Settings) error {
		item, ok := p.LineItem(id)
		if !ok {
			return fmt.Errorf("line item %q: %w", id, ErrNotFound)
		}
		if item.IsDefault {
			return fmt.Errorf("line item %q: %w", id, ErrDefaultLineItem)
		}
		p.LineItems = removeLineItems(p.LineItems, func(li pricing.LineItem) bool { return li.ID == id })
		return nil
	})
}

// AddSection adds a custom section to a detailed calculator.
func (s *Store) AddSection(section pricing.Section) (pricing.Section, error) {
	var added pricing.Section
	err := s.mutate(func(_ *CompanySettings, p *pricing.Settings) error {
		if !section.CalculatorType.IsDetailed() {
			return fmt.Errorf("sections belong to a detailed calculator, got %q: %w", section.CalculatorType, ErrInvalid)
		}
		maxOrder := 0
		for _, existing := range p.Sections {
			if existing.Order > maxOrder {
				maxOrder = existing.Order
			}
		}
		section.ID = customIDPrefix + uuid.New().String()
		section.Order = maxOrder + 1
		section.IsDefault = false
		p.Sections = append(p.Sections, section)
		added = section
		return nil
	})
	return added, err
}

// UpdateSection applies patch to the section with the given id.
func (s *Store) UpdateSection(id string, patch SectionPatch) (pricing.Section, error) {
	var updated pricing.Section
	err := s.mutate(func(_ *CompanySettings, p *pricing.Settings) error {
		for i := range p.Sections {
			if p.Sections[i].ID != id {
				continue
			}
			if patch.Name != nil {
				p.Sections[i].Name = *patch.Name
			}
			if patch.Order != nil {
				p.Sections[i].Order = *patch.Order
			}
			updated = p.Sections[i]
			return nil
		}
		return fmt.Errorf("section %q: %w", id, ErrNotFound)
	})
	return updated, err
}

// DeleteSection removes a custom section together with its line items.
func (s *Store) DeleteSection(id string) error {
	return s.mutate(func(_ *CompanySettings, p *pricing.Settings) error {
		section, ok := p.Section(id)
		if !ok {
			return fmt.Errorf("section %q: %w", id, ErrNotFound)
		}
		if section.IsDefault {
			return fmt.Errorf("section %q: %w", id, ErrDefaultSection)
		}
		kept := p.Sections[:0]
		for _, sec := range p.Sections {
			if sec.ID != id {
				kept = append(kept, sec)
			}
		}
		p.Sections = kept
		p.LineItems = removeLineItems(p.LineItems, func(li pricing.LineItem) bool { return li.Category == id })
		return nil
	})
}

// Reset restores factory company and pricing settings.
func (s *Store) Reset() error {
	return s.mutate(func(c *CompanySettings, p *pricing.Settings) error {
		*c = DefaultCompany()
		*p = *pricing.DefaultSettings()
		return nil
	})
}

// mutate runs fn against copies of the settings, persists the result and
// commits it. Nothing changes if fn or the write fails.
func (s *Store) mutate(fn func(*CompanySettings, *pricing.Settings) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	nextCompany := s.company
	nextPricing := s.pricing.Clone()
	if err := fn(&nextCompany, nextPricing); err != nil {
		return err
	}
	if err := s.save(nextCompany, nextPricing); err != nil {
		return err
	}
	s.company = nextCompany
	s.pricing = nextPricing
	return nil
}

func (s *Store) save(company CompanySettings, p *pricing.Settings) error {
	if s.path == "" {
		return nil
	}
	data, err := yaml.Marshal(document{Company: company, Pricing: p})
	if err != nil {
		return fmt.Errorf("encoding settings: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("creating settings directory: %w", err)
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("writing settings file: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replacing settings file: %w", err)
	}
	s.logger.Debug("settings saved",
		zap.String("op", "settings.save"),
		zap.String("path", s.path),
	)
	return nil
}

func removeLineItems(items []pricing.LineItem, drop func(pricing.LineItem) bool) []pricing.LineItem {
	kept := make([]pricing.LineItem, 0, len(items))
	for _, item := range items {
		if !drop(item) {
			kept = append(kept, item)
		}
	}
	return kept
}
