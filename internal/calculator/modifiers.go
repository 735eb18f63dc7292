package calculator

// ModifierDef is one labor condition: a flag key, the factor applied to
// labor when the flag is set, and the label reported for it.
type ModifierDef struct {
	Key    string
	Factor float64
	Label  string
}

// Modifier keys shared by the interior and exterior tables.
const (
	ModHeavilyFurnished = "heavilyFurnished"
	ModEmptyHouse       = "emptyHouse"
	ModExtensivePrep    = "extensivePrep"
	ModAdditionalCoat   = "additionalCoat"
	ModOneCoat          = "oneCoat"
	ModThreeStory       = "threeStory"
	ModHardTerrain      = "hardTerrain"
)

var interiorModifierDefs = []ModifierDef{
	{Key: ModHeavilyFurnished, Factor: 1.25, Label: "Heavily Furnished (×1.25)"},
	{Key: ModEmptyHouse, Factor: 0.85, Label: "Empty House (×0.85)"},
	{Key: ModExtensivePrep, Factor: 1.15, Label: "Extensive Prep (×1.15)"},
	{Key: ModAdditionalCoat, Factor: 1.25, Label: "Additional Coat (×1.25)"},
	{Key: ModOneCoat, Factor: 0.85, Label: "Reduce to 1 Coat (×0.85)"},
}

var exteriorModifierDefs = []ModifierDef{
	{Key: ModThreeStory, Factor: 1.15, Label: "3 Story (×1.15)"},
	{Key: ModExtensivePrep, Factor: 1.2, Label: "Extensive Prep (×1.2)"},
	{Key: ModHardTerrain, Factor: 1.15, Label: "Hard Terrain (×1.15)"},
	{Key: ModAdditionalCoat, Factor: 1.25, Label: "Additional Coat (×1.25)"},
	{Key: ModOneCoat, Factor: 0.85, Label: "Reduce to 1 Coat (×0.85)"},
}

// InteriorModifierDefs returns the interior modifiers in application order.
func InteriorModifierDefs() []ModifierDef {
	return append([]ModifierDef(nil), interiorModifierDefs...)
}

// ExteriorModifierDefs returns the exterior modifiers in application order.
func ExteriorModifierDefs() []ModifierDef {
	return append([]ModifierDef(nil), exteriorModifierDefs...)
}

// ApplyModifiers multiplies baseLabor by the factor of every def whose flag
// is set, in def order, and returns the adjusted labor with the labels of the
// modifiers that fired. The label slice is never nil.
func ApplyModifiers(baseLabor float64, flags map[string]bool, defs []ModifierDef) (float64, []string) {
	adjusted := baseLabor
	applied := []string{}
	for _, def := range defs {
		if !flags[def.Key] {
			continue
		}
		adjusted *= def.Factor
		applied = append(applied, def.Label)
	}
	return adjusted, applied
}

// Flags returns the modifier flags keyed like InteriorModifierDefs.
func (m InteriorModifiers) Flags() map[string]bool {
	return map[string]bool{
		ModHeavilyFurnished: m.HeavilyFurnished,
		ModEmptyHouse:       m.EmptyHouse,
		ModExtensivePrep:    m.ExtensivePrep,
		ModAdditionalCoat:   m.AdditionalCoat,
		ModOneCoat:          m.OneCoat,
	}
}

// Flags returns the modifier flags keyed like ExteriorModifierDefs.
func (m ExteriorModifiers) Flags() map[string]bool {
	return map[string]bool{
		ModThreeStory:     m.ThreeStory,
		ModExtensivePrep:  m.ExtensivePrep,
		ModHardTerrain:    m.HardTerrain,
		ModAdditionalCoat: m.AdditionalCoat,
		ModOneCoat:        m.OneCoat,
	}
}
