package entities

// Race is one of the fixed playable races. Values are the wire names.
type Race string

// Race constants
const (
	RaceHuman    Race = "Humano"
	RaceElf      Race = "Elfo"
	RaceDwarf    Race = "Anão"
	RaceHalfling Race = "Halfling"
	RaceHalfElf  Race = "Meio-Elfo"
	RaceOrc      Race = "Orc"
)

// Races lists every race in declaration order
var Races = []Race{RaceHuman, RaceElf, RaceDwarf, RaceHalfling, RaceHalfElf, RaceOrc}

// Class is one of the fixed character classes. Values are the wire names.
type Class string

// Class constants
const (
	ClassWarrior Class = "Guerreiro"
	ClassWizard  Class = "Mago"
	ClassRogue   Class = "Ladrão"
	ClassCleric  Class = "Clérigo"
	ClassPaladin Class = "Paladino"
	ClassRanger  Class = "Ranger"
)

// Classes lists every class in declaration order
var Classes = []Class{ClassWarrior, ClassWizard, ClassRogue, ClassCleric, ClassPaladin, ClassRanger}

// IsValid reports whether r is one of Races
func (r Race) IsValid() bool {
	for _, known := range Races {
		if r == known {
			return true
		}
	}
	return false
}

// IsValid reports whether c is one of Classes
func (c Class) IsValid() bool {
	for _, known := range Classes {
		if c == known {
			return true
		}
	}
	return false
}

// RaceNames returns the wire names of all races
func RaceNames() []string {
	names := make([]string, len(Races))
	for i, r := range Races {
		names[i] = string(r)
	}
	return names
}

// ClassNames returns the wire names of all classes
func ClassNames() []string {
	names := make([]string, len(Classes))
	for i, c := range Classes {
		names[i] = string(c)
	}
	return names
}
