package character

import "github.com/KirkDiggler/rpg-chargen/internal/entities"

// racialBonuses are applied once, after the raw scores are rolled
var racialBonuses = map[entities.Race]entities.Attributes{
	entities.RaceHuman:    {Strength: 1, Dexterity: 1, Constitution: 1, Intelligence: 1, Wisdom: 1, Charisma: 1},
	entities.RaceElf:      {Dexterity: 2, Intelligence: 1},
	entities.RaceDwarf:    {Constitution: 2, Wisdom: 1},
	entities.RaceHalfling: {Dexterity: 2, Charisma: 1},
	entities.RaceHalfElf:  {Charisma: 2, Strength: 1},
	entities.RaceOrc:      {Strength: 2, Constitution: 1},
}

var hitDice = map[entities.Class]int{
	entities.ClassWarrior: 10,
	entities.ClassPaladin: 10,
	entities.ClassRanger:  10,
	entities.ClassCleric:  8,
	entities.ClassRogue:   8,
	entities.ClassWizard:  6,
}

// skillPools hold exactly four candidate skills per class
var skillPools = map[entities.Class][]string{
	entities.ClassWarrior: {"Atletismo", "Intimidação", "Sobrevivência", "Percepção"},
	entities.ClassWizard:  {"Arcana", "História", "Investigação", "Medicina"},
	entities.ClassRogue:   {"Acrobacia", "Furtividade", "Prestidigitação", "Percepção"},
	entities.ClassCleric:  {"História", "Medicina", "Persuasão", "Religião"},
	entities.ClassPaladin: {"Atletismo", "Intimidação", "Medicina", "Religião"},
	entities.ClassRanger:  {"Sobrevivência", "Percepção", "Rastreamento", "Trato com Animais"},
}

type startingKit struct {
	weapons []string
	armor   string
	items   []string
}

var startingKits = map[entities.Class]startingKit{
	entities.ClassWarrior: {weapons: []string{"Espada Longa", "Escudo"}, armor: "Cota de Malha", items: []string{"Kit de Aventureiro"}},
	entities.ClassWizard:  {weapons: []string{"Cajado"}, armor: "Robes", items: []string{"Grimório", "Kit de Componentes"}},
	entities.ClassRogue:   {weapons: []string{"Punhal", "Arco Curto"}, armor: "Armadura de Couro", items: []string{"Kit de Ladrão"}},
	entities.ClassCleric:  {weapons: []string{"Martelo de Guerra", "Escudo"}, armor: "Cota de Malha", items: []string{"Símbolo Sagrado"}},
	entities.ClassPaladin: {weapons: []string{"Espada Longa", "Escudo"}, armor: "Cota de Placas", items: []string{"Símbolo Sagrado"}},
	entities.ClassRanger:  {weapons: []string{"Arco Longo", "Espada Curta"}, armor: "Armadura de Couro", items: []string{"Kit de Sobrevivência"}},
}

var names = []string{
	"Aeren", "Berris", "Cithreth", "Drannor", "Enna",
	"Galinndan", "Halimath", "Immeral", "Ivellios", "Korfel",
}

const (
	skillsPerCharacter = 2
	minStartingMoney   = 50
	maxStartingMoney   = 200
)

// RacialBonus returns the bonus attributes for a race
func RacialBonus(race entities.Race) entities.Attributes {
	return racialBonuses[race]
}

// HitDie returns the hit die of a class, or 0 for an unknown class
func HitDie(class entities.Class) int {
	return hitDice[class]
}

// SkillPool returns a copy of the candidate skills of a class
func SkillPool(class entities.Class) []string {
	return append([]string(nil), skillPools[class]...)
}

// StartingEquipment returns the fixed kit of a class with the given money
func StartingEquipment(class entities.Class, money int) entities.Equipment {
	kit := startingKits[class]
	return entities.Equipment{
		Weapons: append([]string(nil), kit.weapons...),
		Armor:   kit.armor,
		Items:   append([]string(nil), kit.items...),
		Money:   money,
	}
}

// Names returns a copy of the preset character names
func Names() []string {
	return append([]string(nil), names...)
}
