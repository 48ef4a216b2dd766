package entities

// Attributes holds the six ability scores
type Attributes struct {
	Strength     int `json:"forca"`
	Dexterity    int `json:"destreza"`
	Constitution int `json:"constituicao"`
	Intelligence int `json:"inteligencia"`
	Wisdom       int `json:"sabedoria"`
	Charisma     int `json:"carisma"`
}

// Add returns the score-by-score sum of a and b
func (a Attributes) Add(b Attributes) Attributes {
	return Attributes{
		Strength:     a.Strength + b.Strength,
		Dexterity:    a.Dexterity + b.Dexterity,
		Constitution: a.Constitution + b.Constitution,
		Intelligence: a.Intelligence + b.Intelligence,
		Wisdom:       a.Wisdom + b.Wisdom,
		Charisma:     a.Charisma + b.Charisma,
	}
}

// Scores returns the six scores in declaration order
func (a Attributes) Scores() [6]int {
	return [6]int{a.Strength, a.Dexterity, a.Constitution, a.Intelligence, a.Wisdom, a.Charisma}
}

// AbilityModifier returns floor((score - 10) / 2)
func AbilityModifier(score int) int {
	d := score - 10
	if d < 0 {
		return (d - 1) / 2
	}
	return d / 2
}

// Equipment is a character's starting gear
type Equipment struct {
	Weapons []string `json:"armas"`
	Armor   string   `json:"armadura"`
	Items   []string `json:"itens"`
	Money   int      `json:"dinheiro"`
}

// Character is a generated character sheet.
// ID is nil until the character has been persisted.
type Character struct {
	ID         *int64     `json:"id"`
	Name       string     `json:"nome"`
	Race       Race       `json:"raca"`
	Class      Class      `json:"classe"`
	Level      int        `json:"nivel"`
	Attributes Attributes `json:"atributos"`
	HitPoints  int        `json:"pontos_vida"`
	Equipment  Equipment  `json:"equipamentos"`
	Skills     []string   `json:"pericias"`
}

// DefaultLevel is the level of every generated character
const DefaultLevel = 1

// DiceRoll is the outcome of rolling a dice notation
type DiceRoll struct {
	Notation string `json:"dice_notation"`
	Result   int    `json:"result"`
	Rolls    []int  `json:"rolls"`
	Modifier int    `json:"modifier"`
}
