package client

import (
	"fmt"
	"io"
	"strings"

	"github.com/KirkDiggler/rpg-chargen/internal/entities"
)

func printCharacter(w io.Writer, c *entities.Character) {
	id := "not saved"
	if c.ID != nil {
		id = fmt.Sprintf("%d", *c.ID)
	}

	fmt.Fprintf(w, "\n🧙 %s (ID: %s)\n", c.Name, id)
	fmt.Fprintf(w, "===================\n")
	fmt.Fprintf(w, "Race: %s\n", c.Race)
	fmt.Fprintf(w, "Class: %s\n", c.Class)
	fmt.Fprintf(w, "Level: %d\n", c.Level)
	fmt.Fprintf(w, "Hit Points: %d\n", c.HitPoints)

	a := c.Attributes
	fmt.Fprintf(w, "\nAttributes:\n")
	fmt.Fprintf(w, "  STR %2d (%+d)  DEX %2d (%+d)  CON %2d (%+d)\n",
		a.Strength, entities.AbilityModifier(a.Strength),
		a.Dexterity, entities.AbilityModifier(a.Dexterity),
		a.Constitution, entities.AbilityModifier(a.Constitution))
	fmt.Fprintf(w, "  INT %2d (%+d)  WIS %2d (%+d)  CHA %2d (%+d)\n",
		a.Intelligence, entities.AbilityModifier(a.Intelligence),
		a.Wisdom, entities.AbilityModifier(a.Wisdom),
		a.Charisma, entities.AbilityModifier(a.Charisma))

	fmt.Fprintf(w, "\nSkills: %s\n", strings.Join(c.Skills, ", "))

	e := c.Equipment
	fmt.Fprintf(w, "\nEquipment:\n")
	fmt.Fprintf(w, "  Weapons: %s\n", strings.Join(e.Weapons, ", "))
	fmt.Fprintf(w, "  Armor: %s\n", e.Armor)
	fmt.Fprintf(w, "  Items: %s\n", strings.Join(e.Items, ", "))
	fmt.Fprintf(w, "  Money: %d\n", e.Money)
}

func printCharacterLine(w io.Writer, c *entities.Character) {
	id := "-"
	if c.ID != nil {
		id = fmt.Sprintf("%d", *c.ID)
	}
	fmt.Fprintf(w, "  %4s  %-12s %-10s %-10s HP %d\n", id, c.Name, c.Race, c.Class, c.HitPoints)
}
