package cli

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

type Gender uint8

const (
	Male Gender = iota
	Female
	Porpoise
)

func (g Gender) String() string {
	switch g {
	case Male:
		return "Male"
	case Female:
		return "Female"
	case Porpoise:
		return "Porpoise"
	}
	return fmt.Sprintf("Gender(%d)", uint8(g))
}

func (g Gender) MarshalText() ([]byte, error) {
	return []byte(g.String()), nil
}

// UnmarshalText accepts the gender name in any case, e.g. "porpoise".
func (g *Gender) UnmarshalText(text []byte) error {
	switch strings.ToLower(strings.TrimSpace(string(text))) {
	case "male":
		*g = Male
	case "female":
		*g = Female
	case "porpoise":
		*g = Porpoise
	default:
		return fmt.Errorf("unknown gender %q", text)
	}
	return nil
}

// Person is a single record of the people command. A nil Gender is rendered as unknown.
type Person struct {
	Name   string  `json:"name" yaml:"name"`
	Gender *Gender `json:"gender,omitempty" yaml:"gender,omitempty"`
}

func (p Person) String() string {
	gender := "unknown"
	if p.Gender != nil {
		gender = p.Gender.String()
	}
	return fmt.Sprintf("name: %s, gender: %s", p.Name, gender)
}

// WithAngryName returns a copy of p with the name upper-cased.
func WithAngryName(p Person) Person {
	return Person{
		Name:   cases.Upper(language.Und).String(p.Name),
		Gender: p.Gender,
	}
}

func genderPtr(g Gender) *Gender {
	return &g
}

// DefaultPeople are used when no people file is given.
func DefaultPeople() []Person {
	return []Person{
		{Name: "Tom", Gender: genderPtr(Male)},
		{Name: "Joe the Porpoise", Gender: genderPtr(Porpoise)},
		{Name: "Ann Veal", Gender: genderPtr(Female)},
		{Name: "Mystery"},
	}
}
