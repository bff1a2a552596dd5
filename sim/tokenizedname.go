package sim

import (
	"errors"
	"strconv"
	"strings"
)

// A Name is a hierarchical name that includes a series of tokens separated
// by dots, for example "System.CPU[0].ICache".
type Name struct {
	Tokens []NameToken
}

// NameToken is a token of a name.
type NameToken struct {
	ElemName string
	Index    []int
}

// ParseName parses a name string and returns a Name object.
func ParseName(sname string) (Name, error) {
	tokens := strings.Split(sname, ".")
	name := Name{Tokens: make([]NameToken, len(tokens))}

	for i, token := range tokens {
		t, err := parseNameToken(token)
		if err != nil {
			return Name{}, err
		}

		name.Tokens[i] = t
	}

	return name, nil
}

func parseNameToken(token string) (NameToken, error) {
	if err := bracketMustMatch(token); err != nil {
		return NameToken{}, err
	}

	ts := strings.Split(token, "[")
	elemName := ts[0]

	indices := make([]int, len(ts)-1)
	for i := 1; i < len(ts); i++ {
		if !strings.HasSuffix(ts[i], "]") {
			return NameToken{}, errors.New("name index must be closed")
		}

		index, err := strconv.Atoi(ts[i][0 : len(ts[i])-1])
		if err != nil {
			return NameToken{}, errors.New("name index must be integer")
		}

		indices[i-1] = index
	}

	return NameToken{ElemName: elemName, Index: indices}, nil
}

func bracketMustMatch(name string) error {
	openBracketCount := 0

	for _, c := range name {
		switch c {
		case '[':
			openBracketCount++
			if openBracketCount > 1 {
				return errors.New("name brackets must not nest")
			}
		case ']':
			openBracketCount--
			if openBracketCount < 0 {
				return errors.New("name bracket must match")
			}
		}
	}

	if openBracketCount != 0 {
		return errors.New("name bracket must match")
	}

	return nil
}

// ValidateName checks a name against the naming convention.
//  1. It must be organized in a hierarchical structure. For example, a name
//     "A.B.C" is valid, but "A.B.C." is not.
//  2. Individual names must not be empty. For example, "A..B" is not valid.
//  3. Individual names must start with a capital letter and must not contain
//     underscores, dashes or quotes.
//  4. Elements in a series must be named using square-bracket notation.
func ValidateName(name string) error {
	n, err := ParseName(name)
	if err != nil {
		return errors.New("name " + name + " is not valid: " + err.Error())
	}

	for _, token := range n.Tokens {
		if err := validateToken(token); err != nil {
			return errors.New("name " + name + " is not valid: " + err.Error())
		}
	}

	return nil
}

// NameMustBeValid panics if the name does not follow the naming convention.
func NameMustBeValid(name string) {
	if err := ValidateName(name); err != nil {
		panic(err.Error())
	}
}

func validateToken(token NameToken) error {
	if token.ElemName == "" {
		return errors.New("name element must not be empty")
	}

	invalidChars := []string{
		"_", "\"", "'", "-", " ",
	}

	for _, c := range invalidChars {
		if strings.Contains(token.ElemName, c) {
			return errors.New("name element must not contain " + c)
		}
	}

	if token.ElemName[0] < 'A' || token.ElemName[0] > 'Z' {
		return errors.New("name element must start with a capital letter")
	}

	return nil
}

// BuildName builds a name from a parent name and an element name.
func BuildName(parentName, elementName string) string {
	if parentName == "" {
		return elementName
	}

	return parentName + "." + elementName
}

// BuildNameWithIndex builds a name from a parent name, an element name and an
// index.
func BuildNameWithIndex(parentName, elementName string, index int) string {
	return BuildName(parentName, elementName+"["+strconv.Itoa(index)+"]")
}
