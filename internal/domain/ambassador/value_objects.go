package ambassador

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"regexp"
	"strings"
	"unicode"
)

var (
	ErrInvalidEmail           = errors.New("invalid email format")
	ErrEmptyName              = errors.New("name is required")
	ErrInvalidCommissionRate  = errors.New("commission rate must be between 0 and 1")
	ErrInvalidDiscountPercent = errors.New("discount percent must be between 0 and 100")
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

type Email struct {
	value string
}

func NewEmail(s string) (Email, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if !emailRegex.MatchString(s) {
		return Email{}, ErrInvalidEmail
	}
	return Email{value: s}, nil
}

func (e Email) Value() string {
	return e.value
}

type Name struct {
	value string
}

func NewName(s string) (Name, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Name{}, ErrEmptyName
	}
	return Name{value: s}, nil
}

func (n Name) Value() string {
	return n.value
}

// CommissionRate is the fraction of an order amount credited to the
// ambassador, stored as a decimal in [0,1].
type CommissionRate struct {
	value float64
}

func NewCommissionRate(v float64) (CommissionRate, error) {
	if v < 0 || v > 1 {
		return CommissionRate{}, ErrInvalidCommissionRate
	}
	return CommissionRate{value: v}, nil
}

func (r CommissionRate) Value() float64 {
	return r.value
}

// DiscountPercent is the customer-facing discount attached to the
// ambassador's codes, in [0,100].
type DiscountPercent struct {
	value float64
}

func NewDiscountPercent(v float64) (DiscountPercent, error) {
	if v < 0 || v > 100 {
		return DiscountPercent{}, ErrInvalidDiscountPercent
	}
	return DiscountPercent{value: v}, nil
}

func (d DiscountPercent) Value() float64 {
	return d.value
}

// CodeGenerator derives referral codes at approval time.
type CodeGenerator interface {
	Generate(name Name) string
}

type randomCodeGenerator struct{}

func NewRandomCodeGenerator() CodeGenerator {
	return &randomCodeGenerator{}
}

// Generate builds a code from the first three letters of the name, upper-cased,
// followed by a random 4-digit suffix ("Diana" -> "DIA4821"). Names with fewer
// than three letters are padded with 'X'.
func (g *randomCodeGenerator) Generate(name Name) string {
	return codePrefix(name) + fmt.Sprintf("%04d", rand.IntN(10000))
}

func codePrefix(name Name) string {
	var letters []rune
	for _, r := range name.Value() {
		if unicode.IsLetter(r) {
			letters = append(letters, unicode.ToUpper(r))
			if len(letters) == 3 {
				break
			}
		}
	}
	for len(letters) < 3 {
		letters = append(letters, 'X')
	}
	return string(letters)
}

// FixedCodeGenerator returns a predetermined code; for tests.
type FixedCodeGenerator struct {
	Code string
}

func (g *FixedCodeGenerator) Generate(_ Name) string {
	return g.Code
}
