// Package validators holds the checkout field rules shared by the cart
// context endpoints and the checkout gate.
package validators

import (
	"errors"
	"regexp"
	"strconv"
	"strings"
)

var (
	nonDigits   = regexp.MustCompile(`\D`)
	digitInName = regexp.MustCompile(`\d`)
	nameChars   = regexp.MustCompile(`^[a-zA-ZÀ-ÿ\s'\-]+$`)
)

// CleanPhone strips everything but digits
func CleanPhone(value string) string {
	return nonDigits.ReplaceAllString(value, "")
}

// FormatPhone applies the (XX) XXXXX-XXXX mask, accepting partial input
func FormatPhone(value string) string {
	digits := CleanPhone(value)
	if len(digits) > 11 {
		digits = digits[:11]
	}

	switch {
	case len(digits) == 0:
		return ""
	case len(digits) <= 2:
		return "(" + digits
	case len(digits) <= 7:
		return "(" + digits[:2] + ") " + digits[2:]
	default:
		return "(" + digits[:2] + ") " + digits[2:7] + "-" + digits[7:]
	}
}

// ValidatePhone checks a Brazilian mobile number: DDD (11-99) + 9 + 8 digits
func ValidatePhone(value string) error {
	digits := CleanPhone(value)

	if len(digits) == 0 {
		return errors.New("informe seu telefone")
	}
	if len(digits) < 11 {
		return errors.New("telefone incompleto, digite DDD + 9 dígitos")
	}
	if len(digits) > 11 {
		return errors.New("telefone inválido, muitos dígitos")
	}

	ddd, _ := strconv.Atoi(digits[:2])
	if ddd < 11 || ddd > 99 {
		return errors.New("DDD inválido")
	}

	if digits[2] != '9' {
		return errors.New("celular deve começar com 9 após o DDD")
	}

	return nil
}

// ValidateName checks the customer name: at least 3 chars, letters only
func ValidateName(value string) error {
	trimmed := strings.TrimSpace(value)

	if len(trimmed) == 0 {
		return errors.New("informe seu nome")
	}
	if len([]rune(trimmed)) < 3 {
		return errors.New("nome muito curto")
	}
	if digitInName.MatchString(trimmed) {
		return errors.New("nome não pode conter números")
	}
	if !nameChars.MatchString(trimmed) {
		return errors.New("nome contém caracteres inválidos")
	}

	return nil
}
