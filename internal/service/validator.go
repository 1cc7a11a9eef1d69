package service

import (
	"fmt"
	"net/mail"
	"regexp"

	"github.com/forexel/PrivetManagerApp/internal/entity"
)

// Телефон хранится без кода страны: ровно десять цифр.
var phoneRe = regexp.MustCompile(`^\d{10}$`)

func validatePhone(phone string) error {
	if !phoneRe.MatchString(phone) {
		return fmt.Errorf("%w: phone must be 10 digits", entity.ErrInvalidArgument)
	}

	return nil
}

func validateEmail(email string) error {
	_, err := mail.ParseAddress(email)
	if err != nil {
		return fmt.Errorf("%w: invalid email", entity.ErrInvalidArgument)
	}

	return nil
}
