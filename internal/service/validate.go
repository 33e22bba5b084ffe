package service

import (
	"fmt"
	"strings"
	"unicode"
)

const (
	minPasswordBytes = 8
	// bcrypt учитывает только первые 72 байта.
	maxPasswordBytes = 72
)

// normalizeEmail обрезает пробелы, проверяет формат и приводит к нижнему регистру.
func (s *Service) normalizeEmail(raw string) (string, error) {
	const op = "service.validate.normalizeEmail"

	email := strings.ToLower(strings.TrimSpace(raw))
	if err := s.validate.Var(email, "required,email,max=254"); err != nil {
		return "", fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	return email, nil
}

// normalizeUsername приводит username к нижнему регистру. Символ '@' запрещён,
// чтобы логин по username и по email не пересекались.
func (s *Service) normalizeUsername(raw string) (string, error) {
	const op = "service.validate.normalizeUsername"

	username := strings.ToLower(strings.TrimSpace(raw))
	if err := s.validate.Var(username, "required,min=3,max=32,excludesall=@"); err != nil {
		return "", fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	if strings.ContainsFunc(username, unicode.IsSpace) {
		return "", fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	return username, nil
}

// validatePassword — длина пароля в байтах в диапазоне [8, 72].
func validatePassword(pw string) error {
	const op = "service.validate.validatePassword"

	if len(pw) < minPasswordBytes || len(pw) > maxPasswordBytes {
		return fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	return nil
}
