package validator

import (
	"errors"
	"net/mail"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"doc-vault-api/internal/domain/file"
	"doc-vault-api/internal/interface/api/rest/dto/auth"
)

const (
	minPasswordLen = 8
	maxPasswordLen = 72 // bcrypt safe
	maxFileNameLen = 255
)

func IsUUID(s string) (bool, uuid.UUID) {
	id, err := uuid.Parse(s)
	return err == nil, id
}

func ValidateLogin(r auth.LoginRequest) map[string]string {
	errs := make(map[string]string)

	// Normalize
	email := strings.ToLower(strings.TrimSpace(r.Email))
	password := r.Password

	// email (required + format)
	if email == "" {
		errs["email"] = "email is required"
	} else if _, err := mail.ParseAddress(email); err != nil {
		errs["email"] = "invalid email format"
	}

	// password (required + length)
	if strings.TrimSpace(password) == "" {
		errs["password"] = "password is required"
	} else if l := utf8.RuneCountInString(password); l < minPasswordLen || l > maxPasswordLen {
		errs["password"] = "password length must be 8-72 characters"
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

func ValidateRegister(r auth.RegisterRequest) map[string]string {
	errs := ValidateLogin(auth.LoginRequest{Email: r.Email, Password: r.Password})
	if errs == nil {
		errs = make(map[string]string)
	}

	name := strings.TrimSpace(r.Name)
	if name == "" {
		errs["name"] = "name is required"
	} else if l := utf8.RuneCountInString(name); l < 2 || l > 64 {
		errs["name"] = "name length must be 2-64 characters"
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

func ValidateFileName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errors.New("name is required")
	}
	if utf8.RuneCountInString(name) > maxFileNameLen {
		return errors.New("name is too long")
	}
	return nil
}

// ValidateSortBy maps the query param to a sort order; empty keeps the
// insertion order.
func ValidateSortBy(s string) (file.SortBy, error) {
	switch file.SortBy(s) {
	case "", file.SortByName, file.SortByDate, file.SortByType:
		return file.SortBy(s), nil
	default:
		return "", errors.New("sort_by must be one of: name, date, type")
	}
}

func ValidateAccess(s string) (file.Access, error) {
	switch file.Access(s) {
	case "":
		return file.AccessPrivate, nil
	case file.AccessPublic, file.AccessPrivate:
		return file.Access(s), nil
	default:
		return "", errors.New("access must be public or private")
	}
}

// ValidateExpiresAt parses an optional RFC3339 expiry that must lie in
// the future.
func ValidateExpiresAt(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	ts, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return nil, errors.New("expires_at must be RFC3339")
	}
	if !ts.After(time.Now()) {
		return nil, errors.New("expires_at must be in the future")
	}
	return &ts, nil
}

// ParseTags splits a comma-separated tag list, dropping empties.
func ParseTags(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			tags = append(tags, p)
		}
	}
	if len(tags) == 0 {
		return nil
	}
	return tags
}
