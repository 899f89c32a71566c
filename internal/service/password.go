// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-user-profile/internal/config"
	"golang.org/x/crypto/bcrypt"
)

// NewPasswordEncoder returns the encoder registered under name.
func NewPasswordEncoder(name string) (PasswordEncoder, error) {
	switch name {
	case config.PasswordEncodingPlain, "":
		return plainPasswordEncoder{}, nil
	case config.PasswordEncodingBcrypt:
		return bcryptPasswordEncoder{cost: bcrypt.DefaultCost}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownPasswordEncoding, name)
	}
}

// plainPasswordEncoder stores the password exactly as submitted.
type plainPasswordEncoder struct{}

func (plainPasswordEncoder) Encode(password string) (string, error) {
	return password, nil
}

// bcryptPasswordEncoder salts every hash, so re-sending the same password
// always changes the stored value. Passwords over 72 bytes are rejected.
type bcryptPasswordEncoder struct {
	cost int
}

func (e bcryptPasswordEncoder) Encode(password string) (string, error) {
	// an empty password clears the field
	if password == "" {
		return "", nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), e.cost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return "", fmt.Errorf("%w: %w", ErrPasswordTooLong, err)
	}
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrEncodingPassword, err)
	}

	return string(hash), nil
}
