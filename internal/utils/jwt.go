// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// SignClaims signs the claims with HMAC-SHA256 and returns the compact token.
func SignClaims(claims jwt.Claims, signKey string) (string, error) {
	if signKey == "" {
		return "", errors.New("empty sign key for JWT token")
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return "", fmt.Errorf("error occurred during signing JWT token: %w", err)
	}

	return tokenString, nil
}

// ParseClaims validates tokenString and decodes it into claims.
//
// Validation includes the signature (HS256 only), expiration, the issuer and,
// when audience is non-empty, the audience claim. A token without a subject is
// rejected.
func ParseClaims(tokenString, signKey, issuer, audience string, claims jwt.Claims) error {
	opts := []jwt.ParserOption{
		jwt.WithIssuer(issuer),
		jwt.WithExpirationRequired(),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	}
	if audience != "" {
		opts = append(opts, jwt.WithAudience(audience))
	}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return []byte(signKey), nil
	}, opts...)
	if err != nil {
		return fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	subject, err := token.Claims.GetSubject()
	if err != nil {
		return fmt.Errorf("error occurred during getting subject from token: %w", err)
	}
	if subject == "" {
		return errors.New("empty subject error")
	}

	return nil
}
