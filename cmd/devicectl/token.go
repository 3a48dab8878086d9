package main

import (
	"strings"

	"monitoring/config"
	"monitoring/internal/domain/entity"
	"monitoring/internal/infra/auth"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

func runToken(cfg *config.Config, user, roles string) (string, error) {
	userID, err := uuid.Parse(user)
	if err != nil {
		return "", errors.Wrap(err, "invalid user ID")
	}

	var roleNames []string
	for _, role := range strings.Split(roles, ",") {
		role = strings.TrimSpace(role)
		if role == "" {
			continue
		}
		if !entity.Role(role).IsValid() {
			return "", errors.Errorf("unknown role %q", role)
		}
		roleNames = append(roleNames, role)
	}

	tokenSvc, err := auth.NewJWTService(cfg)
	if err != nil {
		return "", err
	}

	token, err := tokenSvc.GenerateAccessToken(userID, roleNames)
	if err != nil {
		return "", errors.Wrap(err, "failed to generate access token")
	}

	return token, nil
}
