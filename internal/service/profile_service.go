package service

import (
	"fmt"
	"time"

	"github.com/sahlimouna/gari-app/internal/db"
	"github.com/sahlimouna/gari-app/internal/entities"
)

type ProfileService struct {
	Users UserStore
}

func NewProfileService(users UserStore) *ProfileService {
	return &ProfileService{Users: users}
}

// GetOrCreateProfile returns the user's profile, creating a bare one when the
// identity exists but no profile row does yet (first login).
func (s *ProfileService) GetOrCreateProfile(userID, email string) (*entities.ProfileResponse, error) {
	profile, err := s.Users.GetUserProfile(userID)
	if err != nil {
		return nil, fmt.Errorf("loading profile: %w", err)
	}
	if profile == nil {
		profile = &db.UserProfile{
			ID:                   userID,
			Email:                email,
			NotificationsEnabled: true,
			CreatedAt:            time.Now().UTC(),
		}
		if err := s.Users.CreateUserProfile(profile); err != nil {
			return nil, fmt.Errorf("creating profile: %w", err)
		}
	}
	return toProfileResponse(profile), nil
}

func (s *ProfileService) UpdateProfile(userID string, req entities.UpdateProfileRequest) (*entities.ProfileResponse, error) {
	profile, err := s.Users.GetUserProfile(userID)
	if err != nil {
		return nil, fmt.Errorf("loading profile: %w", err)
	}
	if profile == nil {
		return nil, fmt.Errorf("profile %s not found", userID)
	}

	profile.FirstName = req.FirstName
	profile.LastName = req.LastName
	profile.Phone = req.Phone
	profile.NotificationsEnabled = req.NotificationsEnabled
	if err := s.Users.UpdateUserProfile(profile); err != nil {
		return nil, fmt.Errorf("updating profile: %w", err)
	}
	return toProfileResponse(profile), nil
}

func toProfileResponse(p *db.UserProfile) *entities.ProfileResponse {
	return &entities.ProfileResponse{
		ID:                   p.ID,
		Email:                p.Email,
		FirstName:            p.FirstName,
		LastName:             p.LastName,
		Phone:                p.Phone,
		NotificationsEnabled: p.NotificationsEnabled,
	}
}
