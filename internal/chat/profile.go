package chat

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/kmuller/go-messenger/internal/database"
)

// defaultProfilePicture is the sentinel assigned to every new profile.
const defaultProfilePicture = "default"

const maxUsernameLen = 32

type UpdateProfileParams struct {
	Username       *string
	DisplayName    *string
	Password       *string
	EmailAddress   *string
	ProfilePicture *string
}

// CreateProfile registers a new profile. The username must be free of
// whitespace and at most 32 characters; uniqueness is left to the store's
// unique index and surfaces as a store error.
func (s *Service) CreateProfile(username string, displayName *string, password, emailAddress string) (database.Profile, error) {
	if !isUsernameValid(username) {
		return database.Profile{}, ErrInvalidUsername
	}

	profile, err := s.repo.CreateProfile(database.CreateProfileParams{
		Username:       username,
		DisplayName:    displayName,
		Password:       password,
		EmailAddress:   emailAddress,
		ProfilePicture: defaultProfilePicture,
	})
	if err != nil {
		return database.Profile{}, fmt.Errorf("create profile: %w", err)
	}

	return profile, nil
}

func (s *Service) GetProfile(profileId int) (database.Profile, error) {
	return s.profileExists(profileId)
}

func (s *Service) GetProfileByUsername(username string) (database.Profile, error) {
	profile, err := s.repo.GetProfileByUsername(username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return database.Profile{}, ErrProfileNotFound
		}
		return database.Profile{}, fmt.Errorf("get profile by username: %w", err)
	}

	return profile, nil
}

// UpdateProfile patches a profile with read-modify-write semantics: nil
// fields keep their current value. The join timestamp is never re-stamped.
func (s *Service) UpdateProfile(profileId int, params UpdateProfileParams) (database.Profile, error) {
	current, err := s.profileExists(profileId)
	if err != nil {
		return database.Profile{}, err
	}

	updateParams := database.UpdateProfileParams{
		ProfileId:      current.Id,
		Username:       current.Username,
		DisplayName:    current.DisplayName,
		Password:       current.Password,
		EmailAddress:   current.EmailAddress,
		ProfilePicture: current.ProfilePicture,
	}

	if params.Username != nil {
		updateParams.Username = *params.Username
	}
	if params.DisplayName != nil {
		updateParams.DisplayName = params.DisplayName
	}
	if params.Password != nil {
		updateParams.Password = *params.Password
	}
	if params.EmailAddress != nil {
		updateParams.EmailAddress = *params.EmailAddress
	}
	if params.ProfilePicture != nil {
		updateParams.ProfilePicture = params.ProfilePicture
	}

	updated, err := s.repo.UpdateProfile(updateParams)
	if err != nil {
		return database.Profile{}, fmt.Errorf("update profile: %w", err)
	}

	return updated, nil
}

// DeleteProfile removes the profile row only. Memberships, authored group
// messages and private messages keep their now-dangling references.
func (s *Service) DeleteProfile(profileId int) error {
	deleted, err := s.repo.DeleteProfile(profileId)
	if err != nil {
		return fmt.Errorf("delete profile: %w", err)
	}

	if deleted == 0 {
		return ErrProfileNotFound
	}

	return nil
}

func isUsernameValid(username string) bool {
	if len(username) > maxUsernameLen {
		return false
	}

	return !strings.ContainsFunc(username, unicode.IsSpace)
}
