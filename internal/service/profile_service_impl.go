package service

import (
	"fmt"
	"log"
	"strings"

	"github.com/evanmort/slate/internal/domain"
)

type profileService struct {
	store Storage
}

func NewProfileService(store Storage) ProfileService {
	return &profileService{store: store}
}

func (s *profileService) Names() []string {
	return s.store.Load().ProfileNames()
}

func (s *profileService) Active() string {
	return s.store.Load().ActiveProfile
}

// SwitchTo activates a known profile. An unknown name is logged and
// ignored rather than surfaced; the previous profile stays active.
func (s *profileService) SwitchTo(name string) error {
	store := s.store.Load()
	if _, ok := store.Profiles[name]; !ok {
		log.Printf("profile switch: unknown profile %q", name)
		return nil
	}
	store.ActiveProfile = name
	return s.store.Save(store)
}

func (s *profileService) Create(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("profile name cannot be blank")
	}
	store := s.store.Load()
	if _, ok := store.Profiles[name]; ok {
		return fmt.Errorf("profile %q already exists", name)
	}
	store.Profiles[name] = domain.NewProfile()
	store.ActiveProfile = name
	return s.store.Save(store)
}

// Rename moves the active profile's data under a new key.
func (s *profileService) Rename(newName string) error {
	newName = strings.TrimSpace(newName)
	if newName == "" {
		return fmt.Errorf("profile name cannot be blank")
	}
	store := s.store.Load()
	if newName == store.ActiveProfile {
		return fmt.Errorf("profile is already named %q", newName)
	}
	if _, ok := store.Profiles[newName]; ok {
		return fmt.Errorf("profile %q already exists", newName)
	}
	store.Profiles[newName] = store.Profiles[store.ActiveProfile]
	delete(store.Profiles, store.ActiveProfile)
	store.ActiveProfile = newName
	return s.store.Save(store)
}

// Delete removes the active profile and activates the first remaining one.
// The last profile can never be deleted.
func (s *profileService) Delete() error {
	store := s.store.Load()
	if len(store.Profiles) <= 1 {
		return fmt.Errorf("cannot delete the only profile")
	}
	delete(store.Profiles, store.ActiveProfile)
	store.ActiveProfile = store.ProfileNames()[0]
	return s.store.Save(store)
}
