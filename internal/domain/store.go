package domain

import "sort"

// DefaultProfileName is the profile created when no usable data exists.
const DefaultProfileName = "Default"

// Store is the full persisted state: every profile plus the name of the one
// currently displayed and mutated. Invariants: at least one profile exists,
// and ActiveProfile always resolves to a present key. Repair restores both.
type Store struct {
	ActiveProfile string
	Profiles      map[string]*Profile
}

// NewStore returns a store holding a single empty default profile.
func NewStore() *Store {
	return &Store{
		ActiveProfile: DefaultProfileName,
		Profiles:      map[string]*Profile{DefaultProfileName: NewProfile()},
	}
}

// Active returns the active profile. Call Repair first when the store came
// from outside (disk, import); after that the return is never nil.
func (s *Store) Active() *Profile {
	return s.Profiles[s.ActiveProfile]
}

// ProfileNames returns all profile names in lexicographic order.
func (s *Store) ProfileNames() []string {
	names := make([]string, 0, len(s.Profiles))
	for name := range s.Profiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Repair re-establishes the store invariants after loading untrusted data:
// non-nil maps, per-profile field defaults, at least one profile, and an
// ActiveProfile that resolves. A dangling ActiveProfile falls back to the
// first profile name in lexicographic order so the outcome is deterministic.
func (s *Store) Repair() {
	if s.Profiles == nil {
		s.Profiles = map[string]*Profile{}
	}
	for name, p := range s.Profiles {
		if p == nil {
			s.Profiles[name] = NewProfile()
			continue
		}
		if p.Tasks == nil {
			p.Tasks = []Task{}
		}
		if p.SubjectColors == nil {
			p.SubjectColors = map[string]string{}
		}
	}
	if len(s.Profiles) == 0 {
		s.Profiles[DefaultProfileName] = NewProfile()
		s.ActiveProfile = DefaultProfileName
		return
	}
	if _, ok := s.Profiles[s.ActiveProfile]; !ok {
		s.ActiveProfile = s.ProfileNames()[0]
	}
}
