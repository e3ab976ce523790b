package storage

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/evanmort/slate/internal/domain"
)

// storeDoc is the top-level JSON structure of the store file and of backup
// files. Profile values are kept raw on decode so both the canonical object
// shape and the legacy bare-array shape can be accepted.
type storeDoc struct {
	ActiveProfile string                     `json:"activeProfile"`
	Profiles      map[string]json.RawMessage `json:"profiles"`
}

// storeOutDoc is the canonical shape written back out.
type storeOutDoc struct {
	ActiveProfile string                `json:"activeProfile"`
	Profiles      map[string]profileDoc `json:"profiles"`
}

type profileDoc struct {
	Tasks         []taskDoc         `json:"tasks"`
	SubjectColors map[string]string `json:"subjectColors"`
}

type taskDoc struct {
	ID         flexID `json:"id"`
	Subject    string `json:"subject"`
	Assessment string `json:"assessment"`
	Deadline   string `json:"deadline"`
	Weighting  *int   `json:"weighting,omitempty"`
	Notes      string `json:"notes,omitempty"`
	Completed  bool   `json:"completed"`
}

// flexID accepts both string IDs and the bare numeric timestamps older
// store files carry, normalizing to a string.
type flexID string

func (f *flexID) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = flexID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("task id: %w", err)
	}
	*f = flexID(n.String())
	return nil
}

// Decode parses a store document, normalizing each profile into the
// canonical shape. It fails only on structural problems: data that is not a
// JSON object, or a "profiles" value that is missing or not a mapping.
// Store-level invariants (at least one profile, valid active reference) are
// deliberately NOT restored here: loading repairs them, while importing
// must see the document as-is to merge correctly.
func Decode(data []byte) (*domain.Store, error) {
	var doc storeDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing store document: %w", err)
	}
	if doc.Profiles == nil {
		return nil, fmt.Errorf(`store document has no "profiles" mapping`)
	}

	s := &domain.Store{
		ActiveProfile: doc.ActiveProfile,
		Profiles:      make(map[string]*domain.Profile, len(doc.Profiles)),
	}
	for name, raw := range doc.Profiles {
		s.Profiles[name] = decodeProfile(raw)
	}
	return s, nil
}

// decodeProfile resolves the legacy-array-or-canonical-object union for one
// profile value. Unusable values degrade to an empty profile.
func decodeProfile(raw json.RawMessage) *domain.Profile {
	var doc profileDoc
	if err := json.Unmarshal(raw, &doc); err == nil {
		return profileFromDoc(doc)
	}

	// Legacy shape: the profile value is the task array itself.
	var tasks []taskDoc
	if err := json.Unmarshal(raw, &tasks); err == nil {
		return profileFromDoc(profileDoc{Tasks: tasks})
	}

	return domain.NewProfile()
}

func profileFromDoc(doc profileDoc) *domain.Profile {
	p := domain.NewProfile()
	if doc.SubjectColors != nil {
		p.SubjectColors = doc.SubjectColors
	}
	for _, td := range doc.Tasks {
		p.Tasks = append(p.Tasks, taskFromDoc(td))
	}
	return p
}

func taskFromDoc(td taskDoc) domain.Task {
	// A deadline that does not parse is kept as the zero time rather than
	// dropping the task; it sorts first and renders as undated.
	deadline, _ := time.ParseInLocation(domain.DateFormat, td.Deadline, time.Local)
	return domain.Task{
		ID:        string(td.ID),
		Subject:   td.Subject,
		Title:     td.Assessment,
		Deadline:  deadline,
		Weighting: td.Weighting,
		Notes:     td.Notes,
		Completed: td.Completed,
	}
}

// Encode serializes a store into the canonical document shape. Pretty
// output is used for backup files, compact for the store file itself.
func Encode(s *domain.Store, pretty bool) ([]byte, error) {
	doc := storeOutDoc{
		ActiveProfile: s.ActiveProfile,
		Profiles:      make(map[string]profileDoc, len(s.Profiles)),
	}
	for name, p := range s.Profiles {
		doc.Profiles[name] = profileToDoc(p)
	}
	if pretty {
		return json.MarshalIndent(doc, "", "  ")
	}
	return json.Marshal(doc)
}

func profileToDoc(p *domain.Profile) profileDoc {
	doc := profileDoc{
		Tasks:         make([]taskDoc, 0, len(p.Tasks)),
		SubjectColors: p.SubjectColors,
	}
	if doc.SubjectColors == nil {
		doc.SubjectColors = map[string]string{}
	}
	for i := range p.Tasks {
		doc.Tasks = append(doc.Tasks, taskToDoc(&p.Tasks[i]))
	}
	return doc
}

func taskToDoc(t *domain.Task) taskDoc {
	deadline := ""
	if !t.Deadline.IsZero() {
		deadline = t.Deadline.Format(domain.DateFormat)
	}
	return taskDoc{
		ID:         flexID(t.ID),
		Subject:    t.Subject,
		Assessment: t.Title,
		Deadline:   deadline,
		Weighting:  t.Weighting,
		Notes:      t.Notes,
		Completed:  t.Completed,
	}
}
