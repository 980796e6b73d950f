package engine

import (
	"encoding/json"
	"time"

	"betterfocus-api/internal/models"

	"github.com/google/uuid"
)

// FocusSessionInput carries the caller-supplied fields for a session record.
type FocusSessionInput struct {
	StartTime int64
	EndTime   int64
	Duration  int
	Type      models.SessionType
	Completed bool
	Notes     string
}

// AddFocusSessionRecord appends a session entry to the history list. This is
// bookkeeping only; progress credit goes through RecordFocusSession.
func (s *Service) AddFocusSessionRecord(in FocusSessionInput) *models.FocusSession {
	s.mu.Lock()
	defer s.mu.Unlock()

	sessionType := in.Type
	if sessionType != models.SessionBreak {
		sessionType = models.SessionWork
	}
	session := models.FocusSession{
		ID:        uuid.NewString(),
		StartTime: in.StartTime,
		EndTime:   in.EndTime,
		Duration:  in.Duration,
		Type:      sessionType,
		Completed: in.Completed,
		Notes:     in.Notes,
	}
	s.doc.FocusSessions = append([]models.FocusSession{session}, s.doc.FocusSessions...)
	s.persist()
	return &session
}

// FocusSessions returns the session history, most recent first.
func (s *Service) FocusSessions() []models.FocusSession {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.FocusSession(nil), s.doc.FocusSessions...)
}

// SettingsPatch is a partial settings update; nil fields are left untouched.
type SettingsPatch struct {
	Theme                *string
	SoundEnabled         *bool
	NotificationsEnabled *bool
	DefaultFocusDuration *int
	DefaultBreakDuration *int
	Language             *string
}

// Settings returns the current UI preferences.
func (s *Service) Settings() models.UserSettings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.doc.Settings
}

// UpdateSettings merges the patch and returns the result. Settings are
// pass-through for the client; the core only reads the default durations.
func (s *Service) UpdateSettings(patch SettingsPatch) models.UserSettings {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := &s.doc.Settings
	if patch.Theme != nil {
		st.Theme = *patch.Theme
	}
	if patch.SoundEnabled != nil {
		st.SoundEnabled = *patch.SoundEnabled
	}
	if patch.NotificationsEnabled != nil {
		st.NotificationsEnabled = *patch.NotificationsEnabled
	}
	if patch.DefaultFocusDuration != nil && *patch.DefaultFocusDuration > 0 {
		st.DefaultFocusDuration = *patch.DefaultFocusDuration
	}
	if patch.DefaultBreakDuration != nil && *patch.DefaultBreakDuration > 0 {
		st.DefaultBreakDuration = *patch.DefaultBreakDuration
	}
	if patch.Language != nil {
		st.Language = *patch.Language
	}

	s.persist()
	return *st
}

// Export returns a deep copy of the full document, stamped with the export
// time. Importing an export reproduces identical state for every field the
// core manages.
func (s *Service) Export() (*models.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out, err := cloneDocument(s.doc)
	if err != nil {
		return nil, err
	}
	out.ExportDate = s.now().UTC().Format(time.RFC3339)
	return out, nil
}

// Import replaces the in-memory state with the decoded document. A payload
// that does not parse is rejected without touching current state; missing
// sections default the same way a partial load does.
func (s *Service) Import(data []byte) error {
	var doc models.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return ErrInvalidDocument
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	doc.Normalize(s.nowMillis())
	doc.ExportDate = ""
	s.doc = &doc
	s.persist()
	return nil
}

// Reset discards everything and returns to the pristine default state.
func (s *Service) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.doc = models.DefaultDocument(s.nowMillis())
	s.persist()
}

func cloneDocument(doc *models.Document) (*models.Document, error) {
	data, err := json.Marshal(doc)
	if err != nil {
		return nil, err
	}
	var out models.Document
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
