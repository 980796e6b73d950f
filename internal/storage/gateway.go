package storage

import "betterfocus-api/internal/models"

// Gateway is the persistence collaborator: it loads and saves the single
// JSON document holding all domain state. Save is best-effort from the
// caller's perspective; a failed save degrades durability, never correctness.
type Gateway interface {
	// Load returns the stored document, or (nil, nil) when nothing has been
	// saved yet. A document that cannot be decoded is reported as an error.
	Load() (*models.Document, error)

	// Save persists the document, replacing any previous version.
	Save(doc *models.Document) error
}
