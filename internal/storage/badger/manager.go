package badger

import (
	"github.com/ternarybob/arbor"

	"github.com/lumaacademy/atelier/internal/common"
	"github.com/lumaacademy/atelier/internal/interfaces"
)

// Manager implements the StorageManager interface for Badger
type Manager struct {
	db     *BadgerDB
	page   interfaces.PageStorage
	course interfaces.CourseStorage
	chat   interfaces.ChatStorage
	logger arbor.ILogger
}

// NewManager creates a new Badger storage manager
func NewManager(logger arbor.ILogger, config *common.BadgerConfig) (interfaces.StorageManager, error) {
	db, err := NewBadgerDB(logger, config)
	if err != nil {
		return nil, err
	}

	manager := &Manager{
		db:     db,
		page:   NewPageStorage(db, logger),
		course: NewCourseStorage(db, logger),
		chat:   NewChatStorage(db, logger),
		logger: logger,
	}

	logger.Info().Msg("Badger storage manager initialized")

	return manager, nil
}

// PageStorage returns the landing page storage interface
func (m *Manager) PageStorage() interfaces.PageStorage {
	return m.page
}

// CourseStorage returns the course storage interface
func (m *Manager) CourseStorage() interfaces.CourseStorage {
	return m.course
}

// ChatStorage returns the chat message storage interface
func (m *Manager) ChatStorage() interfaces.ChatStorage {
	return m.chat
}

// Close closes the database connection
func (m *Manager) Close() error {
	if m.db != nil {
		return m.db.Close()
	}
	return nil
}
