package storage

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/keshon/datastore"
)

const commandHistoryLimit = 20

// Storage keeps per-guild settings and command history on top of the
// key-value datastore. Keys are guild IDs; values are Record.
type Storage struct {
	ds *datastore.DataStore
}

// CommandHistoryRecord is one executed command.
type CommandHistoryRecord struct {
	ChannelID string    `json:"channel_id"`
	UserID    string    `json:"user_id"`
	Username  string    `json:"username"`
	Command   string    `json:"command"`
	Args      string    `json:"args"`
	Datetime  time.Time `json:"datetime"`
}

// Record is everything stored for one guild.
type Record struct {
	Prefix              string                 `json:"prefix,omitempty"`
	CommandsHistoryList []CommandHistoryRecord `json:"cmd_history"`
}

// New opens (or creates) the datastore file at filePath.
func New(filePath string) (*Storage, error) {
	ds, err := datastore.New(filePath)
	if err != nil {
		return nil, err
	}
	return &Storage{ds: ds}, nil
}

// Close flushes and closes the underlying datastore.
func (s *Storage) Close() error {
	return s.ds.Close()
}

// getOrCreateGuildRecord returns the guild's record, creating it on first use.
func (s *Storage) getOrCreateGuildRecord(guildID string) (*Record, error) {
	data, exists := s.ds.Get(guildID)
	if !exists {
		record := &Record{CommandsHistoryList: []CommandHistoryRecord{}}
		s.ds.Add(guildID, record)
		return record, nil
	}

	// The datastore hands back what it loaded from JSON, so round-trip
	// through json to get a typed Record regardless of the stored shape.
	jsonData, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("error marshalling data: %w", err)
	}
	var record Record
	if err := json.Unmarshal(jsonData, &record); err != nil {
		return nil, fmt.Errorf("error unmarshalling to *Record: %w", err)
	}

	if len(record.CommandsHistoryList) > commandHistoryLimit {
		record.CommandsHistoryList = record.CommandsHistoryList[len(record.CommandsHistoryList)-commandHistoryLimit:]
	}
	return &record, nil
}

// Prefix returns the guild's command prefix, or "" when unset.
func (s *Storage) Prefix(guildID string) string {
	record, err := s.getOrCreateGuildRecord(guildID)
	if err != nil {
		return ""
	}
	return record.Prefix
}

// SetPrefix stores the guild's command prefix.
func (s *Storage) SetPrefix(guildID, prefix string) error {
	record, err := s.getOrCreateGuildRecord(guildID)
	if err != nil {
		return err
	}
	record.Prefix = prefix
	s.ds.Add(guildID, record)
	return nil
}

// AppendCommandToHistory appends a command history record for a guild,
// keeping only the most recent entries.
func (s *Storage) AppendCommandToHistory(guildID string, record CommandHistoryRecord) error {
	r, err := s.getOrCreateGuildRecord(guildID)
	if err != nil {
		return err
	}
	r.CommandsHistoryList = append(r.CommandsHistoryList, record)
	if len(r.CommandsHistoryList) > commandHistoryLimit {
		r.CommandsHistoryList = r.CommandsHistoryList[len(r.CommandsHistoryList)-commandHistoryLimit:]
	}
	s.ds.Add(guildID, r)
	return nil
}

// CommandHistory returns the guild's recent command records, oldest first.
func (s *Storage) CommandHistory(guildID string) ([]CommandHistoryRecord, error) {
	record, err := s.getOrCreateGuildRecord(guildID)
	if err != nil {
		return nil, err
	}
	return record.CommandsHistoryList, nil
}
