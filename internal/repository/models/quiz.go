package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// StringSlice stores a string array as a JSON text column.
type StringSlice []string

// Value implements the driver.Valuer interface
func (s StringSlice) Value() (driver.Value, error) {
	if s == nil {
		return "[]", nil
	}
	jsonData, err := json.Marshal(s)
	if err != nil {
		return nil, err
	}
	return string(jsonData), nil
}

// Scan implements the sql.Scanner interface
func (s *StringSlice) Scan(value interface{}) error {
	if value == nil {
		*s = StringSlice{}
		return nil
	}

	var bytesToParse []byte
	switch v := value.(type) {
	case []byte:
		bytesToParse = v
	case string:
		bytesToParse = []byte(v)
	default:
		return errors.New("StringSlice Scan: unsupported type " + fmt.Sprintf("%T", value))
	}

	if len(bytesToParse) == 0 || string(bytesToParse) == "null" {
		*s = StringSlice{}
		return nil
	}

	return json.Unmarshal(bytesToParse, s)
}

// Quiz is the quizzes table row.
type Quiz struct {
	ID            int64       `db:"id"`
	OwnerID       string      `db:"owner_id"`
	Topic         string      `db:"topic"`
	Question      string      `db:"question"`
	Options       StringSlice `db:"options"`
	CorrectAnswer string      `db:"correct_answer"`
	UserAnswer    string      `db:"user_answer"`
	IsCorrect     bool        `db:"is_correct"`
	CreatedAt     time.Time   `db:"created_at"`
	UpdatedAt     time.Time   `db:"updated_at"`
}

// Describe is the describes table row. Only (topic, owner) is recorded;
// generated prose is not stored.
type Describe struct {
	ID        int64     `db:"id"`
	OwnerID   string    `db:"owner_id"`
	Topic     string    `db:"topic"`
	CreatedAt time.Time `db:"created_at"`
}
