package reservation

import (
	"errors"
	"strings"
)

var ErrNoteTooLong = errors.New("note is too long (max 500 characters)")

const MaxNoteLength = 500

type Note struct {
	value string
}

func NewNote(value string) (Note, error) {
	trimmed := strings.TrimSpace(value)
	if len(trimmed) > MaxNoteLength {
		return Note{}, ErrNoteTooLong
	}
	return Note{value: trimmed}, nil
}

func (n Note) String() string {
	return n.value
}

func (n Note) IsEmpty() bool {
	return n.value == ""
}
