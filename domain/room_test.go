package domain

import (
	"question-lab/errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRoomID_Validate(t *testing.T) {
	req := require.New(t)

	tests := []struct {
		room    RoomID
		wantErr bool
	}{
		{"room-1", false},
		{"ROOM_42", false},
		{"", true},
		{"room:1", true},
		{"room 1", true},
		{RoomID(make([]byte, 65)), true},
	}

	for _, tt := range tests {
		err := tt.room.Validate()
		if tt.wantErr {
			req.ErrorIs(err, errors.ErrInvalidRoomID, string(tt.room))
			continue
		}
		req.NoError(err)
	}
}
