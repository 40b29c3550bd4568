package model

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	cases := []struct {
		from    string
		to      string
		allowed bool
	}{
		{StatusUnread, StatusUnread, true},
		{StatusUnread, StatusRead, true},
		{StatusUnread, StatusReplied, true},
		{StatusUnread, StatusArchived, true},
		{StatusRead, StatusRead, true},
		{StatusRead, StatusReplied, true},
		{StatusRead, StatusArchived, true},
		{StatusReplied, StatusReplied, true},
		{StatusReplied, StatusArchived, true},
		{StatusArchived, StatusReplied, true},

		// handled messages cannot go back to unread
		{StatusRead, StatusUnread, false},
		{StatusReplied, StatusUnread, false},
		{StatusArchived, StatusUnread, false},
		{StatusReplied, StatusRead, false},
		{StatusArchived, StatusRead, false},

		{StatusRead, "bogus", false},
	}

	for _, tc := range cases {
		t.Run(fmt.Sprintf("%s to %s", tc.from, tc.to), func(t *testing.T) {
			assert.Equal(t, tc.allowed, CanTransition(tc.from, tc.to))
		})
	}
}
