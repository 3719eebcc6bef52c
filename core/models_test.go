package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIDFromContent(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "same content produces same ID", content: "login button not responding"},
		{name: "empty string", content: ""},
		{name: "long content", content: "Users report the login button does nothing when clicked on the dashboard"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id1 := IDFromContent(tt.content)
			id2 := IDFromContent(tt.content)
			assert.Equal(t, id1, id2)
		})
	}
}

func TestIDFromContent_Different(t *testing.T) {
	id1 := IDFromContent("payment fails on checkout")
	id2 := IDFromContent("payment succeeds on checkout")
	assert.NotEqual(t, id1, id2)
}
