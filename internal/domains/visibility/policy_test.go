package visibility

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAuthorizeMutation(t *testing.T) {
	owner := Authenticated(1, "owner")
	stranger := Authenticated(2, "stranger")

	tests := []struct {
		name   string
		viewer Viewer
		target Target
		want   Decision
	}{
		{"owner edits post", owner, Target{EntityPost, ActionEdit, 1}, Decision{Allowed: true}},
		{"owner deletes post", owner, Target{EntityPost, ActionDelete, 1}, Decision{Allowed: true}},
		{"owner edits comment", owner, Target{EntityComment, ActionEdit, 1}, Decision{Allowed: true}},
		{"owner deletes comment", owner, Target{EntityComment, ActionDelete, 1}, Decision{Allowed: true}},
		{"stranger edits post", stranger, Target{EntityPost, ActionEdit, 1}, Decision{Denial: DenialRedirect}},
		{"stranger deletes post", stranger, Target{EntityPost, ActionDelete, 1}, Decision{Denial: DenialNotFound}},
		{"stranger edits comment", stranger, Target{EntityComment, ActionEdit, 1}, Decision{Denial: DenialNotFound}},
		{"stranger deletes comment", stranger, Target{EntityComment, ActionDelete, 1}, Decision{Denial: DenialNotFound}},
		{"anonymous edits post", Anonymous(), Target{EntityPost, ActionEdit, 1}, Decision{Denial: DenialUnauthenticated}},
		{"anonymous deletes comment", Anonymous(), Target{EntityComment, ActionDelete, 0}, Decision{Denial: DenialUnauthenticated}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AuthorizeMutation(tt.viewer, tt.target))
		})
	}
}

func TestDecision_Err(t *testing.T) {
	assert.NoError(t, Decision{Allowed: true}.Err())
	assert.ErrorIs(t, Decision{Denial: DenialUnauthenticated}.Err(), ErrUnauthenticated)
	assert.ErrorIs(t, Decision{Denial: DenialRedirect}.Err(), ErrRedirectToRead)
	assert.ErrorIs(t, Decision{Denial: DenialNotFound}.Err(), ErrHidden)
}
