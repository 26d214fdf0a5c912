package domain

import "context"

// Speaker is a read-only directory entry referenced by sessions.
// swagger:model Speaker
type Speaker struct {
	ID             string `json:"id"`
	FullName       string `json:"full_name"`
	Email          string `json:"-"`
	TagLine        string `json:"tag_line"`
	ProfilePicture string `json:"profile_picture"`
}

// SpeakerDirectory resolves speaker ids. Unknown ids are omitted from the result.
type SpeakerDirectory interface {
	ListByIDs(ctx context.Context, ids []string) ([]*Speaker, error)
}
