package rest

import "github.com/yong/moviehub/internal/storage"

// User references the account owning a record.
type User struct {
	ID    int64  `json:"id"              validate:"required"`
	Login string `json:"login,omitempty"`
}

func (u *User) ToStorage() *storage.UserRef {
	if u == nil {
		return nil
	}

	return &storage.UserRef{ID: u.ID, Login: u.Login}
}

func NewUser(ref *storage.UserRef) *User {
	if ref == nil {
		return nil
	}

	return &User{ID: ref.ID, Login: ref.Login}
}
