package sessionapimodels

import "github.com/pkg/errors"

type UnlockRequest struct {
	Password string `json:"password"`
}

func (r UnlockRequest) Validate() error {
	if r.Password == "" {
		return errors.New("password is required")
	}
	return nil
}

type SessionResponse struct {
	Token    string `json:"token"`
	Unlocked bool   `json:"unlocked"`
}
