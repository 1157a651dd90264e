package user

import "time"

type User struct {
	ID        int       `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	CreatedAt time.Time `json:"createdAt"`
}

type Profile struct {
	PreferredLanguage string            `json:"preferredLanguage"`
	Theme             string            `json:"theme"`
	Preferences       map[string]string `json:"preferences"`
}

func DefaultProfile() Profile {
	return Profile{
		PreferredLanguage: "en",
		Theme:             "light",
		Preferences:       map[string]string{},
	}
}
