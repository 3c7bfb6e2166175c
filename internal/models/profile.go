package models

// Gender holds a profile's self-reported gender. The cycle tracker is only
// surfaced for female profiles.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

// Valid reports whether g is one of the known gender values.
func (g Gender) Valid() bool {
	switch g {
	case GenderMale, GenderFemale, GenderOther:
		return true
	}
	return false
}

// Profile is an isolated user identity on this device. Each profile owns its
// own UserData, keyed by the profile id.
type Profile struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Age        int    `json:"age"`
	Gender     Gender `json:"gender"`
	Onboarded  bool   `json:"onboarded"`
	ThemeColor string `json:"themeColor,omitempty"`
}

// ProfileUpdate carries partial profile fields for a merge-style update.
// Nil fields are left untouched.
type ProfileUpdate struct {
	Name       *string
	Age        *int
	Gender     *Gender
	ThemeColor *string
}

// Apply merges the set fields of u into p.
func (u ProfileUpdate) Apply(p *Profile) {
	if u.Name != nil {
		p.Name = *u.Name
	}
	if u.Age != nil {
		p.Age = *u.Age
	}
	if u.Gender != nil {
		p.Gender = *u.Gender
	}
	if u.ThemeColor != nil {
		p.ThemeColor = *u.ThemeColor
	}
}
