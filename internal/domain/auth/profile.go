package auth

// ProfileView is the caller-facing projection of a session's identity.
// Type is "github" for OAuth-authenticated sessions and "keyword" for
// keyword-verified ones.
type ProfileView struct {
	Type string `json:"type"`
	Data any    `json:"data"`
}

// GuestProfile is the fixed identity synthesized for keyword-verified
// sessions. It is built fresh on every read and never persisted.
type GuestProfile struct {
	Name      string `json:"name"`
	AvatarURL string `json:"avatar_url"`
	Message   string `json:"message"`
}

const (
	GuestName      = "Guest User"
	GuestAvatarURL = "https://via.placeholder.com/150"
	GuestMessage   = "Logged in with secret keyword"
)

// NewGuestProfile returns the guest identity for keyword-verified sessions.
func NewGuestProfile() GuestProfile {
	return GuestProfile{
		Name:      GuestName,
		AvatarURL: GuestAvatarURL,
		Message:   GuestMessage,
	}
}
