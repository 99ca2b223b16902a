package account

import "errors"

var (
	// ErrMissingFields is returned when email or password is empty.
	ErrMissingFields = errors.New("account: email and password are required")
	// ErrNameRequired is returned when registering without a display name.
	ErrNameRequired = errors.New("account: name is required")
	// ErrPasswordMismatch is returned when the confirmation differs.
	ErrPasswordMismatch = errors.New("account: password confirmation does not match")
	// ErrInvalidEmail is returned for malformed addresses.
	ErrInvalidEmail = errors.New("account: invalid email")
	// ErrEmailInUse is returned when registering an existing address.
	ErrEmailInUse = errors.New("account: email already registered")
	// ErrWeakPassword is returned for passwords shorter than MinPasswordLen.
	ErrWeakPassword = errors.New("account: password too short")
	// ErrInvalidCredentials is returned when login fails.
	ErrInvalidCredentials = errors.New("account: invalid credentials")
	// ErrNotSignedIn is returned when an operation needs a current user.
	ErrNotSignedIn = errors.New("account: no user signed in")
	// ErrWrongPassword is returned when re-authentication fails.
	ErrWrongPassword = errors.New("account: current password is wrong")
)

var messages = map[error]string{
	ErrMissingFields:      "Mohon isi email dan password.",
	ErrNameRequired:       "Nama lengkap harus diisi.",
	ErrPasswordMismatch:   "Konfirmasi password tidak cocok!",
	ErrInvalidEmail:       "Format email tidak valid.",
	ErrEmailInUse:         "Email ini sudah terdaftar.",
	ErrWeakPassword:       "Password terlalu lemah (minimal 6 karakter).",
	ErrInvalidCredentials: "Email atau password salah.",
	ErrNotSignedIn:        "User tidak ditemukan.",
	ErrWrongPassword:      "Password saat ini salah.",
}

// Message turns an error from this package into the text shown to the user.
func Message(err error) string {
	for sentinel, msg := range messages {
		if errors.Is(err, sentinel) {
			return msg
		}
	}
	return "Terjadi kesalahan sistem."
}
