package credentials

// Record is the locally persisted identity produced by a successful login.
// The member identifier is the real proof of identity on authenticated
// calls; the token is forwarded but its presence is not enforced client-side.
type Record struct {
	MemberID int    `json:"member_id"`
	Token    string `json:"token"`
	Email    string `json:"email"`
}

// Store loads and saves the credential record. Login overwrites the record
// on success; every authenticated call reads it to populate the envelope's
// memberId/token fields. A nil record from Load means "not logged in".
type Store interface {
	Load() (*Record, error)
	Save(record Record) error
	Clear() error
}
