package entities

// Attachment is a single optional file sent along with a feedback message.
type Attachment struct {
	Name string
	Data []byte
}

// Feedback is one user submission relayed to the chat backend.
// SentAt is the client's own timestamp and is forwarded verbatim.
type Feedback struct {
	ID         string
	Type       string
	Lang       string
	Email      string
	Message    string
	SentAt     string
	UserAgent  string
	Attachment *Attachment
}

// HasAttachment reports whether a non-empty file accompanies the submission.
// Zero-length uploads are treated as absent so the relay can use the plain
// text call.
func (f *Feedback) HasAttachment() bool {
	return f.Attachment != nil && len(f.Attachment.Data) > 0
}
