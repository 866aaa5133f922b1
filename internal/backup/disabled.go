package backup

import "context"

// DisabledTransport rejects every operation. It stands in when no remote
// target is configured so the HTTP surface stays uniform.
type DisabledTransport struct{}

// NewDisabledTransport creates a transport that always fails.
func NewDisabledTransport() *DisabledTransport {
	return &DisabledTransport{}
}

func (DisabledTransport) Check(ctx context.Context) error {
	return ErrBackupDisabled
}

func (DisabledTransport) Put(ctx context.Context, filename string, data []byte) error {
	return ErrBackupDisabled
}

func (DisabledTransport) Get(ctx context.Context, filename string) ([]byte, error) {
	return nil, ErrBackupDisabled
}

func (DisabledTransport) Exists(ctx context.Context, filename string) (bool, error) {
	return false, ErrBackupDisabled
}
