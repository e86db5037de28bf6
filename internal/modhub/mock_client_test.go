package modhub_test

import (
	"strings"

	"modflow/backend/internal/models"
)

type MockClient struct {
	userID      string
	RecvChannel chan models.Reply
}

func newMockClient(userID string) *MockClient {
	return &MockClient{
		userID:      userID,
		RecvChannel: make(chan models.Reply, 32),
	}
}

func (c *MockClient) GetUserID() string {
	return c.userID
}

func (c *MockClient) GetSendChannel() chan<- models.Reply {
	return c.RecvChannel
}

func (c *MockClient) Run() {
	// Not needed for testing
}

func (c *MockClient) Close() {
	// Not needed for testing
}

// drain empties the receive channel and returns everything seen so far.
func (c *MockClient) drain() []string {
	var out []string
	for {
		select {
		case r := <-c.RecvChannel:
			out = append(out, r.Text)
		default:
			return out
		}
	}
}

// received reports whether any drained reply contains the substring.
func received(replies []string, substr string) bool {
	for _, r := range replies {
		if strings.Contains(r, substr) {
			return true
		}
	}
	return false
}
