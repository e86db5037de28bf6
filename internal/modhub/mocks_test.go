package modhub_test

import (
	"github.com/stretchr/testify/mock"

	"modflow/backend/internal/flow"
	"modflow/backend/internal/models"
)

type MockNotifier struct {
	mock.Mock
}

func (n *MockNotifier) Notify(userID, text string) error {
	args := n.Called(userID, text)
	return args.Error(0)
}

type MockActions struct {
	mock.Mock
}

func (a *MockActions) DeleteContent(content models.ReportedContent) error {
	return a.Called(content).Error(0)
}

func (a *MockActions) RemoveUser(userID, userName string) error {
	return a.Called(userID, userName).Error(0)
}

type MockChannel struct {
	mock.Mock
}

func (c *MockChannel) PostTicket(t *models.Ticket) (int64, int, error) {
	args := c.Called(t)
	return args.Get(0).(int64), args.Int(1), args.Error(2)
}

func (c *MockChannel) Retract(chatID int64, messageID int) error {
	return c.Called(chatID, messageID).Error(0)
}

func (c *MockChannel) Announce(text string) error {
	return c.Called(text).Error(0)
}

// mockResolver resolves every reference to the same canned message.
type mockResolver struct {
	content models.ReportedContent
	err     error
}

func (r *mockResolver) Resolve(ref string) (*models.ReportedContent, error) {
	if r.err != nil {
		return nil, r.err
	}
	content := r.content
	return &content, nil
}

var _ flow.ContentResolver = (*mockResolver)(nil)
