package chat

import (
	"testing"

	messageRepo "qserve/database/repository/message"
	userRepo "qserve/database/repository/user"
	"qserve/models"
	"qserve/services/notification"
	"qserve/utils"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

type summaryCall struct {
	ownerID       string
	counterpartID string
	unreadDelta   int
}

type mockMessageRepo struct {
	insertFn     func(m *models.Message) error
	listByConvFn func(conversationID string) ([]models.Message, error)
	markReadFn   func(conversationID, readerID string) (int64, error)
	summaryCalls []summaryCall
	resetCalls   []string
	summariesFn  func(ownerID string) ([]models.ConversationSummary, error)
}

var _ messageRepo.MessageRepository = (*mockMessageRepo)(nil)

func (m *mockMessageRepo) InsertMessage(msg *models.Message) error {
	if m.insertFn == nil {
		return nil
	}
	return m.insertFn(msg)
}

func (m *mockMessageRepo) ListByConversation(conversationID string) ([]models.Message, error) {
	if m.listByConvFn == nil {
		return nil, nil
	}
	return m.listByConvFn(conversationID)
}

func (m *mockMessageRepo) MarkRead(conversationID, readerID string) (int64, error) {
	if m.markReadFn == nil {
		return 0, nil
	}
	return m.markReadFn(conversationID, readerID)
}

func (m *mockMessageRepo) UpsertSummary(ownerID, counterpartID, conversationID string, last models.LastMessage, unreadDelta int) error {
	m.summaryCalls = append(m.summaryCalls, summaryCall{ownerID, counterpartID, unreadDelta})
	return nil
}

func (m *mockMessageRepo) ResetUnread(ownerID, conversationID string) error {
	m.resetCalls = append(m.resetCalls, conversationID)
	return nil
}

func (m *mockMessageRepo) ListSummaries(ownerID string) ([]models.ConversationSummary, error) {
	if m.summariesFn == nil {
		return nil, nil
	}
	return m.summariesFn(ownerID)
}

type mockUserRepo struct {
	getByIDFn func(id string) (*models.User, error)
}

var _ userRepo.UserRepository = (*mockUserRepo)(nil)

func (m *mockUserRepo) Create(u *models.User) error                   { return nil }
func (m *mockUserRepo) Update(id string, updateDoc bson.M) error      { return nil }
func (m *mockUserRepo) GetByEmail(email string) (*models.User, error) { return nil, nil }
func (m *mockUserRepo) GetProviders(occupation string) ([]models.User, error) {
	return nil, nil
}
func (m *mockUserRepo) Delete(id string) error { return nil }

func (m *mockUserRepo) GetByID(id string) (*models.User, error) {
	if m.getByIDFn == nil {
		return &models.User{ID: id, Name: "User " + id}, nil
	}
	return m.getByIDFn(id)
}

type noopNotifier struct{}

var _ notification.NotificationService = noopNotifier{}

func (noopNotifier) Notify(userID, title, body string, data map[string]string) {}

func newService(repo *mockMessageRepo) *DefaultChatService {
	return &DefaultChatService{
		Repo:         repo,
		Users:        &mockUserRepo{},
		Notification: noopNotifier{},
	}
}

// --- tests ---

func TestConversationID_OrderIndependent(t *testing.T) {
	require.Equal(t, ConversationID("alice", "bob"), ConversationID("bob", "alice"))
	require.Equal(t, "alice:bob", ConversationID("bob", "alice"))
}

func TestSendMessage_UnreadGrowsOnlyForReceiver(t *testing.T) {
	repo := &mockMessageRepo{}
	svc := newService(repo)

	msg, err := svc.SendMessage("alice", "bob", "hello")
	require.NoError(t, err)
	require.Equal(t, ConversationID("alice", "bob"), msg.ConversationID)

	require.Len(t, repo.summaryCalls, 2)
	byOwner := map[string]summaryCall{}
	for _, call := range repo.summaryCalls {
		byOwner[call.ownerID] = call
	}
	require.Equal(t, 0, byOwner["alice"].unreadDelta)
	require.Equal(t, "bob", byOwner["alice"].counterpartID)
	require.Equal(t, 1, byOwner["bob"].unreadDelta)
	require.Equal(t, "alice", byOwner["bob"].counterpartID)
}

func TestSendMessage_EmptyContentRejected(t *testing.T) {
	svc := newService(&mockMessageRepo{})

	_, err := svc.SendMessage("alice", "bob", "")
	require.Error(t, err)
	require.Equal(t, utils.CodeValidation, utils.CodeOf(err))
}

func TestSendMessage_SelfMessageRejected(t *testing.T) {
	svc := newService(&mockMessageRepo{})

	_, err := svc.SendMessage("alice", "alice", "hi me")
	require.Error(t, err)
	require.Equal(t, utils.CodeValidation, utils.CodeOf(err))
}

func TestSendMessage_UnknownReceiver(t *testing.T) {
	repo := &mockMessageRepo{}
	svc := newService(repo)
	svc.Users = &mockUserRepo{getByIDFn: func(id string) (*models.User, error) {
		return nil, nil
	}}

	_, err := svc.SendMessage("alice", "ghost", "hello?")
	require.Error(t, err)
	require.Equal(t, utils.CodeNotFound, utils.CodeOf(err))
}

func TestGetConversation_MarksCallerSideRead(t *testing.T) {
	var markedConv, markedReader string
	repo := &mockMessageRepo{
		listByConvFn: func(conversationID string) ([]models.Message, error) {
			return []models.Message{{ID: "m1", ConversationID: conversationID}}, nil
		},
		markReadFn: func(conversationID, readerID string) (int64, error) {
			markedConv, markedReader = conversationID, readerID
			return 1, nil
		},
	}
	svc := newService(repo)

	msgs, err := svc.GetConversation("bob", "alice")
	require.NoError(t, err)
	require.Len(t, msgs, 1)
	require.Equal(t, ConversationID("alice", "bob"), markedConv)
	require.Equal(t, "bob", markedReader)
	require.Equal(t, []string{ConversationID("alice", "bob")}, repo.resetCalls)
}

func TestGetUserConversations_ResolvesCounterparts(t *testing.T) {
	repo := &mockMessageRepo{
		summariesFn: func(ownerID string) ([]models.ConversationSummary, error) {
			return []models.ConversationSummary{
				{OwnerID: ownerID, CounterpartID: "bob", ConversationID: ConversationID(ownerID, "bob"), UnreadCount: 2},
			}, nil
		},
	}
	svc := newService(repo)

	convs, err := svc.GetUserConversations("alice")
	require.NoError(t, err)
	require.Len(t, convs, 1)
	require.Equal(t, "bob", convs[0].CounterpartID)
	require.Equal(t, "User bob", convs[0].CounterpartName)
	require.Equal(t, 2, convs[0].UnreadCount)
}
