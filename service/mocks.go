package service

import (
	"shieldbot/models"

	"github.com/stretchr/testify/mock"
)

// MockDiscordGateway is a mock implementation of DiscordGateway
type MockDiscordGateway struct {
	mock.Mock
}

func (m *MockDiscordGateway) GuildName(guildID string) (string, error) {
	args := m.Called(guildID)
	return args.String(0), args.Error(1)
}

func (m *MockDiscordGateway) BanMember(guildID, accountID, reason string, purgeDays int) error {
	args := m.Called(guildID, accountID, reason, purgeDays)
	return args.Error(0)
}

func (m *MockDiscordGateway) UnbanMember(guildID, accountID string) error {
	args := m.Called(guildID, accountID)
	return args.Error(0)
}

func (m *MockDiscordGateway) KickMember(guildID, accountID, reason string) error {
	args := m.Called(guildID, accountID, reason)
	return args.Error(0)
}

func (m *MockDiscordGateway) SendDirectMessage(accountID, content string) error {
	args := m.Called(accountID, content)
	return args.Error(0)
}

// MockPendingBanRepository is a mock implementation of PendingBanRepository
type MockPendingBanRepository struct {
	mock.Mock
}

func (m *MockPendingBanRepository) GetByToken(token string) (*models.PendingBan, error) {
	args := m.Called(token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.PendingBan), args.Error(1)
}

func (m *MockPendingBanRepository) Create(ban *models.PendingBan) error {
	args := m.Called(ban)
	return args.Error(0)
}

func (m *MockPendingBanRepository) Delete(token string) error {
	args := m.Called(token)
	return args.Error(0)
}

// MockVerifiedUserRepository is a mock implementation of VerifiedUserRepository
type MockVerifiedUserRepository struct {
	mock.Mock
}

func (m *MockVerifiedUserRepository) GetByAccountID(accountID string) (*models.VerifiedUser, error) {
	args := m.Called(accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.VerifiedUser), args.Error(1)
}

func (m *MockVerifiedUserRepository) Create(record *models.VerifiedUser) error {
	args := m.Called(record)
	return args.Error(0)
}

// MockGuildSettingsRepository is a mock implementation of GuildSettingsRepository
type MockGuildSettingsRepository struct {
	mock.Mock
}

func (m *MockGuildSettingsRepository) Get(guildID string) (*models.GuildSettings, error) {
	args := m.Called(guildID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.GuildSettings), args.Error(1)
}

func (m *MockGuildSettingsRepository) SetReportChannel(guildID, channelID string) error {
	args := m.Called(guildID, channelID)
	return args.Error(0)
}

func (m *MockGuildSettingsRepository) ClearReportChannel(guildID string) error {
	args := m.Called(guildID)
	return args.Error(0)
}
