package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"agent_connect/internal/config"
	"agent_connect/internal/domain"
	"agent_connect/internal/metrics"
	apperrors "agent_connect/pkg/errors"
	"agent_connect/pkg/logger"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/suite"
)

const (
	testAPIKey    = "devkey"
	testAPISecret = "secret-secret-secret-secret-secret"
)

type ConnectionServiceSuite struct {
	suite.Suite
	liveKit   config.LiveKitConfig
	tokenCfg  config.TokenConfig
	audit     *fakeAudit
	metrics   *metrics.Metrics
	service   ConnectionService
	inspector TokenInspector
}

func (s *ConnectionServiceSuite) SetupTest() {
	s.liveKit = config.LiveKitConfig{
		APIKey:       testAPIKey,
		APISecret:    testAPISecret,
		ServerURL:    "wss://livekit.example.com",
		RegionalURLs: map[string]string{"EU": "wss://eu.livekit.example.com"},
	}
	s.tokenCfg = config.TokenConfig{
		DeriveBotName:   true,
		RegionalRouting: true,
	}
	s.audit = &fakeAudit{}
	s.metrics = metrics.New()
	s.service = s.newService(NewLiveKitSigner(s.liveKit))
	s.inspector = NewTokenInspector(s.liveKit)
}

func (s *ConnectionServiceSuite) newService(signer Signer) ConnectionService {
	return NewConnectionService(
		signer,
		NewServerURLResolver(s.liveKit, s.tokenCfg.RegionalRouting),
		s.audit,
		s.metrics,
		s.tokenCfg,
		logger.NewNop(),
	)
}

func (s *ConnectionServiceSuite) issue(req domain.ConnectionRequest) *domain.ConnectionDetails {
	details, err := s.service.IssueConnection(context.Background(), req)
	s.Require().NoError(err)
	return details
}

func (s *ConnectionServiceSuite) inspect(token string) *domain.TokenInfo {
	info, err := s.inspector.Inspect(context.Background(), token)
	s.Require().NoError(err)
	return info
}

func (s *ConnectionServiceSuite) TestLobbyScenario() {
	details := s.issue(domain.ConnectionRequest{
		RoomName:        "lobby",
		ParticipantName: "alice",
		Metadata:        `{"selectedPerson":"bob"}`,
	})

	s.Equal("lobby", details.RoomName)
	s.Equal("alice", details.ParticipantName)
	s.Equal("wss://livekit.example.com", details.ServerURL)
	s.NotEmpty(details.ParticipantToken)

	info := s.inspect(details.ParticipantToken)
	s.JSONEq(`{"selectedPerson":"bob","botName":"bob"}`, info.Metadata)
	s.Equal("lobby", info.Room)
	s.Equal("alice", info.Name)
	s.Regexp(`^alice__[0-9A-Za-z]{4}$`, info.Identity)
	s.Equal("bob", info.BotName)
}

func (s *ConnectionServiceSuite) TestMetadataOmittedFallsBackToParticipant() {
	details := s.issue(domain.ConnectionRequest{RoomName: "lobby", ParticipantName: "alice"})

	info := s.inspect(details.ParticipantToken)
	s.JSONEq(`{"selectedPerson":"alice","botName":"alice"}`, info.Metadata)
	s.Equal(1.0, testutil.ToFloat64(s.metrics.MetadataRepaired))
}

func (s *ConnectionServiceSuite) TestInvalidMetadataIsRepairedNotRejected() {
	details := s.issue(domain.ConnectionRequest{
		RoomName:        "lobby",
		ParticipantName: "alice",
		Metadata:        `{"selectedPerson":`,
	})

	info := s.inspect(details.ParticipantToken)
	s.JSONEq(`{"selectedPerson":"alice","botName":"alice"}`, info.Metadata)
}

func (s *ConnectionServiceSuite) TestGrantsAndValidityWindow() {
	before := time.Now().Truncate(time.Second)
	details := s.issue(domain.ConnectionRequest{RoomName: "lobby", ParticipantName: "alice"})

	info := s.inspect(details.ParticipantToken)
	s.Equal(domain.ParticipantGrants(), info.Grants)
	s.InDelta(float64(5*time.Minute), float64(info.ExpiresAt.Sub(info.NotBefore)), float64(time.Second))
	s.False(info.NotBefore.Before(before))
	s.WithinDuration(time.Now().Add(5*time.Minute), info.ExpiresAt, 2*time.Second)
}

func (s *ConnectionServiceSuite) TestMissingFieldsFailWithoutSigning() {
	signer := &fakeSigner{token: "token"}
	svc := s.newService(signer)

	cases := []domain.ConnectionRequest{
		{ParticipantName: "alice"},
		{RoomName: "lobby"},
		{RoomName: "  ", ParticipantName: "alice"},
		{},
	}
	for _, req := range cases {
		_, err := svc.IssueConnection(context.Background(), req)
		s.Require().Error(err)
		s.ErrorIs(err, apperrors.ErrBadRequest)
	}

	s.Empty(signer.Calls())
	s.Empty(s.audit.Entries())
	s.Equal(4.0, testutil.ToFloat64(s.metrics.ConnectionsIssued.WithLabelValues(metrics.ResultBadRequest)))
}

func (s *ConnectionServiceSuite) TestSigningFailureIsInternalAndOpaque() {
	signer := &fakeSigner{err: errors.New("secret mismatch for key devkey")}
	svc := s.newService(signer)

	_, err := svc.IssueConnection(context.Background(), domain.ConnectionRequest{RoomName: "lobby", ParticipantName: "alice"})
	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrInternalServer)
	s.NotContains(err.Error(), "devkey")
	s.Len(signer.Calls(), 1)
}

func (s *ConnectionServiceSuite) TestSigningRequestCarriesIdentityAndTTL() {
	signer := &fakeSigner{token: "signed"}
	svc := s.newService(signer)

	details, err := svc.IssueConnection(context.Background(), domain.ConnectionRequest{
		RoomName:        "lobby",
		ParticipantName: "alice",
		Metadata:        `{"selectedPerson":"Shyam"}`,
	})
	s.Require().NoError(err)
	s.Equal("signed", details.ParticipantToken)

	calls := signer.Calls()
	s.Require().Len(calls, 1)
	s.Equal("lobby", calls[0].Room)
	s.Equal("alice", calls[0].DisplayName)
	s.Regexp(`^alice__[0-9A-Za-z]{4}$`, calls[0].Identity)
	s.Equal(5*time.Minute, calls[0].TTL)
	s.Equal(domain.ParticipantGrants(), calls[0].Grants)
	s.JSONEq(`{"selectedPerson":"Shyam","botName":"Shyam"}`, calls[0].Metadata)
}

func (s *ConnectionServiceSuite) TestRegionalServerURL() {
	details := s.issue(domain.ConnectionRequest{RoomName: "lobby", ParticipantName: "alice", Region: "eu"})
	s.Equal("wss://eu.livekit.example.com", details.ServerURL)

	_, err := s.service.IssueConnection(context.Background(), domain.ConnectionRequest{
		RoomName:        "lobby",
		ParticipantName: "alice",
		Region:          "ap",
	})
	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrConfig)
	s.Equal(1.0, testutil.ToFloat64(s.metrics.ConnectionsIssued.WithLabelValues(metrics.ResultConfigError)))
}

func (s *ConnectionServiceSuite) TestDerivationDisabled() {
	s.tokenCfg.DeriveBotName = false
	signer := &fakeSigner{token: "signed"}
	svc := s.newService(signer)

	_, err := svc.IssueConnection(context.Background(), domain.ConnectionRequest{
		RoomName:        "lobby",
		ParticipantName: "alice",
		Metadata:        "garbage",
	})
	s.Require().NoError(err)
	s.JSONEq(`{"selectedPerson":"alice"}`, signer.Calls()[0].Metadata)
}

func (s *ConnectionServiceSuite) TestIssuanceIsRecorded() {
	details := s.issue(domain.ConnectionRequest{RoomName: "lobby", ParticipantName: "alice", Metadata: "x"})

	s.Eventually(func() bool { return len(s.audit.Entries()) == 1 }, time.Second, 10*time.Millisecond)
	entry := s.audit.Entries()[0]
	s.Equal("lobby", entry.RoomName)
	s.Equal(details.ServerURL, entry.ServerURL)
	s.True(entry.MetadataRepaired)
}

func (s *ConnectionServiceSuite) TestAuditFailureDoesNotFailRequest() {
	s.audit.err = errors.New("database is down")
	details := s.issue(domain.ConnectionRequest{RoomName: "lobby", ParticipantName: "alice"})
	s.NotEmpty(details.ParticipantToken)
}

func TestConnectionServiceSuite(t *testing.T) {
	suite.Run(t, new(ConnectionServiceSuite))
}
