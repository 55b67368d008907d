package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"golang.org/x/crypto/bcrypt"

	"welfare/internal/eventlog"
	jwttoken "welfare/internal/jwt_token"
	"welfare/internal/platform/config"
	"welfare/internal/platform/kafka/consumer"
	id "welfare/pkg/domain"
	"welfare/pkg/secrets"
)

// CLISuite drives the command tree the way an operator does.
//
// Justification: exit codes and output shapes are the contract scripts rely
// on, and the token command must stay compatible with the server's validator.
type CLISuite struct {
	suite.Suite
	out *bytes.Buffer
}

func TestCLISuite(t *testing.T) {
	suite.Run(t, new(CLISuite))
}

func (s *CLISuite) SetupTest() {
	s.out = &bytes.Buffer{}
}

func (s *CLISuite) execute(stdin string, args ...string) error {
	cmd := NewRootCommand()
	cmd.SetOut(s.out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	return cmd.Execute()
}

func (s *CLISuite) TestCommandTree() {
	root := NewRootCommand()
	for _, path := range [][]string{
		{"identifier", "check"},
		{"identifier", "format"},
		{"phone", "check"},
		{"phone", "format"},
		{"password", "hash"},
		{"token", "issue"},
		{"migrations", "list"},
		{"migrations", "apply"},
		{"events", "tail"},
		{"events", "replicate"},
	} {
		found, _, err := root.Find(path)
		s.Require().NoError(err, strings.Join(path, " "))
		s.Equal(path[1], found.Name())
	}
	s.NotNil(root.PersistentFlags().Lookup("format"))
}

func (s *CLISuite) TestInvalidFormat() {
	err := s.execute("", "--format", "yaml", "identifier", "check", "11223344595")
	s.Require().Error(err)
	s.Equal(ExitCommandError, ExitCode(err))
}

func (s *CLISuite) TestIdentifierCheck() {
	s.Run("valid identifier", func() {
		s.out.Reset()
		s.Require().NoError(s.execute("", "identifier", "check", "11223344595"))
		s.Equal("valid 112-233-445 95\n", s.out.String())
	})

	s.Run("control number mismatch exits 1", func() {
		s.out.Reset()
		err := s.execute("", "identifier", "check", "11223344596")
		s.Require().Error(err)
		s.Equal(ExitFailure, ExitCode(err))
		s.Contains(s.out.String(), "control number does not match")
	})

	s.Run("malformed identifier exits 1", func() {
		s.out.Reset()
		err := s.execute("", "identifier", "check", "123")
		s.Equal(ExitFailure, ExitCode(err))
	})

	s.Run("json output", func() {
		s.out.Reset()
		s.Require().NoError(s.execute("", "--format", "json", "identifier", "check", "123-456-789 64"))
		var res identifierResult
		s.Require().NoError(json.Unmarshal(s.out.Bytes(), &res))
		s.True(res.Valid)
		s.Equal("12345678964", res.Canonical)
	})
}

func (s *CLISuite) TestIdentifierFormat() {
	s.Require().NoError(s.execute("", "identifier", "format", "12345678964"))
	s.Equal("123-456-789 64\n", s.out.String())

	err := s.execute("", "identifier", "format", "12")
	s.Equal(ExitFailure, ExitCode(err))
}

func (s *CLISuite) TestPhone() {
	s.Run("trunk prefix is normalized", func() {
		s.out.Reset()
		s.Require().NoError(s.execute("", "phone", "format", "8 916 123-45-67"))
		s.Equal("+7 (916) 123-45-67\n", s.out.String())
	})

	s.Run("check accepts the formatted form", func() {
		s.out.Reset()
		s.Require().NoError(s.execute("", "phone", "check", "+7 (916) 123-45-67"))
		s.Contains(s.out.String(), "valid +7 (916) 123-45-67")
	})

	s.Run("check rejects an unknown area code", func() {
		s.out.Reset()
		err := s.execute("", "phone", "check", "+7 (116) 123-45-67")
		s.Equal(ExitFailure, ExitCode(err))
	})
}

func (s *CLISuite) TestPasswordHash() {
	s.Require().NoError(s.execute("s3cret-pass\n", "password", "hash", "--cost", "4"))
	hash := strings.TrimSpace(s.out.String())

	_, err := secrets.NewHasher(bcrypt.MinCost).Verify("s3cret-pass", hash)
	s.NoError(err)

	err = s.execute("", "password", "hash")
	s.Equal(ExitCommandError, ExitCode(err))
}

func (s *CLISuite) TestTokenIssue() {
	userID := uuid.NewString()
	s.Require().NoError(s.execute("", "--format", "json", "token", "issue",
		"--user-id", userID, "--role", "admin", "--signing-key", ""))

	var out tokenOutput
	s.Require().NoError(json.Unmarshal(s.out.Bytes(), &out))
	s.Equal(userID, out.UserID)

	claims, err := jwttoken.NewJWTService(config.DevSigningKey, jwttoken.Issuer, time.Hour).ValidateToken(out.Token)
	s.Require().NoError(err)
	s.Equal(userID, claims.UserID)
	s.Equal(out.SessionID, claims.SessionID)
	s.Equal("admin", claims.Role)

	s.Run("unknown role", func() {
		err := s.execute("", "token", "issue", "--role", "root")
		s.Equal(ExitCommandError, ExitCode(err))
	})
}

func (s *CLISuite) TestMigrationsList() {
	s.Require().NoError(s.execute("", "migrations", "list"))
	s.Contains(s.out.String(), "001_init")
}

func (s *CLISuite) TestMigrationsApplyNeedsURL() {
	err := s.execute("", "migrations", "apply", "--database-url", "")
	s.Equal(ExitCommandError, ExitCode(err))
}

func (s *CLISuite) TestTailHandler() {
	userID := id.UserID(uuid.New())
	entityID := uuid.New()
	entry := &eventlog.Entry{
		ID:          id.EventID(uuid.New()),
		UserID:      &userID,
		Type:        eventlog.TypeCitizenCreated,
		Description: "Created citizen Ivanov",
		EntityType:  eventlog.EntityCitizen,
		EntityID:    &entityID,
		CreatedAt:   time.Date(2026, 3, 2, 9, 30, 0, 0, time.UTC),
	}
	value, err := eventlog.Marshal(entry)
	s.Require().NoError(err)
	msg := &consumer.Message{Topic: "welfare.events", Value: value}
	log := slog.New(slog.DiscardHandler)

	s.Run("text", func() {
		var buf bytes.Buffer
		s.Require().NoError(tailHandler(&buf, FormatText, log).Handle(context.Background(), msg))
		line := buf.String()
		s.True(strings.HasPrefix(line, "2026-03-02T09:30:00Z"))
		s.Contains(line, "citizen_created")
		s.Contains(line, "entity=citizen/"+entityID.String())
		s.Contains(line, "Created citizen Ivanov")
	})

	s.Run("json lines decode back", func() {
		var buf bytes.Buffer
		s.Require().NoError(tailHandler(&buf, FormatJSON, log).Handle(context.Background(), msg))
		decoded, err := eventlog.Unmarshal(bytes.TrimSpace(buf.Bytes()))
		s.Require().NoError(err)
		s.Equal(entry.ID, decoded.ID)
	})

	s.Run("undecodable record is skipped", func() {
		var buf bytes.Buffer
		err := tailHandler(&buf, FormatText, log).Handle(context.Background(), &consumer.Message{Value: []byte("{")})
		s.NoError(err)
		s.Empty(buf.String())
	})
}

func (s *CLISuite) TestEventsNeedBrokers() {
	err := s.execute("", "events", "tail", "--brokers", "")
	s.Equal(ExitCommandError, ExitCode(err))
}
