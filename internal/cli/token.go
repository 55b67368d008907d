package cli

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	jwttoken "welfare/internal/jwt_token"
	"welfare/internal/platform/config"
	usermodels "welfare/internal/users/models"
	id "welfare/pkg/domain"
)

const defaultTokenTTL = 15 * time.Minute

type tokenOutput struct {
	Token     string    `json:"token"`
	UserID    string    `json:"user_id"`
	SessionID string    `json:"session_id"`
	Role      string    `json:"role"`
	ExpiresAt time.Time `json:"expires_at"`
}

type tokenOptions struct {
	userID     string
	sessionID  string
	role       string
	ttl        time.Duration
	signingKey string
}

// NewTokenCommand issues development session tokens. A server accepts them
// when it shares the signing key.
func NewTokenCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Development session tokens",
	}

	topts := &tokenOptions{}
	issue := &cobra.Command{
		Use:   "issue",
		Short: "Sign a session token for local testing",
		Long: `Signs a session token with SESSION_SIGNING_KEY, or the development key
when it is unset. Tokens signed with the development key are rejected by a
production server.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := issueToken(cmd, topts)
			if err != nil {
				return err
			}
			return render(cmd, opts, out, func(w io.Writer) {
				fmt.Fprintln(w, out.Token)
			})
		},
	}
	issue.Flags().StringVar(&topts.userID, "user-id", "", "user ID (generated when empty)")
	issue.Flags().StringVar(&topts.sessionID, "session-id", "", "session ID (generated when empty)")
	issue.Flags().StringVar(&topts.role, "role", string(usermodels.RoleOperator), "role claim (admin|operator|citizen)")
	issue.Flags().DurationVar(&topts.ttl, "ttl", defaultTokenTTL, "token lifetime")
	issue.Flags().StringVar(&topts.signingKey, "signing-key", os.Getenv("SESSION_SIGNING_KEY"), "HS256 signing key")

	cmd.AddCommand(issue)
	return cmd
}

func issueToken(cmd *cobra.Command, topts *tokenOptions) (*tokenOutput, error) {
	role := usermodels.Role(topts.role)
	if !role.IsValid() {
		return nil, NewExitError(ExitCommandError, fmt.Sprintf("unknown role %q", topts.role))
	}
	if topts.ttl <= 0 {
		return nil, NewExitError(ExitCommandError, "ttl must be positive")
	}

	userID := id.UserID(uuid.New())
	if topts.userID != "" {
		parsed, err := id.ParseUserID(topts.userID)
		if err != nil {
			return nil, WrapExitError(ExitCommandError, "invalid --user-id", err)
		}
		userID = parsed
	}
	sessionID := id.SessionID(uuid.New())
	if topts.sessionID != "" {
		parsed, err := id.ParseSessionID(topts.sessionID)
		if err != nil {
			return nil, WrapExitError(ExitCommandError, "invalid --session-id", err)
		}
		sessionID = parsed
	}

	key := topts.signingKey
	if key == "" {
		key = config.DevSigningKey
	}
	tokens := jwttoken.NewJWTService(key, jwttoken.Issuer, topts.ttl)
	token, expiresAt, err := tokens.Issue(cmd.Context(), userID, sessionID, string(role))
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "sign token", err)
	}
	return &tokenOutput{
		Token:     token,
		UserID:    userID.String(),
		SessionID: sessionID.String(),
		Role:      string(role),
		ExpiresAt: expiresAt,
	}, nil
}
