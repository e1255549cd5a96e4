package biz

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/fx"
	"golang.org/x/crypto/bcrypt"

	"github.com/looplj/authhub/internal/ent"
	"github.com/looplj/authhub/internal/ent/user"
	"github.com/looplj/authhub/internal/log"
)

// JWTConfig controls token issuance. TTL is the system default used for
// refreshed tokens; LoginTTL is the longer window granted at initial sign-in.
// The two are deliberately distinct policies.
type JWTConfig struct {
	Secret   string        `conf:"secret" yaml:"secret" json:"secret"`
	TTL      time.Duration `conf:"ttl" yaml:"ttl" json:"ttl"`
	LoginTTL time.Duration `conf:"login_ttl" yaml:"login_ttl" json:"login_ttl"`
}

const (
	DefaultTokenTTL      = time.Hour
	DefaultLoginTokenTTL = 2 * time.Hour
)

type AuthServiceParams struct {
	fx.In

	JWT         JWTConfig
	UserService *UserService
	Ent         *ent.Client
}

func NewAuthService(params AuthServiceParams) *AuthService {
	cfg := params.JWT
	if cfg.TTL <= 0 {
		cfg.TTL = DefaultTokenTTL
	}

	if cfg.LoginTTL <= 0 {
		cfg.LoginTTL = DefaultLoginTokenTTL
	}

	if cfg.Secret == "" {
		secret, err := GenerateSecretKey()
		if err != nil {
			panic(fmt.Errorf("failed to generate jwt secret: %w", err))
		}

		log.Warn(context.Background(), "jwt secret not configured, using an ephemeral one; tokens will not survive restarts")

		cfg.Secret = secret
	}

	return &AuthService{
		AbstractService: &AbstractService{
			db: params.Ent,
		},
		JWT:         cfg,
		UserService: params.UserService,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

type AuthService struct {
	*AbstractService

	JWT         JWTConfig
	UserService *UserService

	// now is the injectable clock used for issuance and expiry checks.
	now func() time.Time
}

// HashPassword hashes a password using bcrypt.
func HashPassword(password string) (string, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	return hex.EncodeToString(hashedPassword), nil
}

// VerifyPassword verifies a password against a hash.
func VerifyPassword(hashedPassword, password string) error {
	decodedHashedPassword, err := hex.DecodeString(hashedPassword)
	if err != nil {
		return fmt.Errorf("failed to decode hashed password: %w", err)
	}

	return bcrypt.CompareHashAndPassword(decodedHashedPassword, []byte(password))
}

// GenerateSecretKey generates a random secret key for JWT.
func GenerateSecretKey() (string, error) {
	bytes := make([]byte, 32) // 256 bits

	_, err := rand.Read(bytes)
	if err != nil {
		return "", fmt.Errorf("failed to generate random bytes: %w", err)
	}

	return hex.EncodeToString(bytes), nil
}

// TokenUser is the denormalized identity snapshot embedded in the token.
type TokenUser struct {
	ID        int    `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	GroupID   int    `json:"group_id"`
	GroupName string `json:"group_name,omitempty"`
}

// TokenClaims is the JWT payload: subject id, identity snapshot and the
// registered issued-at/expires-at pair.
type TokenClaims struct {
	Sub  int       `json:"sub"`
	User TokenUser `json:"user"`
	jwt.RegisteredClaims
}

func tokenUserFromEnt(u *ent.User) TokenUser {
	tu := TokenUser{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
		GroupID:  u.GroupID,
	}

	if u.Edges.Group != nil {
		tu.GroupName = u.Edges.Group.Name
	}

	return tu
}

// IssueToken signs a token for the given user with the given TTL.
func (s *AuthService) IssueToken(ctx context.Context, u *ent.User, ttl time.Duration) (string, error) {
	now := s.now()

	claims := TokenClaims{
		Sub:  u.ID,
		User: tokenUserFromEnt(u),
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString([]byte(s.JWT.Secret))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, nil
}

// IssueLoginToken signs an initial-login token with the long login TTL.
func (s *AuthService) IssueLoginToken(ctx context.Context, u *ent.User) (string, error) {
	return s.IssueToken(ctx, u, s.JWT.LoginTTL)
}

// IssueRefreshedToken re-reads the user from the store so the embedded
// snapshot is fresh, then signs a token with the system default TTL.
func (s *AuthService) IssueRefreshedToken(ctx context.Context, userID int) (string, error) {
	u, err := s.UserService.GetUserByID(ctx, userID)
	if err != nil {
		return "", fmt.Errorf("%w: failed to refresh user snapshot: %w", ErrUnauthenticated, err)
	}

	return s.IssueToken(ctx, u, s.JWT.TTL)
}

// ValidateToken verifies the signature and expiry of a token and returns its
// claims. It has no renewal side effects and performs no store lookups.
func (s *AuthService) ValidateToken(ctx context.Context, tokenString string) (*TokenClaims, error) {
	claims := &TokenClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("%w: unexpected signing method: %v", ErrInvalidJWT, token.Header["alg"])
		}

		return []byte(s.JWT.Secret), nil
	}, jwt.WithTimeFunc(s.now), jwt.WithExpirationRequired())
	if err != nil {
		return nil, fmt.Errorf("%w: failed to parse jwt token: %w", ErrInvalidJWT, err)
	}

	if !token.Valid {
		return nil, fmt.Errorf("%w: invalid token", ErrInvalidJWT)
	}

	return claims, nil
}

// AuthenticateUser authenticates a user with email and password.
func (s *AuthService) AuthenticateUser(ctx context.Context, email, password string) (*ent.User, error) {
	client := s.entFromContext(ctx)

	u, err := client.User.Query().
		Where(user.EmailEQ(email)).
		Where(user.DeletedAtIsNil()).
		WithGroup().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrInvalidPassword
		}

		log.Error(ctx, "failed to get user", log.Cause(err))

		return nil, ErrInternal
	}

	err = VerifyPassword(u.Password, password)
	if err != nil {
		return nil, ErrInvalidPassword
	}

	log.Debug(ctx, "user authenticated", log.Int("user_id", u.ID))

	return u, nil
}

// AuthenticateToken validates a token and resolves the user it names.
// Tombstoned users fail authentication as if absent.
func (s *AuthService) AuthenticateToken(ctx context.Context, tokenString string) (*ent.User, error) {
	claims, err := s.ValidateToken(ctx, tokenString)
	if err != nil {
		return nil, err
	}

	u, err := s.UserService.GetUserByID(ctx, claims.Sub)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to get user: %w", ErrInvalidJWT, err)
	}

	return u, nil
}
