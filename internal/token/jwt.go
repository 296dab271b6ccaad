package token

import (
	"encoding/base64"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/326-T/nft-service/internal/model"
)

const issuer = "nft-service"

// applicantClaims is the profile snapshot embedded in an applicant token.
// The password digest is deliberately never part of the claim set.
type applicantClaims struct {
	jwt.RegisteredClaims
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
}

// companyClaims is the profile snapshot embedded in a company token.
type companyClaims struct {
	jwt.RegisteredClaims
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// JWT implements model.TokenCodec backed by symmetric HMAC. The signed
// token is base64-wrapped so it survives cookie transport untouched.
type JWT struct {
	secretKey string
	ttl       time.Duration
}

// NewJWT creates a token codec with the provided secret key and token lifetime.
func NewJWT(secretKey string, ttl time.Duration) model.TokenCodec {
	return &JWT{secretKey: secretKey, ttl: ttl}
}

// IssueApplicant signs a time-bound token carrying the applicant's profile.
func (j *JWT) IssueApplicant(applicant model.Applicant) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, applicantClaims{
		RegisteredClaims: j.registeredClaims(applicant.ID),
		FirstName:        applicant.FirstName,
		LastName:         applicant.LastName,
		Email:            applicant.Email,
		Phone:            applicant.Phone,
		Address:          applicant.Address,
	})

	return j.sign(token)
}

// IssueCompany signs a time-bound token carrying the company's profile.
func (j *JWT) IssueCompany(company model.Company) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, companyClaims{
		RegisteredClaims: j.registeredClaims(company.ID),
		Name:             company.Name,
		Email:            company.Email,
		Phone:            company.Phone,
		Address:          company.Address,
	})

	return j.sign(token)
}

// DecodeApplicant verifies a token and returns the embedded applicant
// snapshot. The snapshot is stale by definition; callers re-resolve it
// against the store.
func (j *JWT) DecodeApplicant(tokenString string) (model.Applicant, error) {
	claims := &applicantClaims{}
	if err := j.verify(tokenString, claims); err != nil {
		return model.Applicant{}, err
	}

	id, err := uuid.Parse(claims.Subject)
	if err != nil {
		return model.Applicant{}, fmt.Errorf("%w: bad subject", model.ErrTokenMalformed)
	}

	return model.Applicant{
		ID:        id,
		FirstName: claims.FirstName,
		LastName:  claims.LastName,
		Email:     claims.Email,
		Phone:     claims.Phone,
		Address:   claims.Address,
	}, nil
}

// DecodeCompany verifies a token and returns the embedded company snapshot.
func (j *JWT) DecodeCompany(tokenString string) (model.Company, error) {
	claims := &companyClaims{}
	if err := j.verify(tokenString, claims); err != nil {
		return model.Company{}, err
	}

	id, err := uuid.Parse(claims.Subject)
	if err != nil {
		return model.Company{}, fmt.Errorf("%w: bad subject", model.ErrTokenMalformed)
	}

	return model.Company{
		ID:      id,
		Name:    claims.Name,
		Email:   claims.Email,
		Phone:   claims.Phone,
		Address: claims.Address,
	}, nil
}

func (j *JWT) registeredClaims(subject uuid.UUID) jwt.RegisteredClaims {
	now := time.Now()
	return jwt.RegisteredClaims{
		ID:        uuid.NewString(),
		Issuer:    issuer,
		Audience:  jwt.ClaimStrings{issuer},
		Subject:   subject.String(),
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(j.ttl)),
	}
}

func (j *JWT) sign(token *jwt.Token) (string, error) {
	signed, err := token.SignedString([]byte(j.secretKey))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return base64.URLEncoding.EncodeToString([]byte(signed)), nil
}

func (j *JWT) verify(wrapped string, claims jwt.Claims) error {
	raw, err := base64.URLEncoding.DecodeString(wrapped)
	if err != nil {
		return fmt.Errorf("%w: %s", model.ErrTokenMalformed, err)
	}

	token, err := jwt.ParseWithClaims(string(raw), claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("wrong signing method %v", t.Header["alg"])
		}
		return []byte(j.secretKey), nil
	})
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return fmt.Errorf("%w: %s", model.ErrTokenExpired, err)
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return fmt.Errorf("%w: %s", model.ErrTokenSignatureInvalid, err)
		default:
			return fmt.Errorf("%w: %s", model.ErrTokenMalformed, err)
		}
	}
	if !token.Valid {
		return model.ErrTokenMalformed
	}

	return nil
}
