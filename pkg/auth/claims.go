package auth

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/red-stick-digital/brga-backend/pkg/enums"
)

// AccessTokenPayload captures the data available when minting a JWT.
type AccessTokenPayload struct {
	UserID         uuid.UUID
	Role           enums.MemberRole
	ApprovalStatus enums.ApprovalStatus
	JTI            string
}

// AccessTokenClaims represents the typed JWT issued to clients.
type AccessTokenClaims struct {
	UserID         uuid.UUID            `json:"user_id"`
	Role           enums.MemberRole     `json:"role"`
	ApprovalStatus enums.ApprovalStatus `json:"approval_status"`
	jwt.RegisteredClaims
}
