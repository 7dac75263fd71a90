package converter

import (
	"sabzi/internal/domain/user"
	sqlc "sabzi/internal/infra/sqlc/generated"
)

func UserToCreateParams(u *user.User) sqlc.CreateUserParams {
	return sqlc.CreateUserParams{
		ID:           u.ID(),
		Email:        u.Email().Value(),
		PasswordHash: u.PasswordHash(),
		Role:         u.Role().String(),
	}
}
